// Package convert turns ecosystem-specific dependency-analysis exports
// into the unified graph model.
//
// Three upstream analyzers are supported, each with its own export
// shape: a React component analyzer (current keyed-mapping format and a
// legacy per-file format), a Java class-hierarchy analyzer, and a Django
// project analyzer. [Detect] classifies a decoded document by probing
// its top-level shape; [Convert] dispatches to the converter for the
// detected [Format].
//
// Converters live in subpackages (react, java, django) and share one
// structure: a first pass projects entities to nodes and builds a
// [graph.Lookup] from natural names to node ids, a second pass resolves
// declared relationships into edges through that index. References that
// do not resolve (external libraries, unanalyzed classes, models missing
// from the export) produce no edge; the graph only represents
// relationships fully internal to the analyzed input.
//
//	var doc any
//	_ = json.Unmarshal(data, &doc)
//	g, err := convert.Convert(doc)
//	if errors.Is(err, errors.ErrCodeUnsupportedFormat) {
//	    // document matched none of the known shapes
//	}
package convert
