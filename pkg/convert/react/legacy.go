package react

import (
	"encoding/json"

	"github.com/graphlift/graphlift/pkg/graph"
	"github.com/graphlift/graphlift/pkg/ident"
)

// fileRecord is one entry of the legacy per-file analyzer format.
// Dependency lists are pre-computed by the analyzer in both directions
// and reference other records by file name.
type fileRecord struct {
	FileName             string         `json:"fileName"`
	Exports              []string       `json:"exports"`
	Imports              []importRecord `json:"imports"`
	OutgoingDependencies []string       `json:"outgoingDependencies"`
	IncomingDependencies []string       `json:"incomingDependencies"`
}

// importRecord accepts both spellings the legacy analyzer emitted: a
// bare module name or a record with "name" and "path".
type importRecord struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (r *importRecord) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Name = s
		return nil
	}
	type plain importRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = importRecord(p)
	return nil
}

// ConvertLegacy converts a legacy per-file export. Each file becomes
// one "file" node with Imports and Exports sections; the analyzer's
// directional dependency lists become "dependency" edges tagged with
// the direction they were declared in.
func ConvertLegacy(v any) (*graph.Graph, error) {
	var files []fileRecord
	if err := decode(v, &files); err != nil {
		return nil, err
	}

	// The legacy format carries no project metadata block.
	g := graph.New(Ecosystem, "")

	lookup := graph.Lookup{}
	for _, f := range files {
		node := fileNode(f)
		g.AddNode(node)
		lookup.Add(f.FileName, node.ID)
	}

	g.AddEdges(fileEdges(files, lookup))
	return g, nil
}

// fileNode is the first pass for one file record. Section order is
// Imports then Exports; empty categories are omitted.
func fileNode(f fileRecord) graph.Node {
	node := graph.Node{
		ID:    ident.Make("file", f.FileName),
		Title: f.FileName,
		Type:  graph.NodeFile,
	}

	if len(f.Imports) > 0 {
		sec := graph.Section{
			ID:   ident.Make("sec", f.FileName+"_Imports"),
			Name: "Imports",
		}
		for _, imp := range f.Imports {
			value := imp.Name
			if imp.Path != "" {
				value += " from '" + imp.Path + "'"
			}
			sec.Items = append(sec.Items, graph.Item{
				ID:    ident.Make("import", f.FileName+"_"+imp.Name),
				Value: value,
				Icon:  "import",
			})
		}
		node.Sections = append(node.Sections, sec)
	}

	if len(f.Exports) > 0 {
		sec := graph.Section{
			ID:   ident.Make("sec", f.FileName+"_Exports"),
			Name: "Exports",
		}
		for _, exp := range f.Exports {
			sec.Items = append(sec.Items, graph.Item{
				ID:    ident.Make("export", f.FileName+"_"+exp),
				Value: exp,
				Icon:  "export",
			})
		}
		node.Sections = append(node.Sections, sec)
	}

	return node
}

// fileEdges is the second pass: a pure function over the file list and
// the pass-1 lookup. Outgoing entries produce edges away from the
// declaring file, incoming entries produce edges toward it; both carry
// the direction they were declared in.
func fileEdges(files []fileRecord, lookup graph.Lookup) []graph.Edge {
	var edges []graph.Edge
	for _, f := range files {
		fileID := ident.Make("file", f.FileName)

		for _, out := range f.OutgoingDependencies {
			targetID, ok := lookup.Resolve(out)
			if !ok {
				continue
			}
			edges = append(edges, graph.Edge{
				Source: fileID,
				Target: targetID,
				Type:   graph.EdgeDependency,
				Attrs:  graph.Attrs{"direction": "outgoing"},
			})
		}

		for _, in := range f.IncomingDependencies {
			sourceID, ok := lookup.Resolve(in)
			if !ok {
				continue
			}
			edges = append(edges, graph.Edge{
				Source: sourceID,
				Target: fileID,
				Type:   graph.EdgeDependency,
				Attrs:  graph.Attrs{"direction": "incoming"},
			})
		}
	}
	return edges
}
