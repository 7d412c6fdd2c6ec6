package convert

// probe tests one structural fingerprint against a decoded document.
type probe struct {
	format Format
	match  func(v any) bool
}

// probes run in fixed priority order and the first match wins. The order
// is load-bearing: the two React shapes are distinguishable only by
// whether the document is a sequence, so the keyed-mapping probe must
// run before the sequence probe.
var probes = []probe{
	{FormatReact, isReactExport},
	{FormatReactLegacy, isReactLegacyExport},
	{FormatJava, isJavaExport},
	{FormatDjango, isDjangoExport},
}

// Detect classifies a decoded analysis document by its top-level shape.
// It never inspects values recursively: only presence and type of a
// small fixed set of top-level properties, so detection is O(1)
// relative to document size.
func Detect(v any) Format {
	for _, p := range probes {
		if p.match(v) {
			return p.format
		}
	}
	return FormatUnknown
}

// isReactExport matches the current component-analyzer shape: a mapping
// with a "components" property that is itself a keyed mapping.
func isReactExport(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	components, ok := m["components"]
	if !ok {
		return false
	}
	_, isMapping := components.(map[string]any)
	return isMapping
}

// isReactLegacyExport matches the legacy per-file shape: a sequence
// whose first element carries both "fileName" and "exports".
func isReactLegacyExport(v any) bool {
	seq, ok := v.([]any)
	if !ok || len(seq) == 0 {
		return false
	}
	first, ok := seq[0].(map[string]any)
	if !ok {
		return false
	}
	_, hasFileName := first["fileName"]
	_, hasExports := first["exports"]
	return hasFileName && hasExports
}

// isJavaExport matches the package-tree shape: a mapping with "name"
// and "elements".
func isJavaExport(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, hasName := m["name"]
	_, hasElements := m["elements"]
	return hasName && hasElements
}

// isDjangoExport matches the ORM project shape: a mapping with
// "metadata", "apps", and "models".
func isDjangoExport(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, hasMetadata := m["metadata"]
	_, hasApps := m["apps"]
	_, hasModels := m["models"]
	return hasMetadata && hasApps && hasModels
}
