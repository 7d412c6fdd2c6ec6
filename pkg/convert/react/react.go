package react

import (
	"encoding/json"
	"sort"

	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
	"github.com/graphlift/graphlift/pkg/ident"
)

// Ecosystem is the metadata tag stamped on every graph this package
// produces, for both the current and the legacy format.
const Ecosystem = "react"

// componentExport is the current analyzer format: one record per
// component, keyed by component name.
type componentExport struct {
	ProjectName string                     `json:"projectName"`
	Metadata    map[string]any             `json:"metadata"`
	Components  map[string]componentRecord `json:"components"`
}

type componentRecord struct {
	DisplayName  string             `json:"displayName"`
	FilePath     string             `json:"filePath"`
	Description  string             `json:"description"`
	Props        []propRecord       `json:"props"`
	State        []stateRecord      `json:"state"`
	Hooks        []hookRecord       `json:"hooks"`
	Dependencies []dependencyRecord `json:"dependencies"`
	Children     []string           `json:"children"`
}

type propRecord struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Default  any    `json:"defaultValue"`
}

type stateRecord struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Initial any    `json:"initialValue"`
}

// hookRecord accepts both spellings analyzers emit: a bare hook name or
// a record with a "name" property.
type hookRecord struct {
	Name string `json:"name"`
}

func (h *hookRecord) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		h.Name = s
		return nil
	}
	type plain hookRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*h = hookRecord(p)
	return nil
}

type dependencyRecord struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	External bool   `json:"external"`
}

// namedComponent pairs a component record with its mapping key and its
// canonical name (the display name, or the key when unset). Records are
// sorted by name so output is deterministic regardless of mapping
// iteration order.
type namedComponent struct {
	key    string
	name   string
	record componentRecord
}

// Convert converts a current-format component export. Each component
// becomes one "component" node; dependency references become
// "dependency" edges and child references become "renders" edges.
func Convert(v any) (*graph.Graph, error) {
	var doc componentExport
	if err := decode(v, &doc); err != nil {
		return nil, err
	}

	components := sortedComponents(doc.Components)

	g := graph.New(Ecosystem, doc.ProjectName)
	g.Meta.Source = doc.Metadata

	lookup := graph.Lookup{}
	for _, c := range components {
		node := componentNode(c)
		g.AddNode(node)
		lookup.Add(c.key, node.ID)
		lookup.Add(c.name, node.ID)
		lookup.Add(c.record.FilePath, node.ID)
	}

	g.AddEdges(componentEdges(components, lookup))
	return g, nil
}

func sortedComponents(m map[string]componentRecord) []namedComponent {
	out := make([]namedComponent, 0, len(m))
	for key, rec := range m {
		name := key
		if rec.DisplayName != "" {
			name = rec.DisplayName
		}
		out = append(out, namedComponent{key: key, name: name, record: rec})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// componentNode is the first pass for one component: project the record
// onto a node with its ordered sections.
func componentNode(c namedComponent) graph.Node {
	node := graph.Node{
		ID:    ident.Make("component", c.name),
		Title: c.name,
		Type:  graph.NodeComponent,
	}

	attrs := graph.Attrs{}
	if c.record.FilePath != "" {
		attrs["filePath"] = c.record.FilePath
	}
	if c.record.Description != "" {
		attrs["description"] = c.record.Description
	}
	if len(attrs) > 0 {
		node.Attrs = attrs
	}

	// Section order is part of the output contract: Props, State,
	// Hooks, Dependencies, Children. Empty categories are omitted.
	if sec, ok := propsSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}
	if sec, ok := stateSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}
	if sec, ok := hooksSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}
	if sec, ok := dependenciesSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}
	if sec, ok := childrenSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}

	return node
}

func propsSection(c namedComponent) (graph.Section, bool) {
	if len(c.record.Props) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.name+"_Props"),
		Name: "Props",
	}
	for _, p := range c.record.Props {
		value := p.Name
		if p.Type != "" {
			value += ": " + p.Type
		}
		if p.Required {
			value += " (required)"
		}
		item := graph.Item{
			ID:    ident.Make("prop", c.name+"_"+p.Name),
			Value: value,
			Icon:  "prop",
			Attrs: graph.Attrs{"type": p.Type, "required": p.Required},
		}
		if p.Default != nil {
			item.Attrs["default"] = p.Default
		}
		sec.Items = append(sec.Items, item)
	}
	return sec, true
}

func stateSection(c namedComponent) (graph.Section, bool) {
	if len(c.record.State) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.name+"_State"),
		Name: "State",
	}
	for _, s := range c.record.State {
		value := s.Name
		if s.Type != "" {
			value += ": " + s.Type
		}
		item := graph.Item{
			ID:    ident.Make("state", c.name+"_"+s.Name),
			Value: value,
			Icon:  "state",
		}
		if s.Initial != nil {
			item.Attrs = graph.Attrs{"initialValue": s.Initial}
		}
		sec.Items = append(sec.Items, item)
	}
	return sec, true
}

func hooksSection(c namedComponent) (graph.Section, bool) {
	if len(c.record.Hooks) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.name+"_Hooks"),
		Name: "Hooks",
	}
	for _, h := range c.record.Hooks {
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("hook", c.name+"_"+h.Name),
			Value: h.Name,
			Icon:  "hook",
		})
	}
	return sec, true
}

func dependenciesSection(c namedComponent) (graph.Section, bool) {
	if len(c.record.Dependencies) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.name+"_Dependencies"),
		Name: "Dependencies",
	}
	for _, d := range c.record.Dependencies {
		value := d.Name
		if d.Path != "" {
			value += " from '" + d.Path + "'"
		}
		if d.External {
			value += " (external)"
		}
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("dep", c.name+"_"+d.Name),
			Value: value,
			Icon:  "dependency",
			Attrs: graph.Attrs{"path": d.Path, "external": d.External},
		})
	}
	return sec, true
}

func childrenSection(c namedComponent) (graph.Section, bool) {
	if len(c.record.Children) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.name+"_Children"),
		Name: "Children",
	}
	for _, child := range c.record.Children {
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("child", c.name+"_"+child),
			Value: child,
			Icon:  "child",
		})
	}
	return sec, true
}

// componentEdges is the second pass: a pure function over the component
// list and the pass-1 lookup producing the edge list. Names that do not
// resolve (external libraries) yield no edge.
func componentEdges(components []namedComponent, lookup graph.Lookup) []graph.Edge {
	var edges []graph.Edge
	for _, c := range components {
		sourceID := ident.Make("component", c.name)

		for _, d := range c.record.Dependencies {
			targetID, ok := lookup.Resolve(d.Name)
			if !ok {
				continue
			}
			edges = append(edges, graph.Edge{
				Source: sourceID,
				Target: targetID,
				Type:   graph.EdgeDependency,
			})
		}

		for _, child := range c.record.Children {
			targetID, ok := lookup.Resolve(child)
			if !ok {
				continue
			}
			edges = append(edges, graph.Edge{
				Source: sourceID,
				Target: targetID,
				Type:   graph.EdgeRenders,
			})
		}
	}
	return edges
}

// decode re-projects the generic decoded document onto the typed input
// records. A document that matched the shape probe but carries wrongly
// typed entity fields fails here with INVALID_INPUT.
func decode(v any, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "re-encode analysis document")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "analysis document does not match the React analyzer schema")
	}
	return nil
}
