package django

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
	"github.com/graphlift/graphlift/pkg/ident"
)

// Ecosystem is the metadata tag stamped on every graph this package
// produces.
const Ecosystem = "django"

// projectExport is the analyzer format: top-level metadata plus three
// parallel entity lists.
type projectExport struct {
	Metadata map[string]any `json:"metadata"`
	Apps     []appRecord    `json:"apps"`
	Models   []modelRecord  `json:"models"`
	Views    []viewRecord   `json:"views"`
}

type appRecord struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type modelRecord struct {
	Name          string               `json:"name"`
	App           string               `json:"app"`
	Fields        []modelField         `json:"fields"`
	Methods       []methodRecord       `json:"methods"`
	Relationships []relationshipRecord `json:"relationships"`
}

type modelField struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
}

// methodRecord accepts both spellings analyzers emit: a bare method
// name or a record with a "name" property.
type methodRecord struct {
	Name string `json:"name"`
}

func (m *methodRecord) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.Name = s
		return nil
	}
	type plain methodRecord
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*m = methodRecord(p)
	return nil
}

type relationshipRecord struct {
	Field        string `json:"field"`
	RelatedModel string `json:"relatedModel"`
	Kind         string `json:"type"`
	RelatedName  string `json:"relatedName"`
}

type viewRecord struct {
	Name     string   `json:"name"`
	App      string   `json:"app"`
	Kind     string   `json:"type"`
	Path     string   `json:"path"`
	Methods  []string `json:"methods"`
	Template string   `json:"template"`
	Models   []string `json:"models"`
}

// Convert converts a Django project export. Apps, models, and views
// become nodes; ownership becomes "contains" edges, view-to-model usage
// becomes "uses" edges, and model relationships become edges typed by
// their lowercased relationship kind.
func Convert(v any) (*graph.Graph, error) {
	var doc projectExport
	if err := decode(v, &doc); err != nil {
		return nil, err
	}

	project, _ := doc.Metadata["projectName"].(string)
	g := graph.New(Ecosystem, project)
	g.Meta.Source = doc.Metadata

	// Lookup keys are namespaced by kind: apps, models, and views
	// occupy distinct namespaces even when names collide.
	lookup := graph.Lookup{}
	for _, a := range doc.Apps {
		node := appNode(a)
		g.AddNode(node)
		lookup.Add("app_"+a.Name, node.ID)
	}
	for _, m := range doc.Models {
		node := modelNode(m)
		g.AddNode(node)
		lookup.Add("model_"+m.Name, node.ID)
	}
	for _, vw := range doc.Views {
		node := viewNode(vw)
		g.AddNode(node)
		lookup.Add("view_"+vw.Name, node.ID)
	}

	g.AddEdges(projectEdges(doc, lookup))
	return g, nil
}

// appQualified prefixes a model or view name with its owning app, so
// same-named entities in different apps get distinct node ids.
func appQualified(app, name string) string {
	if app == "" {
		return name
	}
	return app + "_" + name
}

func appNode(a appRecord) graph.Node {
	node := graph.Node{
		ID:    ident.Make("app", a.Name),
		Title: a.Name,
		Type:  graph.NodeApp,
	}
	if a.Path != "" {
		node.Attrs = graph.Attrs{"path": a.Path}
	}
	return node
}

// modelNode is the first pass for one model. Section order is Fields,
// Methods, Relationships; empty categories are omitted.
func modelNode(m modelRecord) graph.Node {
	node := graph.Node{
		ID:    ident.Make("model", appQualified(m.App, m.Name)),
		Title: m.Name,
		Type:  graph.NodeModel,
	}
	if m.App != "" {
		node.Attrs = graph.Attrs{"app": m.App}
	}

	if len(m.Fields) > 0 {
		sec := graph.Section{
			ID:   ident.Make("sec", m.Name+"_Fields"),
			Name: "Fields",
		}
		for _, f := range m.Fields {
			sec.Items = append(sec.Items, graph.Item{
				ID:    ident.Make("field", m.Name+"_"+f.Name),
				Value: renderModelField(f),
				Icon:  "field",
				Attrs: graph.Attrs{"type": f.Type},
			})
		}
		node.Sections = append(node.Sections, sec)
	}

	if len(m.Methods) > 0 {
		sec := graph.Section{
			ID:   ident.Make("sec", m.Name+"_Methods"),
			Name: "Methods",
		}
		for _, meth := range m.Methods {
			sec.Items = append(sec.Items, graph.Item{
				ID:    ident.Make("method", m.Name+"_"+meth.Name),
				Value: meth.Name,
				Icon:  "method",
			})
		}
		node.Sections = append(node.Sections, sec)
	}

	if len(m.Relationships) > 0 {
		sec := graph.Section{
			ID:   ident.Make("sec", m.Name+"_Relationships"),
			Name: "Relationships",
		}
		for _, r := range m.Relationships {
			sec.Items = append(sec.Items, graph.Item{
				ID:    ident.Make("rel", m.Name+"_"+r.Field),
				Value: renderRelationship(r),
				Icon:  "relationship",
				Attrs: graph.Attrs{"relatedModel": r.RelatedModel, "kind": r.Kind},
			})
		}
		node.Sections = append(node.Sections, sec)
	}

	return node
}

// renderModelField formats "<name>: <type> (<attr>=<value>, ...)" with
// attribute keys sorted for deterministic output.
func renderModelField(f modelField) string {
	value := f.Name
	if f.Type != "" {
		value += ": " + f.Type
	}
	if len(f.Attributes) == 0 {
		return value
	}

	keys := make([]string, 0, len(f.Attributes))
	for k := range f.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+renderAttrValue(f.Attributes[k]))
	}
	return value + " (" + strings.Join(pairs, ", ") + ")"
}

// renderAttrValue renders a decoded JSON scalar the way the analyzer
// wrote it: integral numbers without a decimal point.
func renderAttrValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// renderRelationship formats "<field> -> <related_model> (as <reverse_name>) (<kind>)",
// omitting the reverse-accessor clause when absent.
func renderRelationship(r relationshipRecord) string {
	value := r.Field + " -> " + r.RelatedModel
	if r.RelatedName != "" {
		value += " (as " + r.RelatedName + ")"
	}
	if r.Kind != "" {
		value += " (" + r.Kind + ")"
	}
	return value
}

// viewNode is the first pass for one view. Section order is View Info,
// Uses Models; empty categories are omitted.
func viewNode(v viewRecord) graph.Node {
	node := graph.Node{
		ID:    ident.Make("view", appQualified(v.App, v.Name)),
		Title: v.Name,
		Type:  graph.NodeView,
	}
	if v.App != "" {
		node.Attrs = graph.Attrs{"app": v.App}
	}

	info := graph.Section{
		ID:   ident.Make("sec", v.Name+"_ViewInfo"),
		Name: "View Info",
	}
	if v.Kind != "" {
		info.Items = append(info.Items, graph.Item{
			ID:    ident.Make("info", v.Name+"_kind"),
			Value: "Kind: " + v.Kind,
			Icon:  "info",
		})
	}
	if v.Path != "" {
		info.Items = append(info.Items, graph.Item{
			ID:    ident.Make("info", v.Name+"_path"),
			Value: "Path: " + v.Path,
			Icon:  "info",
		})
	}
	if len(v.Methods) > 0 {
		info.Items = append(info.Items, graph.Item{
			ID:    ident.Make("info", v.Name+"_methods"),
			Value: "Methods: " + strings.Join(v.Methods, ", "),
			Icon:  "info",
		})
	}
	if v.Template != "" {
		info.Items = append(info.Items, graph.Item{
			ID:    ident.Make("info", v.Name+"_template"),
			Value: "Template: " + v.Template,
			Icon:  "info",
		})
	}
	if len(info.Items) > 0 {
		node.Sections = append(node.Sections, info)
	}

	if len(v.Models) > 0 {
		uses := graph.Section{
			ID:   ident.Make("sec", v.Name+"_UsesModels"),
			Name: "Uses Models",
		}
		for _, m := range v.Models {
			uses.Items = append(uses.Items, graph.Item{
				ID:    ident.Make("uses", v.Name+"_"+m),
				Value: m,
				Icon:  "model",
			})
		}
		node.Sections = append(node.Sections, uses)
	}

	return node
}

// projectEdges is the second pass: a pure function over the export and
// the pass-1 lookup. Ownership edges come first, then view usage, then
// model relationships; unresolved references produce no edge.
func projectEdges(doc projectExport, lookup graph.Lookup) []graph.Edge {
	var edges []graph.Edge

	for _, m := range doc.Models {
		appID, ok := lookup.Resolve("app_" + m.App)
		if !ok {
			continue
		}
		edges = append(edges, graph.Edge{
			Source: appID,
			Target: ident.Make("model", appQualified(m.App, m.Name)),
			Type:   graph.EdgeContains,
		})
	}
	for _, v := range doc.Views {
		appID, ok := lookup.Resolve("app_" + v.App)
		if !ok {
			continue
		}
		edges = append(edges, graph.Edge{
			Source: appID,
			Target: ident.Make("view", appQualified(v.App, v.Name)),
			Type:   graph.EdgeContains,
		})
	}

	for _, v := range doc.Views {
		viewID := ident.Make("view", appQualified(v.App, v.Name))
		for _, name := range v.Models {
			modelID, ok := lookup.Resolve("model_" + name)
			if !ok {
				continue
			}
			edges = append(edges, graph.Edge{
				Source: viewID,
				Target: modelID,
				Type:   graph.EdgeUses,
			})
		}
	}

	for _, m := range doc.Models {
		modelID := ident.Make("model", appQualified(m.App, m.Name))
		for _, r := range m.Relationships {
			relatedID, ok := lookup.Resolve("model_" + r.RelatedModel)
			if !ok {
				continue
			}
			attrs := graph.Attrs{"field": r.Field}
			if r.RelatedName != "" {
				attrs["relatedName"] = r.RelatedName
			}
			kind := graph.EdgeType(strings.ToLower(r.Kind))
			if kind == "" {
				kind = graph.EdgeDependency
			}
			edges = append(edges, graph.Edge{
				Source: modelID,
				Target: relatedID,
				Type:   kind,
				Attrs:  attrs,
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
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "analysis document does not match the Django analyzer schema")
	}
	return nil
}
