package java

import (
	"encoding/json"
	"strings"

	"github.com/graphlift/graphlift/pkg/errors"
	"github.com/graphlift/graphlift/pkg/graph"
	"github.com/graphlift/graphlift/pkg/ident"
)

// Ecosystem is the metadata tag stamped on every graph this package
// produces.
const Ecosystem = "java"

// universalRoot is the implicit superclass of every Java class. It is
// never rendered in Class Info and never produces an inheritance edge.
const universalRoot = "java.lang.Object"

// Element tags of the package tree.
const (
	kindPackage = "package"
	kindClass   = "class"
)

// packageExport is the analyzer format: a root package with nested
// elements, each tagged as a sub-package or a class.
type packageExport struct {
	Name     string         `json:"name"`
	Metadata map[string]any `json:"metadata"`
	Elements []treeElement  `json:"elements"`
}

type treeElement struct {
	Kind          string        `json:"type"`
	Name          string        `json:"name"`
	QualifiedName string        `json:"qualifiedName"`
	Elements      []treeElement `json:"elements"`

	IsInterface          bool           `json:"isInterface"`
	IsAbstract           bool           `json:"isAbstract"`
	SuperClassName       string         `json:"superClassName"`
	Interfaces           []string       `json:"interfaces"`
	Fields               []fieldRecord  `json:"fields"`
	Methods              []methodRecord `json:"methods"`
	Imports              []string       `json:"imports"`
	OutgoingDependencies []string       `json:"outgoingDependencies"`
	IncomingDependencies []string       `json:"incomingDependencies"`
}

type fieldRecord struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Modifiers []string `json:"modifiers"`
}

type methodRecord struct {
	Name        string        `json:"name"`
	ReturnType  string        `json:"returnType"`
	Modifiers   []string      `json:"modifiers"`
	Parameters  []paramRecord `json:"parameters"`
	Constructor bool          `json:"constructor"`
}

type paramRecord struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// classEntry is one class found during the tree walk, with its position
// resolved. The walk output is the immutable entity list both passes
// operate on.
type classEntry struct {
	simpleName    string
	qualifiedName string
	pkg           string
	record        treeElement
}

// Convert converts a class-hierarchy export. Classes become "class" or
// "interface" nodes; superclass, interface, and dependency references
// become inheritance, implementation, and dependency edges.
func Convert(v any) (*graph.Graph, error) {
	var doc packageExport
	if err := decode(v, &doc); err != nil {
		return nil, err
	}

	var classes []classEntry
	collectClasses(doc.Name, doc.Elements, &classes)

	g := graph.New(Ecosystem, doc.Name)
	g.Meta.Source = doc.Metadata

	lookup := graph.Lookup{}
	for _, c := range classes {
		node := classNode(c)
		g.AddNode(node)
		lookup.Add(c.simpleName, node.ID)
	}

	g.AddEdges(classEdges(classes, lookup))
	return g, nil
}

// collectClasses walks the package tree depth-first and flattens it to
// a class list. Qualified names missing from the export are composed
// from the enclosing package path. Elements with unknown tags are
// skipped.
func collectClasses(pkg string, elements []treeElement, out *[]classEntry) {
	for _, el := range elements {
		switch el.Kind {
		case kindPackage:
			name := el.QualifiedName
			if name == "" {
				name = joinQualified(pkg, el.Name)
			}
			collectClasses(name, el.Elements, out)
		case kindClass:
			qn := el.QualifiedName
			if qn == "" {
				qn = joinQualified(pkg, el.Name)
			}
			*out = append(*out, classEntry{
				simpleName:    simpleName(el.Name),
				qualifiedName: qn,
				pkg:           pkg,
				record:        el,
			})
		}
	}
}

// classNode is the first pass for one class: project the record onto a
// node with Class Info, Fields, Methods, and Imports sections, in that
// order, omitting empty ones.
func classNode(c classEntry) graph.Node {
	nodeType := graph.NodeClass
	if c.record.IsInterface {
		nodeType = graph.NodeInterface
	}

	node := graph.Node{
		ID:    ident.Make("class", c.qualifiedName),
		Title: c.simpleName,
		Type:  nodeType,
		Attrs: graph.Attrs{"qualifiedName": c.qualifiedName, "package": c.pkg},
	}
	if c.record.IsAbstract {
		node.Attrs["abstract"] = true
	}

	if sec, ok := classInfoSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}
	if sec, ok := fieldsSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}
	if sec, ok := methodsSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}
	if sec, ok := importsSection(c); ok {
		node.Sections = append(node.Sections, sec)
	}

	return node
}

func classInfoSection(c classEntry) (graph.Section, bool) {
	sec := graph.Section{
		ID:   ident.Make("sec", c.simpleName+"_ClassInfo"),
		Name: "Class Info",
	}

	if super := c.record.SuperClassName; super != "" && !isUniversalRoot(super) {
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("info", c.simpleName+"_extends"),
			Value: "extends " + simpleName(super),
			Icon:  "inheritance",
			Attrs: graph.Attrs{"superClassName": super},
		})
	}
	for _, iface := range c.record.Interfaces {
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("info", c.simpleName+"_implements_"+simpleName(iface)),
			Value: "implements " + simpleName(iface),
			Icon:  "implementation",
			Attrs: graph.Attrs{"interface": iface},
		})
	}

	if len(sec.Items) == 0 {
		return graph.Section{}, false
	}
	return sec, true
}

func fieldsSection(c classEntry) (graph.Section, bool) {
	if len(c.record.Fields) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.simpleName+"_Fields"),
		Name: "Fields",
	}
	for _, f := range c.record.Fields {
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("field", c.simpleName+"_"+f.Name),
			Value: renderField(f),
			Icon:  "field",
			Attrs: graph.Attrs{"type": f.Type},
		})
	}
	return sec, true
}

func methodsSection(c classEntry) (graph.Section, bool) {
	if len(c.record.Methods) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.simpleName+"_Methods"),
		Name: "Methods",
	}
	for _, m := range c.record.Methods {
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("method", c.simpleName+"_"+m.Name),
			Value: renderMethod(c.simpleName, m),
			Icon:  "method",
		})
	}
	return sec, true
}

func importsSection(c classEntry) (graph.Section, bool) {
	if len(c.record.Imports) == 0 {
		return graph.Section{}, false
	}
	sec := graph.Section{
		ID:   ident.Make("sec", c.simpleName+"_Imports"),
		Name: "Imports",
	}
	for _, imp := range c.record.Imports {
		sec.Items = append(sec.Items, graph.Item{
			ID:    ident.Make("import", c.simpleName+"_"+imp),
			Value: imp,
			Icon:  "import",
		})
	}
	return sec, true
}

// renderField formats "<modifiers> <simple-type> <name>".
func renderField(f fieldRecord) string {
	parts := make([]string, 0, len(f.Modifiers)+2)
	parts = append(parts, f.Modifiers...)
	if f.Type != "" {
		parts = append(parts, simpleName(f.Type))
	}
	parts = append(parts, f.Name)
	return strings.Join(parts, " ")
}

// renderMethod formats "<modifiers> <name>(<simple-param-types>): <simple-return-type>".
// Constructors render with the owning class's simple name and no return
// type.
func renderMethod(className string, m methodRecord) string {
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, simpleName(p.Type))
	}

	name := m.Name
	constructor := m.Constructor || m.Name == className
	if constructor {
		name = className
	}

	signature := name + "(" + strings.Join(params, ", ") + ")"
	if !constructor && m.ReturnType != "" {
		signature += ": " + simpleName(m.ReturnType)
	}

	if len(m.Modifiers) == 0 {
		return signature
	}
	return strings.Join(m.Modifiers, " ") + " " + signature
}

// classEdges is the second pass: a pure function over the class list
// and the pass-1 lookup. All resolution is by unqualified simple name;
// unresolved names (external or unanalyzed classes) produce no edge.
func classEdges(classes []classEntry, lookup graph.Lookup) []graph.Edge {
	var edges []graph.Edge
	for _, c := range classes {
		sourceID := ident.Make("class", c.qualifiedName)

		if super := c.record.SuperClassName; super != "" && !isUniversalRoot(super) {
			if targetID, ok := lookup.Resolve(simpleName(super)); ok {
				edges = append(edges, graph.Edge{
					Source: sourceID,
					Target: targetID,
					Type:   graph.EdgeInheritance,
				})
			}
		}

		for _, iface := range c.record.Interfaces {
			targetID, ok := lookup.Resolve(simpleName(iface))
			if !ok {
				continue
			}
			edges = append(edges, graph.Edge{
				Source: sourceID,
				Target: targetID,
				Type:   graph.EdgeImplementation,
			})
		}

		for _, dep := range c.record.OutgoingDependencies {
			targetID, ok := lookup.Resolve(simpleName(dep))
			if !ok {
				continue
			}
			edges = append(edges, graph.Edge{
				Source: sourceID,
				Target: targetID,
				Type:   graph.EdgeDependency,
			})
		}
	}
	return edges
}

// simpleName strips the package qualifier from a dotted name.
func simpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

func isUniversalRoot(name string) bool {
	return name == universalRoot || name == simpleName(universalRoot)
}

func joinQualified(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
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
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "analysis document does not match the Java analyzer schema")
	}
	return nil
}
