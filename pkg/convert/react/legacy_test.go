package react

import (
	"testing"

	"github.com/graphlift/graphlift/pkg/graph"
)

const legacyExport = `[
	{
		"fileName": "src/App.jsx",
		"exports": ["App"],
		"imports": [
			{"name": "Header", "path": "./Header"},
			"react"
		],
		"outgoingDependencies": ["src/Header.jsx", "node_modules/react"],
		"incomingDependencies": ["src/index.jsx"]
	},
	{
		"fileName": "src/Header.jsx",
		"exports": ["Header", "HeaderLogo"],
		"outgoingDependencies": [],
		"incomingDependencies": ["src/App.jsx"]
	}
]`

func TestConvertLegacy(t *testing.T) {
	g, err := ConvertLegacy(decodeJSON(t, legacyExport))
	if err != nil {
		t.Fatalf("ConvertLegacy() error = %v", err)
	}

	if g.Meta.Ecosystem != "react" {
		t.Errorf("ecosystem = %q, want react", g.Meta.Ecosystem)
	}
	if len(g.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(g.Nodes))
	}

	app, ok := g.NodeByID("file_src_App_jsx")
	if !ok {
		t.Fatal("file_src_App_jsx missing")
	}
	if app.Type != graph.NodeFile {
		t.Errorf("type = %q, want file", app.Type)
	}
	if app.Title != "src/App.jsx" {
		t.Errorf("title = %q, want src/App.jsx", app.Title)
	}
}

func TestConvertLegacySections(t *testing.T) {
	g, err := ConvertLegacy(decodeJSON(t, legacyExport))
	if err != nil {
		t.Fatalf("ConvertLegacy() error = %v", err)
	}

	app, _ := g.NodeByID("file_src_App_jsx")
	want := []string{"Imports", "Exports"}
	if len(app.Sections) != len(want) {
		t.Fatalf("sections = %d, want %d", len(app.Sections), len(want))
	}
	for i, name := range want {
		if app.Sections[i].Name != name {
			t.Errorf("section[%d] = %q, want %q", i, app.Sections[i].Name, name)
		}
	}

	if !hasItem(app, "Imports", "Header from './Header'") {
		t.Error("Imports missing record-style entry")
	}
	if !hasItem(app, "Imports", "react") {
		t.Error("Imports missing string-style entry")
	}
	if !hasItem(app, "Exports", "App") {
		t.Error("Exports missing App")
	}

	// Header declares no imports: that section is omitted.
	header, _ := g.NodeByID("file_src_Header_jsx")
	if len(header.Sections) != 1 || header.Sections[0].Name != "Exports" {
		t.Errorf("Header sections = %+v, want single Exports section", header.Sections)
	}
}

func TestConvertLegacyEdges(t *testing.T) {
	g, err := ConvertLegacy(decodeJSON(t, legacyExport))
	if err != nil {
		t.Fatalf("ConvertLegacy() error = %v", err)
	}

	// Expected edges:
	//   App -> Header   outgoing (declared by App)
	//   App -> Header   incoming (declared by Header)
	// src/index.jsx and node_modules/react have no node and are dropped.
	if len(g.Edges) != 2 {
		t.Fatalf("edges = %d, want 2: %+v", len(g.Edges), g.Edges)
	}

	directions := map[string]int{}
	for _, e := range g.Edges {
		if e.Type != graph.EdgeDependency {
			t.Errorf("edge type = %q, want dependency", e.Type)
		}
		if e.Source != "file_src_App_jsx" || e.Target != "file_src_Header_jsx" {
			t.Errorf("edge = %s -> %s, want file_src_App_jsx -> file_src_Header_jsx", e.Source, e.Target)
		}
		dir, _ := e.Attrs["direction"].(string)
		directions[dir]++
	}
	if directions["outgoing"] != 1 || directions["incoming"] != 1 {
		t.Errorf("direction tags = %v, want one outgoing and one incoming", directions)
	}

	if err := g.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConvertLegacyRejectsMistyped(t *testing.T) {
	_, err := ConvertLegacy(decodeJSON(t, `[{"fileName": 42, "exports": []}]`))
	if err == nil {
		t.Fatal("ConvertLegacy() error = nil, want INVALID_INPUT")
	}
}
