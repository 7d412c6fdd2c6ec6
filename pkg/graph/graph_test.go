package graph

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testGraph() *Graph {
	g := New("react", "storefront")
	g.Meta.ConvertedAt = time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
	g.AddNode(Node{
		ID:    "component_App",
		Title: "App",
		Type:  NodeComponent,
		Sections: []Section{
			{
				ID:   "sec_App_Props",
				Name: "Props",
				Items: []Item{
					{ID: "prop_App_title", Value: "title: string (required)"},
				},
			},
		},
	})
	g.AddNode(Node{ID: "component_Header", Title: "Header", Type: NodeComponent})
	g.AddEdge(Edge{Source: "component_App", Target: "component_Header", Type: EdgeRenders})
	return g
}

func TestMarshalRoundTrip(t *testing.T) {
	g := testGraph()

	data, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	parsed, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph() error = %v", err)
	}

	if len(parsed.Nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(parsed.Nodes))
	}
	if len(parsed.Edges) != 1 {
		t.Errorf("edges = %d, want 1", len(parsed.Edges))
	}
	if parsed.Meta.Ecosystem != "react" {
		t.Errorf("ecosystem = %q, want %q", parsed.Meta.Ecosystem, "react")
	}
	if parsed.Meta.Project != "storefront" {
		t.Errorf("project = %q, want %q", parsed.Meta.Project, "storefront")
	}
	if !parsed.Meta.ConvertedAt.Equal(g.Meta.ConvertedAt) {
		t.Errorf("convertedAt = %v, want %v", parsed.Meta.ConvertedAt, g.Meta.ConvertedAt)
	}

	node, ok := parsed.NodeByID("component_App")
	if !ok {
		t.Fatal("component_App missing after round trip")
	}
	if len(node.Sections) != 1 || node.Sections[0].Name != "Props" {
		t.Errorf("sections = %+v, want one Props section", node.Sections)
	}
}

func TestWireFieldNames(t *testing.T) {
	data, err := Marshal(testGraph())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	// The JSON field names are the compatibility surface with the
	// visualizer; renames break consumers silently.
	for _, field := range []string{
		`"nodes"`, `"edges"`, `"metadata"`, `"id"`, `"title"`, `"type"`,
		`"sections"`, `"name"`, `"items"`, `"value"`, `"source"`, `"target"`,
		`"ecosystem"`, `"convertedAt"`,
	} {
		if !bytes.Contains(data, []byte(field)) {
			t.Errorf("marshaled graph missing field %s", field)
		}
	}
}

func TestReadValidates(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{
			name:    "dangling edge target",
			json:    `{"nodes":[{"id":"a","title":"A","type":"class"}],"edges":[{"source":"a","target":"ghost","type":"dependency"}],"metadata":{"ecosystem":"java"}}`,
			wantErr: "unknown target",
		},
		{
			name:    "dangling edge source",
			json:    `{"nodes":[{"id":"a","title":"A","type":"class"}],"edges":[{"source":"ghost","target":"a","type":"dependency"}],"metadata":{"ecosystem":"java"}}`,
			wantErr: "unknown source",
		},
		{
			name:    "duplicate node id",
			json:    `{"nodes":[{"id":"a","title":"A","type":"class"},{"id":"a","title":"A2","type":"class"}],"edges":[],"metadata":{"ecosystem":"java"}}`,
			wantErr: "duplicate node id",
		},
		{
			name:    "empty node id",
			json:    `{"nodes":[{"id":"","title":"A","type":"class"}],"edges":[],"metadata":{"ecosystem":"java"}}`,
			wantErr: "empty id",
		},
		{
			name:    "missing node type",
			json:    `{"nodes":[{"id":"a","title":"A"}],"edges":[],"metadata":{"ecosystem":"java"}}`,
			wantErr: "no type",
		},
		{
			name:    "empty section",
			json:    `{"nodes":[{"id":"a","title":"A","type":"class","sections":[{"id":"s","name":"Fields","items":[]}]}],"edges":[],"metadata":{"ecosystem":"java"}}`,
			wantErr: "empty section",
		},
		{
			name:    "untyped edge",
			json:    `{"nodes":[{"id":"a","title":"A","type":"class"},{"id":"b","title":"B","type":"class"}],"edges":[{"source":"a","target":"b"}],"metadata":{"ecosystem":"java"}}`,
			wantErr: "no type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.json))
			if err == nil {
				t.Fatal("Read() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Read() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")

	g := testGraph()
	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	loaded, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(loaded.Nodes) != len(g.Nodes) || len(loaded.Edges) != len(g.Edges) {
		t.Errorf("loaded %d nodes / %d edges, want %d / %d",
			len(loaded.Nodes), len(loaded.Edges), len(g.Nodes), len(g.Edges))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("ReadFile() error = nil, want open error")
	}
	if !strings.Contains(err.Error(), "open") {
		t.Errorf("ReadFile() error = %v, want open error", err)
	}
}

func TestAddEdges(t *testing.T) {
	g := New("django", "")
	g.AddNode(Node{ID: "model_Order", Title: "Order", Type: NodeModel})
	g.AddNode(Node{ID: "model_Book", Title: "Book", Type: NodeModel})

	g.AddEdges([]Edge{
		{Source: "model_Order", Target: "model_Book", Type: EdgeType("foreignkey"), Attrs: Attrs{"field": "book"}},
	})

	if len(g.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(g.Edges))
	}
	e := g.Edges[0]
	if e.Source != "model_Order" || e.Target != "model_Book" {
		t.Errorf("edge = %s -> %s, want model_Order -> model_Book", e.Source, e.Target)
	}
	if e.Attrs["field"] != "book" {
		t.Errorf("edge attrs = %v, want field=book", e.Attrs)
	}
}

func TestLookupLastWins(t *testing.T) {
	l := Lookup{}
	l.Add("Book", "class_com_a_Book")
	l.Add("Book", "class_com_b_Book")

	id, ok := l.Resolve("Book")
	if !ok || id != "class_com_b_Book" {
		t.Errorf("Resolve(Book) = %q, %v; want class_com_b_Book, true", id, ok)
	}
}

func TestLookupIgnoresEmptyKey(t *testing.T) {
	l := Lookup{}
	l.Add("", "node_x")
	if _, ok := l.Resolve(""); ok {
		t.Error("empty key was registered")
	}
}

func TestComputeStats(t *testing.T) {
	g := testGraph()
	s := g.ComputeStats()

	if s.Nodes != 2 || s.Edges != 1 {
		t.Errorf("stats = %d nodes / %d edges, want 2 / 1", s.Nodes, s.Edges)
	}
	if s.NodeTypes[NodeComponent] != 2 {
		t.Errorf("component count = %d, want 2", s.NodeTypes[NodeComponent])
	}
	if s.EdgeTypes[EdgeRenders] != 1 {
		t.Errorf("renders count = %d, want 1", s.EdgeTypes[EdgeRenders])
	}
}

func TestNewStampsMetadata(t *testing.T) {
	before := time.Now().Add(-time.Second)
	g := New("java", "catalog")
	after := time.Now().Add(time.Second)

	if g.Meta.Ecosystem != "java" || g.Meta.Project != "catalog" {
		t.Errorf("meta = %+v, want ecosystem=java project=catalog", g.Meta)
	}
	if g.Meta.ConvertedAt.Before(before) || g.Meta.ConvertedAt.After(after) {
		t.Errorf("convertedAt = %v, not within test window", g.Meta.ConvertedAt)
	}
}
