package render

import (
	"strings"
	"testing"

	"github.com/graphlift/graphlift/pkg/graph"
)

func testGraph() *graph.Graph {
	g := graph.New("react", "storefront")
	g.AddNode(graph.Node{
		ID:    "component_App",
		Title: "App",
		Type:  graph.NodeComponent,
		Sections: []graph.Section{
			{
				ID:   "sec_App_Props",
				Name: "Props",
				Items: []graph.Item{
					{ID: "prop_App_title", Value: "title: string"},
					{ID: "prop_App_onClick", Value: "onClick: func"},
				},
			},
		},
	})
	g.AddNode(graph.Node{ID: "component_Header", Title: "Header", Type: graph.NodeComponent})
	g.AddEdge(graph.Edge{Source: "component_App", Target: "component_Header", Type: graph.EdgeRenders})
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(), Options{})

	wantLines := []string{
		"digraph G {",
		"rankdir=TB;",
		`"component_App" [label="App"];`,
		`"component_Header" [label="Header"];`,
		`"component_App" -> "component_Header";`,
	}
	for _, line := range wantLines {
		if !strings.Contains(dot, line) {
			t.Errorf("DOT missing %q:\n%s", line, dot)
		}
	}
}

func TestToDOTDirection(t *testing.T) {
	dot := ToDOT(testGraph(), Options{Direction: "LR"})
	if !strings.Contains(dot, "rankdir=LR;") {
		t.Errorf("DOT should honor direction:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testGraph(), Options{Detailed: true})

	if !strings.Contains(dot, `label="App\nProps (2)"`) {
		t.Errorf("detailed label should carry section counts:\n%s", dot)
	}
	if !strings.Contains(dot, `[label="renders", fontsize=18]`) {
		t.Errorf("detailed edges should carry type labels:\n%s", dot)
	}
}

func TestToDOTNodeStyles(t *testing.T) {
	g := graph.New("django", "store")
	g.AddNode(graph.Node{ID: "app_shop", Title: "shop", Type: graph.NodeApp})
	g.AddNode(graph.Node{ID: "class_Catalog", Title: "Catalog", Type: graph.NodeInterface})
	g.AddNode(graph.Node{ID: "model_shop_Book", Title: "Book", Type: graph.NodeModel})

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, `"app_shop" [label="shop", fillcolor=lightgrey];`) {
		t.Errorf("app nodes should be filled grey:\n%s", dot)
	}
	if !strings.Contains(dot, `"class_Catalog" [label="Catalog", style="rounded,filled,dashed"];`) {
		t.Errorf("interface nodes should be dashed:\n%s", dot)
	}
	if !strings.Contains(dot, `"model_shop_Book" [label="Book"];`) {
		t.Errorf("model nodes should use default style:\n%s", dot)
	}
}

func TestToDOTQuotesSpecialTitles(t *testing.T) {
	g := graph.New("java", "")
	g.AddNode(graph.Node{ID: "class_Pair", Title: `Pair<K, "V">`, Type: graph.NodeClass})

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `label="Pair<K, \"V\">"`) {
		t.Errorf("titles should be quoted for DOT:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	first := ToDOT(testGraph(), Options{Detailed: true})
	second := ToDOT(testGraph(), Options{Detailed: true})
	if first != second {
		t.Error("ToDOT should be deterministic")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	svg := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="134pt" height="116pt" viewBox="0.00 0.00 133.98 116.00" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)

	got := string(normalizeViewBox(svg))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 133.98 116.00" width="134" height="116">`
	if !strings.Contains(got, want) {
		t.Errorf("normalizeViewBox = %s, want tag %s", got, want)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><g></g></svg>`)
	if got := normalizeViewBox(svg); string(got) != string(svg) {
		t.Errorf("SVG without viewBox should pass through unchanged: %s", got)
	}
}
