package cli

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/graphlift/graphlift/pkg/graph"
)

func browserGraph() *graph.Graph {
	g := graph.New("react", "storefront")
	g.AddNode(graph.Node{
		ID:    "component_App",
		Title: "App",
		Type:  graph.NodeComponent,
		Sections: []graph.Section{
			{ID: "sec_deps", Name: "Dependencies", Items: []graph.Item{
				{ID: "dep_Button", Value: "Button"},
			}},
		},
	})
	g.AddNode(graph.Node{ID: "component_Button", Title: "Button", Type: graph.NodeComponent})
	g.AddEdge(graph.Edge{Source: "component_App", Target: "component_Button", Type: graph.EdgeDependency})
	return g
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNodeBrowserDegrees(t *testing.T) {
	m := newNodeBrowserModel(browserGraph())

	if m.outDegree["component_App"] != 1 {
		t.Errorf("out degree of App = %d, want 1", m.outDegree["component_App"])
	}
	if m.inDegree["component_Button"] != 1 {
		t.Errorf("in degree of Button = %d, want 1", m.inDegree["component_Button"])
	}
	if m.inDegree["component_App"] != 0 {
		t.Errorf("in degree of App = %d, want 0", m.inDegree["component_App"])
	}
}

func TestNodeBrowserNavigation(t *testing.T) {
	m := newNodeBrowserModel(browserGraph())

	next, _ := m.Update(keyMsg("down"))
	m = next.(nodeBrowserModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor after down = %d, want 1", m.Cursor)
	}

	// At the last node the cursor stays put.
	next, _ = m.Update(keyMsg("down"))
	m = next.(nodeBrowserModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor after down at bottom = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("k"))
	m = next.(nodeBrowserModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor after k = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(nodeBrowserModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor after up at top = %d, want 0", m.Cursor)
	}
}

func TestNodeBrowserScrollWindow(t *testing.T) {
	g := graph.New("java", "big")
	for i := 0; i < 30; i++ {
		g.AddNode(graph.Node{
			ID:    fmt.Sprintf("class_C%d", i),
			Title: fmt.Sprintf("C%d", i),
			Type:  graph.NodeClass,
		})
	}
	m := newNodeBrowserModel(g)
	m.Height = 5

	var next tea.Model = m
	for i := 0; i < 10; i++ {
		next, _ = next.Update(keyMsg("down"))
	}
	m = next.(nodeBrowserModel)
	if m.Cursor != 10 {
		t.Fatalf("Cursor = %d, want 10", m.Cursor)
	}
	if m.Offset != m.Cursor-m.Height+1 {
		t.Errorf("Offset = %d, want %d", m.Offset, m.Cursor-m.Height+1)
	}
}

func TestNodeBrowserDetailToggle(t *testing.T) {
	m := newNodeBrowserModel(browserGraph())

	next, _ := m.Update(keyMsg("enter"))
	m = next.(nodeBrowserModel)
	if !m.Detail {
		t.Fatal("enter should open the detail view")
	}

	// Navigation is disabled while the detail view is open.
	next, _ = m.Update(keyMsg("down"))
	m = next.(nodeBrowserModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor moved in detail view: %d", m.Cursor)
	}

	next, _ = m.Update(keyMsg("esc"))
	m = next.(nodeBrowserModel)
	if m.Detail {
		t.Error("esc should close the detail view")
	}
}

func TestNodeBrowserListView(t *testing.T) {
	m := newNodeBrowserModel(browserGraph())
	view := m.View()

	for _, want := range []string{"storefront", "App", "Button", "component"} {
		if !strings.Contains(view, want) {
			t.Errorf("list view missing %q:\n%s", want, view)
		}
	}
}

func TestNodeBrowserDetailView(t *testing.T) {
	m := newNodeBrowserModel(browserGraph())
	m.Detail = true
	view := m.View()

	for _, want := range []string{"App", "Dependencies", "Button", "Outgoing"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Incoming") {
		t.Error("App has no incoming edges, detail view should omit the section")
	}
}

func TestNodeBrowserResize(t *testing.T) {
	m := newNodeBrowserModel(browserGraph())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = next.(nodeBrowserModel)
	if m.Height != 32 {
		t.Errorf("Height after resize = %d, want 32", m.Height)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	m = next.(nodeBrowserModel)
	if m.Height != 5 {
		t.Errorf("Height after tiny resize = %d, want 5", m.Height)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "unknown"},
		{"seconds", time.Now().Add(-30 * time.Second), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5m ago"},
		{"hours", time.Now().Add(-3 * time.Hour), "3h ago"},
		{"days", time.Now().Add(-48 * time.Hour), "2d ago"},
		{"older", time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC), "Mar 14, 2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Errorf("formatRelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
