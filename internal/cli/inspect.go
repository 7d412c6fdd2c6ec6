package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/graphlift/graphlift/pkg/graph"
	graphio "github.com/graphlift/graphlift/pkg/io"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorBright)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaint)
)

// inspectCommand creates the inspect command for browsing a converted
// graph's nodes interactively.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <graph.json>",
		Short: "Browse a graph's nodes interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ImportGraph(args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(newNodeBrowserModel(g))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// nodeBrowserModel - Interactive node browser
// =============================================================================

// nodeBrowserModel is the bubbletea model for browsing graph nodes.
// The list view shows one row per node with degree counts; enter opens
// a detail view with the node's sections and edges.
type nodeBrowserModel struct {
	Graph  *graph.Graph
	Cursor int
	Offset int
	Height int
	Detail bool

	inDegree  map[string]int
	outDegree map[string]int
}

// newNodeBrowserModel creates a browser model over g.
func newNodeBrowserModel(g *graph.Graph) nodeBrowserModel {
	in := make(map[string]int, len(g.Nodes))
	out := make(map[string]int, len(g.Nodes))
	for _, e := range g.Edges {
		out[e.Source]++
		in[e.Target]++
	}
	return nodeBrowserModel{
		Graph:     g,
		Height:    15,
		inDegree:  in,
		outDegree: out,
	}
}

func (m nodeBrowserModel) Init() tea.Cmd {
	return nil
}

func (m nodeBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.Detail && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if !m.Detail && m.Cursor < len(m.Graph.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Graph.Nodes) > 0 {
				m.Detail = !m.Detail
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m nodeBrowserModel) View() string {
	if m.Detail {
		return m.detailView()
	}
	return m.listView()
}

// listView renders the scrollable node table.
func (m nodeBrowserModel) listView() string {
	var b strings.Builder

	title := m.Graph.Meta.Project
	if title == "" {
		title = m.Graph.Meta.Ecosystem
	}
	b.WriteString(StyleTitle.Render("Inspect: " + title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s · %d nodes · %d edges · converted %s",
		m.Graph.Meta.Ecosystem, len(m.Graph.Nodes), len(m.Graph.Edges),
		formatRelativeTime(m.Graph.Meta.ConvertedAt))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Graph.Nodes) {
		end = len(m.Graph.Nodes)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Graph.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			n.Title,
			string(n.Type),
			fmt.Sprintf("%d", len(n.Sections)),
			fmt.Sprintf("%d", m.inDegree[n.ID]),
			fmt.Sprintf("%d", m.outDegree[n.ID]),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("", "Node", "Type", "Sections", "In", "Out").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col >= 3 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Graph.Nodes))))

	return b.String()
}

// detailView renders the selected node's sections and edges.
func (m nodeBrowserModel) detailView() string {
	n := m.Graph.Nodes[m.Cursor]
	var b strings.Builder

	b.WriteString(StyleTitle.Render(n.Title))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(string(n.Type)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	for _, s := range n.Sections {
		b.WriteString(StyleHighlight.Render(s.Name))
		b.WriteString("\n")
		for _, item := range s.Items {
			line := "  " + item.Value
			if item.Icon != "" {
				line = "  " + item.Icon + " " + item.Value
			}
			b.WriteString(listNormalStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	out, in := m.edgesFor(n.ID)
	if len(out) > 0 {
		b.WriteString(StyleHighlight.Render("Outgoing"))
		b.WriteString("\n")
		for _, e := range out {
			b.WriteString(listNormalStyle.Render("  → " + m.titleFor(e.Target)))
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  (%s)", e.Type)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(in) > 0 {
		b.WriteString(StyleHighlight.Render("Incoming"))
		b.WriteString("\n")
		for _, e := range in {
			b.WriteString(listNormalStyle.Render("  ← " + m.titleFor(e.Source)))
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  (%s)", e.Type)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// edgesFor collects the edges touching the node with the given id.
func (m nodeBrowserModel) edgesFor(id string) (out, in []graph.Edge) {
	for _, e := range m.Graph.Edges {
		if e.Source == id {
			out = append(out, e)
		}
		if e.Target == id {
			in = append(in, e)
		}
	}
	return out, in
}

// titleFor resolves a node id to its display title.
func (m nodeBrowserModel) titleFor(id string) string {
	if n, ok := m.Graph.NodeByID(id); ok {
		return n.Title
	}
	return id
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
