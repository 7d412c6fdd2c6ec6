package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

// Colors are 256-color codes chosen to stay readable on both dark and
// light terminals.
var (
	colorAccent  = lipgloss.Color("44")  // cyan, primary accent
	colorOK      = lipgloss.Color("42")  // green, success
	colorFail    = lipgloss.Color("161") // red, errors
	colorCommand = lipgloss.Color("69")  // blue, runnable commands
	colorBright  = lipgloss.Color("231") // near-white, values
	colorMuted   = lipgloss.Color("246") // gray, secondary text
	colorFaint   = lipgloss.Color("241") // darker gray, chrome
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorFaint)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorBright)
)

var (
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand = lipgloss.NewStyle().Foreground(colorCommand)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMuted).Width(12)
)

// Status glyphs, pre-rendered since their color never changes.
var (
	glyphOK    = lipgloss.NewStyle().Foreground(colorOK).Render("✓")
	glyphFail  = lipgloss.NewStyle().Foreground(colorFail).Render("✗")
	glyphNote  = lipgloss.NewStyle().Foreground(colorMuted).Render("›")
	glyphArrow = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// Status lines go to stdout; commands that stream artifact data to
// stdout skip them.

// printSuccess prints a check-marked status line.
func printSuccess(format string, args ...any) {
	fmt.Println(glyphOK + " " + fmt.Sprintf(format, args...))
}

// printError prints a cross-marked status line.
func printError(format string, args ...any) {
	fmt.Println(glyphFail + " " + fmt.Sprintf(format, args...))
}

// printInfo prints a neutral status line.
func printInfo(format string, args ...any) {
	fmt.Println(glyphNote + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path an artifact was written to.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(glyphArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints an aligned label/value pair.
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints one line of graph statistics plus the cache badge.
func printStats(nodeCount, edgeCount int, ecosystem string, cached bool) {
	parts := make([]string, 0, 3)
	if nodeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d nodes", nodeCount))
	}
	if edgeCount > 0 {
		parts = append(parts, fmt.Sprintf("%d edges", edgeCount))
	}
	if ecosystem != "" {
		parts = append(parts, ecosystem)
	}
	fmt.Println("  " + StyleDim.Render(strings.Join(parts, " · ")) + " " + cacheBadge(cached))
}

// printArtifact prints an artifact's size and cache badge.
func printArtifact(size int64, cached bool) {
	fmt.Println("  " + StyleDim.Render(formatBytes(size)+" · ") + cacheBadge(cached))
}

// printNextStep suggests the follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// cacheBadge marks a result as served from cache or freshly computed.
func cacheBadge(hit bool) string {
	if hit {
		return lipgloss.NewStyle().Foreground(colorOK).Render("cached")
	}
	return lipgloss.NewStyle().Foreground(colorMuted).Render("fresh")
}

// =============================================================================
// Utilities
// =============================================================================

// formatBytes renders a byte count in human-readable form.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
