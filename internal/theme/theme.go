// Package theme defines the terminal styles for ticklist output.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ticklab/ticklist/pkg/types"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorGreen  = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed    = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorGray   = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
)

// DoneStyle renders completed item text.
var DoneStyle = lipgloss.NewStyle().
	Strikethrough(true).
	Foreground(ColorGray)

// ArchivedStyle renders archived item text.
var ArchivedStyle = lipgloss.NewStyle().
	Faint(true).
	Foreground(ColorGray)

// OverdueStyle marks items whose due date has passed.
var OverdueStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// IDStyle renders the short item identifier column.
var IDStyle = lipgloss.NewStyle().
	Faint(true)

// HeaderStyle renders section headers in stats output.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true)

// CategoryStyle renders a category name in its stored hex color.
func CategoryStyle(hexColor string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor))
}

// PriorityMarker returns the styled marker shown next to an item, or ""
// for PriorityNone.
func PriorityMarker(p types.Priority) string {
	switch p {
	case types.PriorityHigh:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorRed).Render("!!!")
	case types.PriorityMedium:
		return lipgloss.NewStyle().Foreground(ColorYellow).Render("!!")
	case types.PriorityLow:
		return lipgloss.NewStyle().Foreground(ColorGreen).Render("!")
	default:
		return ""
	}
}

// Checkbox returns the checkbox glyph for an item's completion state.
func Checkbox(checked bool) string {
	if checked {
		return lipgloss.NewStyle().Foreground(ColorGreen).Render("[x]")
	}
	return "[ ]"
}
