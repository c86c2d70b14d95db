package teahost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("231")).
			Bold(true)
	buttonHoverStyle = buttonStyle.Background(lipgloss.Color("33"))
	panelStyle       = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("252"))
	panelHoverStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("231")).
			Bold(true)
)

// RenderButton renders a trigger region as a block matching its bounds,
// with the label centered. Hovered buttons use a brighter background.
func RenderButton(r *Region, hovered bool) string {
	style := buttonStyle
	if hovered {
		style = buttonHoverStyle
	}
	b := r.Bounds()
	return style.
		Width(b.W).
		Height(b.H).
		Align(lipgloss.Center, lipgloss.Center).
		Render(r.Label())
}

// RenderPanel renders a panel region as one row per item, padded to the
// region's bounds. The row at hoverIndex is highlighted; pass -1 for no
// highlight. Items that do not fit the region's height are dropped and
// overlong labels are truncated.
func RenderPanel(r *Region, hoverIndex int) string {
	b := r.Bounds()
	lines := make([]string, 0, b.H)
	for i, item := range r.Items() {
		if i >= b.H {
			break
		}
		style := panelStyle
		if i == hoverIndex {
			style = panelHoverStyle
		}
		label := ansi.Truncate(" "+item, b.W, "…")
		lines = append(lines, style.Width(b.W).Render(label))
	}
	for len(lines) < b.H {
		lines = append(lines, panelStyle.Width(b.W).Render(""))
	}
	return strings.Join(lines, "\n")
}
