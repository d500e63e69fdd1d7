package statusbar

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// barStyle follows the Vitesse-inspired palette used across the TUI.
var barStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#1c1c1c", Dark: "#dbd7ca"}).
	Background(lipgloss.AdaptiveColor{Light: "#e6cc77", Dark: "#292929"}).
	Padding(0, 1)

// Render returns the styled bar segment, truncated to width cells.
func (i *Indicator) Render(width int) string {
	text := i.Text()
	if width > 2 {
		text = runewidth.Truncate(text, width-2, "…")
	}
	return barStyle.Render(text)
}
