package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/shop-tui/internal/ui"
)

func RenderHeader(host string, cartCount, wishlistCount int, width int) string {
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(fmt.Sprintf(" shop-tui | %s", host))

	badges := renderBadge("♡", wishlistCount) + "  " + renderBadge("Cart", cartCount) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(badges)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(ui.ColorHighlight).
		Width(width).
		Render(left + padding + badges)
}

// renderBadge hides the count when it is zero, like the storefront header.
func renderBadge(label string, count int) string {
	if count <= 0 {
		return ui.StyleMuted.Render(label)
	}
	return label + " " + lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Background(ui.ColorPrimary).
		Padding(0, 1).
		Render(fmt.Sprint(count))
}
