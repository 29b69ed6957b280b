package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/shop-tui/internal/notify"
	"github.com/altinukshini/shop-tui/internal/ui"
)

func RenderStatusBar(status, hints string, width int) string {
	left := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  " + status)

	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + help)
}

// RenderNotifications right-aligns the active toasts on one line, newest last.
func RenderNotifications(items []notify.Notification, width int) string {
	if len(items) == 0 {
		return ""
	}
	var toasts []string
	for _, n := range items {
		toasts = append(toasts, ui.NotificationStyle(n.Kind).Render(n.Message))
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, toasts...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Right).Render(line)
}
