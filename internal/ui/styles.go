package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/shop-tui/internal/notify"
)

var (
	ColorPrimary   = lipgloss.Color("#B45309")
	ColorSuccess   = lipgloss.Color("#4CAF50")
	ColorFailure   = lipgloss.Color("#F44336")
	ColorWarning   = lipgloss.Color("#D97706")
	ColorInfo      = lipgloss.Color("#0EA5E9")
	ColorMuted     = lipgloss.Color("#78716C")
	ColorBorder    = lipgloss.Color("#44403C")
	ColorHighlight = lipgloss.Color("#292524")
	ColorActive    = lipgloss.Color("#E11D48")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFBEB")).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleActive  = lipgloss.NewStyle().Foreground(ColorActive)

	StyleSelected = lipgloss.NewStyle().Background(ColorHighlight)

	StylePrice = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FCD34D"))
)

// NotificationStyle is the toast box for a notification kind.
func NotificationStyle(kind notify.Kind) lipgloss.Style {
	bg := ColorSuccess
	if kind == notify.Error {
		bg = ColorFailure
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(bg).
		Padding(0, 2)
}

// WishIcon is the heart shown on product cards.
func WishIcon(active bool) string {
	if active {
		return StyleActive.Render("♥")
	}
	return StyleMuted.Render("♡")
}
