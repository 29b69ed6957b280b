package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/shop-tui/internal/ui"
)

// Action names what the dialog is guarding.
type Action string

const (
	RemoveFromCart     Action = "remove-from-cart"
	RemoveFromWishlist Action = "remove-from-wishlist"
)

type ResultMsg struct {
	Confirmed bool
	Action    Action
	ProductID int64
}

type Model struct {
	Title     string
	Message   string
	Action    Action
	ProductID int64
	active    bool
	selected  bool // true = confirm selected
}

func New(title, message string, action Action, productID int64) Model {
	return Model{
		Title:     title,
		Message:   message,
		Action:    action,
		ProductID: productID,
		active:    true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		return m.finish(true)
	case "n", "N", "esc":
		return m.finish(false)
	case "enter":
		return m.finish(m.selected)
	case "tab", "left", "right", "h", "l":
		m.selected = !m.selected
	}
	return m, nil
}

func (m Model) finish(confirmed bool) (Model, tea.Cmd) {
	m.active = false
	result := ResultMsg{Confirmed: confirmed, Action: m.Action, ProductID: m.ProductID}
	return m, func() tea.Msg { return result }
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	button := func(label string, on bool, bg lipgloss.Color) string {
		st := lipgloss.NewStyle().Padding(0, 2)
		if on {
			return st.Bold(true).Background(bg).Foreground(lipgloss.Color("#FFFBEB")).Render(label)
		}
		return st.Foreground(ui.ColorMuted).Render(label)
	}

	heading := ui.StyleWarning.Bold(true).Render(m.Title)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("Remove", m.selected, ui.ColorFailure), " ",
		button("Keep", !m.selected, ui.ColorSuccess))
	hint := ui.StyleMuted.Render("y remove · n keep · tab switch")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 3).
		Width(46).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", m.Message, "", buttons, "", hint))
}
