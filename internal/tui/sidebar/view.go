// Package sidebar is the slide-in category menu. Dropdown sections behave
// as an accordion: at most one is expanded.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/ui"
)

const Width = 32

// row is one selectable line: a section header, or a link inside the
// expanded section.
type row struct {
	section int
	link    int // -1 for the section header
}

type Model struct {
	sections []model.MenuSection
	expanded int
	cursor   int
	height   int
	visible  bool
}

func New() Model {
	return Model{expanded: -1}
}

func (m *Model) SetMenu(sections []model.MenuSection) {
	m.sections = sections
	m.expanded = -1
	m.cursor = 0
}

func (m *Model) Toggle() {
	if m.visible {
		m.Close()
		return
	}
	m.visible = true
}

func (m *Model) Close() {
	m.visible = false
}

func (m Model) IsVisible() bool { return m.visible }

// Expanded is the index of the open dropdown, or -1.
func (m Model) Expanded() int { return m.expanded }

// ToggleDropdown opens section i and closes every other one; toggling the
// open section closes it.
func (m *Model) ToggleDropdown(i int) {
	if i < 0 || i >= len(m.sections) || !m.sections[i].IsDropdown() {
		return
	}
	if m.expanded == i {
		m.expanded = -1
	} else {
		m.expanded = i
	}
	m.cursor = m.headerRow(i)
}

func (m Model) rows() []row {
	var rows []row
	for i, s := range m.sections {
		rows = append(rows, row{section: i, link: -1})
		if i == m.expanded {
			for j := range s.Links {
				rows = append(rows, row{section: i, link: j})
			}
		}
	}
	return rows
}

func (m Model) headerRow(section int) int {
	for i, r := range m.rows() {
		if r.section == section && r.link < 0 {
			return i
		}
	}
	return 0
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		rows := m.rows()
		switch {
		case key.Matches(msg, ui.Keys.Back), key.Matches(msg, ui.Keys.Menu):
			m.Close()
		case key.Matches(msg, ui.Keys.Down):
			if m.cursor < len(rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, ui.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, ui.Keys.Enter), key.Matches(msg, ui.Keys.Right):
			if m.cursor >= len(rows) {
				return m, nil
			}
			r := rows[m.cursor]
			section := m.sections[r.section]
			if r.link < 0 && section.IsDropdown() {
				m.ToggleDropdown(r.section)
				return m, nil
			}
			url := section.URL
			if r.link >= 0 {
				url = section.Links[r.link].URL
			}
			if url == "" {
				return m, nil
			}
			m.Close()
			return m, func() tea.Msg { return ui.OpenURLMsg{URL: url} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.visible {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).Render("Categories")

	var b strings.Builder
	b.WriteString(" " + title + "\n\n")
	if len(m.sections) == 0 {
		b.WriteString(ui.StyleMuted.Render(" No categories"))
	}
	for i, r := range m.rows() {
		section := m.sections[r.section]
		var line string
		if r.link < 0 {
			arrow := "  "
			if section.IsDropdown() {
				arrow = "▸ "
				if r.section == m.expanded {
					arrow = "▾ "
				}
			}
			line = " " + arrow + section.Title
		} else {
			line = "     " + section.Links[r.link].Title
		}
		if i == m.cursor {
			line = ui.StyleSelected.Width(Width - 2).Render(line)
		}
		b.WriteString(line + "\n")
	}

	h := m.height
	if h < 1 {
		h = 1
	}
	return ui.StylePaneFocused.Width(Width - 2).Height(h).Render(b.String())
}
