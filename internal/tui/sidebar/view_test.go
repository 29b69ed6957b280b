package sidebar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/ui"
)

func menu() []model.MenuSection {
	return []model.MenuSection{
		{Title: "Sarees", URL: "/sarees/", Links: []model.MenuLink{
			{Title: "Silk", URL: "/sarees/silk/"},
			{Title: "Cotton", URL: "/sarees/cotton/"},
		}},
		{Title: "Lehengas", Links: []model.MenuLink{
			{Title: "Bridal", URL: "/lehengas/bridal/"},
		}},
		{Title: "About", URL: "/about/"},
	}
}

func open() Model {
	m := New()
	m.SetMenu(menu())
	m.Toggle()
	return m
}

var (
	down  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestToggleVisibility(t *testing.T) {
	m := New()
	assert.False(t, m.IsVisible())
	m.Toggle()
	assert.True(t, m.IsVisible())
	m.Toggle()
	assert.False(t, m.IsVisible())
}

func TestAccordionKeepsOneOpen(t *testing.T) {
	m := open()
	m.ToggleDropdown(0)
	assert.Equal(t, 0, m.Expanded())

	m.ToggleDropdown(1)
	assert.Equal(t, 1, m.Expanded(), "opening one closes the other")

	m.ToggleDropdown(1)
	assert.Equal(t, -1, m.Expanded(), "toggling the open one closes it")

	m.ToggleDropdown(2)
	assert.Equal(t, -1, m.Expanded(), "plain links are not dropdowns")
}

func TestEnterOnLinkOpensURLAndCloses(t *testing.T) {
	m := open()
	m, _ = m.Update(enter) // expand Sarees
	require.Equal(t, 0, m.Expanded())

	m, _ = m.Update(down)
	m, _ = m.Update(down)
	m, cmd := m.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, ui.OpenURLMsg{URL: "/sarees/cotton/"}, cmd())
	assert.False(t, m.IsVisible())
}

func TestEnterOnPlainSection(t *testing.T) {
	m := open()
	m, _ = m.Update(down)
	m, _ = m.Update(down)
	m, cmd := m.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, ui.OpenURLMsg{URL: "/about/"}, cmd())
}

func TestEscCloses(t *testing.T) {
	m := open()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, m.IsVisible())
	assert.Equal(t, "", m.View())
}

func TestViewShowsExpandedLinks(t *testing.T) {
	m := open()
	assert.NotContains(t, m.View(), "Bridal")
	m.ToggleDropdown(1)
	assert.Contains(t, m.View(), "Bridal")
}
