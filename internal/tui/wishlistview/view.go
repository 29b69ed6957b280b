package wishlistview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/ui"
)

const emptyText = "Your wishlist is empty"

// NeedReloadMsg is emitted when the last item is removed; the page is
// fetched again so the server-rendered empty state is shown.
type NeedReloadMsg struct{}

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	wi, ok := item.(wishItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("  %s %s", ui.WishIcon(true), text.Truncate(m.Width()-6, wi.item.Name))
	if index == m.Index() {
		line = ui.StyleSelected.Width(m.Width()).Render(line)
	}
	fmt.Fprint(w, line)
}

type wishItem struct {
	item model.WishlistItem
}

func (w wishItem) FilterValue() string { return w.item.Name }

type Model struct {
	list    list.Model
	items   []model.WishlistItem
	loading bool
	err     error
}

func New() Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("item", "items")
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.DisableQuitKeybindings()

	return Model{list: l, loading: true}
}

func (m Model) Items() []model.WishlistItem { return m.items }

func (m Model) SelectedItem() *model.WishlistItem {
	if wi, ok := m.list.SelectedItem().(wishItem); ok {
		return &wi.item
	}
	return nil
}

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) SetLoading() {
	m.loading = true
	m.err = nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.WishlistLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		return m, m.setItems(msg.Items)

	case ui.WishlistMutationMsg:
		if msg.Err != nil || msg.Action != ui.WishlistRemove {
			return m, nil
		}
		kept := make([]model.WishlistItem, 0, len(m.items))
		for _, it := range m.items {
			if it.ProductID != msg.ProductID {
				kept = append(kept, it)
			}
		}
		if len(kept) == len(m.items) {
			return m, nil
		}
		cmd := m.setItems(kept)
		if len(kept) == 0 {
			m.loading = true
			return m, tea.Batch(cmd, func() tea.Msg { return NeedReloadMsg{} })
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if !m.IsFiltering() && key.Matches(msg, ui.Keys.Enter) {
			if sel := m.SelectedItem(); sel != nil && sel.URL != "" {
				url := sel.URL
				return m, func() tea.Msg { return ui.OpenURLMsg{URL: url} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) setItems(items []model.WishlistItem) tea.Cmd {
	m.items = items
	li := make([]list.Item, len(items))
	for i, it := range items {
		li[i] = wishItem{item: it}
	}
	index := m.list.Index()
	cmd := m.list.SetItems(li)
	if index >= len(li) {
		index = len(li) - 1
	}
	if index < 0 {
		index = 0
	}
	m.list.Select(index)
	return cmd
}

func (m Model) View() string {
	switch {
	case m.loading:
		return "\n  Loading wishlist..."
	case m.err != nil:
		return "\n  " + ui.StyleFailure.Render("Could not load wishlist: "+m.err.Error())
	case len(m.items) == 0:
		return "\n  " + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(emptyText)
	}
	return m.list.View()
}
