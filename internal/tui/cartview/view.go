package cartview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/text"

	"github.com/altinukshini/shop-tui/internal/cart"
	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/ui"
)

const emptyText = "Your cart is empty"

// --- Delegate ---

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 2 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(cartItem)
	if !ok {
		return
	}
	name := text.Truncate(m.Width()-4, ci.item.Name)
	line1 := fmt.Sprintf("  %s", lipgloss.NewStyle().Bold(true).Render(name))
	line2 := fmt.Sprintf("    qty %s  %s",
		ui.StyleInfo.Render(fmt.Sprintf("[-] %d [+]", ci.item.Quantity)),
		ui.StylePrice.Render(cart.FormatAmount(ci.item.Price)))

	if index == m.Index() {
		hl := ui.StyleSelected.Width(m.Width())
		line1 = hl.Render(line1)
		line2 = hl.Render(line2)
	}
	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

type cartItem struct {
	item model.CartItem
}

func (c cartItem) FilterValue() string { return c.item.Name }

// --- Model ---

type Model struct {
	list    list.Model
	cart    model.Cart
	width   int
	height  int
	loading bool
	err     error
}

func New() Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{list: l, loading: true}
}

func (m Model) Cart() model.Cart { return m.cart }

func (m Model) IsEmpty() bool { return !m.loading && m.cart.IsEmpty() }

func (m Model) SelectedItem() *model.CartItem {
	if ci, ok := m.list.SelectedItem().(cartItem); ok {
		return &ci.item
	}
	return nil
}

// SetLoading marks the view as waiting for a fresh cart page.
func (m *Model) SetLoading() {
	m.loading = true
	m.err = nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.CartLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		return m, m.setCart(*msg.Cart)

	case ui.CartMutationMsg:
		if msg.Err != nil || msg.Resp == nil || msg.Resp.CartData == nil {
			return m, nil
		}
		data := *msg.Resp.CartData
		switch msg.Action {
		case ui.CartUpdate:
			return m, m.setCart(cart.ApplyQuantity(m.cart, msg.ProductID, msg.Quantity, data))
		case ui.CartRemove:
			next, outcome := cart.Reconcile(m.cart, msg.ProductID, data)
			if outcome == cart.Reset {
				return m, m.reset(next)
			}
			return m, m.setCart(next)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, m.listHeight())
		return m, nil

	case tea.KeyMsg:
		// Only list navigation; cart actions are dispatched by the app.
		if key.Matches(msg, ui.Keys.Up, ui.Keys.Down) || msg.String() == "pgup" || msg.String() == "pgdown" {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// reset rebuilds the view from an authoritative empty cart, dropping any
// rows, cursor and filter left over locally.
func (m *Model) reset(c model.Cart) tea.Cmd {
	m.cart = c
	m.err = nil
	m.loading = false
	m.list.ResetFilter()
	m.list.ResetSelected()
	return m.list.SetItems(nil)
}

func (m *Model) setCart(c model.Cart) tea.Cmd {
	index := m.list.Index()
	m.cart = c
	items := make([]list.Item, len(c.Items))
	for i, it := range c.Items {
		items[i] = cartItem{item: it}
	}
	cmd := m.list.SetItems(items)
	if index >= len(items) {
		index = len(items) - 1
	}
	if index < 0 {
		index = 0
	}
	m.list.Select(index)
	return cmd
}

// summary box takes five lines below the list
func (m Model) listHeight() int {
	h := m.height - 6
	if h < 2 {
		h = 2
	}
	return h
}

func (m Model) View() string {
	switch {
	case m.loading:
		return "\n  Loading cart..."
	case m.err != nil:
		return "\n  " + ui.StyleFailure.Render("Could not load cart: "+m.err.Error())
	case m.cart.IsEmpty():
		return "\n  " + ui.StyleMuted.Render(emptyText) + "\n\n  " +
			ui.StyleMuted.Render("Press 1 to continue shopping")
	}
	return m.list.View() + "\n" + m.renderSummary()
}

func (m Model) renderSummary() string {
	s := cart.Summary(m.cart.Summary)
	label := lipgloss.NewStyle().Width(12)
	shipping := s.Shipping
	if shipping == cart.FreeLabel {
		shipping = ui.StyleSuccess.Render(shipping)
	}

	var b strings.Builder
	b.WriteString(ui.StyleMuted.Render(strings.Repeat("─", max(m.width-2, 10))) + "\n")
	b.WriteString("  " + label.Render("Subtotal") + s.Subtotal + "\n")
	b.WriteString("  " + label.Render("Shipping") + shipping + "\n")
	b.WriteString("  " + label.Bold(true).Render("Total") + ui.StylePrice.Render(s.Total) + "\n")
	b.WriteString(ui.StyleMuted.Render(fmt.Sprintf("  %s in cart", text.Pluralize(m.cart.Summary.Count, "item"))))
	return b.String()
}
