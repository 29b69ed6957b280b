package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/altinukshini/shop-tui/internal/api"
	"github.com/altinukshini/shop-tui/internal/cart"
	"github.com/altinukshini/shop-tui/internal/config"
	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/notify"
	"github.com/altinukshini/shop-tui/internal/tui/cartview"
	"github.com/altinukshini/shop-tui/internal/tui/confirm"
	"github.com/altinukshini/shop-tui/internal/tui/homeview"
	"github.com/altinukshini/shop-tui/internal/tui/searchview"
	"github.com/altinukshini/shop-tui/internal/tui/sidebar"
	"github.com/altinukshini/shop-tui/internal/tui/wishlistview"
	"github.com/altinukshini/shop-tui/internal/ui"
)

// Storefront is the part of *api.Client the TUI drives.
type Storefront interface {
	searchview.Searcher
	Home(ctx context.Context) (*model.Home, error)
	Cart(ctx context.Context) (*model.Cart, error)
	Wishlist(ctx context.Context) ([]model.WishlistItem, error)
	Badges(ctx context.Context) (api.Badges, error)
	UpdateCartItem(ctx context.Context, productID int64, quantity int) (*model.MutationResponse, error)
	RemoveCartItem(ctx context.Context, productID int64) (*model.MutationResponse, error)
	AddToCart(ctx context.Context, productID int64) (*model.MutationResponse, error)
	AddToWishlist(ctx context.Context, productID int64) (*model.MutationResponse, error)
	RemoveFromWishlist(ctx context.Context, productID int64) (*model.MutationResponse, error)
	ResolveURL(path string) string
}

// Browser opens a URL outside the terminal.
type Browser interface {
	Browse(url string) error
}

type View int

const (
	ViewHome View = iota
	ViewCart
	ViewWishlist
)

// Fallback notification texts for failures without a server message.
const (
	msgUpdateCartFailed     = "Failed to update cart"
	msgRemoveItemFailed     = "Failed to remove item"
	msgAddToCartFailed      = "Failed to add to cart"
	msgAddToWishlistFailed  = "Failed to add to wishlist"
	msgRemoveWishlistFailed = "Failed to remove from wishlist"
)

type App struct {
	cfg     config.Config
	client  Storefront
	browser Browser
	log     *zap.Logger

	// Views
	homeView      homeview.Model
	cartView      cartview.Model
	wishlistView  wishlistview.Model
	searchView    searchview.Model
	sidebar       sidebar.Model
	confirmDialog confirm.Model

	notifications *notify.Queue

	// State
	currentView   View
	width         int
	height        int
	status        string
	cartCount     int
	wishlistCount int
	showHelp      bool
}

func NewApp(cfg config.Config, client Storefront, browser Browser, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return App{
		cfg:           cfg,
		client:        client,
		browser:       browser,
		log:           logger.Named("tui"),
		homeView:      homeview.New(),
		cartView:      cartview.New(),
		wishlistView:  wishlistview.New(),
		searchView:    searchview.New(client, cfg.SearchDebounce, logger),
		sidebar:       sidebar.New(),
		notifications: notify.NewQueue(),
		currentView:   ViewHome,
		status:        "Loading storefront...",
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.fetchHome(), a.fetchBadges())
}

// --- Data fetching commands ---

func (a App) fetchHome() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		home, err := client.Home(context.Background())
		return ui.HomeLoadedMsg{Home: home, Err: err}
	}
}

func (a App) fetchCart() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		c, err := client.Cart(context.Background())
		return ui.CartLoadedMsg{Cart: c, Err: err}
	}
}

func (a App) fetchWishlist() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		items, err := client.Wishlist(context.Background())
		return ui.WishlistLoadedMsg{Items: items, Err: err}
	}
}

func (a App) fetchBadges() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		b, _ := client.Badges(context.Background())
		return ui.BadgesMsg{Cart: b.Cart, Wishlist: b.Wishlist, CartErr: b.CartErr, WishlistErr: b.WishlistErr}
	}
}

// --- Action commands ---

func (a App) updateCartItem(productID int64, qty int) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		resp, err := client.UpdateCartItem(context.Background(), productID, qty)
		return ui.CartMutationMsg{Action: ui.CartUpdate, ProductID: productID, Quantity: qty, Resp: resp, Err: err}
	}
}

func (a App) removeCartItem(productID int64) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		resp, err := client.RemoveCartItem(context.Background(), productID)
		return ui.CartMutationMsg{Action: ui.CartRemove, ProductID: productID, Resp: resp, Err: err}
	}
}

func (a App) addToCart(productID int64) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		resp, err := client.AddToCart(context.Background(), productID)
		return ui.CartMutationMsg{Action: ui.CartAdd, ProductID: productID, Quantity: 1, Resp: resp, Err: err}
	}
}

func (a App) addToWishlist(productID int64) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		resp, err := client.AddToWishlist(context.Background(), productID)
		return ui.WishlistMutationMsg{Action: ui.WishlistAdd, ProductID: productID, Resp: resp, Err: err}
	}
}

func (a App) removeFromWishlist(productID int64) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		resp, err := client.RemoveFromWishlist(context.Background(), productID)
		return ui.WishlistMutationMsg{Action: ui.WishlistRemove, ProductID: productID, Resp: resp, Err: err}
	}
}

func (a App) openURL(path string) tea.Cmd {
	url := a.client.ResolveURL(path)
	browser := a.browser
	return func() tea.Msg {
		return ui.BrowseResultMsg{URL: url, Err: browser.Browse(url)}
	}
}

// notify shows a toast and schedules its removal.
func (a *App) notify(kind notify.Kind, message string) tea.Cmd {
	n := a.notifications.Push(kind, message)
	id := n.ID
	return tea.Tick(notify.Lifetime, func(time.Time) tea.Msg {
		return ui.NotificationExpiredMsg{ID: id}
	})
}

// --- Update ---

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle confirm dialog result (arrives AFTER dialog deactivates itself)
	if result, ok := msg.(confirm.ResultMsg); ok {
		if result.Confirmed {
			switch result.Action {
			case confirm.RemoveFromCart:
				a.status = "Removing item..."
				cmds = append(cmds, a.removeCartItem(result.ProductID))
			case confirm.RemoveFromWishlist:
				a.status = "Removing from wishlist..."
				cmds = append(cmds, a.removeFromWishlist(result.ProductID))
			}
		}
		return &a, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.propagateSize()

	case tea.KeyMsg:
		return a.handleKey(msg)

	case ui.SearchTickMsg, ui.SearchDoneMsg:
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		cmds = append(cmds, cmd)

	case ui.HomeLoadedMsg:
		var cmd tea.Cmd
		a.homeView, cmd = a.homeView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err != nil {
			a.log.Warn("load home", zap.Error(msg.Err))
			a.status = "Could not load storefront"
		} else {
			a.sidebar.SetMenu(msg.Home.Menu)
			a.status = a.cfg.Host()
		}

	case ui.SlideTickMsg:
		var cmd tea.Cmd
		a.homeView, cmd = a.homeView.Update(msg)
		cmds = append(cmds, cmd)

	case ui.CartLoadedMsg:
		var cmd tea.Cmd
		a.cartView, cmd = a.cartView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err != nil {
			a.log.Warn("load cart", zap.Error(msg.Err))
		} else if a.currentView == ViewCart {
			a.status = "Cart"
		}

	case ui.WishlistLoadedMsg:
		var cmd tea.Cmd
		a.wishlistView, cmd = a.wishlistView.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err != nil {
			a.log.Warn("load wishlist", zap.Error(msg.Err))
		} else if a.currentView == ViewWishlist {
			a.status = "Wishlist"
		}

	case wishlistview.NeedReloadMsg:
		cmds = append(cmds, a.fetchWishlist())

	case ui.BadgesMsg:
		if msg.CartErr != nil {
			a.log.Debug("refresh cart badge", zap.Error(msg.CartErr))
		} else {
			a.cartCount = msg.Cart
		}
		if msg.WishlistErr != nil {
			a.log.Debug("refresh wishlist badge", zap.Error(msg.WishlistErr))
		} else {
			a.wishlistCount = msg.Wishlist
		}

	case ui.CartMutationMsg:
		cmds = append(cmds, a.handleCartMutation(msg))

	case ui.WishlistMutationMsg:
		cmds = append(cmds, a.handleWishlistMutation(msg))

	case ui.NotifyMsg:
		cmds = append(cmds, a.notify(msg.Kind, msg.Message))

	case ui.NotificationExpiredMsg:
		a.notifications.Dismiss(msg.ID)

	case ui.OpenURLMsg:
		a.status = "Opening " + msg.URL
		cmds = append(cmds, a.openURL(msg.URL))

	case ui.BrowseResultMsg:
		if msg.Err != nil {
			a.log.Warn("open browser", zap.String("url", msg.URL), zap.Error(msg.Err))
			a.status = msg.URL
			cmds = append(cmds, a.notify(notify.Error, "Could not open browser"))
		} else {
			a.status = "Opened " + msg.URL
		}

	case ui.StatusMsg:
		a.status = msg.Text

	case tea.MouseMsg:
		if a.currentView == ViewHome && !a.searchView.IsActive() && !a.sidebar.IsVisible() {
			var cmd tea.Cmd
			a.homeView, cmd = a.homeView.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		// Blink and other internal messages of the focused widgets.
		var cmd tea.Cmd
		if a.searchView.IsActive() {
			a.searchView, cmd = a.searchView.Update(msg)
		} else if a.currentView == ViewWishlist {
			a.wishlistView, cmd = a.wishlistView.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return &a, tea.Batch(cmds...)
}

func (a *App) handleCartMutation(msg ui.CartMutationMsg) tea.Cmd {
	fallback, done := msgUpdateCartFailed, "Cart updated"
	switch msg.Action {
	case ui.CartRemove:
		fallback, done = msgRemoveItemFailed, "Item removed"
	case ui.CartAdd:
		fallback, done = msgAddToCartFailed, "Added to cart"
	}

	if msg.Err != nil {
		a.log.Warn("cart mutation failed",
			zap.String("action", string(msg.Action)),
			zap.Int64("product_id", msg.ProductID),
			zap.Bool("transport", api.IsTransport(msg.Err)),
			zap.Error(msg.Err))
		a.status = api.UserMessage(msg.Err, fallback)
		return a.notify(notify.Error, a.status)
	}

	if msg.Resp == nil {
		msg.Resp = &model.MutationResponse{}
	}
	var cmds []tea.Cmd
	if msg.Resp.CartData != nil {
		a.cartCount = msg.Resp.CartData.Count
	}
	var cmd tea.Cmd
	a.cartView, cmd = a.cartView.Update(msg)
	cmds = append(cmds, cmd)

	text := msg.Resp.Message
	if text == "" {
		text = done
	}
	a.status = text
	cmds = append(cmds, a.notify(notify.Success, text))
	return tea.Batch(cmds...)
}

func (a *App) handleWishlistMutation(msg ui.WishlistMutationMsg) tea.Cmd {
	fallback, done := msgAddToWishlistFailed, "Added to wishlist"
	if msg.Action == ui.WishlistRemove {
		fallback, done = msgRemoveWishlistFailed, "Removed from wishlist"
	}

	if msg.Err != nil {
		a.log.Warn("wishlist mutation failed",
			zap.String("action", string(msg.Action)),
			zap.Int64("product_id", msg.ProductID),
			zap.Bool("transport", api.IsTransport(msg.Err)),
			zap.Error(msg.Err))
		a.status = api.UserMessage(msg.Err, fallback)
		return a.notify(notify.Error, a.status)
	}

	if msg.Resp == nil {
		msg.Resp = &model.MutationResponse{}
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.homeView, cmd = a.homeView.Update(msg)
	cmds = append(cmds, cmd)
	a.wishlistView, cmd = a.wishlistView.Update(msg)
	cmds = append(cmds, cmd)

	text := msg.Resp.Message
	if text == "" {
		text = done
	}
	a.status = text
	cmds = append(cmds, a.notify(notify.Success, text), a.fetchBadges())
	return tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle confirmation dialog input (key events while dialog is showing)
	if a.confirmDialog.IsActive() {
		var cmd tea.Cmd
		a.confirmDialog, cmd = a.confirmDialog.Update(msg)
		return &a, cmd
	}

	// Search overlay owns the keyboard while open
	if a.searchView.IsActive() {
		var cmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		return &a, cmd
	}

	if a.sidebar.IsVisible() {
		var cmd tea.Cmd
		a.sidebar, cmd = a.sidebar.Update(msg)
		return &a, cmd
	}

	// List filter mode: keys go directly to the filtering list
	if a.currentView == ViewWishlist && a.wishlistView.IsFiltering() {
		var cmd tea.Cmd
		a.wishlistView, cmd = a.wishlistView.Update(msg)
		return &a, cmd
	}

	// Help overlay dismisses on any key
	if a.showHelp {
		a.showHelp = false
		return &a, nil
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		return &a, tea.Quit

	case key.Matches(msg, ui.Keys.Help):
		a.showHelp = true
		return &a, nil

	case key.Matches(msg, ui.Keys.Search):
		a.status = "Search"
		return &a, a.searchView.Open()

	case key.Matches(msg, ui.Keys.Menu):
		a.sidebar.Toggle()
		return &a, nil

	case key.Matches(msg, ui.Keys.Home):
		a.switchView(ViewHome)
		return &a, nil

	case key.Matches(msg, ui.Keys.Cart):
		if a.currentView != ViewCart {
			a.switchView(ViewCart)
			a.cartView.SetLoading()
			cmds = append(cmds, a.fetchCart())
		}
		return &a, tea.Batch(cmds...)

	case key.Matches(msg, ui.Keys.Wishlist):
		if a.currentView != ViewWishlist {
			a.switchView(ViewWishlist)
			a.wishlistView.SetLoading()
			cmds = append(cmds, a.fetchWishlist())
		}
		return &a, tea.Batch(cmds...)

	case key.Matches(msg, ui.Keys.Refresh):
		a.status = "Refreshing..."
		cmds = append(cmds, a.fetchBadges())
		switch a.currentView {
		case ViewHome:
			a.homeView.SetLoading()
			cmds = append(cmds, a.fetchHome())
		case ViewCart:
			a.cartView.SetLoading()
			cmds = append(cmds, a.fetchCart())
		case ViewWishlist:
			a.wishlistView.SetLoading()
			cmds = append(cmds, a.fetchWishlist())
		}
		return &a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewHome:
		switch {
		case key.Matches(msg, ui.Keys.AddWish):
			if p := a.homeView.SelectedProduct(); p != nil {
				if a.homeView.IsWished(p.ID) {
					return &a, a.removeFromWishlist(p.ID)
				}
				return &a, a.addToWishlist(p.ID)
			}
			return &a, nil
		case key.Matches(msg, ui.Keys.AddCart):
			if p := a.homeView.SelectedProduct(); p != nil {
				return &a, a.addToCart(p.ID)
			}
			return &a, nil
		}
		a.homeView, cmd = a.homeView.Update(msg)

	case ViewCart:
		item := a.cartView.SelectedItem()
		switch {
		case key.Matches(msg, ui.Keys.Increase), key.Matches(msg, ui.Keys.Decrease):
			if item == nil {
				return &a, nil
			}
			action := cart.Increase
			if key.Matches(msg, ui.Keys.Decrease) {
				action = cart.Decrease
			}
			qty := cart.Step(item.Quantity, action)
			if qty == item.Quantity {
				return &a, nil
			}
			a.status = "Updating cart..."
			return &a, a.updateCartItem(item.ProductID, qty)
		case key.Matches(msg, ui.Keys.Delete):
			if item == nil {
				return &a, nil
			}
			a.confirmDialog = confirm.New("Remove item",
				fmt.Sprintf("Remove %s from your cart?", item.Name),
				confirm.RemoveFromCart, item.ProductID)
			return &a, nil
		}
		a.cartView, cmd = a.cartView.Update(msg)

	case ViewWishlist:
		item := a.wishlistView.SelectedItem()
		switch {
		case key.Matches(msg, ui.Keys.Delete):
			if item == nil {
				return &a, nil
			}
			a.confirmDialog = confirm.New("Remove from wishlist",
				fmt.Sprintf("Remove %s from your wishlist?", item.Name),
				confirm.RemoveFromWishlist, item.ProductID)
			return &a, nil
		case key.Matches(msg, ui.Keys.AddCart):
			if item != nil {
				return &a, a.addToCart(item.ProductID)
			}
			return &a, nil
		}
		a.wishlistView, cmd = a.wishlistView.Update(msg)
	}
	return &a, cmd
}

func (a *App) switchView(v View) {
	a.currentView = v
	switch v {
	case ViewHome:
		a.status = a.cfg.Host()
	case ViewCart:
		a.status = "Loading cart..."
	case ViewWishlist:
		a.status = "Loading wishlist..."
	}
}

func (a *App) propagateSize() {
	// header(1) + tabs(1) + notifications(1) + status(1) = 4 lines of chrome
	// pane border top(1) + bottom(1) = 2 lines
	contentH := a.height - 6
	if contentH < 1 {
		contentH = 1
	}
	contentW := a.width - 4

	a.homeView, _ = a.homeView.Update(tea.WindowSizeMsg{Width: contentW, Height: contentH})
	a.cartView, _ = a.cartView.Update(tea.WindowSizeMsg{Width: contentW, Height: contentH})
	a.wishlistView, _ = a.wishlistView.Update(tea.WindowSizeMsg{Width: contentW, Height: contentH})
	a.searchView, _ = a.searchView.Update(tea.WindowSizeMsg{Width: contentW, Height: contentH})
	a.sidebar, _ = a.sidebar.Update(tea.WindowSizeMsg{Width: sidebar.Width, Height: contentH})
}

// --- View ---

func (a App) View() string {
	header := RenderHeader(a.cfg.Host(), a.cartCount, a.wishlistCount, a.width)
	tabs := a.renderTabs()

	contentH := a.height - 6
	if contentH < 1 {
		contentH = 1
	}

	var body string
	switch a.currentView {
	case ViewHome:
		body = a.homeView.View()
	case ViewCart:
		body = a.cartView.View()
	case ViewWishlist:
		body = a.wishlistView.View()
	}
	content := ui.StylePaneFocused.Width(a.width - 2).Height(contentH).Render(body)

	switch {
	case a.showHelp:
		content = a.renderHelp()
	case a.confirmDialog.IsActive():
		content = a.confirmDialog.View()
	case a.searchView.IsActive():
		content = ui.StylePaneFocused.Width(a.width - 2).Height(contentH).Render(a.searchView.View())
	case a.sidebar.IsVisible():
		w := a.width - sidebar.Width - 2
		if w < 1 {
			w = 1
		}
		rest := ui.StylePane.Width(w).Height(contentH).Render(body)
		content = lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), rest)
	}

	toasts := RenderNotifications(a.notifications.Items(), a.width)
	statusBar := RenderStatusBar(a.status, a.contextHints(), a.width)

	// Hard clamp: ensure content never overflows the terminal.
	maxContentLines := a.height - 4
	if maxContentLines > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > maxContentLines {
			lines = lines[:maxContentLines]
			content = strings.Join(lines, "\n")
		}
	}

	return header + "\n" + tabs + "\n" + content + "\n" + toasts + "\n" + statusBar
}

func (a App) renderTabs() string {
	tabStyle := lipgloss.NewStyle().Padding(0, 2)
	activeTab := tabStyle.Bold(true).Foreground(ui.ColorPrimary)
	inactiveTab := tabStyle.Foreground(ui.ColorMuted)

	labels := []string{"[1] Home", "[2] Cart", "[3] Wishlist"}
	tabs := make([]string, len(labels))
	for i, l := range labels {
		if View(i) == a.currentView {
			tabs[i] = activeTab.Render(l)
		} else {
			tabs[i] = inactiveTab.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) contextHints() string {
	switch {
	case a.confirmDialog.IsActive():
		return "y:remove  n:keep"
	case a.searchView.IsActive():
		return "enter:open  up/down:select  esc:close"
	case a.sidebar.IsVisible():
		return "enter:open  j/k:navigate  esc:close"
	}

	switch a.currentView {
	case ViewHome:
		return "tab:row  h/l:item  H/L:scroll  [/]:slide  w:wishlist  a:add to cart  /:search  m:menu  ?:help"
	case ViewCart:
		return "+/-:quantity  d:remove  j/k:navigate  r:refresh  ?:help"
	case ViewWishlist:
		return "enter:open  a:add to cart  d:remove  f:filter  ?:help"
	}
	return "?:help  q:quit"
}

func (a App) renderHelp() string {
	contentH := a.height - 6
	if contentH < 1 {
		contentH = 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Width(14)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))

	row := func(k, d string) string {
		return "  " + keyStyle.Render(k) + desc.Render(d) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n" + bold.Render("  Navigation") + "\n\n")
	b.WriteString(row("1-3", "Switch page: Home, Cart, Wishlist"))
	b.WriteString(row("/", "Search products"))
	b.WriteString(row("m", "Categories menu"))
	b.WriteString(row("r", "Refresh"))
	b.WriteString(row("esc", "Close overlay"))
	b.WriteString(row("q", "Quit"))

	b.WriteString("\n" + bold.Render("  Home") + "\n\n")
	b.WriteString(row("tab / j / k", "Move between slideshow and rows"))
	b.WriteString(row("h / l", "Previous / next item or slide"))
	b.WriteString(row("H / L", "Scroll row"))
	b.WriteString(row("[ / ]", "Previous / next slide"))
	b.WriteString(row("p", "Pause / resume slideshow"))
	b.WriteString(row("w", "Toggle wishlist"))
	b.WriteString(row("a", "Add to cart"))
	b.WriteString(row("enter", "Open in browser"))

	b.WriteString("\n" + bold.Render("  Cart") + "\n\n")
	b.WriteString(row("+ / -", "Change quantity"))
	b.WriteString(row("d", "Remove item"))

	b.WriteString("\n" + bold.Render("  Wishlist") + "\n\n")
	b.WriteString(row("a", "Add to cart"))
	b.WriteString(row("d", "Remove"))
	b.WriteString(row("f", "Filter"))

	b.WriteString("\n" + lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  Press any key to close") + "\n")

	style := ui.StylePaneFocused.Width(a.width - 2).Height(contentH)
	return style.Render(b.String())
}
