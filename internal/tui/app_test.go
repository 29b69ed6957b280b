package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/shop-tui/internal/api"
	"github.com/altinukshini/shop-tui/internal/config"
	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/tui/confirm"
	"github.com/altinukshini/shop-tui/internal/ui"
)

type fakeStore struct {
	mu      sync.Mutex
	calls   []string
	cart    *model.Cart
	mutErr  error
	mutResp *model.MutationResponse
}

func (f *fakeStore) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeStore) Search(_ context.Context, q string) (*model.SearchResponse, error) {
	f.record("search " + q)
	return &model.SearchResponse{}, nil
}

func (f *fakeStore) Home(context.Context) (*model.Home, error) {
	f.record("home")
	return &model.Home{}, nil
}

func (f *fakeStore) Cart(context.Context) (*model.Cart, error) {
	f.record("cart")
	return f.cart, nil
}

func (f *fakeStore) Wishlist(context.Context) ([]model.WishlistItem, error) {
	f.record("wishlist")
	return nil, nil
}

func (f *fakeStore) Badges(context.Context) (api.Badges, error) {
	f.record("badges")
	return api.Badges{Cart: 2, Wishlist: 1}, nil
}

func (f *fakeStore) mutation(call string) (*model.MutationResponse, error) {
	f.record(call)
	return f.mutResp, f.mutErr
}

func (f *fakeStore) UpdateCartItem(_ context.Context, _ int64, _ int) (*model.MutationResponse, error) {
	return f.mutation("update")
}

func (f *fakeStore) RemoveCartItem(context.Context, int64) (*model.MutationResponse, error) {
	return f.mutation("remove")
}

func (f *fakeStore) AddToCart(context.Context, int64) (*model.MutationResponse, error) {
	return f.mutation("add")
}

func (f *fakeStore) AddToWishlist(context.Context, int64) (*model.MutationResponse, error) {
	return f.mutation("wish add")
}

func (f *fakeStore) RemoveFromWishlist(context.Context, int64) (*model.MutationResponse, error) {
	return f.mutation("wish remove")
}

func (f *fakeStore) ResolveURL(path string) string {
	return "https://shop.example.com" + path
}

type fakeBrowser struct {
	urls []string
	err  error
}

func (b *fakeBrowser) Browse(url string) error {
	b.urls = append(b.urls, url)
	return b.err
}

func newTestApp(t *testing.T, store *fakeStore, browser *fakeBrowser) App {
	t.Helper()
	cfg := config.Default()
	cfg.BaseURL = "https://shop.example.com"
	app := NewApp(cfg, store, browser, nil)
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return *m.(*App)
}

func update(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := app.Update(msg)
	return *m.(*App), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func oneCartItem() *model.Cart {
	return &model.Cart{
		Items: []model.CartItem{{ProductID: 7, Name: "Silk Saree", Quantity: 1, Price: decimal.NewFromInt(1299)}},
		Summary: model.CartData{
			Subtotal: decimal.NewFromInt(1299), Total: decimal.NewFromInt(1299), Count: 1,
		},
	}
}

func TestOpenURLResolvesAndBrowses(t *testing.T) {
	browser := &fakeBrowser{}
	app := newTestApp(t, &fakeStore{}, browser)

	app, cmd := update(t, app, ui.OpenURLMsg{URL: "/products/silk-saree/"})
	require.NotNil(t, cmd)
	result := cmd()
	assert.Equal(t, []string{"https://shop.example.com/products/silk-saree/"}, browser.urls)

	app, _ = update(t, app, result)
	assert.Contains(t, app.status, "Opened")
}

func TestCartMutationFailureNotifiesFallback(t *testing.T) {
	app := newTestApp(t, &fakeStore{}, &fakeBrowser{})

	app, cmd := update(t, app, ui.CartMutationMsg{
		Action: ui.CartUpdate, ProductID: 7, Quantity: 2,
		Err: &api.TransportError{Op: "update cart", Err: errors.New("connection refused")},
	})
	assert.NotNil(t, cmd, "expiry tick scheduled")
	n, ok := app.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, "Failed to update cart", n.Message)
	assert.Contains(t, app.View(), "Failed to update cart")

	app, _ = update(t, app, ui.NotificationExpiredMsg{ID: n.ID})
	assert.Equal(t, 0, app.notifications.Len())
}

func TestAppErrorShowsServerMessage(t *testing.T) {
	app := newTestApp(t, &fakeStore{}, &fakeBrowser{})
	app, _ = update(t, app, ui.WishlistMutationMsg{
		Action: ui.WishlistAdd, ProductID: 3,
		Err: &api.AppError{Op: "add to wishlist", Message: "Already in wishlist"},
	})
	n, ok := app.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, "Already in wishlist", n.Message)
}

func TestCartMutationUpdatesBadge(t *testing.T) {
	app := newTestApp(t, &fakeStore{}, &fakeBrowser{})
	app, _ = update(t, app, ui.CartMutationMsg{
		Action: ui.CartAdd, ProductID: 7, Quantity: 1,
		Resp: &model.MutationResponse{Success: true, Message: "Added to cart", CartData: &model.CartData{Count: 4}},
	})
	assert.Equal(t, 4, app.cartCount)
	n, _ := app.notifications.Latest()
	assert.Equal(t, "Added to cart", n.Message)
}

func TestSwitchToCartFetches(t *testing.T) {
	store := &fakeStore{cart: oneCartItem()}
	app := newTestApp(t, store, &fakeBrowser{})

	app, cmd := update(t, app, runes("2"))
	require.NotNil(t, cmd)
	assert.Equal(t, ViewCart, app.currentView)

	app, _ = update(t, app, cmd())
	assert.Equal(t, []string{"cart"}, store.Calls())
	assert.Contains(t, app.View(), "Silk Saree")
}

func TestRemoveFromCartAsksFirst(t *testing.T) {
	store := &fakeStore{
		cart:    oneCartItem(),
		mutResp: &model.MutationResponse{Success: true, Message: "Removed", CartData: &model.CartData{}},
	}
	app := newTestApp(t, store, &fakeBrowser{})
	app, cmd := update(t, app, runes("2"))
	app, _ = update(t, app, cmd())

	app, cmd = update(t, app, runes("d"))
	assert.Nil(t, cmd)
	require.True(t, app.confirmDialog.IsActive())

	app, cmd = update(t, app, runes("y"))
	require.NotNil(t, cmd)
	result, ok := cmd().(confirm.ResultMsg)
	require.True(t, ok)

	app, cmd = update(t, app, result)
	require.NotNil(t, cmd)
	app, _ = update(t, app, cmd())

	assert.Contains(t, store.Calls(), "remove")
	assert.True(t, app.cartView.IsEmpty(), "count 0 resets the cart view")
	assert.Equal(t, 0, app.cartCount)
	assert.Contains(t, app.View(), "Your cart is empty")
}

func TestDecreaseAtOneDoesNothing(t *testing.T) {
	store := &fakeStore{cart: oneCartItem()}
	app := newTestApp(t, store, &fakeBrowser{})
	app, cmd := update(t, app, runes("2"))
	app, _ = update(t, app, cmd())

	_, cmd = update(t, app, runes("-"))
	assert.Nil(t, cmd)

	_, cmd = update(t, app, runes("+"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(ui.CartMutationMsg)
	require.True(t, ok)
	assert.Equal(t, 2, msg.Quantity)
}

func TestSearchOverlayCapturesKeys(t *testing.T) {
	app := newTestApp(t, &fakeStore{}, &fakeBrowser{})
	app, _ = update(t, app, runes("/"))
	require.True(t, app.searchView.IsActive())

	// "2" is typed into the query instead of switching to the cart.
	app, _ = update(t, app, runes("2"))
	assert.Equal(t, ViewHome, app.currentView)

	app, _ = update(t, app, tea.KeyMsg{Type: tea.KeyEscape})
	assert.False(t, app.searchView.IsActive())
}

func TestHeaderShowsBadges(t *testing.T) {
	app := newTestApp(t, &fakeStore{}, &fakeBrowser{})
	app, _ = update(t, app, ui.BadgesMsg{Cart: 3, Wishlist: 0})
	header := RenderHeader(app.cfg.Host(), app.cartCount, app.wishlistCount, 80)
	assert.Contains(t, header, "shop.example.com")
	assert.Contains(t, header, "3")
}

func TestHomePauseUpdatesStatusBar(t *testing.T) {
	app := newTestApp(t, &fakeStore{}, &fakeBrowser{})
	app, _ = update(t, app, ui.HomeLoadedMsg{Home: &model.Home{
		Slides: []model.Slide{{Title: "Festive"}, {Title: "Wedding"}},
		Shelves: []model.Shelf{{Title: "Bestsellers", Products: []model.Product{
			{ID: 1, Name: "Silk Saree"},
		}}},
	}})

	app, cmd := update(t, app, runes("p"))
	require.NotNil(t, cmd)
	app, _ = update(t, app, cmd())
	assert.Equal(t, "Slideshow paused", app.status)

	app, cmd = update(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app, _ = update(t, app, cmd())
	n, ok := app.notifications.Latest()
	require.True(t, ok)
	assert.Equal(t, "No page to open for this item", n.Message)
}

func TestBadgeFailureKeepsOtherCounter(t *testing.T) {
	app := newTestApp(t, &fakeStore{}, &fakeBrowser{})
	app, _ = update(t, app, ui.BadgesMsg{Cart: 3, Wishlist: 1})

	app, _ = update(t, app, ui.BadgesMsg{
		CartErr:  &api.TransportError{Op: "cart count", StatusCode: 502},
		Wishlist: 5,
	})
	assert.Equal(t, 3, app.cartCount)
	assert.Equal(t, 5, app.wishlistCount)
}
