package ui

import (
	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/notify"
	"github.com/altinukshini/shop-tui/internal/search"
)

// Search messages
type SearchTickMsg struct {
	Ticket search.Ticket
}

type SearchDoneMsg struct {
	Seq  uint64
	Resp *model.SearchResponse
	Err  error
}

// Page loads
type HomeLoadedMsg struct {
	Home *model.Home
	Err  error
}

type CartLoadedMsg struct {
	Cart *model.Cart
	Err  error
}

type WishlistLoadedMsg struct {
	Items []model.WishlistItem
	Err   error
}

// BadgesMsg carries both counters; a counter whose fetch failed has its
// error set and keeps the previous value on screen.
type BadgesMsg struct {
	Cart        int
	Wishlist    int
	CartErr     error
	WishlistErr error
}

// Mutations
type CartAction string

const (
	CartUpdate CartAction = "update"
	CartRemove CartAction = "remove"
	CartAdd    CartAction = "add"
)

type CartMutationMsg struct {
	Action    CartAction
	ProductID int64
	Quantity  int
	Resp      *model.MutationResponse
	Err       error
}

type WishlistAction string

const (
	WishlistAdd    WishlistAction = "add"
	WishlistRemove WishlistAction = "remove"
)

type WishlistMutationMsg struct {
	Action    WishlistAction
	ProductID int64
	Resp      *model.MutationResponse
	Err       error
}

// Carousel autoplay
type SlideTickMsg struct {
	Gen int
}

// Notifications
type NotifyMsg struct {
	Kind    notify.Kind
	Message string
}

type NotificationExpiredMsg struct {
	ID string
}

// Navigation: a view asks the app to open a storefront path in the browser.
type OpenURLMsg struct {
	URL string
}

type BrowseResultMsg struct {
	URL string
	Err error
}

type StatusMsg struct {
	Text string
}
