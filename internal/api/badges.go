package api

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Badges holds the header counters. Each counter is fetched on its own:
// a failed one keeps its error and leaves the other usable.
type Badges struct {
	Cart        int
	Wishlist    int
	CartErr     error
	WishlistErr error
}

// Badges fetches the cart and wishlist counters concurrently. The returned
// error joins whichever counters failed.
func (c *Client) Badges(ctx context.Context) (Badges, error) {
	var b Badges
	var g errgroup.Group
	g.Go(func() error {
		b.Cart, b.CartErr = c.CartCount(ctx)
		return nil
	})
	g.Go(func() error {
		b.Wishlist, b.WishlistErr = c.WishlistCount(ctx)
		return nil
	})
	_ = g.Wait()
	return b, errors.Join(b.CartErr, b.WishlistErr)
}
