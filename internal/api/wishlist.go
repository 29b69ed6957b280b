package api

import (
	"context"
	"fmt"

	"github.com/altinukshini/shop-tui/internal/model"
)

// The wishlist endpoints take no body but expect a JSON content type.

func (c *Client) AddToWishlist(ctx context.Context, productID int64) (*model.MutationResponse, error) {
	return c.postMutation(ctx, "add to wishlist", fmt.Sprintf("/wishlist/add/%d/", productID), contentTypeJSON, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) (*model.MutationResponse, error) {
	return c.postMutation(ctx, "remove from wishlist", fmt.Sprintf("/wishlist/remove/%d/", productID), contentTypeJSON, nil)
}

func (c *Client) WishlistCount(ctx context.Context) (int, error) {
	var resp model.CountResponse
	if err := c.getJSON(ctx, "wishlist count", "/wishlist/count/", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}
