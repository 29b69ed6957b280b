package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/altinukshini/shop-tui/internal/model"
)

func (c *Client) UpdateCartItem(ctx context.Context, productID int64, quantity int) (*model.MutationResponse, error) {
	form := url.Values{"quantity": {strconv.Itoa(quantity)}}
	return c.postCart(ctx, "update cart", fmt.Sprintf("/cart/update/%d/", productID), strings.NewReader(form.Encode()))
}

func (c *Client) RemoveCartItem(ctx context.Context, productID int64) (*model.MutationResponse, error) {
	resp, err := c.postMutation(ctx, "remove cart item", fmt.Sprintf("/cart/remove/%d/", productID), "", nil)
	if err != nil {
		return nil, err
	}
	return withCartData(resp), nil
}

// AddToCart adds a single unit of the product.
func (c *Client) AddToCart(ctx context.Context, productID int64) (*model.MutationResponse, error) {
	form := url.Values{"quantity": {"1"}}
	return c.postCart(ctx, "add to cart", fmt.Sprintf("/cart/add/%d/", productID), strings.NewReader(form.Encode()))
}

func (c *Client) CartCount(ctx context.Context) (int, error) {
	var resp model.CountResponse
	if err := c.getJSON(ctx, "cart count", "/cart/count/", &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) postCart(ctx context.Context, op, path string, form *strings.Reader) (*model.MutationResponse, error) {
	resp, err := c.postMutation(ctx, op, path, contentTypeForm, form)
	if err != nil {
		return nil, err
	}
	return withCartData(resp), nil
}

// withCartData guarantees a non-nil summary so callers can read Count.
func withCartData(resp *model.MutationResponse) *model.MutationResponse {
	if resp.CartData == nil {
		resp.CartData = &model.CartData{}
	}
	return resp
}
