package api

import (
	"context"
	"net/url"

	"github.com/altinukshini/shop-tui/internal/model"
)

func (c *Client) Search(ctx context.Context, query string) (*model.SearchResponse, error) {
	var resp model.SearchResponse
	if err := c.getJSON(ctx, "search", "/search/?q="+url.QueryEscape(query), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
