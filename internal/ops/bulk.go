package ops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/altinukshini/shop-tui/internal/model"
)

// Filter selects items by a case-insensitive substring of their name.
// The zero Filter matches everything.
type Filter struct {
	Name string
}

func (f Filter) match(name string) bool {
	return f.Name == "" || strings.Contains(strings.ToLower(name), strings.ToLower(f.Name))
}

func FilterCartItems(items []model.CartItem, filter Filter) []model.CartItem {
	var matched []model.CartItem
	for _, it := range items {
		if filter.match(it.Name) {
			matched = append(matched, it)
		}
	}
	return matched
}

func FilterWishlistItems(items []model.WishlistItem, filter Filter) []model.WishlistItem {
	var matched []model.WishlistItem
	for _, it := range items {
		if filter.match(it.Name) {
			matched = append(matched, it)
		}
	}
	return matched
}

type Result struct {
	Completed int
	Failed    int
	Errors    []error
}

// ApplyFunc is one storefront mutation for a product.
type ApplyFunc func(ctx context.Context, productID int64) error

// Pacing between batches keeps bulk runs from tripping server throttles.
var (
	PaceEvery = 10
	PaceDelay = 2 * time.Second
)

// Run applies fn to every product in turn. A failing item does not stop
// the run; cancellation does.
func Run(ctx context.Context, productIDs []int64, fn ApplyFunc, onProgress func(completed, total int)) (*Result, error) {
	result := &Result{}
	total := len(productIDs)

	for i, id := range productIDs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := fn(ctx, id); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Errorf("product %d: %w", id, err))
		} else {
			result.Completed++
		}

		if onProgress != nil {
			onProgress(i+1, total)
		}

		if PaceEvery > 0 && (i+1)%PaceEvery == 0 && i+1 < total {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(PaceDelay):
			}
		}
	}

	return result, nil
}
