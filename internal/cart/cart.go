package cart

import (
	"github.com/shopspring/decimal"

	"github.com/altinukshini/shop-tui/internal/model"
)

const (
	Currency  = "₹"
	FreeLabel = "FREE"
)

type Action int

const (
	Increase Action = iota
	Decrease
)

// Step applies a quantity button press. The stepper never goes below one;
// removing an item is a separate action.
func Step(qty int, action Action) int {
	switch action {
	case Increase:
		return qty + 1
	case Decrease:
		if qty > 1 {
			return qty - 1
		}
	}
	return qty
}

func FormatAmount(d decimal.Decimal) string {
	return Currency + d.StringFixed(0)
}

func FormatShipping(d decimal.Decimal) string {
	if d.IsZero() {
		return FreeLabel
	}
	return FormatAmount(d)
}

type SummaryLines struct {
	Subtotal string
	Shipping string
	Total    string
}

func Summary(data model.CartData) SummaryLines {
	return SummaryLines{
		Subtotal: FormatAmount(data.Subtotal),
		Shipping: FormatShipping(data.Shipping),
		Total:    FormatAmount(data.Total),
	}
}

type Outcome int

const (
	// RemoveRow drops the removed item and refreshes the summary in place.
	RemoveRow Outcome = iota
	// Reset rebuilds the whole cart from the response: the cart is empty.
	Reset
)

// Reconcile applies a successful removal. The response payload is
// authoritative: when it reports no items left the cart is rebuilt as
// empty, whatever the local list still holds.
func Reconcile(c model.Cart, removedID int64, data model.CartData) (model.Cart, Outcome) {
	if data.Count == 0 {
		return model.Cart{Summary: data}, Reset
	}
	items := make([]model.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID != removedID {
			items = append(items, it)
		}
	}
	return model.Cart{Items: items, Summary: data}, RemoveRow
}

// ApplyQuantity records a confirmed quantity change and the new summary.
func ApplyQuantity(c model.Cart, productID int64, qty int, data model.CartData) model.Cart {
	items := make([]model.CartItem, len(c.Items))
	copy(items, c.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
		}
	}
	return model.Cart{Items: items, Summary: data}
}
