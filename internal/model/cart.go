package model

import "github.com/shopspring/decimal"

// CartData is the authoritative cart summary returned by every cart mutation.
// Amounts decode from JSON numbers or numeric strings.
type CartData struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// MutationResponse is shared by the cart and wishlist POST endpoints.
// CartData is only present on cart responses.
type MutationResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	CartData *CartData `json:"cart_data,omitempty"`
}

type CartItem struct {
	ProductID int64
	Name      string
	Quantity  int
	Price     decimal.Decimal
}

type Cart struct {
	Items   []CartItem
	Summary CartData
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
