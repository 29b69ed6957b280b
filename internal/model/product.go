package model

import "github.com/shopspring/decimal"

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	URL      string          `json:"url"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
}

// DisplayName falls back to the category for search results that only
// carry a category label.
func (p Product) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Category
}

type SearchResponse struct {
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}

type CountResponse struct {
	Count int `json:"count"`
}
