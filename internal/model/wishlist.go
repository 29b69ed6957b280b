package model

type WishlistItem struct {
	ProductID int64
	Name      string
	URL       string
}
