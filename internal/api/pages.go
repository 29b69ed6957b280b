package api

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"github.com/altinukshini/shop-tui/internal/model"
)

// Shelves rendered on the home page, in display order.
var homeShelves = []struct {
	id    string
	title string
}{
	{"bestsellersGrid", "Bestsellers"},
	{"readyToWearGrid", "Ready to Wear"},
	{"weddingGrid", "Wedding"},
}

// Home scrapes the server-rendered landing page: slideshow, product
// shelves and the sidebar menu.
func (c *Client) Home(ctx context.Context) (*model.Home, error) {
	doc, err := c.getDocument(ctx, "home", "/")
	if err != nil {
		return nil, err
	}
	return ParseHome(doc), nil
}

func (c *Client) Cart(ctx context.Context) (*model.Cart, error) {
	doc, err := c.getDocument(ctx, "cart", "/cart/")
	if err != nil {
		return nil, err
	}
	return ParseCart(doc), nil
}

func (c *Client) Wishlist(ctx context.Context) ([]model.WishlistItem, error) {
	doc, err := c.getDocument(ctx, "wishlist", "/wishlist/")
	if err != nil {
		return nil, err
	}
	return ParseWishlist(doc), nil
}

func ParseHome(doc *goquery.Document) *model.Home {
	home := &model.Home{}

	doc.Find(".slideshow-slide").EachWithBreak(func(i int, s *goquery.Selection) bool {
		slide := model.Slide{
			Title:       firstText(s, ".slide-title", "h1", "h2"),
			Description: firstText(s, ".slide-description", "p"),
			Order:       i,
		}
		slide.LinkURL, _ = s.Find("a[href]").First().Attr("href")
		if slide.LinkURL == "" {
			slide.LinkURL, _ = s.Attr("href")
		}
		slide.Image, _ = s.Find("img").First().Attr("src")
		home.Slides = append(home.Slides, slide)
		return len(home.Slides) < model.MaxSlides
	})

	for _, shelf := range homeShelves {
		grid := doc.Find("#" + shelf.id)
		if grid.Length() == 0 {
			continue
		}
		var products []model.Product
		grid.Find(".product-card").Each(func(_ int, s *goquery.Selection) {
			products = append(products, parseProductCard(s))
		})
		home.Shelves = append(home.Shelves, model.Shelf{ID: shelf.id, Title: shelf.title, Products: products})
	}

	doc.Find("#mobileSidebar .sidebar-link").Each(func(_ int, link *goquery.Selection) {
		section := model.MenuSection{Title: cleanText(link.Text())}
		section.URL, _ = link.Attr("href")
		parent := link.Parent()
		if parent.HasClass("sidebar-dropdown") {
			parent.Find("a").Not(".sidebar-link").Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				section.Links = append(section.Links, model.MenuLink{Title: cleanText(a.Text()), URL: href})
			})
		}
		home.Menu = append(home.Menu, section)
	})

	return home
}

func parseProductCard(s *goquery.Selection) model.Product {
	p := model.Product{
		Name:     firstText(s, ".product-name"),
		Category: firstText(s, ".product-category"),
		Price:    parseAmount(firstText(s, ".product-price")),
	}
	p.URL, _ = s.Find("a[href]").First().Attr("href")
	p.Image, _ = s.Find("img").First().Attr("src")
	p.ID = productID(s)
	return p
}

func ParseCart(doc *goquery.Document) *model.Cart {
	cart := &model.Cart{}
	doc.Find(".cart-item[data-product-id]").Each(func(_ int, s *goquery.Selection) {
		item := model.CartItem{
			ProductID: productID(s),
			Name:      firstText(s, ".cart-item-name", ".product-name", "h3"),
			Quantity:  1,
			Price:     parseAmount(firstText(s, ".cart-item-price", ".product-price")),
		}
		if v, ok := s.Find(".qty-input").First().Attr("value"); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				item.Quantity = n
			}
		}
		cart.Items = append(cart.Items, item)
	})
	cart.Summary = model.CartData{
		Subtotal: parseAmount(doc.Find("#summarySubtotal").Text()),
		Shipping: parseAmount(doc.Find("#summaryShipping").Text()),
		Total:    parseAmount(doc.Find("#summaryTotal").Text()),
		Count:    len(cart.Items),
	}
	return cart
}

func ParseWishlist(doc *goquery.Document) []model.WishlistItem {
	var items []model.WishlistItem
	doc.Find(".wishlist-item").Each(func(_ int, s *goquery.Selection) {
		item := model.WishlistItem{
			ProductID: productID(s),
			Name:      firstText(s, ".product-name", "h3"),
		}
		item.URL, _ = s.Find("a[href]").First().Attr("href")
		items = append(items, item)
	})
	return items
}

// productID reads data-product-id from the element itself or from the
// first descendant carrying it (add-to-cart, wishlist and qty buttons).
func productID(s *goquery.Selection) int64 {
	v, ok := s.Attr("data-product-id")
	if !ok {
		v, _ = s.Find("[data-product-id]").First().Attr("data-product-id")
	}
	id, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	return id
}

func firstText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		if t := cleanText(s.Find(sel).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// amountPattern matches one rendered number: digits with optional
// thousands separators and an optional fraction.
var amountPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// parseAmount reads the first amount in a rendered price such as "₹1,299",
// "Rs. 450" or "₹450 - ₹600". Anything without digits is zero.
func parseAmount(s string) decimal.Decimal {
	token := amountPattern.FindString(s)
	if token == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(token, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
