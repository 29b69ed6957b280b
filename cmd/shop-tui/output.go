package main

import (
	"fmt"
	"io"

	"github.com/cli/go-gh/v2/pkg/tableprinter"
	"github.com/cli/go-gh/v2/pkg/text"
	"github.com/fatih/color"

	"github.com/altinukshini/shop-tui/internal/cart"
	"github.com/altinukshini/shop-tui/internal/model"
)

// output is where subcommands print. Tables degrade to TSV when stdout is
// not a terminal.
type output struct {
	w     io.Writer
	errW  io.Writer
	isTTY bool
	width int
}

func (o output) table() tableprinter.TablePrinter {
	return tableprinter.New(o.w, o.isTTY, o.width)
}

func (o output) success(format string, args ...interface{}) {
	if !o.isTTY {
		fmt.Fprintf(o.w, format+"\n", args...)
		return
	}
	color.New(color.FgGreen).Fprintf(o.w, "✓ "+format+"\n", args...)
}

func (o output) warn(format string, args ...interface{}) {
	if !o.isTTY {
		fmt.Fprintf(o.errW, format+"\n", args...)
		return
	}
	color.New(color.FgYellow).Fprintf(o.errW, "! "+format+"\n", args...)
}

func (o output) header(s string) {
	if o.isTTY {
		color.New(color.Bold).Fprintln(o.w, s)
	}
}

func (o output) printProducts(products []model.Product, resolve func(string) string) error {
	o.header(text.Pluralize(len(products), "result"))
	tp := o.table()
	tp.AddHeader([]string{"NAME", "CATEGORY", "PRICE", "URL"})
	for _, p := range products {
		tp.AddField(p.DisplayName())
		tp.AddField(p.Category)
		price := ""
		if !p.Price.IsZero() {
			price = cart.FormatAmount(p.Price)
		}
		tp.AddField(price)
		tp.AddField(resolve(p.URL))
		tp.EndRow()
	}
	return tp.Render()
}

func (o output) printCart(c *model.Cart) error {
	tp := o.table()
	tp.AddHeader([]string{"ID", "NAME", "QTY", "PRICE"})
	for _, it := range c.Items {
		tp.AddField(fmt.Sprint(it.ProductID))
		tp.AddField(it.Name)
		tp.AddField(fmt.Sprint(it.Quantity))
		tp.AddField(cart.FormatAmount(it.Price))
		tp.EndRow()
	}
	if err := tp.Render(); err != nil {
		return err
	}
	return o.printSummary(c.Summary)
}

func (o output) printSummary(data model.CartData) error {
	s := cart.Summary(data)
	tp := o.table()
	tp.AddField("Subtotal")
	tp.AddField(s.Subtotal)
	tp.EndRow()
	tp.AddField("Shipping")
	tp.AddField(s.Shipping)
	tp.EndRow()
	tp.AddField("Total")
	tp.AddField(s.Total)
	tp.EndRow()
	tp.AddField("Items")
	tp.AddField(fmt.Sprint(data.Count))
	tp.EndRow()
	return tp.Render()
}

func (o output) printWishlist(items []model.WishlistItem, resolve func(string) string) error {
	tp := o.table()
	tp.AddHeader([]string{"ID", "NAME", "URL"})
	for _, it := range items {
		tp.AddField(fmt.Sprint(it.ProductID))
		tp.AddField(it.Name)
		tp.AddField(resolve(it.URL))
		tp.EndRow()
	}
	return tp.Render()
}
