package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cli/go-gh/v2/pkg/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/altinukshini/shop-tui/internal/api"
	"github.com/altinukshini/shop-tui/internal/model"
	"github.com/altinukshini/shop-tui/internal/ops"
	"github.com/altinukshini/shop-tui/internal/search"
)

func newVersionCmd(out output) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no config or network needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out.w, versionString())
		},
	}
}

func newSearchCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>...",
		Short: "Search products",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if utf8.RuneCountInString(query) < search.MinQueryLength {
				return fmt.Errorf("query must be at least %d characters", search.MinQueryLength)
			}
			resp, err := s.client.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(resp.Products) == 0 {
				s.out.warn("No products found for %q", query)
				return nil
			}
			return s.out.printProducts(resp.Products, s.client.ResolveURL)
		},
	}
}

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", arg)
	}
	return id, nil
}

func newCartCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the cart",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of items in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := s.client.CartCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out.w, n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List cart items and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.client.Cart(cmd.Context())
			if err != nil {
				return err
			}
			if c.IsEmpty() {
				s.out.warn("Your cart is empty")
				return nil
			}
			return s.out.printCart(c)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set the quantity of a cart item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil || qty < 1 {
				return fmt.Errorf("quantity must be a positive number, got %q", args[1])
			}
			resp, err := s.client.UpdateCartItem(cmd.Context(), id, qty)
			if err != nil {
				return s.mutationError(err, "Failed to update cart")
			}
			s.out.success("%s", resp.Message)
			return s.out.printSummary(*resp.CartData)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			resp, err := s.client.RemoveCartItem(cmd.Context(), id)
			if err != nil {
				return s.mutationError(err, "Failed to remove item")
			}
			s.out.success("%s", resp.Message)
			if resp.CartData.Count == 0 {
				s.out.warn("Your cart is empty")
				return nil
			}
			return s.out.printSummary(*resp.CartData)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseProductID(args[0])
			if err != nil {
				return err
			}
			resp, err := s.client.AddToCart(cmd.Context(), id)
			if err != nil {
				return s.mutationError(err, "Failed to add to cart")
			}
			s.out.success("%s", resp.Message)
			return nil
		},
	})

	cmd.AddCommand(newCartClearCmd(s))
	return cmd
}

func newCartClearCmd(s *session) *cobra.Command {
	var match string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cart item, or those whose name matches --match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.client.Cart(cmd.Context())
			if err != nil {
				return err
			}
			items := ops.FilterCartItems(c.Items, ops.Filter{Name: match})
			ids := make([]int64, 0, len(items))
			for _, it := range items {
				ids = append(ids, it.ProductID)
			}
			return s.runBulk(cmd.Context(), "Removed", ids, func(ctx context.Context, id int64) error {
				_, err := s.client.RemoveCartItem(ctx, id)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&match, "match", "", "only items whose name contains this text")
	return cmd
}

func newWishlistCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Inspect and change the wishlist",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "count",
		Short: "Print the number of wishlist items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := s.client.WishlistCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out.w, n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List wishlist items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := s.client.Wishlist(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				s.out.warn("Your wishlist is empty")
				return nil
			}
			return s.out.printWishlist(items, s.client.ResolveURL)
		},
	})

	for _, c := range []struct {
		use, short, verb, fallback string
		fn                         func(context.Context, int64) (*model.MutationResponse, error)
	}{
		{"add <product-id>", "Add a product to the wishlist", "Added", "Failed to add to wishlist", s.addToWishlist},
		{"remove <product-id>", "Remove a product from the wishlist", "Removed", "Failed to remove from wishlist", s.removeFromWishlist},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   c.use,
			Short: c.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseProductID(args[0])
				if err != nil {
					return err
				}
				resp, err := c.fn(cmd.Context(), id)
				if err != nil {
					return s.mutationError(err, c.fallback)
				}
				msg := resp.Message
				if msg == "" {
					msg = fmt.Sprintf("%s product %d", c.verb, id)
				}
				s.out.success("%s", msg)
				return nil
			},
		})
	}

	var match string
	toCart := &cobra.Command{
		Use:   "to-cart",
		Short: "Move wishlist items into the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := s.client.Wishlist(cmd.Context())
			if err != nil {
				return err
			}
			items = ops.FilterWishlistItems(items, ops.Filter{Name: match})
			ids := make([]int64, 0, len(items))
			for _, it := range items {
				ids = append(ids, it.ProductID)
			}
			return s.runBulk(cmd.Context(), "Moved", ids, func(ctx context.Context, id int64) error {
				if _, err := s.client.AddToCart(ctx, id); err != nil {
					return err
				}
				_, err := s.client.RemoveFromWishlist(ctx, id)
				return err
			})
		},
	}
	toCart.Flags().StringVar(&match, "match", "", "only items whose name contains this text")
	cmd.AddCommand(toCart)
	return cmd
}

func (s *session) addToWishlist(ctx context.Context, id int64) (*model.MutationResponse, error) {
	return s.client.AddToWishlist(ctx, id)
}

func (s *session) removeFromWishlist(ctx context.Context, id int64) (*model.MutationResponse, error) {
	return s.client.RemoveFromWishlist(ctx, id)
}

// mutationError logs the failure and surfaces the server's message when
// there is one.
func (s *session) mutationError(err error, fallback string) error {
	s.log.Warn("mutation failed", zap.Error(err), zap.Bool("transport", api.IsTransport(err)))
	return errors.New(api.UserMessage(err, fallback))
}

func (s *session) runBulk(ctx context.Context, verb string, ids []int64, fn ops.ApplyFunc) error {
	if len(ids) == 0 {
		s.out.warn("Nothing to do")
		return nil
	}
	result, err := ops.Run(ctx, ids, fn, func(done, total int) {
		s.log.Debug("bulk progress", zap.Int("done", done), zap.Int("total", total))
	})
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		s.log.Warn("bulk item failed", zap.Error(e))
		s.out.warn("%v", e)
	}
	s.out.success("%s %s", verb, text.Pluralize(result.Completed, "item"))
	if result.Failed > 0 {
		return fmt.Errorf("%s failed", text.Pluralize(result.Failed, "item"))
	}
	return nil
}
