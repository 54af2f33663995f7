package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/cart"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/checkout"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/logic"
)

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "emmdra-cart",
		Short:         "Manage the Emmdra Empire shopping cart",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "emmdra.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable ANSI colours")

	root.AddCommand(
		a.showCmd(),
		a.addCmd(),
		a.removeCmd(),
		a.updateCmd(),
		a.clearCmd(),
		a.checkoutCmd(),
	)
	return root
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), func(ctx context.Context, _ *session) error {
				a.render(cart.FromContext(ctx).State())
				return nil
			})
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var (
		name     string
		price    string
		image    string
		quantity int
	)
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product, or more units of one already in the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", price, err)
			}
			product := logic.Product{ID: args[0], Name: name, Price: amount, ImageURL: image}
			return a.run(cmd.Context(), func(ctx context.Context, s *session) error {
				c := cart.FromContext(ctx)
				s.logger.Info("adding item", zap.String("product_id", product.ID), zap.Int("quantity", quantity))
				if err := c.AddToCartQuantity(product, quantity); err != nil {
					return err
				}
				a.render(c.State())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&price, "price", "0", "unit price")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "units to add")
	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), func(ctx context.Context, s *session) error {
				c := cart.FromContext(ctx)
				s.logger.Info("removing item", zap.String("product_id", args[0]))
				c.RemoveFromCart(args[0])
				a.render(c.State())
				return nil
			})
		},
	}
}

func (a *app) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set the quantity of a product; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}
			return a.run(cmd.Context(), func(ctx context.Context, s *session) error {
				c := cart.FromContext(ctx)
				s.logger.Info("updating quantity", zap.String("product_id", args[0]), zap.Int("new_quantity", quantity))
				c.UpdateQuantity(args[0], quantity)
				a.render(c.State())
				return nil
			})
		},
	}
}

func (a *app) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), func(ctx context.Context, s *session) error {
				c := cart.FromContext(ctx)
				s.logger.Info("clearing cart")
				c.ClearCart()
				a.render(c.State())
				return nil
			})
		},
	}
}

func (a *app) checkoutCmd() *cobra.Command {
	var (
		customer   checkout.Customer
		clearAfter bool
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), func(ctx context.Context, s *session) error {
				c := cart.FromContext(ctx)
				order, err := checkout.Checkout(ctx, c, customer, s.submitter)
				if err != nil {
					return err
				}
				s.logger.Info("checked out", zap.String("order_id", order.ID))
				fmt.Fprintf(a.out, "order %s submitted: %d items, total %s\n",
					order.ID, order.ItemCount, order.Total.StringFixed(2))
				if clearAfter {
					c.ClearCart()
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&customer.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&customer.Email, "email", "", "customer email")
	cmd.Flags().StringVar(&customer.Phone, "phone", "", "customer phone")
	cmd.Flags().StringVar(&customer.Address, "address", "", "delivery address")
	cmd.Flags().StringVar(&customer.Notes, "notes", "", "order notes")
	cmd.Flags().BoolVar(&clearAfter, "clear", true, "empty the cart after a successful submission")
	return cmd
}
