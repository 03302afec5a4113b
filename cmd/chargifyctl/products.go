package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/will/chargify"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "list products", func(ctx context.Context, c *chargify.Client) error {
				products, err := c.ListProducts(ctx)
				if err != nil {
					return err
				}
				return render(cmd, products, func(w io.Writer) { printProducts(w, products) })
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <product-id>",
		Short: "Fetch a product by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product id")
			if err != nil {
				return err
			}
			return withClient(cmd, "get product", func(ctx context.Context, c *chargify.Client) error {
				p, err := c.Product(ctx, id)
				if err != nil {
					return err
				}
				return render(cmd, p, func(w io.Writer) { printProducts(w, []chargify.Product{*p}) })
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "handle <handle>",
		Short: "Fetch a product by handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "get product by handle", func(ctx context.Context, c *chargify.Client) error {
				p, err := c.ProductByHandle(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd, p, func(w io.Writer) { printProducts(w, []chargify.Product{*p}) })
			})
		},
	})

	return cmd
}

func printProducts(w io.Writer, products []chargify.Product) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tHANDLE\tNAME\tPRICE\tINTERVAL")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d %s\n", p.ID, p.Handle, p.Name, cents(p.PriceInCents), p.Interval, p.IntervalUnit)
	}
	_ = tw.Flush()
}
