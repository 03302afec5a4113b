package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/will/chargify"
)

func newSubscriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscriptions",
		Short: "Fetch, create, change, cancel and reactivate subscriptions",
	}
	cmd.AddCommand(newGetSubscriptionCmd())
	cmd.AddCommand(newCreateSubscriptionCmd())
	cmd.AddCommand(newUpdateSubscriptionCmd())
	cmd.AddCommand(newCancelSubscriptionCmd())
	cmd.AddCommand(newReactivateSubscriptionCmd())
	return cmd
}

func newGetSubscriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <subscription-id>",
		Short: "Fetch a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "subscription id")
			if err != nil {
				return err
			}
			return withClient(cmd, "get subscription", func(ctx context.Context, c *chargify.Client) error {
				sub, found, err := c.Subscription(ctx, id)
				if err != nil {
					return err
				}
				if !found {
					return fmt.Errorf("subscription %d: %w", id, chargify.ErrNotFound)
				}
				return render(cmd, sub, func(w io.Writer) { printSubscriptions(w, []chargify.Subscription{*sub}) })
			})
		},
	}
}

func newCreateSubscriptionCmd() *cobra.Command {
	var attrs chargify.SubscriptionAttributes

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Sign a customer up for a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if attrs.ProductHandle == "" && attrs.ProductID == 0 {
				return fmt.Errorf("one of --product-handle or --product-id is required")
			}
			if attrs.CustomerID == 0 && attrs.CustomerReference == "" {
				return fmt.Errorf("one of --customer-id or --customer-reference is required")
			}
			return withClient(cmd, "create subscription", func(ctx context.Context, c *chargify.Client) error {
				return renderSubscriptionResult(cmd, "create subscription", func() (*chargify.SubscriptionResult, error) {
					return c.CreateSubscription(ctx, attrs)
				})
			})
		},
	}
	productFlags(cmd, &attrs)
	cmd.Flags().IntVar(&attrs.CustomerID, "customer-id", 0, "Existing customer id")
	cmd.Flags().StringVar(&attrs.CustomerReference, "customer-reference", "", "Existing customer reference")
	cmd.Flags().StringVar(&attrs.CouponCode, "coupon-code", "", "Coupon to apply")
	return cmd
}

func newUpdateSubscriptionCmd() *cobra.Command {
	var attrs chargify.SubscriptionAttributes

	cmd := &cobra.Command{
		Use:   "update <subscription-id>",
		Short: "Move a subscription to another product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "subscription id")
			if err != nil {
				return err
			}
			return withClient(cmd, "update subscription", func(ctx context.Context, c *chargify.Client) error {
				return renderSubscriptionResult(cmd, "update subscription", func() (*chargify.SubscriptionResult, error) {
					return c.UpdateSubscription(ctx, id, attrs)
				})
			})
		},
	}
	productFlags(cmd, &attrs)
	return cmd
}

func newCancelSubscriptionCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "cancel <subscription-id>",
		Short: "Cancel a subscription immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "subscription id")
			if err != nil {
				return err
			}
			return withClient(cmd, "cancel subscription", func(ctx context.Context, c *chargify.Client) error {
				return renderSubscriptionResult(cmd, "cancel subscription", func() (*chargify.SubscriptionResult, error) {
					return c.CancelSubscription(ctx, id, message)
				})
			})
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "Cancellation message stored on the subscription")
	return cmd
}

func newReactivateSubscriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate <subscription-id>",
		Short: "Reactivate a canceled subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "subscription id")
			if err != nil {
				return err
			}
			return withClient(cmd, "reactivate subscription", func(ctx context.Context, c *chargify.Client) error {
				return renderSubscriptionResult(cmd, "reactivate subscription", func() (*chargify.SubscriptionResult, error) {
					return c.ReactivateSubscription(ctx, id)
				})
			})
		},
	}
}

func productFlags(cmd *cobra.Command, attrs *chargify.SubscriptionAttributes) {
	cmd.Flags().StringVar(&attrs.ProductHandle, "product-handle", "", "Product handle")
	cmd.Flags().IntVar(&attrs.ProductID, "product-id", 0, "Product id")
}

func renderSubscriptionResult(cmd *cobra.Command, op string, call func() (*chargify.SubscriptionResult, error)) error {
	res, err := call()
	if err != nil {
		return err
	}
	if !res.Success || res.Subscription == nil {
		return rejected(op, res.StatusCode, res.Errors())
	}
	return render(cmd, res.Subscription, func(w io.Writer) { printSubscriptions(w, []chargify.Subscription{*res.Subscription}) })
}

// rejected reports a write that Chargify refused.
func rejected(op string, status int, msgs []string) error {
	if len(msgs) == 0 {
		return pkgerrors.Errorf("chargify rejected %s (HTTP %d)", op, status)
	}
	return pkgerrors.Errorf("chargify rejected %s (HTTP %d): %s", op, status, strings.Join(msgs, "; "))
}

func printSubscriptions(w io.Writer, subs []chargify.Subscription) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATE\tPRODUCT\tCUSTOMER\tBALANCE")
	for _, s := range subs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", s.ID, s.State, s.Product.Handle, s.Customer.ID, cents(s.BalanceInCents))
	}
	_ = tw.Flush()
}

func cents(v int64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
