package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/will/chargify"
)

func newCustomersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List, look up, create and update customers",
	}
	cmd.AddCommand(newListCustomersCmd())
	cmd.AddCommand(newGetCustomerCmd())
	cmd.AddCommand(newLookupCustomerCmd())
	cmd.AddCommand(newCreateCustomerCmd())
	cmd.AddCommand(newUpdateCustomerCmd())
	cmd.AddCommand(newCustomerSubscriptionsCmd())
	return cmd
}

func newListCustomersCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "list customers", func(ctx context.Context, c *chargify.Client) error {
				customers, err := c.ListCustomers(ctx, chargify.ListCustomersOptions{Page: page})
				if err != nil {
					return err
				}
				return render(cmd, customers, func(w io.Writer) { printCustomers(w, customers) })
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "Page number (1-based); omitted when 0")
	return cmd
}

func newGetCustomerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <customer-id>",
		Short: "Fetch a customer by Chargify id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "customer id")
			if err != nil {
				return err
			}
			return withClient(cmd, "get customer", func(ctx context.Context, c *chargify.Client) error {
				cust, err := c.CustomerByChargifyID(ctx, id)
				if err != nil {
					return err
				}
				return render(cmd, cust, func(w io.Writer) { printCustomers(w, []chargify.Customer{*cust}) })
			})
		},
	}
}

func newLookupCustomerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <reference>",
		Short: "Fetch a customer by your own reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "lookup customer", func(ctx context.Context, c *chargify.Client) error {
				cust, err := c.CustomerByReference(ctx, args[0])
				if err != nil {
					return err
				}
				return render(cmd, cust, func(w io.Writer) { printCustomers(w, []chargify.Customer{*cust}) })
			})
		},
	}
}

// customerFlags binds the writable customer fields onto cmd.
func customerFlags(cmd *cobra.Command, attrs *chargify.CustomerAttributes) {
	cmd.Flags().StringVar(&attrs.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&attrs.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&attrs.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&attrs.Organization, "organization", "", "Organization")
	cmd.Flags().StringVar(&attrs.Reference, "reference", "", "Your own unique identifier for the customer")
	cmd.Flags().StringVar(&attrs.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&attrs.Country, "country", "", "Country code")
}

func newCreateCustomerCmd() *cobra.Command {
	var attrs chargify.CustomerAttributes
	var generateRef bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if generateRef {
				if attrs.Reference != "" {
					return fmt.Errorf("--reference and --generate-reference are mutually exclusive")
				}
				attrs.Reference = uuid.NewString()
				log.Debug().Str("reference", attrs.Reference).Msg("generated customer reference")
			}
			return withClient(cmd, "create customer", func(ctx context.Context, c *chargify.Client) error {
				res, err := c.CreateCustomer(ctx, attrs)
				if err != nil {
					return err
				}
				return renderCustomerResult(cmd, "create", res)
			})
		},
	}
	customerFlags(cmd, &attrs)
	cmd.Flags().BoolVar(&generateRef, "generate-reference", false, "Use a random UUID as the reference")
	return cmd
}

func newUpdateCustomerCmd() *cobra.Command {
	var attrs chargify.CustomerAttributes

	cmd := &cobra.Command{
		Use:   "update <customer-id>",
		Short: "Update the given fields of a customer",
		Long:  "Only flags given on the command line are sent; an empty value clears the field.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "customer id")
			if err != nil {
				return err
			}
			upd := customerUpdate(cmd, id, attrs)
			return withClient(cmd, "update customer", func(ctx context.Context, c *chargify.Client) error {
				res, err := c.UpdateCustomer(ctx, upd)
				if err != nil {
					return err
				}
				return renderCustomerResult(cmd, "update", res)
			})
		},
	}
	customerFlags(cmd, &attrs)
	return cmd
}

// customerUpdate keeps the fields whose flags were set, even to "".
func customerUpdate(cmd *cobra.Command, id int, attrs chargify.CustomerAttributes) chargify.CustomerUpdate {
	upd := chargify.CustomerUpdate{ID: id}
	for flag, f := range map[string]struct {
		val string
		dst **string
	}{
		"first-name":   {attrs.FirstName, &upd.FirstName},
		"last-name":    {attrs.LastName, &upd.LastName},
		"email":        {attrs.Email, &upd.Email},
		"organization": {attrs.Organization, &upd.Organization},
		"reference":    {attrs.Reference, &upd.Reference},
		"phone":        {attrs.Phone, &upd.Phone},
		"country":      {attrs.Country, &upd.Country},
	} {
		if cmd.Flags().Changed(flag) {
			*f.dst = chargify.String(f.val)
		}
	}
	return upd
}

func newCustomerSubscriptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscriptions <customer-id>",
		Short: "List a customer's subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "customer id")
			if err != nil {
				return err
			}
			return withClient(cmd, "customer subscriptions", func(ctx context.Context, c *chargify.Client) error {
				subs, err := c.CustomerSubscriptions(ctx, id)
				if err != nil {
					return err
				}
				return render(cmd, subs, func(w io.Writer) { printSubscriptions(w, subs) })
			})
		},
	}
}

func renderCustomerResult(cmd *cobra.Command, verb string, res *chargify.CustomerResult) error {
	if res.Customer == nil {
		return rejected(verb+" customer", res.StatusCode, res.Errors())
	}
	return render(cmd, res.Customer, func(w io.Writer) { printCustomers(w, []chargify.Customer{*res.Customer}) })
}

func printCustomers(w io.Writer, customers []chargify.Customer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tREFERENCE\tORGANIZATION")
	for _, c := range customers {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\n", c.ID, c.FirstName, c.LastName, c.Email, c.Reference, c.Organization)
	}
	_ = tw.Flush()
}
