package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/spf13/cobra"
)

func init() {
	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage purchase orders",
	}

	// List
	var listSearch, listState string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			state := order.Unknown
			if listState != "" {
				parsed, err := order.ParseState(strings.ToUpper(listState))
				if err != nil {
					return err
				}
				state = parsed
			}

			return withApplication(c, func(app *application) error {
				handler := app.root.CreateListOrdersQueryHandler()
				orders, err := handler.Handle(c.Context(), queries.NewListOrdersQuery(listSearch, state))
				if err != nil {
					return err
				}
				printOrders(c.OutOrStdout(), orders)
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only orders whose reference contains this text")
	listCmd.Flags().StringVar(&listState, "state", "", "Only orders in this state, e.g. LABELS_RECEIVED")
	ordersCmd.AddCommand(listCmd)

	// Show
	ordersCmd.AddCommand(&cobra.Command{
		Use:   "show REFERENCE",
		Short: "Show an order with its fields and history",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return withApplication(c, func(app *application) error {
				return showOrder(c, app, args[0])
			})
		},
	})

	// Create
	var createItems, createFields []string
	createCmd := &cobra.Command{
		Use:     "create REFERENCE SUPPLIER",
		Short:   "Create an order in the first state",
		Example: `  fulfillment orders create OF-2025-001 ACME --item "P-100:4:Bearing:PRJ-7" --set supplier_email=sales@acme.test`,
		Args:    cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			items := make([]commands.LineItemInput, 0, len(createItems))
			for _, raw := range createItems {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				items = append(items, item)
			}

			assignments, err := parseAssignments(createFields)
			if err != nil {
				return err
			}
			fields := make(map[order.Field]string, len(assignments))
			for name, value := range assignments {
				f, parseErr := order.ParseField(name)
				if parseErr != nil {
					return parseErr
				}
				fields[f] = value
			}

			cmd, err := commands.NewCreateOrderCommand(args[0], args[1], items, fields)
			if err != nil {
				return err
			}

			return withApplication(c, func(app *application) error {
				handler := app.root.CreateCreateOrderCommandHandler()
				if err := handler.Handle(c.Context(), cmd); err != nil {
					return err
				}
				return showOrder(c, app, cmd.Reference())
			})
		},
	}
	createCmd.Flags().StringArrayVar(&createItems, "item", nil, "Line item CODE:QUANTITY[:DESCRIPTION[:PROJECT]] (repeatable)")
	createCmd.Flags().StringArrayVar(&createFields, "set", nil, "Field value FIELD=VALUE (repeatable)")
	ordersCmd.AddCommand(createCmd)

	// Set
	ordersCmd.AddCommand(&cobra.Command{
		Use:   "set REFERENCE FIELD=VALUE...",
		Short: "Fill in stage fields; an empty value clears a field",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			assignments, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}
			cmd, err := commands.NewUpdateOrderFieldsCommand(args[0], assignments)
			if err != nil {
				return err
			}

			return withApplication(c, func(app *application) error {
				handler := app.root.CreateUpdateOrderFieldsCommandHandler()
				if err := handler.Handle(c.Context(), cmd); err != nil {
					return err
				}
				return showOrder(c, app, cmd.Reference())
			})
		},
	})

	// Advance
	var advanceComment string
	var advanceForce bool
	advanceCmd := &cobra.Command{
		Use:   "advance REFERENCE",
		Short: "Move an order to the next state",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cmd, err := commands.NewAdvanceOrderCommand(args[0], advanceComment, !advanceForce)
			if err != nil {
				return err
			}

			return withApplication(c, func(app *application) error {
				handler := app.root.CreateAdvanceOrderCommandHandler()
				result, err := handler.Handle(c.Context(), cmd)
				if errors.Is(err, commands.ErrTransitionIsBlocked) {
					return fmt.Errorf("%s cannot leave %s, missing: %s (use --force to advance anyway)",
						result.Reference, result.From, joinFields(result.MissingFields))
				}
				if err != nil {
					return err
				}
				printTransition(c.OutOrStdout(), result)
				return nil
			})
		},
	}
	advanceCmd.Flags().StringVar(&advanceComment, "comment", "", "History comment")
	advanceCmd.Flags().BoolVar(&advanceForce, "force", false, "Advance even when required fields are missing")
	ordersCmd.AddCommand(advanceCmd)

	// Retreat
	var retreatComment string
	retreatCmd := &cobra.Command{
		Use:   "retreat REFERENCE",
		Short: "Move an order back to the previous state",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cmd, err := commands.NewRetreatOrderCommand(args[0], retreatComment)
			if err != nil {
				return err
			}

			return withApplication(c, func(app *application) error {
				handler := app.root.CreateRetreatOrderCommandHandler()
				result, err := handler.Handle(c.Context(), cmd)
				if err != nil {
					return err
				}
				printTransition(c.OutOrStdout(), result)
				return nil
			})
		},
	}
	retreatCmd.Flags().StringVar(&retreatComment, "comment", "", "History comment")
	ordersCmd.AddCommand(retreatCmd)

	// Remove
	ordersCmd.AddCommand(&cobra.Command{
		Use:   "remove REFERENCE",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cmd, err := commands.NewRemoveOrderCommand(args[0])
			if err != nil {
				return err
			}

			return withApplication(c, func(app *application) error {
				handler := app.root.CreateRemoveOrderCommandHandler()
				if err := handler.Handle(c.Context(), cmd); err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Removed %s\n", cmd.Reference())
				return nil
			})
		},
	})

	rootCmd.AddCommand(ordersCmd)
}

// withApplication opens the application with logs on stderr, runs fn and
// closes it.
func withApplication(c *cobra.Command, fn func(app *application) error) error {
	app, err := openApplication(c, os.Stderr)
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(app)
}

func showOrder(c *cobra.Command, app *application, reference string) error {
	query, err := queries.NewGetOrderQuery(reference)
	if err != nil {
		return err
	}
	handler := app.root.CreateGetOrderQueryHandler()
	details, err := handler.Handle(c.Context(), query)
	if err != nil {
		return err
	}
	printOrder(c.OutOrStdout(), details)
	return nil
}

func printOrders(out io.Writer, orders []queries.OrderSummaryResponse) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No orders found.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REFERENCE\tSUPPLIER\tSTATE\tPROGRESS\tREADY\tITEMS\tCREATED")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\t%d\t%s\n",
			o.Reference, o.Supplier, o.State, o.Progress, yesNo(o.CanAdvance), o.ItemCount,
			o.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func printOrder(out io.Writer, o queries.OrderDetailsResponse) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Reference:\t%s\n", o.Reference)
	fmt.Fprintf(w, "Supplier:\t%s\n", o.Supplier)
	fmt.Fprintf(w, "State:\t%s (%d/%d, %d%%)\n", o.State.Label(), o.Position, order.TotalStates, o.Progress)
	fmt.Fprintf(w, "Created:\t%s\n", o.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	for _, f := range o.Fields {
		marker := ""
		if f.Required {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s:\t%s\n", f.Label, marker, f.Value)
	}
	_ = w.Flush()

	if len(o.MissingFields) > 0 {
		fmt.Fprintf(out, "\nMissing before advancing: %s\n", joinFields(o.MissingFields))
	}

	fmt.Fprintln(out, "\nLine items:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CODE\tDESCRIPTION\tQTY\tPROJECT")
	for _, li := range o.LineItems {
		fmt.Fprintf(w, "  %s\t%s\t%d\t%s\n", li.Code, li.Description, li.Quantity, li.Project)
	}
	_ = w.Flush()

	fmt.Fprintln(out, "\nHistory:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, h := range o.History {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", h.Timestamp.Local().Format("2006-01-02 15:04:05"), h.State, h.Comment)
	}
	_ = w.Flush()
}

func printTransition(out io.Writer, r commands.TransitionResult) {
	if !r.Moved {
		fmt.Fprintf(out, "%s stays in %s\n", r.Reference, r.To)
		return
	}
	fmt.Fprintf(out, "%s: %s -> %s (%d%%)\n", r.Reference, r.From, r.To, r.To.ProgressPercent())
	if len(r.MissingFields) > 0 {
		fmt.Fprintf(out, "Needed before the next advance: %s\n", joinFields(r.MissingFields))
	}
}

// parseItem reads CODE:QUANTITY[:DESCRIPTION[:PROJECT]].
func parseItem(raw string) (commands.LineItemInput, error) {
	parts := strings.SplitN(raw, ":", 4)
	if len(parts) < 2 {
		return commands.LineItemInput{}, fmt.Errorf("item %q: expected CODE:QUANTITY[:DESCRIPTION[:PROJECT]]", raw)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return commands.LineItemInput{}, fmt.Errorf("item %q: quantity %q is not a whole number", raw, parts[1])
	}

	item := commands.LineItemInput{Code: strings.TrimSpace(parts[0]), Quantity: qty}
	if len(parts) > 2 {
		item.Description = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		item.Project = strings.TrimSpace(parts[3])
	}
	return item, nil
}

// parseAssignments reads FIELD=VALUE pairs. The value may be empty.
func parseAssignments(args []string) (map[string]string, error) {
	result := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%q: expected FIELD=VALUE", arg)
		}
		result[strings.TrimSpace(name)] = value
	}
	return result, nil
}

func joinFields(fields []order.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
