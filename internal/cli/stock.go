package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/inventory"
)

// stockRow is the JSON payload for a stock record.
type stockRow struct {
	ComicID  int    `json:"comic_id"`
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Low      bool   `json:"low"`
}

// NewStockCommand creates the stock command group.
func NewStockCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Manage stock records",
	}

	cmd.AddCommand(newStockAddCommand(rootOpts))
	cmd.AddCommand(newStockMutateCommand(rootOpts, "set", "Set the quantity of a stock record",
		func(s *inventory.Store, id, n int) error { return s.SetQuantity(id, n) }))
	cmd.AddCommand(newStockMutateCommand(rootOpts, "increase", "Increase the quantity of a stock record",
		func(s *inventory.Store, id, n int) error { return s.AddToComic(id, n) }))
	cmd.AddCommand(newStockMutateCommand(rootOpts, "decrease", "Decrease the quantity of a stock record",
		func(s *inventory.Store, id, n int) error { return s.RemoveFromComic(id, n) }))
	cmd.AddCommand(newStockListCommand(rootOpts))
	cmd.AddCommand(newStockDashboardCommand(rootOpts))

	return cmd
}

func newStockAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <id-or-title> <quantity>",
		Short: "Create a stock record for a comic",
		Long: `Create a stock record for a comic.

A comic has at most one stock record; adding a second one fails.

Example:
  comicstore stock add "Watchmen" 12`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := requireAdmin(rootOpts, env); err != nil {
				return err
			}

			item, qty, err := resolveStockArgs(env, args)
			if err != nil {
				return err
			}
			if err := env.stocks.AddRecord(item.ID, qty); err != nil {
				return WrapExitError(ExitFailure, "cannot create stock record", err)
			}

			out := formatter(rootOpts, cmd)
			return out.Success(fmt.Sprintf("Stock for #%d %s: %d", item.ID, item.Title, qty))
		},
	}
	return cmd
}

func newStockMutateCommand(rootOpts *RootOptions, verb, short string, apply func(*inventory.Store, int, int) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           verb + " <id-or-title> <amount>",
		Short:         short,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer env.Close()

			if err := requireAdmin(rootOpts, env); err != nil {
				return err
			}

			item, amount, err := resolveStockArgs(env, args)
			if err != nil {
				return err
			}
			if err := apply(env.stocks, item.ID, amount); err != nil {
				code := ExitFailure
				if errors.Is(err, inventory.ErrNoRecord) {
					code = ExitCommandError
				}
				return WrapExitError(code, fmt.Sprintf("cannot %s stock for #%d", verb, item.ID), err)
			}

			out := formatter(rootOpts, cmd)
			return out.Success(fmt.Sprintf("Stock for #%d %s: %d", item.ID, item.Title, env.stocks.Quantity(item.ID)))
		},
	}
	return cmd
}

// resolveStockArgs resolves <id-or-title> against the catalog and
// parses the numeric second argument.
func resolveStockArgs(env *storeEnv, args []string) (*catalog.Item, int, error) {
	item, ok := env.comics.FindByIDOrTitle(args[0])
	if !ok {
		return nil, 0, NewExitError(ExitCommandError, fmt.Sprintf("comic %q not found", args[0]))
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, 0, WrapExitError(ExitCommandError, fmt.Sprintf("invalid amount %q", args[1]), err)
	}
	return item, n, nil
}

func newStockListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List all stock records",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer env.Close()

			out := formatter(rootOpts, cmd)
			if rootOpts.Format == "json" {
				return out.Success(stockRows(env.comics, env.stocks))
			}
			return out.Success(RenderStockList(env.comics, env.stocks))
		},
	}
	return cmd
}

func newStockDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Show a stock overview with low-stock alerts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer env.Close()

			out := formatter(rootOpts, cmd)
			if rootOpts.Format == "json" {
				return out.Success(stockRows(env.comics, env.stocks))
			}
			return out.Success(RenderDashboard(env.comics, env.stocks))
		},
	}
	return cmd
}

// titleFor resolves a stock record's comic title. Records can outlive
// their catalog entry, those show as "Unknown Comic".
func titleFor(comics *catalog.Store, comicID int) string {
	if it, ok := comics.FindByID(comicID); ok {
		return it.Title
	}
	return "Unknown Comic"
}

// RenderStockList renders all stock records as an aligned table.
func RenderStockList(comics *catalog.Store, stocks *inventory.Store) []string {
	lines := []string{fmt.Sprintf("%-4s %-30s %8s", "ID", "Title", "Quantity")}
	for _, r := range stocks.All() {
		lines = append(lines, fmt.Sprintf("%-4d %-30s %8d", r.ComicID, titleFor(comics, r.ComicID), r.Quantity))
	}
	return lines
}

// RenderDashboard renders the stock overview shown by the dashboard
// command: record count plus every record at or below the low-stock
// threshold.
func RenderDashboard(comics *catalog.Store, stocks *inventory.Store) []string {
	lines := []string{
		"===== Stock Dashboard =====",
		fmt.Sprintf("Tracked comics: %d", stocks.Len()),
		fmt.Sprintf("Low stock (<= %d):", inventory.LowStockThreshold),
	}
	low := stocks.LowStock()
	if len(low) == 0 {
		lines = append(lines, "  none")
		return lines
	}
	for _, r := range low {
		lines = append(lines, fmt.Sprintf("  [%4d] %s - %d left", r.ComicID, titleFor(comics, r.ComicID), r.Quantity))
	}
	return lines
}

func stockRows(comics *catalog.Store, stocks *inventory.Store) []stockRow {
	rows := make([]stockRow, 0, stocks.Len())
	for _, r := range stocks.All() {
		rows = append(rows, stockRow{
			ComicID:  r.ComicID,
			Title:    titleFor(comics, r.ComicID),
			Quantity: r.Quantity,
			Low:      r.Quantity <= inventory.LowStockThreshold,
		})
	}
	return rows
}
