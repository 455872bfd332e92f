package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/inventory"
)

// ComicOptions holds flags for the comic subcommands.
type ComicOptions struct {
	*RootOptions
	Title  string
	Author string
	Price  string
	Genre  string
	Year   int
	Stock  int
}

// comicRow is the JSON payload for a catalog entry. Stock is -1 when
// the comic has no stock record.
type comicRow struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Price  string `json:"price"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
	Stock  int    `json:"stock"`
}

// NewComicCommand creates the comic command group.
func NewComicCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comic",
		Short: "Manage the comic catalog",
	}

	cmd.AddCommand(newComicAddCommand(rootOpts))
	cmd.AddCommand(newComicListCommand(rootOpts))
	cmd.AddCommand(newComicUpdateCommand(rootOpts))
	cmd.AddCommand(newComicRemoveCommand(rootOpts))

	return cmd
}

func newComicAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComicOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a comic to the catalog",
		Long: `Add a comic to the catalog.

The id is assigned automatically. Pass --stock to create a stock
record with an initial quantity in the same step.

Example:
  comicstore comic add --title "Watchmen" --author "Alan Moore" --price 19.99 --genre Superhero --year 1986 --stock 12`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComicAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "comic title (required)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "comic author (required)")
	cmd.Flags().StringVar(&opts.Price, "price", "", "unit price, e.g. 12.50 (required)")
	cmd.Flags().StringVar(&opts.Genre, "genre", "Unknown", "comic genre")
	cmd.Flags().IntVar(&opts.Year, "year", 2000, "publication year")
	cmd.Flags().IntVar(&opts.Stock, "stock", -1, "initial stock quantity (omit for no stock record)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func runComicAdd(opts *ComicOptions, cmd *cobra.Command) error {
	env, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := requireAdmin(opts.RootOptions, env); err != nil {
		return err
	}

	price, err := decimal.NewFromString(opts.Price)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("invalid price %q", opts.Price), err)
	}

	item, err := catalog.New(env.comics.NextID(), opts.Title, opts.Author, price, opts.Genre, opts.Year)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid comic", err)
	}
	env.comics.Add(item)

	if opts.Stock >= 0 {
		if err := env.stocks.AddRecord(item.ID, opts.Stock); err != nil {
			return WrapExitError(ExitFailure, "comic added but stock record failed", err)
		}
	}

	out := formatter(opts.RootOptions, cmd)
	return out.Success(fmt.Sprintf("Added comic #%d: %s", item.ID, item.Title))
}

func newComicListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List the catalog with stock levels",
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
				return out.Success(comicRows(env.comics, env.stocks))
			}
			return out.Success(RenderCatalog(env.comics, env.stocks))
		},
	}
	return cmd
}

func newComicUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComicOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "update <id-or-title>",
		Short: "Update catalog fields of a comic",
		Long: `Update catalog fields of a comic.

Only the flags you pass change; everything else keeps its value.

Example:
  comicstore comic update 3 --price 14.99
  comicstore comic update "Watchmen" --genre Superhero --year 1987`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComicUpdate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "new title")
	cmd.Flags().StringVar(&opts.Author, "author", "", "new author")
	cmd.Flags().StringVar(&opts.Price, "price", "", "new unit price")
	cmd.Flags().StringVar(&opts.Genre, "genre", "", "new genre")
	cmd.Flags().IntVar(&opts.Year, "year", 0, "new publication year")

	return cmd
}

func runComicUpdate(opts *ComicOptions, ref string, cmd *cobra.Command) error {
	env, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := requireAdmin(opts.RootOptions, env); err != nil {
		return err
	}

	item, ok := env.comics.FindByIDOrTitle(ref)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("comic %q not found", ref))
	}

	err = env.comics.Update(item.ID, comicMutator(opts, cmd.Flags().Changed))
	if err != nil {
		return WrapExitError(ExitCommandError, "update rejected", err)
	}

	out := formatter(opts.RootOptions, cmd)
	return out.Success(fmt.Sprintf("Updated comic #%d: %s", item.ID, item.Title))
}

// comicMutator builds the update mutator for the flag-selected
// fields. Changes are staged on a copy and applied only when every
// setter passes, so a rejected update leaves the shared in-memory
// item exactly as it was.
func comicMutator(opts *ComicOptions, changed func(string) bool) func(*catalog.Item) error {
	return func(it *catalog.Item) error {
		staged := *it
		if changed("title") {
			if err := staged.SetTitle(opts.Title); err != nil {
				return err
			}
		}
		if changed("author") {
			if err := staged.SetAuthor(opts.Author); err != nil {
				return err
			}
		}
		if changed("price") {
			price, err := decimal.NewFromString(opts.Price)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", opts.Price, err)
			}
			if err := staged.SetPrice(price); err != nil {
				return err
			}
		}
		if changed("genre") {
			if err := staged.SetGenre(opts.Genre); err != nil {
				return err
			}
		}
		if changed("year") {
			if err := staged.SetYear(opts.Year); err != nil {
				return err
			}
		}
		*it = staged
		return nil
	}
}

func newComicRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "remove <id-or-title>",
		Short:         "Remove a comic from the catalog",
		Args:          cobra.ExactArgs(1),
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

			item, ok := env.comics.FindByIDOrTitle(args[0])
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("comic %q not found", args[0]))
			}
			env.comics.Delete(item.ID)

			out := formatter(rootOpts, cmd)
			return out.Success(fmt.Sprintf("Removed comic #%d: %s", item.ID, item.Title))
		},
	}
	return cmd
}

// RenderCatalog renders the catalog as an aligned table, one comic
// per line, with the stock quantity or "-" for untracked comics.
func RenderCatalog(comics *catalog.Store, stocks *inventory.Store) []string {
	lines := []string{fmt.Sprintf("%-4s %-30s %-20s %9s %-15s %-5s %s",
		"ID", "Title", "Author", "Price", "Genre", "Year", "Stock")}
	for _, it := range comics.All() {
		stock := "-"
		if qty := stocks.Quantity(it.ID); qty != inventory.NoRecord {
			stock = fmt.Sprintf("%d", qty)
		}
		lines = append(lines, fmt.Sprintf("%-4d %-30s %-20s %9s %-15s %-5d %s",
			it.ID, it.Title, it.Author, it.Price.StringFixed(2), it.Genre, it.Year, stock))
	}
	return lines
}

func comicRows(comics *catalog.Store, stocks *inventory.Store) []comicRow {
	rows := make([]comicRow, 0, comics.Len())
	for _, it := range comics.All() {
		rows = append(rows, comicRow{
			ID:     it.ID,
			Title:  it.Title,
			Author: it.Author,
			Price:  it.Price.StringFixed(2),
			Genre:  it.Genre,
			Year:   it.Year,
			Stock:  stocks.Quantity(it.ID),
		})
	}
	return rows
}

// formatter builds an OutputFormatter wired to the command's streams.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
