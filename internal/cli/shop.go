package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/checkout"
)

// NewShopCommand creates the interactive shopping session command.
func NewShopCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Start an interactive shopping session",
		Long: `Start an interactive shopping session.

Reads commands from stdin, one per line:

  list                 show the catalog with stock
  add <id|title> <n>   add n copies of a comic to the cart
  remove <id|title>    remove a comic from the cart
  cart                 show the cart
  checkout             place the order and print the receipt
  help                 show this command list
  quit                 end the session

The cart lives in memory for the session. Checkout validates every
line against stock before anything is deducted; a rejected checkout
leaves both stock and cart untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(rootOpts, cmd)
		},
	}
	return cmd
}

func runShop(opts *RootOptions, cmd *cobra.Command) error {
	env, err := openStore(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	engine := checkout.New(env.comics, env.stocks, env.blobs)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Welcome to the Comic Book Store. Type 'help' for commands.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			for _, line := range RenderCatalog(env.comics, env.stocks) {
				fmt.Fprintln(out, line)
			}
		case "add":
			shopAdd(engine, fields, out)
		case "remove":
			shopRemove(engine, fields, out)
		case "cart":
			shopCart(engine, out)
		case "checkout":
			shopCheckout(engine, out)
		case "help":
			fmt.Fprintln(out, "Commands: list, add <id|title> <n>, remove <id|title>, cart, checkout, help, quit")
		case "quit", "exit":
			fmt.Fprintln(out, "Goodbye.")
			return scanner.Err()
		default:
			fmt.Fprintf(out, "Unknown command %q. Type 'help' for commands.\n", fields[0])
		}
	}
	return scanner.Err()
}

// shopAdd handles "add <id|title> <n>". Multi-word titles work
// because the quantity is always the last token.
func shopAdd(engine *checkout.Engine, fields []string, out io.Writer) {
	if len(fields) < 3 {
		fmt.Fprintln(out, "Usage: add <id|title> <quantity>")
		return
	}
	ref := strings.Join(fields[1:len(fields)-1], " ")
	qty, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		fmt.Fprintf(out, "Invalid quantity %q\n", fields[len(fields)-1])
		return
	}

	line, err := engine.AddLine(ref, qty)
	if err != nil {
		fmt.Fprintf(out, "Cannot add %q: %v\n", ref, err)
		return
	}
	fmt.Fprintf(out, "Added %s x%d to cart\n", line.Item.Title, line.Quantity)
}

func shopRemove(engine *checkout.Engine, fields []string, out io.Writer) {
	if len(fields) < 2 {
		fmt.Fprintln(out, "Usage: remove <id|title>")
		return
	}
	ref := strings.Join(fields[1:], " ")
	if engine.RemoveLine(ref) {
		fmt.Fprintf(out, "Removed %q from cart\n", ref)
	} else {
		fmt.Fprintf(out, "%q is not in the cart\n", ref)
	}
}

func shopCart(engine *checkout.Engine, out io.Writer) {
	lines := engine.Cart()
	if len(lines) == 0 {
		fmt.Fprintln(out, "The cart is empty.")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(out, "%s x%d = %s\n", l.Item.Title, l.Quantity, l.Total().StringFixed(2))
	}
	fmt.Fprintf(out, "Total: %s\n", engine.CartTotal().StringFixed(2))
}

func shopCheckout(engine *checkout.Engine, out io.Writer) {
	order, err := engine.Checkout()
	if err != nil {
		if verr, ok := checkout.AsValidationError(err); ok {
			fmt.Fprintln(out, "Checkout rejected:")
			for _, f := range verr.Failures {
				fmt.Fprintf(out, "  %s\n", f)
			}
			return
		}
		fmt.Fprintf(out, "Checkout failed: %v\n", err)
		return
	}
	for _, line := range checkout.RenderReceipt(order) {
		fmt.Fprintln(out, line)
	}
}
