package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runShopSession executes the shop command with a scripted stdin.
func runShopSession(t *testing.T, dir, script string) string {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(script))
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "comicstore.yaml"), "shop"})
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestShop_CheckoutFlow(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	out := runShopSession(t, dir, strings.Join([]string{
		"list",
		"add 1 2",
		"add Maus 1",
		"cart",
		"checkout",
		"quit",
	}, "\n")+"\n")

	assert.Contains(t, out, "Added Watchmen x2 to cart")
	assert.Contains(t, out, "Added Maus x1 to cart")
	assert.Contains(t, out, "Total: 54.48")
	assert.Contains(t, out, "===== Comic Book Store =====")
	assert.Contains(t, out, "Order #1")
	assert.Contains(t, out, "Watchmen x2 @ 19.99 = 39.98")
	assert.Contains(t, out, "Goodbye.")

	// Stock was deducted and the receipt was persisted.
	stockOut, err := runCommand(t, dir, "stock", "list")
	require.NoError(t, err)
	assert.Contains(t, stockOut, "10")

	listing, err := runCommand(t, dir, "stock", "list")
	require.NoError(t, err)
	assert.Contains(t, listing, "Watchmen")
}

func TestShop_RejectedCheckoutKeepsCartAndStock(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	out := runShopSession(t, dir, strings.Join([]string{
		"add Maus 99",
		"checkout",
		"cart",
		"quit",
	}, "\n")+"\n")

	assert.Contains(t, out, "Checkout rejected:")
	assert.Contains(t, out, "INSUFFICIENT_STOCK")
	// Cart survives the rejection.
	assert.Contains(t, out, "Maus x99")

	stockOut, err := runCommand(t, dir, "stock", "list")
	require.NoError(t, err)
	assert.Contains(t, stockOut, "Maus")
	assert.Contains(t, stockOut, "3")
}

func TestShop_MultiWordTitles(t *testing.T) {
	dir := testEnvDir(t)
	_, err := runCommand(t, dir, "comic", "add",
		"--title", "The Dark Knight Returns", "--author", "Frank Miller",
		"--price", "17.25", "--stock", "4")
	require.NoError(t, err)

	out := runShopSession(t, dir, strings.Join([]string{
		"add The Dark Knight Returns 2",
		"cart",
		"remove the dark knight returns",
		"cart",
		"quit",
	}, "\n")+"\n")

	assert.Contains(t, out, "Added The Dark Knight Returns x2 to cart")
	assert.Contains(t, out, "Total: 34.50")
	assert.Contains(t, out, "The cart is empty.")
}

func TestShop_UnknownInputs(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	out := runShopSession(t, dir, strings.Join([]string{
		"frobnicate",
		"add 99 1",
		"add 1 zero",
		"remove Bone",
		"checkout",
		"quit",
	}, "\n")+"\n")

	assert.Contains(t, out, `Unknown command "frobnicate"`)
	assert.Contains(t, out, `Cannot add "99"`)
	assert.Contains(t, out, `Invalid quantity "zero"`)
	assert.Contains(t, out, `"Bone" is not in the cart`)
	assert.Contains(t, out, "Checkout failed:")
}

func TestShop_EOFEndsSession(t *testing.T) {
	dir := testEnvDir(t)
	out := runShopSession(t, dir, "cart\n")
	assert.Contains(t, out, "The cart is empty.")
}
