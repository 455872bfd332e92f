package cli

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/catalog"
)

// addFixtureComics seeds the store with three comics through the CLI.
func addFixtureComics(t *testing.T, dir string) {
	t.Helper()
	_, err := runCommand(t, dir, "comic", "add",
		"--title", "Watchmen", "--author", "Alan Moore",
		"--price", "19.99", "--genre", "Superhero", "--year", "1986", "--stock", "12")
	require.NoError(t, err)
	_, err = runCommand(t, dir, "comic", "add",
		"--title", "Maus", "--author", "Art Spiegelman",
		"--price", "14.50", "--year", "1991", "--stock", "3")
	require.NoError(t, err)
	_, err = runCommand(t, dir, "comic", "add",
		"--title", "Bone", "--author", "Jeff Smith",
		"--price", "9.99", "--stock", "10")
	require.NoError(t, err)
}

func TestComicAddAndList(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	out, err := runCommand(t, dir, "comic", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Watchmen")
	assert.Contains(t, out, "Alan Moore")
	assert.Contains(t, out, "19.99")
	assert.Contains(t, out, "Maus")
	assert.Contains(t, out, "Bone")
}

func TestComicAdd_MissingFlags(t *testing.T) {
	dir := testEnvDir(t)
	_, err := runCommand(t, dir, "comic", "add", "--title", "Watchmen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestComicAdd_InvalidPrice(t *testing.T) {
	dir := testEnvDir(t)
	_, err := runCommand(t, dir, "comic", "add",
		"--title", "Watchmen", "--author", "Alan Moore", "--price", "cheap")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestComicUpdate(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	_, err := runCommand(t, dir, "comic", "update", "Watchmen", "--price", "24.99")
	require.NoError(t, err)

	out, err := runCommand(t, dir, "comic", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "24.99")
	assert.NotContains(t, out, "19.99")
}

func TestComicUpdate_NotFound(t *testing.T) {
	dir := testEnvDir(t)
	_, err := runCommand(t, dir, "comic", "update", "Nothing Here", "--price", "1.00")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestComicUpdate_RejectedValueNotPersisted(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	_, err := runCommand(t, dir, "comic", "update", "Watchmen", "--price", "-5")
	require.Error(t, err)

	out, err := runCommand(t, dir, "comic", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "19.99")
}

func TestComicMutator_RejectedChangeLeavesItemUntouched(t *testing.T) {
	item, err := catalog.New(1, "Watchmen", "Alan Moore",
		decimal.RequireFromString("19.99"), "Superhero", 1986)
	require.NoError(t, err)

	// Valid new title plus an out-of-range year: the whole update must
	// fail without the title change leaking into the shared item.
	opts := &ComicOptions{Title: "Watchmen DX", Year: 2990}
	changed := func(name string) bool { return name == "title" || name == "year" }

	err = comicMutator(opts, changed)(item)
	require.Error(t, err)
	assert.Equal(t, "Watchmen", item.Title)
	assert.Equal(t, 1986, item.Year)

	// The same staged path applies cleanly when everything validates.
	opts = &ComicOptions{Title: "Watchmen DX", Year: 1987}
	require.NoError(t, comicMutator(opts, changed)(item))
	assert.Equal(t, "Watchmen DX", item.Title)
	assert.Equal(t, 1987, item.Year)
}

func TestComicRemove(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	_, err := runCommand(t, dir, "comic", "remove", "Maus")
	require.NoError(t, err)

	out, err := runCommand(t, dir, "comic", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Maus")
	assert.Contains(t, out, "Watchmen")
}

func TestComicList_JSON(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	out, err := runCommand(t, dir, "--format", "json", "comic", "list")
	require.NoError(t, err)

	var resp struct {
		Status string     `json:"status"`
		Data   []comicRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Watchmen", resp.Data[0].Title)
	assert.Equal(t, "19.99", resp.Data[0].Price)
	assert.Equal(t, 12, resp.Data[0].Stock)
}
