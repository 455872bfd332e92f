package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSetPassword_Bootstrap(t *testing.T) {
	dir := testEnvDir(t)

	out, err := runCommand(t, dir, "admin", "set-password",
		"--new-user", "admin", "--new-password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "credentials updated")
}

func TestAdminGate_BlocksMutationsWithoutCredentials(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	_, err := runCommand(t, dir, "admin", "set-password",
		"--new-user", "admin", "--new-password", "s3cret")
	require.NoError(t, err)

	// Mutations now require credentials.
	_, err = runCommand(t, dir, "comic", "remove", "Maus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCommand(t, dir, "stock", "set", "Maus", "7")
	require.Error(t, err)

	// Reads stay open.
	out, err := runCommand(t, dir, "comic", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Maus")
}

func TestAdminGate_AllowsMutationsWithCredentials(t *testing.T) {
	dir := testEnvDir(t)
	addFixtureComics(t, dir)

	_, err := runCommand(t, dir, "admin", "set-password",
		"--new-user", "admin", "--new-password", "s3cret")
	require.NoError(t, err)

	_, err = runCommand(t, dir, "--user", "admin", "--password", "s3cret",
		"stock", "set", "Maus", "7")
	require.NoError(t, err)

	_, err = runCommand(t, dir, "--user", "admin", "--password", "wrong",
		"stock", "set", "Maus", "8")
	require.Error(t, err)
}

func TestAdminSetPassword_ChangeRequiresCurrent(t *testing.T) {
	dir := testEnvDir(t)

	_, err := runCommand(t, dir, "admin", "set-password",
		"--new-user", "admin", "--new-password", "first")
	require.NoError(t, err)

	_, err = runCommand(t, dir, "admin", "set-password",
		"--new-user", "admin", "--new-password", "second")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCommand(t, dir, "--user", "admin", "--password", "first",
		"admin", "set-password", "--new-user", "admin", "--new-password", "second")
	require.NoError(t, err)

	_, err = runCommand(t, dir, "--user", "admin", "--password", "second",
		"stock", "set", "1", "1")
	require.Error(t, err) // no comics yet, but the gate passed
	assert.Contains(t, err.Error(), "not found")
}
