package cli

import (
	"log/slog"

	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/auth"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/blob"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/catalog"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/config"
	"github.com/KonaTheNutTrap/Comic-Book-Store-System-Earl/internal/inventory"
)

// storeEnv bundles the stores a command operates on. Every command
// opens its own environment, works on it, and closes it on return.
type storeEnv struct {
	cfg    config.Config
	blobs  blob.Store
	comics *catalog.Store
	stocks *inventory.Store
	auth   *auth.Authenticator

	closeFn func() error
}

// openStore loads the config and opens the configured blob backend
// plus the stores on top of it.
func openStore(opts *RootOptions) (*storeEnv, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	env := &storeEnv{cfg: cfg}
	switch cfg.Backend {
	case config.BackendSQLite:
		st, err := blob.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open database", err)
		}
		env.blobs = st
		env.closeFn = st.Close
	default:
		st, err := blob.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open data directory", err)
		}
		env.blobs = st
	}

	slog.Debug("store opened", "backend", cfg.Backend)

	env.comics = catalog.NewStore(env.blobs)
	env.stocks = inventory.NewStore(env.blobs)
	env.auth = auth.New(env.blobs, cfg.CredentialsBlob)
	return env, nil
}

// Close releases the blob backend, if it holds resources.
func (e *storeEnv) Close() error {
	if e.closeFn == nil {
		return nil
	}
	return e.closeFn()
}

// requireAdmin checks the global --user/--password pair against the
// stored credentials. A store with no credentials configured yet is
// open, so a fresh installation can be set up.
func requireAdmin(opts *RootOptions, env *storeEnv) error {
	if !env.auth.Configured() {
		return nil
	}
	if env.auth.Validate(opts.User, opts.Password) {
		return nil
	}
	return NewExitError(ExitCommandError, "admin authentication failed (use --user and --password)")
}
