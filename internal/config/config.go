// Package config loads store configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the config file.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the persistence settings for the store.
type Config struct {
	// DataDir is the directory holding data blobs when Backend is "file".
	DataDir string `yaml:"data_dir"`

	// Backend selects the blob backend: "file" or "sqlite".
	Backend string `yaml:"backend"`

	// SQLitePath is the database path when Backend is "sqlite".
	SQLitePath string `yaml:"sqlite_path"`

	// CredentialsBlob names the blob holding the admin credentials.
	CredentialsBlob string `yaml:"credentials_blob"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		DataDir:         "data",
		Backend:         BackendFile,
		SQLitePath:      "comicstore.db",
		CredentialsBlob: "admin.txt",
	}
}

// Load reads a config file, filling unset fields with defaults.
// A missing file is not an error and yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendFile, BackendSQLite)
	}
	if c.Backend == BackendFile && c.DataDir == "" {
		return errors.New("data_dir cannot be empty with the file backend")
	}
	if c.Backend == BackendSQLite && c.SQLitePath == "" {
		return errors.New("sqlite_path cannot be empty with the sqlite backend")
	}
	if c.CredentialsBlob == "" {
		return errors.New("credentials_blob cannot be empty")
	}
	return nil
}
