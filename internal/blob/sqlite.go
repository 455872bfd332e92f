package blob

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps all blobs in a single SQLite table. It implements
// the same Store contract as FileStore, so the rest of the system is
// unaware of which backend is configured.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Read returns the lines of the named blob. A missing blob is created
// empty, matching the FileStore behavior.
func (s *SQLiteStore) Read(name string) ([]string, error) {
	var content string
	err := s.db.QueryRow(`SELECT content FROM blobs WHERE name = ?`, name).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		if _, ierr := s.db.Exec(`INSERT INTO blobs (name, content) VALUES (?, '') ON CONFLICT(name) DO NOTHING`, name); ierr != nil {
			return nil, fmt.Errorf("create blob %s: %w", name, ierr)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return splitLines(content), nil
}

// Write replaces the blob's contents with the given lines.
func (s *SQLiteStore) Write(name string, lines []string) error {
	_, err := s.db.Exec(`
		INSERT INTO blobs (name, content) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET content = excluded.content
	`, name, joinLines(lines))
	if err != nil {
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	return nil
}

// List returns the names of all blobs starting with prefix. The match
// is a plain substring comparison, not LIKE, so prefix characters
// such as '_' and '%' carry no wildcard meaning.
func (s *SQLiteStore) List(prefix string) ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM blobs WHERE substr(name, 1, length(?1)) = ?1 ORDER BY name`, prefix)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list blobs: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	return names, nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
