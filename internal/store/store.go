// internal/store/store.go
//
// Save locations for serialized games.
// A save is an opaque record (the JSON produced by package save) keyed
// by a user-chosen name. Backends:
//   - File:   one <name>.json per save in a directory (default).
//   - SQLite: one row per save in a single database file.
//   - Memory: process-local map, used by tests.

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/hangman/internal/config"
)

var ErrNotFound = errors.New("save not found")

// Store persists save records by name.
type Store interface {
	// Save creates or overwrites the record stored under name.
	Save(ctx context.Context, name string, record []byte) error

	// Load returns the record stored under name, or ErrNotFound.
	Load(ctx context.Context, name string) ([]byte, error)

	// Exists reports whether name has a record.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns every saved name in lexical order.
	List(ctx context.Context) ([]string, error)

	Close() error
}

// Open returns the backend selected by cfg.
func Open(cfg config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		return NewFile(cfg.SaveDir), nil
	case config.StoreSQLite:
		return OpenSQLite(cfg.DBPath)
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("store: invalid name %q", name)
	}
	return nil
}
