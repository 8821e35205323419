package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robalobadob/hangman/internal/config"
)

func TestRunClosesStoreOnError(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Store:     config.StoreSQLite,
		DBPath:    filepath.Join(dir, "hangman.db"),
		WordsFile: filepath.Join(dir, "missing.txt"),
	}
	if err := run(cfg, nil); err == nil {
		t.Fatal("expected an error for a missing word list")
	}
	// sqlite removes the WAL file when the last connection closes.
	if _, err := os.Stat(cfg.DBPath + "-wal"); !os.IsNotExist(err) {
		t.Errorf("expected the database to be closed, wal file: %v", err)
	}
}

func TestRunUnknownStore(t *testing.T) {
	if err := run(config.Config{Store: "redis"}, nil); err == nil {
		t.Error("expected an error for an unknown store")
	}
}
