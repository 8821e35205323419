package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robalobadob/hangman/internal/config"
)

// backends returns a fresh instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "hangman.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"file":   NewFile(filepath.Join(t.TempDir(), "saved_games")),
		"sqlite": sq,
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			names, err := st.List(ctx)
			if err != nil || len(names) != 0 {
				t.Fatalf("expected no saves, got %v (%v)", names, err)
			}
			if _, err := st.Load(ctx, "slot1"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			if err := st.Save(ctx, "slot1", []byte(`{"v":1}`)); err != nil {
				t.Fatal(err)
			}
			if err := st.Save(ctx, "alpha", []byte(`{"v":2}`)); err != nil {
				t.Fatal(err)
			}
			if err := st.Save(ctx, "slot1", []byte(`{"v":3}`)); err != nil {
				t.Fatal(err)
			}

			got, err := st.Load(ctx, "slot1")
			if err != nil || string(got) != `{"v":3}` {
				t.Errorf("expected overwritten record, got %s (%v)", got, err)
			}
			ok, err := st.Exists(ctx, "alpha")
			if err != nil || !ok {
				t.Errorf("expected alpha to exist (%v)", err)
			}
			ok, err = st.Exists(ctx, "beta")
			if err != nil || ok {
				t.Errorf("expected beta to be missing (%v)", err)
			}
			names, err = st.List(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if want := []string{"alpha", "slot1"}; !reflect.DeepEqual(names, want) {
				t.Errorf("expected %v, got %v", want, names)
			}
			if err := st.Save(ctx, "../escape", []byte("{}")); err == nil {
				t.Error("expected path-like names to be rejected")
			}
		})
	}
}

func TestFileCreatesDirOnFirstSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saved_games")
	f := NewFile(dir)
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("directory should not exist yet: %v", err)
	}
	if err := f.Save(context.Background(), "slot1", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "slot1.json")); err != nil {
		t.Fatalf("expected slot1.json: %v", err)
	}
}

func TestFileListIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.json", "notes.txt", "b.json"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	names, err := NewFile(dir).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestSQLiteReopenKeepsSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hangman.db")
	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Save(context.Background(), "keep", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	if err := first.Close(); err != nil {
		t.Fatal(err)
	}

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	ok, err := second.Exists(context.Background(), "keep")
	if err != nil || !ok {
		t.Errorf("expected save to survive reopen (%v)", err)
	}
}

func TestOpen(t *testing.T) {
	st, err := Open(config.Config{Store: config.StoreFile, SaveDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := st.(*File); !ok {
		t.Errorf("expected *File, got %T", st)
	}
	if _, err := Open(config.Config{Store: "redis"}); err == nil {
		t.Error("expected an error for an unknown store")
	}
}
