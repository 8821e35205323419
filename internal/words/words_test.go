package words

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	in := "# comment\n\n  Apple \nbanana\nice cream\nCherry7\norange\n"
	l, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"apple", "banana", "orange"}; !reflect.DeepEqual(l.words, want) {
		t.Errorf("expected %v, got %v", want, l.words)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(strings.NewReader("# nothing\n\n")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestCandidates(t *testing.T) {
	l := New("apple", "banana", "abcdefghijkl", "abcdefghijklm", "éclair")
	got := l.Candidates(6, 13)
	if want := []string{"banana", "abcdefghijkl", "éclair"}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := l.Candidates(20, 30); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestLoadEmbedded(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Candidates(6, 13)) == 0 {
		t.Error("embedded list has no computer-sized words")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("lantern\nmeadow\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 {
		t.Errorf("expected 2 words, got %d", l.Len())
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
