// internal/words/words.go
//
// Word list management for the computer setter.
//
// Responsibilities:
//   - Load a word list from a file, or fall back to the embedded default.
//   - Normalize entries (trim, lower-case, letters only).
//   - Answer range queries: every word whose length is in [min, max).
//
// File format:
//   One word per line. Blank lines and lines starting with '#' are skipped.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
)

var ErrEmpty = errors.New("words: list is empty")

// List is an immutable set of candidate secret words.
type List struct {
	words []string
}

// Load reads the word list at path. An empty path selects the embedded list.
func Load(path string) (*List, error) {
	if path == "" {
		l, err := Parse(strings.NewReader(assets.Words))
		if err != nil {
			return nil, fmt.Errorf("embedded words: %w", err)
		}
		log.Debug().Int("words", l.Len()).Msg("loaded embedded word list")
		return l, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("words", l.Len()).Msg("loaded word list")
	return l, nil
}

// Parse reads one word per line from r.
func Parse(r io.Reader) (*List, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") || !isLetters(w) {
			continue
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: out}, nil
}

// New builds a list from already normalized words.
func New(ws ...string) *List {
	return &List{words: append([]string(nil), ws...)}
}

// Candidates returns the words whose rune length is in [lo, hi).
func (l *List) Candidates(lo, hi int) []string {
	var out []string
	for _, w := range l.words {
		if n := utf8.RuneCountInString(w); n >= lo && n < hi {
			out = append(out, w)
		}
	}
	return out
}

// Len reports how many words were loaded.
func (l *List) Len() int { return len(l.words) }

// isLetters reports whether s consists only of letters.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
