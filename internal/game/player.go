// internal/game/player.go
//
// Player state shared by human and computer players.
// Responsibilities:
//   - Name normalization, secret word slots and score.
//   - Secret word rules (length per kind, no whitespace).

package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Player is the state shared by every kind of player. What differs
// between Human and Computer lives behind Agent.
type Player struct {
	Role          Role
	Kind          Kind
	Name          string
	Score         int
	WrongTries    int
	ChosenLetters []string
	SecretWord    []Slot // only set for the setter
}

// NewPlayer returns a zero-score player.
func NewPlayer(kind Kind, role Role) *Player {
	return &Player{Role: role, Kind: kind, ChosenLetters: []string{}}
}

// SetName stores name with its first letter upper-cased and the rest
// lower-cased.
func (p *Player) SetName(name string) {
	name = cases.Lower(language.Und).String(strings.TrimSpace(name))
	_, size := utf8.DecodeRuneInString(name)
	p.Name = cases.Upper(language.Und).String(name[:size]) + name[size:]
}

// SetSecretWord splits word into unfound slots, lower-cased.
func (p *Player) SetSecretWord(word string) {
	word = strings.ToLower(word)
	slots := make([]Slot, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		slots = append(slots, Slot{Letter: string(r)})
	}
	p.SecretWord = slots
}

// Word joins the secret word back into a string.
func (p *Player) Word() string {
	var b strings.Builder
	for _, s := range p.SecretWord {
		b.WriteString(s.Letter)
	}
	return b.String()
}

// clone returns a deep copy of p, or nil.
func (p *Player) clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.ChosenLetters = append([]string{}, p.ChosenLetters...)
	if p.SecretWord != nil {
		c.SecretWord = append([]Slot(nil), p.SecretWord...)
	}
	return &c
}

// Winner credits the player with a round.
func (p *Player) Winner() { p.Score++ }

func (p *Player) resetRound() {
	p.WrongTries = 0
	p.ChosenLetters = []string{}
}

// HasSpace reports whether word contains whitespace. A guess is never
// whitespace, so such a word could not be completed.
func HasSpace(word string) bool {
	return strings.IndexFunc(word, unicode.IsSpace) >= 0
}

// ValidWordLength reports whether word is an acceptable secret word for
// a setter of the given kind.
func ValidWordLength(kind Kind, word string) bool {
	n := utf8.RuneCountInString(word)
	if kind == KindComputer {
		return n >= ComputerWordMin && n < ComputerWordMax
	}
	return n >= HumanWordMin && n <= HumanWordMax
}
