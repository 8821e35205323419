// internal/save/record.go
//
// Persisted form of a game.
// Responsibilities:
//   - Serialize a game into its JSON record (stable byte output).
//   - Decode and validate a record back into a game.Snapshot.
//
// Record layout:
//   { "type": "Game", "setter": Player, "guesser": Player,
//     "board": { "columns": n }, "guessed_word": [ "a" | null, ... ] }
//
// Only the setter's record carries "correct_word". The guesser always
// comes back as a human, whatever the record says.

package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/game"
)

// RecordType is the discriminator stored in every record.
const RecordType = "Game"

var ErrMalformedRecord = errors.New("malformed record")

// Record is the document written for one save.
type Record struct {
	Type        string        `json:"type"`
	Setter      *PlayerRecord `json:"setter"`
	Guesser     *PlayerRecord `json:"guesser"`
	Board       *BoardRecord  `json:"board"`
	GuessedWord []*string     `json:"guessed_word"`
}

// PlayerRecord is one player. Score and WrongTries are pointers so a
// missing field can be told apart from zero.
type PlayerRecord struct {
	PlayerName    string       `json:"player_name"`
	PlayerType    game.Kind    `json:"player_type"`
	PlayerMode    game.Role    `json:"player_mode"`
	Score         *int         `json:"score"`
	WrongTries    *int         `json:"wrong_tries"`
	CorrectWord   []SlotRecord `json:"correct_word"`
	ChosenLetters []string     `json:"chosen_letters"`
}

type SlotRecord struct {
	CorrectLetter string `json:"correct_letter"`
	Found         bool   `json:"found"`
}

type BoardRecord struct {
	Columns *int `json:"columns"`
}

// Serialize encodes g. Serializing an unchanged game twice gives the same bytes.
func Serialize(g *game.Game) ([]byte, error) {
	s := g.Snapshot()
	if s.Setter == nil || s.Guesser == nil {
		return nil, fmt.Errorf("serialize: %w", game.ErrNotReady)
	}
	columns := s.Columns
	rec := Record{
		Type:        RecordType,
		Setter:      playerRecord(s.Setter, true),
		Guesser:     playerRecord(s.Guesser, false),
		Board:       &BoardRecord{Columns: &columns},
		GuessedWord: make([]*string, len(s.Revealed)),
	}
	for i, cell := range s.Revealed {
		if cell != "" {
			c := cell
			rec.GuessedWord[i] = &c
		}
	}
	return json.MarshalIndent(rec, "", "  ")
}

func playerRecord(p *game.Player, withWord bool) *PlayerRecord {
	score, tries := p.Score, p.WrongTries
	pr := &PlayerRecord{
		PlayerName:    p.Name,
		PlayerType:    p.Kind,
		PlayerMode:    p.Role,
		Score:         &score,
		WrongTries:    &tries,
		ChosenLetters: append([]string{}, p.ChosenLetters...),
	}
	if withWord && p.SecretWord != nil {
		pr.CorrectWord = make([]SlotRecord, len(p.SecretWord))
		for i, s := range p.SecretWord {
			pr.CorrectWord[i] = SlotRecord{CorrectLetter: s.Letter, Found: s.Found}
		}
	}
	return pr
}

// Deserialize decodes data and resumes a game wired to opts.
func Deserialize(data []byte, opts game.Options) (*game.Game, error) {
	s, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return game.Resume(opts, s), nil
}

// Decode parses and validates a record.
func Decode(data []byte) (game.Snapshot, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if rec.Type != RecordType {
		return game.Snapshot{}, malformed("type %q", rec.Type)
	}
	if rec.Board == nil || rec.Board.Columns == nil || *rec.Board.Columns < 0 {
		return game.Snapshot{}, malformed("missing board columns")
	}
	columns := *rec.Board.Columns

	setter, err := decodePlayer(rec.Setter, game.RoleSetter)
	if err != nil {
		return game.Snapshot{}, err
	}
	guesser, err := decodePlayer(rec.Guesser, game.RoleGuesser)
	if err != nil {
		return game.Snapshot{}, err
	}
	guesser.Kind = game.KindHuman
	guesser.SecretWord = nil

	revealed, err := decodeRevealed(rec.GuessedWord, columns)
	if err != nil {
		return game.Snapshot{}, err
	}
	if setter.SecretWord != nil {
		if len(setter.SecretWord) != columns || len(revealed) != columns {
			return game.Snapshot{}, malformed("word has %d letters, board has %d columns", len(setter.SecretWord), columns)
		}
		for i, slot := range setter.SecretWord {
			if slot.Found != (revealed[i] != "") || (slot.Found && revealed[i] != slot.Letter) {
				return game.Snapshot{}, malformed("guessed word disagrees with slot %d", i)
			}
		}
	}

	return game.Snapshot{Setter: setter, Guesser: guesser, Columns: columns, Revealed: revealed}, nil
}

func decodePlayer(pr *PlayerRecord, role game.Role) (*game.Player, error) {
	if pr == nil {
		return nil, malformed("missing %s", role)
	}
	if !pr.PlayerType.Valid() {
		return nil, malformed("%s player_type %q", role, pr.PlayerType)
	}
	if pr.Score == nil || *pr.Score < 0 {
		return nil, malformed("%s score", role)
	}
	if pr.WrongTries == nil || *pr.WrongTries < 0 || *pr.WrongTries > game.MaxWrongTries {
		return nil, malformed("%s wrong_tries", role)
	}

	p := game.NewPlayer(pr.PlayerType, role)
	p.Name = pr.PlayerName
	p.Score = *pr.Score
	p.WrongTries = *pr.WrongTries
	if pr.ChosenLetters != nil {
		p.ChosenLetters = append([]string{}, pr.ChosenLetters...)
	}
	if pr.CorrectWord != nil {
		p.SecretWord = make([]game.Slot, len(pr.CorrectWord))
		for i, s := range pr.CorrectWord {
			if utf8.RuneCountInString(s.CorrectLetter) != 1 {
				return nil, malformed("%s correct_word[%d] %q", role, i, s.CorrectLetter)
			}
			p.SecretWord[i] = game.Slot{Letter: s.CorrectLetter, Found: s.Found}
		}
	}
	return p, nil
}

// decodeRevealed accepts an empty buffer (between rounds) or one cell per column.
func decodeRevealed(cells []*string, columns int) ([]string, error) {
	if len(cells) == 0 {
		return nil, nil
	}
	if len(cells) != columns {
		return nil, malformed("guessed_word has %d cells, board has %d columns", len(cells), columns)
	}
	out := make([]string, len(cells))
	for i, c := range cells {
		if c == nil {
			continue
		}
		if utf8.RuneCountInString(*c) != 1 {
			return nil, malformed("guessed_word[%d] %q", i, *c)
		}
		out[i] = *c
	}
	return out, nil
}

func malformed(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, a...))
}
