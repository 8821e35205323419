// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Role/Kind: which side a player is on and who controls it.
//   - Slot: one letter of the secret word and whether it was found.
//   - Guess: a letter or one of the Save/Quit control signals.
//   - Board: render-only projection of the game.
//   - State/Outcome: lifecycle of a game and the result of a round.

package game

import (
	"context"
	"errors"
)

// MaxWrongTries ends a round in favour of the setter.
const MaxWrongTries = 7

// Secret word length bounds. Human words are inclusive on both ends,
// computer words exclude the upper bound.
const (
	HumanWordMin    = 5
	HumanWordMax    = 12
	ComputerWordMin = 6
	ComputerWordMax = 13
)

var (
	ErrInvalidWordLength = errors.New("invalid word length")
	ErrWordHasSpace      = errors.New("secret word contains whitespace")
	ErrInvalidGuessToken = errors.New("invalid guess token")
	ErrUnsupported       = errors.New("not supported")
	ErrNotReady          = errors.New("game not ready")
)

// Role is the side a player takes in a round.
type Role string

const (
	RoleSetter  Role = "setter"
	RoleGuesser Role = "guesser"
)

// Kind says who controls a player.
type Kind string

const (
	KindHuman    Kind = "Human"
	KindComputer Kind = "Computer"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k == KindHuman || k == KindComputer }

// Slot is a single letter of the secret word.
type Slot struct {
	Letter string
	Found  bool
}

// GuessKind discriminates the Guess variants.
type GuessKind int

const (
	GuessLetter GuessKind = iota
	GuessSave
	GuessQuit
)

// Guess is what the guesser hands back each turn.
type Guess struct {
	Kind   GuessKind
	Letter string
}

// Letter wraps a single-character guess.
func Letter(s string) Guess { return Guess{Kind: GuessLetter, Letter: s} }

var (
	Save = Guess{Kind: GuessSave}
	Quit = Guess{Kind: GuessQuit}
)

// Board holds what a renderer needs to draw the current turn.
// Revealed uses "" for cells not guessed yet.
type Board struct {
	Columns       int
	WrongTries    int
	ChosenLetters []string
	Revealed      []string
}

// State is the lifecycle position of a Game.
type State int

const (
	AwaitingSetup State = iota
	InProgress
	RoundComplete
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingSetup:
		return "awaiting_setup"
	case InProgress:
		return "in_progress"
	case RoundComplete:
		return "round_complete"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Result is how a call to PlayRound ended.
type Result int

const (
	ResultSetterWon Result = iota
	ResultGuesserWon
	ResultQuit
)

// Outcome reports a finished (or abandoned) round.
type Outcome struct {
	Result   Result
	Word     string   // secret word, empty on quit
	Revealed []string // buffer at the moment the round ended
	Winner   *Player  // nil on quit
}

// Agent obtains names, words and guesses for a player. Human and
// Computer players differ only here.
type Agent interface {
	PlayerName(ctx context.Context, p *Player) (string, error)
	ChooseSecretWord(ctx context.Context, p *Player) (string, error)
	SubmitGuess(ctx context.Context, p *Player, b Board) (Guess, error)
}

// RoleChooser decides who sets the word for a new game.
type RoleChooser interface {
	ChooseSetterKind(ctx context.Context) (Kind, error)
}

// Renderer draws the game. It never mutates it.
type Renderer interface {
	RenderPreview(columns int)
	RenderBoard(b Board)
	ShowResults(o Outcome, setter, guesser *Player)
}

// Saver persists a game when the guesser asks for it mid-round.
type Saver interface {
	SaveGame(ctx context.Context, g *Game) error
}
