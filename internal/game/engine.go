// internal/game/engine.go
//
// Core game engine for a hangman session.
// Responsibilities:
//   - Set up players for a new game or adopt players from a saved one.
//   - Run rounds: secret word selection, guess evaluation, win/loss.
//   - Hand control to the Saver on a Save guess and stop on Quit.
//
// Notes:
//   - The guesser's WrongTries/ChosenLetters drive the board.
//   - Secret word and revealed buffer are cleared when a round finishes,
//     so a game saved between rounds resumes on a fresh word.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Options wires a Game to its collaborators. Any of them may be nil; a
// missing agent or role chooser fails with ErrUnsupported when needed.
type Options struct {
	Human    Agent
	Computer Agent
	Roles    RoleChooser
	Renderer Renderer
	Saver    Saver
}

// Snapshot is the part of a Game that survives a save.
type Snapshot struct {
	Setter   *Player
	Guesser  *Player
	Columns  int
	Revealed []string
}

// Game is the hangman state machine.
type Game struct {
	opts     Options
	state    State
	setter   *Player
	guesser  *Player
	columns  int
	revealed []string
}

// New constructs a game that still needs its players.
func New(opts Options) *Game {
	return &Game{opts: opts.withDefaults(), state: AwaitingSetup}
}

// Resume rebuilds a game from a snapshot. A snapshot without a setter is
// treated as a new game. The guesser is always human. The game works on
// copies of the snapshot's players.
func Resume(opts Options, s Snapshot) *Game {
	g := New(opts)
	if s.Setter == nil {
		return g
	}
	g.setter = s.Setter.clone()
	g.guesser = s.Guesser.clone()
	if g.guesser == nil {
		g.guesser = NewPlayer(KindHuman, RoleGuesser)
	}
	g.guesser.Kind = KindHuman
	g.columns = s.Columns
	g.revealed = append([]string(nil), s.Revealed...)

	g.state = RoundComplete
	if len(g.setter.SecretWord) > 0 && hasEmpty(g.revealed) {
		g.state = InProgress
	}
	return g
}

// Start assigns players to a new game, or redraws the board of a resumed
// round that already has wrong tries on it.
func (g *Game) Start(ctx context.Context) error {
	if g.state == Terminated {
		return fmt.Errorf("start: %w", ErrNotReady)
	}
	if g.state != AwaitingSetup {
		if g.guesser.WrongTries > 0 {
			g.opts.Renderer.RenderBoard(g.Board())
		}
		return nil
	}

	kind, err := g.opts.Roles.ChooseSetterKind(ctx)
	if err != nil {
		return err
	}
	if !kind.Valid() {
		return fmt.Errorf("setter kind %q: %w", kind, ErrUnsupported)
	}
	setter := NewPlayer(kind, RoleSetter)
	guesser := NewPlayer(KindHuman, RoleGuesser)
	for _, p := range []*Player{setter, guesser} {
		name, err := g.agentFor(p).PlayerName(ctx, p)
		if err != nil {
			return err
		}
		p.SetName(name)
	}
	g.setter, g.guesser = setter, guesser
	g.state = RoundComplete
	log.Debug().Str("setter", setter.Name).Str("guesser", guesser.Name).Msg("players ready")
	return nil
}

// PlayRound plays until the round is decided or the guesser quits.
// A Save guess calls the Saver and carries on with the same state.
func (g *Game) PlayRound(ctx context.Context) (Outcome, error) {
	switch g.state {
	case AwaitingSetup, Terminated:
		return Outcome{}, fmt.Errorf("play round in state %s: %w", g.state, ErrNotReady)
	case RoundComplete:
		if err := g.beginRound(ctx); err != nil {
			return Outcome{}, err
		}
	}

	guesser := g.agentFor(g.guesser)
	for {
		if g.guesser.WrongTries >= MaxWrongTries {
			return g.finish(ResultSetterWon), nil
		}
		if !hasEmpty(g.revealed) {
			return g.finish(ResultGuesserWon), nil
		}

		guess, err := guesser.SubmitGuess(ctx, g.guesser, g.Board())
		if err != nil {
			return Outcome{}, err
		}
		switch guess.Kind {
		case GuessQuit:
			g.state = Terminated
			log.Debug().Msg("guesser quit")
			return Outcome{Result: ResultQuit, Revealed: g.Revealed()}, nil
		case GuessSave:
			if g.opts.Saver != nil {
				if err := g.opts.Saver.SaveGame(ctx, g); err != nil {
					return Outcome{}, err
				}
			}
		default:
			if _, err := g.Evaluate(guess.Letter); err != nil {
				if errors.Is(err, ErrInvalidGuessToken) {
					log.Warn().Str("guess", guess.Letter).Msg("ignoring invalid guess")
					continue
				}
				return Outcome{}, err
			}
		}
		g.opts.Renderer.RenderBoard(g.Board())
	}
}

// Evaluate applies one letter guess. Every matching unfound slot is
// revealed; a guess that reveals nothing costs a wrong try. The letter is
// recorded in ChosenLetters either way.
func (g *Game) Evaluate(letter string) (bool, error) {
	if g.state != InProgress || g.setter == nil || len(g.setter.SecretWord) == 0 {
		return false, fmt.Errorf("evaluate: %w", ErrNotReady)
	}
	letter = strings.ToLower(letter)
	if utf8.RuneCountInString(letter) != 1 {
		return false, fmt.Errorf("%w: %q", ErrInvalidGuessToken, letter)
	}

	g.guesser.ChosenLetters = append(g.guesser.ChosenLetters, letter)
	hit := false
	for i := range g.setter.SecretWord {
		slot := &g.setter.SecretWord[i]
		if slot.Letter == letter && !slot.Found {
			slot.Found = true
			g.revealed[i] = letter
			hit = true
		}
	}
	if !hit {
		g.guesser.WrongTries++
	}
	return hit, nil
}

// beginRound asks the setter for a word and allocates the buffer.
func (g *Game) beginRound(ctx context.Context) error {
	word, err := g.agentFor(g.setter).ChooseSecretWord(ctx, g.setter)
	if err != nil {
		return err
	}
	if !ValidWordLength(g.setter.Kind, word) {
		return fmt.Errorf("%w: %q from %s setter", ErrInvalidWordLength, word, g.setter.Kind)
	}
	if HasSpace(word) {
		return fmt.Errorf("%w: %q", ErrWordHasSpace, word)
	}
	g.setter.SetSecretWord(word)
	g.setter.resetRound()
	g.guesser.resetRound()
	g.columns = len(g.setter.SecretWord)
	g.revealed = make([]string, g.columns)
	g.state = InProgress
	g.opts.Renderer.RenderPreview(g.columns)
	return nil
}

// finish scores the round and resets it for the next one.
func (g *Game) finish(result Result) Outcome {
	winner := g.guesser
	if result == ResultSetterWon {
		winner = g.setter
	}
	winner.Winner()
	out := Outcome{
		Result:   result,
		Word:     g.setter.Word(),
		Revealed: g.Revealed(),
		Winner:   winner,
	}
	g.opts.Renderer.ShowResults(out, g.setter, g.guesser)

	g.guesser.resetRound()
	g.setter.resetRound()
	g.setter.SecretWord = nil
	g.revealed = nil
	g.state = RoundComplete
	log.Debug().Str("winner", winner.Name).Str("word", out.Word).Msg("round complete")
	return out
}

func (g *Game) agentFor(p *Player) Agent {
	if p.Kind == KindComputer {
		return g.opts.Computer
	}
	return g.opts.Human
}

// Board projects the current turn for rendering.
func (g *Game) Board() Board {
	b := Board{Columns: g.columns, Revealed: g.Revealed()}
	if g.guesser != nil {
		b.WrongTries = g.guesser.WrongTries
		b.ChosenLetters = append([]string{}, g.guesser.ChosenLetters...)
	}
	return b
}

// Snapshot captures everything a save needs. The players are copies.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{Setter: g.setter.clone(), Guesser: g.guesser.clone(), Columns: g.columns, Revealed: g.Revealed()}
}

func (g *Game) State() State { return g.state }

func (g *Game) Setter() *Player { return g.setter }

func (g *Game) Guesser() *Player { return g.guesser }

func (g *Game) Columns() int { return g.columns }

// Revealed returns a copy of the revealed-word buffer.
func (g *Game) Revealed() []string { return append([]string(nil), g.revealed...) }

func hasEmpty(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			return true
		}
	}
	return false
}

func (o Options) withDefaults() Options {
	if o.Renderer == nil {
		o.Renderer = nopRenderer{}
	}
	if o.Computer == nil {
		o.Computer = unsupportedAgent{}
	}
	if o.Human == nil {
		o.Human = unsupportedAgent{}
	}
	if o.Roles == nil {
		o.Roles = unsupportedAgent{}
	}
	return o
}

type nopRenderer struct{}

func (nopRenderer) RenderPreview(int) {}

func (nopRenderer) RenderBoard(Board) {}

func (nopRenderer) ShowResults(Outcome, *Player, *Player) {}

type unsupportedAgent struct{}

func (unsupportedAgent) PlayerName(context.Context, *Player) (string, error) {
	return "", ErrUnsupported
}

func (unsupportedAgent) ChooseSecretWord(context.Context, *Player) (string, error) {
	return "", ErrUnsupported
}

func (unsupportedAgent) ChooseSetterKind(context.Context) (Kind, error) {
	return "", ErrUnsupported
}

func (unsupportedAgent) SubmitGuess(context.Context, *Player, Board) (Guess, error) {
	return Guess{}, ErrUnsupported
}
