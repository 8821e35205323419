// internal/session/session.go
//
// One run of the game from the terminal.
// Responsibilities:
//   - Offer a new game or one loaded from the store.
//   - Ask who sets the word and wire human/computer agents to the game.
//   - Loop rounds until the guesser quits or declines another round.
//   - Save on request mid-round and offer a save before exiting.
//
// Load failures are reported and fall back to a new game. Save failures
// are reported and play continues. Only closed input or a cancelled
// context end the run with an error.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/agent"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/save"
	"github.com/robalobadob/hangman/internal/store"
)

const intro = `Welcome to hangman!
One player, the setter, picks a secret word and the other, the guesser,
finds it one letter at a time. The setter can be a human (any word of
5 to 12 characters) or the computer (a random word from its list).
The guesser is always human and loses once the figure is complete,
after 7 wrong tries. The winner of each round gains a point and points
carry over from round to round, and across saves.
While guessing, type 'save' to save the game or 'quit' to stop playing.
You will be offered a chance to save before the program exits.

                    Let's begin`

// Session owns the terminal, the store and the word source for one run.
type Session struct {
	ui    *console.Console
	store store.Store
	words agent.WordSource
	// Intn overrides the computer's random source. Optional.
	Intn func(n int) int
}

func New(ui *console.Console, st store.Store, ws agent.WordSource) *Session {
	return &Session{ui: ui, store: st, words: ws}
}

// Run plays until the user is done.
func (s *Session) Run(ctx context.Context) error {
	s.ui.Println(intro)

	g, fresh, err := s.open(ctx)
	if err != nil {
		return err
	}
	if err := g.Start(ctx); err != nil {
		return err
	}
	if fresh {
		for _, p := range []*game.Player{g.Setter(), g.Guesser()} {
			s.ui.Printf("\nWelcome to hangman %s, you will be %s\n\n", p.Name, p.Role)
		}
	}

	for {
		out, err := g.PlayRound(ctx)
		if err != nil {
			return err
		}
		if out.Result == game.ResultQuit {
			break
		}
		again, err := s.ui.Confirm("Want to play again?")
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	ok, err := s.ui.Confirm("Save current game?")
	if err != nil {
		return err
	}
	if ok {
		if err := s.SaveGame(ctx, g); err != nil {
			return err
		}
	}
	s.ui.Println("\nGoodbye!!!")
	return nil
}

func (s *Session) options() game.Options {
	return game.Options{
		Human:    agent.Human{UI: s.ui},
		Computer: agent.Computer{Words: s.words, Intn: s.Intn, Wait: s.ui.Countdown},
		Roles:    s,
		Renderer: s.ui,
		Saver:    s,
	}
}

// open returns a new game, or a loaded one when the user asks for it and
// it can be read. fresh is true for a new game.
func (s *Session) open(ctx context.Context) (g *game.Game, fresh bool, err error) {
	i, err := s.ui.Options([]string{"new game", "load existing game"}, "Please choose one of the following options")
	if err != nil {
		return nil, false, err
	}
	if i == 0 {
		return game.New(s.options()), true, nil
	}

	names, err := s.store.List(ctx)
	if err != nil {
		return s.loadFailed(err, "")
	}
	if len(names) == 0 {
		s.ui.Println("There are no saved games, a new game has been started")
		return game.New(s.options()), true, nil
	}
	j, err := s.ui.Options(names, "Select a file to load")
	if err != nil {
		return nil, false, err
	}
	name := names[j]

	data, err := s.store.Load(ctx, name)
	if err != nil {
		return s.loadFailed(err, name)
	}
	g, err = save.Deserialize(data, s.options())
	if err != nil {
		return s.loadFailed(err, name)
	}
	log.Debug().Str("save", name).Str("state", g.State().String()).Msg("game loaded")
	s.ui.Println("Resuming from previous session")
	return g, false, nil
}

func (s *Session) loadFailed(err error, name string) (*game.Game, bool, error) {
	log.Warn().Err(err).Str("save", name).Msg("load failed")
	s.ui.Printf("Could not load %q: %v\nA new game has been started instead\n", name, err)
	return game.New(s.options()), true, nil
}

// ChooseSetterKind asks who sets the word.
func (s *Session) ChooseSetterKind(context.Context) (game.Kind, error) {
	kinds := []game.Kind{game.KindHuman, game.KindComputer}
	i, err := s.ui.Options([]string{string(game.KindHuman), string(game.KindComputer)}, "What should be the setter?")
	if err != nil {
		return "", err
	}
	return kinds[i], nil
}

// SaveGame asks for a file name, resolves collisions and writes g.
func (s *Session) SaveGame(ctx context.Context, g *game.Game) error {
	data, err := save.Serialize(g)
	if err != nil {
		return err
	}

	s.ui.Prompt("Choose a file name")
	var name string
	for {
		line, err := s.ui.ReadLine()
		if err != nil {
			return err
		}
		name, err = save.CleanName(line)
		if err == nil {
			break
		}
		s.ui.Error("a file name cannot be empty, start with '.' or contain slashes")
	}

	final, err := save.ResolveName(ctx, s.store, name, s.confirmOverwrite)
	if err != nil {
		return s.saveFailed(err, name)
	}
	if err := s.store.Save(ctx, final, data); err != nil {
		return s.saveFailed(err, final)
	}
	log.Info().Str("save", final).Msg("game saved")
	s.ui.Printf("%q has been saved\n", final)
	return nil
}

func (s *Session) confirmOverwrite(name, alt string) (bool, error) {
	i, err := s.ui.Options(
		[]string{"Yes", fmt.Sprintf("Create new file named as '%s'", alt)},
		"This file already exists, want to overwrite it?",
	)
	return i == 0, err
}

// saveFailed reports a storage problem and lets play go on. Input and
// context errors still end the run.
func (s *Session) saveFailed(err error, name string) error {
	if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
		return err
	}
	log.Error().Err(err).Str("save", name).Msg("save failed")
	s.ui.Printf("Could not save %q: %v\n", name, err)
	return nil
}
