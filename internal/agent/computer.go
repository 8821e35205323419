// internal/agent/computer.go
//
// Computer player.
// Picks a random "Computer_<n>" name and a random secret word of 6 to 12
// letters from the word list. It only ever sets words.

package agent

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

// NamePrefix starts every computer player's name.
const NamePrefix = "Computer_"

// WordSource returns candidate words whose length is in [lo, hi).
type WordSource interface {
	Candidates(lo, hi int) []string
}

// Computer picks its name and secret word at random. It cannot guess.
type Computer struct {
	Words WordSource
	// Intn returns a uniform int in [0, n). Defaults to crypto/rand.
	Intn func(n int) int
	// Wait runs before each choice, e.g. a console countdown. Optional.
	Wait func(ctx context.Context, message string) error
}

func (c Computer) PlayerName(ctx context.Context, _ *game.Player) (string, error) {
	if err := c.wait(ctx, "Computer choosing name"); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", NamePrefix, c.intn(1000)), nil
}

// ChooseSecretWord draws uniformly from the words the source allows a
// computer setter to use.
func (c Computer) ChooseSecretWord(ctx context.Context, p *game.Player) (string, error) {
	if err := c.wait(ctx, p.Name+" setting up word"); err != nil {
		return "", err
	}
	candidates := c.Words.Candidates(game.ComputerWordMin, game.ComputerWordMax)
	if len(candidates) == 0 {
		return "", fmt.Errorf("no words of %d-%d letters: %w", game.ComputerWordMin, game.ComputerWordMax-1, words.ErrEmpty)
	}
	w := candidates[c.intn(len(candidates))]
	log.Debug().Str("player", p.Name).Int("candidates", len(candidates)).Msg("computer chose a word")
	return w, nil
}

func (Computer) SubmitGuess(context.Context, *game.Player, game.Board) (game.Guess, error) {
	return game.Guess{}, fmt.Errorf("computer guesser: %w", game.ErrUnsupported)
}

func (c Computer) wait(ctx context.Context, message string) error {
	if c.Wait == nil {
		return ctx.Err()
	}
	return c.Wait(ctx, message)
}

func (c Computer) intn(n int) int {
	if c.Intn != nil {
		return c.Intn(n)
	}
	return cryptoIntn(n)
}

// cryptoIntn returns a uniform int in [0, n) from crypto/rand.
func cryptoIntn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return int(nBig.Int64())
}
