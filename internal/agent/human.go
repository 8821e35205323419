// internal/agent/human.go
//
// Human player driven from the console.
// Responsibilities:
//   - Ask for a name and a secret word, re-prompting on bad input.
//   - Read guesses; "save" and "quit" need a confirmation.

// Package agent implements the two kinds of player: a human at the
// console and the computer.
package agent

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/game"
)

// UI is the console surface a human player needs.
type UI interface {
	Prompt(message string)
	ReadLine() (string, error)
	Error(problem string)
	Confirm(message string) (bool, error)
	RenderBoard(b game.Board)
}

// Human asks a person for names, words and guesses.
type Human struct {
	UI UI
}

func (h Human) PlayerName(ctx context.Context, p *game.Player) (string, error) {
	h.UI.Prompt(fmt.Sprintf("Human (%s), please enter your name", p.Role))
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line, err := h.UI.ReadLine()
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		h.UI.Error("name cannot be empty")
	}
}

// ChooseSecretWord keeps asking until the word has an allowed length and
// no spaces.
func (h Human) ChooseSecretWord(ctx context.Context, p *game.Player) (string, error) {
	h.UI.Prompt(fmt.Sprintf("%s (setter), please enter the secret word (between %d and %d characters)",
		p.Name, game.HumanWordMin, game.HumanWordMax))
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line, err := h.UI.ReadLine()
		if err != nil {
			return "", err
		}
		word := strings.TrimSpace(line)
		switch {
		case !game.ValidWordLength(game.KindHuman, word):
			h.UI.Error(fmt.Sprintf("word must be between %d and %d characters inclusive", game.HumanWordMin, game.HumanWordMax))
		case game.HasSpace(word):
			h.UI.Error("word cannot contain spaces")
		default:
			return word, nil
		}
	}
}

// SubmitGuess reads one character, or "save"/"quit" after confirmation.
// Declining the confirmation redraws the board and asks again.
func (h Human) SubmitGuess(ctx context.Context, p *game.Player, b game.Board) (game.Guess, error) {
	prompt := fmt.Sprintf("%s, Choose a (1) character to guess the code, type 'save' to save current game and type 'quit' to exit", p.Name)
	h.UI.Prompt(prompt)
	for {
		if err := ctx.Err(); err != nil {
			return game.Guess{}, err
		}
		line, err := h.UI.ReadLine()
		if err != nil {
			return game.Guess{}, err
		}
		tok := strings.ToLower(strings.TrimSpace(line))

		g, control := controlToken(tok)
		if control {
			ok, err := h.UI.Confirm(fmt.Sprintf("Are you sure you want to %s?", tok))
			if err != nil {
				return game.Guess{}, err
			}
			if ok {
				return g, nil
			}
			h.UI.RenderBoard(b)
			h.UI.Prompt(prompt)
			continue
		}
		if utf8.RuneCountInString(tok) == 1 {
			return game.Letter(tok), nil
		}
		h.UI.Error(`only one letter, "save" or "quit" is accepted`)
	}
}

func controlToken(tok string) (game.Guess, bool) {
	switch tok {
	case "save":
		return game.Save, true
	case "quit":
		return game.Quit, true
	}
	return game.Guess{}, false
}
