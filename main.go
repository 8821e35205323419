package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// Usage:
//
//	hangman         play in the terminal
//	hangman serve   read-only HTTP view of saved games
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	// stdout belongs to the game; logs go to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// run returns instead of exiting so the store is always closed.
	if err := run(cfg, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("hangman exited")
	}
}

func run(cfg config.Config, args []string) error {
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn().Err(err).Msg("close save store")
		}
	}()

	if len(args) > 0 && args[0] == "serve" {
		srv := httpserver.New(st)
		log.Info().Str("addr", cfg.HTTPAddr).Msg("starting save viewer")
		return srv.Start(cfg.HTTPAddr)
	}

	wl, err := words.Load(cfg.WordsFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui := console.New(os.Stdin, os.Stdout, cfg.CountdownStep)
	err = session.New(ui, st, wl).Run(ctx)
	if err != nil && (ctx.Err() != nil || errors.Is(err, console.ErrInputClosed)) {
		log.Info().Err(err).Msg("game interrupted")
		return nil
	}
	return err
}
