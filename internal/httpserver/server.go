// internal/httpserver/server.go
//
// Read-only HTTP view of saved games (`hangman serve`).
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, logging).
//   - GET /health, GET /saves, GET /saves/{name}.
//
// Notes:
//   - Summaries never include the secret word, only what the board shows.
//   - Nothing here mutates the store.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/save"
	"github.com/robalobadob/hangman/internal/store"
)

// Server bundles the router and the save store it reads from.
type Server struct {
	r     *chi.Mux
	store store.Store
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store) *Server {
	s := &Server{r: chi.NewRouter(), store: st}

	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one log line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/saves", s.handleList)
	s.r.Get("/saves/{name}", s.handleGet)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs method, path, status and latency through zerolog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

// ------------------------------ SAVES --------------------------------------

type listRes struct {
	Saves []string `json:"saves"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list saves")
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	if names == nil {
		names = []string{}
	}
	_ = json.NewEncoder(w).Encode(listRes{Saves: names})
}

type playerSummary struct {
	Name  string    `json:"name"`
	Kind  game.Kind `json:"kind"`
	Score int       `json:"score"`
}

// summary is what a board would show for a save, plus scores.
type summary struct {
	Name          string        `json:"name"`
	Setter        playerSummary `json:"setter"`
	Guesser       playerSummary `json:"guesser"`
	Columns       int           `json:"columns"`
	WrongTries    int           `json:"wrong_tries"`
	ChosenLetters []string      `json:"chosen_letters"`
	Revealed      string        `json:"revealed"`
	InProgress    bool          `json:"in_progress"`
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, err := s.store.Load(r.Context(), name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("save", name).Msg("load save")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	snap, err := save.Decode(data)
	if err != nil {
		log.Warn().Err(err).Str("save", name).Msg("malformed save")
		writeError(w, http.StatusUnprocessableEntity, "malformed_record")
		return
	}
	_ = json.NewEncoder(w).Encode(summarize(name, snap))
}

func summarize(name string, s game.Snapshot) summary {
	g := game.Resume(game.Options{}, s)
	b := g.Board()
	cells := make([]string, len(b.Revealed))
	for i, c := range b.Revealed {
		if c == "" {
			c = "_"
		}
		cells[i] = c
	}
	return summary{
		Name:          name,
		Setter:        playerSummary{Name: s.Setter.Name, Kind: s.Setter.Kind, Score: s.Setter.Score},
		Guesser:       playerSummary{Name: s.Guesser.Name, Kind: s.Guesser.Kind, Score: s.Guesser.Score},
		Columns:       b.Columns,
		WrongTries:    b.WrongTries,
		ChosenLetters: b.ChosenLetters,
		Revealed:      strings.Join(cells, " "),
		InProgress:    g.State() == game.InProgress,
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
