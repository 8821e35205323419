package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/robalobadob/hangman/internal/store"
)

const record = `{
  "type": "Game",
  "setter": {"player_name": "Alice", "player_type": "Human", "player_mode": "setter",
             "score": 2, "wrong_tries": 0, "chosen_letters": [],
             "correct_word": [{"correct_letter": "a", "found": true}, {"correct_letter": "p", "found": false},
                              {"correct_letter": "p", "found": false}, {"correct_letter": "l", "found": false},
                              {"correct_letter": "e", "found": true}]},
  "guesser": {"player_name": "Bob", "player_type": "Human", "player_mode": "guesser",
              "score": 1, "wrong_tries": 2, "correct_word": null, "chosen_letters": ["a", "x", "e", "y"]},
  "board": {"columns": 5},
  "guessed_word": ["a", null, null, null, "e"]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := store.NewMemory()
	ctx := context.Background()
	if err := st.Save(ctx, "slot1", []byte(record)); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, "broken", []byte(`not json`)); err != nil {
		t.Fatal(err)
	}
	return New(st)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/health")
	if rec.Code != http.StatusOK || rec.Body.String() != `{"ok":true}` {
		t.Errorf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestListSaves(t *testing.T) {
	rec := get(t, newTestServer(t), "/saves")
	var res listRes
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if len(res.Saves) != 2 || res.Saves[0] != "broken" || res.Saves[1] != "slot1" {
		t.Errorf("unexpected saves %v", res.Saves)
	}
}

func TestListSavesEmpty(t *testing.T) {
	rec := get(t, New(store.NewMemory()), "/saves")
	if body := strings.TrimSpace(rec.Body.String()); body != `{"saves":[]}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestGetSave(t *testing.T) {
	rec := get(t, newTestServer(t), "/saves/slot1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", rec.Code, rec.Body.String())
	}
	var res summary
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Revealed != "a _ _ _ e" || res.WrongTries != 2 || !res.InProgress {
		t.Errorf("unexpected summary %+v", res)
	}
	if res.Setter.Score != 2 || res.Guesser.Name != "Bob" {
		t.Errorf("unexpected players %+v %+v", res.Setter, res.Guesser)
	}
	if strings.Contains(rec.Body.String(), "correct_letter") {
		t.Error("summary leaked the secret word")
	}
}

func TestGetSaveErrors(t *testing.T) {
	tests := []struct {
		path string
		code int
	}{
		{"/saves/missing", http.StatusNotFound},
		{"/saves/broken", http.StatusUnprocessableEntity},
		{"/nowhere", http.StatusNotFound},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if rec := get(t, s, tt.path); rec.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, rec.Code)
			}
		})
	}
}
