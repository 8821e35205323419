package save

import (
	"context"
	"errors"
	"testing"
)

type fakeCatalog []string

func (c fakeCatalog) Exists(_ context.Context, name string) (bool, error) {
	for _, n := range c {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (c fakeCatalog) List(context.Context) ([]string, error) { return c, nil }

func TestCleanName(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "slot1", want: "slot1"},
		{raw: "  my game ", want: "my_game"},
		{raw: "", wantErr: true},
		{raw: "   ", wantErr: true},
		{raw: "../etc/passwd", wantErr: true},
		{raw: `a\b`, wantErr: true},
		{raw: ".hidden", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := CleanName(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Fatalf("expected ErrInvalidName, got %q %v", got, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("expected %q, got %q (%v)", tt.want, got, err)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	never := func(string, string) (bool, error) {
		return false, errors.New("confirm should not be asked")
	}
	decline := func(string, string) (bool, error) { return false, nil }
	accept := func(string, string) (bool, error) { return true, nil }

	tests := []struct {
		name    string
		catalog fakeCatalog
		input   string
		confirm ConfirmOverwrite
		want    string
	}{
		{name: "new name", catalog: fakeCatalog{"a", "b"}, input: "slot1", confirm: never, want: "slot1"},
		{name: "declined with three saves", catalog: fakeCatalog{"slot1", "a", "b"}, input: "slot1", confirm: decline, want: "slot1[3]"},
		{name: "overwrite accepted", catalog: fakeCatalog{"slot1", "a", "b"}, input: "slot1", confirm: accept, want: "slot1"},
		{name: "alternate already taken", catalog: fakeCatalog{"slot1", "slot1[2]"}, input: "slot1", confirm: decline, want: "slot1[3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveName(context.Background(), tt.catalog, tt.input, tt.confirm)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolveNameShowsAlternate(t *testing.T) {
	var shown string
	_, err := ResolveName(context.Background(), fakeCatalog{"x"}, "x", func(_, alt string) (bool, error) {
		shown = alt
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if shown != "x[1]" {
		t.Errorf("expected x[1], got %q", shown)
	}
}
