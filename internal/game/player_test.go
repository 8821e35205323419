package game

import "testing"

func TestValidWordLength(t *testing.T) {
	tests := []struct {
		kind Kind
		word string
		want bool
	}{
		{KindHuman, "cats", false},
		{KindHuman, "apple", true},
		{KindHuman, "abcdefghijkl", true},
		{KindHuman, "abcdefghijklm", false},
		{KindComputer, "apple", false},
		{KindComputer, "banana", true},
		{KindComputer, "abcdefghijkl", true},
		{KindComputer, "abcdefghijklm", false},
		{KindHuman, "éclair", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.word, func(t *testing.T) {
			if got := ValidWordLength(tt.kind, tt.word); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPlayerSetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  alice ", "Alice"},
		{"Computer_42", "Computer_42"},
		{"mary ann", "Mary ann"},
		{"BOB", "Bob"},
		{"émile", "Émile"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p := NewPlayer(KindHuman, RoleGuesser)
			p.SetName(tt.in)
			if p.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, p.Name)
			}
		})
	}
}

func TestPlayerSecretWord(t *testing.T) {
	p := NewPlayer(KindHuman, RoleSetter)
	p.SetSecretWord("Hello")
	if len(p.SecretWord) != 5 {
		t.Fatalf("expected 5 slots, got %d", len(p.SecretWord))
	}
	for _, s := range p.SecretWord {
		if s.Found {
			t.Errorf("new slot %q already found", s.Letter)
		}
	}
	if p.Word() != "hello" {
		t.Errorf("expected hello, got %q", p.Word())
	}
}

func TestPlayerWinner(t *testing.T) {
	p := NewPlayer(KindComputer, RoleSetter)
	p.Winner()
	p.Winner()
	if p.Score != 2 {
		t.Errorf("expected 2, got %d", p.Score)
	}
}
