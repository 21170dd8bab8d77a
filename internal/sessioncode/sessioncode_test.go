package sessioncode

import (
	"errors"
	"strings"
	"testing"

	"kelaskata/internal/models"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(code) != Length {
			t.Fatalf("code %q has length %d, want %d", code, len(code), Length)
		}
		for _, c := range code {
			if !strings.ContainsRune(Alphabet, c) {
				t.Fatalf("code %q contains %q, not in alphabet", code, c)
			}
		}
		seen[code] = true
	}
	// 100 draws from ~24M combinations should not all collide.
	if len(seen) < 2 {
		t.Error("generator produced a single code 100 times")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"lowercase normalized", "a7k9q", "A7K9Q", false},
		{"already uppercase", "A7K9Q", "A7K9Q", false},
		{"surrounding whitespace", "  a7k9q ", "A7K9Q", false},
		{"too short", "AB12", "", true},
		{"too long", "ABCDEF", "", true},
		{"excluded glyph zero", "ABCD0", "", true},
		{"excluded glyph O", "ABCDO", "", true},
		{"excluded glyph I", "ABCDI", "", true},
		{"excluded glyph L", "ABCDL", "", true},
		{"excluded glyph one", "ABCD1", "", true},
		{"punctuation", "AB-CD", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidCode) {
					t.Fatalf("expected ErrInvalidCode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
