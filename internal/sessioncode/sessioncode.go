// Package sessioncode generates and validates the short join codes students
// type to follow a session.
package sessioncode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"kelaskata/internal/models"
)

// Alphabet excludes visually ambiguous glyphs (0/O, I/L/1) so codes survive
// being read off a classroom projector.
const Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Length of every session code.
const Length = 5

// Generate returns a random session code.
func Generate() (string, error) {
	code := make([]byte, Length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(Alphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate session code: %w", err)
		}
		code[i] = Alphabet[n.Int64()]
	}
	return string(code), nil
}

// Normalize uppercases a user-typed code and validates it against the
// alphabet. Returns models.ErrInvalidCode for anything malformed.
func Normalize(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != Length {
		return "", models.ErrInvalidCode
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(Alphabet, rune(code[i])) {
			return "", models.ErrInvalidCode
		}
	}
	return code, nil
}
