// Package token issues and verifies the signed host tokens that enforce the
// single-writer rule: only the controller that created a session holds its
// token, and only token holders may mutate the ledger.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer signs and verifies host tokens with an HMAC secret shared by all
// server instances.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an issuer from the configured secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// IssueHost mints a host token for the given session. The token has no
// expiry; a session's lifetime is bounded by the staleness sweep instead.
func (i *Issuer) IssueHost(sessionID int64) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatInt(sessionID, 10),
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign host token: %w", err)
	}
	return signed, nil
}

// VerifyHost checks a host token's signature and returns the session it
// grants write access to.
func (i *Issuer) VerifyHost(tokenString string) (int64, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid host token: %w", err)
	}

	sessionID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid host token subject: %w", err)
	}
	return sessionID, nil
}
