// Package auth provides the JWT-based session token collaborator.
//
// Tokens are HS256 JWTs signed with a key derived from the account
// identity itself: a token can only ever be verified against the account
// it was issued for, so a leaked token is useless for any other subject.
// The core stores the issued token on the account row and requires exact
// equality before signature verification, which makes every re-login
// invalidate the previous session.
package auth

import (
	"fmt"
	"time"

	"bookstore/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenLifetime bounds how long an issued session token verifies.
const DefaultTokenLifetime = 3600 * time.Second

// JWTTokenProvider issues and verifies per-account session tokens.
type JWTTokenProvider struct {
	lifetime time.Duration
}

// NewJWTTokenProvider creates a provider with the given token lifetime.
// A non-positive lifetime falls back to DefaultTokenLifetime.
func NewJWTTokenProvider(lifetime time.Duration) *JWTTokenProvider {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}

	return &JWTTokenProvider{lifetime: lifetime}
}

// Issue creates a session token for the account and terminal. The issue
// instant is embedded in the claims; Verify enforces the lifetime against
// it.
func (p *JWTTokenProvider) Issue(accountID string, terminal string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   accountID,
		"terminal":  terminal,
		"timestamp": now.Unix(),
	})

	signed, err := token.SignedString(signingKey(accountID))
	if err != nil {
		return "", errs.NewUnexpectedError("sign session token", err)
	}

	return signed, nil
}

// Verify checks the token's signature, subject and age.
func (p *JWTTokenProvider) Verify(accountID string, token string, now time.Time) error {
	parsed, err := jwt.Parse(
		token,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return signingKey(accountID), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return errs.NewUnauthorizedErrorWithCause("invalid session token", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return errs.NewUnauthorizedError("invalid session token claims")
	}

	subject, ok := claims["user_id"].(string)
	if !ok || subject != accountID {
		return errs.NewUnauthorizedError("session token subject mismatch")
	}

	issuedAt, ok := claims["timestamp"].(float64)
	if !ok {
		return errs.NewUnauthorizedError("session token has no issue time")
	}

	age := now.Sub(time.Unix(int64(issuedAt), 0))
	if age < 0 || age > p.lifetime {
		return errs.NewUnauthorizedError("session token expired")
	}

	return nil
}

func signingKey(accountID string) []byte {
	return []byte("bookstore:" + accountID)
}
