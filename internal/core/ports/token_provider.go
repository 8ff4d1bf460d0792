package ports

import "time"

// TokenProvider issues and verifies session tokens. The token scheme is a
// collaborator concern: the core only stores the issued token on the
// account and compares equality plus provider verification at login-gated
// operations.
type TokenProvider interface {
	// Issue creates a session token for the account and terminal.
	Issue(accountID string, terminal string, now time.Time) (string, error)

	// Verify checks the token's signature, subject and age. Returns an
	// Unauthorized error on any mismatch or expiry.
	Verify(accountID string, token string, now time.Time) error
}
