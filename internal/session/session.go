// Package session maps opaque tokens to authenticated identities with
// TTL-based expiry. Two directories exist: a Redis-backed one that
// survives restarts and a volatile in-memory one. Expiry is fixed or
// sliding per configuration; revocation is immediate and terminal.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
)

// ErrInvalid reports that a token does not resolve: never issued,
// expired, or revoked. Callers translate it to 401.
var ErrInvalid = errors.New("session invalid or expired")

// Identity is the snapshot stored against a token at login. Role is
// immutable after account creation, so snapshotting it is safe.
type Identity struct {
	UserID   int64           `json:"userId"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// Directory issues, resolves, and revokes session tokens.
type Directory interface {
	// Create issues a fresh token for the identity.
	Create(ctx context.Context, identity Identity) (string, error)
	// Resolve returns the identity behind a token, refreshing the TTL
	// when sliding expiry is configured. Returns ErrInvalid for tokens
	// that do not resolve.
	Resolve(ctx context.Context, token string) (*Identity, error)
	// Revoke invalidates a token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}

// Options tune directory behaviour.
type Options struct {
	TTL     time.Duration
	Sliding bool
}

func (o Options) withDefaults() Options {
	if o.TTL <= 0 {
		o.TTL = 24 * time.Hour
	}
	return o
}

// newToken returns an opaque 256-bit URL-safe token.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
