// Package session binds cookie tokens to authenticated user ids. The Redis
// store backs the running service; the memory store backs tests.
package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Store holds server-side session state keyed by an opaque cookie token.
type Store interface {
	// Create issues a new token for the user, valid for ttl.
	Create(ctx context.Context, userID uint64, ttl time.Duration) (string, error)
	// Get resolves a token to a user id, or ErrNotFound.
	Get(ctx context.Context, token string) (uint64, error)
	// Delete terminates a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
