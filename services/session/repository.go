package session

import "context"

// TokenRepo defines the interface for token persistence.
// It doubles as the token source for outgoing backend requests.
type TokenRepo interface {
	// Store persists the bearer token
	Store(ctx context.Context, token string) error

	// Token returns the persisted token, empty string when none is stored
	Token(ctx context.Context) (string, error)

	// Delete removes the persisted token
	Delete(ctx context.Context) error
}
