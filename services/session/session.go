package session

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// SessionUC defines the interface for session business logic
type SessionUC interface {
	// Login authenticates against the backend and persists the issued token
	Login(ctx context.Context, req *models.LoginRequest) error

	// Logout removes the persisted token
	Logout(ctx context.Context) error

	// Token returns the persisted bearer token, empty when logged out
	Token(ctx context.Context) (string, error)

	// Role reads the actor role from the persisted token's claims
	Role(ctx context.Context) (models.Role, error)
}
