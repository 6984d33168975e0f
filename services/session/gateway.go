package session

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// AuthGW defines the interface for backend authentication operations
type AuthGW interface {
	// Login exchanges credentials for an access token
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
}
