package http

import (
	"context"
	"fmt"
	"time"

	"github.com/smartwaste360/gateway/internal/pkg/constants"
	httpclient "github.com/smartwaste360/gateway/internal/pkg/http"
	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// AuthClient is an HTTP client for the backend authentication endpoints
type AuthClient struct {
	client *httpclient.Client
}

// NewAuthClient creates a new auth HTTP client. Login requests go out
// unauthenticated, so no token source is attached.
func NewAuthClient(backendURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		client: httpclient.NewClient(httpclient.Config{BaseURL: backendURL, Timeout: timeout}, nil),
	}
}

// Login exchanges credentials for an access token. Collectors and citizens
// authenticate against different backend routes.
func (g *AuthClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	path := constants.PathCollectorLogin
	if req.Role == models.RoleCitizen {
		path = constants.PathCitizenLogin
	}

	var resp models.AuthResponse
	if err := g.client.PostJSON(ctx, path, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login response carried no access token")
	}
	return &resp, nil
}
