package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/smartwaste360/gateway/internal/pkg/jwt"
	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/models"
	"github.com/smartwaste360/gateway/services/session"
)

// SessionUCImpl implements the session.SessionUC interface
type SessionUCImpl struct {
	authGW session.AuthGW
	tokens session.TokenRepo
}

// NewSessionUC creates a new session use case
func NewSessionUC(authGW session.AuthGW, tokens session.TokenRepo) *SessionUCImpl {
	return &SessionUCImpl{
		authGW: authGW,
		tokens: tokens,
	}
}

// Login authenticates against the backend and persists the issued token
func (uc *SessionUCImpl) Login(ctx context.Context, req *models.LoginRequest) error {
	resp, err := uc.authGW.Login(ctx, req)
	if err != nil {
		return err
	}

	if err := uc.tokens.Store(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("login succeeded but token could not be persisted: %w", err)
	}

	logger.Info("Session established", logger.String("role", string(req.Role)))
	return nil
}

// Logout removes the persisted token
func (uc *SessionUCImpl) Logout(ctx context.Context) error {
	if err := uc.tokens.Delete(ctx); err != nil {
		return err
	}
	logger.Info("Session cleared")
	return nil
}

// Token returns the persisted bearer token, empty when logged out
func (uc *SessionUCImpl) Token(ctx context.Context) (string, error) {
	return uc.tokens.Token(ctx)
}

// Role reads the actor role from the persisted token's claims. The token
// is not signature-verified here; the backend remains the verifier.
func (uc *SessionUCImpl) Role(ctx context.Context) (models.Role, error) {
	token, err := uc.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", fmt.Errorf("no active session")
	}

	claims, err := jwt.ParseClaims(token)
	if err != nil {
		return "", fmt.Errorf("stored token is not parseable: %w", err)
	}
	if claims.Expired(time.Now()) {
		return "", fmt.Errorf("stored token has expired")
	}

	switch models.Role(claims.Role) {
	case models.RoleCitizen:
		return models.RoleCitizen, nil
	case models.RoleCollector:
		return models.RoleCollector, nil
	default:
		// Older backend tokens carry no role claim; collectors are the
		// primary actor for this gateway.
		return models.RoleCollector, nil
	}
}
