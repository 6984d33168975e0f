package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/models"
	"github.com/smartwaste360/gateway/internal/utils"
	"github.com/smartwaste360/gateway/services/session"
)

// SessionHandler handles HTTP requests for session operations
type SessionHandler struct {
	sessionUC session.SessionUC
}

// NewSessionHandler creates a new session HTTP handler
func NewSessionHandler(sessionUC session.SessionUC) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// RegisterRoutes registers session routes
func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/session/login", h.Login)
	e.DELETE("/session", h.Logout)
	e.GET("/session", h.Status)
}

// Login proxies credentials to the backend and persists the issued token
func (h *SessionHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "email and password are required")
	}

	if err := h.sessionUC.Login(c.Request().Context(), &req); err != nil {
		logger.Warn("Login failed", logger.Err(err))
		return utils.UnauthorizedResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", nil)
}

// Logout clears the persisted token
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		logger.Error("Logout failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to clear session")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// Status reports whether a session is active and for which role
func (h *SessionHandler) Status(c echo.Context) error {
	role, err := h.sessionUC.Role(c.Request().Context())
	if err != nil {
		return utils.SuccessResponse(c, http.StatusOK, "No active session", map[string]interface{}{
			"active": false,
		})
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session active", map[string]interface{}{
		"active": true,
		"role":   role,
	})
}
