package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartwaste360/gateway/internal/utils"
	"github.com/smartwaste360/gateway/services/locator"
	"github.com/smartwaste360/gateway/services/locator/usecase"
)

// LocatorHandler handles HTTP requests for location resolution
type LocatorHandler struct {
	locatorUC locator.LocatorUC
}

// NewLocatorHandler creates a new locator HTTP handler
func NewLocatorHandler(locatorUC locator.LocatorUC) *LocatorHandler {
	return &LocatorHandler{locatorUC: locatorUC}
}

// RegisterRoutes registers location routes
func (h *LocatorHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/location", h.State)
	e.POST("/location/resolve", h.Resolve)
	e.POST("/location/saved", h.LoadSaved)
	e.POST("/location/current", h.UseCurrent)
	e.PUT("/location/custom", h.SetCustom)
	e.DELETE("/location", h.ShowAll)
}

// State returns the current resolver snapshot
func (h *LocatorHandler) State(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Location state", h.locatorUC.State())
}

// Resolve runs the saved-then-current-then-all entry sequence
func (h *LocatorHandler) Resolve(c echo.Context) error {
	state := h.locatorUC.Resolve(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Location resolved", state)
}

// LoadSaved re-reads the backend saved location
func (h *LocatorHandler) LoadSaved(c echo.Context) error {
	state := h.locatorUC.LoadSavedLocation(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Location resolved", state)
}

// UseCurrent requests a fresh position fix
func (h *LocatorHandler) UseCurrent(c echo.Context) error {
	state := h.locatorUC.UseCurrentLocation(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Location resolved", state)
}

type customLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

// SetCustom applies an explicit coordinate override
func (h *LocatorHandler) SetCustom(c echo.Context) error {
	var req customLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	state, err := h.locatorUC.SetCustomLocation(req.Latitude, req.Longitude, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Custom location set", state)
}

// ShowAll clears the geographic filter
func (h *LocatorHandler) ShowAll(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Showing all colonies", h.locatorUC.ShowAll())
}
