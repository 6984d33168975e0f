package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartwaste360/gateway/internal/utils"
	"github.com/smartwaste360/gateway/services/colony"
	"github.com/smartwaste360/gateway/services/colony/usecase"
)

// ColonyHandler handles HTTP requests for colony listings
type ColonyHandler struct {
	colonyUC colony.ColonyUC
}

// NewColonyHandler creates a new colony HTTP handler
func NewColonyHandler(colonyUC colony.ColonyUC) *ColonyHandler {
	return &ColonyHandler{colonyUC: colonyUC}
}

// RegisterRoutes registers colony routes
func (h *ColonyHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/colonies", h.List)
	e.GET("/collection-points", h.CollectionPoints)
}

// List returns the colony list for the current effective location.
// Passing refresh=true re-issues the backend fetch even when the
// resolver has not transitioned.
func (h *ColonyHandler) List(c echo.Context) error {
	force := c.QueryParam("refresh") == "true"
	list := h.colonyUC.Refresh(c.Request().Context(), force)
	return utils.SuccessResponse(c, http.StatusOK, "Colonies", list)
}

// CollectionPoints returns drop-off facilities near the effective location
func (h *ColonyHandler) CollectionPoints(c echo.Context) error {
	wasteTypes := c.QueryParams()["waste_types"]

	points, err := h.colonyUC.CollectionPoints(c.Request().Context(), wasteTypes)
	if err != nil {
		if errors.Is(err, usecase.ErrLocationRequired) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.BadGatewayResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Collection points", points)
}
