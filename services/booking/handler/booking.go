package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smartwaste360/gateway/internal/utils"
	"github.com/smartwaste360/gateway/services/booking"
	"github.com/smartwaste360/gateway/services/booking/usecase"
)

// BookingHandler handles HTTP requests for the route selection workflow
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// RegisterRoutes registers booking routes
func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/scheduler", h.State)
	e.POST("/scheduler/suggestions", h.LoadSuggestions)
	e.PUT("/scheduler/route/:id", h.SelectRoute)
	e.PUT("/scheduler/date", h.SetDate)
	e.PUT("/scheduler/slot", h.SetTimeSlot)
	e.POST("/scheduler/commit", h.Commit)
}

// State returns the current workflow snapshot
func (h *BookingHandler) State(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Scheduler state", h.bookingUC.State())
}

// LoadSuggestions fetches route suggestions from the backend
func (h *BookingHandler) LoadSuggestions(c echo.Context) error {
	state := h.bookingUC.LoadSuggestions(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Route suggestions", state)
}

// SelectRoute switches the selected route
func (h *BookingHandler) SelectRoute(c echo.Context) error {
	routeID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "route id must be numeric")
	}

	state, err := h.bookingUC.SelectRoute(routeID)
	if err != nil {
		if errors.Is(err, usecase.ErrRouteNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route selected", state)
}

type setDateRequest struct {
	Date string `json:"date"`
}

// SetDate stores the booking date and refreshes its time slots
func (h *BookingHandler) SetDate(c echo.Context) error {
	var req setDateRequest
	if err := c.Bind(&req); err != nil || req.Date == "" {
		return utils.BadRequestResponse(c, "date is required")
	}
	state := h.bookingUC.SetDate(c.Request().Context(), req.Date)
	return utils.SuccessResponse(c, http.StatusOK, "Booking date set", state)
}

type setSlotRequest struct {
	Slot string `json:"slot"`
}

// SetTimeSlot stores the chosen pickup window
func (h *BookingHandler) SetTimeSlot(c echo.Context) error {
	var req setSlotRequest
	if err := c.Bind(&req); err != nil || req.Slot == "" {
		return utils.BadRequestResponse(c, "slot is required")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Time slot set", h.bookingUC.SetTimeSlot(req.Slot))
}

// Commit schedules the selected route as one batch
func (h *BookingHandler) Commit(c echo.Context) error {
	state := h.bookingUC.Commit(c.Request().Context())
	if state.Err != "" {
		return utils.UnprocessableEntityResponse(c, state.Err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route scheduled", state)
}
