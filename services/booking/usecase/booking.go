package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/models"
	"github.com/smartwaste360/gateway/services/booking"
)

// ErrRouteNotFound is returned when SelectRoute names a route that is
// not among the loaded suggestions
var ErrRouteNotFound = errors.New("route not found in suggestions")

// Validation messages surfaced when commit preconditions are unmet
const (
	msgRouteRequired = "Please select a route before scheduling"
	msgDateRequired  = "Please select a booking date"
	msgSlotRequired  = "Please select a time slot"
	msgDateInPast    = "Booking date cannot be in the past"
	msgDateInvalid   = "Booking date must be in YYYY-MM-DD format"
)

// Config bounds the route suggestion query
type Config struct {
	MaxPickups  int
	MaxRadiusKm float64
}

// BookingUCImpl implements booking.BookingUC. Commit preconditions are
// checked locally so an incomplete selection never reaches the backend;
// a rejected commit keeps the selection intact for retry.
type BookingUCImpl struct {
	mu      sync.Mutex
	state   models.SchedulerState
	sugGen  uint64
	slotGen uint64

	cfg      Config
	bookings booking.BookingGW
	now      func() time.Time
}

// NewBookingUC creates a new route selection workflow
func NewBookingUC(cfg Config, bookings booking.BookingGW) *BookingUCImpl {
	if cfg.MaxPickups == 0 {
		cfg.MaxPickups = 5
	}
	if cfg.MaxRadiusKm == 0 {
		cfg.MaxRadiusKm = 25
	}
	return &BookingUCImpl{
		cfg:      cfg,
		bookings: bookings,
		now:      time.Now,
	}
}

// LoadSuggestions fetches route suggestions and auto-selects the first
func (uc *BookingUCImpl) LoadSuggestions(ctx context.Context) models.SchedulerState {
	uc.mu.Lock()
	uc.sugGen++
	gen := uc.sugGen
	uc.state.Loading = true
	uc.state.Err = ""
	uc.mu.Unlock()

	routes, err := uc.bookings.RouteSuggestions(ctx, uc.cfg.MaxPickups, uc.cfg.MaxRadiusKm)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.sugGen {
		return uc.state
	}
	uc.state.Loading = false

	if err != nil {
		logger.Warn("Route suggestion fetch failed", logger.Err(err))
		uc.state.Suggestions = nil
		uc.state.Selected = nil
		uc.state.Err = err.Error()
		return uc.state
	}

	valid := routes[:0]
	for i := range routes {
		if verr := routes[i].Validate(); verr != nil {
			logger.Warn("Discarding malformed route suggestion", logger.Err(verr))
			continue
		}
		valid = append(valid, routes[i])
	}

	uc.state.Suggestions = valid
	if len(valid) > 0 {
		// the first suggestion is the best-ranked one
		uc.state.Selected = &valid[0]
	} else {
		uc.state.Selected = nil
	}
	return uc.state
}

// SelectRoute switches the selected route without a network call
func (uc *BookingUCImpl) SelectRoute(routeID int) (models.SchedulerState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.state.Suggestions {
		if uc.state.Suggestions[i].RouteID == routeID {
			uc.state.Selected = &uc.state.Suggestions[i]
			return uc.state, nil
		}
	}
	return uc.state, ErrRouteNotFound
}

// SetDate stores the booking date and refreshes the slots for it. A
// slot chosen for the previous date is cleared.
func (uc *BookingUCImpl) SetDate(ctx context.Context, date string) models.SchedulerState {
	uc.mu.Lock()
	uc.state.Date = date
	uc.state.TimeSlot = ""
	uc.slotGen++
	gen := uc.slotGen
	uc.mu.Unlock()

	slots, err := uc.bookings.TimeSlots(ctx, date)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.slotGen {
		return uc.state
	}
	if err != nil {
		logger.Warn("Time slot fetch failed",
			logger.String("date", date),
			logger.Err(err))
		uc.state.Slots = nil
		uc.state.Err = err.Error()
		return uc.state
	}
	uc.state.Slots = slots
	return uc.state
}

// SetTimeSlot stores the chosen slot without checking availability
func (uc *BookingUCImpl) SetTimeSlot(slot string) models.SchedulerState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.TimeSlot = slot
	return uc.state
}

// Commit schedules the selected route as one batch
func (uc *BookingUCImpl) Commit(ctx context.Context) models.SchedulerState {
	uc.mu.Lock()
	if msg := uc.validateLocked(); msg != "" {
		uc.state.Err = msg
		state := uc.state
		uc.mu.Unlock()
		return state
	}
	req := &models.RouteBatchRequest{
		Pickups:     uc.state.Selected.Pickups,
		BookingDate: uc.state.Date,
		TimeSlot:    uc.state.TimeSlot,
	}
	uc.state.Scheduling = true
	uc.state.Err = ""
	uc.state.Message = ""
	uc.mu.Unlock()

	resp, err := uc.bookings.ScheduleRoute(ctx, req)

	uc.mu.Lock()
	uc.state.Scheduling = false
	if err != nil {
		// the server's message verbatim, selection kept for retry
		uc.state.Err = err.Error()
		state := uc.state
		uc.mu.Unlock()
		return state
	}

	logger.Info("Route batch scheduled",
		logger.String("date", req.BookingDate),
		logger.String("slot", req.TimeSlot),
		logger.Int("bookings", len(resp.BookingIDs)))

	uc.state.Selected = nil
	uc.state.TimeSlot = ""
	uc.state.Message = resp.Message
	if uc.state.Message == "" {
		uc.state.Message = "Route scheduled"
	}
	date := uc.state.Date
	uc.mu.Unlock()

	// the just-booked pickups should no longer appear as ready
	uc.LoadSuggestions(ctx)
	return uc.SetDate(ctx, date)
}

// State returns a snapshot of the workflow
func (uc *BookingUCImpl) State() models.SchedulerState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

func (uc *BookingUCImpl) validateLocked() string {
	switch {
	case uc.state.Selected == nil:
		return msgRouteRequired
	case uc.state.Date == "":
		return msgDateRequired
	case uc.state.TimeSlot == "":
		return msgSlotRequired
	}

	date, err := time.Parse("2006-01-02", uc.state.Date)
	if err != nil {
		return msgDateInvalid
	}
	today := uc.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return msgDateInPast
	}
	return ""
}
