package booking

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// BookingUC defines the interface for the route selection workflow:
// load server-computed route suggestions, track one selected route,
// and commit it as a batch once date and time slot are chosen.
type BookingUC interface {
	// LoadSuggestions fetches route suggestions for the effective
	// location and auto-selects the first as the working default
	LoadSuggestions(ctx context.Context) models.SchedulerState

	// SelectRoute switches the selected route. Local state only, no
	// network call
	SelectRoute(routeID int) (models.SchedulerState, error)

	// SetDate stores the booking date and refreshes the time slots for it
	SetDate(ctx context.Context, date string) models.SchedulerState

	// SetTimeSlot stores the chosen slot. Availability is advisory and
	// not enforced here; the server rejects a full slot on commit
	SetTimeSlot(slot string) models.SchedulerState

	// Commit schedules the selected route's pickups as one batch. Unmet
	// preconditions fail locally without any network call
	Commit(ctx context.Context) models.SchedulerState

	// State returns a snapshot of the workflow without side effects
	State() models.SchedulerState
}
