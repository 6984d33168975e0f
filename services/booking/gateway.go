package booking

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// BookingGW defines the interface for the backend booking operations
type BookingGW interface {
	// RouteSuggestions fetches server-computed routes bounded by pickup
	// count and radius
	RouteSuggestions(ctx context.Context, maxPickups int, maxRadiusKm float64) ([]models.RouteSuggestion, error)

	// TimeSlots lists the pickup windows for a calendar date
	TimeSlots(ctx context.Context, date string) ([]models.TimeSlot, error)

	// ScheduleRoute commits a route batch. Never retried: the backend
	// may have applied the booking even when the response is lost
	ScheduleRoute(ctx context.Context, req *models.RouteBatchRequest) (*models.RouteBatchResponse, error)
}
