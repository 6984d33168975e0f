package locator

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// LocatorUC defines the interface for location resolution business logic.
// The resolver owns the single effective location every geo-filtered
// query reads; strategies are tried in a fixed priority order and the
// actor can override the active one at any time.
type LocatorUC interface {
	// Resolve runs the entry sequence: attempt the saved service-area
	// location first, fall through to the current position, and degrade
	// to the unfiltered "all" state when neither is available
	Resolve(ctx context.Context) models.LocationState

	// LoadSavedLocation re-reads the backend saved location. An invalid
	// or failed read falls through to the current position, then "all"
	LoadSavedLocation(ctx context.Context) models.LocationState

	// UseCurrentLocation requests a one-shot position fix. Failure
	// degrades to "all" with a human-readable error, never a panic
	UseCurrentLocation(ctx context.Context) models.LocationState

	// SetCustomLocation applies an explicit coordinate override. It does
	// not persist beyond the session
	SetCustomLocation(lat, lng float64, name string) (models.LocationState, error)

	// ShowAll clears the geographic filter entirely
	ShowAll() models.LocationState

	// State returns a snapshot of the resolver without side effects
	State() models.LocationState
}
