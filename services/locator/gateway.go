package locator

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// LocationGW defines the interface for the backend saved-location read
type LocationGW interface {
	// SavedLocation returns the collector's stored service-area location,
	// or nil when none has been set
	SavedLocation(ctx context.Context) (*models.SavedLocation, error)
}

// PositionProvider defines the interface for one-shot position fixes
// from the device's positioning source
type PositionProvider interface {
	// CurrentPosition returns the most recent fix, waiting a bounded
	// time for a fresh one when the cached fix is too old
	CurrentPosition(ctx context.Context) (*models.Position, error)
}
