package colony

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// ColonyUC defines the interface for geo-filtered colony fetching.
// The fetcher keeps one list in sync with the location resolver's
// output: every change of effective location re-issues exactly one
// request and replaces the held list atomically.
type ColonyUC interface {
	// Refresh re-issues the colony fetch for the resolver's current
	// output. When force is false and the resolver has not transitioned
	// since the last successful fetch, the held list is returned as is.
	Refresh(ctx context.Context, force bool) models.ColonyList

	// Colonies returns the held list without fetching
	Colonies() models.ColonyList

	// CollectionPoints fetches drop-off facilities near the effective
	// location, optionally restricted to the given waste types
	CollectionPoints(ctx context.Context, wasteTypes []string) ([]models.CollectionPoint, error)
}
