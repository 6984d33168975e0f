package colony

import (
	"context"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// ColonyGW defines the interface for the backend colony reads
type ColonyGW interface {
	// ReadyColonies lists colonies past a collection threshold, filtered
	// by the query's coordinates when present
	ReadyColonies(ctx context.Context, query models.GeoQuery) ([]models.ColonyCandidate, error)

	// NearbyColonies lists colonies around a citizen's location
	NearbyColonies(ctx context.Context, query models.GeoQuery) ([]models.ColonyCandidate, error)

	// CollectionPoints lists drop-off facilities around the query's
	// coordinates
	CollectionPoints(ctx context.Context, query models.GeoQuery, wasteTypes []string) ([]models.CollectionPoint, error)
}
