package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/models"
	"github.com/smartwaste360/gateway/internal/utils"
	"github.com/smartwaste360/gateway/services/locator"
)

// ErrInvalidCoordinates is returned when a custom override carries
// out-of-range coordinates
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// LocatorUCImpl implements locator.LocatorUC. Resolution attempts run
// without holding the lock; a generation counter taken at the start of
// each attempt guards against a slow earlier attempt overwriting a
// transition that superseded it.
type LocatorUCImpl struct {
	mu        sync.Mutex
	state     models.LocationState
	gen       uint64
	locations locator.LocationGW
	positions locator.PositionProvider
}

// NewLocatorUC creates a new location resolver
func NewLocatorUC(locations locator.LocationGW, positions locator.PositionProvider) *LocatorUCImpl {
	return &LocatorUCImpl{
		state: models.LocationState{
			Method: models.LocationMethodAll,
		},
		locations: locations,
		positions: positions,
	}
}

// Resolve runs the entry sequence. It is the same fallthrough chain as
// LoadSavedLocation, exposed under the name callers use at startup.
func (uc *LocatorUCImpl) Resolve(ctx context.Context) models.LocationState {
	return uc.LoadSavedLocation(ctx)
}

// LoadSavedLocation attempts the saved service-area read. A missing or
// invalid saved location falls through to the current position; a failed
// position fix degrades to "all".
func (uc *LocatorUCImpl) LoadSavedLocation(ctx context.Context) models.LocationState {
	gen := uc.begin()

	saved, err := uc.locations.SavedLocation(ctx)
	if err == nil && saved.Valid() {
		loc := &models.Location{
			Latitude:  *saved.Latitude,
			Longitude: *saved.Longitude,
			Address:   saved.Address,
			City:      saved.City,
			State:     saved.State,
			Method:    models.LocationMethodSaved,
		}
		return uc.apply(gen, models.LocationState{
			Method:   models.LocationMethodSaved,
			Location: loc,
			Saved:    loc,
		})
	}
	if err != nil {
		logger.Warn("Saved location read failed, trying current position",
			logger.Err(err))
	}

	// same generation: an explicit transition during the saved read
	// still wins over the fallthrough
	return uc.currentPosition(ctx, gen)
}

// UseCurrentLocation requests a one-shot position fix
func (uc *LocatorUCImpl) UseCurrentLocation(ctx context.Context) models.LocationState {
	return uc.currentPosition(ctx, uc.begin())
}

func (uc *LocatorUCImpl) currentPosition(ctx context.Context, gen uint64) models.LocationState {
	pos, err := uc.positions.CurrentPosition(ctx)
	if err != nil {
		logger.Warn("Current position unavailable, showing all colonies",
			logger.Err(err))
		return uc.apply(gen, models.LocationState{
			Method: models.LocationMethodAll,
			Err:    "Unable to determine current location: " + err.Error(),
		})
	}

	return uc.apply(gen, models.LocationState{
		Method: models.LocationMethodCurrent,
		Location: &models.Location{
			Latitude:  pos.Latitude,
			Longitude: pos.Longitude,
			Accuracy:  pos.Accuracy,
			Method:    models.LocationMethodCurrent,
		},
	})
}

// SetCustomLocation applies an explicit override, superseding any
// resolution attempt still in flight
func (uc *LocatorUCImpl) SetCustomLocation(lat, lng float64, name string) (models.LocationState, error) {
	if !utils.ValidCoordinates(lat, lng) {
		return uc.State(), ErrInvalidCoordinates
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.gen++
	uc.applyLocked(models.LocationState{
		Method: models.LocationMethodCustom,
		Location: &models.Location{
			Latitude:  lat,
			Longitude: lng,
			Name:      name,
			Method:    models.LocationMethodCustom,
		},
	})
	return uc.state, nil
}

// ShowAll clears the geographic filter, superseding any resolution
// attempt still in flight
func (uc *LocatorUCImpl) ShowAll() models.LocationState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.gen++
	uc.applyLocked(models.LocationState{
		Method: models.LocationMethodAll,
	})
	return uc.state
}

// State returns a snapshot of the resolver
func (uc *LocatorUCImpl) State() models.LocationState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// begin starts a resolution attempt: it supersedes any attempt already
// in flight and raises the loading flag
func (uc *LocatorUCImpl) begin() uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.gen++
	uc.state.Loading = true
	uc.state.Err = ""
	uc.state.Version++
	return uc.gen
}

// apply commits a resolution result unless a later transition already
// superseded the attempt that produced it
func (uc *LocatorUCImpl) apply(gen uint64, next models.LocationState) models.LocationState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.gen {
		return uc.state
	}
	uc.applyLocked(next)
	return uc.state
}

func (uc *LocatorUCImpl) applyLocked(next models.LocationState) {
	saved := uc.state.Saved
	if next.Saved != nil {
		saved = next.Saved
	}
	next.Saved = saved
	next.Loading = false
	next.Version = uc.state.Version + 1
	uc.state = next
}
