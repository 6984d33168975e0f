package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/models"
	"github.com/smartwaste360/gateway/internal/utils"
	"github.com/smartwaste360/gateway/services/colony"
	"github.com/smartwaste360/gateway/services/locator"
	"github.com/smartwaste360/gateway/services/session"
)

// ErrLocationRequired is returned when a citizen query runs without an
// effective location. The nearby-colonies read has no unfiltered mode.
var ErrLocationRequired = errors.New("location required to find nearby colonies")

// Config holds the per-role query radii
type Config struct {
	CollectorRadiusKm float64
	CitizenRadiusKm   float64
}

// ColonyUCImpl implements colony.ColonyUC. The held list is replaced
// atomically on success; a failed fetch keeps the last good list and
// surfaces the error alongside it. A generation counter drops results
// of fetches superseded by a newer one.
type ColonyUCImpl struct {
	mu          sync.Mutex
	list        models.ColonyList
	gen         uint64
	lastVersion uint64
	fetched     bool

	cfg       Config
	sessions  session.SessionUC
	locations locator.LocatorUC
	colonies  colony.ColonyGW
}

// NewColonyUC creates a new geo-filtered colony fetcher
func NewColonyUC(cfg Config, sessions session.SessionUC, locations locator.LocatorUC, colonies colony.ColonyGW) *ColonyUCImpl {
	if cfg.CollectorRadiusKm == 0 {
		cfg.CollectorRadiusKm = 500
	}
	if cfg.CitizenRadiusKm == 0 {
		cfg.CitizenRadiusKm = 25
	}
	return &ColonyUCImpl{
		cfg:       cfg,
		sessions:  sessions,
		locations: locations,
		colonies:  colonies,
	}
}

// Refresh re-issues the colony fetch for the resolver's current output
func (uc *ColonyUCImpl) Refresh(ctx context.Context, force bool) models.ColonyList {
	snapshot := uc.locations.State()

	uc.mu.Lock()
	if !force && uc.fetched && snapshot.Version == uc.lastVersion {
		list := uc.list
		uc.mu.Unlock()
		return list
	}
	uc.gen++
	gen := uc.gen
	uc.list.Loading = true
	uc.list.Err = ""
	uc.mu.Unlock()

	role, err := uc.sessions.Role(ctx)
	if err != nil {
		return uc.fail(gen, err)
	}

	query, err := uc.buildQuery(snapshot, role)
	if err != nil {
		return uc.fail(gen, err)
	}

	var colonies []models.ColonyCandidate
	if role == models.RoleCitizen {
		colonies, err = uc.colonies.NearbyColonies(ctx, query)
	} else {
		colonies, err = uc.colonies.ReadyColonies(ctx, query)
	}
	if err != nil {
		logger.Warn("Colony fetch failed",
			logger.String("method", string(snapshot.Method)),
			logger.Err(err))
		return uc.fail(gen, err)
	}

	fillDistances(colonies, snapshot.Location)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.gen {
		return uc.list
	}
	uc.list = models.ColonyList{Colonies: colonies}
	uc.lastVersion = snapshot.Version
	uc.fetched = true
	return uc.list
}

// fillDistances computes the distance locally when the backend omitted
// it (the unfiltered read does not calculate distances)
func fillDistances(colonies []models.ColonyCandidate, from *models.Location) {
	if from == nil {
		return
	}
	origin := utils.GeoPoint{Latitude: from.Latitude, Longitude: from.Longitude}
	for i := range colonies {
		if colonies[i].DistanceKm != 0 {
			continue
		}
		colonies[i].DistanceKm = utils.CalculateDistance(origin, utils.GeoPoint{
			Latitude:  colonies[i].Latitude,
			Longitude: colonies[i].Longitude,
		})
	}
}

// Colonies returns the held list without fetching
func (uc *ColonyUCImpl) Colonies() models.ColonyList {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.list
}

// CollectionPoints fetches drop-off facilities near the effective location
func (uc *ColonyUCImpl) CollectionPoints(ctx context.Context, wasteTypes []string) ([]models.CollectionPoint, error) {
	snapshot := uc.locations.State()

	role, err := uc.sessions.Role(ctx)
	if err != nil {
		return nil, err
	}

	query := models.GeoQuery{RadiusKm: uc.radiusFor(role)}
	if !snapshot.IsShowingAll() && snapshot.Location != nil {
		query.Location = snapshot.Location
	}
	return uc.colonies.CollectionPoints(ctx, query, wasteTypes)
}

func (uc *ColonyUCImpl) buildQuery(snapshot models.LocationState, role models.Role) (models.GeoQuery, error) {
	if snapshot.IsShowingAll() || snapshot.Location == nil {
		if role == models.RoleCitizen {
			return models.GeoQuery{}, ErrLocationRequired
		}
		// unfiltered: the server returns every ready colony
		return models.GeoQuery{}, nil
	}
	return models.GeoQuery{
		Location: snapshot.Location,
		RadiusKm: uc.radiusFor(role),
	}, nil
}

func (uc *ColonyUCImpl) radiusFor(role models.Role) float64 {
	if role == models.RoleCitizen {
		return uc.cfg.CitizenRadiusKm
	}
	return uc.cfg.CollectorRadiusKm
}

// fail surfaces the error while keeping the last good list
func (uc *ColonyUCImpl) fail(gen uint64, err error) models.ColonyList {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if gen != uc.gen {
		return uc.list
	}
	uc.list.Loading = false
	uc.list.Err = err.Error()
	return uc.list
}
