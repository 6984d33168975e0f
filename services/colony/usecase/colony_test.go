package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwaste360/gateway/internal/pkg/models"
	colonymocks "github.com/smartwaste360/gateway/services/colony/mocks"
	locatormocks "github.com/smartwaste360/gateway/services/locator/mocks"
	sessionmocks "github.com/smartwaste360/gateway/services/session/mocks"
)

type fixture struct {
	sessions  *sessionmocks.MockSessionUC
	locations *locatormocks.MockLocatorUC
	colonies  *colonymocks.MockColonyGW
	uc        *ColonyUCImpl
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		sessions:  sessionmocks.NewMockSessionUC(ctrl),
		locations: locatormocks.NewMockLocatorUC(ctrl),
		colonies:  colonymocks.NewMockColonyGW(ctrl),
	}
	f.uc = NewColonyUC(Config{}, f.sessions, f.locations, f.colonies)
	return f
}

func savedState(version uint64) models.LocationState {
	return models.LocationState{
		Method: models.LocationMethodSaved,
		Location: &models.Location{
			Latitude:  17.38,
			Longitude: 78.48,
			Method:    models.LocationMethodSaved,
		},
		Version: version,
	}
}

func TestColonyUC_Refresh_CollectorRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.locations.EXPECT().State().Return(savedState(1))
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCollector, nil)
	f.colonies.EXPECT().ReadyColonies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, query models.GeoQuery) ([]models.ColonyCandidate, error) {
			require.True(t, query.Filtered())
			assert.Equal(t, 17.38, query.Location.Latitude)
			assert.Equal(t, 78.48, query.Location.Longitude)
			assert.Equal(t, float64(500), query.RadiusKm)
			return []models.ColonyCandidate{{ColonyID: 7, ColonyName: "Jubilee Hills"}}, nil
		})

	list := f.uc.Refresh(context.Background(), false)
	require.Len(t, list.Colonies, 1)
	assert.Equal(t, 7, list.Colonies[0].ColonyID)
	assert.False(t, list.Loading)
	assert.Empty(t, list.Err)
}

func TestColonyUC_Refresh_CitizenRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.locations.EXPECT().State().Return(savedState(1))
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCitizen, nil)
	f.colonies.EXPECT().NearbyColonies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, query models.GeoQuery) ([]models.ColonyCandidate, error) {
			assert.Equal(t, float64(25), query.RadiusKm)
			return nil, nil
		})

	list := f.uc.Refresh(context.Background(), false)
	assert.Empty(t, list.Err)
}

func TestColonyUC_Refresh_ShowAllSendsNoFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.locations.EXPECT().State().Return(models.LocationState{
		Method:  models.LocationMethodAll,
		Version: 3,
	})
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCollector, nil)
	f.colonies.EXPECT().ReadyColonies(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, query models.GeoQuery) ([]models.ColonyCandidate, error) {
			assert.False(t, query.Filtered())
			return nil, nil
		})

	list := f.uc.Refresh(context.Background(), false)
	assert.Empty(t, list.Err)
}

func TestColonyUC_Refresh_CitizenWithoutLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.locations.EXPECT().State().Return(models.LocationState{
		Method:  models.LocationMethodAll,
		Version: 3,
	})
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCitizen, nil)
	// no gateway expectation: the nearby read must not be attempted

	list := f.uc.Refresh(context.Background(), false)
	assert.Equal(t, ErrLocationRequired.Error(), list.Err)
	assert.Empty(t, list.Colonies)
}

func TestColonyUC_Refresh_FailureKeepsLastList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.locations.EXPECT().State().Return(savedState(1))
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCollector, nil)
	f.colonies.EXPECT().ReadyColonies(gomock.Any(), gomock.Any()).Return(
		[]models.ColonyCandidate{{ColonyID: 7}}, nil)

	list := f.uc.Refresh(context.Background(), false)
	require.Len(t, list.Colonies, 1)

	f.locations.EXPECT().State().Return(savedState(2))
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCollector, nil)
	f.colonies.EXPECT().ReadyColonies(gomock.Any(), gomock.Any()).Return(
		nil, errors.New("backend returned status 502"))

	list = f.uc.Refresh(context.Background(), false)
	assert.Equal(t, "backend returned status 502", list.Err)
	require.Len(t, list.Colonies, 1, "a failed refresh must not destroy the held list")
	assert.Equal(t, 7, list.Colonies[0].ColonyID)
}

func TestColonyUC_Refresh_SkipsUnchangedResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.locations.EXPECT().State().Return(savedState(5)).Times(3)
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCollector, nil).Times(2)
	f.colonies.EXPECT().ReadyColonies(gomock.Any(), gomock.Any()).Return(
		[]models.ColonyCandidate{{ColonyID: 7}}, nil).Times(2)

	f.uc.Refresh(context.Background(), false)

	// same resolver version: served from the held list
	list := f.uc.Refresh(context.Background(), false)
	assert.Len(t, list.Colonies, 1)

	// force bypasses the version check
	f.uc.Refresh(context.Background(), true)
}

func TestColonyUC_Refresh_RefetchesOnResolverTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	gomock.InOrder(
		f.locations.EXPECT().State().Return(savedState(1)),
		f.locations.EXPECT().State().Return(savedState(2)),
	)
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCollector, nil).Times(2)
	f.colonies.EXPECT().ReadyColonies(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	f.uc.Refresh(context.Background(), false)
	f.uc.Refresh(context.Background(), false)
}

func TestColonyUC_Refresh_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.locations.EXPECT().State().Return(savedState(1))
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.Role(""), errors.New("no active session"))

	list := f.uc.Refresh(context.Background(), false)
	assert.Equal(t, "no active session", list.Err)
}

func TestColonyUC_Refresh_FillsMissingDistances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.locations.EXPECT().State().Return(savedState(1))
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCollector, nil)
	f.colonies.EXPECT().ReadyColonies(gomock.Any(), gomock.Any()).Return([]models.ColonyCandidate{
		{ColonyID: 7, Latitude: 17.45, Longitude: 78.50},
		{ColonyID: 8, Latitude: 17.40, Longitude: 78.47, DistanceKm: 2.7},
	}, nil)

	list := f.uc.Refresh(context.Background(), false)
	require.Len(t, list.Colonies, 2)
	assert.InDelta(t, 8.1, list.Colonies[0].DistanceKm, 0.5)
	assert.Equal(t, 2.7, list.Colonies[1].DistanceKm, "server-provided distances are kept")
}

func TestColonyUC_CollectionPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.locations.EXPECT().State().Return(savedState(1))
	f.sessions.EXPECT().Role(gomock.Any()).Return(models.RoleCitizen, nil)
	f.colonies.EXPECT().CollectionPoints(gomock.Any(), gomock.Any(), []string{"plastic", "glass"}).DoAndReturn(
		func(ctx context.Context, query models.GeoQuery, wasteTypes []string) ([]models.CollectionPoint, error) {
			require.True(t, query.Filtered())
			assert.Equal(t, float64(25), query.RadiusKm)
			return []models.CollectionPoint{{ID: 3, Name: "Madhapur Center"}}, nil
		})

	points, err := f.uc.CollectionPoints(context.Background(), []string{"plastic", "glass"})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "Madhapur Center", points[0].Name)
}
