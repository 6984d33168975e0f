package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/smartwaste360/gateway/internal/pkg/http"
	"github.com/smartwaste360/gateway/internal/pkg/models"
)

func hyderabadQuery(radius float64) models.GeoQuery {
	return models.GeoQuery{
		Location: &models.Location{Latitude: 17.38, Longitude: 78.48},
		RadiusKm: radius,
	}
}

func TestColonyClient_ReadyColonies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collector/ready-colonies", r.URL.Path)
		assert.Equal(t, "17.38", r.URL.Query().Get("lat"))
		assert.Equal(t, "78.48", r.URL.Query().Get("lon"))
		assert.Equal(t, "500", r.URL.Query().Get("radius"))
		w.Header().Set("Content-Type", "application/json")
		// shaped like the backend's ready-colonies response: weights come
		// from the current_*_kg columns, distance is computed in SQL
		w.Write([]byte(`{"colonies":[{
			"colony_id": 7,
			"colony_name": "Jubilee Hills",
			"latitude": 17.4326,
			"longitude": 78.4071,
			"current_plastic_kg": 6.5,
			"current_paper_kg": 5.2,
			"current_metal_kg": 1.1,
			"current_glass_kg": 2.4,
			"current_textile_kg": 0.3,
			"ready_waste_type": "plastic",
			"max_waste_kg": 52.4,
			"distance": 3.2
		}]}`))
	}))
	defer server.Close()

	client := NewColonyClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	colonies, err := client.ReadyColonies(context.Background(), hyderabadQuery(500))
	require.NoError(t, err)
	require.Len(t, colonies, 1)
	got := colonies[0]
	assert.Equal(t, 7, got.ColonyID)
	assert.Equal(t, "plastic", got.ReadyWasteType)
	assert.Equal(t, 52.4, got.MaxWasteKg)
	assert.Equal(t, 6.5, got.PlasticKg)
	assert.Equal(t, 5.2, got.PaperKg)
	assert.Equal(t, 1.1, got.MetalKg)
	assert.Equal(t, 2.4, got.GlassKg)
	assert.Equal(t, 0.3, got.TextileKg)
	assert.Equal(t, 3.2, got.DistanceKm)
}

func TestColonyClient_ReadyColonies_Unfiltered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery, "an unfiltered query must send no coordinate parameters")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"colonies":[]}`))
	}))
	defer server.Close()

	client := NewColonyClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	colonies, err := client.ReadyColonies(context.Background(), models.GeoQuery{})
	require.NoError(t, err)
	assert.Empty(t, colonies)
}

func TestColonyClient_NearbyColonies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/colony/nearby", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("radius"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"colonies":[{"colony_id":12,"colony_name":"Gachibowli"}]}`))
	}))
	defer server.Close()

	client := NewColonyClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	colonies, err := client.NearbyColonies(context.Background(), hyderabadQuery(25))
	require.NoError(t, err)
	require.Len(t, colonies, 1)
	assert.Equal(t, "Gachibowli", colonies[0].ColonyName)
}

func TestColonyClient_NearbyColonies_RequiresLocation(t *testing.T) {
	client := NewColonyClient(httpclient.NewClient(httpclient.Config{BaseURL: "http://backend"}, nil))

	_, err := client.NearbyColonies(context.Background(), models.GeoQuery{})
	assert.Error(t, err)
}

func TestColonyClient_CollectionPoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collection-points/", r.URL.Path)
		assert.Equal(t, "17.38", r.URL.Query().Get("lat"))
		assert.Equal(t, "78.48", r.URL.Query().Get("lng"))
		assert.Equal(t, []string{"plastic", "glass"}, r.URL.Query()["waste_types"])
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"collection_points":[{"id":3,"name":"Madhapur Center","waste_types":["plastic","glass"]}]}`))
	}))
	defer server.Close()

	client := NewColonyClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	points, err := client.CollectionPoints(context.Background(), hyderabadQuery(25), []string{"plastic", "glass"})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 3, points[0].ID)
}

func TestColonyClient_ReadyColonies_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream unavailable"}`))
	}))
	defer server.Close()

	client := NewColonyClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	_, err := client.ReadyColonies(context.Background(), hyderabadQuery(500))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}
