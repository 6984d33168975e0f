package http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/smartwaste360/gateway/internal/pkg/constants"
	httpclient "github.com/smartwaste360/gateway/internal/pkg/http"
	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// ColonyClient reads colony and collection-point data from the backend API
type ColonyClient struct {
	client *httpclient.Client
}

// NewColonyClient creates a new colony API client
func NewColonyClient(client *httpclient.Client) *ColonyClient {
	return &ColonyClient{client: client}
}

// ReadyColonies lists colonies past a collection threshold. An
// unfiltered query sends no coordinate parameters at all; the server
// then returns the full set.
func (c *ColonyClient) ReadyColonies(ctx context.Context, query models.GeoQuery) ([]models.ColonyCandidate, error) {
	params := url.Values{}
	if query.Filtered() {
		params.Set("lat", formatCoord(query.Location.Latitude))
		params.Set("lon", formatCoord(query.Location.Longitude))
		params.Set("radius", formatCoord(query.RadiusKm))
	}

	var resp struct {
		Colonies []models.ColonyCandidate `json:"colonies"`
	}
	if err := c.client.GetJSON(ctx, constants.PathReadyColonies, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch ready colonies: %w", err)
	}
	return resp.Colonies, nil
}

// NearbyColonies lists colonies around a citizen's location
func (c *ColonyClient) NearbyColonies(ctx context.Context, query models.GeoQuery) ([]models.ColonyCandidate, error) {
	if !query.Filtered() {
		return nil, fmt.Errorf("nearby colonies query requires a location")
	}

	params := url.Values{}
	params.Set("lat", formatCoord(query.Location.Latitude))
	params.Set("lon", formatCoord(query.Location.Longitude))
	params.Set("radius", formatCoord(query.RadiusKm))

	var resp struct {
		Colonies []models.ColonyCandidate `json:"colonies"`
	}
	if err := c.client.GetJSON(ctx, constants.PathNearbyColonies, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch nearby colonies: %w", err)
	}
	return resp.Colonies, nil
}

// CollectionPoints lists drop-off facilities. This endpoint takes "lng"
// where the colony reads take "lon", and waste types repeat as separate
// parameters.
func (c *ColonyClient) CollectionPoints(ctx context.Context, query models.GeoQuery, wasteTypes []string) ([]models.CollectionPoint, error) {
	params := url.Values{}
	if query.Filtered() {
		params.Set("lat", formatCoord(query.Location.Latitude))
		params.Set("lng", formatCoord(query.Location.Longitude))
		params.Set("radius", formatCoord(query.RadiusKm))
	}
	for _, wt := range wasteTypes {
		params.Add("waste_types", wt)
	}

	var resp struct {
		CollectionPoints []models.CollectionPoint `json:"collection_points"`
	}
	if err := c.client.GetJSON(ctx, constants.PathCollectionPoints, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch collection points: %w", err)
	}
	return resp.CollectionPoints, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
