package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/smartwaste360/gateway/internal/pkg/constants"
	httpclient "github.com/smartwaste360/gateway/internal/pkg/http"
	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// LocationClient reads the collector's saved service-area location from
// the backend API
type LocationClient struct {
	client *httpclient.Client
}

// NewLocationClient creates a new saved-location API client
func NewLocationClient(client *httpclient.Client) *LocationClient {
	return &LocationClient{client: client}
}

// SavedLocation returns the stored service-area location. A collector
// who never set one yields nil rather than an error.
func (c *LocationClient) SavedLocation(ctx context.Context) (*models.SavedLocation, error) {
	var resp struct {
		Location *models.SavedLocation `json:"location"`
	}

	err := c.client.GetJSON(ctx, constants.PathCollectorLocation, nil, &resp)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch saved location: %w", err)
	}

	return resp.Location, nil
}
