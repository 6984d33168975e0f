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

// BookingClient drives the backend booking operations
type BookingClient struct {
	client *httpclient.Client
}

// NewBookingClient creates a new booking API client
func NewBookingClient(client *httpclient.Client) *BookingClient {
	return &BookingClient{client: client}
}

// RouteSuggestions fetches server-computed routes
func (c *BookingClient) RouteSuggestions(ctx context.Context, maxPickups int, maxRadiusKm float64) ([]models.RouteSuggestion, error) {
	params := url.Values{}
	params.Set("max_pickups", strconv.Itoa(maxPickups))
	params.Set("max_radius", strconv.FormatFloat(maxRadiusKm, 'f', -1, 64))

	var resp struct {
		Routes []models.RouteSuggestion `json:"routes"`
	}
	if err := c.client.GetJSON(ctx, constants.PathRouteSuggestions, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch route suggestions: %w", err)
	}
	return resp.Routes, nil
}

// TimeSlots lists the pickup windows for a date
func (c *BookingClient) TimeSlots(ctx context.Context, date string) ([]models.TimeSlot, error) {
	params := url.Values{}
	params.Set("date", date)

	var resp struct {
		TimeSlots []models.TimeSlot `json:"time_slots"`
	}
	if err := c.client.GetJSON(ctx, constants.PathTimeSlots, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch time slots: %w", err)
	}
	return resp.TimeSlots, nil
}

// ScheduleRoute commits a route batch. The POST goes out exactly once;
// a rejection carries the server's own message.
func (c *BookingClient) ScheduleRoute(ctx context.Context, req *models.RouteBatchRequest) (*models.RouteBatchResponse, error) {
	var resp models.RouteBatchResponse
	if err := c.client.PostJSON(ctx, constants.PathScheduleRoute, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
