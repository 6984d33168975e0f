package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/smartwaste360/gateway/internal/pkg/http"
)

func TestLocationClient_SavedLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/collector/location", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"location":{"latitude":17.38,"longitude":78.48,"address":"Road No 2","city":"Hyderabad","state":"Telangana"}}`))
	}))
	defer server.Close()

	client := NewLocationClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	saved, err := client.SavedLocation(context.Background())
	require.NoError(t, err)
	require.True(t, saved.Valid())
	assert.Equal(t, 17.38, *saved.Latitude)
	assert.Equal(t, 78.48, *saved.Longitude)
	assert.Equal(t, "Hyderabad", saved.City)
}

func TestLocationClient_SavedLocation_NullCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"location":{"latitude":null,"longitude":null}}`))
	}))
	defer server.Close()

	client := NewLocationClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	saved, err := client.SavedLocation(context.Background())
	require.NoError(t, err)
	assert.False(t, saved.Valid())
}

func TestLocationClient_SavedLocation_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"No location set"}`))
	}))
	defer server.Close()

	client := NewLocationClient(httpclient.NewClient(httpclient.Config{BaseURL: server.URL}, nil))

	saved, err := client.SavedLocation(context.Background())
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.False(t, saved.Valid())
}
