package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func TestNewClient(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:5000/api/", Timeout: 5 * time.Second}, nil)

	assert.Equal(t, "http://localhost:5000/api", client.BaseURL())
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
}

func TestClient_GetJSON_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, staticTokens("abc123"))

	var out map[string]string
	err := client.GetJSON(context.Background(), "/ping", nil, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", gotAuth)
	assert.Equal(t, "ok", out["status"])
}

func TestClient_GetJSON_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, staticTokens(""))

	err := client.GetJSON(context.Background(), "/ping", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_GetJSON_QueryParams(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	query := url.Values{}
	query.Set("lat", "17.38")
	query.Set("lon", "78.48")
	query.Set("radius", "500")

	err := client.GetJSON(context.Background(), "/collector/ready-colonies", query, nil)
	require.NoError(t, err)

	assert.Equal(t, "17.38", gotQuery.Get("lat"))
	assert.Equal(t, "78.48", gotQuery.Get("lon"))
	assert.Equal(t, "500", gotQuery.Get("radius"))
}

func TestClient_GetJSON_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"colonies": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	err := client.GetJSON(context.Background(), "/collector/ready-colonies", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GetJSON_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg": "Missing Authorization Header"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	err := client.GetJSON(context.Background(), "/collector/location", nil, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_PostJSON_NeverRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "slot fully booked"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	err := client.PostJSON(context.Background(), "/booking/schedule-route", map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "slot fully booked", httpErr.Message)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestNewHTTPError_MessageKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error key", `{"error": "boom"}`, "boom"},
		{"msg key", `{"msg": "denied"}`, "denied"},
		{"message key", `{"message": "nope"}`, "nope"},
		{"no known key", `{"detail": "x"}`, "backend returned status 400"},
		{"not json", `<html>`, "backend returned status 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newHTTPError(400, []byte(tt.body))
			assert.Equal(t, tt.want, err.Message)
		})
	}
}
