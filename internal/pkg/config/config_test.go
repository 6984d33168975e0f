package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg := InitConfig("")

	assert.Equal(t, "smartwaste-gateway", cfg.App.Name)
	assert.Equal(t, 9980, cfg.Server.Port)
	assert.Equal(t, 500.0, cfg.Colony.CollectorRadiusKm)
	assert.Equal(t, 25.0, cfg.Colony.CitizenRadiusKm)
	assert.Equal(t, 5, cfg.Booking.MaxPickups)
	assert.Equal(t, 25.0, cfg.Booking.MaxRadiusKm)
	assert.Equal(t, 10, cfg.Geolocation.TimeoutSeconds)
	assert.Equal(t, 300, cfg.Geolocation.MaxAgeSeconds)
	assert.False(t, cfg.NewRelic.Enabled)
}

func TestInitConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "8099")
	t.Setenv("COLONY_COLLECTOR_RADIUS_KM", "120.5")
	t.Setenv("BACKEND_BASE_URL", "https://backend.example.com/api")

	cfg := InitConfig("")

	assert.Equal(t, 8099, cfg.Server.Port)
	assert.Equal(t, 120.5, cfg.Colony.CollectorRadiusKm)
	assert.Equal(t, "https://backend.example.com/api", cfg.Backend.BaseURL)
}

func TestInitConfig_MissingFileIsNotFatal(t *testing.T) {
	cfg := InitConfig("/nonexistent/config.yaml")

	assert.NotNil(t, cfg)
	assert.Equal(t, "smartwaste-gateway", cfg.App.Name)
}
