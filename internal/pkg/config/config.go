package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/smartwaste360/gateway/internal/pkg/models"
)

// InitConfig loads configuration from the environment, with an optional
// config file for local development. Environment variables win.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Printf("config file not loaded: %v", err)
		}
	}

	return &models.Config{
		App: models.AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.env"),
			Debug:       v.GetBool("app.debug"),
			Version:     v.GetString("app.version"),
		},
		Server: models.ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetInt("server.read_timeout"),
			WriteTimeout:    v.GetInt("server.write_timeout"),
			ShutdownTimeout: v.GetInt("server.shutdown_timeout"),
		},
		Redis: models.RedisConfig{
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			PoolSize: v.GetInt("redis.pool_size"),
		},
		Backend: models.BackendConfig{
			BaseURL:        v.GetString("backend.base_url"),
			TimeoutSeconds: v.GetInt("backend.timeout_seconds"),
		},
		Geolocation: models.GeolocationConfig{
			ProviderURL:    v.GetString("geolocation.provider_url"),
			TimeoutSeconds: v.GetInt("geolocation.timeout_seconds"),
			MaxAgeSeconds:  v.GetInt("geolocation.max_age_seconds"),
		},
		Colony: models.ColonyConfig{
			CollectorRadiusKm: v.GetFloat64("colony.collector_radius_km"),
			CitizenRadiusKm:   v.GetFloat64("colony.citizen_radius_km"),
		},
		Booking: models.BookingConfig{
			MaxPickups:  v.GetInt("booking.max_pickups"),
			MaxRadiusKm: v.GetFloat64("booking.max_radius_km"),
		},
		NewRelic: models.NewRelicConfig{
			LicenseKey:  v.GetString("new_relic.license_key"),
			AppName:     v.GetString("new_relic.app_name"),
			Enabled:     v.GetBool("new_relic.enabled"),
			ForwardLogs: v.GetBool("new_relic.forward_logs"),
		},
		Logger: models.LoggerConfig{
			Level:    v.GetString("log.level"),
			FilePath: v.GetString("log.file_path"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "smartwaste-gateway")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9980)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("backend.base_url", "http://localhost:5000/api")
	v.SetDefault("backend.timeout_seconds", 10)

	v.SetDefault("geolocation.provider_url", "http://localhost:9981/position")
	v.SetDefault("geolocation.timeout_seconds", 10)
	v.SetDefault("geolocation.max_age_seconds", 300)

	v.SetDefault("colony.collector_radius_km", 500.0)
	v.SetDefault("colony.citizen_radius_km", 25.0)

	v.SetDefault("booking.max_pickups", 5)
	v.SetDefault("booking.max_radius_km", 25.0)

	v.SetDefault("new_relic.enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file_path", "")
}
