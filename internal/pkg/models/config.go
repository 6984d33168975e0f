package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Redis       RedisConfig
	Backend     BackendConfig
	Geolocation GeolocationConfig
	Colony      ColonyConfig
	Booking     BookingConfig
	NewRelic    NewRelicConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// BackendConfig contains the SmartWaste360 backend API configuration
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// GeolocationConfig contains position provider configuration
type GeolocationConfig struct {
	ProviderURL    string
	TimeoutSeconds int // bounded wait for a fix
	MaxAgeSeconds  int // how long a cached fix stays acceptable
}

// ColonyConfig contains geofiltered colony query configuration
type ColonyConfig struct {
	CollectorRadiusKm float64
	CitizenRadiusKm   float64
}

// BookingConfig contains route suggestion constraints
type BookingConfig struct {
	MaxPickups  int
	MaxRadiusKm float64
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
