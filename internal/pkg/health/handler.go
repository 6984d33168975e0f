package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Check probes a dependency the gateway cannot serve without.
// A nil error means the dependency is reachable.
type Check func(ctx context.Context) error

// Status is what the ping endpoint reports: the gateway's identity plus
// the outcome of each dependency probe.
type Status struct {
	Service    string            `json:"service"`
	Version    string            `json:"version"`
	GoVersion  string            `json:"go_version"`
	Hostname   string            `json:"hostname"`
	ServerTime time.Time         `json:"server_time"`
	Checks     map[string]string `json:"checks,omitempty"`
}

// NewPingHandler builds the ping endpoint. Any failing check turns the
// response into a 503 so the orchestrator stops routing traffic here.
func NewPingHandler(serviceName string, checks map[string]Check) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "development"
	}

	return func(c echo.Context) error {
		status := Status{
			Service:    serviceName,
			Version:    version,
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now(),
		}

		code := http.StatusOK
		if len(checks) > 0 {
			status.Checks = make(map[string]string, len(checks))
			for name, check := range checks {
				if err := check(c.Request().Context()); err != nil {
					status.Checks[name] = err.Error()
					code = http.StatusServiceUnavailable
					continue
				}
				status.Checks[name] = "ok"
			}
		}

		return c.JSON(code, status)
	}
}
