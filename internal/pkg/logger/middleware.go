package logger

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	pkgcontext "github.com/smartwaste360/gateway/internal/pkg/context"
)

// RequestIDHeader is the header carrying the request correlation ID
const RequestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware logs every HTTP request with a correlation ID.
// An incoming X-Request-ID is honored; otherwise one is generated.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Set("request_id", requestID)
			c.SetRequest(c.Request().WithContext(
				pkgcontext.WithRequestID(c.Request().Context(), requestID)))
			c.Response().Header().Set(RequestIDHeader, requestID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status

			fields := []Field{
				String("request_id", requestID),
				String("method", c.Request().Method),
				String("path", c.Request().URL.Path),
				Int("status", status),
				Duration("latency", latency),
				String("client_ip", c.RealIP()),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case status >= 500:
				Error("request completed", fields...)
			case status >= 400:
				Warn("request completed", fields...)
			default:
				Info("request completed", fields...)
			}

			return nil
		}
	}
}
