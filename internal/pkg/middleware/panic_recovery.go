package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/smartwaste360/gateway/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace, and answers 500 instead of dropping the connection.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()
			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	requestID := c.Response().Header().Get(logger.RequestIDHeader)
	if requestID == "" {
		requestID = c.Request().Header.Get(logger.RequestIDHeader)
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("panic: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.value":    fmt.Sprintf("%v", r),
				"panic.type":     fmt.Sprintf("%T", r),
				"http.method":    c.Request().Method,
				"http.path":      c.Request().URL.Path,
				"http.client_ip": c.RealIP(),
				"request_id":     requestID,
			},
		})
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		response := map[string]interface{}{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred while processing your request",
		}
		if requestID != "" {
			response["request_id"] = requestID
		}
		if err := c.JSON(http.StatusInternalServerError, response); err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
