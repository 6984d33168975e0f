package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/models"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"}, "test", nil)
	require.NoError(t, err)
	return zl
}

func TestPanicRecoveryMiddleware_RecoversAndAnswers500(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecoveryMiddleware(testLogger(t)))
	e.GET("/boom", func(c echo.Context) error {
		panic("something broke")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestPanicRecoveryMiddleware_PassesThroughNormally(t *testing.T) {
	e := echo.New()
	e.Use(PanicRecoveryMiddleware(testLogger(t)))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}
