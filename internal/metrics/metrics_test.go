package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteauth/internal/errors"
)

func newTestEcho(m *Metrics) *echo.Echo {
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/ok/:id", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/missing", func(c echo.Context) error { return errors.NotFound("Note is not found") })
	e.GET("/teapot", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })
	e.GET("/metrics", m.Handler())
	return e
}

func TestMiddleware_RecordsRouteAndStatus(t *testing.T) {
	m := New("test")
	e := newTestEcho(m)

	for _, path := range []string{"/ok/1", "/ok/2", "/missing", "/teapot"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/ok/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/missing", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/teapot", "418")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New("test")
	e := newTestEcho(m)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok/1", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds_bucket")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, errorStatus(errors.Forbidden()))
	assert.Equal(t, http.StatusBadGateway, errorStatus(echo.NewHTTPError(http.StatusBadGateway)))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(assert.AnError))
}
