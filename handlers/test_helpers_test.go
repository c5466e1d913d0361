package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"datetime_api_go/config"
	"datetime_api_go/metrics"
	"datetime_api_go/middleware"
	"datetime_api_go/services"
	"datetime_api_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func setupHandler(t *testing.T) (*APIHandler, *i18n.Catalog) {
	t.Helper()
	events, err := services.DefaultEventTable()
	require.NoError(t, err)
	catalog, err := i18n.Load()
	require.NoError(t, err)

	queries := services.NewDateQueries(services.NewDateResolver(services.FixedClock{Time: testNow}), events, catalog)
	return NewAPIHandler(queries, metrics.New(prometheus.NewRegistry())), catalog
}

// setupServer mounts the API the way cmd/server does, for routing tests.
func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	h, catalog := setupHandler(t)

	e := echo.New()
	api := e.Group("/api")
	api.Use(middleware.Locale(catalog))
	h.Register(api)
	return e
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
		ViewsDir:    "views",
	})

	return e, c, rec
}

// get performs a request against e and decodes the JSON body.
func get(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}
