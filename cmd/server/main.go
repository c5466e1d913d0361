package main

import (
	"log"
	"net/http"
	"strings"

	"datetime_api_go/config"
	"datetime_api_go/handlers"
	"datetime_api_go/metrics"
	"datetime_api_go/middleware"
	"datetime_api_go/services"
	"datetime_api_go/services/i18n"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Reference data, built once and shared read-only
	events, err := loadEvents(cfg)
	if err != nil {
		log.Fatalf("Failed to load historical events: %v", err)
	}
	log.Printf("[INFO] Historical events loaded for %d days", events.Len())

	catalog, err := i18n.Load()
	if err != nil {
		log.Fatalf("Failed to load locales: %v", err)
	}

	log.Printf("[INFO] Locales available: %s", strings.Join(catalog.Languages(), ", "))

	recorder := metrics.New(prometheus.DefaultRegisterer)
	queries := services.NewDateQueries(services.NewDateResolver(services.RealClock{}), events, catalog)
	api := handlers.NewAPIHandler(queries, recorder)

	e := newServer(cfg, api, catalog, recorder)

	// Start server
	log.Printf("Your app is listening on port %s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newServer assembles the Echo instance: middleware, the landing page with
// its assets served from the site root, the /api group and /metrics.
func newServer(cfg *config.Config, api *handlers.APIHandler, catalog *i18n.Catalog, recorder *metrics.Recorder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.Metrics(recorder))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static assets live at the site root; paths without a file fall through to the routes
	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root: cfg.StaticDir,
	}))
	e.GET("/", handlers.LandingHandler)

	// Date API
	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.Locale(catalog))
	api.Register(apiGroup)

	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}

func loadEvents(cfg *config.Config) (*services.EventTable, error) {
	if cfg.EventsFile == "" {
		return services.DefaultEventTable()
	}
	log.Printf("[INFO] Loading historical events from %s", cfg.EventsFile)
	return services.LoadEventTable(cfg.EventsFile)
}
