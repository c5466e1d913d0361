package handlers

import (
	"net/http"
	"path/filepath"

	"datetime_api_go/config"

	"github.com/labstack/echo/v4"
)

// LandingHandler serves the static landing page that documents the API
func LandingHandler(c echo.Context) error {
	cfg, ok := c.Get("config").(*config.Config)
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Configuration unavailable")
	}
	return c.File(filepath.Join(cfg.ViewsDir, "index.html"))
}
