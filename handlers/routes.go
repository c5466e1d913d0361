package handlers

import (
	"github.com/labstack/echo/v4"
)

// Route binds one GET path to a handler.
type Route struct {
	Path    string
	Handler echo.HandlerFunc
}

// Routes lists the API surface in registration order. The catch-all
// "/api/:date" stays last; Echo also ranks static segments above params,
// so "/api/duration" never reaches it.
func (h *APIHandler) Routes() []Route {
	return []Route{
		{"", h.CurrentTimeHandler},
		{"/", h.CurrentTimeHandler},
		{"/leap-year/:year", h.LeapYearHandler},
		{"/duration", h.DurationHandler},
		{"/day/:date", h.DayOfWeekHandler},
		{"/countdown", h.CountdownHandler},
		{"/formats", h.FormatsHandler},
		{"/events/:monthDay", h.EventsHandler},
		{"/age", h.AgeHandler},
		{"/:date", h.DateHandler},
	}
}

// Register mounts the routes on g.
func (h *APIHandler) Register(g *echo.Group) {
	for _, r := range h.Routes() {
		g.GET(r.Path, r.Handler)
	}
}
