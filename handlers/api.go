package handlers

import (
	"errors"
	"net/http"

	"datetime_api_go/metrics"
	"datetime_api_go/middleware"
	"datetime_api_go/services"

	"github.com/labstack/echo/v4"
)

// APIHandler exposes the date queries over HTTP. Every semantic outcome,
// including invalid input, is answered with 200 and a JSON body.
type APIHandler struct {
	queries *services.DateQueries
	metrics *metrics.Recorder
}

func NewAPIHandler(queries *services.DateQueries, recorder *metrics.Recorder) *APIHandler {
	return &APIHandler{queries: queries, metrics: recorder}
}

// respond writes result, or the QueryError payload when err carries one.
func (h *APIHandler) respond(c echo.Context, query string, result interface{}, err error) error {
	h.metrics.ObserveQuery(query, err)
	if err != nil {
		var qe *services.QueryError
		if errors.As(err, &qe) {
			return c.JSON(http.StatusOK, qe)
		}
		c.Logger().Errorf("query %s failed: %v", query, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to answer query")
	}
	return c.JSON(http.StatusOK, result)
}

// CurrentTimeHandler answers GET /api. A supported ?lang renders the
// current instant in that locale instead.
func (h *APIHandler) CurrentTimeHandler(c echo.Context) error {
	if lang := middleware.GetLocale(c); lang != "" {
		result, err := h.queries.LocalizedDate("", lang)
		return h.respond(c, "localized_date", result, err)
	}
	return h.respond(c, "current_time", h.queries.CurrentTime(), nil)
}

// DateHandler answers GET /api/:date, dispatching to the localized
// rendering when a supported ?lang was given.
func (h *APIHandler) DateHandler(c echo.Context) error {
	date := c.Param("date")
	if lang := middleware.GetLocale(c); lang != "" {
		result, err := h.queries.LocalizedDate(date, lang)
		return h.respond(c, "localized_date", result, err)
	}
	result, err := h.queries.EchoDate(date)
	return h.respond(c, "date", result, err)
}

func (h *APIHandler) LeapYearHandler(c echo.Context) error {
	result, err := h.queries.LeapYear(c.Param("year"))
	return h.respond(c, "leap_year", result, err)
}

func (h *APIHandler) DurationHandler(c echo.Context) error {
	result, err := h.queries.Duration(c.QueryParam("start"), c.QueryParam("end"))
	return h.respond(c, "duration", result, err)
}

func (h *APIHandler) DayOfWeekHandler(c echo.Context) error {
	result, err := h.queries.DayOfWeek(c.Param("date"))
	return h.respond(c, "day_of_week", result, err)
}

func (h *APIHandler) CountdownHandler(c echo.Context) error {
	result, err := h.queries.Countdown(c.QueryParam("date"))
	return h.respond(c, "countdown", result, err)
}

func (h *APIHandler) FormatsHandler(c echo.Context) error {
	return h.respond(c, "formats", h.queries.SupportedFormats(), nil)
}

func (h *APIHandler) EventsHandler(c echo.Context) error {
	return h.respond(c, "events", h.queries.HistoricalEvents(c.Param("monthDay")), nil)
}

func (h *APIHandler) AgeHandler(c echo.Context) error {
	result, err := h.queries.Age(c.QueryParam("birthdate"))
	return h.respond(c, "age", result, err)
}
