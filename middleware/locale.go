package middleware

import (
	"datetime_api_go/services/i18n"

	"github.com/labstack/echo/v4"
)

// Locale middleware reads the "lang" query parameter and, when the catalog
// supports it, stores the canonical code on the request. Unsupported or
// missing values leave the request without a locale so responses keep the
// default rendering. Nothing is persisted between requests.
func Locale(catalog *i18n.Catalog) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang, ok := catalog.Match(c.QueryParam("lang"))
			if !ok {
				return next(c)
			}

			// We set it in both echo context and request context
			c.Set("locale", lang)
			ctx := i18n.WithLocale(c.Request().Context(), lang)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetLocale returns the locale selected for this request, or "" when none was.
// The echo context wins; the request context covers handlers that rebuilt
// the echo.Context from a request the middleware already saw.
func GetLocale(c echo.Context) string {
	val := c.Get("locale")
	if lang, ok := val.(string); ok && lang != "" {
		return lang
	}
	if req := c.Request(); req != nil {
		return i18n.GetLocale(req.Context())
	}
	return ""
}
