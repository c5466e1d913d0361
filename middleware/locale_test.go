package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"datetime_api_go/services/i18n"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale(t *testing.T) {
	e := echo.New()
	catalog, err := i18n.Load()
	require.NoError(t, err)

	run := func(target string, inner echo.HandlerFunc) echo.Context {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if inner == nil {
			inner = func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}
		}
		assert.NoError(t, Locale(catalog)(inner)(c))
		return c
	}

	t.Run("SupportedQueryParam", func(t *testing.T) {
		c := run("/?lang=es", nil)
		assert.Equal(t, "es", GetLocale(c))
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		c := run("/?lang=FR", nil)
		assert.Equal(t, "fr", GetLocale(c))
	})

	t.Run("UnsupportedIgnored", func(t *testing.T) {
		c := run("/?lang=de", nil)
		assert.Equal(t, "", GetLocale(c))
		assert.Nil(t, c.Get("locale"))
	})

	t.Run("NoQueryParam", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Locale(catalog)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		assert.NoError(t, handler(c))
		assert.Equal(t, "", GetLocale(c))
	})

	t.Run("RequestContext", func(t *testing.T) {
		run("/?lang=fr", func(c echo.Context) error {
			assert.Equal(t, "fr", i18n.GetLocale(c.Request().Context()))
			return c.NoContent(http.StatusOK)
		})
	})
}

func TestGetLocale(t *testing.T) {
	e := echo.New()
	t.Run("WithLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("locale", "es")
		assert.Equal(t, "es", GetLocale(c))
	})

	t.Run("WithoutLocale", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "", GetLocale(c))
	})

	t.Run("FromRequestContext", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(i18n.WithLocale(req.Context(), "fr"))
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Nil(t, c.Get("locale"))
		assert.Equal(t, "fr", GetLocale(c))
	})

	t.Run("EchoContextWins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(i18n.WithLocale(req.Context(), "fr"))
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("locale", "es")
		assert.Equal(t, "es", GetLocale(c))
	})
}
