package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"datetime_api_go/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	t.Run("Serves index", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Timestamp API</h1>"), 0o644))

		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		c.Set("config", &config.Config{ViewsDir: dir})

		assert.NoError(t, LandingHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Timestamp API")
	})

	t.Run("Missing config", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(nil, nil)

		err := LandingHandler(c)
		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, err.(*echo.HTTPError).Code)
	})
}
