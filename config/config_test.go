package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("EVENTS_FILE", "")
	t.Setenv("METRICS_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.EventsFile)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("EVENTS_FILE", "/etc/events.yaml")
	t.Setenv("METRICS_ENABLED", "off")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "/etc/events.yaml", cfg.EventsFile)
	assert.False(t, cfg.MetricsEnabled)
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{"Empty uses default", "", true, true},
		{"Yes", "yes", false, true},
		{"Zero", "0", true, false},
		{"Garbage uses default", "maybe", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, getEnvBool("TEST_BOOL", tt.def))
		})
	}
}
