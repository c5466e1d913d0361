package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort is used when PORT is not set
	DefaultPort = "3000"
)

type Config struct {
	Port        string
	Environment string
	// CORS
	AllowedOrigins []string
	// Historical events table (YAML). Empty means the embedded table.
	EventsFile string
	// Static site
	StaticDir string
	ViewsDir  string
	// Observability
	MetricsEnabled bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Port:           getEnv("PORT", DefaultPort),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		EventsFile:     os.Getenv("EVENTS_FILE"),
		StaticDir:      getEnv("STATIC_DIR", "public"),
		ViewsDir:       getEnv("VIEWS_DIR", "views"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// splitList splits a comma separated value and drops empty items
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
