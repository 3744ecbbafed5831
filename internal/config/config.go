// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mvdcruz/invitation-rsvp/internal/domain"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables. Nothing here is
// ever shipped to a client: the admin password and token secret live only
// in the server process.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AdminPassword is the shared secret for the dashboard gate. Required.
	AdminPassword string

	// TokenSecret signs guest and admin bearer tokens. Required.
	TokenSecret string

	// TokenTTL bounds the lifetime of issued tokens. Defaults to 12h.
	TokenTTL time.Duration

	// Event holds the invitation facts rendered to guests and used by the
	// calendar link builder. All fields default to the hosted celebration.
	Event domain.Event

	// CSVFilename is the attachment name for the dashboard export,
	// without the ".csv" extension.
	CSVFilename string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "12h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		TokenTTL:    ttl,
		Event: domain.Event{
			Title:     getEnv("EVENT_TITLE", "Avelina's 60th Birthday Celebration"),
			Details:   getEnv("EVENT_DETAILS", "Join us as we celebrate Avelina's Diamond Jubilee!"),
			Location:  getEnv("EVENT_LOCATION", "The Emerald Events Place, Antipolo, Rizal"),
			DressCode: getEnv("EVENT_DRESS_CODE", "Semi-formal Attire"),
			MapURL:    getEnv("EVENT_MAP_URL", ""),
			Start:     getEnv("EVENT_START", "20260208T150000"),
			End:       getEnv("EVENT_END", "20260208T200000"),
		},
		CSVFilename: getEnv("CSV_FILENAME", "avelina_60th_rsvps"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}

	cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	if cfg.TokenSecret == "" {
		missing = append(missing, "TOKEN_SECRET")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
