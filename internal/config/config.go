package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port              string
	DatabaseURL       string
	StaticDir         string
	CorsOrigins       []string
	JWTSecret         string
	JWTIssuer         string
	AccessTTLSeconds  int64
	AdminAuthRequired bool
	Timezone          string
	LogMode           string
	LogDir            string
	LogRetentionDays  int
}

func Load() Config {
	return Config{
		Port:              envOr("PORT", "5000"),
		DatabaseURL:       envOr("DATABASE_URL", "cata_cuti.db"),
		StaticDir:         envOr("STATIC_DIR", "."),
		CorsOrigins:       parseCSV(envOr("CORS_ORIGINS", "*")),
		JWTSecret:         envOr("JWT_SECRET", "dev-secret-key-change-in-production"),
		JWTIssuer:         envOr("JWT_ISSUER", "catacuti"),
		AccessTTLSeconds:  int64(envOrInt("ACCESS_TTL_SECONDS", 14400)),
		AdminAuthRequired: envOrBool("ADMIN_AUTH_REQUIRED", false),
		Timezone:          envOr("APP_TIMEZONE", ""),
		LogMode:           envOr("LOG_MODE", "dev"),
		LogDir:            envOr("LOG_DIR", "storage/logs"),
		LogRetentionDays:  envOrInt("LOG_RETENTION_DAYS", 7),
	}
}

// Location resolves Timezone, falling back to the process local zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
