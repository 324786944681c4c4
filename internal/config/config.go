package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

// Config keeps runtime settings for the API server.
type Config struct {
	Port        int
	DatabaseURL string
	StaticDir   string
}

// Load reads configuration from environment variables. DATABASE_URL
// wins when set; otherwise the DSN is assembled from the DB_* variables,
// all of which are then required.
func Load() (Config, error) {
	cfg := Config{
		Port:        3500,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		StaticDir:   os.Getenv("STATIC_DIR"),
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 {
			return cfg, fmt.Errorf("invalid PORT value %q", raw)
		}
		cfg.Port = port
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = "./public"
	}

	if cfg.DatabaseURL == "" {
		dsn, err := dsnFromParts()
		if err != nil {
			return cfg, err
		}
		cfg.DatabaseURL = dsn
	}

	return cfg, nil
}

func dsnFromParts() (string, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return "", fmt.Errorf("DB_HOST environment variable is required")
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		return "", fmt.Errorf("DB_PORT environment variable is required")
	}
	user := os.Getenv("DB_USERNAME")
	if user == "" {
		return "", fmt.Errorf("DB_USERNAME environment variable is required")
	}
	password := os.Getenv("DB_PASSWORD")
	if password == "" {
		return "", fmt.Errorf("DB_PASSWORD environment variable is required")
	}
	database := os.Getenv("DB_DATABASE")
	if database == "" {
		return "", fmt.Errorf("DB_DATABASE environment variable is required")
	}

	userInfo := url.UserPassword(user, password)
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=disable",
		userInfo.String(),
		host,
		port,
		url.PathEscape(database),
	), nil
}
