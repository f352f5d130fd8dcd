package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port                 string
	AllowedOrigins       []string
	FrontendURL          string
	DatabaseDriver       string
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	ReportCacheTTL       time.Duration
	SessionIdleTimeout   time.Duration
	CleanupInterval      time.Duration
	DefaultDifficulty    string
	MaxSearchDepth       int
	ArenaWorkers         int
	ArenaMaxGames        int
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Report store, sqlite file by default
	dbDriver := GetEnv("DATABASE_DRIVER", "sqlite3")
	dbURL := GetEnv("DATABASE_URL", "connect4.db")
	if dbDriver == "postgres" {
		if u, err := url.Parse(dbURL); err == nil && u.Scheme != "" {
			q := u.Query()
			if q.Get("sslmode") == "" {
				q.Set("sslmode", "disable")
				u.RawQuery = q.Encode()
				dbURL = u.String()
			}
		}
	}

	AppConfig = &Config{
		Port:                 port,
		AllowedOrigins:       allowedOrigins,
		FrontendURL:          frontendURL,
		DatabaseDriver:       dbDriver,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		RedisURL:             GetEnv("REDIS_URL", ""),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),
		ReportCacheTTL:       GetEnvAsDuration("REPORT_CACHE_TTL_SECONDS", 600, time.Second),
		SessionIdleTimeout:   GetEnvAsDuration("SESSION_IDLE_TIMEOUT_MINUTES", 30, time.Minute),
		CleanupInterval:      GetEnvAsDuration("CLEANUP_INTERVAL_MINUTES", 5, time.Minute),
		DefaultDifficulty:    GetEnv("DEFAULT_DIFFICULTY", "easy"),
		MaxSearchDepth:       GetEnvAsInt("MAX_SEARCH_DEPTH", 3),
		ArenaWorkers:         GetEnvAsInt("ARENA_WORKERS", 4),
		ArenaMaxGames:        GetEnvAsInt("ARENA_MAX_GAMES", 200),
	}

	return AppConfig
}

// Validate rejects settings the services can't run with
func (c *Config) Validate() error {
	if c.MaxSearchDepth < 0 {
		return fmt.Errorf("MAX_SEARCH_DEPTH must not be negative, got %d", c.MaxSearchDepth)
	}
	if c.ArenaWorkers < 1 {
		return fmt.Errorf("ARENA_WORKERS must be at least 1, got %d", c.ArenaWorkers)
	}
	if c.ArenaMaxGames < 1 {
		return fmt.Errorf("ARENA_MAX_GAMES must be at least 1, got %d", c.ArenaMaxGames)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL_MINUTES must be positive, got %s", c.CleanupInterval)
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT_MINUTES must be positive, got %s", c.SessionIdleTimeout)
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration reads an integer count of unit
func GetEnvAsDuration(key string, defaultValue int, unit time.Duration) time.Duration {
	return time.Duration(GetEnvAsInt(key, defaultValue)) * unit
}
