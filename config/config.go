package config

import (
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
)

// Config carries everything read from the environment at startup. It is
// built once in main and passed into constructors explicitly.
type Config struct {
	ListenAddr      string
	DataDir         string
	FavoritesFile   string
	SettingsFile    string
	RedisAddr       string
	AlphaVantageKey string
	JWTSecret       string
	PasswordHash    string // bcrypt hash of the single-user password
}

// Load builds a Config from environment variables, applying defaults
// for the local single-user setup.
func Load() *Config {
	cfg := &Config{
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		DataDir:         getenv("DATA_DIR", "data"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		AlphaVantageKey: os.Getenv("ALPHA_VANTAGE_API_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		PasswordHash:    os.Getenv("PASSWORD_HASH"),
	}
	cfg.FavoritesFile = getenv("FAVORITES_FILE", filepath.Join(cfg.DataDir, "favorites.csv"))
	cfg.SettingsFile = getenv("SETTINGS_FILE", filepath.Join(cfg.DataDir, "config.json"))
	return cfg
}

// AuthEnabled reports whether the API should be guarded by JWT auth.
// With no secret configured the app runs open, matching a personal
// single-user deployment.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// NewRedis returns a Redis client for quote caching, or nil when no
// address is configured. The connection is verified lazily by callers.
func (c *Config) NewRedis() *redis.Client {
	if c.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
