package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Runtime configuration resolved from the environment.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	RedisDB       int
	JWTSecret     string
	SeedPath      string
	ContentPath   string
	LogLevel      string
}

// Load reads .env (when present) and resolves the runtime configuration.
// MONGODB_URI, REDIS_ADDR and JWT_SECRET are required; the rest default.
func Load() (*Config, error) {
	// Absent .env is fine: plain environment variables are the
	// deployment path.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          Get("PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: Get("MONGODB_DATABASE", "tourist_db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SeedPath:      Get("SEED_PATH", "data/seeds/pois.json"),
		ContentPath:   os.Getenv("CONTENT_CONFIG_PATH"),
		LogLevel:      Get("LOG_LEVEL", "info"),
	}

	if strings.TrimSpace(cfg.MongoURI) == "" {
		return nil, fmt.Errorf("load config: MONGODB_URI is required")
	}
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil, fmt.Errorf("load config: REDIS_ADDR is required")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("load config: JWT_SECRET is required")
	}

	redisDB, err := strconv.Atoi(Get("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("load config: invalid REDIS_DB value: %w", err)
	}
	cfg.RedisDB = redisDB

	return cfg, nil
}

// Get returns the environment value for key, falling back when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
