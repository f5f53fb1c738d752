package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Port        string
	MongoURI    string
	Environment string
	CORSOrigins string

	// Analytics responses are memoized for this long
	StatsCacheTTL time.Duration

	// Hour of day (server-local) for the milestone overdue sweep
	MilestoneSweepHour int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "5000"),
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017/taskdash"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		StatsCacheTTL:      time.Duration(getIntEnv("STATS_CACHE_TTL_SECONDS", 30)) * time.Second,
		MilestoneSweepHour: getIntEnv("MILESTONE_SWEEP_HOUR", 2),
	}
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
