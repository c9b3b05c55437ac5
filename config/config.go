package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port           string
	StaticDir      string
	AllowedOrigins []string

	// Dataset
	DataDir     string
	DatabaseURL string // optional SQL snapshot; empty means load CSVs

	// Aggregation cache
	CacheTTL time.Duration

	// Other
	Environment string
}

// Load reads configuration from the environment. A .env file in the
// working directory is picked up if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		StaticDir:      getEnv("STATIC_DIR", "./static"),
		AllowedOrigins: getOrigins(),

		DataDir:     getEnv("DATA_DIR", "./data"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),

		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getOrigins() []string {
	origins := getEnv("ALLOWED_ORIGINS", "*")
	return strings.Split(origins, ",")
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
