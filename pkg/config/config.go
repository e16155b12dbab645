package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	JWTSecret     string
	JWTExpiry     time.Duration
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	SweepSchedule string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtExpiry = parsed
		}
	}

	return &Config{
		Port:          getEnv("PORT", "5348"),
		Env:           getEnv("ENV", "development"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:     jwtExpiry,
		DBHost:        getEnv("POSTGRES_SERVER", "localhost"),
		DBPort:        getEnv("POSTGRES_PORT", "5432"),
		DBUser:        getEnv("POSTGRES_USER", "postgres"),
		DBPassword:    getEnv("POSTGRES_PASSWORD", ""),
		DBName:        getEnv("POSTGRES_DB_NAME", "gadgets"),
		DBSSLMode:     getEnv("POSTGRES_SSL_MODE", "disable"),
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "@hourly"),
	}
}

// IsProduction reports whether the server runs with production settings
// (secure cookies, production logger).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
