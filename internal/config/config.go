package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite (default), postgres, mysql
	DatabasePath   string // sqlite file path
	DatabaseURL    string // postgres/mysql connection string
	MigrationsPath string

	// HostTokenSecret signs the session host tokens. Override in any
	// deployment with more than one server instance.
	HostTokenSecret string

	// Sessions without host activity for longer than SessionIdleTimeout are
	// deactivated by the background sweep.
	SessionIdleTimeout time.Duration
	SweepInterval      time.Duration

	// SoloStatePath is where the solo drill CLI keeps its resume snapshot.
	SoloStatePath string

	// Recap email (disabled when RecapFromEmail is empty).
	AWSRegion      string
	RecapFromEmail string
	RecapFromName  string
	RecapToEmail   string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("PORT", "8080"),
		DatabaseType:       getEnv("DB_TYPE", "sqlite"),
		DatabasePath:       getEnv("DB_PATH", "./kelaskata.db"),
		DatabaseURL:        getEnv("DB_URL", ""),
		MigrationsPath:     getEnv("MIGRATIONS_PATH", "./migrations"),
		HostTokenSecret:    getEnv("HOST_TOKEN_SECRET", "kelaskata-dev-secret"),
		SessionIdleTimeout: getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		SweepInterval:      getEnvDuration("SWEEP_INTERVAL", 5*time.Minute),
		SoloStatePath:      getEnv("SOLO_STATE_PATH", defaultSoloStatePath()),
		AWSRegion:          getEnv("AWS_REGION", "ap-southeast-1"),
		RecapFromEmail:     getEnv("SES_FROM_EMAIL", ""),
		RecapFromName:      getEnv("SES_FROM_NAME", "Kelaskata"),
		RecapToEmail:       getEnv("RECAP_TO_EMAIL", ""),
	}
}

func defaultSoloStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./kelaskata-solo.json"
	}
	return home + "/.kelaskata/solo.json"
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration reads a duration environment variable (e.g. "45m", "2h")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
