package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port           string
	DatabaseDSN    string
	StoreBackend   string
	AllowedOrigins []string
	GinMode        string
}

// Load reads configuration from the environment, after loading an optional
// .env file. Every value has a working default for local use.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		Port:           getEnv("PORT", "5000"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "instance/cafes.db"),
		StoreBackend:   getEnv("STORE_BACKEND", "gorm"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		GinMode:        os.Getenv("GIN_MODE"),
	}
}

// splitOrigins parses a comma-separated ALLOWED_ORIGINS value.
func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
