package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays settings from environment variables, loading a local
// .env file first when one exists.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.ServerURL = getEnv("REALM_SERVER_URL", config.ServerURL)
	config.DataPath = getEnv("REALM_DATA_PATH", config.DataPath)
	config.DSN = getEnv("REALM_DSN", config.DSN)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
