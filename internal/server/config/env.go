package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays settings from environment variables, loading a local
// .env file first when one exists. Unset variables leave the current value
// untouched.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddr = getEnv("REALM_ADDR", config.EndpointAddr)
	config.SecretKey = getEnv("REALM_SECRET_KEY", config.SecretKey)
	config.NutritionAppID = getEnv("NUTRITION_APP_ID", config.NutritionAppID)
	config.NutritionAPIKey = getEnv("NUTRITION_API_KEY", config.NutritionAPIKey)
	config.NutritionBaseURL = getEnv("NUTRITION_BASE_URL", config.NutritionBaseURL)
	config.DocumentStore = getEnv("REALM_DOCUMENT_STORE", config.DocumentStore)
	config.S3AccessKey = getEnv("REALM_S3_ACCESS_KEY", config.S3AccessKey)
	config.S3SecretKey = getEnv("REALM_S3_SECRET_KEY", config.S3SecretKey)
	config.S3Bucket = getEnv("REALM_S3_BUCKET", config.S3Bucket)
	config.S3Region = getEnv("REALM_S3_REGION", config.S3Region)
	config.S3BaseEndpoint = getEnv("REALM_S3_ENDPOINT", config.S3BaseEndpoint)
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
