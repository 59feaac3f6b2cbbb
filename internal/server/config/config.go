// Package config handles configuration for the server component, including
// defaults, an optional .env file, a JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the Dragon's Realm server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: lifetime of minted login tokens.
//   - NutritionAppID / NutritionAPIKey / NutritionBaseURL: upstream nutrition API settings.
//   - DocumentStore: where document content lives, "memory" or "s3".
//   - S3AccessKey / S3SecretKey / S3Bucket / S3Region / S3BaseEndpoint: object
//     storage settings, used only when DocumentStore is "s3".
type Config struct {
	EndpointAddr          string
	SecretKey             string
	TokenValidityDuration time.Duration
	NutritionAppID        string
	NutritionAPIKey       string
	NutritionBaseURL      string
	DocumentStore         string
	S3AccessKey           string
	S3SecretKey           string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = "your-secret-key"
	c.TokenValidityDuration = 1 * time.Hour
	c.NutritionBaseURL = "https://trackapi.nutritionix.com"
	c.DocumentStore = "memory"
	c.S3Bucket = "realm-documents"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
