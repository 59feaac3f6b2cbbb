package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/karnadev/dragonsrealm/internal/flagx"
	"github.com/karnadev/dragonsrealm/internal/timex"
)

// JsonConfig is the intermediate structure for JSON unmarshalling. It uses
// timex.Duration for interval fields so JSON can specify them either as
// strings such as "1h" or as integer nanoseconds. After unmarshalling, the
// fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	NutritionAppID        string         `json:"nutrition_app_id"`
	NutritionAPIKey       string         `json:"nutrition_api_key"`
	NutritionBaseURL      string         `json:"nutrition_base_url"`
	DocumentStore         string         `json:"document_store"`
	S3AccessKey           string         `json:"s3_access_key"`
	S3SecretKey           string         `json:"s3_secret_key"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c or -config command-line flags; when
// neither is set, no file is loaded. An unreadable or invalid file panics,
// the server should not start on a broken config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.NutritionAppID = c.NutritionAppID
	config.NutritionAPIKey = c.NutritionAPIKey
	config.NutritionBaseURL = c.NutritionBaseURL
	config.DocumentStore = c.DocumentStore
	config.S3AccessKey = c.S3AccessKey
	config.S3SecretKey = c.S3SecretKey
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
