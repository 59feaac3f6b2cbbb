package config

import (
	"encoding/json"
	"os"

	"github.com/karnadev/dragonsrealm/internal/flagx"
)

// JsonConfig is the intermediate structure for JSON unmarshalling.
type JsonConfig struct {
	ServerURL string `json:"server_url"`
	DataPath  string `json:"data_path"`
	DSN       string `json:"dsn"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flags. Absent flags mean no file is loaded; empty fields leave the
// current value untouched.
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

	if c.ServerURL != "" {
		config.ServerURL = c.ServerURL
	}
	if c.DataPath != "" {
		config.DataPath = c.DataPath
	}
	if c.DSN != "" {
		config.DSN = c.DSN
	}
}
