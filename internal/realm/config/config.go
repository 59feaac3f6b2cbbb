// Package config handles configuration for the realm CLI.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the realm CLI.
//
// Fields:
//   - ServerURL: base URL of the realm server.
//   - DataPath: path of the local bbolt data file.
//   - DSN: optional SQL DSN for the slot store; when set it takes precedence
//     over DataPath.
type Config struct {
	ServerURL string
	DataPath  string
	DSN       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.DataPath = defaultDataPath()
	c.DSN = ""
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "realm.db"
	}
	return filepath.Join(home, ".dragonsrealm", "realm.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and a JSON file (if present). Command-line flags are parsed
// by the CLI layer and take precedence over everything here.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	return cfg
}
