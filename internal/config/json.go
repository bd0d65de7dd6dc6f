package config

import (
	"encoding/json"
	"os"

	"github.com/azarovs/parkd/internal/flagx"
)

// jsonConfig mirrors Config for JSON unmarshalling. Empty fields in the file
// leave the current value untouched.
type jsonConfig struct {
	DatabaseDSN string `json:"database_dsn"`
	LogLevel    string `json:"log_level"`
}

// parseJSON loads configuration from the JSON file named by the -c/-config
// flag, if any. A missing flag means no file is loaded; an unreadable or
// malformed file panics, since running with half-applied config is worse
// than not starting.
func parseJSON(config *Config, args []string) {
	path := flagx.JSONConfigFlags(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
