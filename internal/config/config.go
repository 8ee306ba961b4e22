package config

import (
	"errors"
	"os"
	"strings"
)

// AppConfig holds the simulator's runtime settings, sourced from the
// environment. The scenario path may instead arrive as a CLI argument, in
// which case it overrides the environment value.
type AppConfig struct {
	ScenarioPath string
	OutputFormat string // "text" or "json"
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		OutputFormat: "text",
	}

	cfg.ScenarioPath = strings.TrimSpace(os.Getenv("SCENARIO_PATH"))

	if v := strings.ToLower(strings.TrimSpace(os.Getenv("OUTPUT_FORMAT"))); v != "" {
		if v != "text" && v != "json" {
			return nil, errors.New("OUTPUT_FORMAT must be text or json")
		}
		cfg.OutputFormat = v
	}

	return cfg, nil
}
