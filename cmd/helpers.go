package cmd

import (
	"fmt"

	"github.com/A1exanderAlexeyuk/LlmPrompts/internal/config"
)

// loadConfig loads and validates the configuration from the --config path.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
