package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:    FormatText,
		OutputDir: "prompts",
		Manifests: []string{"manifests/**/*.yaml"},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LLMPROMPTS_*). A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LLMPROMPTS_FORMAT -> format, etc.
	if err := k.Load(env.Provider("LLMPROMPTS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LLMPROMPTS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validFormats is the set of recognized output format values.
var validFormats = map[OutputFormat]bool{
	FormatText: true,
	FormatJSON: true,
	FormatHTML: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Format == "" {
		return fmt.Errorf("format is required")
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format %q: must be one of text, json, html", c.Format)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}
