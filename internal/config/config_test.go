package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Format != FormatText {
		t.Errorf("expected default format %q, got %q", FormatText, cfg.Format)
	}
	if cfg.OutputDir != "prompts" {
		t.Errorf("expected default output_dir %q, got %q", "prompts", cfg.OutputDir)
	}
	if len(cfg.Manifests) != 1 {
		t.Errorf("expected one default manifest pattern, got %v", cfg.Manifests)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.llmprompts.yml")

	original := DefaultConfig()
	original.Format = FormatJSON
	original.OutputDir = "out"
	original.Manifests = []string{"docs/*.yaml", "extra/**/*.yml"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Format != original.Format {
		t.Errorf("format: got %q, want %q", loaded.Format, original.Format)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if len(loaded.Manifests) != len(original.Manifests) {
		t.Fatalf("manifests length: got %d, want %d", len(loaded.Manifests), len(original.Manifests))
	}
	for i, v := range loaded.Manifests {
		if v != original.Manifests[i] {
			t.Errorf("manifests[%d]: got %q, want %q", i, v, original.Manifests[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Format != FormatText {
		t.Errorf("expected default format, got %q", cfg.Format)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("LLMPROMPTS_FORMAT", "html")
	defer os.Unsetenv("LLMPROMPTS_FORMAT")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Format != FormatHTML {
		t.Errorf("env override failed: got %q, want %q", loaded.Format, FormatHTML)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(c *Config) {}, false},
		{"json is valid", func(c *Config) { c.Format = FormatJSON }, false},
		{"empty format", func(c *Config) { c.Format = "" }, true},
		{"unknown format", func(c *Config) { c.Format = "pdf" }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
