package config

import (
	"os"
	"path/filepath"
	"testing"

	"size-explorer/internal/entry"
)

func TestLoadConfig_ValidConfig(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "size-explorer.yaml")

	configContent := `marker: "BEGIN SIZES"
filter_presets: [2, 0.25]
uncheck:
  - "Editor/"
  - "*.wav"
expand_depth: 2
output_file: "output/custom-tree.json"
log_level: debug
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Marker != "BEGIN SIZES" {
		t.Errorf("Expected marker %q, got %q", "BEGIN SIZES", cfg.Marker)
	}

	expectedUncheck := []string{"Editor/", "*.wav"}
	if len(cfg.Uncheck) != len(expectedUncheck) {
		t.Fatalf("Expected %d uncheck patterns, got %d", len(expectedUncheck), len(cfg.Uncheck))
	}
	for i, expected := range expectedUncheck {
		if cfg.Uncheck[i] != expected {
			t.Errorf("Uncheck[%d]: expected %q, got %q", i, expected, cfg.Uncheck[i])
		}
	}

	if len(cfg.FilterPresets) != 2 || cfg.FilterPresets[0] != 2 || cfg.FilterPresets[1] != 0.25 {
		t.Errorf("Unexpected filter presets: %v", cfg.FilterPresets)
	}
	if cfg.ExpandDepth != 2 {
		t.Errorf("Expected expand_depth 2, got %d", cfg.ExpandDepth)
	}
	if cfg.OutputFile != "output/custom-tree.json" {
		t.Errorf("Expected output_file %q, got %q", "output/custom-tree.json", cfg.OutputFile)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "console" {
		t.Errorf("Expected debug/console logging, got %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/size-explorer.yaml")
	if err != nil {
		t.Fatalf("LoadConfig should return default config for nonexistent file, got error: %v", err)
	}

	if cfg.Marker != entry.DefaultMarker {
		t.Errorf("Expected default marker, got %q", cfg.Marker)
	}
	if len(cfg.FilterPresets) != 3 {
		t.Errorf("Expected the 3 default filter presets, got %v", cfg.FilterPresets)
	}

	// Default output file should be empty (handled in main.go)
	if cfg.OutputFile != "" {
		t.Errorf("Expected default output_file to be empty, got %q", cfg.OutputFile)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `uncheck: [
  "*.tmp"
  invalid: syntax
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("LoadConfig should return error for invalid YAML")
	}
}

func TestLoadConfig_NegativeDepth(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "depth.yaml")
	if err := os.WriteFile(configPath, []byte("expand_depth: -1\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("LoadConfig should reject a negative expand_depth")
	}
}

func TestLoadConfig_EmptyConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")

	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed for empty config: %v", err)
	}

	// Empty config should result in empty lists (not nil)
	if cfg.Uncheck == nil || cfg.FilterPresets == nil {
		t.Error("Lists should not be nil")
	}
	if len(cfg.FilterPresets) != 0 {
		t.Errorf("Expected no filter presets, got %v", cfg.FilterPresets)
	}

	// Scalars keep their defaults
	if cfg.Marker != entry.DefaultMarker {
		t.Errorf("Expected default marker, got %q", cfg.Marker)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Uncheck == nil {
		t.Error("Default config Uncheck should not be nil")
	}

	expectedPresets := []float64{1, 0.5, 0.1}
	for i, p := range expectedPresets {
		if cfg.FilterPresets[i] != p {
			t.Errorf("FilterPresets[%d]: expected %v, got %v", i, p, cfg.FilterPresets[i])
		}
	}

	if cfg.ExpandDepth != 0 {
		t.Errorf("Expected nothing expanded by default, got depth %d", cfg.ExpandDepth)
	}
}
