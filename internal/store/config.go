package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"nutriplan-cli/internal/model"
)

// GlobalConfig holds optional user preferences. It lives outside the data
// directory so the same limits apply to every store dir on the machine.
type GlobalConfig struct {
	// Limits override the stock daily nutrient targets.
	Limits *model.Limits `json:"limits,omitempty"`

	// MealAPIBase / ProductAPIBase override the provider endpoints.
	// Mostly a test seam; leave empty for the public APIs.
	MealAPIBase    string `json:"mealApiBase,omitempty"`
	ProductAPIBase string `json:"productApiBase,omitempty"`
}

// Limits returns the configured daily targets, falling back to defaults.
func (c *GlobalConfig) DailyLimits() model.Limits {
	if c != nil && c.Limits != nil {
		return *c.Limits
	}
	return model.DefaultLimits()
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.nutriplan).
	if v := strings.TrimSpace(os.Getenv("NUTRIPLAN_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nutriplan"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the global config. Missing or corrupted files yield an
// empty config; callers should tolerate defaults.
func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return &GlobalConfig{}, nil
	}
	return &cfg, nil
}

func SaveConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return nil
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
