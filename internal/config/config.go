// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the token goes to the token store.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"conduit/cli/internal/xdg"
)

// DefaultAPIBaseURL is the public RealWorld demo backend.
const DefaultAPIBaseURL = "https://api.realworld.io/api"

// Config holds non-sensitive CLI settings.
type Config struct {
	// APIBaseURL is the fixed base URL all request paths are relative to.
	APIBaseURL string `json:"api_base_url"`
	// PageSize limits article listings per request.
	PageSize int `json:"page_size"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	var c Config
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults(), nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.PageSize <= 0 {
		c.PageSize = defaults().PageSize
	}
	return c, nil
}

func defaults() Config {
	return Config{
		APIBaseURL: DefaultAPIBaseURL,
		PageSize:   20,
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
