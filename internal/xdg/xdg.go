// Package xdg provides helpers to resolve XDG Base Directory paths for conduit.
// It handles fallback to traditional locations when XDG environment variables
// are not set and ensures private permissions for security-sensitive
// directories like configuration and token storage.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for conduit.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/conduit when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "conduit")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
