// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File stores the token in a private file. Used when no OS keychain is
// available. The parent directory must already exist with safe permissions
// (the xdg helpers create it 0700).
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a store writing to the given path with 0600 permissions.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (f *File) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *File) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// tokenPath is the token file location inside the config directory.
func tokenPath(dir string) string {
	return filepath.Join(dir, TokenKey)
}
