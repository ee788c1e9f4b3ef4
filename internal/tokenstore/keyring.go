// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "conduit"

// Keyring stores the token in the OS keychain via the keyring library.
// All methods are safe for concurrent use.
type Keyring struct {
	mu   sync.Mutex
	ring keyring.Keyring
}

// NewKeyring opens the OS keyring using native platform backends.
// Returns an error on platforms without a supported credential store;
// callers should fall back to the file store.
func NewKeyring() (*Keyring, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Keyring{ring: ring}, nil
}

// openRing opens the OS keyring, restricted to native platform backends so a
// token never lands in a plaintext keyring file by accident.
func openRing() (keyring.Keyring, error) {
	var allowed []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowed = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowed = []keyring.BackendType{keyring.WinCredBackend}
	case "linux":
		allowed = []keyring.BackendType{keyring.SecretServiceBackend, keyring.PassBackend}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowed,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	return keyring.Open(cfg)
}

func (k *Keyring) Get() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	it, err := k.ring.Get(TokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNoToken
		}
		return "", err
	}
	if len(it.Data) == 0 {
		return "", ErrNoToken
	}
	return string(it.Data), nil
}

func (k *Keyring) Set(token string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.ring.Set(keyring.Item{Key: TokenKey, Data: []byte(token)})
}

func (k *Keyring) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.ring.Remove(TokenKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
