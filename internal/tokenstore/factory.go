// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import "conduit/cli/internal/xdg"

// Open returns the best available store: the OS keychain when one can be
// opened, otherwise a private file in the XDG config directory.
func Open() (Store, error) {
	if ring, err := NewKeyring(); err == nil {
		return ring, nil
	}

	dir, err := xdg.ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewFile(tokenPath(dir)), nil
}
