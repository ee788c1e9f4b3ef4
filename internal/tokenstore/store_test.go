// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := NewMemory()

	_, err := s.Get()
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Set("abc"))
	got, err := s.Get()
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	require.NoError(t, s.Set("def"), "set overwrites unconditionally")
	got, err = s.Get()
	require.NoError(t, err)
	require.Equal(t, "def", got)

	require.NoError(t, s.Clear())
	_, err = s.Get()
	require.ErrorIs(t, err, ErrNoToken)
	require.NoError(t, s.Clear(), "clear is idempotent")
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenKey)
	s := NewFile(path)

	_, err := s.Get()
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Set("tok-1"))
	got, err := s.Get()
	require.NoError(t, err)
	require.Equal(t, "tok-1", got)

	// Token survives a new store instance, as across CLI invocations.
	again := NewFile(path)
	got, err = again.Get()
	require.NoError(t, err)
	require.Equal(t, "tok-1", got)

	require.NoError(t, s.Clear())
	_, err = s.Get()
	require.ErrorIs(t, err, ErrNoToken)
	require.NoError(t, s.Clear())
}

func TestFileEmptyTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenKey)
	s := NewFile(path)

	require.NoError(t, s.Set("   \n"))
	_, err := s.Get()
	require.ErrorIs(t, err, ErrNoToken)
}
