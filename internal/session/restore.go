// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import "context"

// Restore runs the one-time startup restoration. With no stored token it
// resolves immediately; with one it validates against the backend and waits
// for the outcome. Either outcome, restored account or forced Anonymous on a
// rejected token, is an acceptable completion: restoration never fails boot,
// it only delays readiness until the state is settled.
//
// Gated work (guards, command handlers) must wait on AwaitReady so it never
// races an in-flight restoration.
func (m *Manager) Restore(ctx context.Context) {
	defer m.markReady()

	if _, err := m.tokens.Get(); err != nil {
		// Nothing to restore; stays Anonymous.
		return
	}
	_, _ = m.CurrentUserRemote(ctx)
}

// AwaitReady blocks until restoration has settled or ctx is done. Once ready,
// it returns immediately forever after.
func (m *Manager) AwaitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) markReady() {
	m.readyOnce.Do(func() { close(m.ready) })
}
