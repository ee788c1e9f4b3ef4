// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the single source of truth for "current user or none".
// The Manager coordinates login, registration, logout, restore, and profile
// updates against the backend, persists the bearer token through the token
// store, and publishes two derived observable signals: current-user and
// is-authenticated.
//
// The session cell is exclusively mutated here. Other components read the
// signals or invoke the Manager's operations; none of them touch the token
// store directly.
package session

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"conduit/cli/internal/api"
	"conduit/cli/internal/navigation"
	"conduit/cli/internal/signal"
	"conduit/cli/internal/tokenstore"
)

// ErrNoToken reports that an authenticated response carried no token and none
// was cached. The session is left unchanged when this happens.
var ErrNoToken = errors.New("session: backend returned no token")

// Manager is the single authority for the session entity.
//
// All state transitions happen inside one critical section together with the
// matching token store write or wipe, so no observer ever sees the store and
// the in-memory cell disagree. Signal observers run synchronously on the
// mutating goroutine and must not call back into the Manager.
//
// The two signals are updated back to back under the Manager lock but each
// carries its own lock, so a goroutine polling both Get methods during a
// transition can catch one updated before the other. Consumers that need the
// pair consistent subscribe to one signal, or read after the transition has
// returned (guards do the latter via AwaitReady; both signals then agree).
type Manager struct {
	client api.API
	tokens tokenstore.Store
	nav    navigation.Navigator

	user   *signal.Signal[*api.User]
	authed *signal.Signal[bool]

	mu        sync.Mutex
	flight    singleflight.Group
	ready     chan struct{}
	readyOnce sync.Once
}

// Option customizes Manager construction.
type Option func(*Manager)

// WithNavigator sets the navigator used for the post-logout redirect.
func WithNavigator(nav navigation.Navigator) Option {
	return func(m *Manager) {
		if nav != nil {
			m.nav = nav
		}
	}
}

// NewManager constructs a Manager over the given backend client and token
// store. The session starts Anonymous.
func NewManager(client api.API, tokens tokenstore.Store, opts ...Option) *Manager {
	m := &Manager{
		client: client,
		tokens: tokens,
		user:   signal.New[*api.User](nil, userEqual),
		authed: signal.New(false, func(a, b bool) bool { return a == b }),
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// userEqual treats two users as semantically equal when all identity content
// matches. Equal consecutive values are suppressed by the signal.
func userEqual(a, b *api.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CurrentUser is the observable current-user signal: nil while Anonymous,
// the cached account while Authenticated. New subscribers receive the present
// value synchronously.
func (m *Manager) CurrentUser() *signal.Signal[*api.User] { return m.user }

// Authenticated is the observable derivation of CurrentUser: true iff a user
// is held. It updates in the same critical section as CurrentUser.
func (m *Manager) Authenticated() *signal.Signal[bool] { return m.authed }

// IsAuthenticated reads the current authenticated value once.
func (m *Manager) IsAuthenticated() bool { return m.authed.Get() }

// Login authenticates with the backend. On success the session transitions to
// Authenticated and the token is persisted before the user is returned.
// On failure the session is left untouched and the backend's error (usually
// a *api.ValidationError) is returned verbatim.
func (m *Manager) Login(ctx context.Context, email, password string) (*api.User, error) {
	u, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.establish(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Register creates an account. Same contract as Login, different endpoint.
func (m *Manager) Register(ctx context.Context, username, email, password string) (*api.User, error) {
	u, err := m.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.establish(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout immediately forces Anonymous, wipes the stored token, and navigates
// home. Tokens are stateless server-side, so there is no round trip.
func (m *Manager) Logout(ctx context.Context) {
	m.clear()
	if m.nav != nil {
		m.nav.NavigateTo(navigation.RouteHome)
	}
}

// CurrentUserRemote validates the attached token with GET /user. Success
// refreshes the cached account; any failure forces Anonymous and wipes the
// token. Concurrent calls share a single network request and all callers
// observe the same settled result.
func (m *Manager) CurrentUserRemote(ctx context.Context) (*api.User, error) {
	v, err, _ := m.flight.Do("current-user", func() (any, error) {
		u, err := m.client.CurrentUser(ctx)
		if err != nil {
			m.clear()
			return nil, err
		}
		if err := m.establish(u); err != nil {
			return nil, err
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*api.User), nil
}

// UpdateProfile applies a partial update. On success the cached account is
// replaced with the returned payload; the session stays Authenticated. When
// the response carries no token the previously cached one is kept; a fresh
// token overwrites it only if the server actually returned one.
func (m *Manager) UpdateProfile(ctx context.Context, update api.UserUpdate) (*api.User, error) {
	u, err := m.client.UpdateUser(ctx, update)
	if err != nil {
		return nil, err
	}
	if err := m.establish(u); err != nil {
		return nil, err
	}
	return u, nil
}

// establish transitions to Authenticated(u): token persist and cell update in
// one step. A payload without a token inherits the cached one; if none exists
// the session is left unchanged and ErrNoToken is returned.
func (m *Manager) establish(u *api.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u.Token == "" {
		if cur := m.user.Get(); cur != nil {
			u.Token = cur.Token
		}
	}
	if u.Token == "" {
		return ErrNoToken
	}
	if err := m.tokens.Set(u.Token); err != nil {
		return err
	}
	m.user.Set(u)
	m.authed.Set(true)
	return nil
}

// clear transitions to Anonymous: token wipe and cell reset in one step.
func (m *Manager) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	_ = m.tokens.Clear()
	m.user.Set(nil)
	m.authed.Set(false)
}
