// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"conduit/cli/internal/api"
	"conduit/cli/internal/navigation"
	"conduit/cli/internal/tokenstore"
)

// fakeAPI implements api.API for unit tests. Unused endpoints panic so a test
// touching them fails loudly.
type fakeAPI struct {
	mu sync.Mutex

	loginUser *api.User
	loginErr  error

	registerUser *api.User
	registerErr  error

	currentUser  *api.User
	currentErr   error
	currentCalls int
	currentEnter chan struct{} // closed on first CurrentUser entry, when set
	currentGate  chan struct{} // CurrentUser blocks until closed, when set

	updateUser *api.User
	updateErr  error
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	u := *f.loginUser
	return &u, nil
}

func (f *fakeAPI) Register(ctx context.Context, username, email, password string) (*api.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	u := *f.registerUser
	return &u, nil
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (*api.User, error) {
	f.mu.Lock()
	f.currentCalls++
	first := f.currentCalls == 1
	enter, gate := f.currentEnter, f.currentGate
	f.mu.Unlock()

	if enter != nil && first {
		close(enter)
	}
	if gate != nil {
		<-gate
	}
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	u := *f.currentUser
	return &u, nil
}

func (f *fakeAPI) UpdateUser(ctx context.Context, update api.UserUpdate) (*api.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u := *f.updateUser
	return &u, nil
}

func (f *fakeAPI) Profile(ctx context.Context, username string) (*api.Profile, error) {
	panic("not used")
}
func (f *fakeAPI) Follow(ctx context.Context, username string) (*api.Profile, error) {
	panic("not used")
}
func (f *fakeAPI) Unfollow(ctx context.Context, username string) (*api.Profile, error) {
	panic("not used")
}
func (f *fakeAPI) Article(ctx context.Context, slug string) (*api.Article, error) {
	panic("not used")
}
func (f *fakeAPI) Articles(ctx context.Context, q api.ArticleQuery) (*api.ArticleList, error) {
	panic("not used")
}
func (f *fakeAPI) Feed(ctx context.Context, q api.ArticleQuery) (*api.ArticleList, error) {
	panic("not used")
}
func (f *fakeAPI) Favorite(ctx context.Context, slug string) (*api.Article, error) {
	panic("not used")
}
func (f *fakeAPI) Unfavorite(ctx context.Context, slug string) (*api.Article, error) {
	panic("not used")
}

func jake(token string) *api.User {
	return &api.User{Username: "jake", Email: "jake@x.com", Token: token}
}

// requireConsistent asserts the is-authenticated signal matches the
// current-user signal at this instant.
func requireConsistent(t *testing.T, m *Manager) {
	t.Helper()
	require.Equal(t, m.CurrentUser().Get() != nil, m.Authenticated().Get())
}

func TestLoginEstablishesSessionAndPersistsToken(t *testing.T) {
	store := tokenstore.NewMemory()
	m := NewManager(&fakeAPI{loginUser: jake("abc")}, store)

	u, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "jake", u.Username)

	got, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, "abc", got, "token store must hold exactly the response token")

	require.True(t, m.IsAuthenticated())
	requireConsistent(t, m)
}

func TestLoginFailureLeavesSessionUnchanged(t *testing.T) {
	vErr := &api.ValidationError{
		Status: http.StatusForbidden,
		Errors: map[string][]string{"email or password": {"is invalid"}},
	}
	store := tokenstore.NewMemory()
	m := NewManager(&fakeAPI{loginErr: vErr}, store)

	_, err := m.Login(context.Background(), "jake@x.com", "wrong")

	var got *api.ValidationError
	require.ErrorAs(t, err, &got)
	require.Equal(t, vErr.Errors, got.Errors, "validation map surfaced verbatim")

	require.False(t, m.IsAuthenticated())
	_, err = store.Get()
	require.ErrorIs(t, err, tokenstore.ErrNoToken)
	requireConsistent(t, m)
}

func TestRegisterSameContractAsLogin(t *testing.T) {
	store := tokenstore.NewMemory()
	m := NewManager(&fakeAPI{registerUser: jake("reg-token")}, store)

	u, err := m.Register(context.Background(), "jake", "jake@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "jake", u.Username)

	got, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, "reg-token", got)
	requireConsistent(t, m)
}

func TestLogoutWipesTokenAndNavigatesHome(t *testing.T) {
	store := tokenstore.NewMemory()
	nav := &navigation.Recorder{}
	m := NewManager(&fakeAPI{loginUser: jake("abc")}, store, WithNavigator(nav))

	_, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)

	m.Logout(context.Background())

	require.False(t, m.IsAuthenticated())
	require.Nil(t, m.CurrentUser().Get())
	_, err = store.Get()
	require.ErrorIs(t, err, tokenstore.ErrNoToken)
	require.Equal(t, []navigation.Route{navigation.RouteHome}, nav.Routes)
	requireConsistent(t, m)
}

func TestRemoteValidationFailureForcesAnonymous(t *testing.T) {
	store := tokenstore.NewMemory()
	require.NoError(t, store.Set("stale"))
	m := NewManager(&fakeAPI{currentErr: api.ErrUnauthorized}, store)

	_, err := m.CurrentUserRemote(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)

	require.False(t, m.IsAuthenticated())
	_, err = store.Get()
	require.ErrorIs(t, err, tokenstore.ErrNoToken)
	requireConsistent(t, m)
}

func TestConcurrentRemoteValidationSharesOneCall(t *testing.T) {
	f := &fakeAPI{
		currentUser:  jake("abc"),
		currentEnter: make(chan struct{}),
		currentGate:  make(chan struct{}),
	}
	m := NewManager(f, tokenstore.NewMemory())

	type result struct {
		u   *api.User
		err error
	}
	results := make(chan result, 2)
	call := func() {
		u, err := m.CurrentUserRemote(context.Background())
		results <- result{u, err}
	}

	go call()
	<-f.currentEnter // first caller is in flight
	go call()
	time.Sleep(20 * time.Millisecond) // let the second caller join the flight
	close(f.currentGate)

	a := <-results
	b := <-results
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	require.Equal(t, a.u, b.u, "both callers observe the same resolved value")
	require.Equal(t, 1, f.currentCalls, "exactly one network call issued")
}

func TestUpdateProfileKeepsTokenWhenResponseOmitsIt(t *testing.T) {
	store := tokenstore.NewMemory()
	f := &fakeAPI{
		loginUser:  jake("abc"),
		updateUser: &api.User{Username: "jake", Email: "new@x.com", Bio: "hello"},
	}
	m := NewManager(f, store)

	_, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)

	email := "new@x.com"
	u, err := m.UpdateProfile(context.Background(), api.UserUpdate{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "new@x.com", u.Email)
	require.Equal(t, "abc", u.Token, "cached token inherited when server omits one")

	got, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, "abc", got)
	require.True(t, m.IsAuthenticated())
	requireConsistent(t, m)
}

func TestUpdateProfileOverwritesTokenWhenReturned(t *testing.T) {
	store := tokenstore.NewMemory()
	f := &fakeAPI{
		loginUser:  jake("abc"),
		updateUser: jake("fresh"),
	}
	m := NewManager(f, store)

	_, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)

	_, err = m.UpdateProfile(context.Background(), api.UserUpdate{})
	require.NoError(t, err)

	got, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, "fresh", got)
}

func TestUpdateProfileFailureLeavesSessionUnchanged(t *testing.T) {
	store := tokenstore.NewMemory()
	f := &fakeAPI{
		loginUser: jake("abc"),
		updateErr: &api.ValidationError{Status: 422, Errors: map[string][]string{"email": {"is taken"}}},
	}
	m := NewManager(f, store)

	_, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)

	_, err = m.UpdateProfile(context.Background(), api.UserUpdate{})
	require.Error(t, err)

	require.Equal(t, "jake@x.com", m.CurrentUser().Get().Email)
	got, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestSignalsReplayWithoutNullFlash(t *testing.T) {
	m := NewManager(&fakeAPI{loginUser: jake("abc")}, tokenstore.NewMemory())

	_, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)

	var first, second []*api.User
	m.CurrentUser().Subscribe(func(u *api.User) { first = append(first, u) }).Unsubscribe()
	m.CurrentUser().Subscribe(func(u *api.User) { second = append(second, u) }).Unsubscribe()

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.NotNil(t, first[0])
	require.Equal(t, first[0], second[0])
}

func TestEmissionOrderAcrossTransitions(t *testing.T) {
	m := NewManager(&fakeAPI{loginUser: jake("abc")}, tokenstore.NewMemory())

	var seen []bool
	sub := m.Authenticated().Subscribe(func(v bool) { seen = append(seen, v) })
	defer sub.Unsubscribe()

	_, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)
	m.Logout(context.Background())
	m.Logout(context.Background()) // repeated transition to the same state is suppressed

	require.Equal(t, []bool{false, true, false}, seen)
}

func TestRestoreWithNoTokenResolvesAnonymous(t *testing.T) {
	f := &fakeAPI{currentErr: errors.New("must not be called")}
	m := NewManager(f, tokenstore.NewMemory())

	m.Restore(context.Background())

	require.NoError(t, m.AwaitReady(context.Background()))
	require.False(t, m.IsAuthenticated())
	require.Equal(t, 0, f.currentCalls, "no network traffic without a stored token")
}

func TestRestoreWithAcceptedToken(t *testing.T) {
	store := tokenstore.NewMemory()
	require.NoError(t, store.Set("abc"))
	m := NewManager(&fakeAPI{currentUser: jake("abc")}, store)

	m.Restore(context.Background())

	require.NoError(t, m.AwaitReady(context.Background()))
	u := m.CurrentUser().Get()
	require.NotNil(t, u)
	require.Equal(t, "jake", u.Username)

	got, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestRestoreWithRejectedToken(t *testing.T) {
	store := tokenstore.NewMemory()
	require.NoError(t, store.Set("expired"))
	m := NewManager(&fakeAPI{currentErr: api.ErrUnauthorized}, store)

	m.Restore(context.Background())

	require.NoError(t, m.AwaitReady(context.Background()))
	require.Nil(t, m.CurrentUser().Get())
	_, err := store.Get()
	require.ErrorIs(t, err, tokenstore.ErrNoToken)
}

func TestAwaitReadyHonorsContext(t *testing.T) {
	m := NewManager(&fakeAPI{}, tokenstore.NewMemory())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, m.AwaitReady(ctx), context.DeadlineExceeded)
}
