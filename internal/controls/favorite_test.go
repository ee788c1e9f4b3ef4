// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package controls

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"conduit/cli/internal/api"
	"conduit/cli/internal/navigation"
	"conduit/cli/internal/session"
	"conduit/cli/internal/tokenstore"
)

// toggleAPI serves the toggle endpoints plus Login for session setup.
type toggleAPI struct {
	favorites   int
	unfavorites int
	follows     int
	unfollows   int
}

func (f *toggleAPI) Login(context.Context, string, string) (*api.User, error) {
	return &api.User{Username: "jake", Email: "jake@x.com", Token: "abc"}, nil
}

func (f *toggleAPI) Favorite(ctx context.Context, slug string) (*api.Article, error) {
	f.favorites++
	return &api.Article{Slug: slug, Favorited: true, FavoritesCount: 1}, nil
}

func (f *toggleAPI) Unfavorite(ctx context.Context, slug string) (*api.Article, error) {
	f.unfavorites++
	return &api.Article{Slug: slug, Favorited: false, FavoritesCount: 0}, nil
}

func (f *toggleAPI) Follow(ctx context.Context, username string) (*api.Profile, error) {
	f.follows++
	return &api.Profile{Username: username, Following: true}, nil
}

func (f *toggleAPI) Unfollow(ctx context.Context, username string) (*api.Profile, error) {
	f.unfollows++
	return &api.Profile{Username: username, Following: false}, nil
}

func (f *toggleAPI) Register(context.Context, string, string, string) (*api.User, error) {
	panic("not used")
}
func (f *toggleAPI) CurrentUser(context.Context) (*api.User, error) { panic("not used") }
func (f *toggleAPI) UpdateUser(context.Context, api.UserUpdate) (*api.User, error) {
	panic("not used")
}
func (f *toggleAPI) Profile(context.Context, string) (*api.Profile, error) { panic("not used") }
func (f *toggleAPI) Article(context.Context, string) (*api.Article, error) { panic("not used") }
func (f *toggleAPI) Articles(context.Context, api.ArticleQuery) (*api.ArticleList, error) {
	panic("not used")
}
func (f *toggleAPI) Feed(context.Context, api.ArticleQuery) (*api.ArticleList, error) {
	panic("not used")
}

func authedSession(t *testing.T, client api.API) *session.Manager {
	t.Helper()
	m := session.NewManager(client, tokenstore.NewMemory())
	_, err := m.Login(context.Background(), "jake@x.com", "pw")
	require.NoError(t, err)
	return m
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	client := &toggleAPI{}
	m := authedSession(t, client)

	article := &api.Article{Slug: "how-to-train-your-dragon", Favorited: false}
	var updates []*api.Article
	tg := NewFavorite(m, client, article, &navigation.Recorder{}, func(a *api.Article) {
		updates = append(updates, a)
	})

	require.NoError(t, tg.Activate(context.Background()))
	require.True(t, tg.On())
	require.Equal(t, 1, client.favorites)
	require.Len(t, updates, 1)
	require.Equal(t, 1, updates[0].FavoritesCount)

	require.NoError(t, tg.Activate(context.Background()))
	require.False(t, tg.On())
	require.Equal(t, 1, client.unfavorites)
}

func TestFavoriteAnonymousRedirectsToRegister(t *testing.T) {
	client := &toggleAPI{}
	m := session.NewManager(client, tokenstore.NewMemory())

	nav := &navigation.Recorder{}
	tg := NewFavorite(m, client, &api.Article{Slug: "s"}, nav, nil)

	require.NoError(t, tg.Activate(context.Background()))
	require.Equal(t, 0, client.favorites)
	require.Equal(t, []navigation.Route{navigation.RouteRegister}, nav.Routes)
	require.False(t, tg.Busy())
}

func TestFollowToggleRoundTrip(t *testing.T) {
	client := &toggleAPI{}
	m := authedSession(t, client)

	profile := &api.Profile{Username: "celeb", Following: true}
	tg := NewFollow(m, client, profile, &navigation.Recorder{}, nil)

	require.NoError(t, tg.Activate(context.Background()))
	require.False(t, tg.On())
	require.Equal(t, 1, client.unfollows)
}

func TestFollowAnonymousRedirectsToLogin(t *testing.T) {
	client := &toggleAPI{}
	m := session.NewManager(client, tokenstore.NewMemory())

	nav := &navigation.Recorder{}
	tg := NewFollow(m, client, &api.Profile{Username: "celeb"}, nav, nil)

	require.NoError(t, tg.Activate(context.Background()))
	require.Equal(t, 0, client.follows)
	require.Equal(t, []navigation.Route{navigation.RouteLogin}, nav.Routes)
}
