// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package controls

import (
	"context"

	"conduit/cli/internal/api"
	"conduit/cli/internal/navigation"
	"conduit/cli/internal/session"
)

// NewFavorite builds the favorite/unfavorite toggle for an article.
// Anonymous activations are redirected to registration, matching the article
// views' sign-up prompt. notify receives the updated article on success.
func NewFavorite(sessions *session.Manager, client api.API, article *api.Article, nav navigation.Navigator, notify func(*api.Article)) *Toggle[*api.Article] {
	slug := article.Slug
	return NewToggle(Config[*api.Article]{
		Authenticated: sessions.IsAuthenticated,
		Navigator:     nav,
		Redirect:      navigation.RouteRegister,
		Initial:       article.Favorited,
		On: func(ctx context.Context) (*api.Article, error) {
			return client.Favorite(ctx, slug)
		},
		Off: func(ctx context.Context) (*api.Article, error) {
			return client.Unfavorite(ctx, slug)
		},
		State:  func(a *api.Article) bool { return a.Favorited },
		Notify: notify,
	})
}

// NewFollow builds the follow/unfollow toggle for a profile. Anonymous
// activations are redirected to login. notify receives the updated profile.
func NewFollow(sessions *session.Manager, client api.API, profile *api.Profile, nav navigation.Navigator, notify func(*api.Profile)) *Toggle[*api.Profile] {
	username := profile.Username
	return NewToggle(Config[*api.Profile]{
		Authenticated: sessions.IsAuthenticated,
		Navigator:     nav,
		Redirect:      navigation.RouteLogin,
		Initial:       profile.Following,
		On: func(ctx context.Context) (*api.Profile, error) {
			return client.Follow(ctx, username)
		},
		Off: func(ctx context.Context) (*api.Profile, error) {
			return client.Unfollow(ctx, username)
		},
		State:  func(p *api.Profile) bool { return p.Following },
		Notify: notify,
	})
}
