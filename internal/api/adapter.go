// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api provides interfaces and implementations for communicating with a
// Conduit backend service. It defines the client contract for authentication,
// account management, profiles, and articles, plus an HTTP/JSON implementation.
// The package includes both interface definitions and HTTP-based implementations.
package api

import "context"

// API defines backend operations the CLI depends on.
// Implementations may call the real REST endpoints or provide mocks for tests.
type API interface {
	// Login exchanges credentials for an authenticated user with a fresh token.
	Login(ctx context.Context, email, password string) (*User, error)
	// Register creates a new account and returns the authenticated user.
	Register(ctx context.Context, username, email, password string) (*User, error)
	// CurrentUser validates the attached token and returns the account it
	// belongs to. Fails with ErrUnauthorized when the token is missing,
	// invalid, or expired.
	CurrentUser(ctx context.Context) (*User, error)
	// UpdateUser applies a partial update to the current account and returns
	// the full updated payload.
	UpdateUser(ctx context.Context, update UserUpdate) (*User, error)

	// Profile fetches a public profile by username.
	Profile(ctx context.Context, username string) (*Profile, error)
	// Follow and Unfollow toggle the following relation and return the
	// updated profile.
	Follow(ctx context.Context, username string) (*Profile, error)
	Unfollow(ctx context.Context, username string) (*Profile, error)

	// Article fetches a single article by slug.
	Article(ctx context.Context, slug string) (*Article, error)
	// Articles lists the global article feed; Feed lists articles from
	// followed authors (requires authentication).
	Articles(ctx context.Context, q ArticleQuery) (*ArticleList, error)
	Feed(ctx context.Context, q ArticleQuery) (*ArticleList, error)
	// Favorite and Unfavorite toggle the favorited relation and return the
	// updated article.
	Favorite(ctx context.Context, slug string) (*Article, error)
	Unfavorite(ctx context.Context, slug string) (*Article, error)
}

// TokenSource supplies the bearer token attached to outgoing requests.
// A non-nil error means no token is available and no header is attached.
// The session layer owns all writes; the client only reads.
type TokenSource interface {
	Get() (string, error)
}
