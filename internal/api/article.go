// Copyright (c) 2025 Conduit
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Article is the article payload returned by the article endpoints.
// Favorited reflects the relation from the currently authenticated user.
type Article struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// ArticleList is a page of articles plus the total match count.
type ArticleList struct {
	Articles      []Article `json:"articles"`
	ArticlesCount int       `json:"articlesCount"`
}

// ArticleQuery narrows and pages article listings. Zero values are omitted.
type ArticleQuery struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

func (q ArticleQuery) encode() string {
	v := url.Values{}
	if q.Tag != "" {
		v.Set("tag", q.Tag)
	}
	if q.Author != "" {
		v.Set("author", q.Author)
	}
	if q.Favorited != "" {
		v.Set("favorited", q.Favorited)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

type articleEnvelope struct {
	Article Article `json:"article"`
}

// Article calls GET /articles/:slug.
func (h *HTTP) Article(ctx context.Context, slug string) (*Article, error) {
	var out articleEnvelope
	if err := h.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out.Article, nil
}

// Articles calls GET /articles with the query. No authentication required,
// but Favorited/Following flags are only meaningful with a token attached.
func (h *HTTP) Articles(ctx context.Context, q ArticleQuery) (*ArticleList, error) {
	var out ArticleList
	if err := h.do(ctx, http.MethodGet, "/articles"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Feed calls GET /articles/feed, listing articles from followed authors.
func (h *HTTP) Feed(ctx context.Context, q ArticleQuery) (*ArticleList, error) {
	var out ArticleList
	if err := h.do(ctx, http.MethodGet, "/articles/feed"+q.encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Favorite calls POST /articles/:slug/favorite and returns the updated article.
func (h *HTTP) Favorite(ctx context.Context, slug string) (*Article, error) {
	var out articleEnvelope
	if err := h.do(ctx, http.MethodPost, "/articles/"+url.PathEscape(slug)+"/favorite", nil, &out); err != nil {
		return nil, err
	}
	return &out.Article, nil
}

// Unfavorite calls DELETE /articles/:slug/favorite and returns the updated article.
func (h *HTTP) Unfavorite(ctx context.Context, slug string) (*Article, error) {
	var out articleEnvelope
	if err := h.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(slug)+"/favorite", nil, &out); err != nil {
		return nil, err
	}
	return &out.Article, nil
}
