package api

import (
	"time"

	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/bookmarks"
	"github.com/joestump/joe-bookmarks/internal/store"
)

// --- Bookmark types ---

// BookmarkRequest is the body of POST, PUT and PATCH on bookmarks. A
// missing url is treated as empty and rejected.
type BookmarkRequest struct {
	URL  string `json:"url" example:"https://go.dev/doc/effective_go"`
	Body string `json:"body" example:"read later"`
}

// BookmarkResponse is the JSON representation of a bookmark.
type BookmarkResponse struct {
	ID        int64     `json:"id" example:"1"`
	URL       string    `json:"url" example:"https://go.dev/doc/effective_go"`
	ShortURL  string    `json:"short_url" example:"Xa3kPq"`
	Visit     int64     `json:"visit" example:"0"`
	Body      string    `json:"body" example:"read later"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// PageMeta locates a page within the caller's bookmarks.
type PageMeta struct {
	Page       int  `json:"page" example:"1"`
	Pages      int  `json:"pages" example:"3"`
	TotalCount int  `json:"total_count" example:"12"`
	PrevPage   *int `json:"prev_page"`
	NextPage   *int `json:"next_page" example:"2"`
	HasNext    bool `json:"has_next" example:"true"`
	HasPrev    bool `json:"has_prev" example:"false"`
}

// BookmarkListResponse is one page of bookmarks.
type BookmarkListResponse struct {
	Data []BookmarkResponse `json:"data"`
	Meta PageMeta           `json:"meta"`
}

// BookmarkStat is one row of the stats report.
type BookmarkStat struct {
	Visits   int64  `json:"visits" example:"3"`
	URL      string `json:"url" example:"https://go.dev/doc/effective_go"`
	ID       int64  `json:"id" example:"1"`
	ShortURL string `json:"short_url" example:"Xa3kPq"`
}

// StatsResponse lists visit counts for all of the caller's bookmarks.
type StatsResponse struct {
	Data []BookmarkStat `json:"data"`
}

func toBookmarkResponse(b *store.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        b.ID,
		URL:       b.URL,
		ShortURL:  b.ShortURL,
		Visit:     b.Visits,
		Body:      b.Body,
		UpdatedAt: b.UpdatedAt,
		CreatedAt: b.CreatedAt,
	}
}

func toListResponse(p *bookmarks.Page) BookmarkListResponse {
	data := make([]BookmarkResponse, 0, len(p.Items))
	for _, b := range p.Items {
		data = append(data, toBookmarkResponse(b))
	}
	return BookmarkListResponse{
		Data: data,
		Meta: PageMeta{
			Page:       p.Meta.Page,
			Pages:      p.Meta.Pages,
			TotalCount: p.Meta.TotalCount,
			PrevPage:   p.Meta.PrevPage,
			NextPage:   p.Meta.NextPage,
			HasNext:    p.Meta.HasNext,
			HasPrev:    p.Meta.HasPrev,
		},
	}
}

func toStatsResponse(items []bookmarks.Summary) StatsResponse {
	data := make([]BookmarkStat, 0, len(items))
	for _, s := range items {
		data = append(data, BookmarkStat{Visits: s.Visits, URL: s.URL, ID: s.ID, ShortURL: s.ShortURL})
	}
	return StatsResponse{Data: data}
}

// --- Token types ---

// CreateTokenRequest is the body for POST /api/v1/tokens. ExpiresIn is a Go
// duration string such as "720h"; empty means the token never expires.
type CreateTokenRequest struct {
	Name      string `json:"name" example:"laptop"`
	ExpiresIn string `json:"expires_in,omitempty" example:"720h"`
}

// TokenResponse is the JSON representation of a personal access token. The
// hash is never exposed.
type TokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	RevokedAt  *time.Time `json:"revoked_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TokenCreatedResponse carries the plaintext token. It is returned exactly
// once, at creation.
type TokenCreatedResponse struct {
	TokenResponse
	Token string `json:"token"`
}

type TokenListResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

func toTokenResponse(rec *auth.TokenRecord) TokenResponse {
	resp := TokenResponse{ID: rec.ID, Name: rec.Name, CreatedAt: rec.CreatedAt}
	if rec.LastUsedAt.Valid {
		t := rec.LastUsedAt.Time
		resp.LastUsedAt = &t
	}
	if rec.ExpiresAt.Valid {
		t := rec.ExpiresAt.Time
		resp.ExpiresAt = &t
	}
	if rec.RevokedAt.Valid {
		t := rec.RevokedAt.Time
		resp.RevokedAt = &t
	}
	return resp
}
