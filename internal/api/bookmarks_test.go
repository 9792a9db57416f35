package api_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/joestump/joe-bookmarks/internal/api"
)

func createBookmark(t *testing.T, env *testEnv, token, url, body string) api.BookmarkResponse {
	t.Helper()
	rec := do(t, env, http.MethodPost, "/bookmarks/", token, map[string]string{"url": url, "body": body})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create %s: status = %d; body: %s", url, rec.Code, rec.Body.String())
	}
	return decode[api.BookmarkResponse](t, rec)
}

func TestBookmarks_Create(t *testing.T) {
	env := newTestEnv(t)
	token := jwtFor(t, env, "alice")

	got := createBookmark(t, env, token, "https://go.dev", "docs")
	if got.ID == 0 || got.URL != "https://go.dev" || got.Body != "docs" || got.Visit != 0 {
		t.Errorf("created = %+v", got)
	}
	if len(got.ShortURL) < 6 {
		t.Errorf("short_url = %q, want at least 6 chars", got.ShortURL)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
}

func TestBookmarks_Create_WithoutTrailingSlash(t *testing.T) {
	env := newTestEnv(t)
	rec := do(t, env, http.MethodPost, "/bookmarks", jwtFor(t, env, "alice"), map[string]string{"url": "https://go.dev"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
}

func TestBookmarks_Create_Errors(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")
	bob := jwtFor(t, env, "bob")
	createBookmark(t, env, alice, "https://taken.example.com", "")

	tests := []struct {
		name     string
		token    string
		body     any
		wantCode int
		wantBody string
	}{
		{name: "invalid url", token: alice, body: map[string]string{"url": "not a url"},
			wantCode: http.StatusBadRequest, wantBody: `{"error":"Invalid URL"}`},
		{name: "missing url", token: alice, body: map[string]string{"body": "no url"},
			wantCode: http.StatusBadRequest, wantBody: `{"error":"Invalid URL"}`},
		{name: "duplicate same owner", token: alice, body: map[string]string{"url": "https://taken.example.com"},
			wantCode: http.StatusConflict, wantBody: `{"error":"Bookmark already exists"}`},
		{name: "duplicate other owner", token: bob, body: map[string]string{"url": "https://taken.example.com"},
			wantCode: http.StatusConflict, wantBody: `{"error":"Bookmark already exists"}`},
		{name: "malformed json", token: alice, body: `{"url":`,
			wantCode: http.StatusBadRequest, wantBody: `{"error":"Invalid request body"}`},
		{name: "unauthenticated", token: "", body: map[string]string{"url": "https://go.dev"},
			wantCode: http.StatusUnauthorized, wantBody: `{"error":"unauthorized"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, env, http.MethodPost, "/bookmarks/", tt.token, tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantCode, rec.Body.String())
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}

	// Only the seeded bookmark exists.
	n, err := env.Bookmarks.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("store holds %d bookmarks, want 1", n)
	}
}

func TestBookmarks_Get(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")
	created := createBookmark(t, env, alice, "https://go.dev", "docs")

	rec := do(t, env, http.MethodGet, fmt.Sprintf("/bookmarks/%d", created.ID), alice, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	got := decode[api.BookmarkResponse](t, rec)
	if got.ID != created.ID || got.URL != created.URL || got.ShortURL != created.ShortURL || got.Body != "docs" {
		t.Errorf("get = %+v, want %+v", got, created)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestBookmarks_NotFoundBodies(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")
	bob := jwtFor(t, env, "bob")
	b := createBookmark(t, env, alice, "https://go.dev", "")
	path := fmt.Sprintf("/bookmarks/%d", b.ID)
	notFound := `{"message":"Bookmark not found"}`

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{name: "get other owner", method: http.MethodGet, path: path},
		{name: "put other owner", method: http.MethodPut, path: path, body: map[string]string{"url": "https://evil.example.com"}},
		{name: "put other owner invalid url", method: http.MethodPut, path: path, body: map[string]string{"url": "bad"}},
		{name: "patch other owner", method: http.MethodPatch, path: path, body: map[string]string{"url": "https://evil.example.com"}},
		{name: "delete other owner", method: http.MethodDelete, path: path},
		{name: "get missing", method: http.MethodGet, path: "/bookmarks/424242"},
		{name: "get overflowing id", method: http.MethodGet, path: "/bookmarks/99999999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, env, tt.method, tt.path, bob, tt.body)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404; body: %s", rec.Code, rec.Body.String())
			}
			if got := strings.TrimSpace(rec.Body.String()); got != notFound {
				t.Errorf("body = %s, want %s", got, notFound)
			}
		})
	}

	// Alice's bookmark is untouched.
	rec := do(t, env, http.MethodGet, path, alice, nil)
	if got := decode[api.BookmarkResponse](t, rec); got.URL != "https://go.dev" {
		t.Errorf("url = %q after foreign writes", got.URL)
	}
}

func TestBookmarks_UnknownRoutes(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")

	rec := do(t, env, http.MethodGet, "/bookmarks/not-a-number", alice, nil)
	if rec.Code != http.StatusNotFound || strings.TrimSpace(rec.Body.String()) != `{"error":"Not found"}` {
		t.Errorf("non-numeric id: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, env, http.MethodGet, "/nope", alice, nil)
	if rec.Code != http.StatusNotFound || strings.TrimSpace(rec.Body.String()) != `{"error":"Not found"}` {
		t.Errorf("unknown path: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, env, http.MethodDelete, "/bookmarks/", alice, nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE collection: status = %d, want 405", rec.Code)
	}
}

func TestBookmarks_List_Pagination(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")
	for i := 0; i < 12; i++ {
		createBookmark(t, env, alice, fmt.Sprintf("https://example.com/%d", i), "")
	}
	createBookmark(t, env, jwtFor(t, env, "bob"), "https://bob.example.com", "")

	tests := []struct {
		query    string
		wantLen  int
		wantMeta api.PageMeta
	}{
		{query: "", wantLen: 5, wantMeta: api.PageMeta{Page: 1, Pages: 3, TotalCount: 12, HasNext: true}},
		{query: "?page=2", wantLen: 5, wantMeta: api.PageMeta{Page: 2, Pages: 3, TotalCount: 12, HasNext: true, HasPrev: true}},
		{query: "?page=3&per_page=5", wantLen: 2, wantMeta: api.PageMeta{Page: 3, Pages: 3, TotalCount: 12, HasPrev: true}},
		{query: "?per_page=20", wantLen: 12, wantMeta: api.PageMeta{Page: 1, Pages: 1, TotalCount: 12}},
		{query: "?page=abc&per_page=-1", wantLen: 5, wantMeta: api.PageMeta{Page: 1, Pages: 3, TotalCount: 12, HasNext: true}},
		{query: "?page=9", wantLen: 0, wantMeta: api.PageMeta{Page: 9, Pages: 3, TotalCount: 12, HasPrev: true}},
	}
	for _, tt := range tests {
		t.Run("list"+tt.query, func(t *testing.T) {
			rec := do(t, env, http.MethodGet, "/bookmarks/"+tt.query, alice, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
			}
			got := decode[api.BookmarkListResponse](t, rec)
			if got.Data == nil {
				t.Fatal("data is null, want array")
			}
			if len(got.Data) != tt.wantLen {
				t.Errorf("len(data) = %d, want %d", len(got.Data), tt.wantLen)
			}
			m := got.Meta
			w := tt.wantMeta
			if m.Page != w.Page || m.Pages != w.Pages || m.TotalCount != w.TotalCount || m.HasNext != w.HasNext || m.HasPrev != w.HasPrev {
				t.Errorf("meta = %+v, want %+v", m, w)
			}
			if (m.NextPage != nil) != m.HasNext || (m.PrevPage != nil) != m.HasPrev {
				t.Errorf("next/prev pages inconsistent with flags: %+v", m)
			}
		})
	}

	// Null next_page is serialized, not omitted.
	rec := do(t, env, http.MethodGet, "/bookmarks/?page=3", alice, nil)
	if body := rec.Body.String(); !strings.Contains(body, `"next_page":null`) || !strings.Contains(body, `"prev_page":2`) {
		t.Errorf("page 3 meta = %s", body)
	}
}

func TestBookmarks_Update(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")
	b := createBookmark(t, env, alice, "https://go.dev", "old")
	createBookmark(t, env, jwtFor(t, env, "bob"), "https://taken.example.com", "")
	path := fmt.Sprintf("/bookmarks/%d", b.ID)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			newURL := "https://go.dev/" + strings.ToLower(method)
			rec := do(t, env, method, path, alice, map[string]string{"url": newURL, "body": "new"})
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
			}
			got := decode[api.BookmarkResponse](t, rec)
			if got.URL != newURL || got.Body != "new" || got.ShortURL != b.ShortURL || got.ID != b.ID {
				t.Errorf("updated = %+v", got)
			}
			if !got.CreatedAt.Equal(b.CreatedAt) || !got.UpdatedAt.After(b.UpdatedAt) {
				t.Errorf("timestamps: created %v -> %v, updated %v -> %v", b.CreatedAt, got.CreatedAt, b.UpdatedAt, got.UpdatedAt)
			}
		})
	}

	rec := do(t, env, http.MethodPut, path, alice, map[string]string{"url": "nope"})
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != `{"error":"Invalid URL"}` {
		t.Errorf("invalid url: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, env, http.MethodPut, path, alice, map[string]string{"url": "https://taken.example.com"})
	if rec.Code != http.StatusConflict {
		t.Errorf("taken url: status = %d, want 409", rec.Code)
	}

	rec = do(t, env, http.MethodPut, path, alice, `not json`)
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != `{"error":"Invalid request body"}` {
		t.Errorf("malformed body: %d %s", rec.Code, rec.Body.String())
	}
}

func TestBookmarks_Delete(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")
	b := createBookmark(t, env, alice, "https://go.dev", "")
	path := fmt.Sprintf("/bookmarks/%d", b.ID)

	rec := do(t, env, http.MethodDelete, path, alice, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("204 body = %q, want empty", rec.Body.String())
	}

	if rec := do(t, env, http.MethodGet, path, alice, nil); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d, want 404", rec.Code)
	}
	if rec := do(t, env, http.MethodDelete, path, alice, nil); rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
}

func TestBookmarks_Stats(t *testing.T) {
	env := newTestEnv(t)
	alice := jwtFor(t, env, "alice")
	a := createBookmark(t, env, alice, "https://a.example.com", "")
	b := createBookmark(t, env, alice, "https://b.example.com", "")
	createBookmark(t, env, jwtFor(t, env, "bob"), "https://c.example.com", "")

	for i := 0; i < 2; i++ {
		if _, err := env.Redirector.Resolve(context.Background(), b.ShortURL); err != nil {
			t.Fatalf("Resolve: %v", err)
		}
	}

	rec := do(t, env, http.MethodGet, "/bookmarks/stats", alice, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	got := decode[api.StatsResponse](t, rec)
	want := []api.BookmarkStat{
		{Visits: 0, URL: a.URL, ID: a.ID, ShortURL: a.ShortURL},
		{Visits: 2, URL: b.URL, ID: b.ID, ShortURL: b.ShortURL},
	}
	if len(got.Data) != len(want) {
		t.Fatalf("len(data) = %d, want %d", len(got.Data), len(want))
	}
	for i := range want {
		if got.Data[i] != want[i] {
			t.Errorf("data[%d] = %+v, want %+v", i, got.Data[i], want[i])
		}
	}

	rec = do(t, env, http.MethodGet, "/bookmarks/stats", jwtFor(t, env, "carol"), nil)
	if body := strings.TrimSpace(rec.Body.String()); body != `{"data":[]}` {
		t.Errorf("empty stats = %s", body)
	}
}

func TestBookmarks_PersonalTokenAuth(t *testing.T) {
	env := newTestEnv(t)
	token := seedToken(t, env, "dana")

	createBookmark(t, env, token, "https://go.dev", "")
	rec := do(t, env, http.MethodGet, "/bookmarks/", token, nil)
	got := decode[api.BookmarkListResponse](t, rec)
	if got.Meta.TotalCount != 1 {
		t.Errorf("total_count = %d, want 1", got.Meta.TotalCount)
	}

	// The same uid through a JWT sees the same bookmarks.
	rec = do(t, env, http.MethodGet, "/bookmarks/", jwtFor(t, env, "dana"), nil)
	if got := decode[api.BookmarkListResponse](t, rec); got.Meta.TotalCount != 1 {
		t.Errorf("jwt total_count = %d, want 1", got.Meta.TotalCount)
	}
}
