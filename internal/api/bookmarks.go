package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/bookmarks"
	"github.com/joestump/joe-bookmarks/internal/logger"
)

const maxBodyBytes = 1 << 20

type bookmarksAPIHandler struct {
	svc *bookmarks.Service
	log logger.Logger
}

func registerBookmarkRoutes(r chi.Router, svc *bookmarks.Service, log logger.Logger) {
	h := &bookmarksAPIHandler{svc: svc, log: log}
	r.Route("/bookmarks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/stats", h.Stats)
		r.Get("/{id:[0-9]+}", h.Get)
		r.Put("/{id:[0-9]+}", h.Update)
		r.Patch("/{id:[0-9]+}", h.Update)
		r.Delete("/{id:[0-9]+}", h.Delete)
	})
}

// Create adds a bookmark for the caller.
//
// @Summary      Create a bookmark
// @Description  Validates the url, rejects urls that are already bookmarked by anyone, and assigns a short url.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        body  body      BookmarkRequest  true  "Bookmark"
// @Success      201   {object}  BookmarkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/ [post]
func (h *bookmarksAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	req, ok := decodeBookmarkRequest(w, r)
	if !ok {
		return
	}

	b, err := h.svc.Create(r.Context(), uid, req.URL, req.Body)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookmarkResponse(b))
}

// List returns one page of the caller's bookmarks, oldest first.
//
// @Summary      List bookmarks
// @Tags         Bookmarks
// @Produce      json
// @Param        page      query     int  false  "Page number (default 1)"
// @Param        per_page  query     int  false  "Page size (default 5, max 100)"
// @Success      200       {object}  BookmarkListResponse
// @Failure      401       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/ [get]
func (h *bookmarksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	page, perPage := parsePagination(r)

	p, err := h.svc.List(r.Context(), uid, page, perPage)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(p))
}

// Get returns one of the caller's bookmarks.
//
// @Summary      Get a bookmark
// @Tags         Bookmarks
// @Produce      json
// @Param        id   path      int  true  "Bookmark ID"
// @Success      200  {object}  BookmarkResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  MessageResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [get]
func (h *bookmarksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	b, err := h.svc.Get(r.Context(), uid, id)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

// Update replaces url and body of one of the caller's bookmarks. PATCH is
// accepted as an alias and also requires url.
//
// @Summary      Update a bookmark
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Bookmark ID"
// @Param        body  body      BookmarkRequest  true  "New url and body"
// @Success      200   {object}  BookmarkResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  MessageResponse
// @Failure      409   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [put]
// @Router       /bookmarks/{id} [patch]
func (h *bookmarksAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}
	req, ok := decodeBookmarkRequest(w, r)
	if !ok {
		return
	}

	b, err := h.svc.Update(r.Context(), uid, id, req.URL, req.Body)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

// Delete removes one of the caller's bookmarks.
//
// @Summary      Delete a bookmark
// @Tags         Bookmarks
// @Param        id   path  int  true  "Bookmark ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  MessageResponse
// @Security     BearerToken
// @Router       /bookmarks/{id} [delete]
func (h *bookmarksAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), uid, id); err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats reports visit counts for every bookmark the caller owns.
//
// @Summary      Visit stats
// @Tags         Bookmarks
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /bookmarks/stats [get]
func (h *bookmarksAPIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	items, err := h.svc.Stats(r.Context(), uid)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(items))
}

func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid := auth.UserIDFromContext(r.Context())
	if uid == "" {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return "", false
	}
	return uid, true
}

// bookmarkID parses the {id} path segment. Ids too large for int64 cannot
// exist, so they are reported as not found.
func bookmarkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: msgBookmarkNotFound})
		return 0, false
	}
	return id, true
}

func decodeBookmarkRequest(w http.ResponseWriter, r *http.Request) (BookmarkRequest, bool) {
	var req BookmarkRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return req, false
	}
	return req, true
}
