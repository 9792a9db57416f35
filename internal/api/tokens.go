package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-bookmarks/internal/auth"
	"github.com/joestump/joe-bookmarks/internal/logger"
	"github.com/joestump/joe-bookmarks/internal/store"
)

type tokensAPIHandler struct {
	tokens auth.TokenStore
	log    logger.Logger
}

func registerTokenRoutes(r chi.Router, tokens auth.TokenStore, log logger.Logger) {
	h := &tokensAPIHandler{tokens: tokens, log: log}
	r.Get("/tokens", h.List)
	r.Post("/tokens", h.Create)
	r.Delete("/tokens/{id}", h.Revoke)
}

// List returns the caller's personal access tokens, newest first.
//
// @Summary      List personal access tokens
// @Tags         Tokens
// @Produce      json
// @Success      200  {object}  TokenListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tokens [get]
func (h *tokensAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	records, err := h.tokens.ListByUser(r.Context(), uid)
	if err != nil {
		h.log.Error("list tokens", logger.String("user_id", uid), logger.Error(err))
		writeError(w, http.StatusInternalServerError, msgSomethingWrong)
		return
	}

	resp := TokenListResponse{Tokens: make([]TokenResponse, 0, len(records))}
	for _, rec := range records {
		resp.Tokens = append(resp.Tokens, toTokenResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create mints a token and returns its plaintext. The plaintext is never
// shown again.
//
// @Summary      Create a personal access token
// @Tags         Tokens
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTokenRequest  true  "Token name and optional lifetime"
// @Success      201   {object}  TokenCreatedResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tokens [post]
func (h *tokensAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	var req CreateTokenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, msgTokenNameRequired)
		return
	}

	var expiresAt *time.Time
	if req.ExpiresIn != "" {
		d, err := time.ParseDuration(req.ExpiresIn)
		if err != nil || d <= 0 {
			writeError(w, http.StatusBadRequest, msgInvalidExpiresIn)
			return
		}
		t := time.Now().Add(d)
		expiresAt = &t
	}

	plaintext, hash, err := auth.GenerateToken()
	if err != nil {
		h.log.Error("generate token", logger.Error(err))
		writeError(w, http.StatusInternalServerError, msgSomethingWrong)
		return
	}
	rec, err := h.tokens.Create(r.Context(), uid, req.Name, hash, expiresAt)
	if err != nil {
		h.log.Error("create token", logger.String("user_id", uid), logger.Error(err))
		writeError(w, http.StatusInternalServerError, msgSomethingWrong)
		return
	}

	writeJSON(w, http.StatusCreated, TokenCreatedResponse{TokenResponse: toTokenResponse(rec), Token: plaintext})
}

// Revoke disables one of the caller's tokens. Tokens of other users are
// reported as not found.
//
// @Summary      Revoke a personal access token
// @Tags         Tokens
// @Param        id   path  string  true  "Token ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tokens/{id} [delete]
func (h *tokensAPIHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	err := h.tokens.Revoke(r.Context(), chi.URLParam(r, "id"), uid)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if err != nil {
		h.log.Error("revoke token", logger.String("user_id", uid), logger.Error(err))
		writeError(w, http.StatusInternalServerError, msgSomethingWrong)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
