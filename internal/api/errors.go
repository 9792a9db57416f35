package api

import (
	"encoding/json"
	"net/http"

	"github.com/joestump/joe-bookmarks/internal/errx"
	"github.com/joestump/joe-bookmarks/internal/logger"
)

const (
	msgInvalidURL        = "Invalid URL"
	msgBookmarkExists    = "Bookmark already exists"
	msgBookmarkNotFound  = "Bookmark not found"
	msgInvalidBody       = "Invalid request body"
	msgNotFound          = "Not found"
	msgMethodNotAllowed  = "Method not allowed"
	msgUnauthorized      = "unauthorized"
	msgSomethingWrong    = "Something went wrong"
	msgTokenNameRequired = "name is required"
	msgInvalidExpiresIn  = "expires_in must be a positive duration"
)

// ErrorResponse is the body of every API error except a missing bookmark.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of a 404 for a bookmark the caller cannot see.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps a bookmarks.Service error to its HTTP response by
// kind. Anything unclassified is logged and reported as a 500.
func writeServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	switch errx.KindOf(err) {
	case errx.Invalid:
		writeError(w, http.StatusBadRequest, msgInvalidURL)
	case errx.Conflict:
		writeError(w, http.StatusConflict, msgBookmarkExists)
	case errx.NotFound:
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: msgBookmarkNotFound})
	case errx.Unauthorized:
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
	default:
		log.Error("request failed", logger.String("op", errx.OpOf(err)), logger.Error(err))
		writeError(w, http.StatusInternalServerError, msgSomethingWrong)
	}
}
