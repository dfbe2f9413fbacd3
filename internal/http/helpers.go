package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-newsroom/internal/comments"
)

const maxLimit = 100

var errInvalidLimit = errors.New("limit must be a positive integer")

type errorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func joinPath(base, suffix string) string {
	trimmedBase := strings.Trim(strings.TrimSpace(base), "/")
	trimmedSuffix := strings.Trim(strings.TrimSpace(suffix), "/")
	switch {
	case trimmedBase == "" && trimmedSuffix == "":
		return "/"
	case trimmedBase == "":
		return "/" + trimmedSuffix
	case trimmedSuffix == "":
		return "/" + trimmedBase
	}
	return "/" + trimmedBase + "/" + trimmedSuffix
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(io.LimitReader(r.Body, 64<<10))
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error, failure string) {
	status, payload := mapError(err, failure)
	writeJSON(w, status, payload)
}

// mapError translates service errors. failure is the public message used
// for backend failures so store details never reach clients.
func mapError(err error, failure string) (int, errorResponse) {
	if err == nil {
		return http.StatusInternalServerError, errorResponse{Error: "unknown_error"}
	}

	if comments.IsValidation(err) {
		resp := errorResponse{
			Error:  "validation_failed",
			Code:   comments.ErrorCode(err),
			Fields: comments.FieldErrors(err),
		}
		resp.Message = validationMessage(resp)
		return http.StatusBadRequest, resp
	}

	if errors.Is(err, comments.ErrUnavailable) {
		return http.StatusServiceUnavailable, errorResponse{
			Error:   "service_unavailable",
			Message: "comments service unavailable",
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: failure,
		Code:    comments.ErrorCode(err),
	}
}

var codeFields = map[string]string{
	comments.CodeArticleSlugRequired: "article_slug",
	comments.CodeAuthorNameInvalid:   "author_name",
	comments.CodeContentInvalid:      "content",
}

func validationMessage(resp errorResponse) string {
	if field, ok := codeFields[resp.Code]; ok {
		if message, ok := resp.Fields[field]; ok {
			return field + ": " + message
		}
		if resp.Code == comments.CodeArticleSlugRequired {
			return "missing slug parameter"
		}
	}
	return "invalid request"
}

// parseLimit reads ?limit=, applying fallback when absent and capping at
// maxLimit.
func parseLimit(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errInvalidLimit
	}
	return min(limit, maxLimit), nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
