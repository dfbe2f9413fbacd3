package http

import (
	"net/http"

	"github.com/goliatone/go-newsroom/internal/comments"
)

func (api *PublicAPI) registerCommentRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "comments")
	mux.HandleFunc("GET "+root, api.handleCommentList)
	mux.HandleFunc("POST "+root, api.handleCommentCreate)
}

func (api *PublicAPI) handleCommentList(w http.ResponseWriter, r *http.Request) {
	if api.comments == nil {
		writeError(w, comments.ErrUnavailable, "")
		return
	}
	list, err := api.comments.List(r.Context(), r.URL.Query().Get("slug"))
	if err != nil {
		writeError(w, err, "failed to fetch comments")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (api *PublicAPI) handleCommentCreate(w http.ResponseWriter, r *http.Request) {
	if api.limiter != nil && !api.limiter.allow(clientKey(r)) {
		w.Header().Set("Retry-After", api.limiter.retryAfter())
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Error:   "rate_limited",
			Message: "too many comments, try again shortly",
		})
		return
	}
	if api.comments == nil || !api.comments.Available() {
		writeError(w, comments.ErrUnavailable, "")
		return
	}

	var req comments.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid json body"})
		return
	}
	created, err := api.comments.Create(r.Context(), req)
	if err != nil {
		writeError(w, err, "failed to post comment")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
