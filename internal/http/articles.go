package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/resolver"
)

type articleResponse struct {
	*domain.Article
	ContentHTML string `json:"content_html,omitempty"`
}

func (api *PublicAPI) registerArticleRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+joinPath(base, "articles"), api.handleArticles)
	mux.HandleFunc("GET "+joinPath(base, "articles/featured"), api.handleFeatured)
	mux.HandleFunc("GET "+joinPath(base, "articles/{slug}"), api.handleArticle)
	mux.HandleFunc("GET "+joinPath(base, "categories"), api.handleCategories)
	mux.HandleFunc("GET "+joinPath(base, "categories/{slug}/articles"), api.handleCategoryArticles)
	mux.HandleFunc("GET "+joinPath(base, "breaking-news"), api.handleBreakingNews)
	mux.HandleFunc("GET "+joinPath(base, "trending"), api.handleTrending)
	mux.HandleFunc("GET "+joinPath(base, "advertisements"), api.handleAdvertisements)
}

func (api *PublicAPI) handleArticles(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, resolver.DefaultArticlesLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(api.reader.Articles(r.Context(), limit)))
}

func (api *PublicAPI) handleFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(api.reader.FeaturedArticles(r.Context())))
}

func (api *PublicAPI) handleArticle(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.PathValue("slug"))
	article := api.reader.ArticleBySlug(r.Context(), slug)
	if article == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: "article not found"})
		return
	}
	writeJSON(w, http.StatusOK, api.renderArticle(r, article))
}

func (api *PublicAPI) renderArticle(r *http.Request, article *domain.Article) articleResponse {
	resp := articleResponse{Article: article}
	html, err := api.renderer.Render(article.Content)
	if err != nil {
		api.logger.WithContext(r.Context()).Warn("http.render_failed",
			"slug", article.Slug,
			"error", err,
		)
		return resp
	}
	resp.ContentHTML = html
	return resp
}

func (api *PublicAPI) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(api.reader.Categories(r.Context())))
}

func (api *PublicAPI) handleCategoryArticles(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.PathValue("slug"))
	writeJSON(w, http.StatusOK, orEmpty(api.reader.ArticlesByCategory(r.Context(), slug)))
}

func (api *PublicAPI) handleBreakingNews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, orEmpty(api.reader.BreakingNews(r.Context())))
}

func (api *PublicAPI) handleTrending(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, resolver.DefaultTrendingLimit)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(api.reader.TrendingArticles(r.Context(), limit)))
}

func (api *PublicAPI) handleAdvertisements(w http.ResponseWriter, r *http.Request) {
	var position domain.AdPosition
	if raw := strings.TrimSpace(r.URL.Query().Get("position")); raw != "" {
		parsed, err := domain.ParseAdPosition(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
			return
		}
		position = parsed
	}
	writeJSON(w, http.StatusOK, orEmpty(api.reader.Advertisements(r.Context(), position)))
}
