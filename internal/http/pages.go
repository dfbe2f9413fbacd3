package http

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-newsroom/internal/resolver"
)

type articlePageResponse struct {
	*resolver.ArticlePage
	Article articleResponse `json:"article"`
}

func (api *PublicAPI) registerPageRoutes(mux *http.ServeMux, base string) {
	mux.HandleFunc("GET "+joinPath(base, "pages/home"), api.handleHomePage)
	mux.HandleFunc("GET "+joinPath(base, "pages/article/{slug}"), api.handleArticlePage)
}

func (api *PublicAPI) handleHomePage(w http.ResponseWriter, r *http.Request) {
	page := api.reader.HomePage(r.Context())
	page.Featured = orEmpty(page.Featured)
	page.Latest = orEmpty(page.Latest)
	page.Trending = orEmpty(page.Trending)
	page.BreakingNews = orEmpty(page.BreakingNews)
	page.BannerAds = orEmpty(page.BannerAds)
	page.SidebarAds = orEmpty(page.SidebarAds)
	writeJSON(w, http.StatusOK, page)
}

func (api *PublicAPI) handleArticlePage(w http.ResponseWriter, r *http.Request) {
	page := api.reader.ArticlePage(r.Context(), strings.TrimSpace(r.PathValue("slug")))
	if page == nil || page.Article == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: "article not found"})
		return
	}
	page.Related = orEmpty(page.Related)
	page.Trending = orEmpty(page.Trending)
	page.InArticleAds = orEmpty(page.InArticleAds)
	page.SidebarAds = orEmpty(page.SidebarAds)
	writeJSON(w, http.StatusOK, articlePageResponse{
		ArticlePage: page,
		Article:     api.renderArticle(r, page.Article),
	})
}
