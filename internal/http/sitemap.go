package http

import (
	"net/http"

	"github.com/goliatone/go-newsroom/internal/sitemap"
)

const (
	sitemapArticleLimit = 100
	crawlerCacheControl = "public, max-age=60, s-maxage=60"
)

func (api *PublicAPI) registerSitemapRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /sitemap.xml", api.handleSitemap)
	mux.HandleFunc("GET /news-sitemap.xml", api.handleNewsSitemap)
	mux.HandleFunc("GET /robots.txt", api.handleRobots)
}

func (api *PublicAPI) handleSitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	doc, err := sitemap.Build(api.site.URL,
		api.reader.Articles(ctx, sitemapArticleLimit),
		api.reader.Categories(ctx),
		api.now(),
	)
	api.writeXML(w, r, doc, err)
}

func (api *PublicAPI) handleNewsSitemap(w http.ResponseWriter, r *http.Request) {
	doc, err := sitemap.BuildNews(api.site.URL,
		sitemap.Publication{Name: api.site.Name, Language: api.site.Language},
		api.reader.Articles(r.Context(), sitemapArticleLimit),
	)
	api.writeXML(w, r, doc, err)
}

func (api *PublicAPI) writeXML(w http.ResponseWriter, r *http.Request, doc []byte, err error) {
	if err != nil {
		api.logger.WithContext(r.Context()).Error("http.sitemap_failed", "path", r.URL.Path, "error", err)
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", crawlerCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (api *PublicAPI) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", crawlerCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sitemap.Robots(api.site.URL)))
}
