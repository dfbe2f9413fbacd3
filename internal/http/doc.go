// Package http exposes the newsroom read API, the comment endpoints and the
// crawler documents over net/http.
//
// Routes mount under /api by default:
//   - Articles: /articles, /articles/featured, /articles/{slug}
//   - Categories: /categories, /categories/{slug}/articles
//   - Tickers and placements: /breaking-news, /trending, /advertisements
//   - Page bundles: /pages/home, /pages/article/{slug}
//   - Comments: GET and POST /comments
//   - Diagnostics: /debug/sources (opt-in)
//
// Crawler documents are served from the root: /sitemap.xml,
// /news-sitemap.xml and /robots.txt.
package http
