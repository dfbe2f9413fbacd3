package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/comments"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/resolver"
	"github.com/goliatone/go-newsroom/internal/richtext"
	"github.com/goliatone/go-newsroom/internal/runtimeconfig"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// PublicAPI serves the site-facing endpoints.
type PublicAPI struct {
	basePath string
	reader   resolver.Service
	comments comments.Service
	renderer *richtext.Renderer
	logger   interfaces.Logger
	now      func() time.Time

	site     runtimeconfig.SiteConfig
	sitemaps bool
	sources  *runtimeconfig.SourcesConfig
	limiter  *rateLimiter
}

// PublicOption mutates the PublicAPI configuration.
type PublicOption func(*PublicAPI)

// NewPublicAPI constructs a PublicAPI instance.
func NewPublicAPI(opts ...PublicOption) *PublicAPI {
	api := &PublicAPI{
		basePath: "/api",
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	if api.renderer == nil {
		api.renderer = richtext.New(richtext.Options{})
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) PublicOption {
	return func(api *PublicAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithReader wires the tiered read service.
func WithReader(reader resolver.Service) PublicOption {
	return func(api *PublicAPI) {
		api.reader = reader
	}
}

// WithCommentService wires the comment write path. Without it the comment
// endpoints answer 503.
func WithCommentService(service comments.Service) PublicOption {
	return func(api *PublicAPI) {
		api.comments = service
	}
}

// WithRenderer sets the renderer used for content_html.
func WithRenderer(renderer *richtext.Renderer) PublicOption {
	return func(api *PublicAPI) {
		api.renderer = renderer
	}
}

// WithLogger sets the access and handler logger.
func WithLogger(logger interfaces.Logger) PublicOption {
	return func(api *PublicAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// WithClock overrides time.Now for sitemaps and rate limiting.
func WithClock(now func() time.Time) PublicOption {
	return func(api *PublicAPI) {
		if now != nil {
			api.now = now
		}
	}
}

// WithSitemaps enables /sitemap.xml, /news-sitemap.xml and /robots.txt for
// site.
func WithSitemaps(site runtimeconfig.SiteConfig) PublicOption {
	return func(api *PublicAPI) {
		api.site = site
		api.sitemaps = true
	}
}

// WithDebugSources enables /debug/sources. Only presence of credentials is
// reported.
func WithDebugSources(cfg runtimeconfig.SourcesConfig) PublicOption {
	return func(api *PublicAPI) {
		api.sources = &cfg
	}
}

// WithCommentRateLimit throttles comment posts per client. A non-positive
// rate disables throttling.
func WithCommentRateLimit(perMinute float64, burst int) PublicOption {
	return func(api *PublicAPI) {
		if perMinute <= 0 {
			api.limiter = nil
			return
		}
		api.limiter = newRateLimiter(perMinute/60, max(burst, 1), func() time.Time { return api.now() })
	}
}

// Register attaches the endpoints to the provided mux.
func (api *PublicAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api.reader == nil {
		return fmt.Errorf("http: reader is required")
	}

	api.registerArticleRoutes(mux, api.basePath)
	api.registerPageRoutes(mux, api.basePath)
	api.registerCommentRoutes(mux, api.basePath)
	if api.sources != nil {
		mux.HandleFunc("GET "+joinPath(api.basePath, "debug/sources"), api.handleDebugSources)
	}
	if api.sitemaps {
		api.registerSitemapRoutes(mux)
	}
	return nil
}

// Handler returns a mux with every endpoint registered behind the request
// id and access log middleware.
func (api *PublicAPI) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		return nil, err
	}
	return requestLogging(api.logger, mux), nil
}
