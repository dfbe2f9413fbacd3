package newsroom

import (
	"net/http"

	"github.com/goliatone/go-newsroom/internal/comments"
	"github.com/goliatone/go-newsroom/internal/di"
	"github.com/goliatone/go-newsroom/internal/domain"
	newsroomhttp "github.com/goliatone/go-newsroom/internal/http"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/resolver"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// Article exports the canonical article record.
type Article = domain.Article

// Category exports the canonical category record.
type Category = domain.Category

// Author exports the canonical author record.
type Author = domain.Author

// BreakingNews exports the ticker headline record.
type BreakingNews = domain.BreakingNews

// Advertisement exports the sponsored placement record.
type Advertisement = domain.Advertisement

// AdPosition exports the placement slot type.
type AdPosition = domain.AdPosition

// Comment exports the reader comment record.
type Comment = domain.Comment

// ContentReader exports the read API contract.
type ContentReader = interfaces.ContentReader

// ReadService exports the tiered read service, including page bundles.
type ReadService = resolver.Service

// CommentService exports the comment write path contract.
type CommentService = comments.Service

// CommentRequest exports the comment payload.
type CommentRequest = comments.CreateRequest

// Module represents the top level newsroom runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a newsroom module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Reader returns the tiered read service.
func (m *Module) Reader() ReadService {
	return m.container.Reader()
}

// Comments returns the comment write service.
func (m *Module) Comments() CommentService {
	return m.container.Comments()
}

// Handler builds the public HTTP API from the module configuration.
func (m *Module) Handler() (http.Handler, error) {
	cfg := m.container.Config
	opts := []newsroomhttp.PublicOption{
		newsroomhttp.WithReader(m.container.Reader()),
		newsroomhttp.WithCommentService(m.container.Comments()),
		newsroomhttp.WithRenderer(m.container.Renderer()),
		newsroomhttp.WithLogger(logging.HTTPLogger(m.container.LoggerProvider())),
		newsroomhttp.WithClock(m.container.Now),
		newsroomhttp.WithCommentRateLimit(cfg.Comments.RatePerMinute, cfg.Comments.Burst),
	}
	if cfg.Features.Sitemap {
		opts = append(opts, newsroomhttp.WithSitemaps(cfg.Site))
	}
	if cfg.Features.Debug {
		opts = append(opts, newsroomhttp.WithDebugSources(cfg.Sources))
	}
	return newsroomhttp.NewPublicAPI(opts...).Handler()
}

// Close releases resources the module opened.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
