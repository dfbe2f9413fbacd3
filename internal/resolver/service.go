// Package resolver answers content reads from an ordered list of tiers,
// falling through on failure or missing data.
package resolver

import (
	"context"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/normalize"
	"github.com/goliatone/go-newsroom/internal/sources"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

const (
	// DefaultTimeout bounds each adapter call.
	DefaultTimeout = 5 * time.Second

	DefaultArticlesLimit = 10
	DefaultTrendingLimit = 5
	MaxBreakingNews      = 10
	MaxCategories        = 100
	RelatedArticlesLimit = 4

	includeDepth = 2
)

// Service is the read surface plus the composed page bundles.
type Service interface {
	interfaces.ContentReader
	HomePage(ctx context.Context) HomePage
	ArticlePage(ctx context.Context, slug string) *ArticlePage
	Tiers() []TierStatus
}

// TierStatus reports whether a tier has the settings it needs. It never
// carries credentials.
type TierStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

// ServiceOption configures the resolver.
type ServiceOption func(*service)

// WithLogger sets the resolver logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout overrides the per-call adapter timeout.
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithClock sets the clock used for advertisement eligibility.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

type service struct {
	tiers   []sources.Adapter
	logger  interfaces.Logger
	timeout time.Duration
	now     func() time.Time
}

var _ Service = (*service)(nil)

// NewService builds a resolver over tiers, tried in the given order.
func NewService(tiers []sources.Adapter, opts ...ServiceOption) Service {
	s := &service{
		logger:  logging.NoOp(),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, tier := range tiers {
		if tier != nil {
			s.tiers = append(s.tiers, tier)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *service) Tiers() []TierStatus {
	out := make([]TierStatus, 0, len(s.tiers))
	for _, tier := range s.tiers {
		out = append(out, TierStatus{Name: tier.Name(), Configured: tier.Configured()})
	}
	return out
}

func (s *service) Articles(ctx context.Context, limit int) []*domain.Article {
	return s.latest(ctx, "articles", limit, DefaultArticlesLimit)
}

func (s *service) TrendingArticles(ctx context.Context, limit int) []*domain.Article {
	// Trending is recency until view counts exist in any backend.
	return s.latest(ctx, "trending_articles", limit, DefaultTrendingLimit)
}

func (s *service) latest(ctx context.Context, op string, limit, fallback int) []*domain.Article {
	if limit <= 0 {
		limit = fallback
	}
	q := sources.Query{
		Kind:    sources.KindArticle,
		Order:   sources.NewestFirst(),
		Limit:   limit,
		Include: includeDepth,
	}
	rows := s.resolve(ctx, op, false, s.single(q))
	return collect(rows, normalize.Article, limit)
}

func (s *service) FeaturedArticles(ctx context.Context) []*domain.Article {
	q := sources.Query{
		Kind:    sources.KindArticle,
		Filters: []sources.Filter{sources.Equal(sources.FieldFeatured, "true")},
		Order:   sources.NewestFirst(),
		Include: includeDepth,
	}
	rows := s.resolve(ctx, "featured_articles", true, s.single(q))
	return collect(rows, normalize.Article, 0)
}

func (s *service) ArticleBySlug(ctx context.Context, slug string) *domain.Article {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}

	rows := s.resolve(ctx, "article_by_slug", false, func(ctx context.Context, tier sources.Adapter) ([]sources.Row, bool, error) {
		exact := sources.Query{
			Kind:    sources.KindArticle,
			Filters: []sources.Filter{sources.Equal(sources.FieldSlug, slug)},
			Limit:   1,
			Include: includeDepth,
		}
		rows, err := s.fetch(ctx, tier, exact)
		if err != nil || len(rows) > 0 || !sources.SupportsMatch(tier) {
			return rows, false, err
		}

		pattern := exact
		pattern.Filters = []sources.Filter{sources.Match(sources.FieldSlug, slug)}
		rows, err = s.fetch(ctx, tier, pattern)
		return rows, false, err
	})

	articles := collect(rows, normalize.Article, 1)
	if len(articles) == 0 {
		return nil
	}
	return articles[0]
}

func (s *service) ArticlesByCategory(ctx context.Context, categorySlug string) []*domain.Article {
	categorySlug = strings.TrimSpace(categorySlug)
	if categorySlug == "" {
		return []*domain.Article{}
	}

	rows := s.resolve(ctx, "articles_by_category", false, func(ctx context.Context, tier sources.Adapter) ([]sources.Row, bool, error) {
		categoryRows, err := s.fetch(ctx, tier, sources.Query{
			Kind:    sources.KindCategory,
			Filters: []sources.Filter{sources.Equal(sources.FieldSlug, categorySlug)},
			Limit:   1,
		})
		if err != nil || len(categoryRows) == 0 {
			return nil, false, err
		}
		category, ok := normalize.Category(categoryRows[0])
		if !ok || category.ID == "" {
			return nil, false, nil
		}

		// The category exists in this tier, so its article list is final
		// even when empty.
		articleRows, err := s.fetch(ctx, tier, sources.Query{
			Kind:    sources.KindArticle,
			Filters: []sources.Filter{sources.Ref(sources.FieldCategory, category.ID)},
			Order:   sources.NewestFirst(),
			Include: includeDepth,
		})
		return articleRows, err == nil, err
	})
	return collect(rows, normalize.Article, 0)
}

func (s *service) Categories(ctx context.Context) []*domain.Category {
	q := sources.Query{
		Kind:  sources.KindCategory,
		Order: sources.ByName(),
		Limit: MaxCategories,
	}
	rows := s.resolve(ctx, "categories", false, s.single(q))
	return collect(rows, normalize.Category, 0)
}

func (s *service) BreakingNews(ctx context.Context) []*domain.BreakingNews {
	q := sources.Query{
		Kind:  sources.KindBreakingNews,
		Order: sources.NewestFirst(),
		Limit: MaxBreakingNews,
	}
	rows := s.resolve(ctx, "breaking_news", true, s.single(q))
	return collect(rows, normalize.BreakingNews, MaxBreakingNews)
}

func (s *service) Advertisements(ctx context.Context, position domain.AdPosition) []*domain.Advertisement {
	q := sources.Query{
		Kind:    sources.KindAdvertisement,
		Order:   sources.NewestFirst(),
		Include: 1,
	}
	if position != "" {
		parsed, err := domain.ParseAdPosition(string(position))
		if err != nil {
			return []*domain.Advertisement{}
		}
		position = parsed
		q.Filters = append(q.Filters, sources.Equal(sources.FieldPosition, string(position)))
	}

	rows := s.resolve(ctx, "advertisements", true, s.single(q))

	now := s.now()
	out := make([]*domain.Advertisement, 0, len(rows))
	for _, ad := range collect(rows, normalize.Advertisement, 0) {
		if position != "" && ad.Position != position {
			continue
		}
		if ad.EligibleAt(now) {
			out = append(out, ad)
		}
	}
	return out
}

// collect normalizes rows, drops the ones that do not fit the kind and caps
// the result at limit when limit is positive.
func collect[T any](rows []sources.Row, fn func(sources.Row) (*T, bool), limit int) []*T {
	out := make([]*T, 0, len(rows))
	for _, row := range rows {
		if limit > 0 && len(out) == limit {
			break
		}
		if record, ok := fn(row); ok {
			out = append(out, record)
		}
	}
	return out
}
