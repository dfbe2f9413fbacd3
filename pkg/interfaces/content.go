package interfaces

import (
	"context"

	"github.com/goliatone/go-newsroom/internal/domain"
)

// ContentReader is the read-only query surface consumed by the rendering
// layer. Implementations never return errors: an unavailable backend shows up
// as an empty slice or a nil record.
type ContentReader interface {
	Articles(ctx context.Context, limit int) []*domain.Article
	FeaturedArticles(ctx context.Context) []*domain.Article
	ArticleBySlug(ctx context.Context, slug string) *domain.Article
	ArticlesByCategory(ctx context.Context, categorySlug string) []*domain.Article
	Categories(ctx context.Context) []*domain.Category
	BreakingNews(ctx context.Context) []*domain.BreakingNews
	TrendingArticles(ctx context.Context, limit int) []*domain.Article
	Advertisements(ctx context.Context, position domain.AdPosition) []*domain.Advertisement
}
