package resolver

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-newsroom/internal/domain"
)

// HomePage bundles the reads behind the front page.
type HomePage struct {
	Featured     []*domain.Article       `json:"featured"`
	Latest       []*domain.Article       `json:"latest"`
	Trending     []*domain.Article       `json:"trending"`
	BreakingNews []*domain.BreakingNews  `json:"breaking_news"`
	BannerAds    []*domain.Advertisement `json:"banner_ads"`
	SidebarAds   []*domain.Advertisement `json:"sidebar_ads"`
}

// ArticlePage bundles the reads behind a single article view.
type ArticlePage struct {
	Article      *domain.Article         `json:"article"`
	Related      []*domain.Article       `json:"related"`
	Trending     []*domain.Article       `json:"trending"`
	InArticleAds []*domain.Advertisement `json:"in_article_ads"`
	SidebarAds   []*domain.Advertisement `json:"sidebar_ads"`
}

// HomePage runs the front page reads concurrently.
func (s *service) HomePage(ctx context.Context) HomePage {
	var page HomePage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page.Featured = s.FeaturedArticles(gctx)
		return nil
	})
	g.Go(func() error {
		page.Latest = s.Articles(gctx, DefaultArticlesLimit)
		return nil
	})
	g.Go(func() error {
		page.Trending = s.TrendingArticles(gctx, DefaultTrendingLimit)
		return nil
	})
	g.Go(func() error {
		page.BreakingNews = s.BreakingNews(gctx)
		return nil
	})
	g.Go(func() error {
		page.BannerAds = s.Advertisements(gctx, domain.AdPositionBanner)
		return nil
	})
	g.Go(func() error {
		page.SidebarAds = s.Advertisements(gctx, domain.AdPositionSidebar)
		return nil
	})

	_ = g.Wait()
	return page
}

// ArticlePage resolves the article first and then its surrounding reads
// concurrently. It returns nil when the article cannot be found.
func (s *service) ArticlePage(ctx context.Context, slug string) *ArticlePage {
	article := s.ArticleBySlug(ctx, slug)
	if article == nil {
		return nil
	}

	page := &ArticlePage{Article: article}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page.Related = relatedTo(article, s.ArticlesByCategory(gctx, article.Category.Slug))
		return nil
	})
	g.Go(func() error {
		page.Trending = s.TrendingArticles(gctx, DefaultTrendingLimit)
		return nil
	})
	g.Go(func() error {
		page.InArticleAds = s.Advertisements(gctx, domain.AdPositionInArticle)
		return nil
	})
	g.Go(func() error {
		page.SidebarAds = s.Advertisements(gctx, domain.AdPositionSidebar)
		return nil
	})

	_ = g.Wait()
	return page
}

func relatedTo(article *domain.Article, candidates []*domain.Article) []*domain.Article {
	out := make([]*domain.Article, 0, RelatedArticlesLimit)
	for _, candidate := range candidates {
		if len(out) == RelatedArticlesLimit {
			break
		}
		if candidate.ID == article.ID || candidate.Slug == article.Slug {
			continue
		}
		out = append(out, candidate)
	}
	return out
}
