package newsroom_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	newsroom "github.com/goliatone/go-newsroom"
	"github.com/goliatone/go-newsroom/internal/di"
)

func mockConfig() newsroom.Config {
	cfg := newsroom.DefaultConfig()
	cfg.Features.Logger = false
	cfg.Sources.Mock.Enabled = true
	cfg.Comments.MemoryFallback = true
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := mockConfig()
	cfg.HTTP.Addr = ""
	if _, err := newsroom.New(cfg); !errors.Is(err, newsroom.ErrHTTPAddrRequired) {
		t.Fatalf("expected ErrHTTPAddrRequired, got %v", err)
	}
}

func TestModuleReadAndCommentPaths(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	module, err := newsroom.New(mockConfig(), di.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	ctx := context.Background()
	var reader newsroom.ContentReader = module.Reader()

	if got := reader.Articles(ctx, 5); len(got) != 5 {
		t.Fatalf("expected 5 articles, got %d", len(got))
	}
	if article := reader.ArticleBySlug(ctx, "kente-weaving-unesco-recognition"); article == nil || article.Category.Slug != "arts-culture" {
		t.Fatalf("unexpected article %#v", article)
	}
	if got := reader.Advertisements(ctx, newsroom.AdPosition("banner")); len(got) != 1 {
		t.Fatalf("expected 1 banner ad, got %d", len(got))
	}

	created, err := module.Comments().Create(ctx, newsroom.CommentRequest{
		ArticleSlug: "kente-weaving-unesco-recognition",
		AuthorName:  "Esi",
		Content:     "Proud moment for the weavers.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("expected server timestamp %s, got %s", now, created.CreatedAt)
	}
}

func TestModuleHandler(t *testing.T) {
	cfg := mockConfig()
	cfg.Features.Debug = true

	module, err := newsroom.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer module.Close()

	handler, err := module.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}

	for path, want := range map[string]int{
		"/api/articles/featured": http.StatusOK,
		"/api/debug/sources":     http.StatusOK,
		"/sitemap.xml":           http.StatusOK,
		"/api/articles/missing":  http.StatusNotFound,
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != want {
			t.Fatalf("%s: expected %d got %d", path, want, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles/featured", nil))
	var featured []newsroom.Article
	if err := json.Unmarshal(rec.Body.Bytes(), &featured); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(featured) != 4 {
		t.Fatalf("expected 4 featured articles, got %d", len(featured))
	}
}

func TestModuleHandlerWithoutSitemaps(t *testing.T) {
	cfg := mockConfig()
	cfg.Features.Sitemap = false

	module, err := newsroom.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	handler, err := module.Handler()
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with sitemaps disabled, got %d", rec.Code)
	}
}
