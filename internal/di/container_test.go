package di_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-newsroom/internal/comments"
	"github.com/goliatone/go-newsroom/internal/di"
	"github.com/goliatone/go-newsroom/internal/runtimeconfig"
	"github.com/goliatone/go-newsroom/internal/sources"
	"github.com/goliatone/go-newsroom/internal/sources/memory"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func quietConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = false
	return cfg
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := quietConfig()
	cfg.Resolver.Timeout = 0

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrResolverTimeoutInvalid) {
		t.Fatalf("expected ErrResolverTimeoutInvalid, got %v", err)
	}
}

func TestContainerDefaultTierOrder(t *testing.T) {
	container, err := di.NewContainer(quietConfig(), di.WithClock(clock))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	defer container.Close()

	statuses := container.Reader().Tiers()
	want := []string{"contentful", "postgrest", "database", "memory"}
	if len(statuses) != len(want) {
		t.Fatalf("expected %d tiers, got %#v", len(want), statuses)
	}
	for i, status := range statuses {
		if status.Name != want[i] {
			t.Fatalf("tier %d: expected %s got %s", i, want[i], status.Name)
		}
		if status.Configured {
			t.Fatalf("tier %s unexpectedly configured", status.Name)
		}
	}

	if got := container.Reader().Articles(context.Background(), 5); len(got) != 0 {
		t.Fatalf("expected no articles with every tier off, got %d", len(got))
	}
	if container.Comments().Available() {
		t.Fatalf("expected comments unavailable without a backend")
	}
}

func TestContainerServesMockCatalog(t *testing.T) {
	cfg := quietConfig()
	cfg.Sources.Mock.Enabled = true

	container, err := di.NewContainer(cfg, di.WithClock(clock))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	articles := container.Reader().Articles(context.Background(), 3)
	if len(articles) != 3 {
		t.Fatalf("expected 3 mock articles, got %d", len(articles))
	}
	if !articles[0].PublishedAt.After(articles[1].PublishedAt) {
		t.Fatalf("expected newest first")
	}
}

func TestContainerUsesInjectedTiers(t *testing.T) {
	catalog := memory.SampleCatalog(fixedNow)
	catalog.Articles = catalog.Articles[:2]

	container, err := di.NewContainer(quietConfig(),
		di.WithTiers(memory.New(true, memory.WithCatalog(catalog))),
	)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if got := container.Reader().Articles(context.Background(), 10); len(got) != 2 {
		t.Fatalf("expected injected catalog articles, got %d", len(got))
	}
	if statuses := container.Reader().Tiers(); len(statuses) != 1 || statuses[0].Name != memory.Name {
		t.Fatalf("unexpected tiers %#v", statuses)
	}
}

func TestContainerCommentStores(t *testing.T) {
	t.Run("injected store", func(t *testing.T) {
		store := comments.NewMemoryStore(clock)
		container, err := di.NewContainer(quietConfig(), di.WithCommentStore(store))
		if err != nil {
			t.Fatalf("NewContainer: %v", err)
		}
		created, err := container.Comments().Create(context.Background(), comments.CreateRequest{
			ArticleSlug: "budget-2026",
			AuthorName:  "Ama",
			Content:     "Clear analysis.",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		listed, err := store.List(context.Background(), "budget-2026")
		if err != nil || len(listed) != 1 || listed[0].ID != created.ID {
			t.Fatalf("expected comment in injected store, got %#v (%v)", listed, err)
		}
	})

	t.Run("memory fallback", func(t *testing.T) {
		cfg := quietConfig()
		cfg.Comments.MemoryFallback = true
		container, err := di.NewContainer(cfg)
		if err != nil {
			t.Fatalf("NewContainer: %v", err)
		}
		if !container.Comments().Available() {
			t.Fatalf("expected memory fallback to make comments available")
		}
	})

	t.Run("feature disabled", func(t *testing.T) {
		cfg := quietConfig()
		cfg.Features.Comments = false
		cfg.Comments.MemoryFallback = true
		container, err := di.NewContainer(cfg, di.WithCommentStore(comments.NewMemoryStore(clock)))
		if err != nil {
			t.Fatalf("NewContainer: %v", err)
		}
		if container.Comments().Available() {
			t.Fatalf("expected comments unavailable when the feature is off")
		}
	})
}

func TestContainerSeedsDatabaseTier(t *testing.T) {
	cfg := quietConfig()
	cfg.Sources.Database = runtimeconfig.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:di_container_seed?mode=memory&cache=shared",
		Seed:   true,
	}

	container, err := di.NewContainer(cfg, di.WithClock(clock))
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}()

	var databaseOn bool
	for _, status := range container.Reader().Tiers() {
		if status.Name == "database" {
			databaseOn = status.Configured
		}
	}
	if !databaseOn {
		t.Fatalf("expected database tier configured")
	}

	article := container.Reader().ArticleBySlug(context.Background(), "tech-hub-accra-jobs")
	if article == nil {
		t.Fatalf("expected article from seeded database tier")
	}
	if article.Category.Slug != "technology" {
		t.Fatalf("expected category relation, got %#v", article.Category)
	}

	if !container.Comments().Available() {
		t.Fatalf("expected database comment store")
	}
}

func TestContainerRequiresDatabaseDSN(t *testing.T) {
	cfg := quietConfig()
	cfg.Sources.Database = runtimeconfig.DatabaseConfig{Driver: "sqlite", DSN: ""}
	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrDatabaseDSNRequired) {
		t.Fatalf("expected ErrDatabaseDSNRequired, got %v", err)
	}
}

var _ sources.Adapter = (*memory.Adapter)(nil)
