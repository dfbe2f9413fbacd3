package database_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-newsroom/internal/identity"
	"github.com/goliatone/go-newsroom/internal/sources"
	"github.com/goliatone/go-newsroom/internal/sources/database"
	"github.com/goliatone/go-newsroom/internal/sources/memory"
	"github.com/goliatone/go-newsroom/pkg/testsupport"
)

func newSeededDB(t *testing.T, name string) *bun.DB {
	t.Helper()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	db, err := testsupport.NewSeededSQLiteDB(name, now)
	if err != nil {
		t.Fatalf("open seeded db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// A second seed must be a no-op.
	if err := database.Seed(context.Background(), db, memory.SampleCatalog(now)); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	return db
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := database.Open("oracle", "dsn"); !errors.Is(err, database.ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
	if _, err := database.Open("sqlite", " "); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestNormalizeDriver(t *testing.T) {
	cases := map[string]string{
		"pg":         database.DriverPostgres,
		"PostgreSQL": database.DriverPostgres,
		"sqlite3":    database.DriverSQLite,
		" sqlite ":   database.DriverSQLite,
	}
	for input, want := range cases {
		if got := database.NormalizeDriver(input); got != want {
			t.Fatalf("NormalizeDriver(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestAdapterUnconfigured(t *testing.T) {
	adapter := database.NewAdapter(nil)
	if adapter.Configured() {
		t.Fatalf("nil db must be unconfigured")
	}
	if _, err := adapter.Fetch(context.Background(), sources.Query{Kind: sources.KindArticle}); !sources.IsNotConfigured(err) {
		t.Fatalf("expected not configured, got %v", err)
	}
}

func TestAdapterArticleBySlugWithRelations(t *testing.T) {
	adapter := database.NewAdapter(newSeededDB(t, "db_adapter_slug"))

	rows, err := adapter.Fetch(context.Background(), sources.Query{
		Kind:    sources.KindArticle,
		Filters: []sources.Filter{sources.Equal(sources.FieldSlug, "tech-hub-accra-jobs")},
		Limit:   1,
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	record := rows[0].(sources.RecordRow)
	if record["title"] != "New Tech Hub Opens in Accra, Creating 5,000 Jobs for Young Ghanaians" {
		t.Fatalf("unexpected title %v", record["title"])
	}
	category, ok := record["category"].(map[string]any)
	if !ok || category["slug"] != "technology" {
		t.Fatalf("expected technology category, got %#v", record["category"])
	}
	author, ok := record["author"].(map[string]any)
	if !ok || author["slug"] != "yaw-boateng" {
		t.Fatalf("expected yaw-boateng author, got %#v", record["author"])
	}
	tags, ok := record["tags"].([]string)
	if !ok || len(tags) != 3 {
		t.Fatalf("unexpected tags %#v", record["tags"])
	}
}

func TestAdapterQueries(t *testing.T) {
	adapter := database.NewAdapter(newSeededDB(t, "db_adapter_queries"))
	ctx := context.Background()

	cases := []struct {
		name      string
		query     sources.Query
		want      int
		firstKey  string
		firstWant any
	}{
		{
			name:      "latest articles",
			query:     sources.Query{Kind: sources.KindArticle, Order: sources.NewestFirst(), Limit: 3},
			want:      3,
			firstKey:  "slug",
			firstWant: "ghana-economy-recovery-gdp-growth",
		},
		{
			name:  "featured",
			query: sources.Query{Kind: sources.KindArticle, Filters: []sources.Filter{sources.Equal(sources.FieldFeatured, "true")}},
			want:  4,
		},
		{
			name:  "by category id",
			query: sources.Query{Kind: sources.KindArticle, Filters: []sources.Filter{sources.Ref(sources.FieldCategory, identity.CategoryID("business"))}, Order: sources.NewestFirst()},
			want:  2,
		},
		{
			name:      "categories by name",
			query:     sources.Query{Kind: sources.KindCategory, Order: sources.ByName()},
			want:      15,
			firstKey:  "name",
			firstWant: "Arts & Culture",
		},
		{
			name:  "unknown category",
			query: sources.Query{Kind: sources.KindCategory, Filters: []sources.Filter{sources.Equal(sources.FieldSlug, "unknown-slug")}},
			want:  0,
		},
		{
			name:      "breaking news newest first",
			query:     sources.Query{Kind: sources.KindBreakingNews, Order: sources.NewestFirst(), Limit: 10},
			want:      4,
			firstKey:  "headline",
			firstWant: "BREAKING: Ghana's Economy Shows Strong Recovery Signs as GDP Growth Exceeds Expectations",
		},
		{
			name:  "active ads in sidebar",
			query: sources.Query{Kind: sources.KindAdvertisement, Filters: []sources.Filter{sources.Equal(sources.FieldActive, "true"), sources.Equal(sources.FieldPosition, "sidebar")}},
			want:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := adapter.Fetch(ctx, tc.query)
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if len(rows) != tc.want {
				t.Fatalf("expected %d rows, got %d", tc.want, len(rows))
			}
			if tc.firstKey != "" {
				if got := rows[0].(sources.RecordRow)[tc.firstKey]; got != tc.firstWant {
					t.Fatalf("first %s = %v, want %v", tc.firstKey, got, tc.firstWant)
				}
			}
		})
	}
}

func TestAdapterRejectsMatch(t *testing.T) {
	adapter := database.NewAdapter(newSeededDB(t, "db_adapter_match"))
	_, err := adapter.Fetch(context.Background(), sources.Query{
		Kind:    sources.KindArticle,
		Filters: []sources.Filter{sources.Match(sources.FieldSlug, "ghana")},
	})
	if !sources.IsTransportFailure(err) {
		t.Fatalf("expected transport failure, got %v", err)
	}
}
