package normalize_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/normalize"
	"github.com/goliatone/go-newsroom/internal/sources"
)

func TestArticleFromEntry(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	row := &sources.EntryRow{
		ID:        "art-1",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
		Fields: map[string]any{
			"title":         "Budget passes",
			"slug":          "  budget-passes \n",
			"excerpt":       "Parliament approves",
			"featuredImage": &sources.AssetRow{URL: "//images.ctfassets.net/p.jpg"},
			"category": &sources.EntryRow{ID: "cat-1", Fields: map[string]any{
				"name": "Business", "slug": " business ", "color": "#0066CC",
			}},
			"author": &sources.EntryRow{ID: "au-1", Fields: map[string]any{
				"name": "Ama Serwaa", "slug": "ama-serwaa",
				"avatar": &sources.AssetRow{URL: "//images.ctfassets.net/a.jpg"},
			}},
			"isFeatured": true,
			"readTime":   float64(5),
			"tags":       []any{"economy", "parliament"},
			"content":    map[string]any{"nodeType": "document"},
		},
	}

	article, ok := normalize.Article(row)
	if !ok {
		t.Fatalf("expected article")
	}
	if article.Slug != "budget-passes" {
		t.Fatalf("slug not trimmed: %q", article.Slug)
	}
	if article.FeaturedImage != "https://images.ctfassets.net/p.jpg" {
		t.Fatalf("unexpected featured image %q", article.FeaturedImage)
	}
	if article.Category.ID != "cat-1" || article.Category.Slug != "business" {
		t.Fatalf("unexpected category %+v", article.Category)
	}
	if article.Author.Avatar == nil || *article.Author.Avatar != "https://images.ctfassets.net/a.jpg" {
		t.Fatalf("unexpected avatar %v", article.Author.Avatar)
	}
	if !article.PublishedAt.Equal(created) || article.UpdatedAt == nil || !article.UpdatedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("unexpected timestamps %v %v", article.PublishedAt, article.UpdatedAt)
	}
	if !article.IsFeatured || article.IsBreaking {
		t.Fatalf("unexpected flags featured=%v breaking=%v", article.IsFeatured, article.IsBreaking)
	}
	if article.ReadTime == nil || *article.ReadTime != 5 {
		t.Fatalf("unexpected read time %v", article.ReadTime)
	}
	if len(article.Tags) != 2 || article.Tags[1] != "parliament" {
		t.Fatalf("unexpected tags %v", article.Tags)
	}
	if _, ok := article.Content.(map[string]any); !ok {
		t.Fatalf("expected rich document content, got %T", article.Content)
	}
}

func TestArticleDefaults(t *testing.T) {
	rows := map[string]sources.Row{
		"entry":  &sources.EntryRow{ID: "a", Fields: map[string]any{"title": "Bare"}},
		"record": sources.RecordRow{"id": "a", "title": "Bare", "category": nil, "author": nil, "tags": nil},
		"value":  sources.RecordValue{Value: &domain.Article{ID: "a", Title: "Bare"}},
	}
	for name, row := range rows {
		t.Run(name, func(t *testing.T) {
			article, ok := normalize.Article(row)
			if !ok {
				t.Fatalf("expected article")
			}
			if article.Category == nil || article.Category.Name != "Uncategorized" || article.Category.Slug != "uncategorized" || article.Category.ID != "" {
				t.Fatalf("unexpected category default %+v", article.Category)
			}
			if article.Author == nil || article.Author.Name != "Staff Writer" || article.Author.Slug != "staff-writer" {
				t.Fatalf("unexpected author default %+v", article.Author)
			}
			if article.Tags == nil || len(article.Tags) != 0 {
				t.Fatalf("expected empty tags, got %#v", article.Tags)
			}
			if article.IsBreaking || article.IsFeatured || article.ReadTime != nil || article.Content != nil {
				t.Fatalf("unexpected optional values %+v", article)
			}
		})
	}
}

func TestArticleRelationsWithBlankNames(t *testing.T) {
	rows := map[string]sources.Row{
		"entry": &sources.EntryRow{ID: "a", Fields: map[string]any{
			"title":    "Unnamed",
			"category": &sources.EntryRow{ID: "c1", Fields: map[string]any{"slug": "news"}},
			"author":   &sources.EntryRow{ID: "au1", Fields: map[string]any{"name": "  ", "slug": "ama"}},
		}},
		"record": sources.RecordRow{
			"id":       "a",
			"title":    "Unnamed",
			"category": map[string]any{"id": "c1", "name": "", "slug": "news"},
			"author":   map[string]any{"id": "au1", "slug": "ama"},
		},
	}
	for name, row := range rows {
		t.Run(name, func(t *testing.T) {
			article, ok := normalize.Article(row)
			if !ok {
				t.Fatalf("expected article")
			}
			if article.Category.Name != "Uncategorized" || article.Category.ID != "c1" || article.Category.Slug != "news" {
				t.Fatalf("unexpected category %+v", article.Category)
			}
			if article.Author.Name != "Staff Writer" || article.Author.ID != "au1" || article.Author.Slug != "ama" {
				t.Fatalf("unexpected author %+v", article.Author)
			}
		})
	}
}

func TestArticleFromRecord(t *testing.T) {
	row := sources.RecordRow{
		"id":             json.Number("42"),
		"title":          "Cocoa support",
		"slug":           " cocoa-support ",
		"content":        "## Heading",
		"featured_image": "https://cdn.example/c.jpg",
		"published_at":   "2026-03-14T09:30:00+00:00",
		"updated_at":     nil,
		"is_breaking":    true,
		"read_time":      json.Number("0"),
		"tags":           []any{"Agriculture", "Cocoa"},
		"category":       map[string]any{"id": "c1", "name": "News", "slug": "news", "description": "", "color": "#E60000"},
		"author":         map[string]any{"id": "au1", "name": "Ama", "slug": "ama", "avatar": nil},
	}

	article, ok := normalize.Article(row)
	if !ok {
		t.Fatalf("expected article")
	}
	if article.ID != "42" || article.Slug != "cocoa-support" {
		t.Fatalf("unexpected identity %q %q", article.ID, article.Slug)
	}
	if want := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC); !article.PublishedAt.Equal(want) {
		t.Fatalf("unexpected published at %v", article.PublishedAt)
	}
	if article.UpdatedAt != nil {
		t.Fatalf("expected nil updated at")
	}
	if article.ReadTime != nil {
		t.Fatalf("non-positive read time must be dropped")
	}
	if article.Category.Description != nil || article.Category.Color == nil {
		t.Fatalf("unexpected category optionals %+v", article.Category)
	}
	if article.Author.Avatar != nil {
		t.Fatalf("expected nil avatar")
	}
	if article.Content != "## Heading" {
		t.Fatalf("unexpected content %v", article.Content)
	}
}

func TestArticleRejectsForeignRows(t *testing.T) {
	if _, ok := normalize.Article(nil); ok {
		t.Fatalf("nil row must be rejected")
	}
	if _, ok := normalize.Article(sources.RecordValue{Value: &domain.Category{}}); ok {
		t.Fatalf("category value must not normalize as article")
	}
}

func TestArticleFromValueIsCopy(t *testing.T) {
	stored := &domain.Article{ID: "1", Slug: "x", Tags: []string{"a"}}
	article, _ := normalize.Article(sources.RecordValue{Value: stored})
	article.Tags[0] = "changed"
	if stored.Tags[0] != "a" {
		t.Fatalf("normalizer must not share stored records")
	}
}

func TestBreakingURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "ghana-economy-recovery", want: "/article/ghana-economy-recovery"},
		{in: " ghana-economy-recovery ", want: "/article/ghana-economy-recovery"},
		{in: "/already/rooted", want: "/already/rooted"},
		{in: "https://external.example/x", want: "https://external.example/x"},
		{in: "mailto:desk@example.com", want: "mailto:desk@example.com"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := normalize.BreakingURL(tc.in)
			if got == nil || *got != tc.want {
				t.Fatalf("BreakingURL(%q) = %v, want %q", tc.in, got, tc.want)
			}
		})
	}
	if normalize.BreakingURL("  ") != nil {
		t.Fatalf("blank url must be nil")
	}
}

func TestBreakingNews(t *testing.T) {
	created := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	entry, ok := normalize.BreakingNews(&sources.EntryRow{
		ID:        "b1",
		CreatedAt: created,
		Fields:    map[string]any{"headline": "Budget passes", "url": "budget-passes"},
	})
	if !ok || entry.URL == nil || *entry.URL != "/article/budget-passes" || !entry.Timestamp.Equal(created) {
		t.Fatalf("unexpected entry breaking news %+v", entry)
	}

	record, ok := normalize.BreakingNews(sources.RecordRow{"id": "b2", "headline": "Storm", "url": nil, "timestamp": created})
	if !ok || record.URL != nil || !record.Timestamp.Equal(created) {
		t.Fatalf("unexpected record breaking news %+v", record)
	}
}

func TestAdvertisement(t *testing.T) {
	cases := []struct {
		name       string
		row        sources.Row
		ok         bool
		wantURL    string
		wantActive bool
		position   domain.AdPosition
	}{
		{
			name:       "entry defaults",
			row:        &sources.EntryRow{ID: "ad1", Fields: map[string]any{"name": "Leaderboard", "position": "banner", "image": &sources.AssetRow{URL: "//cdn/x.png"}}},
			ok:         true,
			wantURL:    "#",
			wantActive: true,
			position:   domain.AdPositionBanner,
		},
		{
			name:       "record with underscore slot",
			row:        sources.RecordRow{"id": "ad2", "name": "Native", "position": "in_article", "is_active": false, "url": "https://sponsor.example"},
			ok:         true,
			wantURL:    "https://sponsor.example",
			wantActive: false,
			position:   domain.AdPositionInArticle,
		},
		{
			name: "unknown slot",
			row:  sources.RecordRow{"id": "ad3", "position": "popup"},
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ad, ok := normalize.Advertisement(tc.row)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if ad.URL != tc.wantURL || ad.IsActive != tc.wantActive || ad.Position != tc.position {
				t.Fatalf("unexpected advertisement %+v", ad)
			}
		})
	}
}

func TestAdvertisementDates(t *testing.T) {
	ad, ok := normalize.Advertisement(&sources.EntryRow{ID: "ad", Fields: map[string]any{
		"position":  "sidebar",
		"startDate": "2026-03-01T00:00:00Z",
		"endDate":   "2026-03-31",
	}})
	if !ok {
		t.Fatalf("expected advertisement")
	}
	if ad.StartDate == nil || ad.EndDate == nil {
		t.Fatalf("expected parsed bounds, got %v %v", ad.StartDate, ad.EndDate)
	}
	if !ad.EligibleAt(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected eligible within window")
	}
	if ad.EligibleAt(time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected ineligible after window")
	}
}

func TestAbsoluteURLAndArticlePath(t *testing.T) {
	if got := normalize.AbsoluteURL("//cdn/x.png"); got != "https://cdn/x.png" {
		t.Fatalf("unexpected absolute url %q", got)
	}
	if got := normalize.AbsoluteURL("https://cdn/x.png"); got != "https://cdn/x.png" {
		t.Fatalf("absolute url changed: %q", got)
	}
	if got := normalize.ArticlePath(" budget-passes "); got != "/article/budget-passes" {
		t.Fatalf("unexpected article path %q", got)
	}
}
