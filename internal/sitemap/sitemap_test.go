package sitemap_test

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/sitemap"
)

var now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func sampleArticles() []*domain.Article {
	return []*domain.Article{
		{Slug: "budget-2026", Title: "Budget & Beyond <Live>", IsFeatured: true, PublishedAt: now.Add(-time.Hour)},
		{Slug: "market-report", Title: "Market report", PublishedAt: now.Add(-2 * time.Hour)},
		{Slug: "", Title: "no slug"},
	}
}

func TestEntries(t *testing.T) {
	categories := []*domain.Category{{Slug: "politics"}, {Slug: "sports"}, nil}

	entries := sitemap.Entries("https://news.example.com/", sampleArticles(), categories, now)
	if len(entries) != 7+2+2 {
		t.Fatalf("expected 11 entries, got %d", len(entries))
	}

	home := entries[0]
	if home.Loc != "https://news.example.com" || home.ChangeFreq != sitemap.Hourly || home.Priority != "1.0" {
		t.Fatalf("unexpected home entry %#v", home)
	}
	if entries[6].Loc != "https://news.example.com/media/podcasts" {
		t.Fatalf("unexpected last static entry %#v", entries[6])
	}

	category := entries[7]
	if category.Loc != "https://news.example.com/category/politics" || category.ChangeFreq != sitemap.Hourly || category.Priority != "0.8" {
		t.Fatalf("unexpected category entry %#v", category)
	}

	featured, regular := entries[9], entries[10]
	if featured.Loc != "https://news.example.com/article/budget-2026" || featured.Priority != "0.9" || featured.ChangeFreq != sitemap.Daily {
		t.Fatalf("unexpected featured entry %#v", featured)
	}
	if featured.LastMod != "2026-03-14T11:00:00Z" {
		t.Fatalf("unexpected lastmod %q", featured.LastMod)
	}
	if regular.Priority != "0.7" {
		t.Fatalf("unexpected regular priority %q", regular.Priority)
	}
}

func TestBuild(t *testing.T) {
	out, err := sitemap.Build("https://news.example.com", sampleArticles()[:1], nil, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	doc := string(out)
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://news.example.com/article/budget-2026</loc>",
		"<changefreq>daily</changefreq>",
		"<priority>0.9</priority>",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in\n%s", want, doc)
		}
	}
}

func TestBuildNewsEscapesTitles(t *testing.T) {
	out, err := sitemap.BuildNews("https://news.example.com", sitemap.Publication{Name: "Sweet FM Online"}, sampleArticles())
	if err != nil {
		t.Fatalf("BuildNews: %v", err)
	}
	doc := string(out)
	for _, want := range []string{
		`xmlns:news="http://www.google.com/schemas/sitemap-news/0.9"`,
		"<news:name>Sweet FM Online</news:name>",
		"<news:language>en</news:language>",
		"<news:publication_date>2026-03-14T11:00:00Z</news:publication_date>",
		"<news:title>Budget &amp; Beyond &lt;Live&gt;</news:title>",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in\n%s", want, doc)
		}
	}
	if strings.Count(doc, "<url>") != 2 {
		t.Fatalf("expected two news urls, got\n%s", doc)
	}
}

func TestRobots(t *testing.T) {
	got := sitemap.Robots("https://news.example.com/")
	for _, want := range []string{
		"User-agent: *",
		"Disallow: /api/",
		"Sitemap: https://news.example.com/sitemap.xml",
		"Sitemap: https://news.example.com/news-sitemap.xml",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}
