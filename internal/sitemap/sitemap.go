package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/normalize"
)

const (
	urlsetNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	newsNamespace   = "http://www.google.com/schemas/sitemap-news/0.9"
)

// ChangeFreq is the sitemap changefreq hint.
type ChangeFreq string

const (
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

// Entry is a single <url> element.
type Entry struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

type staticPage struct {
	path     string
	freq     ChangeFreq
	priority float64
}

var staticPages = []staticPage{
	{path: "", freq: Hourly, priority: 1.0},
	{path: "/about", freq: Monthly, priority: 0.5},
	{path: "/contact", freq: Monthly, priority: 0.5},
	{path: "/advertise", freq: Monthly, priority: 0.5},
	{path: "/live", freq: Weekly, priority: 0.6},
	{path: "/media/videos", freq: Daily, priority: 0.6},
	{path: "/media/podcasts", freq: Daily, priority: 0.6},
}

// Entries lists static pages, then category pages, then article pages.
func Entries(baseURL string, articles []*domain.Article, categories []*domain.Category, now time.Time) []Entry {
	base := strings.TrimRight(baseURL, "/")
	stamp := formatTime(now)

	entries := make([]Entry, 0, len(staticPages)+len(categories)+len(articles))
	for _, page := range staticPages {
		entries = append(entries, Entry{
			Loc:        base + page.path,
			LastMod:    stamp,
			ChangeFreq: page.freq,
			Priority:   formatPriority(page.priority),
		})
	}
	for _, category := range categories {
		if category == nil || category.Slug == "" {
			continue
		}
		entries = append(entries, Entry{
			Loc:        base + "/category/" + category.Slug,
			LastMod:    stamp,
			ChangeFreq: Hourly,
			Priority:   formatPriority(0.8),
		})
	}
	for _, article := range articles {
		if article == nil || article.Slug == "" {
			continue
		}
		priority := 0.7
		if article.IsFeatured {
			priority = 0.9
		}
		entries = append(entries, Entry{
			Loc:        base + normalize.ArticlePath(article.Slug),
			LastMod:    formatTime(article.PublishedAt),
			ChangeFreq: Daily,
			Priority:   formatPriority(priority),
		})
	}
	return entries
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// Build renders the site sitemap document.
func Build(baseURL string, articles []*domain.Article, categories []*domain.Category, now time.Time) ([]byte, error) {
	return encode(urlset{Xmlns: urlsetNamespace, URLs: Entries(baseURL, articles, categories, now)})
}

// Publication names the outlet in a news sitemap.
type Publication struct {
	Name     string
	Language string
}

type newsURL struct {
	Loc  string   `xml:"loc"`
	News newsItem `xml:"news:news"`
}

type newsItem struct {
	Publication newsPublication `xml:"news:publication"`
	Date        string          `xml:"news:publication_date"`
	Title       string          `xml:"news:title"`
}

type newsPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

type newsURLSet struct {
	XMLName   xml.Name  `xml:"urlset"`
	Xmlns     string    `xml:"xmlns,attr"`
	XmlnsNews string    `xml:"xmlns:news,attr"`
	URLs      []newsURL `xml:"url"`
}

// BuildNews renders a news sitemap for the supplied articles.
func BuildNews(baseURL string, publication Publication, articles []*domain.Article) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	language := publication.Language
	if language == "" {
		language = "en"
	}

	doc := newsURLSet{Xmlns: urlsetNamespace, XmlnsNews: newsNamespace}
	for _, article := range articles {
		if article == nil || article.Slug == "" {
			continue
		}
		doc.URLs = append(doc.URLs, newsURL{
			Loc: base + normalize.ArticlePath(article.Slug),
			News: newsItem{
				Publication: newsPublication{Name: publication.Name, Language: language},
				Date:        formatTime(article.PublishedAt),
				Title:       article.Title,
			},
		})
	}
	return encode(doc)
}

// Robots renders robots.txt pointing crawlers at both sitemaps.
func Robots(baseURL string) string {
	base := strings.TrimRight(baseURL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", base)
	fmt.Fprintf(&b, "Sitemap: %s/news-sitemap.xml\n", base)
	return b.String()
}

func encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("sitemap: encode: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatPriority(p float64) string {
	return fmt.Sprintf("%.1f", p)
}
