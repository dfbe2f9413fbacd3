// Package normalize converts raw adapter rows into canonical domain records.
// Every function is total: malformed input yields a record with zero values
// or a false second return, never a panic.
package normalize

import (
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/sources"
)

// Article normalizes an article row.
func Article(row sources.Row) (*domain.Article, bool) {
	var article *domain.Article
	switch r := row.(type) {
	case *sources.EntryRow:
		if r == nil {
			return nil, false
		}
		f := r.Fields
		article = &domain.Article{
			ID:            r.ID,
			Title:         stringValue(f["title"]),
			Slug:          stringValue(f["slug"]),
			Excerpt:       stringValue(f["excerpt"]),
			Content:       content(f["content"]),
			FeaturedImage: assetURL(f["featuredImage"]),
			PublishedAt:   r.CreatedAt.UTC(),
			UpdatedAt:     timePtr(r.UpdatedAt),
			IsBreaking:    boolValue(f["isBreaking"], false),
			IsFeatured:    boolValue(f["isFeatured"], false),
			ReadTime:      positiveInt(f["readTime"]),
			Tags:          stringList(f["tags"]),
		}
		if category, ok := f["category"].(*sources.EntryRow); ok {
			article.Category, _ = Category(category)
		}
		if author, ok := f["author"].(*sources.EntryRow); ok {
			article.Author, _ = Author(author)
		}
	case sources.RecordRow:
		if r == nil {
			return nil, false
		}
		published, _ := timeValue(r["published_at"])
		article = &domain.Article{
			ID:            stringValue(r["id"]),
			Title:         stringValue(r["title"]),
			Slug:          stringValue(r["slug"]),
			Excerpt:       stringValue(r["excerpt"]),
			Content:       content(r["content"]),
			FeaturedImage: assetURL(r["featured_image"]),
			PublishedAt:   published,
			UpdatedAt:     optionalTime(r["updated_at"]),
			IsBreaking:    boolValue(r["is_breaking"], false),
			IsFeatured:    boolValue(r["is_featured"], false),
			ReadTime:      positiveInt(r["read_time"]),
			Tags:          stringList(r["tags"]),
		}
		if category, ok := r["category"].(map[string]any); ok {
			article.Category, _ = Category(sources.RecordRow(category))
		}
		if author, ok := r["author"].(map[string]any); ok {
			article.Author, _ = Author(sources.RecordRow(author))
		}
	case sources.RecordValue:
		switch v := r.Value.(type) {
		case *domain.Article:
			article = v.Clone()
		case domain.Article:
			article = v.Clone()
		}
	}
	if article == nil {
		return nil, false
	}

	article.Slug = strings.TrimSpace(article.Slug)
	article.FeaturedImage = AbsoluteURL(article.FeaturedImage)
	if article.Category == nil {
		article.Category = domain.UncategorizedCategory()
	} else if strings.TrimSpace(article.Category.Name) == "" {
		article.Category.Name = domain.UncategorizedCategory().Name
	}
	if article.Author == nil {
		article.Author = domain.StaffWriter()
	} else if strings.TrimSpace(article.Author.Name) == "" {
		article.Author.Name = domain.StaffWriter().Name
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if article.ReadTime != nil && *article.ReadTime <= 0 {
		article.ReadTime = nil
	}
	return article, true
}

// Category normalizes a category row.
func Category(row sources.Row) (*domain.Category, bool) {
	var category *domain.Category
	switch r := row.(type) {
	case *sources.EntryRow:
		if r == nil {
			return nil, false
		}
		category = &domain.Category{
			ID:          r.ID,
			Name:        stringValue(r.Fields["name"]),
			Slug:        stringValue(r.Fields["slug"]),
			Description: optionalString(r.Fields["description"]),
			Color:       optionalString(r.Fields["color"]),
		}
	case sources.RecordRow:
		if r == nil {
			return nil, false
		}
		category = &domain.Category{
			ID:          stringValue(r["id"]),
			Name:        stringValue(r["name"]),
			Slug:        stringValue(r["slug"]),
			Description: optionalString(r["description"]),
			Color:       optionalString(r["color"]),
		}
	case sources.RecordValue:
		switch v := r.Value.(type) {
		case *domain.Category:
			if v != nil {
				copied := *v
				category = &copied
			}
		case domain.Category:
			category = &v
		}
	}
	if category == nil {
		return nil, false
	}
	category.Slug = strings.TrimSpace(category.Slug)
	return category, true
}

// Author normalizes an author row.
func Author(row sources.Row) (*domain.Author, bool) {
	var author *domain.Author
	switch r := row.(type) {
	case *sources.EntryRow:
		if r == nil {
			return nil, false
		}
		author = &domain.Author{
			ID:     r.ID,
			Name:   stringValue(r.Fields["name"]),
			Slug:   stringValue(r.Fields["slug"]),
			Avatar: optionalAssetURL(r.Fields["avatar"]),
			Bio:    optionalString(r.Fields["bio"]),
			Role:   optionalString(r.Fields["role"]),
		}
	case sources.RecordRow:
		if r == nil {
			return nil, false
		}
		author = &domain.Author{
			ID:     stringValue(r["id"]),
			Name:   stringValue(r["name"]),
			Slug:   stringValue(r["slug"]),
			Avatar: optionalAssetURL(r["avatar"]),
			Bio:    optionalString(r["bio"]),
			Role:   optionalString(r["role"]),
		}
	case sources.RecordValue:
		switch v := r.Value.(type) {
		case *domain.Author:
			if v != nil {
				copied := *v
				author = &copied
			}
		case domain.Author:
			author = &v
		}
	}
	if author == nil {
		return nil, false
	}
	author.Slug = strings.TrimSpace(author.Slug)
	return author, true
}

// BreakingNews normalizes a ticker row.
func BreakingNews(row sources.Row) (*domain.BreakingNews, bool) {
	var item *domain.BreakingNews
	switch r := row.(type) {
	case *sources.EntryRow:
		if r == nil {
			return nil, false
		}
		item = &domain.BreakingNews{
			ID:        r.ID,
			Headline:  stringValue(r.Fields["headline"]),
			URL:       BreakingURL(stringValue(r.Fields["url"])),
			Timestamp: r.CreatedAt.UTC(),
		}
	case sources.RecordRow:
		if r == nil {
			return nil, false
		}
		timestamp, _ := timeValue(r["timestamp"])
		item = &domain.BreakingNews{
			ID:        stringValue(r["id"]),
			Headline:  stringValue(r["headline"]),
			URL:       BreakingURL(stringValue(r["url"])),
			Timestamp: timestamp,
		}
	case sources.RecordValue:
		var source *domain.BreakingNews
		switch v := r.Value.(type) {
		case *domain.BreakingNews:
			source = v
		case domain.BreakingNews:
			source = &v
		}
		if source != nil {
			item = &domain.BreakingNews{
				ID:        source.ID,
				Headline:  source.Headline,
				Timestamp: source.Timestamp,
			}
			if source.URL != nil {
				item.URL = BreakingURL(*source.URL)
			}
		}
	}
	if item == nil {
		return nil, false
	}
	return item, true
}

// Advertisement normalizes an advertisement row. Rows with an unknown slot
// name are rejected because they cannot be placed.
func Advertisement(row sources.Row) (*domain.Advertisement, bool) {
	var (
		ad       *domain.Advertisement
		position string
	)
	switch r := row.(type) {
	case *sources.EntryRow:
		if r == nil {
			return nil, false
		}
		f := r.Fields
		ad = &domain.Advertisement{
			ID:        r.ID,
			Name:      stringValue(f["name"]),
			Image:     assetURL(f["image"]),
			URL:       stringValue(f["url"]),
			IsActive:  boolValue(f["isActive"], true),
			StartDate: optionalTime(f["startDate"]),
			EndDate:   optionalTime(f["endDate"]),
		}
		position = stringValue(f["position"])
	case sources.RecordRow:
		if r == nil {
			return nil, false
		}
		ad = &domain.Advertisement{
			ID:        stringValue(r["id"]),
			Name:      stringValue(r["name"]),
			Image:     assetURL(r["image"]),
			URL:       stringValue(r["url"]),
			IsActive:  boolValue(r["is_active"], true),
			StartDate: optionalTime(r["start_date"]),
			EndDate:   optionalTime(r["end_date"]),
		}
		position = stringValue(r["position"])
	case sources.RecordValue:
		switch v := r.Value.(type) {
		case *domain.Advertisement:
			if v != nil {
				copied := *v
				ad = &copied
			}
		case domain.Advertisement:
			ad = &v
		}
		if ad != nil {
			position = string(ad.Position)
			ad.StartDate = copyTime(ad.StartDate)
			ad.EndDate = copyTime(ad.EndDate)
		}
	}
	if ad == nil {
		return nil, false
	}

	parsed, err := domain.ParseAdPosition(position)
	if err != nil {
		return nil, false
	}
	ad.Position = parsed
	ad.Image = AbsoluteURL(ad.Image)
	if strings.TrimSpace(ad.URL) == "" {
		ad.URL = "#"
	}
	return ad, true
}

// content keeps rich documents as-is and drops empty strings.
func content(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		return v
	default:
		return v
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
