package domain

import "time"

const (
	uncategorizedName = "Uncategorized"
	uncategorizedSlug = "uncategorized"
	staffWriterName   = "Staff Writer"
	staffWriterSlug   = "staff-writer"
)

// Category groups articles under a routable section.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// Author identifies the byline attached to an article.
type Author struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
	Role   *string `json:"role,omitempty"`
}

// Article is the canonical news story record. Category and Author are never
// nil once an article leaves the normalizer.
type Article struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       any        `json:"content,omitempty"`
	FeaturedImage string     `json:"featured_image"`
	Category      *Category  `json:"category"`
	Author        *Author    `json:"author"`
	PublishedAt   time.Time  `json:"published_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	IsBreaking    bool       `json:"is_breaking"`
	IsFeatured    bool       `json:"is_featured"`
	ReadTime      *int       `json:"read_time,omitempty"`
	Tags          []string   `json:"tags"`
}

// BreakingNews is a ticker headline, optionally linking to an article.
type BreakingNews struct {
	ID        string    `json:"id"`
	Headline  string    `json:"headline"`
	URL       *string   `json:"url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Comment is a reader comment stored against an article slug.
type Comment struct {
	ID          string    `json:"id"`
	ArticleSlug string    `json:"article_slug"`
	AuthorName  string    `json:"author_name"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// UncategorizedCategory returns the synthetic category used when an article
// carries no category relation.
func UncategorizedCategory() *Category {
	return &Category{
		Name: uncategorizedName,
		Slug: uncategorizedSlug,
	}
}

// StaffWriter returns the synthetic author used when an article carries no
// author relation.
func StaffWriter() *Author {
	return &Author{
		Name: staffWriterName,
		Slug: staffWriterSlug,
	}
}

// Clone returns a deep copy so callers can mutate the result freely.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	copied := *a
	if a.Category != nil {
		category := *a.Category
		copied.Category = &category
	}
	if a.Author != nil {
		author := *a.Author
		copied.Author = &author
	}
	if a.UpdatedAt != nil {
		updated := *a.UpdatedAt
		copied.UpdatedAt = &updated
	}
	if a.ReadTime != nil {
		readTime := *a.ReadTime
		copied.ReadTime = &readTime
	}
	copied.Tags = append([]string{}, a.Tags...)
	return &copied
}
