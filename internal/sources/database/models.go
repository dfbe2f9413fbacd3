package database

import (
	"time"

	"github.com/uptrace/bun"
)

type categoryModel struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID          string    `bun:"id,pk"`
	Name        string    `bun:"name,notnull"`
	Slug        string    `bun:"slug,notnull,unique"`
	Description *string   `bun:"description"`
	Color       *string   `bun:"color"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
}

type authorModel struct {
	bun.BaseModel `bun:"table:authors,alias:au"`

	ID        string    `bun:"id,pk"`
	Name      string    `bun:"name,notnull"`
	Slug      string    `bun:"slug,notnull,unique"`
	Avatar    *string   `bun:"avatar"`
	Bio       *string   `bun:"bio"`
	Role      *string   `bun:"role"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

type articleModel struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID            string         `bun:"id,pk"`
	Title         string         `bun:"title,notnull"`
	Slug          string         `bun:"slug,notnull,unique"`
	Excerpt       string         `bun:"excerpt"`
	Content       *string        `bun:"content"`
	FeaturedImage string         `bun:"featured_image"`
	CategoryID    *string        `bun:"category_id"`
	Category      *categoryModel `bun:"rel:belongs-to,join:category_id=id"`
	AuthorID      *string        `bun:"author_id"`
	Author        *authorModel   `bun:"rel:belongs-to,join:author_id=id"`
	PublishedAt   time.Time      `bun:"published_at,notnull"`
	UpdatedAt     *time.Time     `bun:"updated_at"`
	IsBreaking    bool           `bun:"is_breaking,notnull,default:false"`
	IsFeatured    bool           `bun:"is_featured,notnull,default:false"`
	ReadTime      *int           `bun:"read_time"`
	Tags          []string       `bun:"tags,type:jsonb,nullzero"`
}

type breakingNewsModel struct {
	bun.BaseModel `bun:"table:breaking_news,alias:b"`

	ID        string    `bun:"id,pk"`
	Headline  string    `bun:"headline,notnull"`
	URL       *string   `bun:"url"`
	Timestamp time.Time `bun:"timestamp,notnull"`
}

type advertisementModel struct {
	bun.BaseModel `bun:"table:advertisements,alias:ad"`

	ID        string     `bun:"id,pk"`
	Name      string     `bun:"name,notnull"`
	Image     string     `bun:"image"`
	URL       string     `bun:"url"`
	Position  string     `bun:"position,notnull"`
	IsActive  bool       `bun:"is_active,notnull,default:true"`
	StartDate *time.Time `bun:"start_date"`
	EndDate   *time.Time `bun:"end_date"`
	CreatedAt time.Time  `bun:"created_at,notnull"`
}

// CommentModel is the comments table row, shared with the comment store.
type CommentModel struct {
	bun.BaseModel `bun:"table:comments,alias:cm"`

	ID          string    `bun:"id,pk"`
	ArticleSlug string    `bun:"article_slug,notnull"`
	AuthorName  string    `bun:"author_name,notnull"`
	Content     string    `bun:"content,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull"`
}

// A left join with no match may leave a zero relation behind, so an empty
// id is treated as absent.
func (m *categoryModel) record() map[string]any {
	if m == nil || m.ID == "" {
		return nil
	}
	return map[string]any{
		"id":          m.ID,
		"name":        m.Name,
		"slug":        m.Slug,
		"description": derefString(m.Description),
		"color":       derefString(m.Color),
	}
}

func (m *authorModel) record() map[string]any {
	if m == nil || m.ID == "" {
		return nil
	}
	return map[string]any{
		"id":     m.ID,
		"name":   m.Name,
		"slug":   m.Slug,
		"avatar": derefString(m.Avatar),
		"bio":    derefString(m.Bio),
		"role":   derefString(m.Role),
	}
}

func (m *articleModel) record() map[string]any {
	out := map[string]any{
		"id":             m.ID,
		"title":          m.Title,
		"slug":           m.Slug,
		"excerpt":        m.Excerpt,
		"content":        derefString(m.Content),
		"featured_image": m.FeaturedImage,
		"published_at":   m.PublishedAt,
		"is_breaking":    m.IsBreaking,
		"is_featured":    m.IsFeatured,
		"tags":           append([]string{}, m.Tags...),
		"category":       nil,
		"author":         nil,
	}
	if m.UpdatedAt != nil {
		out["updated_at"] = *m.UpdatedAt
	}
	if m.ReadTime != nil {
		out["read_time"] = *m.ReadTime
	}
	if category := m.Category.record(); category != nil {
		out["category"] = category
	}
	if author := m.Author.record(); author != nil {
		out["author"] = author
	}
	return out
}

func (m *breakingNewsModel) record() map[string]any {
	return map[string]any{
		"id":        m.ID,
		"headline":  m.Headline,
		"url":       derefString(m.URL),
		"timestamp": m.Timestamp,
	}
}

func (m *advertisementModel) record() map[string]any {
	out := map[string]any{
		"id":         m.ID,
		"name":       m.Name,
		"image":      m.Image,
		"url":        m.URL,
		"position":   m.Position,
		"is_active":  m.IsActive,
		"created_at": m.CreatedAt,
	}
	if m.StartDate != nil {
		out["start_date"] = *m.StartDate
	}
	if m.EndDate != nil {
		out["end_date"] = *m.EndDate
	}
	return out
}

func derefString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
