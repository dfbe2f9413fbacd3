package comments

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/sources/postgrest"
)

const (
	commentsTable  = "comments"
	commentsSelect = "id,article_slug,author_name,content,created_at"
)

// PostgRESTStore keeps comments in the gateway's comments table.
type PostgRESTStore struct {
	client *postgrest.Client
}

// NewPostgRESTStore wraps client.
func NewPostgRESTStore(client *postgrest.Client) *PostgRESTStore {
	return &PostgRESTStore{client: client}
}

func (*PostgRESTStore) Name() string { return postgrest.Name }

func (s *PostgRESTStore) Configured() bool {
	return s != nil && s.client != nil && s.client.Configured()
}

func (s *PostgRESTStore) List(ctx context.Context, articleSlug string) ([]*domain.Comment, error) {
	params := url.Values{}
	params.Set("select", commentsSelect)
	params.Set("article_slug", "eq."+articleSlug)
	params.Set("order", "created_at.desc")

	rows, err := s.client.Select(ctx, commentsTable, params)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, commentFromRow(row))
	}
	return out, nil
}

func (s *PostgRESTStore) Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	rows, err := s.client.Insert(ctx, commentsTable, map[string]string{
		"article_slug": comment.ArticleSlug,
		"author_name":  comment.AuthorName,
		"content":      comment.Content,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("comments: insert returned no rows")
	}
	return commentFromRow(rows[0]), nil
}

func commentFromRow(row map[string]any) *domain.Comment {
	comment := &domain.Comment{
		ID:          stringField(row["id"]),
		ArticleSlug: stringField(row["article_slug"]),
		AuthorName:  stringField(row["author_name"]),
		Content:     stringField(row["content"]),
	}
	if raw, ok := row["created_at"].(string); ok {
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
			if parsed, err := time.Parse(layout, raw); err == nil {
				comment.CreatedAt = parsed.UTC()
				break
			}
		}
	}
	return comment
}

func stringField(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case interface{ String() string }:
		return v.String()
	default:
		return ""
	}
}
