package comments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/sources/database"
)

// DatabaseStore keeps comments in the relational database through bun.
type DatabaseStore struct {
	db  *bun.DB
	now func() time.Time
}

// NewDatabaseStore wraps db. A nil clock uses time.Now.
func NewDatabaseStore(db *bun.DB, now func() time.Time) *DatabaseStore {
	if now == nil {
		now = time.Now
	}
	return &DatabaseStore{db: db, now: now}
}

func (*DatabaseStore) Name() string { return database.Name }

func (s *DatabaseStore) Configured() bool { return s != nil && s.db != nil }

func (s *DatabaseStore) List(ctx context.Context, articleSlug string) ([]*domain.Comment, error) {
	var models []database.CommentModel
	err := s.db.NewSelect().
		Model(&models).
		Where("article_slug = ?", articleSlug).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Comment, 0, len(models))
	for _, model := range models {
		out = append(out, &domain.Comment{
			ID:          model.ID,
			ArticleSlug: model.ArticleSlug,
			AuthorName:  model.AuthorName,
			Content:     model.Content,
			CreatedAt:   model.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (s *DatabaseStore) Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	model := database.CommentModel{
		ID:          uuid.NewString(),
		ArticleSlug: comment.ArticleSlug,
		AuthorName:  comment.AuthorName,
		Content:     comment.Content,
		CreatedAt:   s.now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(&model).Exec(ctx); err != nil {
		return nil, err
	}
	comment.ID = model.ID
	comment.CreatedAt = model.CreatedAt
	return &comment, nil
}
