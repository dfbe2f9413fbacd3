package comments

import (
	"context"
	"errors"

	"github.com/goliatone/go-newsroom/internal/domain"
)

// ErrUnavailable reports that no comment store is configured.
var ErrUnavailable = errors.New("comments: service unavailable")

// Machine readable codes attached to validation failures.
const (
	CodeArticleSlugRequired = "COMMENT_ARTICLE_SLUG_REQUIRED"
	CodeAuthorNameInvalid   = "COMMENT_AUTHOR_NAME_INVALID"
	CodeContentInvalid      = "COMMENT_CONTENT_INVALID"
	CodeStoreFailed         = "COMMENT_STORE_FAILED"
)

// Length bounds, counted in runes after trimming.
const (
	MinAuthorNameLength = 2
	MinContentLength    = 3
	MaxContentLength    = 2000
)

// CreateRequest is the payload accepted when posting a comment.
type CreateRequest struct {
	ArticleSlug string `json:"article_slug"`
	AuthorName  string `json:"author_name"`
	Content     string `json:"content"`
}

// Store persists comments. Create assigns the id and the server timestamp.
type Store interface {
	Name() string
	Configured() bool
	List(ctx context.Context, articleSlug string) ([]*domain.Comment, error)
	Create(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
}
