// Package comments implements the reader comment write path.
package comments

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-newsroom/internal/domain"
	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// Service validates and stores comments.
type Service interface {
	Available() bool
	List(ctx context.Context, articleSlug string) ([]*domain.Comment, error)
	Create(ctx context.Context, req CreateRequest) (*domain.Comment, error)
}

// ServiceOption configures the service.
type ServiceOption func(*service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	store  Store
	logger interfaces.Logger
}

// NewService wraps the first configured store. With none the service
// reports ErrUnavailable on every call.
func NewService(stores []Store, opts ...ServiceOption) Service {
	s := &service{logger: logging.NoOp()}
	for _, store := range stores {
		if store != nil && store.Configured() {
			s.store = store
			break
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *service) Available() bool { return s.store != nil }

func (s *service) List(ctx context.Context, articleSlug string) ([]*domain.Comment, error) {
	articleSlug = strings.TrimSpace(articleSlug)
	if articleSlug == "" {
		return nil, goerrors.New("article slug is required", goerrors.CategoryValidation).
			WithTextCode(CodeArticleSlugRequired)
	}
	if s.store == nil {
		return nil, ErrUnavailable
	}

	list, err := s.store.List(ctx, articleSlug)
	if err != nil {
		s.logger.WithContext(ctx).Error("comments.list_failed",
			"store", s.store.Name(),
			"article_slug", articleSlug,
			"error", err,
		)
		return nil, storeFailure(err, "failed to fetch comments")
	}
	if list == nil {
		list = []*domain.Comment{}
	}
	return list, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*domain.Comment, error) {
	if s.store == nil {
		return nil, ErrUnavailable
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req = req.Normalize()
	created, err := s.store.Create(ctx, domain.Comment{
		ArticleSlug: req.ArticleSlug,
		AuthorName:  req.AuthorName,
		Content:     req.Content,
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("comments.create_failed",
			"store", s.store.Name(),
			"article_slug", req.ArticleSlug,
			"error", err,
		)
		return nil, storeFailure(err, "failed to post comment")
	}

	s.logger.WithContext(ctx).Info("comments.created",
		"store", s.store.Name(),
		"article_slug", created.ArticleSlug,
		"comment_id", created.ID,
	)
	return created, nil
}

func storeFailure(err error, message string) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, message).WithTextCode(CodeStoreFailed)
}
