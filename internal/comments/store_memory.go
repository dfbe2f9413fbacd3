package comments

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-newsroom/internal/domain"
)

// MemoryStore keeps comments in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	comments []domain.Comment
	now      func() time.Time
}

// NewMemoryStore builds an empty store. A nil clock uses time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now}
}

func (*MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Configured() bool { return m != nil }

func (m *MemoryStore) List(_ context.Context, articleSlug string) ([]*domain.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Comment, 0)
	for _, comment := range m.comments {
		if comment.ArticleSlug == articleSlug {
			copied := comment
			out = append(out, &copied)
		}
	}
	slices.SortStableFunc(out, func(a, b *domain.Comment) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return out, nil
}

func (m *MemoryStore) Create(_ context.Context, comment domain.Comment) (*domain.Comment, error) {
	comment.ID = uuid.NewString()
	comment.CreatedAt = m.now().UTC()

	m.mu.Lock()
	m.comments = append(m.comments, comment)
	m.mu.Unlock()

	return &comment, nil
}
