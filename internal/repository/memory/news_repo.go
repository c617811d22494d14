package memory

import (
	"context"
	"sync"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// newsRepository is the static in-memory news collection.
type newsRepository struct {
	mu    sync.RWMutex
	items []*domain.NewsItem
}

// NewNewsRepository returns a NewsRepository seeded with the given items.
func NewNewsRepository(seed []*domain.NewsItem) domain.NewsRepository {
	r := &newsRepository{items: make([]*domain.NewsItem, 0, len(seed))}
	for _, n := range seed {
		c := *n
		r.items = append(r.items, &c)
	}
	return r
}

func (r *newsRepository) List(ctx context.Context) ([]*domain.NewsItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.NewsItem, 0, len(r.items))
	for _, n := range r.items {
		c := *n
		out = append(out, &c)
	}
	return out, nil
}
