package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// eventRepository is the in-memory events collection. Events are immutable
// after creation and never deleted; new events are prepended so listings show
// the most recently added first.
type eventRepository struct {
	mu     sync.RWMutex
	events []*domain.Event
}

// NewEventRepository returns an EventRepository seeded with the given events.
func NewEventRepository(seed []*domain.Event) domain.EventRepository {
	r := &eventRepository{events: make([]*domain.Event, 0, len(seed))}
	for _, e := range seed {
		c := *e
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		r.events = append(r.events, &c)
	}
	return r
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	c := *event
	r.events = append([]*domain.Event{&c}, r.events...)
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID == id {
			c := *e
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		c := *e
		out = append(out, &c)
	}
	return out, nil
}
