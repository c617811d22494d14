package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// memberRepository is the in-memory Roster Store. It owns all member records;
// every read returns a detached copy and mutations flow back only through
// Update. State lives for the process lifetime only.
type memberRepository struct {
	mu      sync.RWMutex
	members []*domain.Member
}

// NewMemberRepository returns a MemberRepository seeded with the given members.
// Seed records without an ID get one assigned.
func NewMemberRepository(seed []*domain.Member) domain.MemberRepository {
	r := &memberRepository{members: make([]*domain.Member, 0, len(seed))}
	for _, m := range seed {
		c := m.Clone()
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		r.members = append(r.members, c)
	}
	return r
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if member.Email != "" {
		for _, m := range r.members {
			if m.Email == member.Email {
				return domain.ErrDuplicateEmail
			}
		}
	}
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.RSVPEventIDs == nil {
		member.RSVPEventIDs = []string{}
	}
	r.members = append(r.members, member.Clone())
	return nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Exact, case-sensitive match: email is the sole identity key and is
	// deliberately not normalized.
	for _, m := range r.members {
		if m.Email != "" && m.Email == email {
			return m.Clone(), nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.ID == id {
			return m.Clone(), nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.members {
		if m.ID != member.ID {
			continue
		}
		if member.Email != "" {
			for _, other := range r.members {
				if other.ID != member.ID && other.Email == member.Email {
					return domain.ErrDuplicateEmail
				}
			}
		}
		r.members[i] = member.Clone()
		return nil
	}
	return domain.ErrMemberNotFound
}

func (r *memberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m.Clone())
	}
	return out, nil
}

func (r *memberRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members), nil
}

func (r *memberRepository) CountSubscribed(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, m := range r.members {
		if m.Subscribed {
			n++
		}
	}
	return n, nil
}
