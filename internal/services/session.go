package services

import (
	"sync"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// sessionHolder keeps the single current-member reference. It stores a
// detached copy; Refresh is the only way a roster mutation reaches it.
type sessionHolder struct {
	mu      sync.RWMutex
	current *domain.Member
}

// NewSessionHolder returns an empty (anonymous) SessionHolder.
func NewSessionHolder() domain.SessionHolder {
	return &sessionHolder{}
}

func (s *sessionHolder) Set(member *domain.Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if member == nil {
		s.current = nil
		return
	}
	s.current = member.Clone()
}

func (s *sessionHolder) Current() (*domain.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current.Clone(), true
}

func (s *sessionHolder) Refresh(member *domain.Member) {
	if member == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != member.ID {
		return
	}
	s.current = member.Clone()
}

func (s *sessionHolder) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
