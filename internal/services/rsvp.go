package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

type rsvpService struct {
	memberRepo   domain.MemberRepository
	eventRepo    domain.EventRepository
	session      domain.SessionHolder
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewRSVPService creates the RSVPCoordinator with the given roster, events
// collection, and session holder.
func NewRSVPService(
	memberRepo domain.MemberRepository,
	eventRepo domain.EventRepository,
	session domain.SessionHolder,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RSVPCoordinator {
	return &rsvpService{
		memberRepo:   memberRepo,
		eventRepo:    eventRepo,
		session:      session,
		emailService: emailService,
		logger:       logger,
	}
}

// RSVP attaches the event to the member matching email, creating a guest-tier
// record when no member matches. Adding an id already in the RSVP set is a
// no-op. If the mutated member is the current session's member, the session
// holder is refreshed so it observes the updated set.
func (s *rsvpService) RSVP(ctx context.Context, email, eventID string) (*domain.Member, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	member, err := s.memberRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if member.AddRSVP(eventID) {
			if err := s.memberRepo.Update(ctx, member); err != nil {
				return nil, fmt.Errorf("update member: %w", err)
			}
		}
	case errors.Is(err, domain.ErrMemberNotFound):
		member = domain.NewGuestMember(email, eventID)
		if err := s.memberRepo.Create(ctx, member); err != nil {
			return nil, fmt.Errorf("create guest member: %w", err)
		}
	default:
		return nil, fmt.Errorf("get member by email: %w", err)
	}

	// Session consistency: the current session must never diverge from the
	// store after a successful RSVP.
	s.session.Refresh(member)

	if s.emailService != nil {
		data := &domain.RSVPConfirmationEmailData{Email: member.Email, Name: member.Name, Event: event}
		if err := s.emailService.SendRSVPConfirmation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "rsvp confirmation email failed", "member_id", member.ID, "err", err)
		}
	}
	return member, nil
}
