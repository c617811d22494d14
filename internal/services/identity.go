package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// IdentityService implements domain.IdentityResolver and domain.IdentityService.
type IdentityService struct {
	memberRepo   domain.MemberRepository
	eventRepo    domain.EventRepository
	session      domain.SessionHolder
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewIdentityService creates the IdentityService with the given roster,
// session holder, and auth ports.
func NewIdentityService(
	memberRepo domain.MemberRepository,
	eventRepo domain.EventRepository,
	session domain.SessionHolder,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	emailService domain.EmailService,
	logger *slog.Logger,
) *IdentityService {
	return &IdentityService{
		memberRepo:   memberRepo,
		eventRepo:    eventRepo,
		session:      session,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		emailService: emailService,
		logger:       logger,
	}
}

// Resolve finds the member whose email exactly equals the input, creating the
// default member record on a miss. Absence of a match is the creation trigger,
// not an error.
func (s *IdentityService) Resolve(ctx context.Context, email string) (*domain.Member, bool, error) {
	if email == "" {
		return nil, false, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err == nil {
		return member, false, nil
	}
	if !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, false, fmt.Errorf("get member by email: %w", err)
	}
	member = domain.NewResolvedMember(email)
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, false, fmt.Errorf("create member: %w", err)
	}
	return member, true, nil
}

// Login resolves the email and makes the member the current session. The
// password is accepted but never verified; it is hashed and discarded so
// plaintext does not linger. Re-login while authenticated simply re-resolves.
func (s *IdentityService) Login(ctx context.Context, email, password string) (string, *domain.Member, error) {
	member, created, err := s.Resolve(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if password != "" && s.hasher != nil {
		if _, err := s.hasher.Hash(password); err != nil {
			s.logger.WarnContext(ctx, "password hash failed", "err", err)
		}
	}
	s.session.Set(member)
	token, err := s.tokenIssuer.Issue(member.ID, member.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if created {
		s.logger.InfoContext(ctx, "member created on login", "member_id", member.ID)
	}
	return token, member, nil
}

// Signup inserts a new member built from the profile and makes it the current
// session. A profile whose email is already on the roster is rejected with
// ErrDuplicateEmail.
func (s *IdentityService) Signup(ctx context.Context, profile domain.SignupProfile, password string) (string, *domain.Member, error) {
	member, err := domain.NewSignupMember(profile)
	if err != nil {
		return "", nil, err
	}
	if password != "" && s.hasher != nil {
		if _, err := s.hasher.Hash(password); err != nil {
			s.logger.WarnContext(ctx, "password hash failed", "err", err)
		}
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", nil, domain.ErrDuplicateEmail
		}
		return "", nil, fmt.Errorf("create member: %w", err)
	}
	s.session.Set(member)
	token, err := s.tokenIssuer.Issue(member.ID, member.Email)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if s.emailService != nil {
		if err := s.emailService.SendWelcome(ctx, &domain.WelcomeEmailData{Email: member.Email, Name: member.Name}); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed", "err", err)
		}
	}
	return token, member, nil
}

// Logout clears the session reference only; the roster is untouched.
func (s *IdentityService) Logout(ctx context.Context) {
	s.session.Clear()
}

// Me returns the current member and the events in their RSVP set.
func (s *IdentityService) Me(ctx context.Context) (*domain.Member, []*domain.Event, error) {
	member, ok := s.session.Current()
	if !ok {
		return nil, nil, domain.ErrMemberNotFound
	}
	all, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list events: %w", err)
	}
	events := []*domain.Event{}
	for _, ev := range all {
		if member.HasRSVP(ev.ID) {
			events = append(events, ev)
		}
	}
	return member, events, nil
}
