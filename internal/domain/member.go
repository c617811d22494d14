package domain

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// Sentinel errors for member operations.
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Role labels distinguishing how a member record entered the roster.
const (
	RoleMember = "Member"
	RoleGuest  = "Guest"
)

// Member represents one alumni or guest identity in the roster.
// swagger:model Member
type Member struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	GradYear     int      `json:"grad_year"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Bio          string   `json:"bio"`
	Achievement  string   `json:"achievement"`
	ImageURL     string   `json:"image_url"`
	Subscribed   bool     `json:"subscribed"`
	RSVPEventIDs []string `json:"rsvp_event_ids"`
}

// SignupProfile carries the profile fields collected by the signup form.
// Name and Email are required; the rest fall back to defaults when blank.
type SignupProfile struct {
	Name        string
	Email       string
	GradYear    int
	Company     string
	Role        string
	Bio         string
	Achievement string
}

const avatarBaseURL = "https://ui-avatars.com/api/?background=592A8A&color=fff&name="

// AvatarURL returns the generated avatar image URL for the given display name.
func AvatarURL(name string) string {
	return avatarBaseURL + url.QueryEscape(name)
}

// NewResolvedMember builds the default member record created when a login
// resolves an email the roster has never seen. ID is set by the repository on create.
func NewResolvedMember(email string) *Member {
	return &Member{
		Name:         "Alumni Member",
		Email:        email,
		GradYear:     2024,
		Company:      "Pending...",
		Role:         RoleMember,
		Bio:          "Welcome back!",
		Achievement:  "Logged in successfully",
		ImageURL:     AvatarURL("Member"),
		Subscribed:   true,
		RSVPEventIDs: []string{},
	}
}

// NewGuestMember builds the guest-tier lead record created when an RSVP arrives
// for an email with no existing member. Its RSVP set is exactly {eventID}.
func NewGuestMember(email, eventID string) *Member {
	return &Member{
		Name:         "Guest Alum",
		Email:        email,
		GradYear:     2024,
		Company:      "N/A",
		Role:         RoleGuest,
		Bio:          "Visiting Guest",
		Achievement:  "RSVPed to event",
		ImageURL:     AvatarURL("G"),
		RSVPEventIDs: []string{eventID},
	}
}

// NewSignupMember builds a member from the signup form, applying fallback
// strings to optional fields.
func NewSignupMember(p SignupProfile) (*Member, error) {
	if p.Name == "" || p.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	bio := p.Bio
	if bio == "" {
		bio = "Proud ECU DECA Alum."
	}
	achievement := p.Achievement
	if achievement == "" {
		achievement = "Joined the ECU DECA Alumni Network."
	}
	return &Member{
		Name:         p.Name,
		Email:        p.Email,
		GradYear:     p.GradYear,
		Company:      p.Company,
		Role:         p.Role,
		Bio:          bio,
		Achievement:  achievement,
		ImageURL:     AvatarURL(p.Name),
		Subscribed:   true,
		RSVPEventIDs: []string{},
	}, nil
}

// HasRSVP reports whether eventID is in the member's RSVP set.
func (m *Member) HasRSVP(eventID string) bool {
	for _, id := range m.RSVPEventIDs {
		if id == eventID {
			return true
		}
	}
	return false
}

// AddRSVP adds eventID to the member's RSVP set. Adding an id already in the
// set is a no-op; the return value reports whether the set grew.
func (m *Member) AddRSVP(eventID string) bool {
	if m.HasRSVP(eventID) {
		return false
	}
	m.RSVPEventIDs = append(m.RSVPEventIDs, eventID)
	return true
}

// Clone returns a deep copy of the member, including its RSVP set.
func (m *Member) Clone() *Member {
	c := *m
	c.RSVPEventIDs = append([]string(nil), m.RSVPEventIDs...)
	return &c
}

// MemberRepository defines the interface for roster storage. Implementations
// return detached copies; mutations flow back only through Update.
type MemberRepository interface {
	Create(ctx context.Context, member *Member) error
	GetByEmail(ctx context.Context, email string) (*Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Update(ctx context.Context, member *Member) error
	List(ctx context.Context) ([]*Member, error)
	Count(ctx context.Context) (int, error)
	CountSubscribed(ctx context.Context) (int, error)
}

// IdentityResolver finds or creates a member record by email. The email match
// is exact and case-sensitive; a miss is the creation trigger, not an error.
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (member *Member, created bool, err error)
}

// IdentityService defines the session lifecycle: login, signup, logout, and
// the current member's profile view.
type IdentityService interface {
	Login(ctx context.Context, email, password string) (token string, member *Member, err error)
	Signup(ctx context.Context, profile SignupProfile, password string) (token string, member *Member, err error)
	Logout(ctx context.Context)
	Me(ctx context.Context) (member *Member, rsvpEvents []*Event, err error)
}

// RSVPCoordinator binds an RSVP action to a member record and keeps the
// current session consistent with the roster.
type RSVPCoordinator interface {
	RSVP(ctx context.Context, email, eventID string) (*Member, error)
}
