package services

import (
	"context"
	"errors"
	"testing"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

func newIdentityService(memberRepo *mockMemberRepository, eventRepo *mockEventRepository, session domain.SessionHolder, email *mockEmailService) *IdentityService {
	return NewIdentityService(memberRepo, eventRepo, session, &mockHasher{}, &mockTokenIssuer{}, email, testLogger)
}

func TestIdentityService_Resolve(t *testing.T) {
	existing := &domain.Member{ID: "m1", Name: "Sarah Jenkins", Email: "sarah@example.com"}

	tests := []struct {
		name        string
		repo        *mockMemberRepository
		email       string
		wantCreated bool
		wantName    string
		wantErr     bool
	}{
		{
			name:        "known email returns existing member",
			repo:        &mockMemberRepository{byEmail: map[string]*domain.Member{"sarah@example.com": existing}},
			email:       "sarah@example.com",
			wantCreated: false,
			wantName:    "Sarah Jenkins",
		},
		{
			name:        "unknown email creates default member",
			repo:        &mockMemberRepository{byEmail: map[string]*domain.Member{}},
			email:       "new@example.com",
			wantCreated: true,
			wantName:    "Alumni Member",
		},
		{
			name: "email match is case-sensitive",
			repo: &mockMemberRepository{byEmail: map[string]*domain.Member{
				"sarah@example.com": existing,
			}},
			email:       "Sarah@example.com",
			wantCreated: true,
			wantName:    "Alumni Member",
		},
		{
			name:    "empty email is rejected",
			repo:    &mockMemberRepository{},
			email:   "",
			wantErr: true,
		},
		{
			name:    "repository failure propagates",
			repo:    &mockMemberRepository{getErr: errors.New("boom")},
			email:   "sarah@example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newIdentityService(tt.repo, &mockEventRepository{}, NewSessionHolder(), &mockEmailService{})
			member, created, err := svc.Resolve(context.Background(), tt.email)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created != tt.wantCreated {
				t.Errorf("created = %v, want %v", created, tt.wantCreated)
			}
			if member.Name != tt.wantName {
				t.Errorf("name = %q, want %q", member.Name, tt.wantName)
			}
		})
	}
}

func TestIdentityService_Resolve_DefaultProfile(t *testing.T) {
	repo := &mockMemberRepository{byEmail: map[string]*domain.Member{}}
	svc := newIdentityService(repo, &mockEventRepository{}, NewSessionHolder(), &mockEmailService{})

	member, created, err := svc.Resolve(context.Background(), "fresh@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected member to be created")
	}
	if member.Email != "fresh@example.com" {
		t.Errorf("email = %q", member.Email)
	}
	if member.GradYear != 2024 {
		t.Errorf("grad year = %d, want 2024", member.GradYear)
	}
	if member.Role != domain.RoleMember {
		t.Errorf("role = %q, want %q", member.Role, domain.RoleMember)
	}
	if !member.Subscribed {
		t.Error("new member should be subscribed")
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d members, want 1", len(repo.created))
	}
}

func TestIdentityService_Login(t *testing.T) {
	existing := &domain.Member{ID: "m1", Name: "Sarah Jenkins", Email: "sarah@example.com"}
	repo := &mockMemberRepository{byEmail: map[string]*domain.Member{"sarah@example.com": existing}}
	session := NewSessionHolder()
	svc := newIdentityService(repo, &mockEventRepository{}, session, &mockEmailService{})

	token, member, err := svc.Login(context.Background(), "sarah@example.com", "whatever")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token-for-m1" {
		t.Errorf("token = %q", token)
	}
	if member.ID != "m1" {
		t.Errorf("member id = %q", member.ID)
	}
	current, ok := session.Current()
	if !ok {
		t.Fatal("session should hold the member after login")
	}
	if current.ID != "m1" {
		t.Errorf("session member id = %q", current.ID)
	}
}

func TestIdentityService_Login_TwiceSameEmail(t *testing.T) {
	repo := &mockMemberRepository{byEmail: map[string]*domain.Member{}}
	session := NewSessionHolder()
	svc := newIdentityService(repo, &mockEventRepository{}, session, &mockEmailService{})

	_, first, err := svc.Login(context.Background(), "repeat@example.com", "pw")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	_, second, err := svc.Login(context.Background(), "repeat@example.com", "pw")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("re-login resolved a different member: %q vs %q", first.ID, second.ID)
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d members, want exactly 1", len(repo.created))
	}
}

func TestIdentityService_Signup(t *testing.T) {
	tests := []struct {
		name     string
		repo     *mockMemberRepository
		profile  domain.SignupProfile
		wantErr  error
		wantBio  string
	}{
		{
			name: "signup creates member with provided fields",
			repo: &mockMemberRepository{byEmail: map[string]*domain.Member{}},
			profile: domain.SignupProfile{
				Name: "New Alum", Email: "new@example.com", GradYear: 2020, Bio: "Hi there",
			},
			wantBio: "Hi there",
		},
		{
			name: "optional fields fall back to defaults",
			repo: &mockMemberRepository{byEmail: map[string]*domain.Member{}},
			profile: domain.SignupProfile{
				Name: "New Alum", Email: "new@example.com",
			},
			wantBio: "Proud ECU DECA Alum.",
		},
		{
			name: "duplicate email is rejected",
			repo: &mockMemberRepository{byEmail: map[string]*domain.Member{
				"taken@example.com": {ID: "m1", Email: "taken@example.com"},
			}},
			profile: domain.SignupProfile{Name: "New Alum", Email: "taken@example.com"},
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name:    "missing name is rejected",
			repo:    &mockMemberRepository{byEmail: map[string]*domain.Member{}},
			profile: domain.SignupProfile{Email: "new@example.com"},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSessionHolder()
			email := &mockEmailService{}
			svc := newIdentityService(tt.repo, &mockEventRepository{}, session, email)
			_, member, err := svc.Signup(context.Background(), tt.profile, "password123")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				if _, ok := session.Current(); ok {
					t.Error("failed signup must not set the session")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if member.Bio != tt.wantBio {
				t.Errorf("bio = %q, want %q", member.Bio, tt.wantBio)
			}
			if _, ok := session.Current(); !ok {
				t.Error("signup should set the session")
			}
			if len(email.welcomes) != 1 {
				t.Errorf("sent %d welcome emails, want 1", len(email.welcomes))
			}
		})
	}
}

func TestIdentityService_Signup_WelcomeEmailFailureIsNonFatal(t *testing.T) {
	repo := &mockMemberRepository{byEmail: map[string]*domain.Member{}}
	email := &mockEmailService{welcomeErr: errors.New("smtp down")}
	svc := newIdentityService(repo, &mockEventRepository{}, NewSessionHolder(), email)

	_, _, err := svc.Signup(context.Background(), domain.SignupProfile{Name: "A", Email: "a@example.com"}, "password123")
	if err != nil {
		t.Fatalf("signup should succeed despite email failure: %v", err)
	}
}

func TestIdentityService_Logout(t *testing.T) {
	member := &domain.Member{ID: "m1", Email: "sarah@example.com"}
	repo := &mockMemberRepository{byEmail: map[string]*domain.Member{"sarah@example.com": member}}
	session := NewSessionHolder()
	session.Set(member)
	svc := newIdentityService(repo, &mockEventRepository{}, session, &mockEmailService{})

	svc.Logout(context.Background())

	if _, ok := session.Current(); ok {
		t.Error("session should be empty after logout")
	}
	if _, err := repo.GetByEmail(context.Background(), "sarah@example.com"); err != nil {
		t.Error("logout must not remove the member from the roster")
	}
}

func TestIdentityService_Me(t *testing.T) {
	ev1 := &domain.Event{ID: "e1", Title: "Homecoming"}
	ev2 := &domain.Event{ID: "e2", Title: "Workshop"}
	eventRepo := &mockEventRepository{events: map[string]*domain.Event{"e1": ev1, "e2": ev2}}
	member := &domain.Member{ID: "m1", Email: "sarah@example.com", RSVPEventIDs: []string{"e1"}}

	session := NewSessionHolder()
	session.Set(member)
	svc := newIdentityService(&mockMemberRepository{}, eventRepo, session, &mockEmailService{})

	got, events, err := svc.Me(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "m1" {
		t.Errorf("member id = %q", got.ID)
	}
	if len(events) != 1 || events[0].ID != "e1" {
		t.Errorf("events = %v, want just e1", events)
	}
}

func TestIdentityService_Me_Anonymous(t *testing.T) {
	svc := newIdentityService(&mockMemberRepository{}, &mockEventRepository{}, NewSessionHolder(), &mockEmailService{})
	_, _, err := svc.Me(context.Background())
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("err = %v, want ErrMemberNotFound", err)
	}
}
