package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type mockMemberRepository struct {
	byEmail        map[string]*domain.Member
	byID           map[string]*domain.Member
	createErr      error
	updateErr      error
	getErr         error
	subscribed     int
	subscribedErr  error
	created        []*domain.Member
	updated        []*domain.Member
}

func (m *mockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	if m.createErr != nil {
		return m.createErr
	}
	if member.Email != "" {
		if _, ok := m.byEmail[member.Email]; ok {
			return domain.ErrDuplicateEmail
		}
	}
	if member.ID == "" {
		member.ID = "generated-id"
	}
	if m.byEmail == nil {
		m.byEmail = map[string]*domain.Member{}
	}
	m.byEmail[member.Email] = member
	m.created = append(m.created, member)
	return nil
}

func (m *mockMemberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	member, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}

func (m *mockMemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	member, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}

func (m *mockMemberRepository) Update(ctx context.Context, member *domain.Member) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, member)
	return nil
}

func (m *mockMemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	out := make([]*domain.Member, 0, len(m.byEmail))
	for _, member := range m.byEmail {
		out = append(out, member)
	}
	return out, nil
}

func (m *mockMemberRepository) Count(ctx context.Context) (int, error) {
	return len(m.byEmail), nil
}

func (m *mockMemberRepository) CountSubscribed(ctx context.Context) (int, error) {
	if m.subscribedErr != nil {
		return 0, m.subscribedErr
	}
	return m.subscribed, nil
}

type mockEventRepository struct {
	events    map[string]*domain.Event
	createErr error
	listErr   error
	created   []*domain.Event
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	if event.ID == "" {
		event.ID = "generated-event-id"
	}
	if m.events == nil {
		m.events = map[string]*domain.Event{}
	}
	m.events[event.ID] = event
	m.created = append(m.created, event)
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Event, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

type mockNewsRepository struct {
	items []*domain.NewsItem
}

func (m *mockNewsRepository) List(ctx context.Context) ([]*domain.NewsItem, error) {
	return m.items, nil
}

type mockTextGenerator struct {
	announcement    string
	announcementErr error
	chat            string
	chatErr         error
	lastChatMessage string
	lastChatContext string
}

func (m *mockTextGenerator) GenerateAnnouncement(ctx context.Context, event *domain.Event) (string, error) {
	return m.announcement, m.announcementErr
}

func (m *mockTextGenerator) GenerateChat(ctx context.Context, userMessage, systemContext string) (string, error) {
	m.lastChatMessage = userMessage
	m.lastChatContext = systemContext
	return m.chat, m.chatErr
}

type mockEmailService struct {
	welcomeErr    error
	rsvpErr       error
	broadcastErr  error
	welcomes      []*domain.WelcomeEmailData
	confirmations []*domain.RSVPConfirmationEmailData
	broadcasts    int
	recipients    int
}

func (m *mockEmailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	m.welcomes = append(m.welcomes, data)
	return m.welcomeErr
}

func (m *mockEmailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPConfirmationEmailData) error {
	m.confirmations = append(m.confirmations, data)
	return m.rsvpErr
}

func (m *mockEmailService) BroadcastAnnouncement(ctx context.Context, announcement string, recipients int) error {
	m.broadcasts++
	m.recipients = recipients
	return m.broadcastErr
}

type mockHasher struct {
	err    error
	hashed []string
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.hashed = append(m.hashed, password)
	return "hashed:" + password, nil
}

type mockTokenIssuer struct {
	err error
}

func (m *mockTokenIssuer) Issue(memberID, email string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "token-for-" + memberID, nil
}

type mockPaymentProvider struct {
	available bool
	status    string
	err       error
	paid      []string
}

func (m *mockPaymentProvider) Available() bool { return m.available }

func (m *mockPaymentProvider) Pay(ctx context.Context, amount, currency, descriptor string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.paid = append(m.paid, amount)
	return m.status, nil
}
