package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

// Fixed chat fallbacks; a generation failure never reaches the user as an error.
const (
	chatEmptyFallback = "I'm sorry, I couldn't generate a response at this time."
	chatErrorFallback = "I'm having trouble connecting to the DECA network right now. Please check your API key or try again later."

	chatGreeting = "Ahoy! I'm the DECA Connect Assistant. Ask me about upcoming events, alumni spotlights, or how to get involved!"
)

const chatContextTemplate = `You are the "DECA Connect Assistant", a helpful AI for the East Carolina University (ECU) DECA Alumni network.
Your tone is professional, encouraging, and spirited (Go Pirates!).
You have access to the following data about the alumni network:

ALUMNI SPOTLIGHTS:
%s

UPCOMING EVENTS:
%s

LATEST NEWS:
%s

If a user asks about events, list them clearly.
If a user asks about alumni achievements, mention the people in the spotlight.
If a user asks general DECA questions, answer them based on general DECA knowledge (Prepare, Emerging Leaders, etc.).
Keep answers concise (under 100 words unless asked for more).`

type chatService struct {
	memberRepo domain.MemberRepository
	eventRepo  domain.EventRepository
	newsRepo   domain.NewsRepository
	textGen    domain.TextGenerator
	logger     *slog.Logger

	mu         sync.Mutex
	transcript []domain.ChatMessage
}

// NewChatService creates a ChatService whose system context is built from
// live snapshots of the roster, events, and news.
func NewChatService(
	memberRepo domain.MemberRepository,
	eventRepo domain.EventRepository,
	newsRepo domain.NewsRepository,
	textGen domain.TextGenerator,
	logger *slog.Logger,
) domain.ChatService {
	return &chatService{
		memberRepo: memberRepo,
		eventRepo:  eventRepo,
		newsRepo:   newsRepo,
		textGen:    textGen,
		logger:     logger,
		transcript: []domain.ChatMessage{
			{Role: domain.ChatRoleModel, Text: chatGreeting},
		},
	}
}

func (s *chatService) Send(ctx context.Context, userMessage string) (*domain.ChatMessage, error) {
	if userMessage == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, domain.ChatMessage{Role: domain.ChatRoleUser, Text: userMessage})
	s.mu.Unlock()

	reply := domain.ChatMessage{Role: domain.ChatRoleModel}
	text, err := s.textGen.GenerateChat(ctx, userMessage, s.systemContext(ctx))
	switch {
	case err != nil:
		s.logger.WarnContext(ctx, "chat generation failed, using fallback", "err", err)
		reply.Text = chatErrorFallback
		reply.IsError = true
	case text == "":
		reply.Text = chatEmptyFallback
	default:
		reply.Text = text
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, reply)
	s.mu.Unlock()
	return &reply, nil
}

func (s *chatService) History(ctx context.Context) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// systemContext serializes the current roster, events, and news snapshots into
// the assistant's grounding prompt. Snapshot errors degrade to empty sections.
func (s *chatService) systemContext(ctx context.Context) string {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "roster snapshot failed", "err", err)
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "events snapshot failed", "err", err)
	}
	news, err := s.newsRepo.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "news snapshot failed", "err", err)
	}
	return fmt.Sprintf(chatContextTemplate, jsonSnapshot(members), jsonSnapshot(events), jsonSnapshot(news))
}

func jsonSnapshot(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
