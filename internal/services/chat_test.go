package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

func newChat(gen *mockTextGenerator) domain.ChatService {
	memberRepo := &mockMemberRepository{byEmail: map[string]*domain.Member{
		"sarah@example.com": {ID: "m1", Name: "Sarah Jenkins", Email: "sarah@example.com"},
	}}
	eventRepo := &mockEventRepository{events: map[string]*domain.Event{
		"e1": {ID: "e1", Title: "Homecoming Tailgate"},
	}}
	newsRepo := &mockNewsRepository{items: []*domain.NewsItem{{ID: "n1", Title: "Chapter Wins Award"}}}
	return NewChatService(memberRepo, eventRepo, newsRepo, gen, testLogger)
}

func TestChatService_Send(t *testing.T) {
	tests := []struct {
		name      string
		gen       *mockTextGenerator
		wantText  string
		wantError bool
	}{
		{
			name:     "reply is returned verbatim",
			gen:      &mockTextGenerator{chat: "Go Pirates!"},
			wantText: "Go Pirates!",
		},
		{
			name:     "empty reply degrades to fallback",
			gen:      &mockTextGenerator{chat: ""},
			wantText: "I'm sorry, I couldn't generate a response at this time.",
		},
		{
			name:      "generation failure degrades to error fallback",
			gen:       &mockTextGenerator{chatErr: errors.New("network")},
			wantText:  "I'm having trouble connecting to the DECA network right now. Please check your API key or try again later.",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newChat(tt.gen)
			reply, err := svc.Send(context.Background(), "What's coming up?")
			if err != nil {
				t.Fatalf("send never errors on generation problems, got %v", err)
			}
			if reply.Text != tt.wantText {
				t.Errorf("text = %q, want %q", reply.Text, tt.wantText)
			}
			if reply.IsError != tt.wantError {
				t.Errorf("is_error = %v, want %v", reply.IsError, tt.wantError)
			}
			if reply.Role != domain.ChatRoleModel {
				t.Errorf("role = %q", reply.Role)
			}
		})
	}
}

func TestChatService_Send_EmptyMessage(t *testing.T) {
	svc := newChat(&mockTextGenerator{})
	if _, err := svc.Send(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestChatService_SystemContextIncludesSnapshots(t *testing.T) {
	gen := &mockTextGenerator{chat: "ok"}
	svc := newChat(gen)

	if _, err := svc.Send(context.Background(), "who's in the spotlight?"); err != nil {
		t.Fatalf("send: %v", err)
	}
	for _, want := range []string{"Sarah Jenkins", "Homecoming Tailgate", "Chapter Wins Award", "DECA Connect Assistant"} {
		if !strings.Contains(gen.lastChatContext, want) {
			t.Errorf("system context missing %q", want)
		}
	}
	if gen.lastChatMessage != "who's in the spotlight?" {
		t.Errorf("user message = %q", gen.lastChatMessage)
	}
}

func TestChatService_History(t *testing.T) {
	svc := newChat(&mockTextGenerator{chat: "reply"})

	history := svc.History(context.Background())
	if len(history) != 1 || history[0].Role != domain.ChatRoleModel {
		t.Fatalf("fresh transcript should hold only the greeting, got %v", history)
	}

	if _, err := svc.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	history = svc.History(context.Background())
	if len(history) != 3 {
		t.Fatalf("transcript length = %d, want 3", len(history))
	}
	if history[1].Role != domain.ChatRoleUser || history[1].Text != "hello" {
		t.Errorf("second entry = %+v, want the user message", history[1])
	}
	if history[2].Text != "reply" {
		t.Errorf("third entry = %+v, want the reply", history[2])
	}

	// The returned slice is a copy.
	history[0].Text = "mutated"
	if svc.History(context.Background())[0].Text == "mutated" {
		t.Error("History must return a detached copy")
	}
}
