package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

type emailService struct {
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	broadcastDelay time.Duration
	logger         *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer. broadcastDelay is the fixed resolution time of the mock
// bulk dispatch.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, broadcastDelay time.Duration, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, broadcastDelay: broadcastDelay, logger: logger}
}

// SendWelcome sends the signup welcome email using the "welcome" template.
func (s *emailService) SendWelcome(ctx context.Context, data *domain.WelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	s.logger.InfoContext(ctx, "welcome email sent", "to", data.Email)
	return nil
}

// SendRSVPConfirmation sends the RSVP confirmation using the
// "rsvp_confirmation" template.
func (s *emailService) SendRSVPConfirmation(ctx context.Context, data *domain.RSVPConfirmationEmailData) error {
	if data == nil || data.Event == nil {
		return fmt.Errorf("rsvp confirmation data is nil")
	}
	if data.Email == "" {
		return fmt.Errorf("rsvp confirmation recipient is empty")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send rsvp confirmation: %w", err)
	}
	s.logger.InfoContext(ctx, "rsvp confirmation sent", "to", data.Email)
	return nil
}

// BroadcastAnnouncement represents the bulk-notification side effect. It
// resolves after a fixed delay with no per-recipient delivery; real fan-out is
// out of scope for the mock dispatcher.
func (s *emailService) BroadcastAnnouncement(ctx context.Context, announcement string, recipients int) error {
	select {
	case <-time.After(s.broadcastDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	s.logger.InfoContext(ctx, "announcement dispatched", "recipients", recipients, "bytes", len(announcement))
	return nil
}
