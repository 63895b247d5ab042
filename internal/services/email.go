package services

import (
	"context"
	"fmt"
	"log/slog"

	"partyinvite/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendRSVPNotification tells the host about a new or changed RSVP using the "rsvp_notification" template.
func (s *emailService) SendRSVPNotification(ctx context.Context, data *domain.RSVPNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("rsvp notification data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("rsvp_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render rsvp_notification template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.HostEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send rsvp notification: %w", err)
	}
	s.logger.InfoContext(ctx, "rsvp notification sent", "guest", data.GuestName, "attending", data.Attending)
	return nil
}
