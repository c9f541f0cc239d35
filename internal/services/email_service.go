package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meetapp/server/internal/models"
	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional mail through Resend. In development no
// client is configured and mail is logged instead of sent.
type EmailService struct {
	client  *resend.Client
	from    string
	appName string
	isDev   bool
	logger  *slog.Logger
}

func NewEmailService(apiKey, from, appName string, isDev bool, logger *slog.Logger) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}
	return &EmailService{
		client:  client,
		from:    from,
		appName: appName,
		isDev:   isDev,
		logger:  logger,
	}
}

// SendSubscriptionMail notifies the meeting host that someone subscribed.
// The subscription must be hydrated with user and meeting (incl. host).
func (s *EmailService) SendSubscriptionMail(ctx context.Context, sub *models.Subscription) error {
	if sub == nil || sub.User == nil || sub.Meeting == nil || sub.Meeting.Host == nil {
		return fmt.Errorf("subscription mail: payload not hydrated")
	}
	host := sub.Meeting.Host
	subject := fmt.Sprintf("New subscription to %s on %s", sub.Meeting.Title, s.appName)
	body := fmt.Sprintf(
		"Hi %s,\n\n%s (%s) just subscribed to your meeting %q on %s.\n\n%s",
		host.Name, sub.User.Name, sub.User.Email, sub.Meeting.Title,
		sub.Meeting.Date.Format("Mon, 02 Jan 2006 at 15:04"), s.appName,
	)
	return s.send(ctx, "subscription", host.Email, subject, body)
}

// SendCancellationMail confirms a meeting cancellation to its host.
// The meeting must be hydrated with its host.
func (s *EmailService) SendCancellationMail(ctx context.Context, meeting *models.Meeting) error {
	if meeting == nil || meeting.Host == nil {
		return fmt.Errorf("cancellation mail: payload not hydrated")
	}
	subject := fmt.Sprintf("Meeting %s canceled on %s", meeting.Title, s.appName)
	body := fmt.Sprintf(
		"Hi %s,\n\nyour meeting %q scheduled for %s was canceled.\n\n%s",
		meeting.Host.Name, meeting.Title,
		meeting.Date.Format("Mon, 02 Jan 2006 at 15:04"), s.appName,
	)
	return s.send(ctx, "cancellation", meeting.Host.Email, subject, body)
}

func (s *EmailService) send(ctx context.Context, kind, to, subject, body string) error {
	if s.isDev {
		s.logger.Info("email sent (dev mode)", "type", kind, "to", to, "subject", subject)
		return nil
	}
	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}
	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		s.logger.Info("email sent", "type", kind, "to", to)
	}
	return err
}
