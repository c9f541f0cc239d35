// Package jobs holds the background job handlers run by the queue worker.
package jobs

import (
	"context"
	"fmt"

	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/queue"
)

const (
	SubscriptionMailKey = "SubscriptionMail"
	CancellationMailKey = "CancellationMail"
)

// Mailer is the slice of the email service the jobs need.
type Mailer interface {
	SendSubscriptionMail(ctx context.Context, sub *models.Subscription) error
	SendCancellationMail(ctx context.Context, meeting *models.Meeting) error
}

// SubscriptionMail emails the meeting host about a new subscriber. The
// payload is the fully hydrated subscription captured at subscribe time.
func SubscriptionMail(mailer Mailer) queue.HandlerFunc {
	return func(ctx context.Context, payload any) error {
		sub, ok := payload.(*models.Subscription)
		if !ok {
			return fmt.Errorf("subscription mail: unexpected payload %T", payload)
		}
		return mailer.SendSubscriptionMail(ctx, sub)
	}
}

// CancellationMail emails the host a confirmation after a meeting is
// canceled. The payload is the canceled meeting with its host loaded.
func CancellationMail(mailer Mailer) queue.HandlerFunc {
	return func(ctx context.Context, payload any) error {
		meeting, ok := payload.(*models.Meeting)
		if !ok {
			return fmt.Errorf("cancellation mail: unexpected payload %T", payload)
		}
		return mailer.SendCancellationMail(ctx, meeting)
	}
}
