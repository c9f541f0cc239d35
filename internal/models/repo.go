package models

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// MeetingRepo is the persistence boundary for meetings. Active means
// canceled_at is null.
type MeetingRepo interface {
	Create(ctx context.Context, meeting *Meeting) error
	// FindByID loads a meeting in any state with its host.
	FindByID(ctx context.Context, id uint) (*Meeting, error)
	// FindActiveByID loads a non-canceled meeting with its host.
	FindActiveByID(ctx context.Context, id uint) (*Meeting, error)
	// FindHydratedByID loads a meeting with host (incl. avatar) and banner.
	FindHydratedByID(ctx context.Context, id uint) (*Meeting, error)
	// ListActiveByHost returns the host's active meetings ordered by date
	// ascending, hydrated with host and banner.
	ListActiveByHost(ctx context.Context, hostID uint, limit, offset int) ([]Meeting, error)
	Save(ctx context.Context, meeting *Meeting) error
}

// SubscriptionRepo is the persistence boundary for subscriptions.
type SubscriptionRepo interface {
	// Create inserts the subscription after re-validating the duplicate and
	// same-time invariants inside a transaction. Returns
	// ErrDuplicateSubscription or ErrTimeConflict when a concurrent request
	// won the race.
	Create(ctx context.Context, sub *Subscription) error
	FindActiveByUserAndMeeting(ctx context.Context, userID, meetingID uint) (*Subscription, error)
	FindActiveByUserAndDate(ctx context.Context, userID uint, date time.Time) (*Subscription, error)
	FindActiveByMeeting(ctx context.Context, meetingID uint) (*Subscription, error)
	// FindHydratedByID loads a subscription with user (incl. avatar) and
	// meeting (incl. host and banner) for the notification payload.
	FindHydratedByID(ctx context.Context, id uint) (*Subscription, error)
	// ListActiveByUser returns the user's active subscriptions ordered by
	// date ascending, fully hydrated.
	ListActiveByUser(ctx context.Context, userID uint, limit, offset int) ([]Subscription, error)
	Save(ctx context.Context, sub *Subscription) error
}

// BannerRepo persists banners.
type BannerRepo interface {
	// AttachToMeeting creates the banner and links it to the meeting in one
	// transaction.
	AttachToMeeting(ctx context.Context, meetingID uint, banner *Banner) error
}
