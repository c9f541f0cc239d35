package models

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Advisory lock class for subscription writes. Scoping the lock to the user
// keeps unrelated subscribes concurrent.
const subscriptionLockClass = 1

type subscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) SubscriptionRepo {
	return &subscriptionRepo{db: db}
}

// Create re-runs the duplicate and same-time checks inside the insert
// transaction. Row locks cannot serialize two first-time subscribes (there is
// no row to lock yet), so the transaction first takes a per-user advisory
// lock; the partial unique index on active (user_id, meeting_id) backstops
// the duplicate invariant at the schema level.
func (r *subscriptionRepo) Create(ctx context.Context, sub *Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"SELECT pg_advisory_xact_lock(?, ?)",
			subscriptionLockClass, int32(sub.UserID),
		).Error
		if err != nil {
			return err
		}

		var existing []Subscription
		err = tx.Where("user_id = ? AND canceled_at IS NULL", sub.UserID).
			Where("meeting_id = ? OR date = ?", sub.MeetingID, sub.Date).
			Find(&existing).Error
		if err != nil {
			return err
		}
		if err := activeConflict(existing, sub); err != nil {
			return err
		}
		return translateCreateError(tx.Create(sub).Error)
	})
}

// activeConflict maps the user's conflicting active subscriptions to the
// invariant they violate. A duplicate of the same meeting wins over a
// same-slot conflict with another meeting.
func activeConflict(existing []Subscription, sub *Subscription) error {
	for i := range existing {
		if existing[i].MeetingID == sub.MeetingID {
			return ErrDuplicateSubscription
		}
	}
	if len(existing) > 0 {
		return ErrTimeConflict
	}
	return nil
}

// translateCreateError converts a unique-index violation on the insert into
// the domain error, so a writer that slipped past the checks anyway (lock
// bypassed by a manual write, for instance) still surfaces cleanly.
func translateCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSubscription
	}
	return err
}

func (r *subscriptionRepo) FindActiveByUserAndMeeting(ctx context.Context, userID, meetingID uint) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND meeting_id = ? AND canceled_at IS NULL", userID, meetingID).
		First(sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *subscriptionRepo) FindActiveByUserAndDate(ctx context.Context, userID uint, date time.Time) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND canceled_at IS NULL", userID, date).
		First(sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *subscriptionRepo) FindActiveByMeeting(ctx context.Context, meetingID uint) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND canceled_at IS NULL", meetingID).
		First(sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *subscriptionRepo) FindHydratedByID(ctx context.Context, id uint) (*Subscription, error) {
	sub := &Subscription{}
	err := r.db.WithContext(ctx).
		Preload("User.Avatar").
		Preload("Meeting.Host").
		Preload("Meeting.Banner").
		First(sub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (r *subscriptionRepo) ListActiveByUser(ctx context.Context, userID uint, limit, offset int) ([]Subscription, error) {
	var subs []Subscription
	err := r.db.WithContext(ctx).
		Preload("User.Avatar").
		Preload("Meeting.Host").
		Preload("Meeting.Banner").
		Where("user_id = ? AND canceled_at IS NULL", userID).
		Order("date ASC").
		Limit(limit).
		Offset(offset).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepo) Save(ctx context.Context, sub *Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
