package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/meetapp/server/internal/jobs"
	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/queue"
)

// SubscribeInput carries the optional request body of a subscribe call. The
// date override is accepted for wire compatibility but the stored date is
// always copied from the meeting.
type SubscribeInput struct {
	MeetingID *uint      `json:"meeting_id"`
	Date      *time.Time `json:"date"`
}

type SubscriptionService struct {
	meetings      models.MeetingRepo
	subscriptions models.SubscriptionRepo
	dispatcher    queue.Dispatcher
	logger        *slog.Logger
	pageSize      int
	pageStride    int
	enforceWindow bool
	now           func() time.Time
}

func NewSubscriptionService(
	meetings models.MeetingRepo,
	subscriptions models.SubscriptionRepo,
	dispatcher queue.Dispatcher,
	logger *slog.Logger,
	pageSize, pageStride int,
	enforceWindow bool,
) *SubscriptionService {
	return &SubscriptionService{
		meetings:      meetings,
		subscriptions: subscriptions,
		dispatcher:    dispatcher,
		logger:        logger,
		pageSize:      pageSize,
		pageStride:    pageStride,
		enforceWindow: enforceWindow,
		now:           time.Now,
	}
}

// List returns one page of the user's active subscriptions, date ascending,
// hydrated with meeting, host and banner.
func (s *SubscriptionService) List(ctx context.Context, userID uint, page int) ([]models.Subscription, error) {
	if page < 1 {
		page = 1
	}
	return s.subscriptions.ListActiveByUser(ctx, userID, s.pageSize, (page-1)*s.pageStride)
}

// Subscribe runs the eligibility checks in order, short-circuiting on the
// first failure, and only writes once all of them pass:
//
//  1. meeting exists and is not canceled
//  2. the caller is not the host
//  3. the meeting has not started yet
//  4. the caller holds no active subscription to this meeting
//  5. the caller holds no active subscription at the same instant
//
// The repository re-validates 4 and 5 transactionally on insert. After the
// write, the hydrated subscription is handed to the mail queue; an enqueue
// failure is logged and does not fail the request.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, meetingID uint) (*models.Subscription, error) {
	meeting, err := s.meetings.FindActiveByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if meeting.UserID == userID {
		return nil, models.ErrSelfSubscription
	}

	if meeting.Past(s.now()) {
		return nil, models.ErrPastDate
	}

	if _, err := s.subscriptions.FindActiveByUserAndMeeting(ctx, userID, meetingID); err == nil {
		return nil, models.ErrDuplicateSubscription
	} else if !errors.Is(err, models.ErrSubscriptionNotFound) {
		return nil, err
	}

	if _, err := s.subscriptions.FindActiveByUserAndDate(ctx, userID, meeting.Date); err == nil {
		return nil, models.ErrTimeConflict
	} else if !errors.Is(err, models.ErrSubscriptionNotFound) {
		return nil, err
	}

	sub := &models.Subscription{
		Date:      meeting.Date,
		UserID:    userID,
		MeetingID: meetingID,
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.notifyHost(ctx, sub.ID)
	return sub, nil
}

// notifyHost loads the notification projection and enqueues the subscription
// mail. Both steps are best-effort relative to the already-committed write.
func (s *SubscriptionService) notifyHost(ctx context.Context, subID uint) {
	hydrated, err := s.subscriptions.FindHydratedByID(ctx, subID)
	if err != nil {
		s.logger.Warn("could not hydrate subscription for mail", "subscription_id", subID, "error", err)
		return
	}
	if err := s.dispatcher.Dispatch(queue.Job{Key: jobs.SubscriptionMailKey, Payload: hydrated}); err != nil {
		s.logger.Warn("could not enqueue subscription mail", "subscription_id", subID, "error", err)
	}
}

// Cancel looks up the active subscription for the meeting, verifies it
// belongs to the caller and soft-cancels it. The 2-hour lead required for
// meeting cancellation only applies here when the policy is enabled.
func (s *SubscriptionService) Cancel(ctx context.Context, userID, meetingID uint) (*models.Subscription, error) {
	sub, err := s.subscriptions.FindActiveByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if sub.UserID != userID {
		return nil, models.ErrForbidden
	}

	now := s.now()
	if s.enforceWindow && !sub.Cancelable(now) {
		return nil, models.ErrCancellationWindow
	}

	sub.CanceledAt = &now
	if err := s.subscriptions.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
