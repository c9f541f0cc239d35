package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/meetapp/server/internal/jobs"
	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/queue"
)

// CreateMeetingInput is the payload for creating a meeting. Field names keep
// the original wire format.
type CreateMeetingInput struct {
	Title       string    `json:"titulo" validate:"required"`
	Description string    `json:"descricao" validate:"required"`
	Location    string    `json:"local" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
}

// UpdateMeetingInput is a partial patch; nil fields are left untouched.
type UpdateMeetingInput struct {
	Title       *string    `json:"titulo" validate:"omitempty,min=1"`
	Description *string    `json:"descricao" validate:"omitempty,min=1"`
	Location    *string    `json:"local" validate:"omitempty,min=1"`
	Date        *time.Time `json:"date"`
}

type MeetingService struct {
	meetings   models.MeetingRepo
	dispatcher queue.Dispatcher
	logger     *slog.Logger
	pageSize   int
	now        func() time.Time
}

func NewMeetingService(meetings models.MeetingRepo, dispatcher queue.Dispatcher, logger *slog.Logger, pageSize int) *MeetingService {
	return &MeetingService{
		meetings:   meetings,
		dispatcher: dispatcher,
		logger:     logger,
		pageSize:   pageSize,
		now:        time.Now,
	}
}

// List returns one page of the host's active meetings, date ascending.
func (s *MeetingService) List(ctx context.Context, hostID uint, page int) ([]models.Meeting, error) {
	if page < 1 {
		page = 1
	}
	return s.meetings.ListActiveByHost(ctx, hostID, s.pageSize, (page-1)*s.pageSize)
}

// Create validates the input, rejects dates whose hour has already started
// and persists a meeting owned by hostID.
func (s *MeetingService) Create(ctx context.Context, hostID uint, input CreateMeetingInput) (*models.Meeting, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	hourStart := input.Date.Truncate(time.Hour)
	if hourStart.Before(s.now()) {
		return nil, models.ErrPastDate
	}

	meeting := &models.Meeting{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Date:        input.Date,
		UserID:      hostID,
	}
	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// Update applies a partial patch to a meeting the caller owns and returns the
// refreshed projection including the banner.
func (s *MeetingService) Update(ctx context.Context, userID, meetingID uint, patch UpdateMeetingInput) (*models.Meeting, error) {
	if err := models.Validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.UserID != userID {
		return nil, models.ErrForbidden
	}

	if patch.Title != nil {
		meeting.Title = *patch.Title
	}
	if patch.Description != nil {
		meeting.Description = *patch.Description
	}
	if patch.Location != nil {
		meeting.Location = *patch.Location
	}
	if patch.Date != nil {
		meeting.Date = *patch.Date
	}
	if err := s.meetings.Save(ctx, meeting); err != nil {
		return nil, err
	}
	return s.meetings.FindHydratedByID(ctx, meetingID)
}

// Cancel soft-cancels a meeting the caller owns, at least two hours before it
// starts, and hands the canceled record to the mail queue. A meeting that is
// already canceled is not found by the active lookup, so a second cancel is
// rejected rather than re-applied.
func (s *MeetingService) Cancel(ctx context.Context, userID, meetingID uint) (*models.Meeting, error) {
	meeting, err := s.meetings.FindActiveByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.UserID != userID {
		return nil, models.ErrForbidden
	}

	now := s.now()
	if !meeting.Cancelable(now) {
		return nil, models.ErrCancellationWindow
	}

	meeting.CanceledAt = &now
	if err := s.meetings.Save(ctx, meeting); err != nil {
		return nil, err
	}

	// Mail delivery is a separate failure domain: a full queue must not undo
	// the cancellation.
	if err := s.dispatcher.Dispatch(queue.Job{Key: jobs.CancellationMailKey, Payload: meeting}); err != nil {
		s.logger.Warn("could not enqueue cancellation mail", "meeting_id", meeting.ID, "error", err)
	}
	return meeting, nil
}
