package services

import (
	"context"
	"fmt"

	"github.com/meetapp/server/internal/models"
)

// AttachBannerInput references a file the storage module already wrote.
type AttachBannerInput struct {
	Name string `json:"name" validate:"required"`
	Path string `json:"path" validate:"required"`
}

type BannerService struct {
	meetings models.MeetingRepo
	banners  models.BannerRepo
}

func NewBannerService(meetings models.MeetingRepo, banners models.BannerRepo) *BannerService {
	return &BannerService{meetings: meetings, banners: banners}
}

// Attach creates a banner for an existing meeting and links it to the
// meeting's banners_id in the same transaction.
func (s *BannerService) Attach(ctx context.Context, meetingID uint, input AttachBannerInput) (*models.Banner, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	if _, err := s.meetings.FindByID(ctx, meetingID); err != nil {
		return nil, err
	}

	banner := &models.Banner{Name: input.Name, Path: input.Path}
	if err := s.banners.AttachToMeeting(ctx, meetingID, banner); err != nil {
		return nil, err
	}
	return banner, nil
}
