package models

import (
	"context"

	"gorm.io/gorm"
)

type bannerRepo struct {
	db *gorm.DB
}

func NewBannerRepo(db *gorm.DB) BannerRepo {
	return &bannerRepo{db: db}
}

func (r *bannerRepo) AttachToMeeting(ctx context.Context, meetingID uint, banner *Banner) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(banner).Error; err != nil {
			return err
		}
		result := tx.Model(&Meeting{}).
			Where("id = ?", meetingID).
			Update("banners_id", banner.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMeetingNotFound
		}
		return nil
	})
}
