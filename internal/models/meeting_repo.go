package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type meetingRepo struct {
	db *gorm.DB
}

func NewMeetingRepo(db *gorm.DB) MeetingRepo {
	return &meetingRepo{db: db}
}

func (r *meetingRepo) Create(ctx context.Context, meeting *Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

func (r *meetingRepo) FindByID(ctx context.Context, id uint) (*Meeting, error) {
	meeting := &Meeting{}
	err := r.db.WithContext(ctx).
		Preload("Host").
		First(meeting, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func (r *meetingRepo) FindActiveByID(ctx context.Context, id uint) (*Meeting, error) {
	meeting := &Meeting{}
	err := r.db.WithContext(ctx).
		Preload("Host").
		Where("canceled_at IS NULL").
		First(meeting, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func (r *meetingRepo) FindHydratedByID(ctx context.Context, id uint) (*Meeting, error) {
	meeting := &Meeting{}
	err := r.db.WithContext(ctx).
		Preload("Host.Avatar").
		Preload("Banner").
		First(meeting, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}
	return meeting, nil
}

func (r *meetingRepo) ListActiveByHost(ctx context.Context, hostID uint, limit, offset int) ([]Meeting, error) {
	var meetings []Meeting
	err := r.db.WithContext(ctx).
		Preload("Host.Avatar").
		Preload("Banner").
		Where("user_id = ? AND canceled_at IS NULL", hostID).
		Order("date ASC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepo) Save(ctx context.Context, meeting *Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}
