package services

import (
	"context"
	"sort"
	"time"

	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/queue"
)

// In-memory repositories mirroring the gorm implementations' contracts,
// including the transactional re-check on subscription insert.

type fakeMeetingRepo struct {
	meetings map[uint]*models.Meeting
	nextID   uint
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[uint]*models.Meeting{}}
}

func (r *fakeMeetingRepo) Create(_ context.Context, m *models.Meeting) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.meetings[m.ID] = &cp
	return nil
}

func (r *fakeMeetingRepo) FindByID(_ context.Context, id uint) (*models.Meeting, error) {
	m, ok := r.meetings[id]
	if !ok {
		return nil, models.ErrMeetingNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMeetingRepo) FindActiveByID(ctx context.Context, id uint) (*models.Meeting, error) {
	m, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Canceled() {
		return nil, models.ErrMeetingNotFound
	}
	return m, nil
}

func (r *fakeMeetingRepo) FindHydratedByID(ctx context.Context, id uint) (*models.Meeting, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeMeetingRepo) ListActiveByHost(_ context.Context, hostID uint, limit, offset int) ([]models.Meeting, error) {
	var out []models.Meeting
	for _, m := range r.meetings {
		if m.UserID == hostID && !m.Canceled() {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMeetingRepo) Save(_ context.Context, m *models.Meeting) error {
	cp := *m
	r.meetings[m.ID] = &cp
	return nil
}

type fakeSubscriptionRepo struct {
	subs   map[uint]*models.Subscription
	nextID uint
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uint]*models.Subscription{}}
}

func (r *fakeSubscriptionRepo) Create(_ context.Context, sub *models.Subscription) error {
	for _, s := range r.subs {
		if s.UserID != sub.UserID || s.Canceled() {
			continue
		}
		if s.MeetingID == sub.MeetingID {
			return models.ErrDuplicateSubscription
		}
		if s.Date.Equal(sub.Date) {
			return models.ErrTimeConflict
		}
	}
	r.nextID++
	sub.ID = r.nextID
	cp := *sub
	r.subs[sub.ID] = &cp
	return nil
}

func (r *fakeSubscriptionRepo) FindActiveByUserAndMeeting(_ context.Context, userID, meetingID uint) (*models.Subscription, error) {
	for _, s := range r.subs {
		if s.UserID == userID && s.MeetingID == meetingID && !s.Canceled() {
			cp := *s
			return &cp, nil
		}
	}
	return nil, models.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) FindActiveByUserAndDate(_ context.Context, userID uint, date time.Time) (*models.Subscription, error) {
	for _, s := range r.subs {
		if s.UserID == userID && s.Date.Equal(date) && !s.Canceled() {
			cp := *s
			return &cp, nil
		}
	}
	return nil, models.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) FindActiveByMeeting(_ context.Context, meetingID uint) (*models.Subscription, error) {
	var found *models.Subscription
	for _, s := range r.subs {
		if s.MeetingID == meetingID && !s.Canceled() {
			if found == nil || s.ID < found.ID {
				found = s
			}
		}
	}
	if found == nil {
		return nil, models.ErrSubscriptionNotFound
	}
	cp := *found
	return &cp, nil
}

func (r *fakeSubscriptionRepo) FindHydratedByID(_ context.Context, id uint) (*models.Subscription, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, models.ErrSubscriptionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubscriptionRepo) ListActiveByUser(_ context.Context, userID uint, limit, offset int) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.subs {
		if s.UserID == userID && !s.Canceled() {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSubscriptionRepo) Save(_ context.Context, sub *models.Subscription) error {
	cp := *sub
	r.subs[sub.ID] = &cp
	return nil
}

type fakeBannerRepo struct {
	meetings *fakeMeetingRepo
	nextID   uint
}

func (r *fakeBannerRepo) AttachToMeeting(_ context.Context, meetingID uint, banner *models.Banner) error {
	m, ok := r.meetings.meetings[meetingID]
	if !ok {
		return models.ErrMeetingNotFound
	}
	r.nextID++
	banner.ID = r.nextID
	id := banner.ID
	m.BannerID = &id
	return nil
}

type fakeDispatcher struct {
	jobs []queue.Job
	err  error
}

func (d *fakeDispatcher) Dispatch(job queue.Job) error {
	if d.err != nil {
		return d.err
	}
	d.jobs = append(d.jobs, job)
	return nil
}
