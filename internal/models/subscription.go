package models

import (
	"encoding/json"
	"time"
)

// Subscription enrolls a user in a meeting. Date is denormalized from the
// meeting at subscription time so the same-slot conflict check is a single
// indexed lookup. Rows are never deleted; cancellation sets CanceledAt.
type Subscription struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Date       time.Time  `gorm:"not null" json:"date"`
	UserID     uint       `gorm:"column:user_id;not null" json:"user_id"`
	User       *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`
	MeetingID  uint       `gorm:"column:meeting_id;not null" json:"meeting_id"`
	Meeting    *Meeting   `gorm:"foreignKey:MeetingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"meeting,omitempty"`
	CanceledAt *time.Time `gorm:"column:canceled_at" json:"canceled_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

func (s *Subscription) Past(now time.Time) bool { return s.Date.Before(now) }

func (s *Subscription) Cancelable(now time.Time) bool {
	return now.Before(s.Date.Add(-CancellationWindow))
}

func (s *Subscription) Canceled() bool { return s.CanceledAt != nil }

func (s Subscription) MarshalJSON() ([]byte, error) {
	type alias Subscription
	now := time.Now()
	return json.Marshal(struct {
		alias
		Past       bool `json:"past"`
		Cancelable bool `json:"cancelable"`
	}{alias(s), s.Past(now), s.Cancelable(now)})
}
