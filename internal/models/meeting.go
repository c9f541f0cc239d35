package models

import (
	"encoding/json"
	"time"
)

// CancellationWindow is the minimum lead time a host must respect when
// canceling a meeting.
const CancellationWindow = 2 * time.Hour

// Meeting is a hostable event. Column names follow the original schema
// (titulo/descricao/local), which is also the wire format clients expect.
type Meeting struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"column:titulo;not null" json:"titulo"`
	Description string     `gorm:"column:descricao;type:text;not null" json:"descricao"`
	Location    string     `gorm:"column:local;not null" json:"local"`
	Date        time.Time  `gorm:"not null" json:"date"`
	UserID      uint       `gorm:"column:user_id;not null" json:"user_id"`
	Host        *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user,omitempty"`
	BannerID    *uint      `gorm:"column:banners_id" json:"-"`
	Banner      *Banner    `gorm:"foreignKey:BannerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"banner,omitempty"`
	CanceledAt  *time.Time `gorm:"column:canceled_at" json:"canceled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Meeting) TableName() string { return "meetings" }

// Past reports whether the meeting's start is behind the given instant.
func (m *Meeting) Past(now time.Time) bool { return m.Date.Before(now) }

// Cancelable reports whether the host can still cancel: the cancellation
// window must not have started yet.
func (m *Meeting) Cancelable(now time.Time) bool {
	return now.Before(m.Date.Add(-CancellationWindow))
}

func (m *Meeting) Canceled() bool { return m.CanceledAt != nil }

func (m Meeting) MarshalJSON() ([]byte, error) {
	type alias Meeting
	now := time.Now()
	return json.Marshal(struct {
		alias
		Past       bool `json:"past"`
		Cancelable bool `json:"cancelable"`
	}{alias(m), m.Past(now), m.Cancelable(now)})
}
