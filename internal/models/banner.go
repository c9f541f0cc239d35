package models

import (
	"encoding/json"
	"time"
)

// Banner is the promotional image attached to a meeting. Name keeps the
// uploader's original file name; Path is where the storage module wrote it.
type Banner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Path      string    `gorm:"not null" json:"path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Banner) TableName() string { return "banners" }

func (b Banner) URL() string { return "/files/" + b.Path }

func (b Banner) MarshalJSON() ([]byte, error) {
	type alias Banner
	return json.Marshal(struct {
		alias
		URL string `json:"url"`
	}{alias(b), b.URL()})
}
