package models

import (
	"encoding/json"
	"time"
)

// User accounts are provisioned by the auth module; this service only reads
// them to hydrate meeting and subscription projections.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	AvatarID  *uint     `gorm:"column:avatar_id" json:"-"`
	Avatar    *File     `gorm:"foreignKey:AvatarID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// File is an uploaded asset (user avatars). The upload itself happens in the
// file-storage module; rows here only carry the stored name and path.
type File struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Path      string    `gorm:"not null" json:"path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (File) TableName() string { return "files" }

func (f File) URL() string { return "/files/" + f.Path }

func (f File) MarshalJSON() ([]byte, error) {
	type alias File
	return json.Marshal(struct {
		alias
		URL string `json:"url"`
	}{alias(f), f.URL()})
}
