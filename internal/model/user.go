package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an anonymous identity created on registration. Several users may
// share one session token: registering again with an existing cookie adds a
// new row under the same SessionID.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SessionID string    `json:"session_id" gorm:"size:64;index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
