package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is a logged meal owned by exactly one User. UserID is a plain scope
// column, not a cascading foreign key.
type Meal struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:char(36);index;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:1024"`
	IsOnDiet    bool      `json:"is_on_diet" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID and normalizes the meal date to second precision.
func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Date = m.Date.Truncate(time.Second)
	return nil
}
