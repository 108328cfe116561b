package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CorosUpload is one device-derived training session.
type CorosUpload struct {
	ID              string   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string   `gorm:"type:uuid;index;not null" json:"userId"`
	ActiveCalories  float64  `gorm:"not null" json:"activeCalories"`
	TrainingLoad    *float64 `json:"trainingLoad,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	AvgHr           *int     `json:"avgHr,omitempty"`
	MaxHr           *int     `json:"maxHr,omitempty"`
	RecoveryStatus  string   `json:"recoveryStatus,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (u *CorosUpload) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
