package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL,omitempty"`
	Role        string `gorm:"size:16;default:player" json:"role"` // "player" | "admin"

	// Fallback anthropometrics for the energy pipeline when no InBody
	// report exists yet.
	Gender         string     `json:"gender,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	HeightCm       *float64   `json:"heightCm,omitempty"`
	WeightKg       *float64   `json:"weightKg,omitempty"`
	Goal           string     `json:"goal,omitempty"`
	PreferredUnits string     `gorm:"size:16;default:metric" json:"preferredUnits"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
