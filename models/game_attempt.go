package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameAttempt struct {
	ID              string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string `gorm:"type:uuid;index;not null" json:"userId"`
	GameID          string `gorm:"type:uuid;index;not null" json:"gameId"`
	Score           int    `gorm:"default:0" json:"score"`
	MaxScore        int    `gorm:"default:0" json:"maxScore"`
	Duration        int    `gorm:"default:0" json:"duration"` // seconds
	CompletedLevels int    `gorm:"default:0" json:"completedLevels"`
	TotalLevels     int    `gorm:"default:0" json:"totalLevels"`
	Status          string `gorm:"size:16;default:in-progress" json:"status"` // "in-progress" | "completed" | "abandoned"

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Game *Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"game,omitempty"`

	StartedAt   time.Time  `gorm:"autoCreateTime" json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (a *GameAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
