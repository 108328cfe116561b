package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Game is an admin-authored learning game composed of ordered levels.
type Game struct {
	ID                 string `gorm:"type:uuid;primaryKey" json:"id"`
	Title              string `gorm:"not null" json:"title"`
	Description        string `gorm:"type:text" json:"description"`
	Thumbnail          string `json:"thumbnail,omitempty"`
	Status             string `gorm:"size:16;default:draft" json:"status"`      // "draft" | "published" | "archived"
	Difficulty         string `gorm:"size:16;default:medium" json:"difficulty"` // "easy" | "medium" | "hard"
	EstimatedDuration  int    `gorm:"default:30" json:"estimatedDuration"`      // minutes
	TotalLevels        int    `gorm:"default:0" json:"totalLevels"`
	LearningObjectives string `gorm:"type:text" json:"learningObjectives,omitempty"` // comma-separated
	CreatedBy          string `gorm:"type:uuid;index" json:"createdBy"`

	Levels []Level `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"levels,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
