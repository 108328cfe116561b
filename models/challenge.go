package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Challenge is one playable unit inside a level. Config carries the
// type-specific payload (quiz questions, text prompts, mini-game params).
type Challenge struct {
	ID      string         `gorm:"type:uuid;primaryKey" json:"id"`
	LevelID string         `gorm:"type:uuid;index;not null" json:"levelId"`
	Type    string         `gorm:"not null" json:"type"` // "quiz" | "text" | "mini-game"
	Order   int            `gorm:"column:sort_order;not null" json:"order"`
	Config  datatypes.JSON `gorm:"type:jsonb" json:"config"`
	Points  int            `gorm:"default:100" json:"points"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
