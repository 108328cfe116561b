package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Level struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	GameID       string `gorm:"type:uuid;index;not null" json:"gameId"`
	Order        int    `gorm:"column:sort_order;not null" json:"order"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	Difficulty   string `gorm:"size:16;default:medium" json:"difficulty"`
	PassingScore int    `gorm:"default:70" json:"passingScore"`

	Challenges []Challenge `gorm:"foreignKey:LevelID;constraint:OnDelete:CASCADE" json:"challenges,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

func (l *Level) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
