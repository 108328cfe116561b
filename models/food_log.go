package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodLog is one confirmed food entry. Rows are inserted in batches and
// never updated afterwards.
type FoodLog struct {
	ID              string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          string  `gorm:"type:uuid;index;not null" json:"userId"`
	FoodName        string  `gorm:"not null" json:"foodName"`
	Portion         string  `json:"portion,omitempty"`
	Calories        float64 `gorm:"not null" json:"calories"`
	Protein         float64 `gorm:"default:0" json:"protein"`
	Carbs           float64 `gorm:"default:0" json:"carbs"`
	Fat             float64 `gorm:"default:0" json:"fat"`
	ConfidenceScore float64 `gorm:"default:0.85" json:"confidenceScore"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (f *FoodLog) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
