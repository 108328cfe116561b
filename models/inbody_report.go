package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InBodyReport is one body-composition snapshot. Reports are immutable;
// "latest" always means max created_at for the user.
type InBodyReport struct {
	ID                 string   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             string   `gorm:"type:uuid;index;not null" json:"userId"`
	Weight             float64  `json:"weight"` // kg
	SkeletalMuscleMass *float64 `json:"skeletalMuscleMass,omitempty"`
	BodyFatMass        *float64 `json:"bodyFatMass,omitempty"`
	BodyFatPercent     *float64 `json:"bodyFatPercent,omitempty"`
	FatFreeMass        *float64 `json:"fatFreeMass,omitempty"`
	TotalBodyWater     *float64 `json:"totalBodyWater,omitempty"`
	BMR                *float64 `gorm:"column:bmr" json:"bmr,omitempty"` // kcal/day
	VisceralFat        *float64 `json:"visceralFat,omitempty"`
	ECWRatio           *float64 `gorm:"column:ecw_ratio" json:"ecwRatio,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (r *InBodyReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
