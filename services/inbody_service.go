package services

import (
	"context"
	"errors"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/gorm"
)

type InBodyService struct{ db *gorm.DB }

func NewInBodyService(db *gorm.DB) *InBodyService { return &InBodyService{db: db} }

type InBodyUploadInput struct {
	Weight             *float64 `json:"weight"`
	SkeletalMuscleMass *float64 `json:"skeletalMuscleMass"`
	BodyFatMass        *float64 `json:"bodyFatMass"`
	BodyFatPercent     *float64 `json:"bodyFatPercent"`
	FatFreeMass        *float64 `json:"fatFreeMass"`
	TotalBodyWater     *float64 `json:"totalBodyWater"`
	BMR                *float64 `json:"bmr"`
	VisceralFat        *float64 `json:"visceralFat"`
	ECWRatio           *float64 `json:"ecwRatio"`
	RawText            string   `json:"rawText"`
	ImageURL           string   `json:"imageUrl"`
}

func (s *InBodyService) Create(ctx context.Context, userID string, in InBodyUploadInput) (*models.InBodyReport, error) {
	report := &models.InBodyReport{
		UserID:             userID,
		SkeletalMuscleMass: in.SkeletalMuscleMass,
		BodyFatMass:        in.BodyFatMass,
		BodyFatPercent:     in.BodyFatPercent,
		FatFreeMass:        in.FatFreeMass,
		TotalBodyWater:     in.TotalBodyWater,
		BMR:                in.BMR,
		VisceralFat:        in.VisceralFat,
		ECWRatio:           in.ECWRatio,
	}
	if in.Weight != nil {
		report.Weight = *in.Weight
	}
	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// Latest returns the most recent report, or nil when the user has none.
func (s *InBodyService) Latest(ctx context.Context, userID string) (*models.InBodyReport, error) {
	var report models.InBodyReport
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (s *InBodyService) ListByUser(ctx context.Context, userID string, limit int) ([]models.InBodyReport, error) {
	if limit <= 0 {
		limit = 20
	}
	var reports []models.InBodyReport
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}
