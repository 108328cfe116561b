package services

import (
	"context"
	"errors"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrChallengeNotFound = errors.New("challenge not found")

type ChallengeService struct{ db *gorm.DB }

func NewChallengeService(db *gorm.DB) *ChallengeService { return &ChallengeService{db: db} }

type ChallengeInput struct {
	Type   string         `json:"type"`
	Order  *int           `json:"order"`
	Config datatypes.JSON `json:"config"`
	Points *int           `json:"points"`
}

func (s *ChallengeService) ListByLevel(ctx context.Context, levelID string) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.db.WithContext(ctx).
		Where("level_id = ?", levelID).
		Order("sort_order ASC").
		Find(&challenges).Error
	return challenges, err
}

func (s *ChallengeService) Create(ctx context.Context, levelID string, in ChallengeInput) (*models.Challenge, error) {
	challenge := models.Challenge{
		LevelID: levelID,
		Type:    in.Type,
		Config:  in.Config,
		Points:  100,
	}
	if in.Order != nil {
		challenge.Order = *in.Order
	}
	if in.Points != nil {
		challenge.Points = *in.Points
	}
	if err := s.db.WithContext(ctx).Create(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *ChallengeService) Update(ctx context.Context, id string, in ChallengeInput) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.WithContext(ctx).First(&challenge, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}

	if in.Type != "" {
		challenge.Type = in.Type
	}
	if in.Order != nil {
		challenge.Order = *in.Order
	}
	if in.Config != nil {
		challenge.Config = in.Config
	}
	if in.Points != nil {
		challenge.Points = *in.Points
	}

	if err := s.db.WithContext(ctx).Save(&challenge).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *ChallengeService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Challenge{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrChallengeNotFound
	}
	return nil
}
