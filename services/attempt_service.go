package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/gorm"
)

var ErrAttemptNotFound = errors.New("attempt not found")

type AttemptService struct{ db *gorm.DB }

func NewAttemptService(db *gorm.DB) *AttemptService { return &AttemptService{db: db} }

func (s *AttemptService) Start(ctx context.Context, gameID, userID string, totalLevels int) (*models.GameAttempt, error) {
	attempt := models.GameAttempt{
		GameID:      gameID,
		UserID:      userID,
		TotalLevels: totalLevels,
		Status:      "in-progress",
	}
	if err := s.db.WithContext(ctx).Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

type AttemptUpdateInput struct {
	Score           *int   `json:"score"`
	MaxScore        *int   `json:"maxScore"`
	Duration        *int   `json:"duration"`
	CompletedLevels *int   `json:"completedLevels"`
	Status          string `json:"status"`
}

func (s *AttemptService) Update(ctx context.Context, id string, in AttemptUpdateInput) (*models.GameAttempt, error) {
	var attempt models.GameAttempt
	if err := s.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}

	if in.Score != nil {
		attempt.Score = *in.Score
	}
	if in.MaxScore != nil {
		attempt.MaxScore = *in.MaxScore
	}
	if in.Duration != nil {
		attempt.Duration = *in.Duration
	}
	if in.CompletedLevels != nil {
		attempt.CompletedLevels = *in.CompletedLevels
	}
	if in.Status != "" {
		attempt.Status = in.Status
	}

	if err := s.db.WithContext(ctx).Save(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *AttemptService) Complete(ctx context.Context, id string, score int) (*models.GameAttempt, error) {
	var attempt models.GameAttempt
	if err := s.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}

	now := time.Now()
	attempt.Score = score
	attempt.Status = "completed"
	attempt.CompletedAt = &now

	if err := s.db.WithContext(ctx).Save(&attempt).Error; err != nil {
		return nil, err
	}

	EmitAlert(attempt.UserID, "info", fmt.Sprintf("Game completed with score %d", score))
	EmitLeaderboardUpdate(ctx, attempt.GameID)
	return &attempt, nil
}

func (s *AttemptService) ListByUser(ctx context.Context, userID string) ([]models.GameAttempt, error) {
	var attempts []models.GameAttempt
	err := s.db.WithContext(ctx).
		Preload("Game").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}
