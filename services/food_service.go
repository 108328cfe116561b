package services

import (
	"context"
	"time"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodLogItemInput struct {
	FoodName        string   `json:"foodName" binding:"required"`
	Portion         string   `json:"portion"`
	Calories        float64  `json:"calories"`
	Protein         *float64 `json:"protein"`
	Carbs           *float64 `json:"carbs"`
	Fat             *float64 `json:"fat"`
	ConfidenceScore *float64 `json:"confidenceScore"`
}

// LogItems inserts one row per confirmed item. There is no batch
// transactionality beyond what the store gives each insert.
func (s *FoodService) LogItems(ctx context.Context, userID string, items []FoodLogItemInput) ([]models.FoodLog, error) {
	rows := make([]models.FoodLog, 0, len(items))
	for _, item := range items {
		row := models.FoodLog{
			UserID:          userID,
			FoodName:        item.FoodName,
			Portion:         item.Portion,
			Calories:        item.Calories,
			ConfidenceScore: 0.85,
		}
		if item.Protein != nil {
			row.Protein = *item.Protein
		}
		if item.Carbs != nil {
			row.Carbs = *item.Carbs
		}
		if item.Fat != nil {
			row.Fat = *item.Fat
		}
		if item.ConfidenceScore != nil {
			row.ConfidenceScore = *item.ConfidenceScore
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *FoodService) ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Find(&logs).Error
	return logs, err
}

func (s *FoodService) ListByUser(ctx context.Context, userID string, limit int) ([]models.FoodLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
