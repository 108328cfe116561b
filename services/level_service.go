package services

import (
	"context"
	"errors"
	"log"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/gorm"
)

var ErrLevelNotFound = errors.New("level not found")

type LevelService struct{ db *gorm.DB }

func NewLevelService(db *gorm.DB) *LevelService { return &LevelService{db: db} }

type LevelInput struct {
	Order        *int   `json:"order"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Difficulty   string `json:"difficulty"`
	PassingScore *int   `json:"passingScore"`
}

func (s *LevelService) ListByGame(ctx context.Context, gameID string) ([]models.Level, error) {
	var levels []models.Level
	err := s.db.WithContext(ctx).
		Preload("Challenges", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("game_id = ?", gameID).
		Order("sort_order ASC").
		Find(&levels).Error
	return levels, err
}

func (s *LevelService) Get(ctx context.Context, id string) (*models.Level, error) {
	var level models.Level
	err := s.db.WithContext(ctx).
		Preload("Challenges", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&level, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLevelNotFound
		}
		return nil, err
	}
	return &level, nil
}

func (s *LevelService) Create(ctx context.Context, gameID string, in LevelInput) (*models.Level, error) {
	level := models.Level{
		GameID:       gameID,
		Title:        in.Title,
		Description:  in.Description,
		Difficulty:   "medium",
		PassingScore: 70,
	}
	if in.Order != nil {
		level.Order = *in.Order
	}
	if in.Difficulty != "" {
		level.Difficulty = in.Difficulty
	}
	if in.PassingScore != nil {
		level.PassingScore = *in.PassingScore
	}

	if err := s.db.WithContext(ctx).Create(&level).Error; err != nil {
		return nil, err
	}
	// Keep the parent's level count in sync. The level itself is already
	// committed, so a failed sync is logged rather than returned.
	err := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		UpdateColumn("total_levels", gorm.Expr("total_levels + 1")).Error
	if err != nil {
		log.Printf("total_levels sync failed for game %s: %v", gameID, err)
	}
	return &level, nil
}

func (s *LevelService) Update(ctx context.Context, id string, in LevelInput) (*models.Level, error) {
	level, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		level.Title = in.Title
	}
	if in.Description != "" {
		level.Description = in.Description
	}
	if in.Difficulty != "" {
		level.Difficulty = in.Difficulty
	}
	if in.Order != nil {
		level.Order = *in.Order
	}
	if in.PassingScore != nil {
		level.PassingScore = *in.PassingScore
	}

	if err := s.db.WithContext(ctx).Save(level).Error; err != nil {
		return nil, err
	}
	return level, nil
}

func (s *LevelService) Delete(ctx context.Context, id string) error {
	var level models.Level
	if err := s.db.WithContext(ctx).First(&level, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLevelNotFound
		}
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&level).Error; err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("id = ? AND total_levels > 0", level.GameID).
		UpdateColumn("total_levels", gorm.Expr("total_levels - 1")).Error
	if err != nil {
		log.Printf("total_levels sync failed for game %s: %v", level.GameID, err)
	}
	return nil
}

// Reorder rewrites sort_order to match the given id sequence.
func (s *LevelService) Reorder(ctx context.Context, gameID string, levelIDs []string) ([]models.Level, error) {
	for i, id := range levelIDs {
		err := s.db.WithContext(ctx).Model(&models.Level{}).
			Where("id = ? AND game_id = ?", id, gameID).
			UpdateColumn("sort_order", i+1).Error
		if err != nil {
			return nil, err
		}
	}
	return s.ListByGame(ctx, gameID)
}
