package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrGameNotFound = errors.New("game not found")

type GameService struct{ db *gorm.DB }

func NewGameService(db *gorm.DB) *GameService { return &GameService{db: db} }

type GameInput struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Thumbnail          string   `json:"thumbnail"`
	Status             string   `json:"status"`
	Difficulty         string   `json:"difficulty"`
	EstimatedDuration  *int     `json:"estimatedDuration"`
	LearningObjectives []string `json:"learningObjectives"`
}

func (s *GameService) ListAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).
		Preload("Levels", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("created_at DESC").
		Find(&games).Error
	return games, err
}

func (s *GameService) Get(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).
		Preload("Levels", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Levels.Challenges", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&game, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) Create(ctx context.Context, in GameInput, userID string) (*models.Game, error) {
	game := models.Game{
		Title:              in.Title,
		Description:        in.Description,
		Thumbnail:          in.Thumbnail,
		Status:             "draft",
		Difficulty:         "medium",
		EstimatedDuration:  30,
		LearningObjectives: joinObjectives(in.LearningObjectives),
		CreatedBy:          userID,
	}
	if in.Status != "" {
		game.Status = in.Status
	}
	if in.Difficulty != "" {
		game.Difficulty = in.Difficulty
	}
	if in.EstimatedDuration != nil {
		game.EstimatedDuration = *in.EstimatedDuration
	}
	if err := s.db.WithContext(ctx).Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) Update(ctx context.Context, id string, in GameInput) (*models.Game, error) {
	game, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		game.Title = in.Title
	}
	if in.Description != "" {
		game.Description = in.Description
	}
	if in.Thumbnail != "" {
		game.Thumbnail = in.Thumbnail
	}
	if in.Status != "" {
		game.Status = in.Status
	}
	if in.Difficulty != "" {
		game.Difficulty = in.Difficulty
	}
	if in.EstimatedDuration != nil {
		game.EstimatedDuration = *in.EstimatedDuration
	}
	if in.LearningObjectives != nil {
		game.LearningObjectives = joinObjectives(in.LearningObjectives)
	}

	if err := s.db.WithContext(ctx).Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Game{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (s *GameService) Publish(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	game.Status = "published"
	if err := s.db.WithContext(ctx).Save(game).Error; err != nil {
		return nil, err
	}
	return game, nil
}

// Duplicate deep-copies a game with its levels and challenges into a
// fresh draft owned by userID.
func (s *GameService) Duplicate(ctx context.Context, id, userID string) (*models.Game, error) {
	original, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	copyGame := models.Game{
		Title:              fmt.Sprintf("%s (Copy)", original.Title),
		Description:        original.Description,
		Thumbnail:          original.Thumbnail,
		Status:             "draft",
		Difficulty:         original.Difficulty,
		EstimatedDuration:  original.EstimatedDuration,
		TotalLevels:        original.TotalLevels,
		LearningObjectives: original.LearningObjectives,
		CreatedBy:          userID,
	}
	for _, lvl := range original.Levels {
		copyLevel := models.Level{
			Order:        lvl.Order,
			Title:        lvl.Title,
			Description:  lvl.Description,
			Difficulty:   lvl.Difficulty,
			PassingScore: lvl.PassingScore,
		}
		for _, ch := range lvl.Challenges {
			copyLevel.Challenges = append(copyLevel.Challenges, models.Challenge{
				Type:   ch.Type,
				Order:  ch.Order,
				Config: datatypes.JSON(append([]byte(nil), ch.Config...)),
				Points: ch.Points,
			})
		}
		copyGame.Levels = append(copyGame.Levels, copyLevel)
	}

	if err := s.db.WithContext(ctx).Create(&copyGame).Error; err != nil {
		return nil, err
	}
	return &copyGame, nil
}

func joinObjectives(objectives []string) string {
	return strings.Join(objectives, ",")
}
