package services

import (
	"context"
	"math"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/gorm"
)

type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type GameAnalytics struct {
	GameID          string  `json:"gameId"`
	TotalAttempts   int     `json:"totalAttempts"`
	CompletionRate  float64 `json:"completionRate"` // percent, 2dp
	AverageScore    int     `json:"averageScore"`
	AverageDuration int     `json:"averageDuration"` // seconds
}

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"userId"`
	UserName       string `json:"userName"`
	UserPhoto      string `json:"userPhoto,omitempty"`
	Score          int    `json:"score"`
	CompletionTime int    `json:"completionTime"`
	Accuracy       int    `json:"accuracy"` // percent of levels completed
}

func (s *AnalyticsService) GameAnalytics(ctx context.Context, gameID string) (*GameAnalytics, error) {
	var attempts []models.GameAttempt
	if err := s.db.WithContext(ctx).Where("game_id = ?", gameID).Find(&attempts).Error; err != nil {
		return nil, err
	}

	out := summarizeAttempts(attempts)
	out.GameID = gameID
	return &out, nil
}

func (s *AnalyticsService) Leaderboard(ctx context.Context, gameID string, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var attempts []models.GameAttempt
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("game_id = ? AND status = ?", gameID, "completed").
		Order("score DESC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(attempts))
	for i, a := range attempts {
		entry := LeaderboardEntry{
			Rank:           i + 1,
			UserID:         a.UserID,
			Score:          a.Score,
			CompletionTime: a.Duration,
			Accuracy:       accuracyPercent(a.CompletedLevels, a.TotalLevels),
		}
		if a.User != nil {
			entry.UserName = a.User.DisplayName
			entry.UserPhoto = a.User.PhotoURL
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func summarizeAttempts(attempts []models.GameAttempt) GameAnalytics {
	total := len(attempts)
	var completed []models.GameAttempt
	for _, a := range attempts {
		if a.Status == "completed" {
			completed = append(completed, a)
		}
	}

	var rate float64
	if total > 0 {
		rate = float64(len(completed)) / float64(total) * 100
	}

	var scoreSum, durationSum int
	for _, a := range completed {
		scoreSum += a.Score
		durationSum += a.Duration
	}
	den := len(completed)
	if den == 0 {
		den = 1
	}

	return GameAnalytics{
		TotalAttempts:   total,
		CompletionRate:  round2(rate),
		AverageScore:    int(math.Round(float64(scoreSum) / float64(den))),
		AverageDuration: int(math.Round(float64(durationSum) / float64(den))),
	}
}

func accuracyPercent(completedLevels, totalLevels int) int {
	if totalLevels <= 0 {
		return 0
	}
	return int(math.Round(float64(completedLevels) / float64(totalLevels) * 100))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
