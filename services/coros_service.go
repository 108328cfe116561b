package services

import (
	"context"
	"time"

	"github.com/JUN1078/game-based-learning/models"

	"gorm.io/gorm"
)

type CorosService struct{ db *gorm.DB }

func NewCorosService(db *gorm.DB) *CorosService { return &CorosService{db: db} }

type CorosUploadInput struct {
	ActiveCalories  *float64 `json:"activeCalories"`
	TrainingLoad    *float64 `json:"trainingLoad"`
	DurationMinutes *int     `json:"durationMinutes"`
	AvgHr           *int     `json:"avgHr"`
	MaxHr           *int     `json:"maxHr"`
	RecoveryStatus  string   `json:"recoveryStatus"`
	RawText         string   `json:"rawText"`
	ImageURL        string   `json:"imageUrl"`
}

func (s *CorosService) Create(ctx context.Context, userID string, in CorosUploadInput) (*models.CorosUpload, error) {
	upload := &models.CorosUpload{
		UserID:          userID,
		TrainingLoad:    in.TrainingLoad,
		DurationMinutes: in.DurationMinutes,
		AvgHr:           in.AvgHr,
		MaxHr:           in.MaxHr,
		RecoveryStatus:  in.RecoveryStatus,
	}
	if in.ActiveCalories != nil {
		upload.ActiveCalories = *in.ActiveCalories
	}
	if err := s.db.WithContext(ctx).Create(upload).Error; err != nil {
		return nil, err
	}
	return upload, nil
}

func (s *CorosService) ListForDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.CorosUpload, error) {
	var sessions []models.CorosUpload
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end).
		Find(&sessions).Error
	return sessions, err
}

func (s *CorosService) ListByUser(ctx context.Context, userID string, limit int) ([]models.CorosUpload, error) {
	if limit <= 0 {
		limit = 20
	}
	var sessions []models.CorosUpload
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
