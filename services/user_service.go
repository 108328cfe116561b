package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JUN1078/game-based-learning/models"
	"github.com/JUN1078/game-based-learning/utils"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// ByID returns nil (not an error) when the user does not exist, so the
// energy pipeline can fall through to defaults.
func (s *UserService) ByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type ProfileInput struct {
	DisplayName    string   `json:"displayName"`
	PhotoURL       string   `json:"photoURL"`
	Gender         string   `json:"gender"`
	DateOfBirth    string   `json:"dateOfBirth"` // YYYY-MM-DD
	HeightCm       *float64 `json:"heightCm"`
	WeightKg       *float64 `json:"weightKg"`
	Goal           string   `json:"goal"`
	PreferredUnits string   `json:"preferredUnits"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	if in.DisplayName != "" {
		user.DisplayName = in.DisplayName
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err == nil {
			user.DateOfBirth = &dob
		}
	}
	if in.HeightCm != nil {
		user.HeightCm = in.HeightCm
	}
	if in.WeightKg != nil {
		user.WeightKg = in.WeightKg
	}
	if in.Goal != "" {
		user.Goal = in.Goal
	}
	if in.PreferredUnits == "metric" || in.PreferredUnits == "imperial" {
		user.PreferredUnits = in.PreferredUnits
	}
	if in.PhotoURL != "" {
		if strings.HasPrefix(in.PhotoURL, "data:") {
			url, err := utils.UploadBase64ImageToS3(in.PhotoURL, "profile/"+user.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to upload photo: %w", err)
			}
			user.PhotoURL = url
		} else {
			user.PhotoURL = in.PhotoURL
		}
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
