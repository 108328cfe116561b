package services

import (
	"context"
	"errors"
	"time"

	"github.com/JUN1078/game-based-learning/models"
	"github.com/JUN1078/game-based-learning/utils"

	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

type RegisterInput struct {
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=6"`
	DisplayName    string   `json:"displayName" binding:"required"`
	Gender         string   `json:"gender"`
	DateOfBirth    string   `json:"dateOfBirth"` // YYYY-MM-DD
	HeightCm       *float64 `json:"heightCm"`
	WeightKg       *float64 `json:"weightKg"`
	Goal           string   `json:"goal"`
	PreferredUnits string   `json:"preferredUnits"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:       in.Email,
		Password:    hashed,
		DisplayName: in.DisplayName,
		Role:        "player",
		Gender:      in.Gender,
		HeightCm:    in.HeightCm,
		WeightKg:    in.WeightKg,
		Goal:        in.Goal,
	}
	if in.PreferredUnits == "imperial" {
		user.PreferredUnits = "imperial"
	} else {
		user.PreferredUnits = "metric"
	}
	if in.DateOfBirth != "" {
		if dob, err := time.Parse("2006-01-02", in.DateOfBirth); err == nil {
			user.DateOfBirth = &dob
		}
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.New("invalid email or password")
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
