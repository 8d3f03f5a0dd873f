package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Aashu-1911/Fitness-traker/models"
	"github.com/Aashu-1911/Fitness-traker/utils"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

// ProfileInput carries the client-supplied profile fields for creation.
// Values are validated by the controller before they reach the service.
type ProfileInput struct {
	Age              int
	Gender           models.Gender
	Height           float64
	Weight           float64
	ActivityLevel    models.ActivityLevel
	Goals            models.Goal
	HealthConditions []string
}

// ProfileUpdate carries partial updates; nil fields are left unchanged.
type ProfileUpdate struct {
	Age              *int
	Gender           *models.Gender
	Height           *float64
	Weight           *float64
	ActivityLevel    *models.ActivityLevel
	Goals            *models.Goal
	HealthConditions *[]string
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Create builds the profile with its derived fields. A second creation
// attempt for the same user is a conflict.
func (s *ProfileService) Create(ctx context.Context, userID uint, name string, in ProfileInput) (*models.HealthProfile, error) {
	profile := models.HealthProfile{
		UserID:           userID,
		Name:             name,
		Age:              in.Age,
		Gender:           in.Gender,
		Height:           in.Height,
		Weight:           in.Weight,
		ActivityLevel:    in.ActivityLevel,
		Goals:            in.Goals,
		HealthConditions: in.HealthConditions,
	}
	if profile.HealthConditions == nil {
		profile.HealthConditions = []string{}
	}
	derive(&profile)

	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProfileExists
		}
		return nil, err
	}

	return &profile, nil
}

// Update applies the provided fields and rederives bmi, bmiCategory and
// recommendedCalories so they can never go stale relative to their inputs.
func (s *ProfileService) Update(ctx context.Context, userID uint, in ProfileUpdate) (*models.HealthProfile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Age != nil {
		profile.Age = *in.Age
	}
	if in.Gender != nil {
		profile.Gender = *in.Gender
	}
	if in.Height != nil {
		profile.Height = *in.Height
	}
	if in.Weight != nil {
		profile.Weight = *in.Weight
	}
	if in.ActivityLevel != nil {
		profile.ActivityLevel = *in.ActivityLevel
	}
	if in.Goals != nil {
		profile.Goals = *in.Goals
	}
	if in.HealthConditions != nil {
		profile.HealthConditions = *in.HealthConditions
	}
	derive(profile)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

func derive(p *models.HealthProfile) {
	p.BMI = utils.CalcBMI(p.Height, p.Weight)
	p.BMICategory = utils.BMICategoryFor(p.BMI)
	p.RecommendedCalories = utils.RecommendedCalories(p.ActivityLevel, p.Goals)
}
