package models

import (
	"gorm.io/gorm"
)

// HealthProfile is the one-per-user health record. BMI, BMICategory and
// RecommendedCalories are derived from the other fields and must always be
// recomputed together whenever height, weight, activity level or goals change.
type HealthProfile struct {
	gorm.Model
	UserID uint   `gorm:"uniqueIndex;not null" json:"-"`
	Name   string `json:"name,omitempty"`

	Age              int           `json:"age"`
	Gender           Gender        `gorm:"size:10;not null" json:"gender"`
	Height           float64       `gorm:"not null" json:"height"` // cm
	Weight           float64       `gorm:"not null" json:"weight"` // kg
	ActivityLevel    ActivityLevel `gorm:"size:10;not null" json:"activityLevel"`
	Goals            Goal          `gorm:"size:20;not null" json:"goals"`
	HealthConditions []string      `gorm:"serializer:json" json:"healthConditions"`

	BMI                 float64     `json:"bmi"`
	BMICategory         BMICategory `gorm:"size:15" json:"bmiCategory"`
	RecommendedCalories int         `json:"recommendedCalories"`
}
