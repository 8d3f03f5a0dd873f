package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyLog holds one user's intake and activity for one calendar day.
// Date is truncated to local midnight; the composite unique index makes
// concurrent get-or-create attempts for the same day fail with a
// duplicate-key error instead of producing two rows.
type DailyLog struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"-"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_daily_logs_user_date" json:"date"`

	WaterIntake float64   `gorm:"not null;default:0" json:"waterIntake"` // ml
	Calories    float64   `gorm:"not null;default:0" json:"calories"`
	Workouts    []Workout `gorm:"constraint:OnDelete:CASCADE" json:"workouts"`
	Weight      *float64  `json:"weight,omitempty"` // kg, optional
}

type Workout struct {
	gorm.Model
	DailyLogID uint        `gorm:"index;not null" json:"-"`
	Name       string      `gorm:"not null" json:"name"`
	Duration   int         `gorm:"not null" json:"duration"` // minutes
	Type       WorkoutType `gorm:"size:15;not null" json:"type"`
}
