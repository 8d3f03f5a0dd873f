package models

import (
	"time"

	"gorm.io/gorm"
)

// Challenge is keyed by (user, type, dateAssigned): today's midnight for
// daily challenges, Monday midnight of the current week for weekly ones.
// Title and description are immutable once generated; IsCompleted only
// ever transitions false -> true.
type Challenge struct {
	gorm.Model
	UserID       uint          `gorm:"not null;uniqueIndex:idx_challenges_user_type_date" json:"-"`
	Type         ChallengeType `gorm:"size:10;not null;uniqueIndex:idx_challenges_user_type_date" json:"type"`
	DateAssigned time.Time     `gorm:"not null;uniqueIndex:idx_challenges_user_type_date" json:"dateAssigned"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	IsCompleted bool   `gorm:"not null;default:false" json:"isCompleted"`
}
