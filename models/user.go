package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	PublicID string `gorm:"type:varchar(36);uniqueIndex;not null" json:"publicId"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
}
