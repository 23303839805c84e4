package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string    `json:"name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Role      string    `json:"role" gorm:"default:'STUDENT'"` // STUDENT, EDUCATOR
	Password  string    `json:"-" gorm:"not null"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
}
