package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a learning course owned by an educator
type Course struct {
	gorm.Model
	EducatorID  uint           `json:"educator_id" gorm:"index;not null"`
	Educator    string         `json:"educator"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Categories  datatypes.JSON `json:"categories"` // JSON array of category names
	Price       float64        `json:"price" gorm:"default:0"`
	IsFree      bool           `json:"is_free" gorm:"default:false"`
	Enrolled    uint           `json:"enrolled" gorm:"default:0"` // denormalized enrollment count
	IsDeleted   bool           `json:"-" gorm:"default:false"`

	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
}
