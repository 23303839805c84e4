package course

import "gorm.io/gorm"

// Section represents an ordered content section within a course
type Section struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Section order in course
	ContentFile string `json:"content_file"`                 // stored filename
	ContentPath string `json:"content_path"`                 // public path under /uploads
	IsDeleted   bool   `json:"-" gorm:"default:false"`

	// User IDs that completed this section, loaded from section_completions.
	CompletedBy []uint `json:"completed_by" gorm:"-"`
}
