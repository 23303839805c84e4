package course

import "gorm.io/gorm"

// SectionCompletion tracks a user's completion of a section. At most one
// row may exist per (user, section), enforced by the composite unique index.
type SectionCompletion struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_user_section;not null"`
	SectionID uint `json:"section_id" gorm:"uniqueIndex:idx_user_section;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
}
