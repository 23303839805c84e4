package course

import "gorm.io/gorm"

// Enrollment records that a user enrolled in a course. The composite
// unique index makes the insert itself reject duplicate enrollments.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID uint `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
