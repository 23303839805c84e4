package services

import (
	"errors"

	courseModels "learnify/models/course"

	"gorm.io/gorm"
)

// Enroll records a user's enrollment in a course and bumps the course's
// denormalized enrolled counter in the same transaction. The composite
// unique index on (user_id, course_id) is the arbiter of "already
// enrolled": there is no read-before-write, so concurrent duplicate
// attempts cannot double-insert or double-count.
func Enroll(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Course{}).
			Where("id = ?", courseID).
			UpdateColumn("enrolled", gorm.Expr("enrolled + ?", 1)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	enrollment.Course = course
	return &enrollment, nil
}

// EnrollmentsForUser lists a user's enrollments joined with their courses.
// No enrollments is a valid empty result, not an error.
func EnrollmentsForUser(db *gorm.DB, userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	err := db.Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

// IsEnrolled reports whether a user has an enrollment for the course.
func IsEnrolled(db *gorm.DB, userID, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
