package services

import (
	"errors"

	courseModels "learnify/models/course"

	"gorm.io/gorm"
)

// CompleteSection marks a section complete for a user. The unique index on
// (user_id, section_id) guarantees at most one completion row per pair even
// under concurrent requests. When requireEnrollment is set, the user must
// hold an enrollment in the owning course first.
func CompleteSection(db *gorm.DB, userID, courseID, sectionID uint, requireEnrollment bool) error {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	// The section must belong to this course, not merely exist.
	var section courseModels.Section
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", sectionID, courseID, false).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return err
	}

	if requireEnrollment {
		enrolled, err := IsEnrolled(db, userID, courseID)
		if err != nil {
			return err
		}
		if !enrolled {
			return ErrEnrollmentRequired
		}
	}

	completion := courseModels.SectionCompletion{
		UserID:    userID,
		SectionID: sectionID,
		CourseID:  courseID,
	}

	if err := db.Create(&completion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyCompleted
		}
		return err
	}

	return nil
}

// CompletedBy returns the user IDs that completed each of the given
// sections, keyed by section ID. Sections with no completions are absent.
func CompletedBy(db *gorm.DB, sectionIDs []uint) (map[uint][]uint, error) {
	if len(sectionIDs) == 0 {
		return map[uint][]uint{}, nil
	}

	var completions []courseModels.SectionCompletion
	err := db.Where("section_id IN ?", sectionIDs).
		Order("created_at asc").
		Find(&completions).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint][]uint, len(sectionIDs))
	for _, completion := range completions {
		result[completion.SectionID] = append(result[completion.SectionID], completion.UserID)
	}
	return result, nil
}
