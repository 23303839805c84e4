package services

import (
	"encoding/json"
	"errors"

	"learnify/models"
	courseModels "learnify/models/course"

	"gorm.io/gorm"
)

// SectionInput carries one section's metadata plus its stored content file.
type SectionInput struct {
	Title       string
	Description string
	ContentFile string
	ContentPath string
}

// CourseInput carries the validated course-creation payload.
type CourseInput struct {
	Title       string
	Description string
	Categories  []string
	Price       float64
	Sections    []SectionInput
}

// CreateCourse creates a course with its ordered sections. A zero price
// marks the course free; the numeric price field is never overloaded with
// a string marker. Sections start with no completions.
func CreateCourse(db *gorm.DB, educator *models.User, input CourseInput) (*courseModels.Course, error) {
	if input.Categories == nil {
		input.Categories = []string{}
	}
	categories, err := json.Marshal(input.Categories)
	if err != nil {
		return nil, err
	}

	course := courseModels.Course{
		EducatorID:  educator.ID,
		Educator:    educator.Name,
		Title:       input.Title,
		Description: input.Description,
		Categories:  categories,
		Price:       input.Price,
		IsFree:      input.Price == 0,
	}

	for i, s := range input.Sections {
		course.Sections = append(course.Sections, courseModels.Section{
			Title:       s.Title,
			Description: s.Description,
			OrderIndex:  i,
			ContentFile: s.ContentFile,
			ContentPath: s.ContentPath,
		})
	}

	if err := db.Create(&course).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

// ListCourses returns all live courses.
func ListCourses(db *gorm.DB) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	err := db.Where("is_deleted = ?", false).Order("created_at desc").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// ListCoursesByEducator returns the courses owned by one educator.
func ListCoursesByEducator(db *gorm.DB, educatorID uint) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	err := db.Where("educator_id = ? AND is_deleted = ?", educatorID, false).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseContent returns a course's sections in order, each annotated with
// the users that completed it.
func CourseContent(db *gorm.DB, courseID uint) ([]courseModels.Section, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var sections []courseModels.Section
	err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&sections).Error
	if err != nil {
		return nil, err
	}

	sectionIDs := make([]uint, len(sections))
	for i, section := range sections {
		sectionIDs[i] = section.ID
	}

	completed, err := CompletedBy(db, sectionIDs)
	if err != nil {
		return nil, err
	}
	for i := range sections {
		if users, ok := completed[sections[i].ID]; ok {
			sections[i].CompletedBy = users
		} else {
			sections[i].CompletedBy = []uint{}
		}
	}

	return sections, nil
}

// DeleteCourse removes a course together with its sections and their
// completion rows. The course and its sections are flagged deleted, so
// every is_deleted predicate keeps them out of reads. Enrollments are a
// weak reference and stay behind.
func DeleteCourse(db *gorm.DB, courseID uint) error {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&courseModels.SectionCompletion{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&courseModels.Section{}).
			Where("course_id = ?", courseID).
			UpdateColumn("is_deleted", true).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Course{}).
			Where("id = ?", courseID).
			UpdateColumn("is_deleted", true).Error
	})
}
