package services

import (
	"testing"

	"learnify/models"
	courseModels "learnify/models/course"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the full schema. Each test
// gets its own database so unique-index state never leaks between tests.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.Enrollment{},
		&courseModels.SectionCompletion{},
	))

	return db
}

// seedCourse inserts a course with the given number of sections.
func seedCourse(t *testing.T, db *gorm.DB, title string, sectionCount int) *courseModels.Course {
	t.Helper()

	course := courseModels.Course{
		EducatorID: 1,
		Educator:   "Test Educator",
		Title:      title,
		Categories: []byte(`["testing"]`),
		IsFree:     true,
	}
	for i := 0; i < sectionCount; i++ {
		course.Sections = append(course.Sections, courseModels.Section{
			Title:      "Section",
			OrderIndex: i,
		})
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}
