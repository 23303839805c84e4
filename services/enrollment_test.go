package services

import (
	"errors"
	"sync"
	"testing"

	courseModels "learnify/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, "Go Basics", 2)

	enrollment, err := Enroll(db, 1, course.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), enrollment.UserID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Equal(t, "Go Basics", enrollment.Course.Title)

	var stored courseModels.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, uint(1), stored.Enrolled)
}

func TestEnrollDuplicate(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, "Go Basics", 1)

	_, err := Enroll(db, 1, course.ID)
	require.NoError(t, err)

	_, err = Enroll(db, 1, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Exactly one record, exactly one counter increment
	var count int64
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", 1, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored courseModels.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, uint(1), stored.Enrolled)
}

func TestEnrollConcurrentDuplicate(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, "Go Basics", 1)

	// The unique index is the arbiter, so concurrent attempts for the
	// same pair must yield exactly one success and no double-count.
	const attempts = 8
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Enroll(db, 1, course.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrAlreadyEnrolled):
			conflicts++
		default:
			t.Fatalf("unexpected enroll error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)

	var count int64
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", 1, course.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored courseModels.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, uint(1), stored.Enrolled)
}

func TestEnrollCourseNotFound(t *testing.T) {
	db := testDB(t)

	_, err := Enroll(db, 1, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnrollDistinctUsers(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, "Go Basics", 1)

	_, err := Enroll(db, 1, course.ID)
	require.NoError(t, err)
	_, err = Enroll(db, 2, course.ID)
	require.NoError(t, err)

	var stored courseModels.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, uint(2), stored.Enrolled)
}

func TestEnrollmentsForUser(t *testing.T) {
	db := testDB(t)

	// No enrollments is a valid empty result, not an error
	enrollments, err := EnrollmentsForUser(db, 7)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	first := seedCourse(t, db, "Go Basics", 1)
	second := seedCourse(t, db, "Advanced Go", 1)

	_, err = Enroll(db, 7, first.ID)
	require.NoError(t, err)
	_, err = Enroll(db, 7, second.ID)
	require.NoError(t, err)
	_, err = Enroll(db, 8, first.ID)
	require.NoError(t, err)

	enrollments, err = EnrollmentsForUser(db, 7)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)

	titles := []string{enrollments[0].Course.Title, enrollments[1].Course.Title}
	assert.ElementsMatch(t, []string{"Go Basics", "Advanced Go"}, titles)
}

func TestIsEnrolled(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, "Go Basics", 1)

	enrolled, err := IsEnrolled(db, 1, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)

	_, err = Enroll(db, 1, course.ID)
	require.NoError(t, err)

	enrolled, err = IsEnrolled(db, 1, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}
