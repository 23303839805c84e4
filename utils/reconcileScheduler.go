package utils

import (
	"log"
	"time"

	"learnify/database"
	courseModels "learnify/models/course"

	"github.com/robfig/cron/v3"
)

// logReconciler logs reconciler events with timestamp
func logReconciler(message string) {
	log.Printf("[ENROLL-RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileEnrolledCounts rewrites each course's denormalized enrolled
// counter from the enrollment ledger. The counter is maintained
// incrementally on enroll; this repairs any drift from partial failures.
func reconcileEnrolledCounts() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logReconciler("Error fetching courses: " + err.Error())
		return
	}

	for _, course := range courses {
		var count int64
		if err := db.Model(&courseModels.Enrollment{}).
			Where("course_id = ?", course.ID).
			Count(&count).Error; err != nil {
			logReconciler("Error counting enrollments: " + err.Error())
			continue
		}

		if uint(count) == course.Enrolled {
			continue
		}

		if err := db.Model(&courseModels.Course{}).
			Where("id = ?", course.ID).
			UpdateColumn("enrolled", count).Error; err != nil {
			logReconciler("Error updating enrolled count: " + err.Error())
			continue
		}
		logReconciler("Repaired enrolled count for course " + course.Title)
	}
}

// StartEnrollmentReconciler schedules the counter reconciliation job.
func StartEnrollmentReconciler(spec string) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(spec, reconcileEnrolledCounts); err != nil {
		log.Fatalf("Failed to schedule enrollment reconciler: %v", err)
	}

	c.Start()
	logReconciler("Scheduled with spec " + spec)
	return c
}
