package services

import "errors"

// Expected business outcomes. Controllers match these with errors.Is and
// map them to HTTP statuses; anything else is a server fault.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrCourseNotFound  = errors.New("course not found")
	ErrSectionNotFound = errors.New("section not found")

	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrAlreadyCompleted   = errors.New("section already completed by this user")
	ErrEnrollmentRequired = errors.New("enrollment required to complete sections")

	ErrMissingCredential   = errors.New("authorization header missing")
	ErrMalformedCredential = errors.New("malformed authorization header")
	ErrInvalidToken        = errors.New("invalid or expired token")
)
