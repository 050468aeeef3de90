package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)

// Catalog errors
var (
	ErrSkillCategoryNotFound = errors.New("skill category not found")
	ErrRoadmapNotFound       = errors.New("roadmap not found")
)

// Assessment errors
var (
	ErrAssessmentNotFound = errors.New("assessment not found")
)

// Job and mentor errors
var (
	ErrJobNotFound    = errors.New("job not found")
	ErrMentorNotFound = errors.New("mentor not found")
)

// Community group errors
var (
	ErrGroupNotFound = errors.New("community group not found")
)
