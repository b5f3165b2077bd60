package services

import "errors"

// Sentinel errors surfaced to the HTTP layer, which maps them to fixed
// status codes.
var (
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrDuplicateCourseCode = errors.New("course code already exists")
	ErrInvalidID           = errors.New("invalid id")
	ErrNotFound            = errors.New("user or course not found")
	ErrAlreadyEnrolled     = errors.New("already enrolled")
)
