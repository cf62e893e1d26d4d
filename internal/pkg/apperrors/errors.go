package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrRollNumberAlreadyExists = errors.New("roll number already registered")
	ErrInvalidEmailDomain      = errors.New("institutional email address required")
)

// Email verification errors
var (
	ErrEmailNotVerified         = errors.New("email not verified")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrEmailDeliveryFailed      = errors.New("verification email could not be sent")
)

// Professor errors
var (
	ErrProfessorNotFound = errors.New("professor not found")
)

// Review errors
var (
	ErrReviewNotFound = errors.New("review not found")
)
