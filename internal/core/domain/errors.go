package domain

import "errors"

// Sentinel errors. The HTTP layer maps each to a fixed status code; anything
// outside this list is treated as an unexpected internal failure.
var (
	// ErrInvalidCredentials deliberately covers both unknown user and wrong
	// password so the API never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMaintenanceMode    = errors.New("service unavailable: maintenance mode")
	ErrRegistrationClosed = errors.New("registration is disabled")
	ErrForbidden          = errors.New("access forbidden")

	ErrStudentNotFound   = errors.New("student not found")
	ErrAuthorityNotFound = errors.New("authority not found")
	ErrGrievanceNotFound = errors.New("grievance not found")
	ErrUserNotFound      = errors.New("user not found")

	ErrUserExists = errors.New("identifier already registered")

	// ErrDeleteWindowExpired rejects grievance deletion attempted more than
	// DeleteWindow after filing.
	ErrDeleteWindowExpired = errors.New("grievance can no longer be deleted: time limit exceeded")
)
