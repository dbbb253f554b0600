package resumes

import "errors"

var (
	// ErrNotFound indicates no resume is stored for the student.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidShareToken is returned for tokens that do not decode to a student id.
	ErrInvalidShareToken = errors.New("invalid share token")

	// ErrShareTokenExpired is returned for well-formed tokens older than the share TTL.
	ErrShareTokenExpired = errors.New("share token expired")
)
