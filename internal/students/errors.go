package students

import "errors"

var (
	// ErrNotFound indicates the student does not exist.
	ErrNotFound = errors.New("student not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
