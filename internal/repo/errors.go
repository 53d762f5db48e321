package repo

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSlug is returned when a write violates a slug unique
	// index. The advisory pre-check in the slug package cannot prevent
	// this under concurrent creation; callers treat it as a retryable
	// conflict.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrDuplicateEmail is returned when a user write violates the email
	// unique index.
	ErrDuplicateEmail = errors.New("email already exists")
)
