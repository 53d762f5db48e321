package service

import "errors"

var (
	// ErrSectionMismatch is returned when a menu item names a section
	// that does not belong to its category.
	ErrSectionMismatch = errors.New("section does not belong to the category")

	// ErrInvalidCredentials is returned on a failed login. It covers
	// both unknown email and wrong password so callers cannot probe for
	// registered addresses.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
