package hr

import "errors"

var (
	// ErrNotFound means no row matched inside the caller's organisation.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when a user email collides with an existing one.
	ErrEmailTaken = errors.New("email already registered")
)
