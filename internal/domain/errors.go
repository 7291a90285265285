package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for the failures a shell load can run into.
var (
	ErrProfileUnavailable = errors.New("profile unavailable")
	ErrMalformedProfile   = errors.New("malformed profile response")
)
