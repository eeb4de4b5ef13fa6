package profiles

import "errors"

var (
	// ErrNotFound indicates the requested profile does not exist.
	ErrNotFound = errors.New("profile not found")
	// ErrDuplicate indicates a profile with the same name already exists.
	ErrDuplicate = errors.New("profile already exists")
	// ErrValidation indicates a profile or condition is malformed.
	ErrValidation = errors.New("invalid profile")
)
