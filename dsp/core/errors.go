package core

import "errors"

// Error taxonomy shared by all packages. Package-level sentinels wrap one of
// these, so callers can match either the specific error or its category with
// errors.Is.
var (
	// ErrInvalidInput reports a precondition violation on caller-supplied data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange reports that a scan ran past the end of its input grid
	// before its stopping condition was met.
	ErrOutOfRange = errors.New("out of range")
)
