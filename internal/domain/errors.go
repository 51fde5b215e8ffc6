package domain

import "errors"

var (
	// ErrInvalidSpec is returned when burst or random parameters are rejected.
	ErrInvalidSpec = errors.New("invalid error spec")
	// ErrInvalidSize is returned for non-positive fixture sizes.
	ErrInvalidSize = errors.New("invalid file size")
	// ErrSourceAccess wraps failures to open or read the source file.
	ErrSourceAccess = errors.New("source file not accessible")
	// ErrDestAccess wraps failures to write or reload the destination file.
	ErrDestAccess = errors.New("destination file not writable")
	// ErrPathConflict is returned when two roles (source, destination, mask)
	// resolve to the same file.
	ErrPathConflict = errors.New("conflicting file paths")
	// ErrLengthMismatch is returned when comparing buffers of different sizes.
	ErrLengthMismatch = errors.New("length mismatch")
)
