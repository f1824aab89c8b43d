package urlkey

import "errors"

var (
	// ErrInvalidArgument is returned for malformed call parameters.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput is returned when the input contains no normalizable
	// characters and no URL key can be produced from it.
	ErrInvalidInput = errors.New("input has no normalizable characters")
)
