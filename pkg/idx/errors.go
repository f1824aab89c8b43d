package idx

import "errors"

var (
	// ErrInvalidArgument is returned for malformed call parameters, such as a
	// non-positive maximum length or inverted bounds.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput is returned when the input contains no normalizable
	// characters and no identifier can be produced from it.
	ErrInvalidInput = errors.New("input has no normalizable characters")

	// ErrInvalidIdentifier is wrapped by every Validate failure.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
