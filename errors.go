package cubesim

import "errors"

// Sentinel errors for the cubesim package.
var (
	// Construction errors
	ErrInvalidSize = errors.New("cubesim: cube size must be between 2 and 10")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubesim: invalid move notation")

	// Move errors
	ErrInvalidMove = errors.New("cubesim: invalid move")

	// Geometry errors
	ErrInvalidGeometry = errors.New("cubesim: invalid geometry")
)
