package faults

import "errors"

// The well-known failure conditions of the service layer.
// Handlers match these with errors.Is and translate them into HTTP
// status codes at the boundary.
var (

	// The external identifier string is empty or malformed.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// The submitted rating is missing or outside the range [1, 5].
	ErrInvalidRating = errors.New("invalid rating")

	// No record matches the request.
	ErrNotFound = errors.New("not found")
)
