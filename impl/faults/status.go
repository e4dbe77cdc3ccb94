package faults

import (
	"errors"
	"net/http"
)

// Description:
//
//	Translates a service layer error into an HTTP status code.
//	Unrecognized errors translate into an internal server error.
//
// Parameters:
//
//	err The error to translate.
//
// Returns:
//
//	The HTTP status code for the error.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
