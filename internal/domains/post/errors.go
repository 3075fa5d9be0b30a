package post

import "errors"

var (
	// Caller-input errors
	ErrInvalidID  = errors.New("post id must be a positive integer")
	ErrIDMismatch = errors.New("post id in body does not match the path id")

	// Business rule errors
	ErrPostNotFound  = errors.New("post not found")
	ErrAuthorMissing = errors.New("the referenced author does not exist")
	ErrPostExists    = errors.New("a post for that author and date already exists")

	// Concurrency
	ErrVersionConflict = errors.New("post was modified by another request")
)

// ToErrorCode maps a domain error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorMissing):
		return "AutorNoExiste"
	case errors.Is(err, ErrPostExists):
		return "PublicacionExiste"
	case errors.Is(err, ErrPostNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrIDMismatch):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return 404
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrIDMismatch),
		errors.Is(err, ErrAuthorMissing),
		errors.Is(err, ErrPostExists):
		return 400
	default:
		return 500
	}
}
