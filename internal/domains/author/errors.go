package author

import "errors"

var (
	// Caller-input errors
	ErrInvalidID  = errors.New("author id must be a positive integer")
	ErrIDMismatch = errors.New("author id in body does not match the path id")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateName  = errors.New("an author with that name already exists")
	ErrAuthorHasPosts = errors.New("cannot delete an author that still has posts")

	// Concurrency
	ErrVersionConflict = errors.New("author was modified by another request")
)

// ToErrorCode maps a domain error to its API error code. Business rule
// codes keep the keys the API has always exposed.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateName):
		return "NombreExiste"
	case errors.Is(err, ErrAuthorHasPosts):
		return "AutorTienePublicaciones"
	case errors.Is(err, ErrAuthorNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrIDMismatch):
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps a domain error to its HTTP status code. Version
// conflicts stay in the 5xx space: they are not caller mistakes and are
// never retried here.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrIDMismatch),
		errors.Is(err, ErrDuplicateName),
		errors.Is(err, ErrAuthorHasPosts):
		return 400
	default:
		return 500
	}
}
