package author

import "context"

// Service defines the business operations for the Author slice.
type Service interface {
	// List returns all authors.
	List(ctx context.Context) ([]Author, error)

	// GetByID validates the identifier (positive integer) before touching
	// the store. Errors: ErrInvalidID, ErrAuthorNotFound.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Create persists a new author after rejecting case-insensitive name
	// duplicates. Errors: ErrDuplicateName.
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// Update applies a full-field update to an existing author.
	// Errors: ErrInvalidID, ErrIDMismatch, ErrAuthorNotFound,
	// ErrVersionConflict.
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) error

	// Delete removes an author, refusing while posts still reference it.
	// Errors: ErrInvalidID, ErrAuthorNotFound, ErrAuthorHasPosts.
	Delete(ctx context.Context, id int64) error
}
