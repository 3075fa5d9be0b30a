package author

import "context"

// Repository defines the data access operations for Authors. The
// implementation lives in the repository subpackage and is composed (not
// extended) by the service.
type Repository interface {
	// GetAll returns every author, unpaged.
	GetAll(ctx context.Context) ([]Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// ExistsByID reports whether an author row exists, without fetching it.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByName reports whether an author with the given name exists,
	// compared case-insensitively.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create persists a new author and returns it with its assigned id.
	Create(ctx context.Context, a *Author) (*Author, error)

	// Update commits a full-field update guarded by currentVersion.
	// Returns ErrAuthorNotFound if the row vanished, ErrVersionConflict if
	// it changed underneath the caller.
	Update(ctx context.Context, a *Author, currentVersion int) (*Author, error)

	// Delete removes the author row. Returns ErrAuthorNotFound when the
	// row is already gone.
	Delete(ctx context.Context, id int64) error

	// CountPostsByAuthor returns the number of posts referencing the author.
	CountPostsByAuthor(ctx context.Context, id int64) (int, error)
}
