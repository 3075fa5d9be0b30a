package post

import (
	"context"

	"blog-backend/internal/shared"
)

// Repository defines the data access operations for Posts.
type Repository interface {
	// GetAll returns every post, unpaged.
	GetAll(ctx context.Context) ([]Post, error)

	// GetByID returns ErrPostNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// ExistsByID reports whether a post row exists, without fetching it.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// GetByAuthorAndDate returns the post occupying the (author, date)
	// slot, or nil when the slot is free. Absence is not an error.
	GetByAuthorAndDate(ctx context.Context, authorID int64, date shared.Date) (*Post, error)

	// Create persists a new post and returns it with its assigned id.
	Create(ctx context.Context, p *Post) (*Post, error)

	// Update commits a full-field update guarded by currentVersion.
	// Returns ErrPostNotFound if the row vanished, ErrVersionConflict if
	// it changed underneath the caller.
	Update(ctx context.Context, p *Post, currentVersion int) (*Post, error)

	// Delete removes the post row. Returns ErrPostNotFound when the row is
	// already gone.
	Delete(ctx context.Context, id int64) error
}
