package post

import "context"

// Service defines the business operations for the Post slice.
type Service interface {
	// List returns all posts.
	List(ctx context.Context) ([]Post, error)

	// GetByID validates the identifier (positive integer) before touching
	// the store. Errors: ErrInvalidID, ErrPostNotFound.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Create persists a new post after verifying the referenced author
	// exists and the (author, date) slot is free.
	// Errors: ErrAuthorMissing, ErrPostExists.
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)

	// Update applies a full-field update, re-validating the author
	// reference and, when the author changes, the slot uniqueness.
	// Errors: ErrInvalidID, ErrIDMismatch, ErrPostNotFound,
	// ErrAuthorMissing, ErrPostExists, ErrVersionConflict.
	Update(ctx context.Context, id int64, req *UpdatePostRequest) error

	// Delete removes a post.
	// Errors: ErrInvalidID, ErrPostNotFound.
	Delete(ctx context.Context, id int64) error
}
