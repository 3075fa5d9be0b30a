package post

import (
	"blog-backend/internal/shared"
)

// Post is the persisted Post (publicacion) entity. Every post belongs to
// exactly one author; (author id, creation date) identifies its slot.
type Post struct {
	ID        int64       `json:"publicacionId" db:"id"`
	AuthorID  int64       `json:"autorId" db:"author_id"`
	Title     string      `json:"title" db:"title"`
	Content   string      `json:"content" db:"content"`
	CreatedAt shared.Date `json:"createdAt" db:"created_at"`
	Status    string      `json:"postStatus" db:"status"`
	Version   int         `json:"version" db:"version"`
}
