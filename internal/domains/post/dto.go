package post

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/shared"
)

// The original API declared 25 for the create title and 50 elsewhere;
// standardized on 50 across all shapes.
const MaxTitleLength = 50

// dateRequired rejects the zero Date.
func dateRequired(value interface{}) error {
	d, ok := value.(shared.Date)
	if !ok || d.IsZero() {
		return errors.New("createdAt is required (format 2006-01-02)")
	}
	return nil
}

// CreatePostRequest - POST /api/publicacion
type CreatePostRequest struct {
	AutorID   int64       `json:"autorId"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	CreatedAt shared.Date `json:"createdAt"`
	Status    string      `json:"postStatus"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AutorID,
			validation.Required.Error("autorId is required"),
			validation.Min(int64(1)).Error("autorId must be positive"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.CreatedAt,
			validation.By(dateRequired),
		),
		validation.Field(&r.Status,
			validation.Required.Error("postStatus is required"),
		),
	)
}

// UpdatePostRequest - PUT /api/publicacion/:id
// Full-field update. The creation date is immutable and therefore absent;
// the author reference may change.
type UpdatePostRequest struct {
	PublicacionID int64  `json:"publicacionId"`
	AutorID       int64  `json:"autorId"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"postStatus"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PublicacionID,
			validation.Required.Error("publicacionId is required"),
			validation.Min(int64(1)).Error("publicacionId must be positive"),
		),
		validation.Field(&r.AutorID,
			validation.Required.Error("autorId is required"),
			validation.Min(int64(1)).Error("autorId must be positive"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("postStatus is required"),
		),
	)
}

// PostResponse is the read shape returned to clients.
type PostResponse struct {
	PublicacionID int64       `json:"publicacionId"`
	AutorID       int64       `json:"autorId"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	CreatedAt     shared.Date `json:"createdAt"`
	Status        string      `json:"postStatus"`
}

func (p Post) ToResponse() *PostResponse {
	return &PostResponse{
		PublicacionID: p.ID,
		AutorID:       p.AuthorID,
		Title:         p.Title,
		Content:       p.Content,
		CreatedAt:     p.CreatedAt,
		Status:        p.Status,
	}
}

func (r *CreatePostRequest) ToEntity() *Post {
	return &Post{
		AuthorID:  r.AutorID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		Status:    r.Status,
	}
}

// ApplyTo overwrites every mutable field of p with the request values.
// CreatedAt is left untouched.
func (r *UpdatePostRequest) ApplyTo(p *Post) {
	p.AuthorID = r.AutorID
	p.Title = r.Title
	p.Content = r.Content
	p.Status = r.Status
}
