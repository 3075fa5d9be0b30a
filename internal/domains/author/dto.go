package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength      = 50
	MaxBiographyLength = 50
)

// CreateAuthorRequest - POST /api/author
type CreateAuthorRequest struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Biography,
			validation.Required.Error("biography is required"),
			validation.Length(1, MaxBiographyLength),
		),
	)
}

// UpdateAuthorRequest - PUT /api/author/:id
// Full-field update: every field replaces the stored one. The embedded id
// must match the path id.
type UpdateAuthorRequest struct {
	AutorID   int64  `json:"autorId"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AutorID,
			validation.Required.Error("autorId is required"),
			validation.Min(int64(1)).Error("autorId must be positive"),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Biography,
			validation.Required.Error("biography is required"),
			validation.Length(1, MaxBiographyLength),
		),
	)
}

// AuthorResponse is the read shape returned to clients.
type AuthorResponse struct {
	AutorID   int64  `json:"autorId"`
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (a Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		AutorID:   a.ID,
		Name:      a.Name,
		Biography: a.Biography,
	}
}

func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:      r.Name,
		Biography: r.Biography,
	}
}

// ApplyTo overwrites every mutable field of a with the request values.
func (r *UpdateAuthorRequest) ApplyTo(a *Author) {
	a.Name = r.Name
	a.Biography = r.Biography
}
