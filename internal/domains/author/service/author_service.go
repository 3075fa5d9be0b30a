package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService wires the service to its repository abstraction.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	// Invalid identifiers never reach the store.
	if id <= 0 {
		return nil, author.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if exists {
		log.Warn().Str("name", name).Msg("author name already exists")
		return nil, author.ErrDuplicateName
	}

	newAuthor := req.ToEntity()
	newAuthor.Name = name

	created, err := s.repo.Create(ctx, newAuthor)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	log.Info().Int64("author_id", created.ID).Str("name", created.Name).Msg("author created")
	return created, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) error {
	if id <= 0 {
		return author.ErrInvalidID
	}
	if req.AutorID != id {
		return author.ErrIDMismatch
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Overwrite semantics: every field in the update shape replaces the
	// stored one, changed or not.
	updated := *current
	req.ApplyTo(&updated)

	if _, err := s.repo.Update(ctx, &updated, current.Version); err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("author updated")
	return nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return author.ErrInvalidID
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	postCount, err := s.repo.CountPostsByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count posts: %w", err)
	}
	if postCount > 0 {
		return fmt.Errorf("%w: author has %d posts", author.ErrAuthorHasPosts, postCount)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("author_id", id).Msg("author deleted")
	return nil
}
