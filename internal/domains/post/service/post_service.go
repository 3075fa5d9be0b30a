package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/domains/post"
)

// postService implements post.Service. It composes the post repository
// with the author repository for foreign-reference checks, the only
// cross-entity coupling in the system.
type postService struct {
	repo       post.Repository
	authorRepo author.Repository
}

func NewPostService(repo post.Repository, authorRepo author.Repository) post.Service {
	return &postService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

func (s *postService) List(ctx context.Context) ([]post.Post, error) {
	return s.repo.GetAll(ctx)
}

func (s *postService) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	if id <= 0 {
		return nil, post.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	authorExists, err := s.authorRepo.ExistsByID(ctx, req.AutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check author existence: %w", err)
	}
	if !authorExists {
		log.Warn().Int64("author_id", req.AutorID).Msg("post references unknown author")
		return nil, post.ErrAuthorMissing
	}

	existing, err := s.repo.GetByAuthorAndDate(ctx, req.AutorID, req.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to check post uniqueness: %w", err)
	}
	if existing != nil {
		log.Warn().
			Int64("author_id", req.AutorID).
			Str("created_at", req.CreatedAt.String()).
			Msg("post slot already occupied")
		return nil, post.ErrPostExists
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Info().Int64("post_id", created.ID).Int64("author_id", created.AuthorID).Msg("post created")
	return created, nil
}

func (s *postService) Update(ctx context.Context, id int64, req *post.UpdatePostRequest) error {
	if id <= 0 {
		return post.ErrInvalidID
	}
	if req.PublicacionID != id {
		return post.ErrIDMismatch
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	authorExists, err := s.authorRepo.ExistsByID(ctx, req.AutorID)
	if err != nil {
		return fmt.Errorf("failed to check author existence: %w", err)
	}
	if !authorExists {
		return post.ErrAuthorMissing
	}

	// Moving the post to another author must not collide with a post that
	// author already has on the same date. The date itself is immutable.
	if req.AutorID != current.AuthorID {
		occupied, err := s.repo.GetByAuthorAndDate(ctx, req.AutorID, current.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to check post uniqueness: %w", err)
		}
		if occupied != nil && occupied.ID != id {
			return post.ErrPostExists
		}
	}

	updated := *current
	req.ApplyTo(&updated)

	if _, err := s.repo.Update(ctx, &updated, current.Version); err != nil {
		return err
	}

	log.Info().Int64("post_id", id).Msg("post updated")
	return nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return post.ErrInvalidID
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
