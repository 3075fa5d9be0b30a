package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared"
	"blog-backend/pkg/cache"
)

const (
	postCacheKeyPrefix = "post:"
	cacheTTL           = 15 * time.Minute
)

// postgresRepository implements post.Repository over pgxpool with a
// read-through Redis cache on GetByID.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) post.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func postCacheKey(id int64) string {
	return fmt.Sprintf("%s%d", postCacheKeyPrefix, id)
}

// scanPost reads one row into a Post, converting the date column.
func scanPost(row pgx.Row) (*post.Post, error) {
	var p post.Post
	var createdAt time.Time
	if err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, &createdAt, &p.Status, &p.Version); err != nil {
		return nil, err
	}
	p.CreatedAt = shared.DateOf(createdAt)
	return &p, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]post.Post, error) {
	query := `
        SELECT id, author_id, title, content, created_at, status, version
        FROM posts
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []post.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	cacheKey := postCacheKey(id)

	var cached post.Post
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	query := `
        SELECT id, author_id, title, content, created_at, status, version
        FROM posts
        WHERE id = $1
    `

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, p, cacheTTL)

	return p, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetByAuthorAndDate(ctx context.Context, authorID int64, date shared.Date) (*post.Post, error) {
	query := `
        SELECT id, author_id, title, content, created_at, status, version
        FROM posts
        WHERE author_id = $1 AND created_at = $2
        LIMIT 1
    `

	p, err := scanPost(r.pool.QueryRow(ctx, query, authorID, date.Time()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post by author and date: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	query := `
        INSERT INTO posts (author_id, title, content, created_at, status, version)
        VALUES ($1, $2, $3, $4, $5, 0)
        RETURNING id, author_id, title, content, created_at, status, version
    `

	created, err := scanPost(r.pool.QueryRow(
		ctx, query, p.AuthorID, p.Title, p.Content, p.CreatedAt.Time(), p.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *post.Post, currentVersion int) (*post.Post, error) {
	// Version check in the WHERE clause; created_at is immutable.
	query := `
        UPDATE posts
        SET author_id = $1, title = $2, content = $3, status = $4, version = version + 1
        WHERE id = $5 AND version = $6
        RETURNING id, author_id, title, content, created_at, status, version
    `

	updated, err := scanPost(r.pool.QueryRow(
		ctx, query, p.AuthorID, p.Title, p.Content, p.Status, p.ID, currentVersion,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, checkErr := r.ExistsByID(ctx, p.ID)
			if checkErr != nil {
				return nil, checkErr
			}
			if !exists {
				return nil, post.ErrPostNotFound
			}
			return nil, post.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	_ = r.cache.Delete(ctx, postCacheKey(p.ID))

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return post.ErrPostNotFound
	}

	_ = r.cache.Delete(ctx, postCacheKey(id))

	return nil
}
