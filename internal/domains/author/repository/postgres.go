package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/author"
	"blog-backend/pkg/cache"
)

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

// postgresRepository implements author.Repository over pgxpool with a
// read-through Redis cache on GetByID.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func authorCacheKey(id int64) string {
	return fmt.Sprintf("%s%d", authorCacheKeyPrefix, id)
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT id, name, biography, version
        FROM authors
        ORDER BY id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Biography, &a.Version); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	cacheKey := authorCacheKey(id)

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, name, biography, version
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Biography, &a.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	// Cache failures are not fatal to the read path.
	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE LOWER(name) = LOWER($1))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, biography, version)
        VALUES ($1, $2, 0)
        RETURNING id, name, biography, version
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Biography).Scan(
		&created.ID,
		&created.Name,
		&created.Biography,
		&created.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author, currentVersion int) (*author.Author, error) {
	// The WHERE clause carries the version check: zero rows affected means
	// the row vanished or changed since it was fetched.
	query := `
        UPDATE authors
        SET name = $1, biography = $2, version = version + 1
        WHERE id = $3 AND version = $4
        RETURNING id, name, biography, version
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query, a.Name, a.Biography, a.ID, currentVersion).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Biography,
		&updated.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, checkErr := r.ExistsByID(ctx, a.ID)
			if checkErr != nil {
				return nil, checkErr
			}
			if !exists {
				return nil, author.ErrAuthorNotFound
			}
			return nil, author.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	_ = r.cache.Delete(ctx, authorCacheKey(a.ID))

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM authors WHERE id = $1`

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		// Foreign key violation: posts still reference this author. The
		// service checks first, but concurrent creates can slip through.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return author.ErrAuthorHasPosts
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	_ = r.cache.Delete(ctx, authorCacheKey(id))

	return nil
}

func (r *postgresRepository) CountPostsByAuthor(ctx context.Context, id int64) (int, error) {
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts for author: %w", err)
	}
	return count, nil
}
