package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author"
)

// stubAuthorRepo is an in-memory author.Repository for exercising the
// service rules without a database.
type stubAuthorRepo struct {
	authors    map[int64]author.Author
	postCounts map[int64]int
	nextID     int64

	getByIDCalls int
	createCalls  int
	deleteCalls  int
}

func newStubAuthorRepo(seed ...author.Author) *stubAuthorRepo {
	r := &stubAuthorRepo{
		authors:    make(map[int64]author.Author),
		postCounts: make(map[int64]int),
		nextID:     1,
	}
	for _, a := range seed {
		r.authors[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *stubAuthorRepo) GetAll(ctx context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		out = append(out, a)
	}
	return out, nil
}

func (r *stubAuthorRepo) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	r.getByIDCalls++
	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *stubAuthorRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

func (r *stubAuthorRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	for _, a := range r.authors {
		if strings.EqualFold(a.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubAuthorRepo) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	r.createCalls++
	created := *a
	created.ID = r.nextID
	r.nextID++
	r.authors[created.ID] = created
	return &created, nil
}

func (r *stubAuthorRepo) Update(ctx context.Context, a *author.Author, currentVersion int) (*author.Author, error) {
	stored, ok := r.authors[a.ID]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	if stored.Version != currentVersion {
		return nil, author.ErrVersionConflict
	}
	updated := *a
	updated.Version = currentVersion + 1
	r.authors[a.ID] = updated
	return &updated, nil
}

func (r *stubAuthorRepo) Delete(ctx context.Context, id int64) error {
	r.deleteCalls++
	if _, ok := r.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(r.authors, id)
	return nil
}

func (r *stubAuthorRepo) CountPostsByAuthor(ctx context.Context, id int64) (int, error) {
	return r.postCounts[id], nil
}

func TestGetByIDRejectsNonPositiveID(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo)

	for _, id := range []int64{0, -1} {
		_, err := svc.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, author.ErrInvalidID)
	}
	assert.Zero(t, repo.getByIDCalls, "invalid ids must never reach the store")
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewAuthorService(newStubAuthorRepo())

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestCreateAuthor(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name:      "  Gabriel  ",
		Biography: "Novelist",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Gabriel", created.Name, "surrounding whitespace is trimmed")
	assert.Equal(t, "Novelist", created.Biography)
}

func TestCreateAuthorRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	repo := newStubAuthorRepo(author.Author{ID: 1, Name: "Gabriel", Biography: "Novelist"})
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name:      "GABRIEL",
		Biography: "Impostor",
	})
	assert.ErrorIs(t, err, author.ErrDuplicateName)
	assert.Zero(t, repo.createCalls)
}

func TestUpdateAuthorIDMismatch(t *testing.T) {
	svc := NewAuthorService(newStubAuthorRepo())

	err := svc.Update(context.Background(), 1, &author.UpdateAuthorRequest{
		AutorID: 2, Name: "Gabriel", Biography: "Novelist",
	})
	assert.ErrorIs(t, err, author.ErrIDMismatch)
}

func TestUpdateAuthorNotFound(t *testing.T) {
	svc := NewAuthorService(newStubAuthorRepo())

	err := svc.Update(context.Background(), 5, &author.UpdateAuthorRequest{
		AutorID: 5, Name: "Gabriel", Biography: "Novelist",
	})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestUpdateAuthorOverwritesAllFields(t *testing.T) {
	repo := newStubAuthorRepo(author.Author{ID: 3, Name: "Old", Biography: "Old bio", Version: 2})
	svc := NewAuthorService(repo)

	err := svc.Update(context.Background(), 3, &author.UpdateAuthorRequest{
		AutorID: 3, Name: "New", Biography: "New bio",
	})
	require.NoError(t, err)

	stored := repo.authors[3]
	assert.Equal(t, "New", stored.Name)
	assert.Equal(t, "New bio", stored.Biography)
	assert.Equal(t, 3, stored.Version)
}

func TestDeleteAuthorWithPosts(t *testing.T) {
	repo := newStubAuthorRepo(author.Author{ID: 1, Name: "Gabriel"})
	repo.postCounts[1] = 2
	svc := NewAuthorService(repo)

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, author.ErrAuthorHasPosts)
	assert.Zero(t, repo.deleteCalls)
}

func TestDeleteAuthor(t *testing.T) {
	repo := newStubAuthorRepo(author.Author{ID: 1, Name: "Gabriel"})
	svc := NewAuthorService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDeleteAuthorNotFound(t *testing.T) {
	svc := NewAuthorService(newStubAuthorRepo())

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}
