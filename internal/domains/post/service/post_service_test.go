package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared"
)

// stubPostRepo is an in-memory post.Repository.
type stubPostRepo struct {
	posts  map[int64]post.Post
	nextID int64

	createCalls int
}

func newStubPostRepo(seed ...post.Post) *stubPostRepo {
	r := &stubPostRepo{posts: make(map[int64]post.Post), nextID: 1}
	for _, p := range seed {
		r.posts[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *stubPostRepo) GetAll(ctx context.Context) ([]post.Post, error) {
	out := make([]post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPostRepo) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	return &p, nil
}

func (r *stubPostRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := r.posts[id]
	return ok, nil
}

func (r *stubPostRepo) GetByAuthorAndDate(ctx context.Context, authorID int64, date shared.Date) (*post.Post, error) {
	for _, p := range r.posts {
		if p.AuthorID == authorID && p.CreatedAt.Equal(date) {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *stubPostRepo) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	r.createCalls++
	created := *p
	created.ID = r.nextID
	r.nextID++
	r.posts[created.ID] = created
	return &created, nil
}

func (r *stubPostRepo) Update(ctx context.Context, p *post.Post, currentVersion int) (*post.Post, error) {
	stored, ok := r.posts[p.ID]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	if stored.Version != currentVersion {
		return nil, post.ErrVersionConflict
	}
	updated := *p
	updated.Version = currentVersion + 1
	r.posts[p.ID] = updated
	return &updated, nil
}

func (r *stubPostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

// stubAuthorLookup only answers existence checks; the post service never
// needs more from the author store.
type stubAuthorLookup struct {
	ids map[int64]bool
}

func newStubAuthorLookup(ids ...int64) *stubAuthorLookup {
	l := &stubAuthorLookup{ids: make(map[int64]bool)}
	for _, id := range ids {
		l.ids[id] = true
	}
	return l
}

func (l *stubAuthorLookup) GetAll(ctx context.Context) ([]author.Author, error) { return nil, nil }
func (l *stubAuthorLookup) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}
func (l *stubAuthorLookup) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return l.ids[id], nil
}
func (l *stubAuthorLookup) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}
func (l *stubAuthorLookup) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	return a, nil
}
func (l *stubAuthorLookup) Update(ctx context.Context, a *author.Author, currentVersion int) (*author.Author, error) {
	return a, nil
}
func (l *stubAuthorLookup) Delete(ctx context.Context, id int64) error { return nil }
func (l *stubAuthorLookup) CountPostsByAuthor(ctx context.Context, id int64) (int, error) {
	return 0, nil
}

func date(year int, month time.Month, day int) shared.Date {
	return shared.NewDate(year, month, day)
}

func TestCreatePost(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubAuthorLookup(1))

	created, err := svc.Create(context.Background(), &post.CreatePostRequest{
		AutorID:   1,
		Title:     "First post",
		Content:   "Hello",
		CreatedAt: date(2024, time.May, 1),
		Status:    "published",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, int64(1), created.AuthorID)
	assert.True(t, created.CreatedAt.Equal(date(2024, time.May, 1)))
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, newStubAuthorLookup())

	_, err := svc.Create(context.Background(), &post.CreatePostRequest{
		AutorID:   7,
		Title:     "Orphan",
		Content:   "No author",
		CreatedAt: date(2024, time.May, 1),
		Status:    "draft",
	})
	assert.ErrorIs(t, err, post.ErrAuthorMissing)
	assert.Zero(t, repo.createCalls)
}

func TestCreatePostDuplicateSlot(t *testing.T) {
	repo := newStubPostRepo(post.Post{
		ID: 1, AuthorID: 1, Title: "Existing", CreatedAt: date(2024, time.May, 1),
	})
	svc := NewPostService(repo, newStubAuthorLookup(1))

	_, err := svc.Create(context.Background(), &post.CreatePostRequest{
		AutorID:   1,
		Title:     "Second of the day",
		Content:   "Too many",
		CreatedAt: date(2024, time.May, 1),
		Status:    "draft",
	})
	assert.ErrorIs(t, err, post.ErrPostExists)
	assert.Zero(t, repo.createCalls)
}

func TestCreatePostSameDateDifferentAuthor(t *testing.T) {
	repo := newStubPostRepo(post.Post{
		ID: 1, AuthorID: 1, Title: "Existing", CreatedAt: date(2024, time.May, 1),
	})
	svc := NewPostService(repo, newStubAuthorLookup(1, 2))

	_, err := svc.Create(context.Background(), &post.CreatePostRequest{
		AutorID:   2,
		Title:     "Other author same day",
		Content:   "Fine",
		CreatedAt: date(2024, time.May, 1),
		Status:    "draft",
	})
	assert.NoError(t, err)
}

func TestUpdatePostIDMismatch(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubAuthorLookup(1))

	err := svc.Update(context.Background(), 1, &post.UpdatePostRequest{
		PublicacionID: 2, AutorID: 1, Title: "T", Content: "C", Status: "draft",
	})
	assert.ErrorIs(t, err, post.ErrIDMismatch)
}

func TestUpdatePostNotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubAuthorLookup(1))

	err := svc.Update(context.Background(), 9, &post.UpdatePostRequest{
		PublicacionID: 9, AutorID: 1, Title: "T", Content: "C", Status: "draft",
	})
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestUpdatePostUnknownAuthor(t *testing.T) {
	repo := newStubPostRepo(post.Post{
		ID: 1, AuthorID: 1, Title: "T", CreatedAt: date(2024, time.May, 1),
	})
	svc := NewPostService(repo, newStubAuthorLookup(1))

	err := svc.Update(context.Background(), 1, &post.UpdatePostRequest{
		PublicacionID: 1, AutorID: 99, Title: "T", Content: "C", Status: "draft",
	})
	assert.ErrorIs(t, err, post.ErrAuthorMissing)
}

func TestUpdatePostReassignCollides(t *testing.T) {
	// Author 2 already has a post on the same date; moving post 1 there
	// must be rejected.
	repo := newStubPostRepo(
		post.Post{ID: 1, AuthorID: 1, Title: "Mine", CreatedAt: date(2024, time.May, 1)},
		post.Post{ID: 2, AuthorID: 2, Title: "Theirs", CreatedAt: date(2024, time.May, 1)},
	)
	svc := NewPostService(repo, newStubAuthorLookup(1, 2))

	err := svc.Update(context.Background(), 1, &post.UpdatePostRequest{
		PublicacionID: 1, AutorID: 2, Title: "Mine", Content: "C", Status: "draft",
	})
	assert.ErrorIs(t, err, post.ErrPostExists)
}

func TestUpdatePostReassignToFreeSlot(t *testing.T) {
	repo := newStubPostRepo(
		post.Post{ID: 1, AuthorID: 1, Title: "Mine", CreatedAt: date(2024, time.May, 1), Version: 4},
	)
	svc := NewPostService(repo, newStubAuthorLookup(1, 2))

	err := svc.Update(context.Background(), 1, &post.UpdatePostRequest{
		PublicacionID: 1, AutorID: 2, Title: "Moved", Content: "C", Status: "published",
	})
	require.NoError(t, err)

	stored := repo.posts[1]
	assert.Equal(t, int64(2), stored.AuthorID)
	assert.Equal(t, "Moved", stored.Title)
	assert.True(t, stored.CreatedAt.Equal(date(2024, time.May, 1)), "creation date stays fixed")
	assert.Equal(t, 5, stored.Version)
}

func TestDeletePost(t *testing.T) {
	repo := newStubPostRepo(post.Post{ID: 1, AuthorID: 1, Title: "T"})
	svc := NewPostService(repo, newStubAuthorLookup(1))

	require.NoError(t, svc.Delete(context.Background(), 1))

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestDeletePostNotFound(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), newStubAuthorLookup())

	err := svc.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}
