package blogService

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"ZencrowWebsite/internal/api/blog"
	blogRepository "ZencrowWebsite/internal/api/blog/repository"
	"ZencrowWebsite/internal/entity"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePosts is an in-memory stand-in for the posts table.
type fakePosts struct {
	posts     []entity.Post
	listErr   error
	lastQuery blogRepository.PostFilter
	calls     int
}

func (f *fakePosts) CreatePost(_ context.Context, post entity.Post) (int64, error) {
	post.ID = int64(len(f.posts) + 1)
	f.posts = append(f.posts, post)
	return post.ID, nil
}

func (f *fakePosts) GetPostByID(_ context.Context, id int64) (entity.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Post{}, blog.ErrPostNotFound
}

func (f *fakePosts) ListPosts(_ context.Context, filter blogRepository.PostFilter) ([]entity.Post, error) {
	f.calls++
	f.lastQuery = filter
	if f.listErr != nil {
		return nil, f.listErr
	}

	term := strings.ToLower(filter.Search)
	out := make([]entity.Post, 0)
	for _, p := range f.posts {
		if term == "" || strings.Contains(strings.ToLower(p.Title), term) || strings.Contains(strings.ToLower(p.Content), term) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DatePosted.Equal(out[j].DatePosted) {
			return out[i].ID > out[j].ID
		}
		return out[i].DatePosted.After(out[j].DatePosted)
	})
	return out, nil
}

type fakeRepository struct {
	posts     *fakePosts
	clientErr error
	committed bool
}

func (f *fakeRepository) NewClient(_ bool) (blogRepository.Client, error) {
	if f.clientErr != nil {
		return blogRepository.Client{}, f.clientErr
	}
	return blogRepository.Client{
		Posts:    f.posts,
		Commit:   func() error { f.committed = true; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newService(repo *fakeRepository) IBlogService {
	logger, _ := test.NewNullLogger()
	return NewBlogService(logger, repo)
}

func scenario() *fakeRepository {
	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return &fakeRepository{posts: &fakePosts{posts: []entity.Post{
		{ID: 1, Title: "Intro to Rust", Content: "memory safety", DatePosted: t1},
		{ID: 2, Title: "Cooking tips", Content: "knife skills", DatePosted: t1.Add(48 * time.Hour)},
	}}}
}

func ids(resp *blog.PostListResponse) []int64 {
	out := make([]int64, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		out = append(out, p.ID)
	}
	return out
}

func TestSearchPosts_Scenario(t *testing.T) {
	svc := newService(scenario())
	ctx := context.Background()

	rust, err := svc.SearchPosts(ctx, "rust")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(rust))
	assert.Equal(t, "rust", rust.SearchQuery)

	all, err := svc.SearchPosts(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(all))
	assert.Equal(t, 2, all.Total)
}

func TestSearchPosts_BlankTermIsTrimmedAndIdempotent(t *testing.T) {
	repo := scenario()
	svc := newService(repo)

	first, err := svc.SearchPosts(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "", repo.posts.lastQuery.Search)

	second, err := svc.SearchPosts(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for i := 1; i < len(first.Posts); i++ {
		assert.False(t, first.Posts[i-1].DatePosted.Before(first.Posts[i].DatePosted))
	}
}

func TestSearchPosts_TermIsTrimmed(t *testing.T) {
	repo := scenario()
	svc := newService(repo)

	resp, err := svc.SearchPosts(context.Background(), "  Knife ")
	require.NoError(t, err)
	assert.Equal(t, "Knife", repo.posts.lastQuery.Search)
	assert.Equal(t, []int64{2}, ids(resp))
}

func TestSearchPosts_EmptyResultIsNotAnError(t *testing.T) {
	svc := newService(scenario())

	resp, err := svc.SearchPosts(context.Background(), "kubernetes")
	require.NoError(t, err)
	assert.NotNil(t, resp.Posts)
	assert.Empty(t, resp.Posts)
}

func TestSearchPosts_StorageFailure(t *testing.T) {
	repo := scenario()
	repo.posts.listErr = errors.New("connection refused")

	resp, err := newService(repo).SearchPosts(context.Background(), "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, blog.ErrStorageUnavailable)
}

func TestSearchPosts_ClientFailure(t *testing.T) {
	repo := scenario()
	repo.clientErr = errors.New("pool exhausted")

	_, err := newService(repo).SearchPosts(context.Background(), "rust")

	assert.ErrorIs(t, err, blog.ErrStorageUnavailable)
	assert.Zero(t, repo.posts.calls)
}

func TestSearchPosts_TooLong(t *testing.T) {
	repo := scenario()

	_, err := newService(repo).SearchPosts(context.Background(), strings.Repeat("a", blog.MaxSearchLength+1))

	assert.ErrorIs(t, err, blog.ErrInvalidSearchQuery)
	assert.Zero(t, repo.posts.calls)
}

func TestGetPost(t *testing.T) {
	svc := newService(scenario())

	post, err := svc.GetPost(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Cooking tips", post.Title)

	_, err = svc.GetPost(context.Background(), 99)
	assert.ErrorIs(t, err, blog.ErrPostNotFound)
}

func TestCreatePost_Commits(t *testing.T) {
	repo := scenario()

	id, err := newService(repo).CreatePost(context.Background(), blog.CreatePostRequest{Title: "New", Author: "Zen"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.True(t, repo.committed)
}
