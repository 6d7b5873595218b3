package blogService

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ZencrowWebsite/internal/api/blog"
	blogRepository "ZencrowWebsite/internal/api/blog/repository"
	"ZencrowWebsite/internal/entity"
	contextPkg "ZencrowWebsite/pkg/context"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// SearchPosts returns every post whose title or content contains term,
// newest first. A blank term lists all posts. The result is never capped.
func (s *blogService) SearchPosts(ctx context.Context, term string) (*blog.PostListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	term = strings.TrimSpace(term)

	if utf8.RuneCountInString(term) > blog.MaxSearchLength {
		return nil, blog.ErrInvalidSearchQuery
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, blog.ErrStorageUnavailable
	}

	posts, err := repo.Posts.ListPosts(ctx, blogRepository.PostFilter{Search: term})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"search":     term,
			"error":      err.Error(),
		}).Error("Failed to list posts")
		return nil, blog.ErrStorageUnavailable
	}

	response := &blog.PostListResponse{
		Posts:       make([]blog.PostResponse, 0, len(posts)),
		Total:       len(posts),
		SearchQuery: term,
	}
	for _, post := range posts {
		response.Posts = append(response.Posts, blog.NewPostResponse(post))
	}

	return response, nil
}

func (s *blogService) GetPost(ctx context.Context, id int64) (*blog.PostResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, blog.ErrStorageUnavailable
	}

	post, err := repo.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Post not found")
			return nil, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get post")
		return nil, blog.ErrStorageUnavailable
	}

	response := blog.NewPostResponse(post)
	return &response, nil
}

func (s *blogService) CreatePost(ctx context.Context, req blog.CreatePostRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return 0, blog.ErrStorageUnavailable
	}
	defer repo.Rollback()

	id, err := repo.Posts.CreatePost(ctx, entity.Post{
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		DatePosted: req.DatePosted,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create post")
		return 0, blog.ErrCreatePost
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return 0, blog.ErrCreatePost
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         id,
	}).Info("Post created")

	return id, nil
}
