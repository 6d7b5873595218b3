package blogService

import (
	"context"

	"ZencrowWebsite/internal/api/blog"
	blogRepository "ZencrowWebsite/internal/api/blog/repository"
	"github.com/sirupsen/logrus"
)

type IBlogService interface {
	SearchPosts(ctx context.Context, term string) (*blog.PostListResponse, error)
	GetPost(ctx context.Context, id int64) (*blog.PostResponse, error)
	CreatePost(ctx context.Context, req blog.CreatePostRequest) (int64, error)
}

type blogService struct {
	log      *logrus.Logger
	blogRepo blogRepository.Repository
}

func NewBlogService(
	log *logrus.Logger,
	blogRepo blogRepository.Repository,
) IBlogService {
	return &blogService{
		log:      log,
		blogRepo: blogRepo,
	}
}
