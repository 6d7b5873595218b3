package blogHandler

import (
	blogService "ZencrowWebsite/internal/api/blog/service"
	"ZencrowWebsite/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log         *logrus.Logger
	middleware  middleware.Middleware
	blogService blogService.IBlogService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	bs blogService.IBlogService,
) *BlogHandler {
	return &BlogHandler{
		log:         log,
		middleware:  middleware,
		blogService: bs,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	blog := srv.Group("/blog")

	blog.Get("/", h.SearchPosts)
	blog.Get("/:id", h.GetPost)
}
