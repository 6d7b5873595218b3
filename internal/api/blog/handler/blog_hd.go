package blogHandler

import (
	"strconv"
	"time"

	"ZencrowWebsite/internal/api/blog"
	contextPkg "ZencrowWebsite/pkg/context"
	"ZencrowWebsite/pkg/handlerUtil"
	"ZencrowWebsite/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogHandler) SearchPosts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	search := ctx.Query("search")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"search":     search,
	}).Debug("Processing blog search request")

	result, err := h.blogService.SearchPosts(c, search)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_posts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *BlogHandler) GetPost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return errHandler.Handle(ctx, requestID, blog.ErrInvalidPostID, ctx.Path(), "get_post")
	}

	post, err := h.blogService.GetPost(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, post)
	}
}
