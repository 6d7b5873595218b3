package contactHandler

import (
	"time"

	"ZencrowWebsite/internal/api/contact"
	contextPkg "ZencrowWebsite/pkg/context"
	"ZencrowWebsite/pkg/flash"
	"ZencrowWebsite/pkg/handlerUtil"
	"ZencrowWebsite/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const contactPath = "/contact/"

func (h *ContactHandler) ContactPage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	messages, err := h.flash.Pop(ctx)
	if err != nil {
		// Losing a status line is not worth failing the page over.
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to read flash messages")
		messages = nil
	}

	page := contact.PageResponse{Flashes: make([]contact.FlashResponse, 0, len(messages))}
	for _, m := range messages {
		page.Flashes = append(page.Flashes, contact.FlashResponse{Category: m.Category, Text: m.Text})
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, page)
}

func (h *ContactHandler) Submit(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var form contact.Submission
	if err := ctx.BodyParser(&form); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to parse contact form")
		return errHandler.Handle(ctx, requestID, contact.ErrInvalidForm, ctx.Path(), "submit_contact")
	}

	outcome := h.contactService.Submit(c, form)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"outcome":    outcome.Kind.String(),
	}).Info("Contact form processed")

	if outcome.Kind == contact.OutcomeValidationFailed {
		return errHandler.HandleValidationError(ctx, requestID, outcome.FieldErrors, ctx.Path())
	}

	category, text := outcome.UserMessage()
	if err := h.flash.Add(ctx, flash.Message{Category: category, Text: text}); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "submit_contact")
	}

	return ctx.Redirect(contactPath, fiber.StatusFound)
}
