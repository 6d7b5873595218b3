package contactHandler

import (
	contactService "ZencrowWebsite/internal/api/contact/service"
	"ZencrowWebsite/internal/middleware"
	"ZencrowWebsite/pkg/flash"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	contactService contactService.IContactService
	flash          flash.Store
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	cs contactService.IContactService,
	flashStore flash.Store,
) *ContactHandler {
	return &ContactHandler{
		log:            log,
		middleware:     middleware,
		contactService: cs,
		flash:          flashStore,
	}
}

func (h *ContactHandler) Start(srv fiber.Router) {
	contact := srv.Group("/contact")

	contact.Get("/", h.ContactPage)
	contact.Post("/", h.middleware.NewRateLimiter, h.Submit)
}
