package pagesHandler

import (
	catalogService "ZencrowWebsite/internal/api/catalog/service"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PagesHandler serves the informational pages that have no storage behind them.
type PagesHandler struct {
	log            *logrus.Logger
	catalogService catalogService.ICatalogService
}

func New(log *logrus.Logger, cs catalogService.ICatalogService) *PagesHandler {
	return &PagesHandler{
		log:            log,
		catalogService: cs,
	}
}

func (h *PagesHandler) Start(srv fiber.Router) {
	srv.Get("/", h.Home)
	srv.Get("/about/", h.About)
}
