package pagesHandler

import (
	"ZencrowWebsite/internal/api/pages"
	"ZencrowWebsite/pkg/handlerUtil"
	"github.com/gofiber/fiber/v2"
)

const companyName = "Zencrow Technologies"

func (h *PagesHandler) Home(ctx *fiber.Ctx) error {
	offerings := h.catalogService.GetCatalog()

	highlights := make([]pages.ServiceHighlight, 0, len(offerings))
	for _, o := range offerings {
		highlights = append(highlights, pages.ServiceHighlight{
			ID:          o.ID,
			Title:       o.Title,
			Icon:        o.Icon,
			Description: o.Description,
		})
	}

	return handlerUtil.New(h.log).HandleSuccess(ctx, fiber.StatusOK, pages.HomeResponse{
		Company:    companyName,
		Tagline:    "IT support, web development, tech training and language learning under one roof.",
		Highlights: highlights,
	})
}

func (h *PagesHandler) About(ctx *fiber.Ctx) error {
	return handlerUtil.New(h.log).HandleSuccess(ctx, fiber.StatusOK, pages.AboutResponse{
		Company: companyName,
		Mission: "Helping businesses and individuals grow through practical technology and communication skills.",
		Values: []string{
			"Client First",
			"Continuous Learning",
			"Integrity",
			"Innovation",
		},
		Contact: "/contact/",
	})
}
