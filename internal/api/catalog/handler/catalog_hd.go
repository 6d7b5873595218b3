package catalogHandler

import (
	"ZencrowWebsite/internal/api/catalog"
	"ZencrowWebsite/pkg/handlerUtil"
	"github.com/gofiber/fiber/v2"
)

func (h *CatalogHandler) ListServices(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	offerings := h.catalogService.GetCatalog()
	resp := catalog.CatalogResponse{Services: make([]catalog.OfferingResponse, 0, len(offerings))}
	for _, o := range offerings {
		resp.Services = append(resp.Services, catalog.NewOfferingResponse(o))
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
}

func (h *CatalogHandler) GetService(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	offering, err := h.catalogService.GetOffering(ctx.Params("id"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_service")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, catalog.NewOfferingResponse(offering))
}
