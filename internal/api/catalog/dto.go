package catalog

import "ZencrowWebsite/internal/entity"

type PricingTierResponse struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
}

type OfferingResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Icon        string                `json:"icon"`
	Color       string                `json:"color"`
	Description string                `json:"description"`
	Features    []string              `json:"features"`
	Pricing     []PricingTierResponse `json:"pricing"`
}

type CatalogResponse struct {
	Services []OfferingResponse `json:"services"`
}

func NewOfferingResponse(o entity.ServiceOffering) OfferingResponse {
	tiers := make([]PricingTierResponse, 0, len(o.Pricing))
	for _, t := range o.Pricing {
		tiers = append(tiers, PricingTierResponse{
			Name:     t.Name,
			Price:    t.Price,
			Period:   t.Period,
			Features: t.Features,
		})
	}

	return OfferingResponse{
		ID:          o.ID,
		Title:       o.Title,
		Icon:        o.Icon,
		Color:       o.Color,
		Description: o.Description,
		Features:    o.Features,
		Pricing:     tiers,
	}
}
