package catalogService

import (
	"ZencrowWebsite/internal/entity"
)

type ICatalogService interface {
	GetCatalog() []entity.ServiceOffering
	GetOffering(id string) (entity.ServiceOffering, error)
}

type catalogService struct {
	offerings []entity.ServiceOffering
}

func NewCatalogService() ICatalogService {
	return &catalogService{
		offerings: offerings(),
	}
}
