package response

import "estimator_service/internal/domain/entities"

type CatalogResponse struct {
	Categories []entities.Category `json:"categories"`
}

func FromCategories(cats []entities.Category) CatalogResponse {
	return CatalogResponse{Categories: cats}
}
