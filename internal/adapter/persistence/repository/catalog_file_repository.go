package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/domain/estimate"
	"estimator_service/internal/usecase/interfaces"
)

// CatalogFileRepository serves the estimator catalog from a JSON
// export of the CMS content (an array of categories). The file is
// read once at startup and validated up front, so a malformed catalog
// fails the deploy instead of surfacing mid-session.

type CatalogFileRepository struct {
	categories []entities.Category
	byCategory map[string]map[string]entities.Option
}

var _ interfaces.ICatalogRepository = (*CatalogFileRepository)(nil)

func NewCatalogFileRepository(path string) (*CatalogFileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var categories []entities.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if err := estimate.CheckCatalog(categories); err != nil {
		return nil, err
	}

	byCategory := make(map[string]map[string]entities.Option, len(categories))
	for _, cat := range categories {
		byOption := make(map[string]entities.Option, len(cat.Options))
		for _, opt := range cat.Options {
			byOption[opt.ID] = opt
		}
		byCategory[cat.Name] = byOption
	}

	return &CatalogFileRepository{
		categories: categories,
		byCategory: byCategory,
	}, nil
}

func (r *CatalogFileRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return r.categories, nil
}

func (r *CatalogFileRepository) GetOption(ctx context.Context, category, optionID string) (entities.Option, error) {
	return r.byCategory[category][optionID], nil
}
