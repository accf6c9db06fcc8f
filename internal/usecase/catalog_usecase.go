package usecase

import (
	"context"
	"errors"
	"fmt"

	"estimator_service/internal/domain/estimate"
	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase/interfaces"
)

var (
	ErrCatalogEmpty = errors.New("catalog is empty")
)

// ICatalogUseCase exposes the read side of the estimator catalog.

type ICatalogUseCase interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// ListCategories returns the full catalog after checking the authoring
// contract. A catalog that fails validation is refused wholesale
// rather than served with silently nonsensical options.
func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.Category, error) {
	cats, err := u.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, ErrCatalogEmpty
	}
	if err := estimate.CheckCatalog(cats); err != nil {
		return nil, fmt.Errorf("catalog rejected: %w", err)
	}
	return cats, nil
}
