package interfaces

import (
	"context"
	"estimator_service/internal/domain/entities"
)

// ICatalogRepository abstracts the read-only estimator catalog (the
// CMS-authored categories and options).
//
// Not-found convention follows the rest of the repositories: a zero
// Option with a nil error; use cases translate that into their own
// sentinel errors.

type ICatalogRepository interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetOption(ctx context.Context, category, optionID string) (entities.Option, error)
}
