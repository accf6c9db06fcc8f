package handlers

import (
	"errors"
	"net/http"

	response "estimator_service/internal/adapter/http/dto/response"
	"estimator_service/internal/domain/estimate"
	"estimator_service/internal/usecase"
	"estimator_service/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the CMS-authored estimator catalog.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog returns every category with its options.
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	cats, err := h.usecase.ListCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(cats))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogEmpty):
		return pkg.NewDomainErrorSimple("CATALOG_EMPTY", "Catalog is not configured", http.StatusNotFound)
	case errors.Is(err, estimate.ErrInvalidOption):
		return pkg.NewDomainError("CATALOG_INVALID", "Catalog failed validation", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
