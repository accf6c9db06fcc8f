package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"estimator_service/internal/adapter/http/handlers/mocks"
	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ICatalogUseCase) *gin.Engine {
		h := NewCatalogHandler(uc)
		r := gin.New()
		r.GET("/v1/catalog", h.ListCatalog)
		return r
	}

	t.Run("empty catalog maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ListCategories(gomock.Any()).Return(nil, usecase.ErrCatalogEmpty)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("repo error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ListCategories(gomock.Any()).Return([]entities.Category{
			{Name: "design", Options: []entities.Option{{ID: "a", Label: "A", BasePrice: 100}}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		cats, _ := resp["categories"].([]any)
		if len(cats) != 1 {
			t.Fatalf("expected 1 category, got %v", resp["categories"])
		}
	})
}
