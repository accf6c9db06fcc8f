package usecase

import (
	"context"
	"errors"
	"testing"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/domain/estimate"
	mock_interfaces "estimator_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ListCategories(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListCategories(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)

		_, err := uc.ListCategories(context.Background())
		if !errors.Is(err, ErrCatalogEmpty) {
			t.Fatalf("expected ErrCatalogEmpty, got %v", err)
		}
	})

	t.Run("invalid option rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().ListCategories(gomock.Any()).Return([]entities.Category{
			{Name: "design", Options: []entities.Option{{ID: "a", BasePrice: -10}}},
		}, nil)

		_, err := uc.ListCategories(context.Background())
		if !errors.Is(err, estimate.ErrInvalidOption) {
			t.Fatalf("expected ErrInvalidOption, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		cats := []entities.Category{
			{Name: "design", Options: []entities.Option{{ID: "a", BasePrice: 100}}},
		}
		repo.EXPECT().ListCategories(gomock.Any()).Return(cats, nil)

		got, err := uc.ListCategories(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "design" {
			t.Fatalf("unexpected catalog: %+v", got)
		}
	})
}
