package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estimator_service/internal/adapter/http/handlers/mocks"
	"estimator_service/internal/domain/entities"
	"estimator_service/internal/domain/estimate"
	"estimator_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEstimateHandler_PreviewEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IEstimateUseCase) *gin.Engine {
		h := NewEstimateHandler(uc)
		r := gin.New()
		r.POST("/v1/estimates", h.PreviewEstimate)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing selections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown option maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Preview(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.EstimateResult{}, usecase.ErrUnknownOption)

		body := `{"selections":[{"category":"design","option_id":"nope"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Preview(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.EstimateResult{}, errors.New("db"))

		body := `{"selections":[{"category":"design","option_id":"a"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		r := newRouter(uc)

		start := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Preview(
			gomock.Any(),
			[]usecase.SelectionInput{{Category: "design", OptionID: "redesign"}},
			usecase.DurationBound("max"),
		).Return(usecase.EstimateResult{
			Totals: estimate.Totals{TotalPrice: 20000, Time: estimate.TimeRange{Min: 15, Max: 30}},
			Schedule: estimate.Schedule{
				EstimatedHours: 144, TotalDays: 18, TotalWeeks: 4,
				StartDate: start, EndDate: start.AddDate(0, 0, 28),
			},
			Bound:      usecase.BoundMax,
			Selections: []entities.BidSelection{{Category: "design", Selection: "Full redesign", Price: 15000}},
		}, nil)

		body := `{"selections":[{"category":" design ","option_id":" redesign "}],"bound":"MAX"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["total_price"] != 20000.0 {
			t.Fatalf("unexpected total_price: %v", resp["total_price"])
		}
		schedule, _ := resp["schedule"].(map[string]any)
		if schedule == nil || schedule["start_date_formatted"] != "Friday, June 6, 2025" {
			t.Fatalf("unexpected schedule: %v", resp["schedule"])
		}
	})
}
