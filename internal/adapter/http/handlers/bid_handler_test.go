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
	"estimator_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBidRouter(uc usecase.IBidUseCase) *gin.Engine {
	h := NewBidHandler(uc)
	r := gin.New()
	r.POST("/v1/bids", h.SubmitBid)
	r.GET("/v1/bids/:bid_id", h.GetBid)
	r.PATCH("/v1/bids/:bid_id/accept", h.AcceptBid)
	r.PATCH("/v1/bids/:bid_id/decline", h.DeclineBid)
	r.PATCH("/v1/bids/:bid_id/cancel", h.CancelBid)
	return r
}

func TestBidHandler_SubmitBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newBidRouter(mocks.NewMockIBidUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/bids", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid email maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		r := newBidRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "not-an-email", gomock.Any(), gomock.Any()).Return(entities.Bid{}, usecase.ErrInvalidEmail)

		body := `{"email":"not-an-email","selections":[{"category":"design","option_id":"a"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bids", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["code"] != "INVALID_EMAIL" {
			t.Fatalf("unexpected error code: %v", resp["code"])
		}
	})

	t.Run("persistence failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		r := newBidRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Bid{}, errors.New("db"))

		body := `{"email":"client@example.com","selections":[{"category":"design","option_id":"a"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bids", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with follow-up url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		r := newBidRouter(uc)

		start := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Submit(
			gomock.Any(),
			"client@example.com",
			[]usecase.SelectionInput{{Category: "design", OptionID: "redesign"}},
			usecase.DurationBound(""),
		).Return(entities.Bid{
			ID: "bid-1", Email: "client@example.com", TotalEstimate: 15000,
			StartDate: start, EndDate: start.AddDate(0, 0, 21),
			Status: entities.BidStatusPending,
		}, nil)

		body := `{"email":"client@example.com","selections":[{"category":"design","option_id":"redesign"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/bids", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["follow_up_url"] != "/v1/bids/bid-1" {
			t.Fatalf("unexpected follow_up_url: %v", resp["follow_up_url"])
		}
	})
}

func TestBidHandler_GetBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		r := newBidRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Bid{}, usecase.ErrBidNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bids/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBidUseCase(ctrl)
		r := newBidRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "bid-1").Return(entities.Bid{ID: "bid-1", Status: entities.BidStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bids/bid-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBidHandler_StatusRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		path   string
		expect func(uc *mocks.MockIBidUseCase)
		status entities.BidStatus
	}{
		{
			name: "accept", path: "/v1/bids/bid-1/accept", status: entities.BidStatusAccepted,
			expect: func(uc *mocks.MockIBidUseCase) {
				uc.EXPECT().AcceptByID(gomock.Any(), "bid-1").Return(entities.Bid{ID: "bid-1", Status: entities.BidStatusAccepted}, nil)
			},
		},
		{
			name: "decline", path: "/v1/bids/bid-1/decline", status: entities.BidStatusDeclined,
			expect: func(uc *mocks.MockIBidUseCase) {
				uc.EXPECT().DeclineByID(gomock.Any(), "bid-1").Return(entities.Bid{ID: "bid-1", Status: entities.BidStatusDeclined}, nil)
			},
		},
		{
			name: "cancel", path: "/v1/bids/bid-1/cancel", status: entities.BidStatusCancelled,
			expect: func(uc *mocks.MockIBidUseCase) {
				uc.EXPECT().CancelByID(gomock.Any(), "bid-1").Return(entities.Bid{ID: "bid-1", Status: entities.BidStatusCancelled}, nil)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBidUseCase(ctrl)
			r := newBidRouter(uc)
			tc.expect(uc)

			req := httptest.NewRequest(http.MethodPatch, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var resp map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			if resp["status"] != string(tc.status) {
				t.Fatalf("expected status %s, got %v", tc.status, resp["status"])
			}
		})
	}
}
