package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "estimator_service/internal/adapter/http/dto/response"
	"estimator_service/internal/usecase"
	"estimator_service/pkg"

	"github.com/gin-gonic/gin"
)

// BidPaymentHandler handles HTTP requests for bid deposit payments.

type BidPaymentHandler struct {
	usecase usecase.IBidPaymentUseCase
}

func NewBidPaymentHandler(uc usecase.IBidPaymentUseCase) *BidPaymentHandler {
	return &BidPaymentHandler{usecase: uc}
}

// CreatePaymentByBidID creates/approves a deposit using bid_id in path.
func (h *BidPaymentHandler) CreatePaymentByBidID(c *gin.Context) {
	bidID := c.Param("bid_id")
	log.Printf("[payment][handler] create start bid_id=%s", bidID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload bid_id=%s err=%v", bidID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload bid_id=%s err=%v", bidID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), bidID, payload)
	if err != nil {
		log.Printf("[payment][handler] create failed bid_id=%s err=%v", bidID, err)
		appErr := mapBidPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success bid_id=%s payment_id=%s status=%s", bidID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBidPayment(created))
}

// GetPaymentByBidID returns the latest payment for a bid.
func (h *BidPaymentHandler) GetPaymentByBidID(c *gin.Context) {
	bidID := c.Param("bid_id")

	payments, err := h.usecase.ListByBidID(c.Request.Context(), bidID)
	if err != nil {
		appErr := mapBidPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBidPayment(latest))
}

// readProviderPayload accepts either a bare provider payload or one
// wrapped in a {"provider_payload": ...} envelope.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBidPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentBidID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidNotAccepted):
		return pkg.NewDomainErrorSimple("BID_NOT_ACCEPTED", "Bid not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
