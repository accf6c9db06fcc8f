package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase/interfaces"
)

var (
	ErrBidPaymentNotFound         = errors.New("bid payment not found")
	ErrInvalidPaymentBidID        = errors.New("invalid bid_id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrBidNotAccepted             = errors.New("bid not accepted")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBidPaymentUseCase encapsulates "create and process deposit payment"
// for an accepted bid.

type IBidPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, bidID string, payload json.RawMessage) (entities.BidPayment, error)
	GetByID(ctx context.Context, id string) (entities.BidPayment, error)
	ListByBidID(ctx context.Context, bidID string) ([]entities.BidPayment, error)
}

type BidPaymentUseCase struct {
	repo    interfaces.IBidPaymentRepository
	bidRepo interfaces.IBidRepository
	gateway interfaces.IPaymentGateway
}

var _ IBidPaymentUseCase = (*BidPaymentUseCase)(nil)

func NewBidPaymentUseCase(repo interfaces.IBidPaymentRepository, bidRepo interfaces.IBidRepository, gateway interfaces.IPaymentGateway) *BidPaymentUseCase {
	return &BidPaymentUseCase{repo: repo, bidRepo: bidRepo, gateway: gateway}
}

// CreateAndApprove charges the deposit for an accepted bid through the
// payment gateway and persists the approved payment. The transaction
// amount always comes from the stored bid, never from the caller's
// payload.
func (u *BidPaymentUseCase) CreateAndApprove(ctx context.Context, bidID string, payload json.RawMessage) (entities.BidPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_bid_id=%q payload_len=%d", bidID, len(payload))
	mockMode := isPaymentGatewayMockEnabled()
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		log.Printf("[payment][usecase] invalid bid_id (empty)")
		return entities.BidPayment{}, ErrInvalidPaymentBidID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload bid_id=%s", bidID)
			return entities.BidPayment{}, ErrInvalidProviderPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured bid_id=%s", bidID)
		return entities.BidPayment{}, errors.New("payment gateway not configured")
	}

	bid, err := u.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading bid bid_id=%s err=%v", bidID, err)
		return entities.BidPayment{}, err
	}
	if bid.ID == "" {
		log.Printf("[payment][usecase] bid not found bid_id=%s", bidID)
		return entities.BidPayment{}, ErrBidNotFound
	}
	if !mockMode && bid.Status != entities.BidStatusAccepted {
		log.Printf("[payment][usecase] bid not accepted bid_id=%s status=%s", bidID, bid.Status)
		return entities.BidPayment{}, ErrBidNotAccepted
	}
	log.Printf("[payment][usecase] bid loaded bid_id=%s status=%s total=%.2f", bidID, bid.Status, bid.TotalEstimate)

	// Link the payment to the bid and force the amount from the DB.
	// Providers use external_reference to reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id bid_id=%s", bidID)
			return entities.BidPayment{}, ErrInvalidProviderPayload
		}
		if !mockMode && !hasPayerEmail(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer bid_id=%s", bidID)
			return entities.BidPayment{}, ErrInvalidProviderPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = bidID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Bid %s deposit", bidID)
		}
		reqMap["transaction_amount"] = bid.TotalEstimate
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed bid_id=%s err=%v", bidID, err)
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external gateway bid_id=%s", bidID)
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(payload, bidID, bid.TotalEstimate)
		if err != nil {
			return entities.BidPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed bid_id=%s err=%v", bidID, err)
			if isGatewayUnauthorized(err) {
				return entities.BidPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.BidPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.BidPayment{}, err
		}
	}
	log.Printf("[payment][usecase] gateway success bid_id=%s provider_payment_id=%s provider_status=%s", bidID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed bid_id=%s err=%v", bidID, err)
	}

	p := entities.BidPayment{
		ID:                 providerPaymentID,
		BidID:              bidID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed bid_id=%s payment_id=%s err=%v", bidID, p.ID, err)
		return entities.BidPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success bid_id=%s payment_id=%s status=%s", bidID, created.ID, created.Status)
	return created, nil
}

func (u *BidPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BidPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BidPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BidPayment{}, err
	}
	if p.ID == "" {
		return entities.BidPayment{}, ErrBidPaymentNotFound
	}
	return p, nil
}

func (u *BidPaymentUseCase) ListByBidID(ctx context.Context, bidID string) ([]entities.BidPayment, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return nil, ErrInvalidPaymentBidID
	}
	return u.repo.ListByBidID(ctx, bidID)
}

func mockProviderResponse(payload json.RawMessage, bidID string, amount float64) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = bidID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = amount
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayerEmail(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email")
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
