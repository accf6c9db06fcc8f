package response

import (
	"time"

	"estimator_service/internal/domain/entities"
)

type BidPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	BidID       string    `json:"bid_id"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromBidPayment(p entities.BidPayment) BidPaymentResponse {
	return BidPaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		BidID:              p.BidID,
		PaymentDate:        p.Date,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
