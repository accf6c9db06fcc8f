package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the deposit payment processing outcome.
//
// In the current scope we only need to create/process and persist an
// approved deposit. The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BidPayment is the deposit payment taken against an accepted bid.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (bid_id-index): bid_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. (We persist both because provider schemas
//     may vary between integrations.)

type BidPayment struct {
	ID    string        `json:"id"`
	BidID string        `json:"bid_id"`
	Date  time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
