package entities

import "time"

// BidStatus represents the lifecycle of a submitted bid.
//
// Domain notes:
//   - The estimator service is the source of truth for bid state.
//   - A bid is created pending; the client may accept, decline or
//     cancel it, and a deposit payment is only taken on accepted bids.

type BidStatus string

const (
	BidStatusPending   BidStatus = "pending"
	BidStatusAccepted  BidStatus = "accepted"
	BidStatusDeclined  BidStatus = "declined"
	BidStatusCancelled BidStatus = "cancelled"
)

// BidSelection is one finalized category selection frozen into a bid.
type BidSelection struct {
	Category  string  `json:"category"`
	Selection string  `json:"selection"`
	Price     float64 `json:"price"`
}

// Bid is a finalized estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalEstimate is the aggregated price over the frozen selections.
//
// StartDate/EndDate are calendar dates (midnight in the estimator's
// configured timezone) projected from the time estimate at submission.

type Bid struct {
	ID              string         `json:"id"`
	Email           string         `json:"email"`
	TotalEstimate   float64        `json:"total_estimate"`
	TimeEstimateMin int            `json:"time_estimate_min"`
	TimeEstimateMax int            `json:"time_estimate_max"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	SelectedOptions []BidSelection `json:"selected_options"`
	Status          BidStatus      `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
