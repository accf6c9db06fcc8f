package response

import (
	"time"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/domain/estimate"
)

type BidResponse struct {
	BidID           string                  `json:"bid_id"`
	ID              string                  `json:"id"`
	Email           string                  `json:"email"`
	TotalEstimate   float64                 `json:"total_estimate"`
	TimeEstimateMin int                     `json:"time_estimate_min"`
	TimeEstimateMax int                     `json:"time_estimate_max"`
	StartDate       time.Time               `json:"start_date"`
	EndDate         time.Time               `json:"end_date"`
	StartDateFormatted string               `json:"start_date_formatted"`
	EndDateFormatted   string               `json:"end_date_formatted"`
	SelectedOptions []entities.BidSelection `json:"selected_options"`
	Status          string                  `json:"status"`
	FollowUpURL     string                  `json:"follow_up_url"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// FromBid maps a bid to its API shape. FollowUpURL is built from the
// opaque bid id and points at the follow-up endpoint for this bid.
func FromBid(b entities.Bid) BidResponse {
	return BidResponse{
		BidID:              b.ID,
		ID:                 b.ID,
		Email:              b.Email,
		TotalEstimate:      b.TotalEstimate,
		TimeEstimateMin:    b.TimeEstimateMin,
		TimeEstimateMax:    b.TimeEstimateMax,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		StartDateFormatted: b.StartDate.Format(estimate.DateLayout),
		EndDateFormatted:   b.EndDate.Format(estimate.DateLayout),
		SelectedOptions:    b.SelectedOptions,
		Status:             string(b.Status),
		FollowUpURL:        "/v1/bids/" + b.ID,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}
