package request

import "strings"

// BidRequest is the payload for finalizing an estimate as a bid.
// Structurally it is an EstimateRequest plus the contact email.
type BidRequest struct {
	Email      string             `json:"email" binding:"required"`
	Selections []SelectionRequest `json:"selections" binding:"required"`
	Bound      string             `json:"bound"`
}

func (r BidRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

func (r BidRequest) EstimatePart() EstimateRequest {
	return EstimateRequest{Selections: r.Selections, Bound: r.Bound}
}
