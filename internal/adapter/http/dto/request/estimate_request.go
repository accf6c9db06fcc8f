package request

import "strings"

// SelectionRequest is one category choice in an estimate payload. Only
// identifiers are accepted; prices and durations always come from the
// catalog on the server side.
type SelectionRequest struct {
	Category string `json:"category" binding:"required"`
	OptionID string `json:"option_id" binding:"required"`
}

// EstimateRequest is the payload for estimate previews and the
// selection part of bid submissions.
type EstimateRequest struct {
	Selections []SelectionRequest `json:"selections" binding:"required"`
	Bound      string             `json:"bound"`
}

// ResolveBound normalizes the requested duration bound; empty means
// the caller wants the default (the use case resolves which one).
func (r EstimateRequest) ResolveBound() string {
	return strings.ToLower(strings.TrimSpace(r.Bound))
}

// ResolveSelections trims identifier whitespace and drops entries that
// are empty on both sides (a fully blank row from a UI form). Entries
// with only one side blank are kept so the use case can reject them
// with a precise error.
func (r EstimateRequest) ResolveSelections() []SelectionRequest {
	out := make([]SelectionRequest, 0, len(r.Selections))
	for _, s := range r.Selections {
		category := strings.TrimSpace(s.Category)
		optionID := strings.TrimSpace(s.OptionID)
		if category == "" && optionID == "" {
			continue
		}
		out = append(out, SelectionRequest{Category: category, OptionID: optionID})
	}
	return out
}
