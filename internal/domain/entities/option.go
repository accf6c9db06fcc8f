package entities

// Option is one selectable line-item inside a category of the project
// estimator catalog. Prices and time estimates are authored in the CMS
// and loaded read-only; the service never accepts them from clients.
//
// Data contract (enforced at catalog load, not at aggregation time):
//   - BasePrice >= 0
//   - TimeEstimate.Min <= TimeEstimate.Max, Team >= 1
//   - Phase percentages sum to 100

type Option struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Icon        string        `json:"icon,omitempty"`
	BasePrice   float64       `json:"base_price"`
	TimeEstimate *TimeEstimate `json:"time_estimate,omitempty"`
	Phases      []Phase       `json:"phases,omitempty"`
}

// TimeEstimate is an option's effort range in person-days.
type TimeEstimate struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Team int `json:"team"`
}

// Phase is a named slice of an option's effort, as a percentage.
type Phase struct {
	Name        string  `json:"name"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description,omitempty"`
}

// Category groups mutually exclusive options. At most one option per
// category may be selected in an estimation session.
type Category struct {
	Name    string   `json:"name"`
	Options []Option `json:"options"`
}
