package estimate

// TimeRange is an effort estimate in person-days.
type TimeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Totals is the reduction of a ledger: the summed price of all selected
// options and their combined effort range. Options without a time
// estimate contribute zero days; summation models sequential effort, a
// deliberate simplification over per-team parallelism.
type Totals struct {
	TotalPrice float64   `json:"total_price"`
	Time       TimeRange `json:"time"`
}

// Aggregate reduces the ledger to its totals. It is a total function:
// an empty ledger yields zero price and a zero-width time range, and
// no input causes it to fail. Malformed option data (negative price,
// max < min) is a catalog-authoring defect guarded at load time, not
// here.
func Aggregate(l Ledger) Totals {
	var t Totals
	for _, opt := range l {
		t.TotalPrice += opt.BasePrice
		if opt.TimeEstimate != nil {
			t.Time.Min += opt.TimeEstimate.Min
			t.Time.Max += opt.TimeEstimate.Max
		}
	}
	return t
}
