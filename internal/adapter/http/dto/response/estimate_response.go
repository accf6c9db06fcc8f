package response

import (
	"time"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/domain/estimate"
	"estimator_service/internal/usecase"
)

// ScheduleResponse carries both machine (ISO-8601) and human-readable
// renderings of the projected dates; the formatted variants are
// derived from the same values.
type ScheduleResponse struct {
	EstimatedHours     float64   `json:"estimated_hours"`
	TotalDays          int       `json:"total_days"`
	TotalWeeks         int       `json:"total_weeks"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	StartDateFormatted string    `json:"start_date_formatted"`
	EndDateFormatted   string    `json:"end_date_formatted"`
}

type EstimateResponse struct {
	TotalPrice   float64                 `json:"total_price"`
	TimeEstimate estimate.TimeRange      `json:"time_estimate"`
	Bound        string                  `json:"bound"`
	Schedule     ScheduleResponse        `json:"schedule"`
	Selections   []entities.BidSelection `json:"selections"`
}

func FromEstimateResult(r usecase.EstimateResult) EstimateResponse {
	return EstimateResponse{
		TotalPrice:   r.Totals.TotalPrice,
		TimeEstimate: r.Totals.Time,
		Bound:        string(r.Bound),
		Schedule:     fromSchedule(r.Schedule),
		Selections:   r.Selections,
	}
}

func fromSchedule(s estimate.Schedule) ScheduleResponse {
	return ScheduleResponse{
		EstimatedHours:     s.EstimatedHours,
		TotalDays:          s.TotalDays,
		TotalWeeks:         s.TotalWeeks,
		StartDate:          s.StartDate,
		EndDate:            s.EndDate,
		StartDateFormatted: s.StartDate.Format(estimate.DateLayout),
		EndDateFormatted:   s.EndDate.Format(estimate.DateLayout),
	}
}
