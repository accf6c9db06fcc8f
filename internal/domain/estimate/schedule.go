package estimate

import (
	"math"
	"time"
)

// Settings is the session-scoped scheduling configuration. It is
// supplied once per estimation session and treated as immutable.
type Settings struct {
	WorkingDaysPerWeek int     `json:"working_days_per_week"`
	HoursPerDay        float64 `json:"hours_per_day"`
	BufferPercentage   float64 `json:"buffer_percentage"`
}

// DefaultSettings returns the stock configuration: a five-day working
// week of eight-hour days with a 20% safety buffer.
func DefaultSettings() Settings {
	return Settings{WorkingDaysPerWeek: 5, HoursPerDay: 8, BufferPercentage: 20}
}

// Schedule is the calendar projection of an effort estimate.
type Schedule struct {
	EstimatedHours float64   `json:"estimated_hours"`
	TotalDays      int       `json:"total_days"`
	TotalWeeks     int       `json:"total_weeks"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
}

// DateLayout renders a calendar date the way the marketplace shows it
// (weekday, month name, day, year).
const DateLayout = "Monday, January 2, 2006"

// Project converts total effort in hours into a calendar schedule.
//
// The computation is deterministic for a fixed today:
//  1. hours are padded by the buffer percentage
//  2. working days needed = padded hours / hours per day, rounded up
//     (a partial day counts as a full day)
//  3. weeks needed = days / working days per week, rounded up
//  4. the start date is today+5 when today is a Sunday, otherwise
//     today + ((8-weekday)%7)+1. The offset formula is kept literally
//     as the marketplace ships it; it does not land on a Monday for
//     most weekdays, and callers rely on the exact offsets.
//  5. the end date is the start date plus weeks*7 calendar days; the
//     weeks figure already absorbs non-working days.
//
// Today is normalized to midnight of its calendar date in its own
// location, so only the calendar day feeds the projection.
func Project(totalHours float64, s Settings, today time.Time) Schedule {
	hoursWithBuffer := totalHours * (1 + s.BufferPercentage/100)
	totalDays := int(math.Ceil(hoursWithBuffer / s.HoursPerDay))
	totalWeeks := int(math.Ceil(float64(totalDays) / float64(s.WorkingDaysPerWeek)))

	day := midnight(today)
	start := day.AddDate(0, 0, startOffset(day.Weekday()))
	end := start.AddDate(0, 0, totalWeeks*7)

	return Schedule{
		EstimatedHours: hoursWithBuffer,
		TotalDays:      totalDays,
		TotalWeeks:     totalWeeks,
		StartDate:      start,
		EndDate:        end,
	}
}

// startOffset is the number of calendar days between today and the
// projected kickoff. Sunday jumps to the following Friday; every other
// weekday advances by ((8-weekday)%7)+1 days.
func startOffset(wd time.Weekday) int {
	if wd == time.Sunday {
		return 5
	}
	return (8-int(wd))%7 + 1
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
