package estimate

import (
	"testing"
	"time"
)

// sundayAnchor is a known Sunday used to exercise every weekday.
var sundayAnchor = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestProject_Rounding(t *testing.T) {
	s := Settings{WorkingDaysPerWeek: 5, HoursPerDay: 8, BufferPercentage: 20}

	got := Project(80, s, sundayAnchor)
	if got.EstimatedHours != 96 {
		t.Fatalf("expected 96 buffered hours, got %v", got.EstimatedHours)
	}
	if got.TotalDays != 12 {
		t.Fatalf("expected 12 days, got %d", got.TotalDays)
	}
	if got.TotalWeeks != 3 {
		t.Fatalf("expected 3 weeks, got %d", got.TotalWeeks)
	}
}

func TestProject_PartialDayRoundsUp(t *testing.T) {
	s := Settings{WorkingDaysPerWeek: 5, HoursPerDay: 8, BufferPercentage: 0}

	if got := Project(9, s, sundayAnchor).TotalDays; got != 2 {
		t.Fatalf("expected 2 days for 9h, got %d", got)
	}
	if got := Project(8, s, sundayAnchor).TotalDays; got != 1 {
		t.Fatalf("expected 1 day for 8h, got %d", got)
	}
	if got := Project(41, s, sundayAnchor).TotalWeeks; got != 2 {
		t.Fatalf("expected 2 weeks for 6 days, got %d", got)
	}
}

func TestProject_StartOffsets(t *testing.T) {
	if sundayAnchor.Weekday() != time.Sunday {
		t.Fatalf("anchor is not a Sunday: %s", sundayAnchor.Weekday())
	}

	// The shipped offset formula does not land on a Monday for most
	// weekdays; these exact values are load-bearing.
	wantOffsets := map[time.Weekday]int{
		time.Sunday:    5,
		time.Monday:    1,
		time.Tuesday:   7,
		time.Wednesday: 6,
		time.Thursday:  5,
		time.Friday:    4,
		time.Saturday:  3,
	}

	s := DefaultSettings()
	for i := 0; i < 7; i++ {
		today := sundayAnchor.AddDate(0, 0, i)
		want := wantOffsets[today.Weekday()]
		got := Project(40, s, today)
		offset := int(got.StartDate.Sub(today).Hours() / 24)
		if offset != want {
			t.Fatalf("%s: expected offset %d, got %d", today.Weekday(), want, offset)
		}
	}
}

func TestProject_SundayStartsFollowingFriday(t *testing.T) {
	got := Project(40, DefaultSettings(), sundayAnchor)
	want := sundayAnchor.AddDate(0, 0, 5)
	if !got.StartDate.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got.StartDate)
	}
	if got.StartDate.Weekday() != time.Friday {
		t.Fatalf("expected Friday, got %s", got.StartDate.Weekday())
	}
}

func TestProject_TuesdayAdvancesFullWeek(t *testing.T) {
	tuesday := sundayAnchor.AddDate(0, 0, 2)
	got := Project(40, DefaultSettings(), tuesday)
	want := tuesday.AddDate(0, 0, 7)
	if !got.StartDate.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got.StartDate)
	}
}

func TestProject_EndDate(t *testing.T) {
	s := Settings{WorkingDaysPerWeek: 5, HoursPerDay: 8, BufferPercentage: 20}
	got := Project(80, s, sundayAnchor)
	want := got.StartDate.AddDate(0, 0, got.TotalWeeks*7)
	if !got.EndDate.Equal(want) {
		t.Fatalf("expected end %s, got %s", want, got.EndDate)
	}
}

func TestProject_Deterministic(t *testing.T) {
	s := DefaultSettings()
	a := Project(123, s, sundayAnchor.AddDate(0, 0, 3))
	b := Project(123, s, sundayAnchor.AddDate(0, 0, 3))
	if a != b {
		t.Fatalf("expected identical schedules, got %+v vs %+v", a, b)
	}
}

func TestProject_IgnoresTimeOfDay(t *testing.T) {
	noon := sundayAnchor.Add(12*time.Hour + 34*time.Minute)
	a := Project(40, DefaultSettings(), sundayAnchor)
	b := Project(40, DefaultSettings(), noon)
	if !a.StartDate.Equal(b.StartDate) || !a.EndDate.Equal(b.EndDate) {
		t.Fatalf("time of day leaked into projection: %+v vs %+v", a, b)
	}
}

func TestProject_FormattedDatesRoundTrip(t *testing.T) {
	got := Project(80, DefaultSettings(), sundayAnchor.AddDate(0, 0, 4))
	for _, d := range []time.Time{got.StartDate, got.EndDate} {
		formatted := d.Format(DateLayout)
		parsed, err := time.Parse(DateLayout, formatted)
		if err != nil {
			t.Fatalf("parse %q: %v", formatted, err)
		}
		py, pm, pd := parsed.Date()
		y, m, dd := d.Date()
		if py != y || pm != m || pd != dd {
			t.Fatalf("round trip changed calendar day: %q vs %s", formatted, d)
		}
	}
}
