package estimate

import (
	"testing"

	"estimator_service/internal/domain/entities"
)

func opt(id string, price float64, te *entities.TimeEstimate) entities.Option {
	return entities.Option{ID: id, Label: id, BasePrice: price, TimeEstimate: te}
}

func TestLedger_Select(t *testing.T) {
	t.Run("replaces prior selection in category", func(t *testing.T) {
		a := opt("a", 15000, nil)
		b := opt("b", 5000, nil)

		l := Ledger{}.Select("design", a).Select("design", b)
		if len(l) != 1 {
			t.Fatalf("expected 1 selection, got %d", len(l))
		}
		if got := l["design"].ID; got != "b" {
			t.Fatalf("expected b selected, got %q", got)
		}
	})

	t.Run("does not mutate receiver", func(t *testing.T) {
		first := Ledger{}.Select("design", opt("a", 100, nil))
		_ = first.Select("design", opt("b", 200, nil))
		if first["design"].ID != "a" {
			t.Fatalf("prior ledger mutated: %+v", first)
		}
	})

	t.Run("idempotent for same option", func(t *testing.T) {
		a := opt("a", 100, &entities.TimeEstimate{Min: 1, Max: 2, Team: 1})
		once := Aggregate(Ledger{}.Select("design", a))
		twice := Aggregate(Ledger{}.Select("design", a).Select("design", a))
		if once != twice {
			t.Fatalf("expected identical totals, got %+v vs %+v", once, twice)
		}
	})

	t.Run("nil ledger is usable", func(t *testing.T) {
		var l Ledger
		l = l.Select("design", opt("a", 100, nil))
		if len(l.Selections()) != 1 {
			t.Fatalf("expected 1 selection, got %d", len(l))
		}
	})
}

func TestAggregate(t *testing.T) {
	t.Run("empty ledger is zero", func(t *testing.T) {
		got := Aggregate(Ledger{})
		if got.TotalPrice != 0 || got.Time != (TimeRange{}) {
			t.Fatalf("expected zero totals, got %+v", got)
		}
	})

	t.Run("sums prices across categories", func(t *testing.T) {
		l := Ledger{}.
			Select("design", opt("a", 15000, nil)).
			Select("migration", opt("b", 5000, nil))
		if got := Aggregate(l).TotalPrice; got != 20000 {
			t.Fatalf("expected 20000, got %v", got)
		}
	})

	t.Run("sums time ranges", func(t *testing.T) {
		l := Ledger{}.
			Select("design", opt("a", 0, &entities.TimeEstimate{Min: 10, Max: 20, Team: 2})).
			Select("migration", opt("b", 0, &entities.TimeEstimate{Min: 5, Max: 10, Team: 1}))
		got := Aggregate(l).Time
		if got != (TimeRange{Min: 15, Max: 30}) {
			t.Fatalf("expected {15 30}, got %+v", got)
		}
	})

	t.Run("options without a time estimate contribute zero days", func(t *testing.T) {
		l := Ledger{}.
			Select("design", opt("a", 1000, nil)).
			Select("migration", opt("b", 0, &entities.TimeEstimate{Min: 3, Max: 7, Team: 1}))
		got := Aggregate(l)
		if got.TotalPrice != 1000 {
			t.Fatalf("expected price 1000, got %v", got.TotalPrice)
		}
		if got.Time != (TimeRange{Min: 3, Max: 7}) {
			t.Fatalf("expected {3 7}, got %+v", got.Time)
		}
	})

	t.Run("no time estimates at all yields zero range", func(t *testing.T) {
		l := Ledger{}.Select("design", opt("a", 1000, nil))
		if got := Aggregate(l).Time; got != (TimeRange{}) {
			t.Fatalf("expected {0 0}, got %+v", got)
		}
	})

	t.Run("point estimate keeps min equal to max", func(t *testing.T) {
		l := Ledger{}.
			Select("design", opt("a", 0, &entities.TimeEstimate{Min: 4, Max: 4, Team: 1})).
			Select("migration", opt("b", 0, &entities.TimeEstimate{Min: 1, Max: 3, Team: 1}))
		got := Aggregate(l).Time
		if got != (TimeRange{Min: 5, Max: 7}) {
			t.Fatalf("expected {5 7}, got %+v", got)
		}
		if got.Min > got.Max {
			t.Fatalf("min exceeds max: %+v", got)
		}
	})

	t.Run("replacement excludes the replaced option", func(t *testing.T) {
		l := Ledger{}.
			Select("design", opt("a", 15000, &entities.TimeEstimate{Min: 10, Max: 20, Team: 1})).
			Select("design", opt("b", 5000, &entities.TimeEstimate{Min: 5, Max: 10, Team: 1}))
		got := Aggregate(l)
		if got.TotalPrice != 5000 {
			t.Fatalf("expected 5000, got %v", got.TotalPrice)
		}
		if got.Time != (TimeRange{Min: 5, Max: 10}) {
			t.Fatalf("expected {5 10}, got %+v", got.Time)
		}
	})
}
