package estimate

import (
	"errors"
	"testing"

	"estimator_service/internal/domain/entities"
)

func TestCheckOption(t *testing.T) {
	valid := entities.Option{
		ID:        "redesign",
		Label:     "Full redesign",
		BasePrice: 15000,
		TimeEstimate: &entities.TimeEstimate{Min: 10, Max: 20, Team: 2},
		Phases: []entities.Phase{
			{Name: "discovery", Percentage: 30},
			{Name: "build", Percentage: 50},
			{Name: "launch", Percentage: 20},
		},
	}
	if err := CheckOption("design", valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(o *entities.Option)
	}{
		{"missing id", func(o *entities.Option) { o.ID = "" }},
		{"negative price", func(o *entities.Option) { o.BasePrice = -1 }},
		{"negative min", func(o *entities.Option) { o.TimeEstimate.Min = -1 }},
		{"max below min", func(o *entities.Option) { o.TimeEstimate.Max = 5 }},
		{"zero team", func(o *entities.Option) { o.TimeEstimate.Team = 0 }},
		{"phase percentage out of range", func(o *entities.Option) { o.Phases[0].Percentage = 130 }},
		{"phases not summing to 100", func(o *entities.Option) { o.Phases[2].Percentage = 10 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := valid
			te := *valid.TimeEstimate
			o.TimeEstimate = &te
			o.Phases = append([]entities.Phase(nil), valid.Phases...)
			tc.mutate(&o)

			err := CheckOption("design", o)
			if !errors.Is(err, ErrInvalidOption) {
				t.Fatalf("expected ErrInvalidOption, got %v", err)
			}
		})
	}

	t.Run("no time estimate or phases is fine", func(t *testing.T) {
		o := entities.Option{ID: "none", BasePrice: 0}
		if err := CheckOption("design", o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fractional phases within tolerance", func(t *testing.T) {
		o := entities.Option{ID: "frac", Phases: []entities.Phase{
			{Name: "a", Percentage: 33.33},
			{Name: "b", Percentage: 33.33},
			{Name: "c", Percentage: 33.34},
		}}
		if err := CheckOption("design", o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckCatalog(t *testing.T) {
	t.Run("duplicate option id", func(t *testing.T) {
		cats := []entities.Category{{
			Name: "design",
			Options: []entities.Option{
				{ID: "a", BasePrice: 1},
				{ID: "a", BasePrice: 2},
			},
		}}
		if err := CheckCatalog(cats); !errors.Is(err, ErrInvalidOption) {
			t.Fatalf("expected ErrInvalidOption, got %v", err)
		}
	})

	t.Run("valid catalog", func(t *testing.T) {
		cats := []entities.Category{
			{Name: "design", Options: []entities.Option{{ID: "a"}, {ID: "b"}}},
			{Name: "migration", Options: []entities.Option{{ID: "a"}}},
		}
		if err := CheckCatalog(cats); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
