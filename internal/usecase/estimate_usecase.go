package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/domain/estimate"
	"estimator_service/internal/usecase/interfaces"
)

var (
	ErrNoSelections    = errors.New("no selections")
	ErrInvalidCategory = errors.New("invalid category")
	ErrUnknownOption   = errors.New("unknown option")
	ErrInvalidBound    = errors.New("invalid duration bound")
)

// DurationBound picks which end of the aggregated time range feeds the
// schedule projection.
type DurationBound string

const (
	BoundMin DurationBound = "min"
	BoundMax DurationBound = "max"
)

// SelectionInput is one category choice as submitted by the client.
// Only identifiers cross the wire; prices and time estimates are
// resolved server-side from the catalog.
type SelectionInput struct {
	Category string
	OptionID string
}

// EstimateResult is the full derived output for a set of selections.
type EstimateResult struct {
	Totals     estimate.Totals
	Schedule   estimate.Schedule
	Bound      DurationBound
	Selections []entities.BidSelection
}

// IEstimateUseCase computes price/time totals and a projected schedule
// for a set of catalog selections.

type IEstimateUseCase interface {
	Preview(ctx context.Context, selections []SelectionInput, bound DurationBound) (EstimateResult, error)
}

type EstimateUseCase struct {
	catalog  interfaces.ICatalogRepository
	settings estimate.Settings
	loc      *time.Location

	nowFn func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the estimator over a catalog. The location
// pins which wall clock "today" is read from, so schedule projections
// do not drift with the host timezone.
func NewEstimateUseCase(catalog interfaces.ICatalogRepository, settings estimate.Settings, loc *time.Location) *EstimateUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &EstimateUseCase{
		catalog:  catalog,
		settings: settings,
		loc:      loc,
		nowFn:    time.Now,
	}
}

func (u *EstimateUseCase) Preview(ctx context.Context, selections []SelectionInput, bound DurationBound) (EstimateResult, error) {
	bound, err := normalizeBound(bound)
	if err != nil {
		return EstimateResult{}, err
	}

	ledger, err := u.resolveLedger(ctx, selections)
	if err != nil {
		return EstimateResult{}, err
	}

	totals := estimate.Aggregate(ledger)

	days := totals.Time.Min
	if bound == BoundMax {
		days = totals.Time.Max
	}
	hours := float64(days) * u.settings.HoursPerDay

	today := u.nowFn().In(u.loc)
	return EstimateResult{
		Totals:     totals,
		Schedule:   estimate.Project(hours, u.settings, today),
		Bound:      bound,
		Selections: frozenSelections(ledger),
	}, nil
}

// resolveLedger folds client selections into a ledger, looking every
// option up in the catalog. A category repeated in the payload follows
// ledger semantics: the last selection wins.
func (u *EstimateUseCase) resolveLedger(ctx context.Context, selections []SelectionInput) (estimate.Ledger, error) {
	if len(selections) == 0 {
		return nil, ErrNoSelections
	}

	var ledger estimate.Ledger
	for _, sel := range selections {
		category := strings.TrimSpace(sel.Category)
		optionID := strings.TrimSpace(sel.OptionID)
		if category == "" {
			return nil, ErrInvalidCategory
		}
		if optionID == "" {
			return nil, fmt.Errorf("%w: category %q: empty option id", ErrUnknownOption, category)
		}

		opt, err := u.catalog.GetOption(ctx, category, optionID)
		if err != nil {
			return nil, err
		}
		if opt.ID == "" {
			return nil, fmt.Errorf("%w: %s/%s", ErrUnknownOption, category, optionID)
		}
		ledger = ledger.Select(category, opt)
	}
	return ledger, nil
}

func normalizeBound(bound DurationBound) (DurationBound, error) {
	switch DurationBound(strings.ToLower(strings.TrimSpace(string(bound)))) {
	case "":
		return BoundMin, nil
	case BoundMin:
		return BoundMin, nil
	case BoundMax:
		return BoundMax, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBound, bound)
	}
}

// frozenSelections flattens the ledger into the per-category records
// attached to bids, ordered by category for stable output.
func frozenSelections(l estimate.Ledger) []entities.BidSelection {
	out := make([]entities.BidSelection, 0, len(l))
	for category, opt := range l.Selections() {
		out = append(out, entities.BidSelection{
			Category:  category,
			Selection: opt.Label,
			Price:     opt.BasePrice,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
