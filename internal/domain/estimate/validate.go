package estimate

import (
	"errors"
	"fmt"
	"math"

	"estimator_service/internal/domain/entities"
)

// ErrInvalidOption marks catalog data that violates the authoring
// contract. It is raised when the catalog is loaded, never during
// aggregation; a ledger only ever holds options that passed this
// check.
var ErrInvalidOption = errors.New("invalid option")

// phasePercentageTolerance absorbs float drift when phase percentages
// are authored as fractions like 33.33/33.33/33.34.
const phasePercentageTolerance = 0.01

// CheckOption validates one catalog option against the authoring
// contract: non-negative price, coherent time estimate, and phase
// percentages summing to 100 when phases are present.
func CheckOption(category string, opt entities.Option) error {
	if opt.ID == "" {
		return fmt.Errorf("%w: category %q: option without id", ErrInvalidOption, category)
	}
	if opt.BasePrice < 0 {
		return fmt.Errorf("%w: %s/%s: negative base price %v", ErrInvalidOption, category, opt.ID, opt.BasePrice)
	}
	if te := opt.TimeEstimate; te != nil {
		if te.Min < 0 {
			return fmt.Errorf("%w: %s/%s: negative min days %d", ErrInvalidOption, category, opt.ID, te.Min)
		}
		if te.Max < te.Min {
			return fmt.Errorf("%w: %s/%s: max days %d below min %d", ErrInvalidOption, category, opt.ID, te.Max, te.Min)
		}
		if te.Team < 1 {
			return fmt.Errorf("%w: %s/%s: team size %d", ErrInvalidOption, category, opt.ID, te.Team)
		}
	}
	if len(opt.Phases) > 0 {
		sum := 0.0
		for _, p := range opt.Phases {
			if p.Percentage < 0 || p.Percentage > 100 {
				return fmt.Errorf("%w: %s/%s: phase %q percentage %v out of range", ErrInvalidOption, category, opt.ID, p.Name, p.Percentage)
			}
			sum += p.Percentage
		}
		if math.Abs(sum-100) > phasePercentageTolerance {
			return fmt.Errorf("%w: %s/%s: phase percentages sum to %v", ErrInvalidOption, category, opt.ID, sum)
		}
	}
	return nil
}

// CheckCatalog validates every option of every category, failing fast
// on the first violation. Duplicate option ids within a category are
// also rejected since option ids key client selections.
func CheckCatalog(categories []entities.Category) error {
	for _, cat := range categories {
		seen := make(map[string]struct{}, len(cat.Options))
		for _, opt := range cat.Options {
			if err := CheckOption(cat.Name, opt); err != nil {
				return err
			}
			if _, dup := seen[opt.ID]; dup {
				return fmt.Errorf("%w: %s: duplicate option id %q", ErrInvalidOption, cat.Name, opt.ID)
			}
			seen[opt.ID] = struct{}{}
		}
	}
	return nil
}
