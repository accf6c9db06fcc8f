// Package estimate holds the project estimator core: the per-session
// selection ledger, price/time aggregation and calendar schedule
// projection. Everything here is pure computation over in-memory
// values; persistence and transport live in the adapter layers.
package estimate

import "estimator_service/internal/domain/entities"

// Ledger maps a category name to the option currently selected in it.
// At most one option per category; selecting again replaces the prior
// choice. The zero value (nil) is a valid empty ledger.
type Ledger map[string]entities.Option

// Select returns a new ledger with the option chosen for the category,
// replacing any prior selection. The receiver is never mutated, so a
// ledger value captured before a Select call stays stable.
func (l Ledger) Select(category string, opt entities.Option) Ledger {
	next := make(Ledger, len(l)+1)
	for k, v := range l {
		next[k] = v
	}
	next[category] = opt
	return next
}

// Selections returns the current category -> option mapping.
func (l Ledger) Selections() map[string]entities.Option {
	return l
}
