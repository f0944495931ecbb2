package repository

import "budgetwise/domain"

// StateStore persists the full budget state as a single document. Load on a
// store that has never been written returns a zero state and no error.
type StateStore interface {
	Load() (domain.BudgetState, error)
	Save(state domain.BudgetState) error
}
