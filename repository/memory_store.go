package repository

import "budgetwise/domain"

// MemoryStore is an in-memory StateStore for tests and ephemeral runs.
type MemoryStore struct {
	state domain.BudgetState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (domain.BudgetState, error) {
	return m.state, nil
}

func (m *MemoryStore) Save(state domain.BudgetState) error {
	m.state = state
	return nil
}
