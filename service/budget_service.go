package service

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"budgetwise/domain"
	"budgetwise/repository"
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrAmountRequired = errors.New("amount is required")
	ErrNotFound       = errors.New("record not found")
	ErrUnknownModel   = errors.New("unknown model")
)

// BudgetService owns the budget state. The calculation core stays pure; this
// is the single mutable container the HTTP layer talks to. State is loaded
// from the store once at construction and written back on every mutation.
type BudgetService struct {
	mu     sync.RWMutex
	state  domain.BudgetState
	store  repository.StateStore
	logger *logrus.Logger
	lastID int64
}

// NewBudgetService loads persisted state from the store. A store that has
// never been written yields an empty budget with the default model selected.
func NewBudgetService(store repository.StateStore, logger *logrus.Logger) (*BudgetService, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	if state.ModelName == "" {
		state.ModelName = DefaultModel()
	}
	return &BudgetService{state: state, store: store, logger: logger}, nil
}

// State returns a copy of the current budget state.
func (s *BudgetService) State() domain.BudgetState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// ReplaceState swaps in a fully restored state, e.g. from a backup document.
func (s *BudgetService) ReplaceState(state domain.BudgetState) error {
	if state.ModelName == "" {
		state.ModelName = DefaultModel()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = copyState(state)
	return s.store.Save(s.state)
}

// Snapshot recomputes the derived totals from the current state.
func (s *BudgetService) Snapshot() domain.FinancialSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot(s.state)
}

// Forecast projects the current free cash against the current wishlist.
func (s *BudgetService) Forecast() []domain.ForecastPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot(s.state)
	return Forecast(snap.FreeCash, s.state.Wishlist)
}

// Simulate runs a what-if scenario against the current aggregates.
func (s *BudgetService) Simulate(in domain.SimulationInput) domain.SimulationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot(s.state)
	return Simulate(s.state.Income.Value(), snap.TotalFixedOutflow, snap.FreeCash, in)
}

func (s *BudgetService) SetIncome(amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Income = domain.Amount(amount)
	s.persist()
}

func (s *BudgetService) SetModel(id string) error {
	if !KnownModel(id) {
		return ErrUnknownModel
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ModelName = id
	s.persist()
	return nil
}

// AddExpense validates and stores a new expense. For loans with complete
// terms the installment is recomputed server-side, overwriting whatever
// amount the client sent.
func (s *BudgetService) AddExpense(e domain.Expense) (domain.Expense, error) {
	if e.Name == "" {
		return domain.Expense{}, ErrNameRequired
	}
	if e.Type != domain.ExpenseLoan {
		e.Type = domain.ExpenseBill
	}
	if e.Type == domain.ExpenseLoan && e.Principal != 0 && e.Rate != 0 && e.TenureMonths != 0 {
		installment, err := Amortize(e.Principal.Value(), e.Rate.Value(), e.TenureMonths)
		if err != nil {
			return domain.Expense{}, err
		}
		e.Amount = domain.Amount(installment)
	}
	if e.Amount == 0 {
		return domain.Expense{}, ErrAmountRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID()
	s.state.Expenses = append(s.state.Expenses, e)
	s.persist()
	return e, nil
}

func (s *BudgetService) DeleteExpense(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.state.Expenses {
		if e.ID == id {
			s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

func (s *BudgetService) AddGoal(g domain.Goal) (domain.Goal, error) {
	if g.Name == "" {
		return domain.Goal{}, ErrNameRequired
	}
	if g.MonthlyContribution == 0 {
		return domain.Goal{}, ErrAmountRequired
	}
	g.CurrentProgress = 0

	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.nextID()
	s.state.Goals = append(s.state.Goals, g)
	s.persist()
	return g, nil
}

func (s *BudgetService) DeleteGoal(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, g := range s.state.Goals {
		if g.ID == id {
			s.state.Goals = append(s.state.Goals[:i], s.state.Goals[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

func (s *BudgetService) AddAsset(a domain.Asset) (domain.Asset, error) {
	if a.Name == "" {
		return domain.Asset{}, ErrNameRequired
	}
	if a.Value == 0 {
		return domain.Asset{}, ErrAmountRequired
	}
	switch a.Type {
	case domain.AssetInvestment, domain.AssetCash, domain.AssetProperty, domain.AssetGold:
	default:
		a.Type = domain.AssetInvestment
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextID()
	s.state.Assets = append(s.state.Assets, a)
	s.persist()
	return a, nil
}

func (s *BudgetService) DeleteAsset(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.state.Assets {
		if a.ID == id {
			s.state.Assets = append(s.state.Assets[:i], s.state.Assets[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// AddWishlistItem validates and stores a wishlist entry. Financed items get
// their monthly installment computed here; cash items keep their one-time
// cost as the impact.
func (s *BudgetService) AddWishlistItem(w domain.WishlistItem) (domain.WishlistItem, error) {
	if w.Name == "" {
		return domain.WishlistItem{}, ErrNameRequired
	}
	if w.Cost == 0 {
		return domain.WishlistItem{}, ErrAmountRequired
	}
	if w.IsFinanced {
		monthly, err := Amortize(w.Cost.Value(), w.FinanceRate.Value(), w.FinanceTermMonths)
		if err != nil {
			return domain.WishlistItem{}, err
		}
		w.CalculatedMonthly = domain.Amount(monthly)
	} else {
		w.CalculatedMonthly = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w.ID = s.nextID()
	s.state.Wishlist = append(s.state.Wishlist, w)
	s.persist()
	return w, nil
}

func (s *BudgetService) DeleteWishlistItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.state.Wishlist {
		if w.ID == id {
			s.state.Wishlist = append(s.state.Wishlist[:i], s.state.Wishlist[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// nextID derives ids from the creation time, bumped when two records land in
// the same millisecond. Callers must hold the write lock.
func (s *BudgetService) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// persist writes the state back to the store. A failed save is logged and
// swallowed: the in-memory state is still valid. Callers must hold the lock.
func (s *BudgetService) persist() {
	if err := s.store.Save(s.state); err != nil {
		s.logger.Warnf("failed to save budget state: %v", err)
	}
}

func copyState(state domain.BudgetState) domain.BudgetState {
	out := state
	out.Expenses = append([]domain.Expense(nil), state.Expenses...)
	out.Goals = append([]domain.Goal(nil), state.Goals...)
	out.Assets = append([]domain.Asset(nil), state.Assets...)
	out.Wishlist = append([]domain.WishlistItem(nil), state.Wishlist...)
	return out
}
