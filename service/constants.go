package service

import "budgetwise/domain"

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0 // % per year
	MaxTermMonths   = 600    // 50 years

	// FutureValue defaults when the caller leaves them unset.
	DefaultGrowthRatePct = 12.0
	DefaultHorizonYears  = 10.0

	ForecastHorizonMonths = 12
)

// Models is the catalog of locally runnable advisory models. The first entry
// is the default for fresh state.
var Models = []domain.ModelInfo{
	{ID: "qwen2.5:7b", Name: "Qwen 2.5 (7B)", Description: "Best for Math & Logic"},
	{ID: "llama3.1", Name: "Llama 3.1", Description: "Balanced & Reliable"},
	{ID: "phi3", Name: "Phi-3", Description: "Smart reasoning"},
	{ID: "phi3:mini", Name: "Phi-3 Mini", Description: "Fast & Lightweight"},
}

// DefaultModel returns the catalog's first model id.
func DefaultModel() string { return Models[0].ID }

// KnownModel reports whether id is in the catalog.
func KnownModel(id string) bool {
	for _, m := range Models {
		if m.ID == id {
			return true
		}
	}
	return false
}
