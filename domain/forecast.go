package domain

// ForecastPoint is one month of the 12-period free-cash projection:
// the cumulative position without buying anything versus the cumulative
// position after committing to the wishlist.
type ForecastPoint struct {
	Period                 int     `json:"period"`
	StatusQuoCumulative    float64 `json:"statusQuoCumulative"`
	WithPurchaseCumulative float64 `json:"withPurchaseCumulative"`
}

// SimulationInput is a what-if scenario: percentage shifts applied to income
// and to fixed expenses, with goal contributions held fixed.
type SimulationInput struct {
	IncomeChangePct  float64 `json:"incomeChangePct"`
	ExpenseChangePct float64 `json:"expenseChangePct"`
}

type SimulationResult struct {
	SimulatedIncome   float64 `json:"simulatedIncome"`
	SimulatedExpenses float64 `json:"simulatedExpenses"`
	SimulatedFreeCash float64 `json:"simulatedFreeCash"`
	Difference        float64 `json:"difference"`
}
