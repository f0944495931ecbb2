package service

import "budgetwise/domain"

// Forecast projects free cash over a fixed 12-month horizon under two tracks.
// The status-quo track accumulates freeCash linearly, no compounding. The
// with-purchase track pays each non-financed wishlist item's full cost in
// month one and every financed item's installment in every month.
func Forecast(freeCash float64, wishlist []domain.WishlistItem) []domain.ForecastPoint {
	var oneTime, recurring float64
	for _, w := range wishlist {
		if w.IsFinanced {
			recurring += w.CalculatedMonthly.Value()
		} else {
			oneTime += w.Cost.Value()
		}
	}

	points := make([]domain.ForecastPoint, 0, ForecastHorizonMonths)
	cumulative := 0.0
	for period := 1; period <= ForecastHorizonMonths; period++ {
		delta := freeCash - recurring
		if period == 1 {
			delta -= oneTime
		}
		cumulative += delta
		points = append(points, domain.ForecastPoint{
			Period:                 period,
			StatusQuoCumulative:    float64(period) * freeCash,
			WithPurchaseCumulative: cumulative,
		})
	}
	return points
}

// Simulate stress-tests the budget: income and fixed expenses are shifted by
// the given percentages while goal contributions stay fixed. The contribution
// total is recovered from the three inputs rather than passed separately.
func Simulate(income, totalFixed, freeCash float64, in domain.SimulationInput) domain.SimulationResult {
	simIncome := income * (1 + in.IncomeChangePct/100)
	simExpenses := totalFixed * (1 + in.ExpenseChangePct/100)
	goals := income - totalFixed - freeCash
	simFreeCash := simIncome - simExpenses - goals

	return domain.SimulationResult{
		SimulatedIncome:   simIncome,
		SimulatedExpenses: simExpenses,
		SimulatedFreeCash: simFreeCash,
		Difference:        simFreeCash - freeCash,
	}
}
