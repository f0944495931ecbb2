package service

import "budgetwise/domain"

// Snapshot reduces the current budget state into every derived total the
// dashboard needs. It is a pure function: missing or malformed numeric fields
// already coerced to zero by domain.Amount simply contribute nothing, and the
// ratio denominators are floored at 1 so a zero income or zero outflow yields
// a large-but-finite number instead of a division fault.
func Snapshot(state domain.BudgetState) domain.FinancialSnapshot {
	var s domain.FinancialSnapshot

	for _, e := range state.Expenses {
		s.TotalFixedOutflow += e.Amount.Value()
		if e.Type == domain.ExpenseLoan {
			s.TotalLoanInstallment += e.Amount.Value()
			s.TotalLoanPrincipal += e.Principal.Value()
		}
	}
	s.TotalLiabilities = s.TotalLoanPrincipal

	for _, g := range state.Goals {
		s.TotalGoalContribution += g.MonthlyContribution.Value()
	}

	income := state.Income.Value()
	s.MonthlySurplus = income - s.TotalFixedOutflow
	s.FreeCash = s.MonthlySurplus - s.TotalGoalContribution

	for _, a := range state.Assets {
		s.TotalAssets += a.Value.Value()
		if a.Type.Liquid() {
			s.LiquidAssets += a.Value.Value()
		}
	}
	s.NetWorth = s.TotalAssets - s.TotalLiabilities

	s.EmergencyRunwayMonths = s.LiquidAssets / floorOne(s.TotalFixedOutflow)
	s.DebtToIncomeRatio = s.TotalLoanInstallment / floorOne(income) * 100

	for _, w := range state.Wishlist {
		if w.IsFinanced {
			s.WishlistMonthlyImpact += w.CalculatedMonthly.Value()
		}
	}
	s.PostPurchaseFreeCash = s.FreeCash - s.WishlistMonthlyImpact

	s.RunwayStatus = domain.ClassifyRunway(s.EmergencyRunwayMonths)
	s.DebtRatioElevated = s.DebtToIncomeRatio > domain.ElevatedDebtToIncomePct

	return s
}

func floorOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
