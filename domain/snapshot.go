package domain

// BudgetState is the full user-editable state: scalar income, the four record
// collections and the selected advisory model. It is what the store persists
// and what every calculation starts from.
type BudgetState struct {
	Income    Amount         `json:"income"`
	Expenses  []Expense      `json:"expenses"`
	Goals     []Goal         `json:"goals"`
	Assets    []Asset        `json:"assets"`
	Wishlist  []WishlistItem `json:"wishlist"`
	ModelName string         `json:"modelName"`
}

type RunwayStatus string

const (
	RunwaySafe    RunwayStatus = "safe"    // >= 6 months of liquid cover
	RunwayCaution RunwayStatus = "caution" // [3, 6)
	RunwayRisky   RunwayStatus = "risky"   // < 3
)

const (
	RunwaySafeMonths  = 6.0
	RunwayRiskyMonths = 3.0

	// DTI above this percentage is flagged as elevated.
	ElevatedDebtToIncomePct = 30.0
)

// FinancialSnapshot holds every derived total the dashboard shows. It is
// recomputed from BudgetState on every read and never stored.
type FinancialSnapshot struct {
	TotalFixedOutflow     float64 `json:"totalFixedOutflow"`
	TotalLoanInstallment  float64 `json:"totalLoanInstallment"`
	TotalLoanPrincipal    float64 `json:"totalLoanPrincipal"`
	TotalLiabilities      float64 `json:"totalLiabilities"`
	TotalGoalContribution float64 `json:"totalGoalContribution"`
	MonthlySurplus        float64 `json:"monthlySurplus"`
	FreeCash              float64 `json:"freeCash"`
	TotalAssets           float64 `json:"totalAssets"`
	NetWorth              float64 `json:"netWorth"`
	LiquidAssets          float64 `json:"liquidAssets"`
	EmergencyRunwayMonths float64 `json:"emergencyRunwayMonths"`
	DebtToIncomeRatio     float64 `json:"debtToIncomeRatio"`
	WishlistMonthlyImpact float64 `json:"wishlistMonthlyImpact"`
	PostPurchaseFreeCash  float64 `json:"postPurchaseFreeCash"`

	RunwayStatus      RunwayStatus `json:"runwayStatus"`
	DebtRatioElevated bool         `json:"debtRatioElevated"`
}

// ClassifyRunway maps runway months to the three-state health label.
// Exactly 3.0 is caution, not risky.
func ClassifyRunway(months float64) RunwayStatus {
	switch {
	case months < RunwayRiskyMonths:
		return RunwayRisky
	case months >= RunwaySafeMonths:
		return RunwaySafe
	default:
		return RunwayCaution
	}
}
