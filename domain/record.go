package domain

import (
	"bytes"
	"strconv"
)

// Amount is a float64 that tolerates the loose values browser clients send:
// JSON numbers, quoted numbers, empty strings and null all decode without
// error. Anything non-numeric coerces to zero. Every monetary field in the
// record types uses it so the permissive policy lives in exactly one place.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			*a = 0
			return nil
		}
		data = []byte(unquoted)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// Value returns the coerced float, with 0 standing in for anything
// that was missing or malformed.
func (a Amount) Value() float64 { return float64(a) }

type ExpenseType string

const (
	ExpenseBill ExpenseType = "Bill"
	ExpenseLoan ExpenseType = "Loan"
)

type AssetType string

const (
	AssetInvestment AssetType = "Investment"
	AssetCash       AssetType = "Cash"
	AssetProperty   AssetType = "Property"
	AssetGold       AssetType = "Gold"
)

// Liquid reports whether assets of this type count toward the emergency
// runway. Property and gold are treated as illiquid.
func (t AssetType) Liquid() bool {
	return t == AssetCash || t == AssetInvestment
}

// Expense is a recurring monthly outflow. For Loan expenses, Amount is the
// installment derived from Principal/Rate/TenureMonths and is recomputed
// whenever those terms are set.
type Expense struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Amount       Amount      `json:"amount"`
	Type         ExpenseType `json:"type"`
	Principal    Amount      `json:"principal,omitempty"`
	Rate         Amount      `json:"rate,omitempty"`
	TenureMonths int         `json:"tenureMonths,omitempty"`
}

// Goal is a recurring savings commitment. CurrentProgress is carried for the
// client but never mutated here.
type Goal struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	TargetAmount        Amount `json:"targetAmount,omitempty"`
	MonthlyContribution Amount `json:"monthlyContribution"`
	CurrentProgress     Amount `json:"currentProgress"`
}

type Asset struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Value Amount    `json:"value"`
	Type  AssetType `json:"type"`
}

// WishlistItem is a planned purchase. Financed items carry a monthly
// installment in CalculatedMonthly; cash items hit the budget once with Cost.
type WishlistItem struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Cost              Amount `json:"cost"`
	IsFinanced        bool   `json:"isFinanced"`
	FinanceTermMonths int    `json:"financeTermMonths,omitempty"`
	FinanceRate       Amount `json:"financeRate,omitempty"`
	CalculatedMonthly Amount `json:"calculatedMonthly,omitempty"`
}
