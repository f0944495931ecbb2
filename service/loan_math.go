package service

import (
	"errors"
	"fmt"
	"math"
)

var errNegativeInput = errors.New("negative values are not allowed")

// roundToUnit rounds to the nearest whole currency unit.
func roundToUnit(value float64) float64 {
	return math.Round(value)
}

// Amortize computes the fixed monthly installment for a loan.
//
// Zero principal or zero term yields a zero installment. A zero rate splits
// the principal evenly across the term. Otherwise the standard amortization
// formula applies:
//
//	r = annualRatePercent / 12 / 100
//	installment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// The result is rounded to the nearest whole currency unit. Negative inputs
// are rejected rather than producing a NaN or negative installment.
func Amortize(principal, annualRatePercent float64, termMonths int) (float64, error) {
	if principal < 0 || annualRatePercent < 0 || termMonths < 0 {
		return 0, errNegativeInput
	}
	if principal > MaxLoanAmount {
		return 0, fmt.Errorf("principal exceeds the maximum of %.0f", MaxLoanAmount)
	}
	if annualRatePercent > MaxInterestRate {
		return 0, fmt.Errorf("rate exceeds the maximum of %.0f%%", MaxInterestRate)
	}
	if termMonths > MaxTermMonths {
		return 0, fmt.Errorf("term exceeds the maximum of %d months", MaxTermMonths)
	}
	if principal == 0 || termMonths == 0 {
		return 0, nil
	}
	if annualRatePercent == 0 {
		return roundToUnit(principal / float64(termMonths)), nil
	}

	rate := annualRatePercent / 12 / 100
	n := float64(termMonths)
	factor := math.Pow(1+rate, n)
	installment := principal * rate * factor / (factor - 1)
	return roundToUnit(installment), nil
}

// FutureValue projects compounded growth of a lump sum:
// FV = P * (1 + rate/100)^years, rounded to the nearest whole currency unit.
// Zero principal projects to zero. Negative inputs are rejected.
func FutureValue(principal, annualRatePercent, years float64) (float64, error) {
	if principal < 0 || annualRatePercent < 0 || years < 0 {
		return 0, errNegativeInput
	}
	if principal == 0 {
		return 0, nil
	}
	fv := principal * math.Pow(1+annualRatePercent/100, years)
	return roundToUnit(fv), nil
}
