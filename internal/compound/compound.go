// Package compound holds the deterministic FD/RD/SIP/FIRE projections.
// These must match standard financial formulas exactly: users cross-check
// the figures against bank calculators. Every function validates its
// inputs and reports ok=false instead of emitting NaN-polluted series.
package compound

import (
	"fmt"
	"math"
)

// Compounding frequency for fixed deposits.
type Compounding int

const (
	Yearly    Compounding = 1
	Quarterly Compounding = 4
	Monthly   Compounding = 12
)

// Point is one sample of a projection series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// FDResult is a fixed-deposit projection.
type FDResult struct {
	Maturity float64 `json:"maturity"`
	Invested float64 `json:"invested"`
	Returns  float64 `json:"returns"`
	Series   []Point `json:"series"`
}

// RDResult is a recurring-deposit projection.
type RDResult struct {
	Maturity float64 `json:"maturity"`
	Invested float64 `json:"invested"`
	Returns  float64 `json:"returns"`
	Series   []Point `json:"series"`
}

// SIPResult is a systematic-investment-plan projection.
type SIPResult struct {
	Maturity float64 `json:"maturity"`
	Invested float64 `json:"invested"`
	Returns  float64 `json:"returns"`
	Series   []Point `json:"series"`
}

// FIREResult is the lean financial-independence estimate.
type FIREResult struct {
	FutureMonthlyExpense float64 `json:"futureMonthlyExpense"`
	FutureAnnualExpense  float64 `json:"futureAnnualExpense"`
	Corpus               float64 `json:"corpus"`
	YearsToTarget        float64 `json:"yearsToTarget"`
}

func usable(values ...float64) bool {
	for _, v := range values {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FD computes fixed-deposit maturity: P x (1 + r/n)^(n x t). The series
// samples monthly for tenures up to a year, yearly beyond that.
func FD(principal, annualRatePct, years float64, freq Compounding) (FDResult, bool) {
	if !usable(principal, annualRatePct, years) {
		return FDResult{}, false
	}
	switch freq {
	case Yearly, Quarterly, Monthly:
	default:
		return FDResult{}, false
	}

	n := float64(freq)
	rate := annualRatePct / 100
	value := func(t float64) float64 {
		return principal * math.Pow(1+rate/n, n*t)
	}

	res := FDResult{
		Maturity: value(years),
		Invested: principal,
	}
	res.Returns = res.Maturity - res.Invested

	if years <= 1 {
		months := int(math.Round(years * 12))
		for m := 1; m <= months; m++ {
			res.Series = append(res.Series, Point{
				Label: fmt.Sprintf("Month %d", m),
				Value: value(float64(m) / 12),
			})
		}
	} else {
		last := int(math.Ceil(years))
		for y := 1; y <= last; y++ {
			t := math.Min(float64(y), years)
			res.Series = append(res.Series, Point{
				Label: fmt.Sprintf("Year %d", y),
				Value: value(t),
			})
		}
	}
	return res, true
}

// RD computes the quarterly-compounded recurring-deposit maturity:
//
//	M = R x ((1+i)^q - 1) / (1 - (1+i)^(-1/3))
//
// with i the quarterly rate and q the number of quarters. The monthly
// series applies the same formula truncated to elapsed quarters, so the
// curve steps up at quarter boundaries exactly as the bank credits.
func RD(monthly, annualRatePct, years float64) (RDResult, bool) {
	if !usable(monthly, annualRatePct, years) {
		return RDResult{}, false
	}

	i := annualRatePct / 100 / 4
	value := func(quarters float64) float64 {
		if quarters <= 0 {
			return 0
		}
		return monthly * (math.Pow(1+i, quarters) - 1) / (1 - math.Pow(1+i, -1.0/3))
	}

	months := int(math.Round(years * 12))
	res := RDResult{
		Maturity: value(years * 4),
		Invested: monthly * float64(months),
	}
	res.Returns = res.Maturity - res.Invested

	for m := 1; m <= months; m++ {
		res.Series = append(res.Series, Point{
			Label: fmt.Sprintf("Month %d", m),
			Value: value(math.Floor(float64(m) / 3)),
		})
	}
	return res, true
}

// SIP computes systematic-investment maturity at the effective monthly
// rate (1+r)^(1/12) - 1. stepUpPct raises the contribution at each
// 12-month anniversary; pass 0 for a flat SIP. Each month's balance is
// credited once more at month end, which matches the published formula
// sum(c_m x (1+i)^(months-m)) x (1+i).
func SIP(monthly, annualRatePct, years, stepUpPct float64) (SIPResult, bool) {
	if !usable(monthly, annualRatePct, years) {
		return SIPResult{}, false
	}
	if stepUpPct < 0 || math.IsNaN(stepUpPct) || math.IsInf(stepUpPct, 0) {
		return SIPResult{}, false
	}

	i := math.Pow(1+annualRatePct/100, 1.0/12) - 1
	months := int(math.Round(years * 12))
	if months == 0 {
		return SIPResult{}, false
	}

	var res SIPResult
	var balance float64
	for m := 0; m < months; m++ {
		contribution := monthly * math.Pow(1+stepUpPct/100, float64(m/12))
		balance = (balance + contribution) * (1 + i)
		res.Invested += contribution
		if (m+1)%12 == 0 || m == months-1 {
			res.Series = append(res.Series, Point{
				Label: fmt.Sprintf("Year %d", m/12+1),
				Value: balance,
			})
		}
	}
	res.Maturity = balance
	res.Returns = res.Maturity - res.Invested
	return res, true
}

// FIRE inflates current monthly expenses to the target age and applies the
// 4% rule (25x annual expenses) to size the required corpus.
func FIRE(monthlyExpense, inflationPct, currentAge, targetAge float64) (FIREResult, bool) {
	if !usable(monthlyExpense, inflationPct, currentAge, targetAge) {
		return FIREResult{}, false
	}
	years := targetAge - currentAge
	if years <= 0 {
		return FIREResult{}, false
	}

	futureMonthly := monthlyExpense * math.Pow(1+inflationPct/100, years)
	res := FIREResult{
		FutureMonthlyExpense: futureMonthly,
		FutureAnnualExpense:  futureMonthly * 12,
		Corpus:               futureMonthly * 12 * 25,
		YearsToTarget:        years,
	}
	return res, true
}
