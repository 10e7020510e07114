// Package analytics computes derived figures over canonical records. Every
// function here is pure: no I/O, no clock, records in, numbers out.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack/internal/model"
)

// Sum totals a NamedAmount list. Summation runs over decimals so a long
// list of parsed currency strings does not accumulate float drift.
func Sum(records []model.NamedAmount) float64 {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(decimal.NewFromFloat(r.Amount))
	}
	return total.InexactFloat64()
}

// TotalExpense sums every expense group of the finance record: essential,
// discretionary, debts, education, family, insurance, miscellaneous,
// investments-as-expense and the generic expenses list.
func TotalExpense(f *model.FinanceRecord) float64 {
	total := decimal.Zero
	for _, group := range f.ExpenseGroups() {
		total = total.Add(decimal.NewFromFloat(Sum(group)))
	}
	return total.InexactFloat64()
}

// TotalAssets sums asset values.
func TotalAssets(assets []model.Asset) float64 {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(decimal.NewFromFloat(a.Value))
	}
	return total.InexactFloat64()
}

// TotalInvestments sums effective values across every holding class.
func TotalInvestments(inv *model.InvestmentRecord) float64 {
	total := decimal.Zero
	for _, h := range inv.All() {
		total = total.Add(decimal.NewFromFloat(h.EffectiveValue()))
	}
	return total.InexactFloat64()
}

// TotalLoanRemaining sums outstanding principal; overpaid loans count as
// zero, never negative.
func TotalLoanRemaining(loans []model.Loan) float64 {
	total := decimal.Zero
	for _, l := range loans {
		total = total.Add(decimal.NewFromFloat(l.Remaining()))
	}
	return total.InexactFloat64()
}

// TotalPremium sums insurance premiums.
func TotalPremium(policies []model.InsurancePolicy) float64 {
	total := decimal.Zero
	for _, p := range policies {
		total = total.Add(decimal.NewFromFloat(p.Premium))
	}
	return total.InexactFloat64()
}

// GoalCompletionPercent averages per-goal completion over goals with a
// positive target; each goal caps at 100%, so overshooting a target never
// inflates the average. Returns 0 when no goal has a usable target.
func GoalCompletionPercent(goals []model.Goal) float64 {
	var sum float64
	var counted int
	for _, g := range goals {
		if g.TargetAmount <= 0 {
			continue
		}
		pct := g.CurrentSavings / g.TargetAmount * 100
		if pct > 100 {
			pct = 100
		}
		sum += pct
		counted++
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// BudgetUtilizationPercent is spending against the monthly budget, or
// against income when no budget is set, capped at 100 for display.
func BudgetUtilizationPercent(acct *model.Account, totalExpense float64) float64 {
	base := acct.Budget
	if base <= 0 {
		base = acct.TotalIncome
	}
	if base <= 0 {
		base = 1
	}
	pct := totalExpense / base * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}
