package analytics

import (
	"math"

	"github.com/Rhymond/go-money"

	"github.com/fintrack/fintrack/internal/model"
)

// Alert severity levels, in ascending order of urgency.
const (
	LevelGood    = "good"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// Health status bands derived from the score.
const (
	StatusPoor     = "poor"
	StatusModerate = "moderate"
	StatusStrong   = "strong"
)

// Alert is a single advisory derived from a snapshot. Multiple alerts can
// fire at once; the score band always contributes exactly one.
type Alert struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// clampTerm bounds a weighted term so one extreme ratio cannot dominate or
// invert the score. Terms are capped at their coefficient before summation.
func clampTerm(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

// HealthScore computes the composite 0-100 score:
//
//	40 x (assets - expense) / assets  (asset coverage of spending)
//	+ 0.25 x goal completion %        (progress toward stated goals)
//	+ 15 x investments / assets       (how much of the base is working)
//	- 20 x loans / assets             (debt load penalty)
//	-  5 x premium / assets           (insurance load penalty)
//
// Each term is pre-clamped to its coefficient; the sum is clamped to
// [0, 100]. Denominators floor at 1 so an empty ledger scores 0, not NaN.
func HealthScore(s model.FinanceSnapshot) float64 {
	base := math.Max(s.TotalAssets, 1)

	score := clampTerm(40*(s.TotalAssets-s.TotalExpense)/base, 40)
	score += clampTerm(0.25*s.GoalCompletionPercent, 25)
	score += clampTerm(15*s.TotalInvestments/base, 15)
	score -= clampTerm(20*s.TotalLoanRemaining/base, 20)
	score -= clampTerm(5*s.TotalPremium/base, 5)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// HealthStatus maps a score onto its band.
func HealthStatus(score float64) string {
	switch {
	case score < 30:
		return StatusPoor
	case score < 60:
		return StatusModerate
	default:
		return StatusStrong
	}
}

// Alerts derives the advisory list for a snapshot: one banding alert from
// the score, plus independent goal-progress and debt-load conditions.
func Alerts(s model.FinanceSnapshot) []Alert {
	var out []Alert

	switch HealthStatus(s.HealthScore) {
	case StatusPoor:
		out = append(out, Alert{LevelDanger,
			"Financial health is poor. Expenses and liabilities are outweighing your assets."})
	case StatusModerate:
		out = append(out, Alert{LevelWarning,
			"Financial health is moderate. Review discretionary spending and outstanding debt."})
	default:
		out = append(out, Alert{LevelGood,
			"Financial health is strong. Keep up the current savings discipline."})
	}

	if s.GoalCompletionPercent < 50 {
		out = append(out, Alert{LevelWarning,
			"Goal completion is below 50%. Consider stepping up monthly contributions."})
	}
	if s.TotalLoanRemaining > 0.5*s.TotalAssets {
		out = append(out, Alert{LevelDanger,
			"Outstanding loans exceed half of your total assets."})
	}
	return out
}

// FormatINR renders an amount as Indian rupees for reports and alerts.
// Amounts are stored as plain floats; formatting is display-only.
func FormatINR(amount float64) string {
	return money.New(int64(math.Round(amount*100)), money.INR).Display()
}

// BuildSnapshot aggregates every canonical record into the derived view.
// The snapshot is recomputed on demand and never persisted as
// authoritative data.
func BuildSnapshot(
	finance *model.FinanceRecord,
	assets []model.Asset,
	investments *model.InvestmentRecord,
	loans []model.Loan,
	policies []model.InsurancePolicy,
	goals *model.GoalsRecord,
) model.FinanceSnapshot {
	s := model.FinanceSnapshot{
		TotalIncome:           finance.TotalIncome,
		TotalExpense:          TotalExpense(finance),
		TotalAssets:           TotalAssets(assets),
		TotalInvestments:      TotalInvestments(investments),
		TotalLoanRemaining:    TotalLoanRemaining(loans),
		TotalPremium:          TotalPremium(policies),
		GoalCompletionPercent: GoalCompletionPercent(goals.All()),
	}
	s.Savings = s.TotalIncome - s.TotalExpense
	s.HealthScore = HealthScore(s)
	return s
}
