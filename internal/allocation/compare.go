package allocation

import (
	"fmt"
	"math"

	"github.com/fintrack/fintrack/internal/model"
)

// Comparison is the per-category verdict against the recommended split.
type Comparison struct {
	Category    model.FundCategory `json:"category"`
	Recommended float64            `json:"recommended"`
	Actual      float64            `json:"actual"`
	Status      string             `json:"status"`
}

// compareOrder keeps report output stable.
var compareOrder = []model.FundCategory{
	model.CategoryLargeCap,
	model.CategoryMidCap,
	model.CategorySmallCap,
	model.CategoryFlexi,
}

// Compare evaluates actual mutual-fund allocation against the age-derived
// recommendation. With excludeFlexi the flexi share is redistributed across
// the remaining categories and flexi holdings drop out of the actual split.
func Compare(age float64, funds []model.Holding, excludeFlexi bool) []Comparison {
	rec := Recommended(age)
	if excludeFlexi {
		rec = ExcludeFlexi(rec)
	}
	actual := Actual(funds, excludeFlexi)

	var out []Comparison
	for _, cat := range compareOrder {
		recPct, ok := rec[cat]
		if !ok {
			continue
		}
		out = append(out, Comparison{
			Category:    cat,
			Recommended: recPct,
			Actual:      actual[cat],
			Status:      status(actual[cat], recPct),
		})
	}
	return out
}

func status(actual, recommended float64) string {
	diff := actual - recommended
	switch {
	case diff > 0:
		return fmt.Sprintf("over by %s%%", trimPct(diff))
	case diff < 0:
		return fmt.Sprintf("under by %s%%", trimPct(-diff))
	default:
		return "perfect"
	}
}

func trimPct(v float64) string {
	rounded := math.Round(v*10) / 10
	return fmt.Sprintf("%g", rounded)
}

// Adjustment step used by the what-if optimizer.
const AdjustStep = 500

// WhatIf recomputes the comparison after hypothetically bumping one
// holding's amount by delta (typically a multiple of AdjustStep). The
// input slice is not modified and nothing is persisted; the caller saves
// the underlying investment record explicitly if the change should stick.
func WhatIf(age float64, funds []model.Holding, holdingID string, delta float64, excludeFlexi bool) []Comparison {
	adjusted := make([]model.Holding, len(funds))
	copy(adjusted, funds)
	for i := range adjusted {
		if adjusted[i].ID != holdingID {
			continue
		}
		if next := adjusted[i].Amount + delta; next >= 0 {
			adjusted[i].Amount = next
		} else {
			adjusted[i].Amount = 0
		}
		break
	}
	return Compare(age, adjusted, excludeFlexi)
}
