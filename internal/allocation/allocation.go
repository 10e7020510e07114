// Package allocation recommends an age-banded mutual-fund split across
// market-cap categories and compares it against actual holdings.
package allocation

import (
	"github.com/fintrack/fintrack/internal/model"
)

// Split is a percentage allocation across the four tracked categories.
// A recommended split always sums to 100.
type Split map[model.FundCategory]float64

// DefaultAge is assumed when no personal details carry a usable age.
const DefaultAge = 30

var (
	splitUnder30 = Split{
		model.CategoryLargeCap: 20,
		model.CategoryMidCap:   30,
		model.CategorySmallCap: 20,
		model.CategoryFlexi:    30,
	}
	splitTo45 = Split{
		model.CategoryLargeCap: 30,
		model.CategoryMidCap:   20,
		model.CategorySmallCap: 20,
		model.CategoryFlexi:    30,
	}
	splitTo65 = Split{
		model.CategoryLargeCap: 40,
		model.CategoryMidCap:   20,
		model.CategorySmallCap: 10,
		model.CategoryFlexi:    30,
	}
	splitOver65 = Split{
		model.CategoryLargeCap: 60,
		model.CategoryMidCap:   20,
		model.CategorySmallCap: 0,
		model.CategoryFlexi:    20,
	}
)

// Recommended returns the target split for an investor age. Ages can be
// fractional; the first band is anything strictly under 30. Non-positive
// ages fall back to DefaultAge.
func Recommended(age float64) Split {
	if age <= 0 {
		age = DefaultAge
	}
	switch {
	case age < 30:
		return clone(splitUnder30)
	case age <= 45:
		return clone(splitTo45)
	case age <= 65:
		return clone(splitTo65)
	default:
		return clone(splitOver65)
	}
}

// ExcludeFlexi removes the Flexi/Multicap bucket from a split and
// redistributes its share equally across the remaining three categories,
// keeping the total at 100.
func ExcludeFlexi(s Split) Split {
	out := clone(s)
	share := out[model.CategoryFlexi] / 3
	delete(out, model.CategoryFlexi)
	for cat := range out {
		out[cat] += share
	}
	return out
}

func clone(s Split) Split {
	out := make(Split, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Actual computes the current percentage split of mutual-fund holdings
// across the tracked categories. Holdings bucketed as Other get no row of
// their own but still count toward the invested total, diluting every
// tracked percentage. Only the flexi exclusion shrinks the denominator:
// excluded flexi holdings leave both sides. Returns a zero split when
// nothing is invested.
func Actual(funds []model.Holding, excludeFlexi bool) Split {
	totals := Split{}
	var total float64
	for _, h := range funds {
		if excludeFlexi && h.Category == model.CategoryFlexi {
			continue
		}
		v := h.EffectiveValue()
		total += v
		switch h.Category {
		case model.CategoryLargeCap, model.CategoryMidCap,
			model.CategorySmallCap, model.CategoryFlexi:
			totals[h.Category] += v
		}
	}
	if total == 0 {
		return Split{}
	}
	for cat := range totals {
		totals[cat] = totals[cat] / total * 100
	}
	return totals
}
