package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack/internal/model"
)

func splitTotal(s Split) float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

// Every age band must sum to 100, with and without the flexi bucket.
func TestRecommendedSumsTo100(t *testing.T) {
	for _, age := range []float64{18, 25, 29, 30, 40, 45, 46, 60, 65, 66, 80} {
		s := Recommended(age)
		assert.InDelta(t, 100, splitTotal(s), 1e-9, "age %v", age)
		assert.InDelta(t, 100, splitTotal(ExcludeFlexi(s)), 1e-9, "age %v excl flexi", age)
	}
}

func TestRecommendedBands(t *testing.T) {
	assert.Equal(t, Split{
		model.CategoryLargeCap: 20,
		model.CategoryMidCap:   30,
		model.CategorySmallCap: 20,
		model.CategoryFlexi:    30,
	}, Recommended(25))

	assert.Equal(t, float64(30), Recommended(30)[model.CategoryLargeCap])
	assert.Equal(t, float64(40), Recommended(50)[model.CategoryLargeCap])
	assert.Equal(t, float64(60), Recommended(70)[model.CategoryLargeCap])
	assert.Equal(t, float64(0), Recommended(70)[model.CategorySmallCap])

	// No usable age falls back to the 30-45 band.
	assert.Equal(t, Recommended(DefaultAge), Recommended(0))
	assert.Equal(t, Recommended(DefaultAge), Recommended(-5))
}

// Ages arrive through amount parsing and can be fractional; anything
// strictly under 30 belongs to the youngest band.
func TestRecommendedFractionalAges(t *testing.T) {
	assert.Equal(t, Recommended(25), Recommended(29.5))
	assert.Equal(t, Recommended(40), Recommended(45.0))
	assert.Equal(t, Recommended(50), Recommended(45.5))
	assert.Equal(t, Recommended(50), Recommended(65.0))
	assert.Equal(t, Recommended(70), Recommended(65.5))
}

func TestExcludeFlexiRedistributesEqually(t *testing.T) {
	s := ExcludeFlexi(Recommended(25)) // flexi 30 -> +10 each
	require.NotContains(t, s, model.CategoryFlexi)
	assert.Equal(t, float64(30), s[model.CategoryLargeCap])
	assert.Equal(t, float64(40), s[model.CategoryMidCap])
	assert.Equal(t, float64(30), s[model.CategorySmallCap])
}

func mf(id string, cat model.FundCategory, amount float64) model.Holding {
	return model.Holding{ID: id, Class: model.ClassMutualFund, Category: cat, Amount: amount}
}

func TestActual(t *testing.T) {
	funds := []model.Holding{
		mf("a", model.CategoryLargeCap, 6000),
		mf("b", model.CategoryMidCap, 3000),
		mf("c", model.CategoryFlexi, 1000),
	}

	got := Actual(funds, false)
	assert.Equal(t, float64(60), got[model.CategoryLargeCap])
	assert.Equal(t, float64(30), got[model.CategoryMidCap])
	assert.Equal(t, float64(10), got[model.CategoryFlexi])

	// Excluding flexi shrinks the denominator too.
	got = Actual(funds, true)
	assert.InDelta(t, 66.67, got[model.CategoryLargeCap], 0.01)
	assert.InDelta(t, 33.33, got[model.CategoryMidCap], 0.01)
	assert.NotContains(t, got, model.CategoryFlexi)
}

// Uncategorized funds get no row but stay in the invested total, so they
// dilute every tracked percentage instead of inflating them.
func TestActualOtherCountsInDenominator(t *testing.T) {
	funds := []model.Holding{
		mf("a", model.CategoryLargeCap, 5000),
		mf("b", model.CategoryOther, 5000),
	}

	got := Actual(funds, false)
	assert.Equal(t, float64(50), got[model.CategoryLargeCap])
	assert.NotContains(t, got, model.CategoryOther)

	// Only the flexi exclusion shrinks the denominator; Other remains.
	funds = append(funds, mf("c", model.CategoryFlexi, 2000))
	got = Actual(funds, true)
	assert.Equal(t, float64(50), got[model.CategoryLargeCap])
	assert.NotContains(t, got, model.CategoryFlexi)
}

func TestActualEmpty(t *testing.T) {
	assert.Empty(t, Actual(nil, false))
	assert.Empty(t, Actual([]model.Holding{mf("a", model.CategoryLargeCap, 0)}, false))
}

func TestCompareStatuses(t *testing.T) {
	funds := []model.Holding{
		mf("a", model.CategoryLargeCap, 2000), // 20% = recommended for age 25
		mf("b", model.CategoryMidCap, 5000),   // 50% vs 30 -> over by 20
		mf("c", model.CategorySmallCap, 1000), // 10% vs 20 -> under by 10
		mf("d", model.CategoryFlexi, 2000),    // 20% vs 30 -> under by 10
	}

	got := Compare(25, funds, false)
	require.Len(t, got, 4)

	byCat := map[model.FundCategory]Comparison{}
	for _, c := range got {
		byCat[c.Category] = c
	}
	assert.Equal(t, "perfect", byCat[model.CategoryLargeCap].Status)
	assert.Equal(t, "over by 20%", byCat[model.CategoryMidCap].Status)
	assert.Equal(t, "under by 10%", byCat[model.CategorySmallCap].Status)
	assert.Equal(t, "under by 10%", byCat[model.CategoryFlexi].Status)
}

func TestCompareExcludeFlexiDropsBucket(t *testing.T) {
	funds := []model.Holding{
		mf("a", model.CategoryLargeCap, 3000),
		mf("b", model.CategoryFlexi, 7000),
	}
	got := Compare(25, funds, true)
	require.Len(t, got, 3)
	for _, c := range got {
		assert.NotEqual(t, model.CategoryFlexi, c.Category)
	}
	// Only large cap remains in the actual split, so it is 100%.
	assert.Equal(t, float64(100), got[0].Actual)
}

func TestWhatIfDoesNotMutateInput(t *testing.T) {
	funds := []model.Holding{
		mf("a", model.CategoryLargeCap, 5000),
		mf("b", model.CategoryMidCap, 5000),
	}

	got := WhatIf(25, funds, "a", 2*AdjustStep, false)
	require.Len(t, got, 4)

	byCat := map[model.FundCategory]Comparison{}
	for _, c := range got {
		byCat[c.Category] = c
	}
	assert.InDelta(t, 54.55, byCat[model.CategoryLargeCap].Actual, 0.01)

	// Original slice untouched.
	assert.Equal(t, float64(5000), funds[0].Amount)
}

func TestWhatIfFloorsAtZero(t *testing.T) {
	funds := []model.Holding{
		mf("a", model.CategoryLargeCap, 200),
		mf("b", model.CategoryMidCap, 800),
	}
	got := WhatIf(25, funds, "a", -AdjustStep, false)
	byCat := map[model.FundCategory]Comparison{}
	for _, c := range got {
		byCat[c.Category] = c
	}
	assert.Zero(t, byCat[model.CategoryLargeCap].Actual)
	assert.Equal(t, float64(100), byCat[model.CategoryMidCap].Actual)
}
