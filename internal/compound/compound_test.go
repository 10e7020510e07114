package compound

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFD(t *testing.T) {
	t.Run("yearly compounding matches the textbook figure", func(t *testing.T) {
		res, ok := FD(100000, 8, 1, Yearly)
		require.True(t, ok)
		assert.InDelta(t, 108000, res.Maturity, 0.01)
		assert.InDelta(t, 8000, res.Returns, 0.01)
		assert.Equal(t, float64(100000), res.Invested)
	})

	t.Run("monthly compounding beats yearly", func(t *testing.T) {
		yearly, ok := FD(100000, 8, 5, Yearly)
		require.True(t, ok)
		monthly, ok := FD(100000, 8, 5, Monthly)
		require.True(t, ok)
		assert.Greater(t, monthly.Maturity, yearly.Maturity)
	})

	t.Run("short tenure samples monthly", func(t *testing.T) {
		res, ok := FD(50000, 6, 0.5, Quarterly)
		require.True(t, ok)
		require.Len(t, res.Series, 6)
		assert.Equal(t, "Month 1", res.Series[0].Label)
		assert.InDelta(t, res.Maturity, res.Series[5].Value, 0.01)
	})

	t.Run("long tenure samples yearly", func(t *testing.T) {
		res, ok := FD(50000, 6, 3, Yearly)
		require.True(t, ok)
		require.Len(t, res.Series, 3)
		assert.Equal(t, "Year 1", res.Series[0].Label)
		assert.Equal(t, "Year 3", res.Series[2].Label)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, tc := range []struct {
			name                  string
			p, rate, years        float64
			freq                  Compounding
		}{
			{"zero principal", 0, 8, 1, Yearly},
			{"zero rate", 1000, 0, 1, Yearly},
			{"zero tenure", 1000, 8, 0, Yearly},
			{"NaN principal", math.NaN(), 8, 1, Yearly},
			{"infinite rate", 1000, math.Inf(1), 1, Yearly},
			{"bogus frequency", 1000, 8, 1, Compounding(7)},
		} {
			_, ok := FD(tc.p, tc.rate, tc.years, tc.freq)
			assert.False(t, ok, tc.name)
		}
	})
}

func TestRD(t *testing.T) {
	t.Run("maturity exceeds total deposits", func(t *testing.T) {
		res, ok := RD(5000, 7, 2)
		require.True(t, ok)
		assert.Equal(t, float64(120000), res.Invested)
		assert.Greater(t, res.Maturity, res.Invested)
		assert.InDelta(t, res.Maturity-res.Invested, res.Returns, 0.01)
	})

	t.Run("series steps at quarter boundaries", func(t *testing.T) {
		res, ok := RD(1000, 8, 1)
		require.True(t, ok)
		require.Len(t, res.Series, 12)
		// First two months have no completed quarter.
		assert.Zero(t, res.Series[0].Value)
		assert.Zero(t, res.Series[1].Value)
		assert.Greater(t, res.Series[2].Value, float64(0))
		assert.Equal(t, res.Series[2].Value, res.Series[3].Value)
		assert.InDelta(t, res.Maturity, res.Series[11].Value, 0.01)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, ok := RD(0, 7, 2)
		assert.False(t, ok)
		_, ok = RD(5000, 7, 0)
		assert.False(t, ok)
		_, ok = RD(5000, math.NaN(), 2)
		assert.False(t, ok)
	})
}

func TestSIP(t *testing.T) {
	t.Run("flat SIP grows past invested", func(t *testing.T) {
		res, ok := SIP(10000, 12, 10, 0)
		require.True(t, ok)
		assert.Equal(t, float64(1200000), res.Invested)
		assert.Greater(t, res.Maturity, res.Invested)
		require.Len(t, res.Series, 10)
		assert.Equal(t, "Year 10", res.Series[9].Label)
		assert.InDelta(t, res.Maturity, res.Series[9].Value, 0.01)
	})

	t.Run("one-year flat SIP matches the closed form", func(t *testing.T) {
		res, ok := SIP(1000, 12, 1, 0)
		require.True(t, ok)

		i := math.Pow(1.12, 1.0/12) - 1
		var want float64
		for m := 1; m <= 12; m++ {
			want += 1000 * math.Pow(1+i, float64(12-m))
		}
		want *= 1 + i
		assert.InDelta(t, want, res.Maturity, 0.01)
	})

	t.Run("step-up raises contributions each anniversary", func(t *testing.T) {
		flat, ok := SIP(10000, 12, 3, 0)
		require.True(t, ok)
		stepped, ok := SIP(10000, 12, 3, 10)
		require.True(t, ok)

		assert.Greater(t, stepped.Invested, flat.Invested)
		assert.Greater(t, stepped.Maturity, flat.Maturity)
		// Year 1 contributions are identical under both modes.
		expectedYear2 := 10000 * 1.1 * 12
		assert.InDelta(t, float64(120000)+expectedYear2+10000*1.21*12, stepped.Invested, 0.01)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, ok := SIP(0, 12, 10, 0)
		assert.False(t, ok)
		_, ok = SIP(10000, 12, 0, 0)
		assert.False(t, ok)
		_, ok = SIP(10000, 12, 10, -5)
		assert.False(t, ok)
		_, ok = SIP(10000, math.Inf(1), 10, 0)
		assert.False(t, ok)
	})
}

func TestFIRE(t *testing.T) {
	t.Run("corpus is 25x the inflated annual expense", func(t *testing.T) {
		res, ok := FIRE(50000, 6, 30, 45)
		require.True(t, ok)

		futureMonthly := 50000 * math.Pow(1.06, 15)
		assert.InDelta(t, futureMonthly, res.FutureMonthlyExpense, 0.01)
		assert.InDelta(t, futureMonthly*12, res.FutureAnnualExpense, 0.01)
		assert.InDelta(t, futureMonthly*12*25, res.Corpus, 0.01)
		assert.Equal(t, float64(15), res.YearsToTarget)
	})

	t.Run("target age must exceed current age", func(t *testing.T) {
		_, ok := FIRE(50000, 6, 45, 45)
		assert.False(t, ok)
		_, ok = FIRE(50000, 6, 50, 45)
		assert.False(t, ok)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, ok := FIRE(0, 6, 30, 45)
		assert.False(t, ok)
		_, ok = FIRE(50000, 0, 30, 45)
		assert.False(t, ok)
		_, ok = FIRE(math.NaN(), 6, 30, 45)
		assert.False(t, ok)
	})
}
