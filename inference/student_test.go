package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gostaty/stats"
)

// t quantiles are compared against table values.
const tTolerance = 1e-6

func TestTInterval(t *testing.T) {
	ci, err := TInterval([]float64{2, 4, 6, 8}, 0.95)
	require.NoError(t, err)

	assert.InDelta(t, 0.891479486478242, ci.Lower, tTolerance)
	assert.InDelta(t, 9.108520513521757, ci.Upper, tTolerance)
	assert.Equal(t, 5.0, ci.Center)

	// t critical values are wider than z at small n.
	z, err := ZInterval([]float64{2, 4, 6, 8}, 0.95)
	require.NoError(t, err)
	assert.Greater(t, ci.Width(), z.Width())

	_, err = TInterval([]float64{2}, 0.95)
	assert.ErrorIs(t, err, stats.ErrDomain)
	_, err = TInterval([]float64{2, 3}, -0.1)
	assert.ErrorIs(t, err, stats.ErrDomain)
}

func TestTIntervalEqualVar(t *testing.T) {
	ci, err := TIntervalEqualVar([]float64{2, 4, 6, 8}, []float64{3, 5, 7, 9}, 0.95)
	require.NoError(t, err)

	assert.InDelta(t, -5.467429386032912, ci.Lower, tTolerance)
	assert.InDelta(t, 3.4674293860329124, ci.Upper, tTolerance)
	assert.Equal(t, -1.0, ci.Center)

	_, err = TIntervalEqualVar([]float64{2}, []float64{2}, 0.95)
	assert.ErrorIs(t, err, stats.ErrDomain)
}

func TestTTest(t *testing.T) {
	data := []float64{2, 4, 6, 8}

	tests := []struct {
		name          string
		expected      float64
		twoTailed     bool
		direction     Direction
		reject        bool
		statistic     float64
		criticalValue float64
	}{
		{"two-tailed keep", 2, true, Equal, false, 2.32379000772445, 3.182446305284263},
		{"two-tailed reject", 0, true, Equal, true, 3.872983346207417, 3.182446305284263},
		{"greater keep", 2, false, Greater, false, 2.32379000772445, 2.353363434801823},
		{"greater reject", 1, false, Greater, true, 3.0983866769659336, 2.353363434801823},
		{"less reject", 9, false, Less, true, -3.0983866769659336, -2.353363434801823},
		{"less keep", 5, false, Less, false, 0, -2.353363434801823},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := TTest(data, tt.expected, tt.twoTailed, 0.05, tt.direction)
			require.NoError(t, err)

			assert.Equal(t, tt.reject, res.RejectNull)
			assert.InDelta(t, tt.statistic, res.Statistic, tolerance)
			assert.InDelta(t, tt.criticalValue, res.CriticalValue, tTolerance)
			assert.Equal(t, 3.0, res.DF)
			assert.Equal(t, tt.reject, res.PValue < 0.05)
		})
	}
}

func TestTTestPValues(t *testing.T) {
	data := []float64{2, 4, 6, 8}

	two, err := TTest(data, 2, true, 0.05, Equal)
	require.NoError(t, err)
	assert.InDelta(t, 0.1027280788584024, two.PValue, tTolerance)

	greater, err := TTest(data, 2, false, 0.05, Greater)
	require.NoError(t, err)
	assert.InDelta(t, two.PValue/2, greater.PValue, 1e-12)

	less, err := TTest(data, 2, false, 0.05, Less)
	require.NoError(t, err)
	assert.InDelta(t, 1, less.PValue+greater.PValue, 1e-12)
}

func TestTTestEqualVar(t *testing.T) {
	res, err := TTestEqualVar([]float64{2, 4, 6, 8}, []float64{3, 5, 7, 9}, true, 0.05, Equal)
	require.NoError(t, err)
	assert.False(t, res.RejectNull)
	assert.InDelta(t, -0.5477225575051661, res.Statistic, tolerance)
	assert.InDelta(t, 0.6036450565101368, res.PValue, tTolerance)
	assert.InDelta(t, 2.446911851144969, res.CriticalValue, tTolerance)
	assert.Equal(t, 6.0, res.DF)

	res, err = TTestEqualVar([]float64{1, 2, 3, 4}, []float64{11, 12, 13, 14}, false, 0.05, Less)
	require.NoError(t, err)
	assert.True(t, res.RejectNull)
	assert.InDelta(t, -10.954451150103322, res.Statistic, tolerance)

	_, err = TTestEqualVar([]float64{1, 2, 3}, []float64{4, 5, 6}, false, 0.05, Equal)
	assert.ErrorIs(t, err, stats.ErrDomain)
	_, err = TTestEqualVar([]float64{1}, []float64{4, 5, 6}, true, 0.05, Equal)
	assert.ErrorIs(t, err, stats.ErrDomain)
}
