package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gostaty/dataset"
)

const epsilon = 1e-12

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"even", []float64{2, 4, 6, 8}, 5.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, epsilon)
		})
	}

	_, err := Mean(nil)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestVar(t *testing.T) {
	data := []float64{2, 4, 6, 8}

	got, err := Var(data, Sample)
	require.NoError(t, err)
	assert.Equal(t, 6.666666666666667, got)

	got, err = Var(data, Population)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = Var([]float64{5}, Population)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = Var([]float64{5}, Sample)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = Var(nil, Population)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestStdev(t *testing.T) {
	got, err := Stdev([]float64{2, 4, 6, 8}, Sample)
	require.NoError(t, err)
	assert.InDelta(t, 2.581988897471611, got, epsilon)

	got, err = Stdev([]float64{3, 3, 3}, Sample)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = Stdev([]float64{2}, Sample)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestStderr(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		isSample bool
		expected float64
	}{
		{"sample even", []float64{2, 4, 6, 8}, Sample, 1.2909944487358056},
		{"sample consecutive", []float64{1, 2, 3, 4}, Sample, 0.6454972243679028},
		{"population", []float64{2, 4, 6, 8}, Population, math.Sqrt(5) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stderr(tt.values, tt.isSample)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, epsilon)
		})
	}

	_, err := Stderr([]float64{2}, Sample)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestCV(t *testing.T) {
	got, err := CV([]float64{2, 4, 6, 8}, Sample)
	require.NoError(t, err)
	assert.InDelta(t, 0.5163977794943222, got, epsilon)

	got, err = CV([]float64{2, 4, 6, 8}, Population)
	require.NoError(t, err)
	assert.InDelta(t, 0.447213595499958, got, epsilon)

	_, err = CV([]float64{-1, 0, 1}, Sample)
	assert.ErrorIs(t, err, ErrDomain, "zero mean")
	_, err = CV([]float64{2}, Sample)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = CV(nil, Sample)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestPooledVar(t *testing.T) {
	got, err := PooledVar([]float64{2, 4, 8, 16}, []float64{6, 8, 12, 24})
	require.NoError(t, err)
	assert.InDelta(t, 51.666666666666664, got, 1e-9)

	// Equal sizes pool to the average of the two variances.
	got, err = PooledVar([]float64{2, 4, 6, 8}, []float64{3, 5, 7, 9})
	require.NoError(t, err)
	assert.InDelta(t, 6.666666666666667, got, epsilon)

	_, err = PooledVar([]float64{2}, []float64{2})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestMedian(t *testing.T) {
	t.Run("odd", func(t *testing.T) {
		m, err := Median(dataset.Ints(10, 2, 8, 4, 6))
		require.NoError(t, err)
		assert.False(t, m.IsPair())
		assert.True(t, dataset.Equal(dataset.Num(6), m.Lower))
		assert.True(t, dataset.Equal(m.Lower, m.Upper))

		f, err := m.Float()
		require.NoError(t, err)
		assert.Equal(t, 6.0, f)
	})

	t.Run("even returns pair", func(t *testing.T) {
		m, err := Median(dataset.Ints(8, 2, 6, 4))
		require.NoError(t, err)
		assert.True(t, m.IsPair())
		assert.True(t, dataset.Equal(dataset.Num(4), m.Lower))
		assert.True(t, dataset.Equal(dataset.Num(6), m.Upper))

		f, err := m.Float()
		require.NoError(t, err)
		assert.Equal(t, 5.0, f)
	})

	t.Run("text", func(t *testing.T) {
		m, err := Median(dataset.Strings("d", "a", "c", "b"))
		require.NoError(t, err)
		assert.True(t, m.IsPair())
		assert.Equal(t, "b", m.Lower.String())
		assert.Equal(t, "c", m.Upper.String())

		_, err = m.Float()
		assert.ErrorIs(t, err, ErrDomain)
	})

	t.Run("mixed orders numbers first", func(t *testing.T) {
		data := []dataset.Value{dataset.Label("z"), dataset.Num(100), dataset.Label("a")}
		m, err := Median(data)
		require.NoError(t, err)
		assert.Equal(t, "a", m.Lower.String())
	})

	t.Run("input untouched", func(t *testing.T) {
		data := dataset.Ints(3, 1, 2)
		_, err := Median(data)
		require.NoError(t, err)
		assert.Equal(t, "3", data[0].String())
	})

	_, err := Median(nil)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestMode(t *testing.T) {
	tests := []struct {
		name      string
		data      []dataset.Value
		kind      ModeKind
		expected  []string
		frequency int
	}{
		{"unimodal", dataset.Ints(1, 2, 2, 3), Unimodal, []string{"2"}, 2},
		{"unimodal leading", dataset.Ints(2, 2, 3, 4, 5, 6), Unimodal, []string{"2"}, 2},
		{"multimodal", dataset.Ints(1, 1, 2, 2), Multimodal, []string{"1", "2"}, 2},
		{"first occurrence order", dataset.Ints(5, 3, 3, 5, 1), Multimodal, []string{"5", "3"}, 2},
		{"all distinct", dataset.Ints(2, 3, 4, 5, 6), NoMode, []string{"2", "3", "4", "5", "6"}, 1},
		{"single", dataset.Ints(7), Unimodal, []string{"7"}, 1},
		{"text", dataset.Strings("b", "a", "b"), Unimodal, []string{"b"}, 2},
		{"number and label differ", []dataset.Value{dataset.Num(1), dataset.Label("1"), dataset.Num(1)}, Unimodal, []string{"1"}, 2},
		{"nan counted separately", dataset.Floats(math.NaN(), 4, math.NaN(), 4), Unimodal, []string{"4"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.frequency, got.Frequency)

			names := make([]string, len(got.Values))
			for i, v := range got.Values {
				names[i] = v.String()
			}
			assert.Equal(t, tt.expected, names)
		})
	}

	_, err := Mode(nil)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestModeValue(t *testing.T) {
	m, err := Mode(dataset.Ints(1, 2, 2, 3))
	require.NoError(t, err)
	v, ok := m.Value()
	require.True(t, ok)
	assert.True(t, v.IsNumeric())
	assert.Equal(t, "2", v.String())

	m, err = Mode(dataset.Ints(1, 1, 2, 2))
	require.NoError(t, err)
	_, ok = m.Value()
	assert.False(t, ok)
	assert.Equal(t, "multimodal", m.Kind.String())
}
