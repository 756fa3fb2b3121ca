package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gostaty/dataset"
)

// Divisor choice for variance-derived statistics.
const (
	Sample     = true  // Bessel's correction, divide by n-1
	Population = false // divide by n
)

// Mean returns the arithmetic mean of data.
func Mean(data []float64) (float64, error) {
	if err := checkNonEmpty(len(data)); err != nil {
		return 0, fmt.Errorf("mean: %w", err)
	}
	return stat.Mean(data, nil), nil
}

// Var returns the variance of data, dividing the sum of squared deviations
// by n-1 when isSample is set and by n otherwise.
func Var(data []float64, isSample bool) (float64, error) {
	n := len(data)
	if err := checkSize(n, isSample); err != nil {
		return 0, fmt.Errorf("variance: %w", err)
	}
	return variance(data, isSample), nil
}

// Stdev returns the standard deviation of data.
func Stdev(data []float64, isSample bool) (float64, error) {
	v, err := Var(data, isSample)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Stderr returns the standard error of the mean, Stdev(data) / sqrt(n).
func Stderr(data []float64, isSample bool) (float64, error) {
	sd, err := Stdev(data, isSample)
	if err != nil {
		return 0, err
	}
	return sd / math.Sqrt(float64(len(data))), nil
}

// CV returns the coefficient of variation, Stdev(data) / Mean(data).
func CV(data []float64, isSample bool) (float64, error) {
	m, err := Mean(data)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 0, fmt.Errorf("coefficient of variation: zero mean: %w", ErrDomain)
	}
	sd, err := Stdev(data, isSample)
	if err != nil {
		return 0, err
	}
	return sd / m, nil
}

// PooledVar returns the pooled sample variance of two groups,
// ((nx-1)*var(x) + (ny-1)*var(y)) / (nx+ny-2).
func PooledVar(x, y []float64) (float64, error) {
	vx, err := Var(x, Sample)
	if err != nil {
		return 0, fmt.Errorf("pooled variance x: %w", err)
	}
	vy, err := Var(y, Sample)
	if err != nil {
		return 0, fmt.Errorf("pooled variance y: %w", err)
	}
	nx, ny := float64(len(x)), float64(len(y))
	return ((nx-1)*vx + (ny-1)*vy) / (nx + ny - 2), nil
}

// MedianResult holds the central element of an odd-length dataset, or the two
// central elements of an even-length one. For odd lengths Lower and Upper are
// the same value.
type MedianResult struct {
	Lower dataset.Value
	Upper dataset.Value
	pair  bool
}

// IsPair reports whether the dataset had an even length.
func (m MedianResult) IsPair() bool {
	return m.pair
}

// Float returns the middle value, or the average of the central pair for an
// even-length dataset. Text medians have no numeric value and return ErrDomain.
func (m MedianResult) Float() (float64, error) {
	lo, okLo := m.Lower.Float()
	hi, okHi := m.Upper.Float()
	if !okLo || !okHi {
		return 0, fmt.Errorf("median of text values %q and %q: %w", m.Lower, m.Upper, ErrDomain)
	}
	if !m.pair {
		return lo, nil
	}
	return (lo + hi) / 2, nil
}

// Median sorts a copy of data with dataset.Compare and returns its central
// element. For an even number of observations both central elements are
// returned rather than their average; use MedianResult.Float for the
// conventional midpoint.
func Median(data []dataset.Value) (MedianResult, error) {
	n := len(data)
	if err := checkNonEmpty(n); err != nil {
		return MedianResult{}, fmt.Errorf("median: %w", err)
	}

	sorted := slices.Clone(data)
	slices.SortFunc(sorted, dataset.Compare)

	if n%2 == 0 {
		return MedianResult{Lower: sorted[n/2-1], Upper: sorted[n/2], pair: true}, nil
	}
	return MedianResult{Lower: sorted[n/2], Upper: sorted[n/2]}, nil
}

// ModeKind classifies the outcome of Mode.
type ModeKind int

const (
	// Unimodal means a single value has the highest frequency.
	Unimodal ModeKind = iota
	// Multimodal means several values share a highest frequency above one.
	Multimodal
	// NoMode means every value occurs exactly once.
	NoMode
)

func (k ModeKind) String() string {
	switch k {
	case Unimodal:
		return "unimodal"
	case Multimodal:
		return "multimodal"
	case NoMode:
		return "no mode"
	default:
		return fmt.Sprintf("ModeKind(%d)", int(k))
	}
}

// ModeResult lists the most frequent values in order of first occurrence.
type ModeResult struct {
	Kind      ModeKind
	Values    []dataset.Value
	Frequency int
}

// Value returns the single mode. ok is false unless Kind is Unimodal.
func (m ModeResult) Value() (v dataset.Value, ok bool) {
	if m.Kind != Unimodal || len(m.Values) != 1 {
		return dataset.Value{}, false
	}
	return m.Values[0], true
}

// Mode returns the most frequent values of data.
func Mode(data []dataset.Value) (ModeResult, error) {
	if err := checkNonEmpty(len(data)); err != nil {
		return ModeResult{}, fmt.Errorf("mode: %w", err)
	}

	// Distinct values in order of first occurrence; NaN never matches a key
	// so each NaN counts on its own.
	index := make(map[dataset.Value]int, len(data))
	var distinct []dataset.Value
	var counts []int
	maxCount := 0
	for _, v := range data {
		i, ok := index[v]
		if !ok {
			i = len(distinct)
			index[v] = i
			distinct = append(distinct, v)
			counts = append(counts, 0)
		}
		counts[i]++
		maxCount = max(maxCount, counts[i])
	}

	var modes []dataset.Value
	for i, v := range distinct {
		if counts[i] == maxCount {
			modes = append(modes, v)
		}
	}

	result := ModeResult{Values: modes, Frequency: maxCount}
	switch {
	case len(modes) == 1:
		result.Kind = Unimodal
	case maxCount == 1:
		result.Kind = NoMode
	default:
		result.Kind = Multimodal
	}
	return result, nil
}

// variance is gonum's corrected two-pass estimate. Constant data has exactly
// zero variance; the estimate can otherwise leave a rounding residue.
func variance(data []float64, isSample bool) float64 {
	if isConstant(data) {
		return 0
	}
	var v float64
	if isSample {
		v = stat.Variance(data, nil)
	} else {
		v = stat.PopVariance(data, nil)
	}
	return math.Max(v, 0)
}

// isConstant reports whether every observation is equal. data must be non-empty.
func isConstant(data []float64) bool {
	return floats.Min(data) == floats.Max(data)
}
