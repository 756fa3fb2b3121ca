package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Cov returns the covariance of paired series x and y.
func Cov(x, y []float64, isSample bool) (float64, error) {
	if err := checkPaired(len(x), len(y)); err != nil {
		return 0, fmt.Errorf("covariance: %w", err)
	}
	n := len(x)
	if err := checkSize(n, isSample); err != nil {
		return 0, fmt.Errorf("covariance: %w", err)
	}

	// A constant series does not co-vary with anything; this also covers n == 1.
	if isConstant(x) || isConstant(y) {
		return 0, nil
	}
	c := stat.Covariance(x, y, nil)
	if !isSample {
		c *= float64(n-1) / float64(n)
	}
	return c, nil
}

// CorrelationR returns the Pearson correlation coefficient of x and y.
// The divisor cancels, so isSample only sets the minimum length: two paired
// observations for a sample, one for a population.
// The result is clamped to [-1, 1] to absorb rounding.
func CorrelationR(x, y []float64, isSample bool) (float64, error) {
	if err := checkPaired(len(x), len(y)); err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	if err := checkSize(len(x), isSample); err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	if isConstant(x) || isConstant(y) {
		return 0, fmt.Errorf("correlation: constant series: %w", ErrDomain)
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0, fmt.Errorf("correlation: no measurable spread: %w", ErrDomain)
	}
	return math.Max(-1, math.Min(1, r)), nil
}
