// Package inference provides confidence intervals and hypothesis tests for means.
package inference

import (
	"fmt"
	"math"

	"github.com/sartorproj/gostaty/stats"
)

// Conventional levels for callers without a study-specific choice.
const (
	DefaultConfidence   = 0.95
	DefaultSignificance = 0.05
)

// Direction selects the alternative hypothesis of a one-tailed test.
type Direction int

const (
	// Less rejects when the statistic falls below the lower critical value.
	Less Direction = iota - 1
	// Equal marks a two-tailed test, where direction plays no part.
	Equal
	// Greater rejects when the statistic exceeds the upper critical value.
	Greater
)

func (d Direction) String() string {
	switch d {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Interval is a two-sided confidence interval, Center ± Margin.
type Interval struct {
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Center float64 `json:"center"`
	Margin float64 `json:"margin"`
	Level  float64 `json:"confidence_level"`
}

// Contains reports whether x lies within the closed interval.
func (i Interval) Contains(x float64) bool {
	return i.Lower <= x && x <= i.Upper
}

// Width returns Upper - Lower.
func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// TestResult is the outcome of a hypothesis test.
type TestResult struct {
	RejectNull bool    `json:"reject_null"`
	Statistic  float64 `json:"statistic"`
	// CriticalValue is the rejection threshold: positive for two-tailed and
	// Greater tests, negative for Less tests.
	CriticalValue float64   `json:"critical_value"`
	PValue        float64   `json:"p_value"`
	DF            float64   `json:"df,omitempty"` // zero for z-tests
	TwoTailed     bool      `json:"two_tailed"`
	Direction     Direction `json:"direction"`
}

// distribution is the part of a gonum distuv distribution used for inference.
type distribution interface {
	CDF(x float64) float64
	Quantile(p float64) float64
}

func checkLevel(name string, level float64) error {
	if !(level > 0 && level < 1) {
		return fmt.Errorf("%s %v outside (0, 1): %w", name, level, stats.ErrDomain)
	}
	return nil
}

// interval builds center ± q·se where q is the two-tailed quantile for confidence.
func interval(center, se, confidence float64, dist distribution) Interval {
	margin := dist.Quantile(1-(1-confidence)/2) * se
	return Interval{
		Lower:  center - margin,
		Upper:  center + margin,
		Center: center,
		Margin: margin,
		Level:  confidence,
	}
}

// decide compares statistic against the critical value(s) of dist.
func decide(statistic float64, twoTailed bool, alpha float64, direction Direction, dist distribution) (TestResult, error) {
	result := TestResult{
		Statistic: statistic,
		TwoTailed: twoTailed,
		Direction: direction,
	}

	switch {
	case twoTailed:
		result.Direction = Equal
		result.CriticalValue = dist.Quantile(1 - alpha/2)
		result.RejectNull = math.Abs(statistic) > result.CriticalValue
		result.PValue = 2 * (1 - dist.CDF(math.Abs(statistic)))
	case direction == Greater:
		result.CriticalValue = dist.Quantile(1 - alpha)
		result.RejectNull = statistic > result.CriticalValue
		result.PValue = 1 - dist.CDF(statistic)
	case direction == Less:
		result.CriticalValue = dist.Quantile(alpha)
		result.RejectNull = statistic < result.CriticalValue
		result.PValue = dist.CDF(statistic)
	default:
		return TestResult{}, fmt.Errorf("one-tailed test needs direction less or greater, got %s: %w", direction, stats.ErrDomain)
	}

	return result, nil
}

// meanDifference returns mean(x) - mean(y).
func meanDifference(x, y []float64) (float64, error) {
	mx, err := stats.Mean(x)
	if err != nil {
		return 0, err
	}
	my, err := stats.Mean(y)
	if err != nil {
		return 0, err
	}
	return mx - my, nil
}

func nonZeroStderr(se float64) error {
	if se == 0 {
		return fmt.Errorf("zero standard error: %w", stats.ErrDomain)
	}
	return nil
}
