package inference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gostaty/stats"
)

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ZInterval returns the normal-approximation confidence interval for the mean
// of data: mean ± z·stderr, with the sample standard error.
func ZInterval(data []float64, confidence float64) (Interval, error) {
	if err := checkLevel("confidence", confidence); err != nil {
		return Interval{}, fmt.Errorf("z-interval: %w", err)
	}
	m, se, err := meanAndStderr(data)
	if err != nil {
		return Interval{}, fmt.Errorf("z-interval: %w", err)
	}
	return interval(m, se, confidence, standardNormal), nil
}

// ZIntervalEqualVar returns the confidence interval for mean(x) - mean(y),
// with standard error sqrt(var(x)/nx + var(y)/ny).
func ZIntervalEqualVar(x, y []float64, confidence float64) (Interval, error) {
	if err := checkLevel("confidence", confidence); err != nil {
		return Interval{}, fmt.Errorf("two-sample z-interval: %w", err)
	}
	diff, se, err := unpooledDifference(x, y)
	if err != nil {
		return Interval{}, fmt.Errorf("two-sample z-interval: %w", err)
	}
	return interval(diff, se, confidence, standardNormal), nil
}

// ZTest tests whether the mean of data differs from expected, using
// z = (mean - expected) / stderr. When twoTailed is set direction is ignored;
// otherwise it must be Less or Greater.
func ZTest(data []float64, expected float64, twoTailed bool, significance float64, direction Direction) (TestResult, error) {
	if err := checkLevel("significance", significance); err != nil {
		return TestResult{}, fmt.Errorf("z-test: %w", err)
	}
	m, se, err := meanAndStderr(data)
	if err != nil {
		return TestResult{}, fmt.Errorf("z-test: %w", err)
	}
	if err := nonZeroStderr(se); err != nil {
		return TestResult{}, fmt.Errorf("z-test: %w", err)
	}
	result, err := decide((m-expected)/se, twoTailed, significance, direction, standardNormal)
	if err != nil {
		return TestResult{}, fmt.Errorf("z-test: %w", err)
	}
	return result, nil
}

// ZTestEqualVar tests whether mean(x) and mean(y) differ, with the same
// standard error as ZIntervalEqualVar.
func ZTestEqualVar(x, y []float64, twoTailed bool, significance float64, direction Direction) (TestResult, error) {
	if err := checkLevel("significance", significance); err != nil {
		return TestResult{}, fmt.Errorf("two-sample z-test: %w", err)
	}
	diff, se, err := unpooledDifference(x, y)
	if err != nil {
		return TestResult{}, fmt.Errorf("two-sample z-test: %w", err)
	}
	if err := nonZeroStderr(se); err != nil {
		return TestResult{}, fmt.Errorf("two-sample z-test: %w", err)
	}
	result, err := decide(diff/se, twoTailed, significance, direction, standardNormal)
	if err != nil {
		return TestResult{}, fmt.Errorf("two-sample z-test: %w", err)
	}
	return result, nil
}

// meanAndStderr returns the mean and sample standard error of data.
func meanAndStderr(data []float64) (mean, se float64, err error) {
	se, err = stats.Stderr(data, stats.Sample)
	if err != nil {
		return 0, 0, err
	}
	mean, err = stats.Mean(data)
	return mean, se, err
}

func unpooledDifference(x, y []float64) (diff, se float64, err error) {
	vx, err := stats.Var(x, stats.Sample)
	if err != nil {
		return 0, 0, fmt.Errorf("x: %w", err)
	}
	vy, err := stats.Var(y, stats.Sample)
	if err != nil {
		return 0, 0, fmt.Errorf("y: %w", err)
	}
	diff, err = meanDifference(x, y)
	if err != nil {
		return 0, 0, err
	}
	return diff, math.Sqrt(vx/float64(len(x)) + vy/float64(len(y))), nil
}
