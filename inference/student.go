package inference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gostaty/stats"
)

func studentsT(df int) distuv.StudentsT {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
}

// TInterval returns the Student's t confidence interval for the mean of data,
// mean ± t(n-1)·stderr.
func TInterval(data []float64, confidence float64) (Interval, error) {
	if err := checkLevel("confidence", confidence); err != nil {
		return Interval{}, fmt.Errorf("t-interval: %w", err)
	}
	m, se, err := meanAndStderr(data)
	if err != nil {
		return Interval{}, fmt.Errorf("t-interval: %w", err)
	}
	return interval(m, se, confidence, studentsT(len(data)-1)), nil
}

// TIntervalEqualVar returns the confidence interval for mean(x) - mean(y)
// assuming equal population variances, using the pooled variance and
// nx+ny-2 degrees of freedom.
func TIntervalEqualVar(x, y []float64, confidence float64) (Interval, error) {
	if err := checkLevel("confidence", confidence); err != nil {
		return Interval{}, fmt.Errorf("two-sample t-interval: %w", err)
	}
	diff, se, df, err := pooledDifference(x, y)
	if err != nil {
		return Interval{}, fmt.Errorf("two-sample t-interval: %w", err)
	}
	return interval(diff, se, confidence, studentsT(df)), nil
}

// TTest tests whether the mean of data differs from expected, using
// t = (mean - expected) / stderr with n-1 degrees of freedom. Direction is
// handled as in ZTest.
func TTest(data []float64, expected float64, twoTailed bool, significance float64, direction Direction) (TestResult, error) {
	if err := checkLevel("significance", significance); err != nil {
		return TestResult{}, fmt.Errorf("t-test: %w", err)
	}
	m, se, err := meanAndStderr(data)
	if err != nil {
		return TestResult{}, fmt.Errorf("t-test: %w", err)
	}
	if err := nonZeroStderr(se); err != nil {
		return TestResult{}, fmt.Errorf("t-test: %w", err)
	}
	df := len(data) - 1
	result, err := decide((m-expected)/se, twoTailed, significance, direction, studentsT(df))
	if err != nil {
		return TestResult{}, fmt.Errorf("t-test: %w", err)
	}
	result.DF = float64(df)
	return result, nil
}

// TTestEqualVar is the pooled two-sample t-test for mean(x) - mean(y).
func TTestEqualVar(x, y []float64, twoTailed bool, significance float64, direction Direction) (TestResult, error) {
	if err := checkLevel("significance", significance); err != nil {
		return TestResult{}, fmt.Errorf("two-sample t-test: %w", err)
	}
	diff, se, df, err := pooledDifference(x, y)
	if err != nil {
		return TestResult{}, fmt.Errorf("two-sample t-test: %w", err)
	}
	if err := nonZeroStderr(se); err != nil {
		return TestResult{}, fmt.Errorf("two-sample t-test: %w", err)
	}
	result, err := decide(diff/se, twoTailed, significance, direction, studentsT(df))
	if err != nil {
		return TestResult{}, fmt.Errorf("two-sample t-test: %w", err)
	}
	result.DF = float64(df)
	return result, nil
}

// pooledDifference returns mean(x) - mean(y), its pooled standard error
// sqrt(sp²·(1/nx + 1/ny)) and the degrees of freedom nx+ny-2.
func pooledDifference(x, y []float64) (diff, se float64, df int, err error) {
	sp2, err := stats.PooledVar(x, y)
	if err != nil {
		return 0, 0, 0, err
	}
	diff, err = meanDifference(x, y)
	if err != nil {
		return 0, 0, 0, err
	}
	nx, ny := float64(len(x)), float64(len(y))
	return diff, math.Sqrt(sp2 * (1/nx + 1/ny)), len(x) + len(y) - 2, nil
}
