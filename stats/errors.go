package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is returned when a statistic is mathematically undefined for
	// the input: empty data, too few observations for a sample-corrected
	// estimate, or a zero divisor such as zero variance or a zero mean.
	ErrDomain = errors.New("undefined for input")
	// ErrShapeMismatch is returned when paired series differ in length.
	ErrShapeMismatch = errors.New("paired series differ in length")
)

func checkNonEmpty(n int) error {
	if n == 0 {
		return fmt.Errorf("empty dataset: %w", ErrDomain)
	}
	return nil
}

// checkSize validates n for a statistic that divides by n-1 when isSample is set.
func checkSize(n int, isSample bool) error {
	if err := checkNonEmpty(n); err != nil {
		return err
	}
	if isSample && n < 2 {
		return fmt.Errorf("sample statistic needs at least 2 observations, got %d: %w", n, ErrDomain)
	}
	return nil
}

func checkPaired(nx, ny int) error {
	if nx != ny {
		return fmt.Errorf("len %d vs %d: %w", nx, ny, ErrShapeMismatch)
	}
	return nil
}
