package stats

import (
	"fmt"
)

// ZScore standardizes each observation by the mean and standard deviation of
// data. The result has the same length and order as data.
func ZScore(data []float64, isSample bool) ([]float64, error) {
	sd, err := Stdev(data, isSample)
	if err != nil {
		return nil, fmt.Errorf("z-score: %w", err)
	}
	if sd == 0 {
		return nil, fmt.Errorf("z-score: zero standard deviation: %w", ErrDomain)
	}
	m, _ := Mean(data)
	return scale(data, m, sd), nil
}

// TScore scales each observation's deviation from the mean by the sample
// standard error of data.
func TScore(data []float64) ([]float64, error) {
	se, err := Stderr(data, Sample)
	if err != nil {
		return nil, fmt.Errorf("t-score: %w", err)
	}
	if se == 0 {
		return nil, fmt.Errorf("t-score: zero standard error: %w", ErrDomain)
	}
	m, _ := Mean(data)
	return scale(data, m, se), nil
}

func scale(data []float64, center, unit float64) []float64 {
	result := make([]float64, len(data))
	for i, v := range data {
		result[i] = (v - center) / unit
	}
	return result
}
