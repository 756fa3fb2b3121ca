// Package dataset provides the observation types consumed by the statistics packages.
package dataset

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Sample is a named, ordered set of numeric observations.
type Sample struct {
	Values []float64
	Name   string
}

// New wraps values in an unnamed sample. The slice is shared, not copied.
func New(values []float64) *Sample {
	return &Sample{Values: values}
}

// NewNamed wraps values in a sample called name.
func NewNamed(name string, values []float64) *Sample {
	return &Sample{Values: values, Name: name}
}

// FromInts converts count or score data to a sample.
func FromInts(values []int) *Sample {
	s := &Sample{Values: make([]float64, len(values))}
	for i, v := range values {
		s.Values[i] = float64(v)
	}
	return s
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.Values)
}

// Min returns the smallest observation. An empty sample has no minimum and
// yields NaN.
func (s *Sample) Min() float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return floats.Min(s.Values)
}

// Max returns the largest observation, NaN when empty.
func (s *Sample) Max() float64 {
	if s.Len() == 0 {
		return math.NaN()
	}
	return floats.Max(s.Values)
}

// Slice returns observations [start, end) as an independent sample with the
// same name. Bounds are clamped to the sample, so an out-of-range request
// yields an empty sample rather than a panic.
func (s *Sample) Slice(start, end int) *Sample {
	start = max(start, 0)
	end = min(end, s.Len())
	if start >= end {
		return &Sample{Values: []float64{}, Name: s.Name}
	}
	return &Sample{Values: slices.Clone(s.Values[start:end]), Name: s.Name}
}

// Copy returns a sample that shares no storage with s.
func (s *Sample) Copy() *Sample {
	return &Sample{Values: slices.Clone(s.Values), Name: s.Name}
}

// Labels returns the observations as numeric Values, for median and mode.
func (s *Sample) Labels() []Value {
	return Floats(s.Values...)
}
