// Package dataset provides the observation types consumed by the statistics packages.
//
// Numeric operations work on plain []float64 slices. Median and mode also accept
// categorical data, so they take []Value, a tagged union holding either a number
// or a text label.
//
// # Values
//
// Build values from Go slices:
//
//	nums := dataset.Ints(1, 2, 2, 3)
//	labels := dataset.Strings("a", "b", "c", "d")
//	mixed := []dataset.Value{dataset.Num(1.5), dataset.Label("n/a")}
//
// Values compare per variant: numbers by value, labels in byte order, and
// every number sorts before every label:
//
//	sort.Slice(mixed, func(i, j int) bool {
//	    return dataset.Compare(mixed[i], mixed[j]) < 0
//	})
//
// A number never equals a label, even when they print the same:
//
//	dataset.Equal(dataset.Num(1), dataset.Label("1")) // false
//
// # Samples
//
// Sample attaches a name to a set of observations:
//
//	s := dataset.NewNamed("heights", []float64{170, 182, 165})
//	lo, hi := s.Min(), s.Max()
//	head := s.Slice(0, 2)
//	values := s.Labels() // []Value for stats.Median and stats.Mode
package dataset
