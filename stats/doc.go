// Package stats provides descriptive and bivariate statistics over finite datasets.
//
// Every function is a pure transformation: inputs are read, never modified, and
// the result is freshly allocated. Functions that divide by n-1 or n take an
// isSample flag; pass Sample for Bessel's correction and Population otherwise.
// Sample is the conventional choice when in doubt.
//
// # Central Tendency and Dispersion
//
//	data := []float64{2, 4, 6, 8}
//	m, _ := stats.Mean(data)                // 5
//	v, _ := stats.Var(data, stats.Sample)   // 6.666666666666667
//	sd, _ := stats.Stdev(data, stats.Sample) // 2.581988897471611
//	se, _ := stats.Stderr(data, stats.Sample) // 1.2909944487358056
//	cv, _ := stats.CV(data, stats.Sample)
//
// # Median and Mode
//
// Median and Mode accept categorical data through dataset.Value:
//
//	med, _ := stats.Median(dataset.Strings("a", "b", "c", "d"))
//	// med.IsPair() == true, med.Lower == "b", med.Upper == "c"
//
// For even-length data Median reports both central values instead of their
// average. MedianResult.Float averages numeric pairs on request.
//
//	mode, _ := stats.Mode(dataset.Ints(1, 1, 2, 2))
//	// mode.Kind == stats.Multimodal, mode.Values == [1 2]
//
// # Paired Series
//
//	c, _ := stats.Cov(x, y, stats.Sample)
//	r, _ := stats.CorrelationR(x, y, stats.Sample)
//
// # Standardization
//
//	z, _ := stats.ZScore(data, stats.Population)
//	t, _ := stats.TScore(data) // deviations in units of the sample standard error
//
// # Errors
//
// Undefined results are reported, never replaced by NaN or zero. Use errors.Is
// with ErrDomain (empty data, too few observations, zero variance or mean) or
// ErrShapeMismatch (paired series of different lengths).
package stats
