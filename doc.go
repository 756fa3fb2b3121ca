// Package gostaty provides descriptive statistics, confidence intervals,
// hypothesis tests, and logistic regression for small numeric datasets.
//
// # Features
//
//   - Mean, variance, standard deviation, standard error, coefficient of variation
//   - Median and mode over mixed numeric and text observations
//   - Covariance, Pearson correlation, z-scores and t-scores
//   - z and t confidence intervals, one- and two-sample
//   - z and t hypothesis tests with two-tailed, greater, and less alternatives
//   - Binary logistic regression trained by gradient descent
//
// Every sample-vs-population choice is an explicit isSample argument, and every
// undefined result is reported as an error wrapping stats.ErrDomain or
// stats.ErrShapeMismatch rather than as NaN.
//
// # Quick Start
//
// Describe a sample:
//
//	data := []float64{2, 4, 6, 8}
//	mean, _ := stats.Mean(data)
//	sd, _ := stats.Stdev(data, stats.Sample)
//
// Test a hypothesis about its mean:
//
//	res, _ := inference.TTest(data, 3, true, inference.DefaultSignificance, inference.Equal)
//	fmt.Println(res.RejectNull, res.PValue)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dataset: Observation values and numeric samples
//   - stats: Descriptive and bivariate statistics, standard scores
//   - inference: Confidence intervals and hypothesis tests
//   - regression: Logistic regression
//
// # References
//
//   - Wasserman, L. (2004). All of Statistics: A Concise Course in Statistical Inference
//   - Hastie, T., Tibshirani, R., & Friedman, J. (2009). The Elements of Statistical Learning
package gostaty
