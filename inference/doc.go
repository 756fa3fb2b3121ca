// Package inference provides confidence intervals and hypothesis tests for means.
//
// The z-family uses the standard normal distribution; the t-family uses
// Student's t with n-1 degrees of freedom for one sample and nx+ny-2 for two
// pooled samples. Standard errors always use the sample-corrected variance.
// Distribution quantiles and CDFs come from gonum's stat/distuv.
//
// # Confidence Intervals
//
//	ci, err := inference.TInterval(data, inference.DefaultConfidence)
//	fmt.Printf("[%.3f, %.3f]\n", ci.Lower, ci.Upper)
//
//	// Difference of two means
//	diff, err := inference.TIntervalEqualVar(x, y, 0.99)
//
// # Hypothesis Tests
//
// Tests return whether the null hypothesis is rejected along with the test
// statistic, the critical value and the p-value:
//
//	// H0: mean == 100, H1: mean != 100
//	res, err := inference.TTest(data, 100, true, inference.DefaultSignificance, inference.Equal)
//
//	// H0: mean <= 100, H1: mean > 100
//	res, err = inference.ZTest(data, 100, false, 0.01, inference.Greater)
//	if res.RejectNull {
//	    // evidence that the mean exceeds 100
//	}
//
// Direction only affects the decision, never the statistic. A one-tailed test
// with direction Equal is an error.
//
// Levels outside (0, 1), too few observations and zero standard errors are
// reported with stats.ErrDomain.
package inference
