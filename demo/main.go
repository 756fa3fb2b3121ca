// Package main demonstrates descriptive statistics, hypothesis tests, and
// logistic regression on small fixed datasets.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gostaty/dataset"
	"github.com/sartorproj/gostaty/inference"
	"github.com/sartorproj/gostaty/regression"
	"github.com/sartorproj/gostaty/stats"
)

// Comparison pairs two samples measured on the same subjects.
type Comparison struct {
	Name     string
	Before   *dataset.Sample
	After    *dataset.Sample
	Expected float64 // Hypothesized mean of the "after" sample
}

// SampleResult holds descriptive results for JSON export
type SampleResult struct {
	Name     string             `json:"name"`
	NObs     int                `json:"n_obs"`
	Mean     float64            `json:"mean"`
	Var      float64            `json:"var"`
	Stdev    float64            `json:"stdev"`
	CV       float64            `json:"cv"`
	Median   float64            `json:"median"`
	Interval inference.Interval `json:"interval"`
}

// ComparisonResult holds paired results for JSON export
type ComparisonResult struct {
	Name        string               `json:"name"`
	Cov         float64              `json:"cov"`
	Correlation float64              `json:"correlation"`
	ZTest       inference.TestResult `json:"z_test"`
	TTest       inference.TestResult `json:"t_test"`
	Paired      inference.TestResult `json:"paired"`
	Difference  inference.TestResult `json:"difference"`
}

// OutputData holds all results
type OutputData struct {
	Samples     []SampleResult     `json:"samples"`
	Comparisons []ComparisonResult `json:"comparisons"`
	Accuracy    float64            `json:"accuracy"`
}

func main() {
	jsonOut := flag.Bool("json", false, "write results as JSON to stdout")
	verbose := flag.Bool("v", false, "log regression training cost")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	midterm := dataset.FromInts([]int{62, 71, 55, 80, 68, 74, 59, 66, 77, 70})
	midterm.Name = "midterm"
	final := dataset.FromInts([]int{65, 75, 58, 84, 70, 79, 57, 71, 80, 72})
	final.Name = "final"

	comparisons := []Comparison{
		{
			Name:     "Reaction time (ms)",
			Before:   dataset.NewNamed("before", []float64{312, 298, 305, 321, 290, 301, 315, 308}),
			After:    dataset.NewNamed("after", []float64{295, 290, 301, 306, 281, 296, 300, 297}),
			Expected: 300,
		},
		{
			Name:     "Exam score",
			Before:   midterm,
			After:    final,
			Expected: 70,
		},
	}

	output := OutputData{}

	for _, c := range comparisons {
		clog := log.With().Str("dataset", c.Name).Logger()

		for _, s := range []*dataset.Sample{c.Before, c.After} {
			if res, ok := describe(clog, s); ok {
				output.Samples = append(output.Samples, res)
			}
		}
		if res, ok := compare(clog, c); ok {
			output.Comparisons = append(output.Comparisons, res)
		}
	}

	modes(log)

	acc, err := classify(log)
	if err != nil {
		log.Error().Err(err).Msg("classification failed")
	}
	output.Accuracy = acc

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			log.Fatal().Err(err).Msg("failed to encode results")
		}
	}
}

// describe logs descriptive statistics and a 95% t-interval for one sample
func describe(log zerolog.Logger, s *dataset.Sample) (SampleResult, bool) {
	res := SampleResult{Name: s.Name, NObs: s.Len()}
	var err error

	if res.Mean, err = stats.Mean(s.Values); err != nil {
		log.Warn().Err(err).Str("sample", s.Name).Msg("mean undefined")
		return res, false
	}
	if res.Var, err = stats.Var(s.Values, stats.Sample); err != nil {
		log.Warn().Err(err).Str("sample", s.Name).Msg("variance undefined")
	}
	if res.Stdev, err = stats.Stdev(s.Values, stats.Sample); err != nil {
		log.Warn().Err(err).Str("sample", s.Name).Msg("standard deviation undefined")
	}
	if res.CV, err = stats.CV(s.Values, stats.Sample); err != nil {
		log.Debug().Err(err).Str("sample", s.Name).Msg("coefficient of variation undefined")
	}

	median, err := stats.Median(s.Labels())
	if err == nil {
		res.Median, err = median.Float()
	}
	if err != nil {
		log.Warn().Err(err).Str("sample", s.Name).Msg("median undefined")
	}

	if res.Interval, err = inference.TInterval(s.Values, inference.DefaultConfidence); err != nil {
		log.Warn().Err(err).Str("sample", s.Name).Msg("interval undefined")
	}

	log.Info().
		Str("sample", s.Name).
		Int("n", res.NObs).
		Float64("min", s.Min()).
		Float64("max", s.Max()).
		Float64("mean", res.Mean).
		Float64("stdev", res.Stdev).
		Float64("cv", res.CV).
		Float64("median", res.Median).
		Float64("ci_lower", res.Interval.Lower).
		Float64("ci_upper", res.Interval.Upper).
		Msg("descriptive")

	return res, true
}

// compare relates two paired samples and tests the second against its expected mean
func compare(log zerolog.Logger, c Comparison) (ComparisonResult, bool) {
	res := ComparisonResult{Name: c.Name}
	var err error

	if res.Cov, err = stats.Cov(c.Before.Values, c.After.Values, stats.Sample); err != nil {
		log.Warn().Err(err).Msg("covariance undefined")
		return res, false
	}
	if res.Correlation, err = stats.CorrelationR(c.Before.Values, c.After.Values, stats.Sample); err != nil {
		log.Warn().Err(err).Msg("correlation undefined")
		return res, false
	}
	log.Info().Float64("cov", res.Cov).Float64("r", res.Correlation).Msg("paired")

	if res.ZTest, err = inference.ZTest(c.After.Values, c.Expected, true, inference.DefaultSignificance, inference.Equal); err != nil {
		log.Warn().Err(err).Msg("z-test undefined")
		return res, false
	}
	if res.TTest, err = inference.TTest(c.After.Values, c.Expected, true, inference.DefaultSignificance, inference.Equal); err != nil {
		log.Warn().Err(err).Msg("t-test undefined")
		return res, false
	}
	logTest(log, "mean vs expected", res.TTest)

	// Paired t-test on the per-subject differences.
	diff := c.After.Copy()
	diff.Name = "after - before"
	for i, b := range c.Before.Values {
		diff.Values[i] -= b
	}
	if res.Paired, err = inference.TTest(diff.Values, 0, true, inference.DefaultSignificance, inference.Equal); err != nil {
		log.Warn().Err(err).Str("sample", diff.Name).Msg("paired t-test undefined")
		return res, false
	}
	logTest(log, diff.Name, res.Paired)

	// Did the second measurement go down?
	if res.Difference, err = inference.TTestEqualVar(c.After.Values, c.Before.Values, false, inference.DefaultSignificance, inference.Less); err != nil {
		log.Warn().Err(err).Msg("two-sample t-test undefined")
		return res, false
	}
	logTest(log, "after < before", res.Difference)

	return res, true
}

func logTest(log zerolog.Logger, name string, r inference.TestResult) {
	log.Info().
		Str("test", name).
		Bool("reject_null", r.RejectNull).
		Float64("statistic", r.Statistic).
		Float64("critical", r.CriticalValue).
		Float64("p", r.PValue).
		Float64("df", r.DF).
		Stringer("direction", r.Direction).
		Msg("hypothesis test")
}

// modes reports the mode of numeric and categorical observations
func modes(log zerolog.Logger) {
	sets := map[string][]dataset.Value{
		"shoe size": dataset.Floats(42, 40, 43, 42, 41, 42, 40),
		"transport": dataset.Strings("bus", "bike", "car", "bike", "bus", "walk"),
		"ids":       dataset.Ints(7, 3, 9, 1),
	}

	for name, values := range sets {
		mode, err := stats.Mode(values)
		if err != nil {
			log.Warn().Err(err).Str("set", name).Msg("mode undefined")
			continue
		}
		median, err := stats.Median(values)
		if err != nil {
			log.Warn().Err(err).Str("set", name).Msg("median undefined")
			continue
		}

		event := log.Info()
		if dataset.AllNumeric(values) {
			if m, err := median.Float(); err == nil {
				event = event.Float64("median", m)
			}
		}
		event.
			Str("set", name).
			Stringer("kind", mode.Kind).
			Interface("mode", mode.Values).
			Int("frequency", mode.Frequency).
			Stringer("median_lower", median.Lower).
			Stringer("median_upper", median.Upper).
			Msg("central tendency")
	}
}

// classify fits a logistic regression on study hours vs. pass/fail and scores
// it on held-out students
func classify(log zerolog.Logger) (float64, error) {
	const trainSize = 14

	hours := dataset.New([]float64{1.75, 4.5, 0.5, 3, 2.25, 5, 1.25, 3.5, 2.75, 4.25, 1, 2, 4, 5.5, 0.75, 4.75, 1.5, 2.5, 3.25})
	passed := dataset.New([]float64{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0})

	// Train on standardized hours.
	z, err := stats.ZScore(hours.Values, stats.Sample)
	if err != nil {
		return 0, err
	}
	features := dataset.New(z)
	train, test := features.Slice(0, trainSize), features.Slice(trainSize, features.Len())
	yTrain, yTest := passed.Slice(0, trainSize), passed.Slice(trainSize, passed.Len())

	cfg := regression.DefaultConfig()
	cfg.LearningRate = 0.1
	cfg.Logger = log
	model := regression.New(cfg)

	if err := model.Fit(mat.NewDense(train.Len(), 1, train.Values), yTrain.Values); err != nil {
		return 0, err
	}
	pred, err := model.Predict(mat.NewDense(test.Len(), 1, test.Values))
	if err != nil {
		return 0, err
	}
	acc, err := regression.Accuracy(yTest.Values, pred)
	if err != nil {
		return 0, err
	}

	summary := model.Summary()
	log.Info().
		Floats64("weights", summary.Weights).
		Float64("bias", summary.Bias).
		Float64("cost", summary.Cost).
		Int("held_out", test.Len()).
		Float64("accuracy", acc).
		Msg("logistic regression")

	return acc, nil
}
