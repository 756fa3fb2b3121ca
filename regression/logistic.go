// Package regression implements binary logistic regression trained by gradient descent.
package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gostaty/stats"
)

// ErrNotFitted is returned when a model is used before Fit succeeds.
var ErrNotFitted = errors.New("model must be fitted before prediction")

// Config holds the training parameters.
type Config struct {
	Iterations   int            // Gradient descent steps (default: 2000)
	LearningRate float64        // Step size (default: 0.001)
	Threshold    float64        // Probability above which Predict returns 1 (default: 0.5)
	CostEvery    int            // Record and log the cost every CostEvery steps (default: 100)
	Logger       zerolog.Logger // Receives cost checkpoints at debug level (default: disabled)
}

// DefaultConfig returns the default training configuration.
func DefaultConfig() *Config {
	return &Config{
		Iterations:   2000,
		LearningRate: 0.001,
		Threshold:    0.5,
		CostEvery:    100,
		Logger:       zerolog.Nop(),
	}
}

// Model is a logistic regression classifier.
type Model struct {
	Weights []float64
	Bias    float64
	Cost    float64 // Cross-entropy cost at the last iteration
	config  *Config
	fitted  bool
	nObs    int
	costs   []float64
}

// New creates an unfitted model. A nil config uses DefaultConfig.
func New(config *Config) *Model {
	if config == nil {
		config = DefaultConfig()
	}
	return &Model{config: config}
}

// Fit trains the model on x, an n×f matrix with one example per row, and y,
// the n labels (each 0 or 1). Weights and bias start at zero.
func (m *Model) Fit(x *mat.Dense, y []float64) error {
	if err := m.validateConfig(); err != nil {
		return err
	}

	n, f := x.Dims()
	if n == 0 || f == 0 {
		return fmt.Errorf("empty design matrix: %w", stats.ErrDomain)
	}
	if n != len(y) {
		return fmt.Errorf("%d rows vs %d labels: %w", n, len(y), stats.ErrShapeMismatch)
	}
	for i, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("label %d is %v, want 0 or 1: %w", i, label, stats.ErrDomain)
		}
	}

	log := m.config.Logger.With().Str("module", "regression").Int("n_obs", n).Int("n_features", f).Logger()

	labels := mat.NewVecDense(n, append([]float64(nil), y...))
	w := mat.NewVecDense(f, nil)
	b := 0.0
	a := mat.NewVecDense(n, nil)
	var diff, grad mat.VecDense

	lr := m.config.LearningRate
	m.costs = m.costs[:0]
	cost := 0.0

	for i := 0; i < m.config.Iterations; i++ {
		// Forward pass: a = sigmoid(Xw + b)
		a.MulVec(x, w)
		cost = 0
		for j := 0; j < n; j++ {
			z := a.AtVec(j) + b
			cost += y[j]*softplus(-z) + (1-y[j])*softplus(z)
			a.SetVec(j, sigmoid(z))
		}
		cost /= float64(n)

		// Gradients: dw = Xᵀ(a-y)/n, db = Σ(a-y)/n
		diff.SubVec(a, labels)
		grad.MulVec(x.T(), &diff)
		grad.ScaleVec(1/float64(n), &grad)
		db := mat.Sum(&diff) / float64(n)

		w.AddScaledVec(w, -lr, &grad)
		b -= lr * db

		if i%m.config.CostEvery == 0 {
			m.costs = append(m.costs, cost)
			log.Debug().Int("iteration", i).Float64("cost", cost).Msg("training cost")
		}
	}

	m.Weights = mat.Col(nil, 0, w)
	m.Bias = b
	m.Cost = cost
	m.nObs = n
	m.fitted = true

	log.Debug().Float64("cost", cost).Int("iterations", m.config.Iterations).Msg("model fitted")
	return nil
}

func (m *Model) validateConfig() error {
	switch {
	case m.config.Iterations < 1:
		return fmt.Errorf("iterations must be at least 1, got %d: %w", m.config.Iterations, stats.ErrDomain)
	case !(m.config.LearningRate > 0):
		return fmt.Errorf("learning rate must be positive, got %v: %w", m.config.LearningRate, stats.ErrDomain)
	case m.config.CostEvery < 1:
		return fmt.Errorf("cost interval must be at least 1, got %d: %w", m.config.CostEvery, stats.ErrDomain)
	}
	return nil
}

// Probabilities returns P(y=1) for each row of x.
func (m *Model) Probabilities(x *mat.Dense) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}

	n, f := x.Dims()
	if n == 0 {
		return nil, fmt.Errorf("empty design matrix: %w", stats.ErrDomain)
	}
	if f != len(m.Weights) {
		return nil, fmt.Errorf("%d features vs %d weights: %w", f, len(m.Weights), stats.ErrShapeMismatch)
	}

	var z mat.VecDense
	z.MulVec(x, mat.NewVecDense(f, m.Weights))

	result := make([]float64, n)
	for i := range result {
		result[i] = sigmoid(z.AtVec(i) + m.Bias)
	}
	return result, nil
}

// Predict returns the predicted label, 0 or 1, for each row of x.
func (m *Model) Predict(x *mat.Dense) ([]float64, error) {
	probs, err := m.Probabilities(x)
	if err != nil {
		return nil, err
	}

	labels := make([]float64, len(probs))
	for i, p := range probs {
		if p > m.config.Threshold {
			labels[i] = 1
		}
	}
	return labels, nil
}

// Costs returns the recorded cost checkpoints, one every Config.CostEvery steps.
func (m *Model) Costs() []float64 {
	if !m.fitted {
		return nil
	}
	result := make([]float64, len(m.costs))
	copy(result, m.costs)
	return result
}

// Summary describes a fitted model.
type Summary struct {
	Weights      []float64
	Bias         float64
	Cost         float64
	NObs         int
	Iterations   int
	LearningRate float64
}

// Summary returns a summary of the fitted model, or nil before Fit.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	return &Summary{
		Weights:      append([]float64(nil), m.Weights...),
		Bias:         m.Bias,
		Cost:         m.Cost,
		NObs:         m.nObs,
		Iterations:   m.config.Iterations,
		LearningRate: m.config.LearningRate,
	}
}

// Accuracy returns the share of predictions that match the true labels,
// 1 - mean(|pred - true|).
func Accuracy(yTrue, yPred []float64) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, fmt.Errorf("accuracy: %d labels vs %d predictions: %w", len(yTrue), len(yPred), stats.ErrShapeMismatch)
	}
	if len(yTrue) == 0 {
		return 0, fmt.Errorf("accuracy: no labels: %w", stats.ErrDomain)
	}
	return 1 - floats.Distance(yPred, yTrue, 1)/float64(len(yTrue)), nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// softplus computes log(1 + e^x) without overflow.
func softplus(x float64) float64 {
	return math.Max(x, 0) + math.Log1p(math.Exp(-math.Abs(x)))
}
