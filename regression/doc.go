// Package regression implements binary logistic regression trained by gradient descent.
//
// # Basic Usage
//
// Rows of the design matrix are examples, columns are features:
//
//	x := mat.NewDense(6, 1, []float64{-3, -2, -1, 1, 2, 3})
//	y := []float64{0, 0, 0, 1, 1, 1}
//
//	model := regression.New(nil) // DefaultConfig: 2000 steps, learning rate 0.001
//	if err := model.Fit(x, y); err != nil {
//	    log.Fatal(err)
//	}
//
//	pred, _ := model.Predict(x)
//	acc, _ := regression.Accuracy(y, pred)
//
// # Training Progress
//
// The cost is recorded every Config.CostEvery steps and is available through
// Costs. Set Config.Logger to see the checkpoints as debug events:
//
//	cfg := regression.DefaultConfig()
//	cfg.Logger = zerolog.New(os.Stderr).Level(zerolog.DebugLevel)
//	model := regression.New(cfg)
package regression
