// Package model implements a gradient-boosted decision-tree binary
// classifier on the logistic loss.
package model

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/cardwatch/fraudml/dataset"
)

// SchemaMismatchError reports prediction-time feature columns that differ
// from the columns the model was fit on.
type SchemaMismatchError struct {
	Want []string
	Got  []string
}

func (e SchemaMismatchError) Error() string {
	return fmt.Sprintf("model: fit on %d feature columns, predict called with %d (or different order)", len(e.Want), len(e.Got))
}

// Config holds the boosting hyperparameters. All fixed constants per run;
// there is no tuning loop.
type Config struct {
	Trees        int
	LearningRate float64
	MaxDepth     int
	MinLeaf      int
	Subsample    float64 // row fraction per tree; 1 disables subsampling
	Seed         int64
}

// DefaultConfig returns the hyperparameters the pipeline runs with.
func DefaultConfig() Config {
	return Config{
		Trees:        100,
		LearningRate: 0.1,
		MaxDepth:     6,
		MinLeaf:      1,
		Subsample:    1.0,
		Seed:         42,
	}
}

// GBT is a gradient-boosted tree ensemble for binary labels.
type GBT struct {
	cfg   Config
	cols  []string
	bias  float64
	trees []*node
}

// New returns an unfitted classifier.
func New(cfg Config) *GBT {
	if cfg.Trees <= 0 {
		cfg.Trees = DefaultConfig().Trees
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = DefaultConfig().LearningRate
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultConfig().MaxDepth
	}
	if cfg.MinLeaf <= 0 {
		cfg.MinLeaf = 1
	}
	if cfg.Subsample <= 0 || cfg.Subsample > 1 {
		cfg.Subsample = 1
	}
	return &GBT{cfg: cfg}
}

// Fit trains the ensemble on a labelled frame.
func (m *GBT) Fit(f *dataset.Frame, y []int) error {
	n := f.NumRows()
	if n == 0 {
		return fmt.Errorf("model: empty training frame")
	}
	if n != len(y) {
		return fmt.Errorf("model: %d rows but %d labels", n, len(y))
	}

	target := make([]float64, n)
	for i, label := range y {
		if label != 0 && label != 1 {
			return fmt.Errorf("model: label %d at row %d, want 0 or 1", label, i)
		}
		target[i] = float64(label)
	}

	// Log-odds of the base rate, clipped away from the degenerate cases.
	base := stat.Mean(target, nil)
	base = math.Min(math.Max(base, 1e-6), 1-1e-6)
	m.bias = math.Log(base / (1 - base))
	m.cols = append([]string(nil), f.Cols...)
	m.trees = m.trees[:0]

	rng := rand.New(rand.NewSource(m.cfg.Seed))
	builder := treeBuilder{maxDepth: m.cfg.MaxDepth, minLeaf: m.cfg.MinLeaf, lambda: 1.0}

	score := make([]float64, n)
	for i := range score {
		score[i] = m.bias
	}
	grad := make([]float64, n)
	hess := make([]float64, n)

	for t := 0; t < m.cfg.Trees; t++ {
		for i := range score {
			p := sigmoid(score[i])
			grad[i] = target[i] - p
			hess[i] = p * (1 - p)
		}

		idx := m.sampleRows(rng, n)
		tree := builder.build(f.X, grad, hess, idx, 0)
		m.trees = append(m.trees, tree)

		for i, row := range f.X {
			score[i] += m.cfg.LearningRate * tree.predict(row)
		}
	}
	return nil
}

func (m *GBT) sampleRows(rng *rand.Rand, n int) []int {
	if m.cfg.Subsample >= 1 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	keep := int(float64(n) * m.cfg.Subsample)
	if keep < 1 {
		keep = 1
	}
	perm := rng.Perm(n)
	return perm[:keep]
}

// PredictProba returns the positive-class score per row.
func (m *GBT) PredictProba(f *dataset.Frame) ([]float64, error) {
	if len(m.trees) == 0 {
		return nil, fmt.Errorf("model: not fitted")
	}
	if !sameSchema(m.cols, f.Cols) {
		return nil, SchemaMismatchError{Want: m.cols, Got: f.Cols}
	}

	out := make([]float64, f.NumRows())
	for i, row := range f.X {
		score := m.bias
		for _, tree := range m.trees {
			score += m.cfg.LearningRate * tree.predict(row)
		}
		out[i] = sigmoid(score)
	}
	return out, nil
}

// Predict returns hard labels at the 0.5 threshold.
func (m *GBT) Predict(f *dataset.Frame) ([]int, error) {
	return m.PredictThreshold(f, 0.5)
}

// PredictThreshold returns hard labels at the given score threshold.
func (m *GBT) PredictThreshold(f *dataset.Frame, threshold float64) ([]int, error) {
	proba, err := m.PredictProba(f)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(proba))
	for i, p := range proba {
		if p >= threshold {
			out[i] = 1
		}
	}
	return out, nil
}

func sameSchema(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
