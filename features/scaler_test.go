package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/cardwatch/fraudml/dataset"
)

func TestScalerTrainStats(t *testing.T) {
	t.Parallel()

	train := &dataset.Frame{
		Cols: []string{"a", "b"},
		X: [][]float64{
			{1, 100},
			{2, 200},
			{3, 300},
			{4, 400},
			{5, 500},
		},
	}

	s, err := FitScaler(train)
	require.NoError(t, err)

	scaled, err := s.Transform(train)
	require.NoError(t, err)

	for j := range scaled.Cols {
		col := make([]float64, scaled.NumRows())
		for i, row := range scaled.X {
			col[i] = row[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		assert.InDelta(t, 0.0, mean, 1e-9)
		assert.InDelta(t, 1.0, std, 1e-9)
	}
}

func TestScalerFrozenOnValidation(t *testing.T) {
	t.Parallel()

	train := &dataset.Frame{Cols: []string{"a"}, X: [][]float64{{0}, {10}}}
	val := &dataset.Frame{Cols: []string{"a"}, X: [][]float64{{20}, {30}}}

	s, err := FitScaler(train)
	require.NoError(t, err)

	scaledVal, err := s.Transform(val)
	require.NoError(t, err)

	// Validation uses train statistics (mean 5, sample std ~7.071), so its
	// own mean is far from zero.
	mean := stat.Mean([]float64{scaledVal.X[0][0], scaledVal.X[1][0]}, nil)
	assert.Greater(t, mean, 1.0)

	// Transform does not mutate its input.
	assert.Equal(t, 20.0, val.X[0][0])
}

func TestScalerConstantColumn(t *testing.T) {
	t.Parallel()

	train := &dataset.Frame{Cols: []string{"a"}, X: [][]float64{{7}, {7}, {7}}}
	s, err := FitScaler(train)
	require.NoError(t, err)

	scaled, err := s.Transform(train)
	require.NoError(t, err)
	for _, row := range scaled.X {
		assert.Equal(t, 0.0, row[0])
	}
}

func TestScalerColumnMismatch(t *testing.T) {
	t.Parallel()

	train := &dataset.Frame{Cols: []string{"a", "b"}, X: [][]float64{{1, 2}}}
	s, err := FitScaler(train)
	require.NoError(t, err)

	_, err = s.Transform(&dataset.Frame{Cols: []string{"a"}, X: [][]float64{{1}}})
	assert.Error(t, err)

	_, err = s.Transform(&dataset.Frame{Cols: []string{"b", "a"}, X: [][]float64{{1, 2}}})
	assert.Error(t, err)
}
