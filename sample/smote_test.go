package sample

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwatch/fraudml/dataset"
)

func frame(rows ...[]float64) *dataset.Frame {
	cols := make([]string, len(rows[0]))
	for i := range cols {
		cols[i] = string(rune('a' + i))
	}
	return &dataset.Frame{Cols: cols, X: rows}
}

func countClasses(y []int) (neg, pos int) {
	for _, v := range y {
		if v == 1 {
			pos++
		} else {
			neg++
		}
	}
	return neg, pos
}

func TestBalanceEqualizesClasses(t *testing.T) {
	t.Parallel()

	// 8 negatives, 2 positives.
	f := frame(
		[]float64{0, 0}, []float64{0, 1}, []float64{1, 0}, []float64{1, 1},
		[]float64{0, 2}, []float64{2, 0}, []float64{2, 2}, []float64{1, 2},
		[]float64{10, 10}, []float64{11, 11},
	)
	y := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}

	bf, by, err := SMOTE{Neighbors: 5, Seed: 42}.Balance(f, y)
	require.NoError(t, err)

	assert.Equal(t, 16, bf.NumRows())
	neg, pos := countClasses(by)
	assert.Equal(t, 8, neg)
	assert.Equal(t, 8, pos)

	// Originals first, untouched, in input order.
	for i := range f.X {
		assert.Equal(t, f.X[i], bf.X[i])
		assert.Equal(t, y[i], by[i])
	}

	// Synthetic rows interpolate between the two positives, so they stay on
	// the segment between (10,10) and (11,11).
	for i := len(f.X); i < bf.NumRows(); i++ {
		assert.Equal(t, 1, by[i])
		for j := range bf.X[i] {
			assert.GreaterOrEqual(t, bf.X[i][j], 10.0)
			assert.LessOrEqual(t, bf.X[i][j], 11.0)
		}
	}
}

func TestBalanceDeterministic(t *testing.T) {
	t.Parallel()

	f := frame(
		[]float64{0, 0}, []float64{0, 1}, []float64{1, 0}, []float64{1, 1},
		[]float64{9, 9}, []float64{10, 10}, []float64{11, 9},
	)
	y := []int{0, 0, 0, 0, 1, 1, 1}

	a, ay, err := SMOTE{Seed: 7}.Balance(f, y)
	require.NoError(t, err)
	b, by, err := SMOTE{Seed: 7}.Balance(f, y)
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, ay, by)

	c, _, err := SMOTE{Seed: 8}.Balance(f, y)
	require.NoError(t, err)
	assert.NotEqual(t, a.X, c.X)
}

func TestBalanceAlreadyBalanced(t *testing.T) {
	t.Parallel()

	f := frame([]float64{0}, []float64{10})
	y := []int{0, 1}

	bf, by, err := SMOTE{Seed: 1}.Balance(f, y)
	require.NoError(t, err)
	assert.Equal(t, f.X, bf.X)
	assert.Equal(t, y, by)
}

func TestBalanceInsufficientSamples(t *testing.T) {
	t.Parallel()

	f := frame([]float64{0}, []float64{1}, []float64{2}, []float64{10})
	y := []int{0, 0, 0, 1}

	_, _, err := SMOTE{Seed: 1}.Balance(f, y)
	var insufficient InsufficientSamplesError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 1, insufficient.Class)
	assert.Equal(t, 1, insufficient.Count)
}

func TestBalanceNegativeMinority(t *testing.T) {
	t.Parallel()

	f := frame([]float64{0}, []float64{1}, []float64{10}, []float64{11}, []float64{12})
	y := []int{0, 0, 1, 1, 1}

	_, by, err := SMOTE{Seed: 3}.Balance(f, y)
	require.NoError(t, err)
	neg, pos := countClasses(by)
	assert.Equal(t, 3, neg)
	assert.Equal(t, 3, pos)
}
