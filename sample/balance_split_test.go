package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwatch/fraudml/dataset"
)

// Balancing a skewed 10-row table then splitting it is the canonical flow;
// this exercises the two stages together.
func TestBalanceThenSplit(t *testing.T) {
	t.Parallel()

	f := &dataset.Frame{Cols: []string{"a", "b"}}
	y := make([]int, 0, 10)
	for i := 0; i < 8; i++ {
		f.X = append(f.X, []float64{float64(i), float64(-i)})
		y = append(y, 0)
	}
	f.X = append(f.X, []float64{50, 50}, []float64{52, 52})
	y = append(y, 1, 1)

	bf, by, err := SMOTE{Neighbors: 5, Seed: 42}.Balance(f, y)
	require.NoError(t, err)
	require.Equal(t, 16, bf.NumRows())
	neg, pos := countClasses(by)
	assert.Equal(t, 8, neg)
	assert.Equal(t, 8, pos)

	sp, err := StratifiedSplit(bf, by, 0.8, 42)
	require.NoError(t, err)

	trainNeg, trainPos := countClasses(sp.TrainY)
	valNeg, valPos := countClasses(sp.ValY)
	assert.Equal(t, 6, trainNeg)
	assert.Equal(t, 6, trainPos)
	assert.Equal(t, 2, valNeg)
	assert.Equal(t, 2, valPos)
}
