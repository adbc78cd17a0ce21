package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwatch/fraudml/dataset"
)

func balancedFrame(n int) (*dataset.Frame, []int) {
	f := &dataset.Frame{Cols: []string{"a"}}
	var y []int
	for i := 0; i < n; i++ {
		f.X = append(f.X, []float64{float64(i)})
		y = append(y, i%2)
	}
	return f, y
}

func TestStratifiedSplitProportions(t *testing.T) {
	t.Parallel()

	f, y := balancedFrame(100)
	sp, err := StratifiedSplit(f, y, 0.8, 42)
	require.NoError(t, err)

	assert.Equal(t, 80, sp.TrainX.NumRows())
	assert.Equal(t, 20, sp.ValX.NumRows())

	trainNeg, trainPos := countClasses(sp.TrainY)
	valNeg, valPos := countClasses(sp.ValY)
	assert.Equal(t, 40, trainNeg)
	assert.Equal(t, 40, trainPos)
	assert.Equal(t, 10, valNeg)
	assert.Equal(t, 10, valPos)
}

func TestStratifiedSplitSmallBalanced(t *testing.T) {
	t.Parallel()

	// The 8/8 case from a balanced 10-row 8/2 table: 80/20 puts 6 of each
	// class in train and 2 of each in validation.
	f, y := balancedFrame(16)
	sp, err := StratifiedSplit(f, y, 0.8, 1)
	require.NoError(t, err)

	trainNeg, trainPos := countClasses(sp.TrainY)
	valNeg, valPos := countClasses(sp.ValY)
	assert.Equal(t, trainNeg, trainPos)
	assert.Equal(t, valNeg, valPos)
	assert.Equal(t, 16, sp.TrainX.NumRows()+sp.ValX.NumRows())
}

func TestStratifiedSplitDeterministic(t *testing.T) {
	t.Parallel()

	f, y := balancedFrame(40)
	a, err := StratifiedSplit(f, y, 0.75, 9)
	require.NoError(t, err)
	b, err := StratifiedSplit(f, y, 0.75, 9)
	require.NoError(t, err)

	assert.Equal(t, a.TrainX.X, b.TrainX.X)
	assert.Equal(t, a.ValX.X, b.ValX.X)
}

func TestStratifiedSplitNoRowLost(t *testing.T) {
	t.Parallel()

	f, y := balancedFrame(31)
	sp, err := StratifiedSplit(f, y, 0.8, 5)
	require.NoError(t, err)

	seen := map[float64]bool{}
	for _, row := range sp.TrainX.X {
		seen[row[0]] = true
	}
	for _, row := range sp.ValX.X {
		seen[row[0]] = true
	}
	assert.Len(t, seen, 31)
}

func TestStratifiedSplitBadRatio(t *testing.T) {
	t.Parallel()

	f, y := balancedFrame(10)
	_, err := StratifiedSplit(f, y, 0, 1)
	assert.Error(t, err)
	_, err = StratifiedSplit(f, y, 1, 1)
	assert.Error(t, err)
}
