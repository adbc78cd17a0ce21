package sample

import (
	"fmt"
	"math/rand"

	"github.com/cardwatch/fraudml/dataset"
)

// Split holds a stratified train/validation partition.
type Split struct {
	TrainX *dataset.Frame
	TrainY []int
	ValX   *dataset.Frame
	ValY   []int
}

// StratifiedSplit partitions a labelled frame so each class keeps the given
// train proportion, shuffling within each class with the seed. Row order
// within each subset follows the shuffled class order (negatives first).
func StratifiedSplit(f *dataset.Frame, y []int, trainRatio float64, seed int64) (Split, error) {
	if f.NumRows() != len(y) {
		return Split{}, fmt.Errorf("sample: %d rows but %d labels", f.NumRows(), len(y))
	}
	if trainRatio <= 0 || trainRatio >= 1 {
		return Split{}, fmt.Errorf("sample: train ratio must be in (0,1), got %v", trainRatio)
	}

	byClass := map[int][]int{}
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}

	rng := rand.New(rand.NewSource(seed))

	var trainIdx, valIdx []int
	for _, class := range []int{0, 1} {
		idx := byClass[class]
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		cut := int(float64(len(idx)) * trainRatio)
		trainIdx = append(trainIdx, idx[:cut]...)
		valIdx = append(valIdx, idx[cut:]...)
	}

	return Split{
		TrainX: take(f, trainIdx),
		TrainY: takeLabels(y, trainIdx),
		ValX:   take(f, valIdx),
		ValY:   takeLabels(y, valIdx),
	}, nil
}

func take(f *dataset.Frame, idx []int) *dataset.Frame {
	x := make([][]float64, len(idx))
	for i, r := range idx {
		row := make([]float64, len(f.X[r]))
		copy(row, f.X[r])
		x[i] = row
	}
	return &dataset.Frame{Cols: append([]string(nil), f.Cols...), X: x}
}

func takeLabels(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, r := range idx {
		out[i] = y[r]
	}
	return out
}
