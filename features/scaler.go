package features

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/cardwatch/fraudml/dataset"
)

// Scaler standardizes feature columns with mean/std-dev fit on training data.
// Fit once, then applied unchanged to validation and test frames.
type Scaler struct {
	Cols []string
	Mean []float64
	Std  []float64
}

// FitScaler computes per-column mean and standard deviation from f.
func FitScaler(f *dataset.Frame) (*Scaler, error) {
	if f.NumRows() == 0 {
		return nil, fmt.Errorf("features: cannot fit scaler on empty frame")
	}

	nCols := len(f.Cols)
	s := &Scaler{
		Cols: append([]string(nil), f.Cols...),
		Mean: make([]float64, nCols),
		Std:  make([]float64, nCols),
	}

	col := make([]float64, f.NumRows())
	for j := 0; j < nCols; j++ {
		for i, row := range f.X {
			col[i] = row[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 || f.NumRows() < 2 {
			std = 1 // constant column, leave values centered only
		}
		s.Mean[j] = mean
		s.Std[j] = std
	}
	return s, nil
}

// Transform returns a standardized copy of f. The frame's columns must match
// the columns the scaler was fit on.
func (s *Scaler) Transform(f *dataset.Frame) (*dataset.Frame, error) {
	if len(f.Cols) != len(s.Cols) {
		return nil, fmt.Errorf("features: scaler fit on %d columns, frame has %d", len(s.Cols), len(f.Cols))
	}
	for j, c := range s.Cols {
		if f.Cols[j] != c {
			return nil, fmt.Errorf("features: scaler column %d is %q, frame has %q", j, c, f.Cols[j])
		}
	}

	out := f.Clone()
	for _, row := range out.X {
		for j := range row {
			row[j] = (row[j] - s.Mean[j]) / s.Std[j]
		}
	}
	return out, nil
}
