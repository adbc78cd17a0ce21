// Package sample balances and partitions labelled feature frames.
package sample

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/cardwatch/fraudml/dataset"
)

// DefaultNeighbors is the nearest-neighbor count used when SMOTE.Neighbors
// is zero.
const DefaultNeighbors = 5

// InsufficientSamplesError reports a minority class too small to
// interpolate from.
type InsufficientSamplesError struct {
	Class int
	Count int
}

func (e InsufficientSamplesError) Error() string {
	return fmt.Sprintf("sample: class %d has %d members, need at least 2 to oversample", e.Class, e.Count)
}

// SMOTE oversamples the minority class by interpolating between minority
// rows and their nearest minority neighbors until class counts are equal.
// The neighbor count is clamped to minority size minus one, so small
// minorities still balance as long as they have at least two members.
type SMOTE struct {
	Neighbors int
	Seed      int64
}

// Balance returns a new frame and label slice with equal class support.
// Original rows come first in their input order, synthetic rows after.
// The input frame is never modified.
func (s SMOTE) Balance(f *dataset.Frame, y []int) (*dataset.Frame, []int, error) {
	if f.NumRows() != len(y) {
		return nil, nil, fmt.Errorf("sample: %d rows but %d labels", f.NumRows(), len(y))
	}

	var pos, neg []int
	for i, label := range y {
		if label == 1 {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}

	minority, minorityClass := pos, 1
	if len(neg) < len(pos) {
		minority, minorityClass = neg, 0
	}
	need := int(math.Abs(float64(len(pos) - len(neg))))

	out := f.Clone()
	outY := append([]int(nil), y...)
	if need == 0 {
		return out, outY, nil
	}
	if len(minority) < 2 {
		return nil, nil, InsufficientSamplesError{Class: minorityClass, Count: len(minority)}
	}

	k := s.Neighbors
	if k <= 0 {
		k = DefaultNeighbors
	}
	if k > len(minority)-1 {
		k = len(minority) - 1
	}

	neighbors := nearestNeighbors(f.X, minority, k)
	rng := rand.New(rand.NewSource(s.Seed))

	for i := 0; i < need; i++ {
		base := rng.Intn(len(minority))
		nb := neighbors[base][rng.Intn(k)]
		gap := rng.Float64()

		src := f.X[minority[base]]
		dst := f.X[nb]
		synth := make([]float64, len(src))
		for j := range src {
			synth[j] = src[j] + gap*(dst[j]-src[j])
		}
		out.X = append(out.X, synth)
		outY = append(outY, minorityClass)
	}

	return out, outY, nil
}

// nearestNeighbors returns, for each minority row, the k nearest other
// minority rows by Euclidean distance. O(m^2) which is fine at the minority
// sizes this pipeline sees.
func nearestNeighbors(x [][]float64, minority []int, k int) [][]int {
	type cand struct {
		idx  int
		dist float64
	}

	out := make([][]int, len(minority))
	for a, ia := range minority {
		cands := make([]cand, 0, len(minority)-1)
		for b, ib := range minority {
			if a == b {
				continue
			}
			cands = append(cands, cand{idx: ib, dist: euclidean(x[ia], x[ib])})
		}
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].dist != cands[j].dist {
				return cands[i].dist < cands[j].dist
			}
			return cands[i].idx < cands[j].idx
		})
		nn := make([]int, k)
		for i := 0; i < k; i++ {
			nn[i] = cands[i].idx
		}
		out[a] = nn
	}
	return out
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for j := range a {
		d := a[j] - b[j]
		sum += d * d
	}
	return math.Sqrt(sum)
}
