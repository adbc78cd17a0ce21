package model

import "sort"

// node is one regression-tree node. Leaves carry the Newton-step value for
// the boosted logistic objective.
type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	leaf      bool
	value     float64
}

type treeBuilder struct {
	maxDepth int
	minLeaf  int
	lambda   float64
}

// build grows a regression tree over the rows in idx, fitting the gradient
// and hessian of the logistic loss. Exact greedy splits, no binning.
func (b treeBuilder) build(x [][]float64, grad, hess []float64, idx []int, depth int) *node {
	if depth >= b.maxDepth || len(idx) <= b.minLeaf {
		return b.makeLeaf(grad, hess, idx)
	}

	feature, threshold, gain := b.bestSplit(x, grad, hess, idx)
	if gain <= 0 {
		return b.makeLeaf(grad, hess, idx)
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] < threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < b.minLeaf || len(right) < b.minLeaf {
		return b.makeLeaf(grad, hess, idx)
	}

	return &node{
		feature:   feature,
		threshold: threshold,
		left:      b.build(x, grad, hess, left, depth+1),
		right:     b.build(x, grad, hess, right, depth+1),
	}
}

func (b treeBuilder) makeLeaf(grad, hess []float64, idx []int) *node {
	var g, h float64
	for _, i := range idx {
		g += grad[i]
		h += hess[i]
	}
	return &node{leaf: true, value: g / (h + b.lambda)}
}

// bestSplit scans every feature for the split maximizing the regularized
// gain. Returns gain <= 0 when no split improves on the parent.
func (b treeBuilder) bestSplit(x [][]float64, grad, hess []float64, idx []int) (int, float64, float64) {
	var gTotal, hTotal float64
	for _, i := range idx {
		gTotal += grad[i]
		hTotal += hess[i]
	}
	parent := gTotal * gTotal / (hTotal + b.lambda)

	bestFeature, bestThreshold, bestGain := -1, 0.0, 0.0

	order := make([]int, len(idx))
	for f := 0; f < len(x[idx[0]]); f++ {
		copy(order, idx)
		sort.Slice(order, func(i, j int) bool { return x[order[i]][f] < x[order[j]][f] })

		var gLeft, hLeft float64
		for pos := 0; pos < len(order)-1; pos++ {
			i := order[pos]
			gLeft += grad[i]
			hLeft += hess[i]

			cur, next := x[i][f], x[order[pos+1]][f]
			if cur == next {
				continue
			}
			if pos+1 < b.minLeaf || len(order)-pos-1 < b.minLeaf {
				continue
			}

			gRight := gTotal - gLeft
			hRight := hTotal - hLeft
			gain := gLeft*gLeft/(hLeft+b.lambda) + gRight*gRight/(hRight+b.lambda) - parent
			if gain > bestGain {
				bestFeature = f
				bestThreshold = (cur + next) / 2
				bestGain = gain
			}
		}
	}

	return bestFeature, bestThreshold, bestGain
}

func (n *node) predict(row []float64) float64 {
	for !n.leaf {
		if row[n.feature] < n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}
