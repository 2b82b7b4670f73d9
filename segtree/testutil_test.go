// SPDX-License-Identifier: MIT

package segtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affinetree/affine"
	"github.com/katalvlaran/affinetree/segtree"
)

// tol is loose enough for long chains of bounded transforms.
const tol = 1e-6

var strategies = []segtree.Strategy{segtree.Recursive, segtree.Iterative}

// randomOp draws one of the three request-level transforms with random parameters.
// Scale factors stay near 1 so long products remain well conditioned.
func randomOp(rng *rand.Rand) affine.Transform {
	switch rng.Intn(3) {
	case 0:
		return affine.Translate(rng.Float64()*10-5, rng.Float64()*10-5)
	case 1:
		return affine.Scale(0.9+rng.Float64()*0.2, 0.9+rng.Float64()*0.2)
	default:
		return affine.Rotate(rng.Float64()*720 - 360)
	}
}

func randomSeq(rng *rand.Rand, n int) []affine.Transform {
	seq := make([]affine.Transform, n)
	for i := range seq {
		seq[i] = randomOp(rng)
	}

	return seq
}

// bruteApply applies seq[l..r] one by one in index order.
func bruteApply(seq []affine.Transform, l, r int, p affine.Point) affine.Point {
	for i := l; i <= r; i++ {
		p = seq[i].Apply(p)
	}

	return p
}

// mustTree builds a tree or fails the test.
func mustTree(t testing.TB, seq []affine.Transform, opts ...segtree.Option) *segtree.Tree {
	t.Helper()
	tree, err := segtree.New(seq, opts...)
	require.NoError(t, err)

	return tree
}

// assertPointNear compares two points with a tolerance relative to their magnitude.
func assertPointNear(t *testing.T, want, got affine.Point, msgAndArgs ...interface{}) {
	t.Helper()
	scale := 1 + max(abs(want.X), abs(want.Y))
	assert.InDelta(t, want.X, got.X, tol*scale, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol*scale, msgAndArgs...)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
