// SPDX-License-Identifier: MIT

package segtree

import (
	"github.com/katalvlaran/affinetree/affine"
)

// Query returns the single transformation equivalent to applying, in index
// order, every transformation in [l, r] (0-based, inclusive).
//
// Implementation:
//   - Stage 1: l > r is the empty range and returns affine.Identity().
//   - Stage 2: validate 0 ≤ l and r < N.
//   - Stage 3: decompose [l,r] into maximal node-covered pieces, visiting only
//     children that intersect the range, and combine each pair as
//     Compose(rightPartial, leftPartial).
//
// Errors:
//   - ErrOutOfRange (wrapped) if l ≤ r and either bound lies outside [0, N-1].
//
// Complexity:
//   - Time O(log N) node visits, Space O(log N).
func (t *Tree) Query(l, r int) (affine.Transform, error) {
	if l > r {
		return affine.Identity(), nil
	}
	if l < 0 || r >= t.n {
		return affine.Transform{}, treeErrorf("Query", ErrOutOfRange, l, r)
	}

	return t.query(l, r, nil), nil
}

// QueryPoint applies Query(l, r) to p.
func (t *Tree) QueryPoint(l, r int, p affine.Point) (affine.Point, error) {
	tr, err := t.Query(l, r)
	if err != nil {
		return affine.Point{}, err
	}

	return tr.Apply(p), nil
}

// query dispatches on strategy. visits, when non-nil, counts nodes touched.
func (t *Tree) query(l, r int, visits *int) affine.Transform {
	if t.strategy == Iterative {
		return t.queryIter(l, r, visits)
	}

	return t.queryRec(0, 0, t.n-1, l, r, visits)
}

// queryRec requires tl ≤ l ≤ r ≤ tr.
func (t *Tree) queryRec(v, tl, tr, l, r int, visits *int) affine.Transform {
	if visits != nil {
		*visits++
	}
	if l == tl && r == tr {
		return t.nodes[v]
	}
	tm := tl + (tr-tl)/2
	switch {
	case r <= tm:
		return t.queryRec(2*v+1, tl, tm, l, r, visits)
	case l > tm:
		return t.queryRec(2*v+2, tm+1, tr, l, r, visits)
	default:
		leftRes := t.queryRec(2*v+1, tl, tm, l, tm, visits)
		rightRes := t.queryRec(2*v+2, tm+1, tr, tm+1, r, visits)

		return affine.Compose(rightRes, leftRes)
	}
}

// frame is one pending node of the iterative walk, with the query clipped to it.
type frame struct {
	v, tl, tr int
	l, r      int
}

// queryIter walks the covering nodes left to right with an explicit stack,
// folding each into acc as Compose(node, acc).
func (t *Tree) queryIter(l, r int, visits *int) affine.Transform {
	acc := affine.Identity()
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{v: 0, tl: 0, tr: t.n - 1, l: l, r: r})
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visits != nil {
			*visits++
		}
		if f.l == f.tl && f.r == f.tr {
			acc = affine.Compose(t.nodes[f.v], acc)

			continue
		}
		tm := f.tl + (f.tr-f.tl)/2
		// Push right before left so the lower-index piece is folded first.
		if f.r > tm {
			stack = append(stack, frame{v: 2*f.v + 2, tl: tm + 1, tr: f.tr, l: max(f.l, tm+1), r: f.r})
		}
		if f.l <= tm {
			stack = append(stack, frame{v: 2*f.v + 1, tl: f.tl, tr: tm, l: f.l, r: min(f.r, tm)})
		}
	}

	return acc
}
