// SPDX-License-Identifier: MIT

package segtree

import (
	"github.com/katalvlaran/affinetree/affine"
)

// Update replaces the transformation at pos with tr and recomputes every
// ancestor of that leaf, from its parent up to the root.
//
// Behavior highlights:
//   - The previous value is discarded; no history is kept.
//   - Out-of-range pos fails fast; the tree is left untouched.
//
// Errors:
//   - ErrOutOfRange (wrapped) if pos ∉ [0, N-1].
//
// Complexity:
//   - Time O(log N), Space O(log N) for the walk.
func (t *Tree) Update(pos int, tr affine.Transform) error {
	if pos < 0 || pos >= t.n {
		return treeErrorf("Update", ErrOutOfRange, pos)
	}
	if t.strategy == Iterative {
		t.updateIter(pos, tr)
	} else {
		t.updateRec(0, 0, t.n-1, pos, tr)
	}

	return nil
}

func (t *Tree) updateRec(v, tl, tr, pos int, val affine.Transform) {
	if tl == tr {
		t.nodes[v] = val

		return
	}
	tm := tl + (tr-tl)/2
	if pos <= tm {
		t.updateRec(2*v+1, tl, tm, pos, val)
	} else {
		t.updateRec(2*v+2, tm+1, tr, pos, val)
	}
	t.pull(v)
}

// updateIter descends to the leaf recording the path, then pulls each
// ancestor in leaf-to-root order.
func (t *Tree) updateIter(pos int, val affine.Transform) {
	path := make([]int, 0, 64)
	v, tl, tr := 0, 0, t.n-1
	for tl != tr {
		path = append(path, v)
		tm := tl + (tr-tl)/2
		if pos <= tm {
			v, tr = 2*v+1, tm
		} else {
			v, tl = 2*v+2, tm+1
		}
	}
	t.nodes[v] = val
	for i := len(path) - 1; i >= 0; i-- {
		t.pull(path[i])
	}
}
