// SPDX-License-Identifier: MIT

// Package affine implements the algebra of two-dimensional affine transformations.
//
// 🚀 What is an affine transformation?
//
//	A map of the plane that combines a linear part (rotation, scale, shear)
//	with a translation:
//
//	    (x, y) ↦ (A·x + B·y + C, D·x + E·y + F)
//
//	which is the 3×3 homogeneous matrix
//
//	    | A  B  C |
//	    | D  E  F |
//	    | 0  0  1 |
//
//	with the constant bottom row dropped.
//
// ✨ Key properties:
//   - Transforms form a monoid under Compose with Identity as neutral element.
//   - Compose is associative but NOT commutative.
//   - Compose(later, earlier) applies earlier first, then later.
//   - Every operation is pure and returns a new value.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/affinetree/affine"
//
//	t := affine.Translate(5, 0).Then(affine.Rotate(90)).Then(affine.Scale(2, 2))
//	p := t.Apply(affine.Point{X: 1, Y: 0}) // (0, 12)
//
// Performance:
//
//   - Compose: 12 multiplications, 8 additions.
//   - Apply:   4 multiplications, 4 additions.
//
// Zero or near-zero scale factors are valid and collapse a dimension; nothing in
// this package treats them as errors. Detecting non-finite results is left to
// the caller (see IsFinite).
package affine
