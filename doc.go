// Package affinetree keeps a sequence of 2D affine transformations and answers
// "apply transformations l..r to this point" in logarithmic time.
//
// 🚀 What is affinetree?
//
//	A small, dependency-light library plus CLI that brings together:
//		• affine/  — the transformation algebra (Translate, Scale, Rotate, Compose, Apply)
//		• segtree/ — the Composition Tree: build O(N), Update O(log N), Query O(log N)
//		• request/ — a line-oriented request protocol and runner on top of the tree
//		• cmd/affinetree — the command-line driver
//
// ✨ The one rule that matters:
//
//	Affine maps do not commute. Transformations at higher indices are applied
//	after lower ones, so every merge is Compose(laterRange, earlierRange).
//
// Quick example:
//
//	[Translate(5,0), Rotate(90), Scale(2,2)] applied to (1,0)
//	  → (6,0) → (0,6) → (0,12)
//
//	go install github.com/katalvlaran/affinetree/cmd/affinetree@latest
package affinetree
