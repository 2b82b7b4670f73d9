// SPDX-License-Identifier: MIT

// Package request drives a segtree.Tree from a whitespace-separated request stream.
//
// Format:
//
//	N Q
//	<N transformations>
//	<Q requests>
//
// where a transformation is one of
//
//	Translate dx dy
//	Scale sx sy
//	Rotate degrees
//
// and a request is either
//
//	Q x y l r           apply transformations l..r (inclusive) to (x, y)
//	U pos <transformation>
//
// Each query prints one line "(x,y): <new_x> <new_y>" with Config.Precision
// decimals. Indices in the stream are shifted by Config.IndexBase before they
// reach the tree, so the tree itself is always 0-based.
//
// Tokens may be split across lines arbitrarily; only whitespace separates them.
package request
