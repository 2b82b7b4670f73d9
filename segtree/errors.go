// SPDX-License-Identifier: MIT

package segtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySequence indicates New was called with zero transformations.
	ErrEmptySequence = errors.New("segtree: sequence must contain at least one transformation")

	// ErrOutOfRange indicates a position or range bound outside [0, N-1].
	ErrOutOfRange = errors.New("segtree: index out of range")
)

// treeErrorf wraps err with the Tree method name and its index arguments.
func treeErrorf(method string, err error, idx ...int) error {
	switch len(idx) {
	case 1:
		return fmt.Errorf("Tree.%s(%d): %w", method, idx[0], err)
	case 2:
		return fmt.Errorf("Tree.%s(%d,%d): %w", method, idx[0], idx[1], err)
	default:
		return fmt.Errorf("Tree.%s: %w", method, err)
	}
}
