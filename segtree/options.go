// SPDX-License-Identifier: MIT

package segtree

import "fmt"

// Strategy selects how Query and Update walk the tree.
type Strategy int

const (
	// Recursive walks the tree with plain recursion (depth O(log N)).
	Recursive Strategy = iota

	// Iterative walks the tree with an explicit stack.
	Iterative
)

// DefaultStrategy is the walk used when no WithStrategy option is given.
const DefaultStrategy = Recursive

const panicStrategyInvalid = "segtree: WithStrategy: unknown strategy"

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Recursive:
		return "recursive"
	case Iterative:
		return "iterative"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "recursive" or "iterative" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "recursive":
		return Recursive, nil
	case "iterative":
		return Iterative, nil
	default:
		return 0, fmt.Errorf("segtree: unknown strategy %q", name)
	}
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective tree configuration.
type Options struct {
	strategy Strategy
}

// WithStrategy selects the tree walk. Both walks produce identical results.
// Panics on a value that is neither Recursive nor Iterative (programmer error).
func WithStrategy(s Strategy) Option {
	if s != Recursive && s != Iterative {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{strategy: DefaultStrategy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
