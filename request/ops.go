// SPDX-License-Identifier: MIT

package request

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/affinetree/affine"
)

// Transformation names accepted in the stream. Matching is case-insensitive.
const (
	OpTranslate = "Translate"
	OpScale     = "Scale"
	OpRotate    = "Rotate"
)

// OpArity returns how many numeric parameters the named transformation takes.
func OpArity(name string) (int, error) {
	switch canonical(name) {
	case OpTranslate, OpScale:
		return 2, nil
	case OpRotate:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
}

// FromOp builds the transformation named by name from params.
//
// Errors:
//   - ErrUnknownOp if name is not Translate, Scale or Rotate.
//   - ErrArity if len(params) does not match the operation.
func FromOp(name string, params []float64) (affine.Transform, error) {
	want, err := OpArity(name)
	if err != nil {
		return affine.Transform{}, err
	}
	if len(params) != want {
		return affine.Transform{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, canonical(name), want, len(params))
	}

	switch canonical(name) {
	case OpTranslate:
		return affine.Translate(params[0], params[1]), nil
	case OpScale:
		return affine.Scale(params[0], params[1]), nil
	default:
		return affine.Rotate(params[0]), nil
	}
}

// ParseOp parses a single "Name p1 p2 ..." string.
func ParseOp(s string) (affine.Transform, error) {
	d := NewDecoder(strings.NewReader(s))
	t, err := d.Transform()
	if err != nil {
		return affine.Transform{}, err
	}
	if tok, ok := d.peekExtra(); ok {
		return affine.Transform{}, fmt.Errorf("%w: trailing token %q", ErrArity, tok)
	}

	return t, nil
}

func canonical(name string) string {
	for _, op := range []string{OpTranslate, OpScale, OpRotate} {
		if strings.EqualFold(name, op) {
			return op
		}
	}

	return name
}
