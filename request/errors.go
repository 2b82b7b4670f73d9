// SPDX-License-Identifier: MIT

package request

import "errors"

var (
	// ErrUnknownOp indicates an unrecognised transformation name.
	ErrUnknownOp = errors.New("request: unrecognized transformation")

	// ErrArity indicates a transformation was given the wrong number of parameters.
	ErrArity = errors.New("request: wrong number of transformation parameters")

	// ErrMalformed indicates a token that cannot be parsed where it appears.
	ErrMalformed = errors.New("request: malformed input")

	// ErrBadConfig indicates an invalid Config value.
	ErrBadConfig = errors.New("request: invalid config")

	// ErrNonFinite indicates a query produced NaN or ±Inf and the config rejects it.
	ErrNonFinite = errors.New("request: non-finite result")
)
