// SPDX-License-Identifier: MIT

package request_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/affinetree/affine"
	"github.com/katalvlaran/affinetree/request"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in, out   affine.Point
		precision int
		want      string
	}{
		{affine.Point{X: 1, Y: 0}, affine.Point{X: 0, Y: 12}, 5, "(1,0): 0.00000 12.00000"},
		{affine.Point{X: -2, Y: 3.5}, affine.Point{X: 1.234567, Y: -9.87654321}, 3, "(-2,3.5): 1.235 -9.877"},
		{affine.Point{X: 1, Y: 1}, affine.Point{X: -1e-12, Y: -0.0}, 5, "(1,1): 0.00000 0.00000"},
		{affine.Point{X: 0, Y: 0}, affine.Point{X: 2.5, Y: 7}, 0, "(0,0): 2 7"},
		{affine.Point{X: 0, Y: 0}, affine.Point{X: math.NaN(), Y: -0.4}, 0, "(0,0): NaN 0"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, request.FormatResult(tc.in, tc.out, tc.precision))
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, request.DefaultConfig().Validate())
	assert.Equal(t, 5, request.DefaultConfig().Precision)

	bad := []request.Config{
		{IndexBase: 2, Precision: 5},
		{IndexBase: -1, Precision: 5},
		{Precision: -1},
		{Precision: 18},
	}
	for _, c := range bad {
		assert.ErrorIs(t, c.Validate(), request.ErrBadConfig, "%+v", c)
	}
}
