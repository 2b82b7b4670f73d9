// SPDX-License-Identifier: MIT

package request

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/affinetree/affine"
)

// FormatResult renders "(x,y): <new_x> <new_y>". The input point is printed in
// its shortest exact form; the result uses fixed precision decimals.
func FormatResult(in, out affine.Point, precision int) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(strconv.FormatFloat(in.X, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(in.Y, 'f', -1, 64))
	b.WriteString("): ")
	b.WriteString(strconv.FormatFloat(noNegZero(out.X, precision), 'f', precision, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(noNegZero(out.Y, precision), 'f', precision, 64))

	return b.String()
}

// noNegZero maps values that would print as "-0.000..." to 0.
func noNegZero(v float64, precision int) float64 {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Trim(s, "-0.") == "" {
		return 0
	}

	return v
}
