// SPDX-License-Identifier: MIT

package affine

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the absolute tolerance used by approximate comparisons.
const DefaultEpsilon = 1e-9

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180.0

// Transform is a 2D affine transformation stored as six coefficients.
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// The zero value is NOT the identity; use Identity().
type Transform struct {
	A, B, C float64 // first row of the homogeneous matrix
	D, E, F float64 // second row of the homogeneous matrix
}

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = Transform{}
	_ fmt.Stringer = Point{}
)

// Identity returns the neutral element (1,0,0,0,1,0).
// Composing it with any T on either side yields T.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// New builds a general transform from its six coefficients in row order.
func New(a, b, c, d, e, f float64) Transform {
	return Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Transform {
	return Transform{
		A: 1, B: 0, C: dx,
		D: 0, E: 1, F: dy,
	}
}

// Scale returns an axis-aligned scaling by (sx, sy).
// Zero factors are allowed and collapse the corresponding axis.
func Scale(sx, sy float64) Transform {
	return Transform{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// Rotate returns a counter-clockwise rotation about the origin.
// The angle is given in DEGREES and converted to radians before sin/cos.
func Rotate(degrees float64) Transform {
	sin, cos := math.Sincos(degrees * degToRad)

	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear returns a shear with horizontal factor kx and vertical factor ky.
func Shear(kx, ky float64) Transform {
	return Transform{
		A: 1, B: kx, C: 0,
		D: ky, E: 1, F: 0,
	}
}

// Compose returns later ⊗ earlier: the single transform equivalent to applying
// earlier first and later second.
//
// Implementation:
//   - Stage 1: multiply the 2×2 linear parts (later · earlier).
//   - Stage 2: push earlier's translation through later's linear part and add
//     later's own translation.
//
// Behavior highlights:
//   - Equals the homogeneous product later · earlier with the fixed bottom row elided.
//   - Apply(Compose(t1, t2), p) == Apply(t1, Apply(t2, p)) for every p.
//   - Argument order matters: Compose(a, b) != Compose(b, a) in general.
//
// Complexity:
//   - Time O(1), Space O(1).
func Compose(later, earlier Transform) Transform {
	return Transform{
		A: later.A*earlier.A + later.B*earlier.D,
		B: later.A*earlier.B + later.B*earlier.E,
		C: later.A*earlier.C + later.B*earlier.F + later.C,
		D: later.D*earlier.A + later.E*earlier.D,
		E: later.D*earlier.B + later.E*earlier.E,
		F: later.D*earlier.C + later.E*earlier.F + later.F,
	}
}

// Then returns the transform that applies t first and next second,
// i.e. Compose(next, t). It reads left-to-right in execution order.
func (t Transform) Then(next Transform) Transform {
	return Compose(next, t)
}

// Apply maps p through t.
func Apply(t Transform, p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// Apply maps p through t. Method form of the package-level Apply.
func (t Transform) Apply(p Point) Point {
	return Apply(t, p)
}

// Homogeneous returns the full 3×3 matrix with bottom row (0, 0, 1).
func (t Transform) Homogeneous() [3][3]float64 {
	return [3][3]float64{
		{t.A, t.B, t.C},
		{t.D, t.E, t.F},
		{0, 0, 1},
	}
}

// Det returns the determinant of the linear part.
// A zero determinant is legal and means the map collapses the plane.
func (t Transform) Det() float64 {
	return t.A*t.E - t.B*t.D
}

// IsIdentity reports whether every coefficient is within eps of Identity().
func (t Transform) IsIdentity(eps float64) bool {
	return EqualApprox(t, Identity(), eps)
}

// IsFinite reports whether all six coefficients are finite (no NaN, no ±Inf).
func (t Transform) IsFinite() bool {
	return isFinite(t.A) && isFinite(t.B) && isFinite(t.C) &&
		isFinite(t.D) && isFinite(t.E) && isFinite(t.F)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// EqualApprox reports whether a and b agree coefficient-wise within the
// absolute tolerance eps.
func EqualApprox(a, b Transform, eps float64) bool {
	return near(a.A, b.A, eps) && near(a.B, b.B, eps) && near(a.C, b.C, eps) &&
		near(a.D, b.D, eps) && near(a.E, b.E, eps) && near(a.F, b.F, eps)
}

// String renders t as its two non-trivial homogeneous rows.
func (t Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", t.A, t.B, t.C, t.D, t.E, t.F)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
