// Package vec2 provides arithmetic over a 2-component float64 vector.
//
// Every operation is a pure value method: vectors in, vectors out, no
// mutation. Component-wise and scalar variants are named apart (Mul vs
// Scale, Div vs component Mod) so call sites read unambiguously.
//
// Equals compares within DefaultEpsilon to absorb float drift; use exact
// == on the struct when bit equality is really wanted.
package vec2

import "math"

// DefaultEpsilon is the tolerance used by Equals.
const DefaultEpsilon = 1e-9

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// New returns the vector (x, y).
func New(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns a + b component-wise.
func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

// Sub returns a - b component-wise.
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 { return Vec2{a.X * b.X, a.Y * b.Y} }

// Div returns the component-wise quotient a / b.
func (a Vec2) Div(b Vec2) Vec2 { return Vec2{a.X / b.X, a.Y / b.Y} }

// Scale returns a scaled by s.
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

// Abs returns the component-wise absolute value.
func (a Vec2) Abs() Vec2 { return Vec2{math.Abs(a.X), math.Abs(a.Y)} }

// Floor returns the component-wise floor.
func (a Vec2) Floor() Vec2 { return Vec2{math.Floor(a.X), math.Floor(a.Y)} }

// Mod returns the component-wise remainder a mod b (sign of the result
// follows math.Mod, i.e. the sign of a).
func (a Vec2) Mod(b Vec2) Vec2 { return Vec2{math.Mod(a.X, b.X), math.Mod(a.Y, b.Y)} }

// Min returns the component-wise minimum of a and b.
func (a Vec2) Min(b Vec2) Vec2 { return Vec2{math.Min(a.X, b.X), math.Min(a.Y, b.Y)} }

// Max returns the component-wise maximum of a and b.
func (a Vec2) Max(b Vec2) Vec2 { return Vec2{math.Max(a.X, b.X), math.Max(a.Y, b.Y)} }

// Clamp returns a with each component limited to [lo, hi] component-wise.
func (a Vec2) Clamp(lo, hi Vec2) Vec2 { return a.Max(lo).Min(hi) }

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the scalar z-component of the 3D cross product a × b.
// Its sign tells which side of a the vector b lies on.
func (a Vec2) Cross(b Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// Len returns the Euclidean length of a.
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// Normalize returns a scaled to unit length. The zero vector normalizes
// to itself rather than dividing by zero.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}

	return Vec2{a.X / l, a.Y / l}
}

// Equals reports whether a and b are equal within DefaultEpsilon per
// component.
func (a Vec2) Equals(b Vec2) bool {
	return math.Abs(a.X-b.X) <= DefaultEpsilon && math.Abs(a.Y-b.Y) <= DefaultEpsilon
}
