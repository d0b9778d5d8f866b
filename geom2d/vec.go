// seehuhn.de/go/planar - a 2D planar subdivision and tessellation engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package geom2d

// Vec2 is a point or vector with coordinates over a Number type N.
// Equality of two Vec2 values is bitwise equality of coordinates, never
// an epsilon comparison — see the package doc comment.
type Vec2[N Number[N]] struct {
	X, Y N
}

// Sub returns a-b.
func (a Vec2[N]) Sub(b Vec2[N]) Vec2[N] {
	return Vec2[N]{X: a.X.Sub(b.X), Y: a.Y.Sub(b.Y)}
}

// Add returns a+b.
func (a Vec2[N]) Add(b Vec2[N]) Vec2[N] {
	return Vec2[N]{X: a.X.Add(b.X), Y: a.Y.Add(b.Y)}
}

// Equal reports exact coordinate equality.
func (a Vec2[N]) Equal(b Vec2[N]) bool {
	return a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0
}

// Less orders vertices lexicographically by (x ascending; then y
// ascending). This is the order the planarizer's trapeze-view walk
// uses to pick extremal vertices.
func (a Vec2[N]) Less(b Vec2[N]) bool {
	if c := a.X.Cmp(b.X); c != 0 {
		return c < 0
	}
	return a.Y.Cmp(b.Y) < 0
}

// Cross returns the z-component of the 3D cross product of a and b,
// treated as vectors: a.X*b.Y - a.Y*b.X.
func (a Vec2[N]) Cross(b Vec2[N]) N {
	return a.X.Mul(b.Y).Sub(a.Y.Mul(b.X))
}

// Dot returns the dot product of a and b.
func (a Vec2[N]) Dot(b Vec2[N]) N {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y))
}

// Orientation classifies the turn from a->b->c.
type Orientation int

const (
	Collinear Orientation = 0
	CW        Orientation = -1 // clockwise / right turn
	CCW       Orientation = 1  // counter-clockwise / left turn
)

// SignedArea2 returns twice the signed area of the triangle (a,b,c).
// Positive means a->b->c turns counter-clockwise.
func SignedArea2[N Number[N]](a, b, c Vec2[N]) N {
	return b.Sub(a).Cross(c.Sub(a))
}

// ClassifyPoint is the orientation predicate used throughout the
// planarizer and simplifier: the sign of SignedArea2(a, b, p),
// i.e. which side of the directed line a->b the point p lies on.
func ClassifyPoint[N Number[N]](a, b, p Vec2[N]) Orientation {
	switch SignedArea2(a, b, p).Sign() {
	case 1:
		return CCW
	case -1:
		return CW
	default:
		return Collinear
	}
}

// Min returns the lexicographically (x; then y) smaller of a and b.
func Min[N Number[N]](a, b Vec2[N]) Vec2[N] {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the lexicographically (x; then y) larger of a and b.
func Max[N Number[N]](a, b Vec2[N]) Vec2[N] {
	if a.Less(b) {
		return b
	}
	return a
}
