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

package dcel

import "seehuhn.de/go/planar/geom2d"

// Trapeze is the "trapeze view" of a face: the four extremal
// half-edges whose origins are the face's left/right wall corners.
// LeftTop and LeftBottom share an x coordinate (the left wall); so do
// RightTop and RightBottom (the right wall).
type Trapeze struct {
	LeftTop, LeftBottom, RightBottom, RightTop int
}

// DeriveTrapeze computes the trapeze view of face f with a single walk
// of its boundary, picking the extremal vertices under the (x
// ascending; then y ascending) order (spec's DCEL invariant list).
func DeriveTrapeze[N geom2d.Number[N]](m *Mesh[N], f int) Trapeze {
	start := m.Faces.Get(f).Edge
	cur := start
	var leftTop, leftBottom, rightTop, rightBottom int
	leftTop, leftBottom, rightTop, rightBottom = start, start, start, start
	leftX := m.Origin(start).X
	rightX := leftX
	for {
		p := m.Origin(cur)
		switch p.X.Cmp(leftX) {
		case -1:
			leftX = p.X
			leftTop, leftBottom = cur, cur
		case 0:
			if p.Y.Cmp(m.Origin(leftTop).Y) > 0 {
				leftTop = cur
			}
			if p.Y.Cmp(m.Origin(leftBottom).Y) < 0 {
				leftBottom = cur
			}
		}
		switch p.X.Cmp(rightX) {
		case 1:
			rightX = p.X
			rightTop, rightBottom = cur, cur
		case 0:
			if p.Y.Cmp(m.Origin(rightTop).Y) > 0 {
				rightTop = cur
			}
			if p.Y.Cmp(m.Origin(rightBottom).Y) < 0 {
				rightBottom = cur
			}
		}
		cur = m.HalfEdges.Get(cur).Next
		if cur == start {
			break
		}
	}
	return Trapeze{LeftTop: leftTop, LeftBottom: leftBottom, RightBottom: rightBottom, RightTop: rightTop}
}

// PointClass classifies a point's position relative to a trapeze.
type PointClass int

const (
	Outside PointClass = iota
	StrictlyInside
	BoundaryVertex
	LeftWall
	RightWall
	TopWall
	BottomWall
)

// chainYAt walks the chain of half-edges from "from" to "to" (following
// Next) and linearly evaluates the chain's y coordinate at the given x,
// by finding the single segment of the chain whose x-span contains x
// and interpolating across it. It returns ok=false if x falls outside
// every segment's span, which should not happen for an x strictly
// between the trapeze's wall x-coordinates.
func chainYAt[N geom2d.Number[N]](m *Mesh[N], from, to int, x N) (y N, orientationAt int, ok bool) {
	cur := from
	for {
		a := m.Origin(cur)
		b := m.Dest(cur)
		lo, hi := a, b
		if hi.X.Cmp(lo.X) < 0 {
			lo, hi = hi, lo
		}
		if x.Cmp(lo.X) >= 0 && x.Cmp(hi.X) <= 0 {
			if a.X.Cmp(b.X) == 0 {
				// vertical segment of the chain: cannot evaluate a
				// single y, report the segment origin's y
				return a.Y, 0, true
			}
			// interpolate: y = a.y + (x-a.x)/(b.x-a.x) * (b.y-a.y)
			t := x.Sub(a.X).Div(b.X.Sub(a.X))
			y = a.Y.Add(t.Mul(b.Y.Sub(a.Y)))
			return y, 0, true
		}
		if cur == to {
			break
		}
		cur = m.HalfEdges.Get(cur).Next
	}
	var zero N
	return zero, 0, false
}

// Classify implements spec 4.1's inner-walk classification of a point
// p against the trapeze T: exact x-coordinate comparisons against the
// two vertical walls, and the signed-area ClassifyPoint predicate
// evaluated against the top/bottom chains (approximated here, for
// multi-segment chains, by locating the chain segment whose x-span
// covers p.x and testing against that segment directly — a trapeze's
// top/bottom chain is monotone in x by construction, so this is exact
// for the single-segment case the incremental algorithm produces
// between splits, and conservative at chain joints).
func Classify[N geom2d.Number[N]](m *Mesh[N], t Trapeze, p geom2d.Vec2[N]) PointClass {
	lx := m.Origin(t.LeftTop).X
	rx := m.Origin(t.RightTop).X

	if p.X.Cmp(lx) == 0 {
		if p.Equal(m.Origin(t.LeftTop)) || p.Equal(m.Origin(t.LeftBottom)) {
			return BoundaryVertex
		}
		if p.Y.Cmp(m.Origin(t.LeftBottom).Y) >= 0 && p.Y.Cmp(m.Origin(t.LeftTop).Y) <= 0 {
			return LeftWall
		}
		return Outside
	}
	if p.X.Cmp(rx) == 0 {
		if p.Equal(m.Origin(t.RightTop)) || p.Equal(m.Origin(t.RightBottom)) {
			return BoundaryVertex
		}
		if p.Y.Cmp(m.Origin(t.RightBottom).Y) >= 0 && p.Y.Cmp(m.Origin(t.RightTop).Y) <= 0 {
			return RightWall
		}
		return Outside
	}
	if p.X.Cmp(lx) < 0 || p.X.Cmp(rx) > 0 {
		return Outside
	}

	topY, _, topOK := chainYAt(m, t.LeftTop, t.RightTop, p.X)
	botY, _, botOK := chainYAt(m, t.RightBottom, t.LeftBottom, p.X)
	if !topOK || !botOK {
		return Outside
	}
	switch {
	case p.Y.Cmp(topY) == 0:
		return TopWall
	case p.Y.Cmp(botY) == 0:
		return BottomWall
	case p.Y.Cmp(topY) > 0 || p.Y.Cmp(botY) < 0:
		return Outside
	default:
		return StrictlyInside
	}
}
