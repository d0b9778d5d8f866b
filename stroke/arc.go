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

package stroke

import "seehuhn.de/go/planar/geom2d"

// bisectArc approximates the arc swept from unit direction from to
// unit direction to (assumed less than a straight angle apart) by
// recursive angle bisection: the midpoint direction is normalize(from
// + to), which needs only Add and Sqrt, not trigonometric functions,
// so it works for any Number implementation including fixed-point.
// depth recursive bisections yield 2^depth-1 interior points.
func bisectArc[N geom2d.Number[N]](from, to geom2d.Vec2[N], depth int) []geom2d.Vec2[N] {
	if depth <= 0 {
		return nil
	}
	mid := normalize(from.Add(to))
	left := bisectArc(from, mid, depth-1)
	right := bisectArc(mid, to, depth-1)
	out := make([]geom2d.Vec2[N], 0, len(left)+1+len(right))
	out = append(out, left...)
	out = append(out, mid)
	out = append(out, right...)
	return out
}

// normalize returns v scaled to unit length, or v unchanged if it is
// (numerically) the zero vector.
func normalize[N geom2d.Number[N]](v geom2d.Vec2[N]) geom2d.Vec2[N] {
	lenSq := v.Dot(v)
	if lenSq.IsZero() {
		return v
	}
	length := lenSq.Sqrt()
	return geom2d.Vec2[N]{X: v.X.Div(length), Y: v.Y.Div(length)}
}
