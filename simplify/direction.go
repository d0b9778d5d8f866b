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

package simplify

import "seehuhn.de/go/planar/geom2d"

// inferDirection implements spec §4.2 step 2: find the
// lexicographically minimum vertex (smallest x, ties broken by
// largest y — this is provably a convex vertex), then the sign of the
// signed-area predicate on its two contour-order neighbours gives the
// direction. Degenerate coincident neighbours are skipped by advancing
// to the first distinct-coordinate neighbour on each side; when no
// such neighbour exists the contour is degenerate.
func inferDirection[N geom2d.Number[N]](verts []geom2d.Vec2[N]) Direction {
	n := len(verts)
	if n < 3 {
		return DirectionUnknown
	}

	minIdx := 0
	for i := 1; i < n; i++ {
		p, best := verts[i], verts[minIdx]
		if p.X.Cmp(best.X) < 0 || (p.X.Cmp(best.X) == 0 && p.Y.Cmp(best.Y) > 0) {
			minIdx = i
		}
	}

	prevIdx, ok1 := firstDistinct(verts, minIdx, -1)
	nextIdx, ok2 := firstDistinct(verts, minIdx, 1)
	if !ok1 || !ok2 {
		return DirectionUnknown
	}

	switch geom2d.ClassifyPoint(verts[prevIdx], verts[minIdx], verts[nextIdx]) {
	case geom2d.CCW:
		return CCW
	case geom2d.CW:
		return CW
	default:
		return DirectionUnknown
	}
}

// firstDistinct walks from idx in the given step direction (+1 or -1,
// modulo n) until it finds a vertex whose coordinates differ from
// verts[idx], returning false if every vertex coincides.
func firstDistinct[N geom2d.Number[N]](verts []geom2d.Vec2[N], idx, step int) (int, bool) {
	n := len(verts)
	cur := idx
	for i := 0; i < n; i++ {
		cur = ((cur+step)%n + n) % n
		if cur == idx {
			return 0, false
		}
		if !verts[cur].Equal(verts[idx]) {
			return cur, true
		}
	}
	return 0, false
}

// Reverse reverses a contour's vertex order in place, flipping its
// direction (spec §8 invariant 8: reversing a CCW polygon's order
// produces CW).
func Reverse[N geom2d.Number[N]](c *Contour[N]) {
	v := c.Vertices
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
	switch c.Direction {
	case CW:
		c.Direction = CCW
	case CCW:
		c.Direction = CW
	}
}
