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

package triangulate

import "seehuhn.de/go/planar/geom2d"

// Fan triangulates a convex polygon as the trivial fan (v0, vi, vi+1)
// for i = 1..n-2 (spec §4.5). The polygon is not checked for
// convexity.
func Fan[N geom2d.Number[N]](poly []geom2d.Vec2[N], wantBoundary bool) Result {
	n := len(poly)
	layout := FAN
	if wantBoundary {
		layout = FAN_WITH_BOUNDARY
	}
	if n < 3 {
		return Result{Layout: layout}
	}

	res := Result{Layout: layout}
	for i := 1; i < n-1; i++ {
		res.Indices = append(res.Indices, 0, i, i+1)
		if wantBoundary {
			res.Boundary = append(res.Boundary, boundaryOf(0, i, i+1, n))
		}
	}
	return res
}
