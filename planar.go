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

package planar

import (
	"seehuhn.de/go/planar/chunker"
	"seehuhn.de/go/planar/geom2d"
	"seehuhn.de/go/planar/planarize"
	"seehuhn.de/go/planar/simplify"
	"seehuhn.de/go/planar/stroke"
	"seehuhn.de/go/planar/triangulate"
)

// WindingRule selects how accumulated winding numbers decide a face's
// fill status.
type WindingRule = planarize.WindingRule

const (
	NonZero = planarize.NonZero
	EvenOdd = planarize.EvenOdd
)

// Planarize runs the randomized incremental trapezoidal decomposition
// (spec §4.1) over contours, returning every face of the arrangement
// with its boundary ring and fill status under rule.
func Planarize[N geom2d.Number[N]](contours *chunker.Chunker[geom2d.Vec2[N]], rule WindingRule, seed uint64) (*planarize.Result[N], error) {
	return planarize.Planarize(contours, rule, seed)
}

// Simplify resolves self-intersections and merges holes, returning a
// slice of simple, non-intersecting, direction-tagged contours (spec
// §4.2).
func Simplify[N geom2d.Number[N]](contours *chunker.Chunker[geom2d.Vec2[N]], seed uint64) ([]simplify.Contour[N], error) {
	return simplify.Simplify(contours, seed)
}

// TriangulateEarClip triangulates a simple polygon by ear-clipping
// (spec §4.3).
func TriangulateEarClip[N geom2d.Number[N]](polygon []geom2d.Vec2[N], wantBoundary bool) triangulate.Result {
	return triangulate.EarClip(polygon, wantBoundary)
}

// TriangulateMonotone triangulates a polygon known to be monotone in
// the given axis in O(n) (spec §4.4).
func TriangulateMonotone[N geom2d.Number[N]](polygon []geom2d.Vec2[N], axis triangulate.Axis, wantBoundary bool) triangulate.Result {
	return triangulate.Monotone(polygon, axis, wantBoundary)
}

// TriangulateFan emits the trivial fan triangulation of a convex
// polygon (spec §4.5).
func TriangulateFan[N geom2d.Number[N]](polygon []geom2d.Vec2[N], wantBoundary bool) triangulate.Result {
	return triangulate.Fan(polygon, wantBoundary)
}

// TessellateStroke expands a polyline into a filled offset polygon and
// triangulates it (spec §4.6).
func TessellateStroke[N geom2d.Number[N]](path []geom2d.Vec2[N], opts stroke.Options[N], wantBoundary bool) stroke.Result[N] {
	return stroke.Tessellate(path, opts, wantBoundary)
}
