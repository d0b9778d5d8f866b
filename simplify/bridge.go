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

// flattenWithBridges implements spec §4.2 step 5: for every filled
// node, bridge each of its (now necessarily unfilled, after
// tag-and-merge) hole children into it via bridgeInto, and recurse
// into each hole's own children as independent regions.
func flattenWithBridges[N geom2d.Number[N]](root *node[N]) []Contour[N] {
	var out []Contour[N]
	var walk func(n *node[N])
	walk = func(n *node[N]) {
		if n.contour == nil || n.winding == 0 {
			for _, c := range n.children {
				walk(c)
			}
			return
		}
		merged := Contour[N]{
			Vertices:  append([]geom2d.Vec2[N]{}, n.contour.Vertices...),
			Direction: n.contour.Direction,
			Winding:   n.winding,
		}
		for _, hole := range n.children {
			merged.Vertices = bridgeInto(merged.Vertices, hole.contour.Vertices)
			for _, island := range hole.children {
				walk(island)
			}
		}
		out = append(out, merged)
	}
	walk(root)
	return out
}

// bridgeInto splices hole into outer via a zero-width bridge between a
// mutually visible pair of vertices (spec §4.2 step 5), returning the
// resulting single ring. The exact mutual-visibility heuristic is not
// dictated by spec (an explicit Open Question); this implementation
// performs the naive O(n*m) search the original source's merge_hole
// stub was meant to be filled in with: try every (outer vertex, hole
// vertex) pair in order and accept the first one whose connecting
// segment crosses no edge of either ring.
func bridgeInto[N geom2d.Number[N]](outer, hole []geom2d.Vec2[N]) []geom2d.Vec2[N] {
	oi, hi, ok := findMutuallyVisiblePair(outer, hole)
	if !ok {
		// No visible pair found (should not happen for simple,
		// non-intersecting input); fall back to index 0 on both sides
		// rather than dropping the hole.
		oi, hi = 0, 0
	}

	result := make([]geom2d.Vec2[N], 0, len(outer)+len(hole)+2)
	result = append(result, outer[:oi+1]...)
	for i := 0; i <= len(hole); i++ {
		result = append(result, hole[(hi+i)%len(hole)])
	}
	result = append(result, outer[oi:]...)
	return result
}

// findMutuallyVisiblePair implements find_mutually_visible_vertex_in_polygon:
// a naive search for a pair of vertices (one per ring) whose connecting
// segment intersects no edge of either ring.
func findMutuallyVisiblePair[N geom2d.Number[N]](outer, hole []geom2d.Vec2[N]) (oi, hi int, ok bool) {
	for i := range outer {
		for j := range hole {
			if segmentIsClear(outer, hole, i, j) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func segmentIsClear[N geom2d.Number[N]](outer, hole []geom2d.Vec2[N], i, j int) bool {
	a, b := outer[i], hole[j]
	if crossesAny(outer, a, b, i, -1) {
		return false
	}
	if crossesAny(hole, a, b, -1, j) {
		return false
	}
	return true
}

// crossesAny reports whether segment (a,b) properly crosses any edge
// of ring, skipping the edges incident to the ring vertex at
// skipOuterIdx or skipHoleIdx (whichever is non-negative), since a
// bridge endpoint touching its own incident edges isn't a crossing.
func crossesAny[N geom2d.Number[N]](ring []geom2d.Vec2[N], a, b geom2d.Vec2[N], skipOuterIdx, skipHoleIdx int) bool {
	n := len(ring)
	skip := skipOuterIdx
	if skipHoleIdx >= 0 {
		skip = skipHoleIdx
	}
	for i := 0; i < n; i++ {
		if i == skip || (i+1)%n == skip {
			continue
		}
		c, d := ring[i], ring[(i+1)%n]
		_, kind := geom2d.SegmentIntersection(a, b, c, d)
		if kind == geom2d.Proper {
			return true
		}
	}
	return false
}
