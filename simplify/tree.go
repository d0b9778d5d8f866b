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

// node is one entry of the inclusion forest. The root node has a nil
// contour; every other node owns exactly one simple piece.
type node[N geom2d.Number[N]] struct {
	contour  *Contour[N]
	children []*node[N]
	winding  int
}

// buildInclusionTree implements spec §4.2 step 3: insert pieces one by
// one into a root tree, comparing the new piece against each existing
// top-level entry with compareContours.
func buildInclusionTree[N geom2d.Number[N]](pieces []Contour[N]) *node[N] {
	root := &node[N]{}
	for i := range pieces {
		insertNode(root, &pieces[i])
	}
	return root
}

// compareContours returns +1 if a contains b, -1 if b contains a, 0 if
// disjoint, implemented via compare_simple_non_intersecting_polygons's
// single-interior-point-sample approach.
func compareContours[N geom2d.Number[N]](a, b *Contour[N]) int {
	if PointInPolygon(a.Vertices, interiorSample(b.Vertices)) {
		return 1
	}
	if PointInPolygon(b.Vertices, interiorSample(a.Vertices)) {
		return -1
	}
	return 0
}

func insertNode[N geom2d.Number[N]](parent *node[N], c *Contour[N]) {
	for _, child := range parent.children {
		if compareContours(child.contour, c) == 1 {
			insertNode(child, c)
			return
		}
	}

	var contained, remaining []*node[N]
	for _, child := range parent.children {
		if compareContours(child.contour, c) == -1 {
			contained = append(contained, child)
		} else {
			remaining = append(remaining, child)
		}
	}
	remaining = append(remaining, &node[N]{contour: c, children: contained})
	parent.children = remaining
}

// tagAndMerge implements spec §4.2 step 4: accumulate a winding sum
// downward (cw contributes +1, ccw contributes -1) and collapse a
// child into its parent whenever both share the same fill status
// (both zero, or both nonzero).
func tagAndMerge[N geom2d.Number[N]](n *node[N], parentWinding int) {
	if n.contour != nil {
		contrib := 0
		switch n.contour.Direction {
		case CW:
			contrib = 1
		case CCW:
			contrib = -1
		}
		n.winding = parentWinding + contrib
		n.contour.Winding = n.winding
	} else {
		n.winding = parentWinding
	}

	var kept []*node[N]
	for _, child := range n.children {
		tagAndMerge(child, n.winding)
		sameFill := n.contour != nil && (child.winding != 0) == (n.winding != 0)
		if sameFill {
			for _, gc := range child.children {
				tagAndMerge(gc, n.winding)
			}
			kept = append(kept, child.children...)
			continue
		}
		kept = append(kept, child)
	}
	n.children = kept
}
