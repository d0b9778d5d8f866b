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

// Package triangulate turns simple polygons into indexed triangle
// lists: an ear-clipping triangulator for general simple polygons, a
// monotone-sweep triangulator for polygons known to be monotone in one
// axis, and a trivial fan triangulator for convex polygons.
package triangulate

// Layout selects what an output buffer holds: raw index triples,
// index triples with a parallel boundary-info buffer, or the
// corresponding fan layouts (spec §6's four output layouts).
type Layout int

const (
	TRIANGLES Layout = iota
	TRIANGLES_WITH_BOUNDARY
	FAN
	FAN_WITH_BOUNDARY
)

// Boundary is a per-triangle 3-bit packed mask: bit 0 set means edge
// (v0,v1) lies on the original polygon boundary, bit 1 means (v1,v2),
// bit 2 means (v2,v0).
type Boundary uint8

const (
	Edge01 Boundary = 1 << iota
	Edge12
	Edge20
)

// boundaryOf classifies the three edges of triangle (a,b,c), given by
// original polygon indices and the polygon length n, as boundary
// edges iff their two endpoint indices are consecutive modulo n.
func boundaryOf(a, b, c, n int) Boundary {
	var mask Boundary
	if consecutive(a, b, n) {
		mask |= Edge01
	}
	if consecutive(b, c, n) {
		mask |= Edge12
	}
	if consecutive(c, a, n) {
		mask |= Edge20
	}
	return mask
}

func consecutive(i, j, n int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d == 1 || d == n-1
}

// Result is the output of a triangulation: a flat index buffer
// (triples for TRIANGLES/TRIANGLES_WITH_BOUNDARY, fans for
// FAN/FAN_WITH_BOUNDARY) plus an optional parallel boundary buffer.
type Result struct {
	Layout   Layout
	Indices  []int
	Boundary []Boundary
}
