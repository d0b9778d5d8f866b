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

import (
	"seehuhn.de/go/planar/dcel"
	"seehuhn.de/go/planar/geom2d"
)

// earNode is one entry of the ear-clipping circular list, drawn from a
// pre-sized pool (spec §4.3: "a pre-sized pool").
type earNode[N geom2d.Number[N]] struct {
	point    geom2d.Vec2[N]
	prev     int
	next     int
	index    int // original_index
	isEar    bool
	unlinked bool
}

// EarClip triangulates a simple polygon (possibly with holes already
// bridged in) by ear-clipping (spec §4.3). want boundary controls
// whether a parallel Boundary buffer is produced.
func EarClip[N geom2d.Number[N]](poly []geom2d.Vec2[N], wantBoundary bool) Result {
	n := len(poly)
	layout := TRIANGLES
	if wantBoundary {
		layout = TRIANGLES_WITH_BOUNDARY
	}
	if n < 3 {
		return Result{Layout: layout}
	}

	var pool dcel.Pool[earNode[N]]
	pool.Reserve(n)
	for i, p := range poly {
		idx := pool.Alloc()
		node := pool.Get(idx)
		node.point = p
		node.index = i
		node.prev = (i - 1 + n) % n
		node.next = (i + 1) % n
	}

	orientation := polygonOrientation(&pool, n)
	if orientation == geom2d.Collinear {
		return Result{Layout: layout}
	}

	for i := 0; i < n; i++ {
		updateEar(&pool, i, orientation)
	}

	res := Result{Layout: layout}
	remaining := n
	cur := 0
	// removeCollinearFrom repeatedly unlinks neighbors whose
	// neighborhood orientation is zero.
	removeCollinearFrom := func(start int) {
		node := pool.Get(start)
		for remaining > 3 {
			p, c, nx := pool.Get(node.prev), node, pool.Get(node.next)
			if geom2d.ClassifyPoint(p.point, c.point, nx.point) != geom2d.Collinear {
				break
			}
			unlink(&pool, node)
			remaining--
			updateEar(&pool, node.prev, orientation)
			updateEar(&pool, node.next, orientation)
			node = pool.Get(node.next)
		}
	}

	guard := 0
	maxSteps := 4 * n
	for remaining > 3 && guard < maxSteps {
		guard++
		node := pool.Get(cur)
		if node.unlinked {
			cur = node.next
			continue
		}
		if !node.isEar {
			cur = node.next
			continue
		}
		p, c, nx := pool.Get(node.prev), node, pool.Get(node.next)
		res.Indices = append(res.Indices, p.index, c.index, nx.index)
		if wantBoundary {
			res.Boundary = append(res.Boundary, boundaryOf(p.index, c.index, nx.index, n))
		}
		prevIdx, nextIdx := node.prev, node.next
		unlink(&pool, node)
		remaining--
		updateEar(&pool, prevIdx, orientation)
		updateEar(&pool, nextIdx, orientation)
		removeCollinearFrom(prevIdx)
		cur = nextIdx
	}

	if remaining == 3 {
		var last *earNode[N]
		for i := 0; i < pool.Len(); i++ {
			if c := pool.Get(i); !c.unlinked {
				last = c
				break
			}
		}
		if last != nil {
			p, c, nx := pool.Get(last.prev), last, pool.Get(last.next)
			res.Indices = append(res.Indices, p.index, c.index, nx.index)
			if wantBoundary {
				res.Boundary = append(res.Boundary, boundaryOf(p.index, c.index, nx.index, n))
			}
		}
	}

	return res
}

func unlink[N geom2d.Number[N]](pool *dcel.Pool[earNode[N]], node *earNode[N]) {
	prev, next := pool.Get(node.prev), pool.Get(node.next)
	prev.next = node.next
	next.prev = node.prev
	node.unlinked = true
}

// polygonOrientation implements spec §4.3: the sign of the
// signed-area predicate at the lexicographic-maximum-y vertex.
func polygonOrientation[N geom2d.Number[N]](pool *dcel.Pool[earNode[N]], n int) geom2d.Orientation {
	best := 0
	for i := 1; i < n; i++ {
		p, b := pool.Get(i).point, pool.Get(best).point
		if p.Y.Cmp(b.Y) > 0 || (p.Y.Cmp(b.Y) == 0 && p.X.Cmp(b.X) > 0) {
			best = i
		}
	}
	node := pool.Get(best)
	prev, next := pool.Get(node.prev), pool.Get(node.next)
	return geom2d.ClassifyPoint(prev.point, node.point, next.point)
}

// updateEar recomputes the is_ear flag of the node at i: locally
// convex with respect to the polygon orientation, and passing
// earIsEmpty for triangle (prev, cur, next).
func updateEar[N geom2d.Number[N]](pool *dcel.Pool[earNode[N]], i int, orientation geom2d.Orientation) {
	node := pool.Get(i)
	if node.unlinked {
		return
	}
	prev, next := pool.Get(node.prev), pool.Get(node.next)
	sign := geom2d.ClassifyPoint(prev.point, node.point, next.point)
	if sign != orientation {
		node.isEar = false
		return
	}
	node.isEar = earIsEmpty(pool, node, prev, next)
}

// earIsEmpty is the emptiness test: no other remaining vertex lies
// inside the candidate ear triangle or on its boundary, except for
// vertices that coincide with one of the triangle's corners. Edges are
// not tested directly; on a simple polygon an edge can only cross the
// ear's interior if one of its endpoints lies in the closed triangle,
// which this vertex scan rejects (see DESIGN.md).
func earIsEmpty[N geom2d.Number[N]](pool *dcel.Pool[earNode[N]], node, a, c *earNode[N]) bool {
	o := geom2d.ClassifyPoint(a.point, node.point, c.point)
	for curIdx := c.next; curIdx != node.prev; curIdx = pool.Get(curIdx).next {
		p := pool.Get(curIdx).point
		if p.Equal(a.point) || p.Equal(node.point) || p.Equal(c.point) {
			continue
		}
		s1 := geom2d.ClassifyPoint(a.point, node.point, p)
		s2 := geom2d.ClassifyPoint(node.point, c.point, p)
		s3 := geom2d.ClassifyPoint(c.point, a.point, p)
		if s1 != -o && s2 != -o && s3 != -o {
			return false
		}
	}
	return true
}

// pointStrictlyInTriangle reports whether p lies strictly inside
// triangle (a,b,c), assuming (a,b,c) is given in a consistent
// orientation (all three ClassifyPoint calls on the edges must agree
// in sign).
func pointStrictlyInTriangle[N geom2d.Number[N]](a, b, c, p geom2d.Vec2[N]) bool {
	s1 := geom2d.ClassifyPoint(a, b, p)
	s2 := geom2d.ClassifyPoint(b, c, p)
	s3 := geom2d.ClassifyPoint(c, a, p)
	if s1 == geom2d.Collinear || s2 == geom2d.Collinear || s3 == geom2d.Collinear {
		return false
	}
	return s1 == s2 && s2 == s3
}
