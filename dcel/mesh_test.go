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

// mesh_test.go checks spec.md §8's core DCEL invariants (1-4) directly
// against a Mesh built by a real Planarize run, rather than only
// exercising Pool's bump-allocator mechanics.
package dcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/planar/chunker"
	"seehuhn.de/go/planar/dcel"
	"seehuhn.de/go/planar/geom2d"
	"seehuhn.de/go/planar/planarize"
)

func v(x, y float64) geom2d.Vec2[geom2d.Float64] {
	return geom2d.Vec2[geom2d.Float64]{X: geom2d.Float64(x), Y: geom2d.Float64(y)}
}

// meshFixture builds a mesh with nested and self-intersecting contours
// so both splitting and conflict-redistribution code paths run.
func meshFixture(t *testing.T, seed uint64) *dcel.Mesh[geom2d.Float64] {
	t.Helper()
	c := chunker.New[geom2d.Vec2[geom2d.Float64]]()
	c.AddContour(v(0, 0), v(20, 0), v(20, 20), v(0, 20))
	c.AddContour(v(5, 5), v(15, 5), v(15, 15), v(5, 15))
	c.AddContour(v(0, 0), v(10, 10), v(10, 0), v(0, 10)) // bowtie, self-intersecting
	result, err := planarize.Planarize(c, planarize.NonZero, seed)
	assert.NoError(t, err)
	return result.Mesh
}

// TestInvariant1TwinNextPrevConsistency checks spec.md §8 invariant 1:
// e.twin.twin == e, e.next.prev == e, e.prev.next == e.
func TestInvariant1TwinNextPrevConsistency(t *testing.T) {
	m := meshFixture(t, 1)
	for i := 0; i < m.HalfEdges.Len(); i++ {
		he := m.HalfEdges.Get(i)
		if he.Twin != dcel.Nil {
			twin := m.HalfEdges.Get(he.Twin)
			assert.Equal(t, i, twin.Twin, "half-edge %d: twin.twin != self", i)
		}
		next := m.HalfEdges.Get(he.Next)
		assert.Equal(t, i, next.Prev, "half-edge %d: next.prev != self", i)
		prev := m.HalfEdges.Get(he.Prev)
		assert.Equal(t, i, prev.Next, "half-edge %d: prev.next != self", i)
	}
}

// TestInvariant2FaceBoundaryWalkTerminates checks spec.md §8 invariant
// 2: every face's boundary walk returns to its start within |E| steps.
func TestInvariant2FaceBoundaryWalkTerminates(t *testing.T) {
	m := meshFixture(t, 2)
	numEdges := m.HalfEdges.Len()
	for f := 0; f < m.Faces.Len(); f++ {
		start := m.Faces.Get(f).Edge
		if start == dcel.Nil {
			continue
		}
		cur := start
		steps := 0
		for {
			steps++
			assert.LessOrEqualf(t, steps, numEdges, "face %d: boundary walk exceeded |E|=%d steps", f, numEdges)
			if steps > numEdges {
				break
			}
			cur = m.HalfEdges.Get(cur).Next
			if cur == start {
				break
			}
		}
	}
}

// TestInvariant3TrapezeWallsAlign checks spec.md §8 invariant 3: for
// every face, left_top.x == left_bottom.x <= right_top.x ==
// right_bottom.x.
func TestInvariant3TrapezeWallsAlign(t *testing.T) {
	m := meshFixture(t, 3)
	for f := 0; f < m.Faces.Len(); f++ {
		if m.Faces.Get(f).Edge == dcel.Nil {
			continue
		}
		trap := dcel.DeriveTrapeze(m, f)
		leftTop := m.Origin(trap.LeftTop)
		leftBottom := m.Origin(trap.LeftBottom)
		rightTop := m.Origin(trap.RightTop)
		rightBottom := m.Origin(trap.RightBottom)

		assert.Zero(t, leftTop.X.Cmp(leftBottom.X), "face %d: left wall x mismatch", f)
		assert.Zero(t, rightTop.X.Cmp(rightBottom.X), "face %d: right wall x mismatch", f)
		assert.LessOrEqual(t, leftTop.X.Cmp(rightTop.X), 0, "face %d: left wall right of right wall", f)
	}
}

// TestInvariant4WindingPairsSumToZero checks spec.md §8 invariant 4
// (winding increments around an interior vertex sum to zero) via the
// mechanism the planarizer actually maintains to guarantee it: every
// twinned half-edge pair carries equal and opposite Winding
// contributions (set at creation in insertEdgeBetweenNonCoLinearVertices
// and preserved by every split in trySplitEdgeAt), so walking fully
// around any interior vertex and summing each edge's contribution once
// cancels to zero.
func TestInvariant4WindingPairsSumToZero(t *testing.T) {
	m := meshFixture(t, 4)
	for i := 0; i < m.HalfEdges.Len(); i++ {
		he := m.HalfEdges.Get(i)
		if he.Twin == dcel.Nil {
			continue
		}
		twin := m.HalfEdges.Get(he.Twin)
		assert.Zero(t, he.Winding+twin.Winding, "half-edge %d and its twin %d: winding does not cancel", i, he.Twin)
	}
}
