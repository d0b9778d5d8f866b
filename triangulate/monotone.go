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

// Axis selects the monotonicity direction a Monotone call trusts its
// input to respect.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Monotone triangulates a simple polygon known to be monotone with
// respect to axis in O(n) via the classical stack sweep (spec §4.4).
// The polygon is not checked for monotonicity; on non-monotone input
// the result is unspecified but Monotone never panics or loops
// unboundedly, since every step consumes one vertex from the merged
// event order.
func Monotone[N geom2d.Number[N]](poly []geom2d.Vec2[N], axis Axis, wantBoundary bool) Result {
	n := len(poly)
	layout := TRIANGLES
	if wantBoundary {
		layout = TRIANGLES_WITH_BOUNDARY
	}
	if n < 3 {
		return Result{Layout: layout}
	}

	events, left := monotoneEventOrder(poly, axis)

	type stackEntry struct {
		idx    int
		isLeft bool
	}
	stack := make([]stackEntry, 0, n)
	res := Result{Layout: layout}

	emit := func(a, b, c int) {
		res.Indices = append(res.Indices, a, b, c)
		if wantBoundary {
			res.Boundary = append(res.Boundary, boundaryOf(a, b, c, n))
		}
	}

	stack = append(stack, stackEntry{events[0], left[events[0]]})
	stack = append(stack, stackEntry{events[1], left[events[1]]})

	for i := 2; i < n; i++ {
		cur := events[i]
		curLeft := left[cur]
		top := stack[len(stack)-1]

		if curLeft != top.isLeft {
			for len(stack) > 1 {
				a := stack[len(stack)-1]
				b := stack[len(stack)-2]
				emit(a.idx, b.idx, cur)
				stack = stack[:len(stack)-1]
			}
			stack = stack[:0]
			stack = append(stack, top)
			stack = append(stack, stackEntry{cur, curLeft})
			continue
		}

		for len(stack) >= 2 {
			a := stack[len(stack)-1]
			b := stack[len(stack)-2]
			sign := geom2d.ClassifyPoint(poly[b.idx], poly[a.idx], poly[cur])
			want := geom2d.CCW
			if !curLeft {
				want = geom2d.CW
			}
			if sign != want {
				break
			}
			emit(b.idx, a.idx, cur)
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, stackEntry{cur, curLeft})
	}

	return res
}

// monotoneEventOrder returns the vertex indices sorted by decreasing
// value along axis (the standard monotone-sweep event order: right to
// left for AxisX, top to bottom for AxisY) and, for each index, whether it sits on the "left"
// chain (ascending index order) or the "right" chain.
func monotoneEventOrder[N geom2d.Number[N]](poly []geom2d.Vec2[N], axis Axis) ([]int, []bool) {
	n := len(poly)
	events := make([]int, n)
	for i := range events {
		events[i] = i
	}
	key := func(i int) (N, N) {
		v := poly[i]
		if axis == AxisX {
			return v.X, v.Y
		}
		return v.Y, v.X
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			a1, a2 := key(events[j])
			b1, b2 := key(events[j-1])
			if a1.Cmp(b1) > 0 || (a1.Cmp(b1) == 0 && a2.Cmp(b2) > 0) {
				events[j], events[j-1] = events[j-1], events[j]
			} else {
				break
			}
		}
	}

	topIdx, botIdx := events[0], events[n-1]
	left := make([]bool, n)
	// Walk the polygon's natural index order from top to bottom along
	// one side to mark the "left" (here: first-reached-in-index-order)
	// chain; the other side is "right".
	onFirstChain := make(map[int]bool, n)
	for i := topIdx; ; i = (i + 1) % n {
		onFirstChain[i] = true
		if i == botIdx {
			break
		}
	}
	for _, idx := range events {
		left[idx] = onFirstChain[idx]
	}
	return events, left
}
