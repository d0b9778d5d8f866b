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

package triangulate_test

import (
	"math"
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/planar/geom2d"
	. "seehuhn.de/go/planar/triangulate"
)

func v(x, y float64) geom2d.Vec2[geom2d.Float64] {
	return geom2d.Vec2[geom2d.Float64]{X: geom2d.Float64(x), Y: geom2d.Float64(y)}
}

// triArea2 returns twice the area covered by the given triangle index
// triples over poly, used to check a triangulation's total area
// matches the polygon's.
func triArea2(poly []geom2d.Vec2[geom2d.Float64], indices []int) float64 {
	var total float64
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := poly[indices[i]], poly[indices[i+1]], poly[indices[i+2]]
		area := float64(geom2d.SignedArea2(a, b, c))
		if area < 0 {
			area = -area
		}
		total += area
	}
	return total
}

func polygonArea2(poly []geom2d.Vec2[geom2d.Float64]) float64 {
	var total float64
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		total += float64(a.X*b.Y - b.X*a.Y)
	}
	if total < 0 {
		total = -total
	}
	return total
}

func TestEarClipSquare(t *testing.T) {
	square := []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}
	res := EarClip(square, false)
	assert.Equal(t, TRIANGLES, res.Layout)
	assert.Len(t, res.Indices, 6)
	assert.InDelta(t, polygonArea2(square), triArea2(square, res.Indices), 1e-9)
}

func TestEarClipBoundaryMask(t *testing.T) {
	square := []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}
	res := EarClip(square, true)
	assert.Equal(t, TRIANGLES_WITH_BOUNDARY, res.Layout)
	assert.Len(t, res.Boundary, 2)
}

func TestEarClipConcavePolygon(t *testing.T) {
	// an L-shape
	poly := []geom2d.Vec2[geom2d.Float64]{
		v(0, 0), v(2, 0), v(2, 1), v(1, 1), v(1, 2), v(0, 2),
	}
	res := EarClip(poly, false)
	assert.Len(t, res.Indices, 3*4)
	assert.InDelta(t, polygonArea2(poly), triArea2(poly, res.Indices), 1e-9)
}

func TestEarClipDegenerate(t *testing.T) {
	res := EarClip([]geom2d.Vec2[geom2d.Float64]{v(0, 0), v(1, 0)}, false)
	assert.Empty(t, res.Indices)
}

func TestFanConvexPolygon(t *testing.T) {
	poly := []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}
	res := Fan(poly, false)
	assert.Equal(t, FAN, res.Layout)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 3}, res.Indices)
}

func TestFanWithBoundary(t *testing.T) {
	poly := []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}
	res := Fan(poly, true)
	assert.Equal(t, FAN_WITH_BOUNDARY, res.Layout)
	assert.Len(t, res.Boundary, 2)
}

func TestMonotoneSquare(t *testing.T) {
	square := []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}
	res := Monotone(square, AxisX, false)
	assert.Len(t, res.Indices, 6)
	assert.InDelta(t, polygonArea2(square), triArea2(square, res.Indices), 1e-9)
}

func TestMonotoneDiamond(t *testing.T) {
	diamond := []geom2d.Vec2[geom2d.Float64]{v(0, 2), v(1, 0), v(2, 2), v(1, 4)}
	res := Monotone(diamond, AxisY, false)
	assert.Len(t, res.Indices, 6)
	assert.InDelta(t, polygonArea2(diamond), triArea2(diamond, res.Indices), 1e-9)
}

// TestS2EarClipConvexQuadBoundaryMask covers spec.md §8 scenario S2: a
// convex quad ear-clips into two triangles tiling the square, each
// flagged with exactly two boundary edges and one shared diagonal.
func TestS2EarClipConvexQuadBoundaryMask(t *testing.T) {
	square := []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	res := EarClip(square, true)
	assert.Equal(t, TRIANGLES_WITH_BOUNDARY, res.Layout)
	assert.Len(t, res.Indices, 6)
	assert.Len(t, res.Boundary, 2)

	for _, mask := range res.Boundary {
		assert.Equal(t, 2, bits.OnesCount8(uint8(mask)), "expected exactly 2 boundary edges per triangle, got mask %03b", mask)
	}
	assert.InDelta(t, polygonArea2(square), triArea2(square, res.Indices), 1e-9)
}

// TestS3EarClipConcaveArrowNoTriangleContainsAVertex covers spec.md §8
// scenario S3: the concave "arrow" ear-clips into 3 triangles (9
// indices), none of which contains any other input vertex strictly in
// its interior, and every triangle has positive signed area under the
// polygon's own orientation.
func TestS3EarClipConcaveArrowNoTriangleContainsAVertex(t *testing.T) {
	poly := []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(10, 0), v(5, 5), v(10, 10), v(0, 10)}
	res := EarClip(poly, false)
	assert.Len(t, res.Indices, 9)

	polyOrientation := geom2d.Orientation(0)
	for i := 0; i+2 < len(res.Indices); i += 3 {
		a, b, c := poly[res.Indices[i]], poly[res.Indices[i+1]], poly[res.Indices[i+2]]
		o := geom2d.ClassifyPoint(a, b, c)
		assert.NotEqual(t, geom2d.Collinear, o)
		if polyOrientation == 0 {
			polyOrientation = o
		} else {
			assert.Equal(t, polyOrientation, o, "triangle orientation should be consistent")
		}

		for _, p := range poly {
			if p == a || p == b || p == c {
				continue
			}
			assert.False(t, strictlyInTriangle(a, b, c, p), "triangle (%v,%v,%v) strictly contains vertex %v", a, b, c, p)
		}
	}
}

// strictlyInTriangle reports whether p lies strictly inside triangle
// (a,b,c), independent of (a,b,c)'s orientation.
func strictlyInTriangle(a, b, c, p geom2d.Vec2[geom2d.Float64]) bool {
	o1 := geom2d.ClassifyPoint(a, b, p)
	o2 := geom2d.ClassifyPoint(b, c, p)
	o3 := geom2d.ClassifyPoint(c, a, p)
	if o1 == geom2d.Collinear || o2 == geom2d.Collinear || o3 == geom2d.Collinear {
		return false
	}
	return o1 == o2 && o2 == o3
}

// TestS4MonotoneZigzagTwelveTriangles covers spec.md §8 scenario S4:
// the 14-vertex x-monotone zigzag triangulates into exactly 12
// triangles whose union area equals the input polygon's area.
func TestS4MonotoneZigzagTwelveTriangles(t *testing.T) {
	zigzag := []geom2d.Vec2[geom2d.Float64]{
		v(50, 100), v(100, 50), v(150, 100), v(200, 50), v(300, 100), v(400, 50),
		v(500, 100), v(500, 200), v(400, 150), v(300, 200), v(200, 150), v(150, 200),
		v(100, 150), v(50, 200),
	}
	res := Monotone(zigzag, AxisX, false)
	assert.Len(t, res.Indices, 36)
	assert.InDelta(t, polygonArea2(zigzag), triArea2(zigzag, res.Indices), 1e-6)
}

// TestEarClipInvariant5And6RandomSimplePolygons is a property-style
// check of spec.md §8 invariants 5 (3(n-2) indices) and 6 (triangulated
// area matches polygon area), over random convex polygons (simple and
// non-degenerate by construction) seeded via the module's own rand/v2
// convention.
func TestEarClipInvariant5And6RandomSimplePolygons(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 100; i++ {
		n := 3 + rng.IntN(10)
		angles := make([]float64, n)
		for k := range angles {
			angles[k] = 2 * math.Pi * float64(k) / float64(n)
		}
		poly := make([]geom2d.Vec2[geom2d.Float64], n)
		for k, a := range angles {
			r := 1.0 + rng.Float64()
			poly[k] = v(r*math.Cos(a), r*math.Sin(a))
		}

		res := EarClip(poly, false)
		assert.Equal(t, 3*(n-2), len(res.Indices), "trial %d: invariant 5 violated for n=%d", i, n)
		assert.InDelta(t, polygonArea2(poly), triArea2(poly, res.Indices), 1e-6, "trial %d: invariant 6 violated", i)
	}
}
