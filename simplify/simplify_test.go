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

package simplify_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/planar/chunker"
	"seehuhn.de/go/planar/geom2d"
	. "seehuhn.de/go/planar/simplify"
)

func v(x, y float64) geom2d.Vec2[geom2d.Float64] {
	return geom2d.Vec2[geom2d.Float64]{X: geom2d.Float64(x), Y: geom2d.Float64(y)}
}

func TestSimplifySingleSquareYieldsOneCCWContour(t *testing.T) {
	c := chunker.New[geom2d.Vec2[geom2d.Float64]]()
	c.AddContour(v(0, 0), v(10, 0), v(10, 10), v(0, 10))

	out, err := Simplify(c, 3)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, CCW, out[0].Direction)
}

func TestSimplifyMergesHoleIntoOuterContour(t *testing.T) {
	c := chunker.New[geom2d.Vec2[geom2d.Float64]]()
	c.AddContour(v(0, 0), v(20, 0), v(20, 20), v(0, 20))
	c.AddContour(v(5, 15), v(15, 15), v(15, 5), v(5, 5))

	out, err := Simplify(c, 9)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	// bridging duplicates the two bridge vertices, so the merged ring
	// is longer than the sum of the two input rings.
	assert.Greater(t, len(out[0].Vertices), 8)
}

func TestReverseFlipsDirectionAndOrder(t *testing.T) {
	c := Contour[geom2d.Float64]{
		Vertices:  []geom2d.Vec2[geom2d.Float64]{v(0, 0), v(1, 0), v(1, 1)},
		Direction: CCW,
	}
	Reverse(&c)
	assert.Equal(t, CW, c.Direction)
	assert.Equal(t, []geom2d.Vec2[geom2d.Float64]{v(1, 1), v(1, 0), v(0, 0)}, c.Vertices)
}

func TestInferDirectionViaSimplifyOnClockwiseInput(t *testing.T) {
	c := chunker.New[geom2d.Vec2[geom2d.Float64]]()
	// clockwise square
	c.AddContour(v(0, 0), v(0, 10), v(10, 10), v(10, 0))

	out, err := Simplify(c, 11)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, CCW, out[0].Direction)
}

// TestS5SimplifyBowtieSplitsIntoTwoTriangles covers spec.md §8 scenario
// S5: the self-intersecting figure-eight [(0,0),(10,10),(10,0),(0,10)]
// simplifies to two simple triangular contours meeting at (5,5), with
// opposite direction, each triangulating to exactly one triangle (2
// total).
func TestS5SimplifyBowtieSplitsIntoTwoTriangles(t *testing.T) {
	c := chunker.New[geom2d.Vec2[geom2d.Float64]]()
	c.AddContour(v(0, 0), v(10, 10), v(10, 0), v(0, 10))

	out, err := Simplify(c, 13)
	assert.NoError(t, err)
	assert.Len(t, out, 2)

	assert.NotEqual(t, out[0].Direction, out[1].Direction)
	for _, contour := range out {
		assert.Len(t, contour.Vertices, 3)
		assert.Contains(t, contour.Vertices, v(5, 5))
	}
}

// TestWindingNumberInvariant9IsZeroOutsideBoundingBox is a
// property-style check of spec.md §8 invariant 9: for random simple
// polygons, the winding number at any point outside the axis-aligned
// bounding box is zero. Inputs are generated from the module's own
// deterministic rand/v2 seeding convention.
func TestWindingNumberInvariant9IsZeroOutsideBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		n := 3 + rng.IntN(8)
		poly := make([]geom2d.Vec2[geom2d.Float64], n)
		maxR := 10.0
		for k := range poly {
			angle := 2 * math.Pi * float64(k) / float64(n)
			r := maxR * (0.5 + 0.5*rng.Float64())
			poly[k] = v(r*math.Cos(angle), r*math.Sin(angle))
		}

		// a point well outside any polygon inscribed in a circle of
		// radius maxR.
		outside := v(1000+rng.Float64()*10, 1000+rng.Float64()*10)
		assert.Zero(t, WindingNumber(poly, outside), "trial %d: nonzero winding outside bounding box", i)
	}
}
