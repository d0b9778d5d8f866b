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

package geom2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "seehuhn.de/go/planar/geom2d"
)

func v(x, y float64) Vec2[Float64] {
	return Vec2[Float64]{X: Float64(x), Y: Float64(y)}
}

func TestVecArithmetic(t *testing.T) {
	a, b := v(1, 2), v(3, 4)
	assert.Equal(t, v(4, 6), a.Add(b))
	assert.Equal(t, v(-2, -2), a.Sub(b))
	assert.Equal(t, Float64(11), a.Dot(b))
	assert.Equal(t, Float64(1*4-2*3), a.Cross(b))
}

func TestVecLess(t *testing.T) {
	assert.True(t, v(1, 5).Less(v(2, 0)))
	assert.True(t, v(1, 0).Less(v(1, 1)))
	assert.False(t, v(1, 1).Less(v(1, 1)))
}

func TestMinMax(t *testing.T) {
	a, b := v(1, 5), v(2, 0)
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, b, Max(a, b))
}

func TestClassifyPoint(t *testing.T) {
	origin, right := v(0, 0), v(1, 0)
	assert.Equal(t, CCW, ClassifyPoint(origin, right, v(0, 1)))
	assert.Equal(t, CW, ClassifyPoint(origin, right, v(0, -1)))
	assert.Equal(t, Collinear, ClassifyPoint(origin, right, v(2, 0)))
}

func TestSegmentIntersectionProper(t *testing.T) {
	alpha, kind := SegmentIntersection(v(0, 0), v(2, 0), v(1, -1), v(1, 1))
	assert.Equal(t, Proper, kind)
	assert.Equal(t, Float64(0.5), alpha)
}

func TestSegmentIntersectionParallel(t *testing.T) {
	_, kind := SegmentIntersection(v(0, 0), v(1, 0), v(0, 1), v(1, 1))
	assert.Equal(t, Parallel, kind)
}

func TestSegmentIntersectionImproperAtEndpoint(t *testing.T) {
	_, kind := SegmentIntersection(v(0, 0), v(2, 0), v(0, 0), v(0, 1))
	assert.Equal(t, Improper, kind)
}

func TestSegmentIntersectionOutsideRange(t *testing.T) {
	_, kind := SegmentIntersection(v(0, 0), v(1, 0), v(5, -1), v(5, 1))
	assert.Equal(t, NoIntersection, kind)
}

func TestFloat64Sqrt(t *testing.T) {
	assert.Equal(t, Float64(3), Float64(9).Sqrt())
}
