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

package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	. "seehuhn.de/go/planar"
)

func TestPlanarizeVecFillsASquare(t *testing.T) {
	square := [][]vec.Vec2{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	faces, err := PlanarizeVec(square, NonZero, 5)
	assert.NoError(t, err)

	filled := 0
	for _, f := range faces {
		if f.Filled {
			filled++
		}
	}
	assert.Equal(t, 1, filled)
}

func TestSimplifyVecResolvesSingleContour(t *testing.T) {
	square := [][]vec.Vec2{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	contours, err := SimplifyVec(square, 6)
	assert.NoError(t, err)
	assert.Len(t, contours, 1)
}

func TestTriangulateEarClipVecSquare(t *testing.T) {
	square := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	res := TriangulateEarClipVec(square, false)
	assert.Len(t, res.Indices, 6)
}

func TestTessellateStrokeVecProducesTriangles(t *testing.T) {
	path := []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	verts, tri := TessellateStrokeVec(path, StrokeOptions{
		Width: 2,
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinBevel,
	}, false)
	assert.Len(t, verts, 4)
	assert.NotEmpty(t, tri.Indices)
}
