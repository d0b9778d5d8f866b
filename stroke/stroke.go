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

// Package stroke expands a polyline into a filled offset polygon and
// triangulates it (spec §4.6). The offset-outline construction follows
// the same forward/backward two-pass shape as the teacher's own
// stroker; the fill step is delegated to the triangulate package
// rather than a scanline rasterizer, since this module's core produces
// indexed triangle lists, not pixel coverage (spec §1's Non-goals).
package stroke

import (
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/planar/geom2d"
	"seehuhn.de/go/planar/triangulate"
)

// Gravity selects how the stroke width is distributed across the
// path's two offset sides (a feature named in the original
// PathTessellation.h header but only gestured at in spec.md's prose).
type Gravity int

const (
	// Center splits the width evenly: w/2 on each side.
	Center Gravity = iota
	// Inward places the full width on the normal's negative side.
	Inward
	// Outward places the full width on the normal's positive side.
	Outward
)

// Options configures a stroke tessellation.
type Options[N geom2d.Number[N]] struct {
	Width      N
	Gravity    Gravity
	Closed     bool
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit N
	// Precision bounds the recursive bisection depth used to
	// approximate round joins and round caps (2^Precision-1
	// intermediate points per join arc, whatever its angle, and per
	// quarter turn of a round cap); it plays the role the
	// original header's precision parameter plays for fixed-point
	// intermediates, here repurposed as an arc-subdivision budget
	// since the numeric type itself (not a separate precision knob)
	// already controls fixed-point rounding.
	Precision int
}

// Result is the tessellated stroke: the offset outline's vertices plus
// a triangulation of that outline.
type Result[N geom2d.Number[N]] struct {
	Vertices []geom2d.Vec2[N]
	Triangles triangulate.Result
}

// RequiredVerticesSize upper-bounds the vertex count Tessellate can
// produce for an n-point path, so callers can pre-size buffers (spec's
// supplemented sizing-helper feature).
func RequiredVerticesSize[N geom2d.Number[N]](n int, opts Options[N]) int {
	return requiredVerticesSize(n, opts.Closed, opts.Precision, opts.Cap)
}

// RequiredIndicesSize upper-bounds the index count for an n-point
// path's ear-clip triangulation (3*(vertices-2) for a simple polygon).
func RequiredIndicesSize[N geom2d.Number[N]](n int, opts Options[N]) int {
	v := requiredVerticesSize(n, opts.Closed, opts.Precision, opts.Cap)
	if v < 3 {
		return 0
	}
	return 3 * (v - 2)
}

func requiredVerticesSize(n int, closed bool, precision int, capStyle graphics.LineCapStyle) int {
	perJoin := 1 << uint(max(precision, 0))
	base := n * 2 * perJoin
	if !closed {
		capExtra := 2
		if capStyle == graphics.LineCapRound {
			capExtra = 2 * perJoin
		}
		base += 2 * capExtra
	}
	return base
}

// Tessellate builds the stroke outline for path and triangulates it
// via triangulate.EarClip (spec: "Stroke tessellator ... delegated to
// the triangulators").
func Tessellate[N geom2d.Number[N]](path []geom2d.Vec2[N], opts Options[N], wantBoundary bool) Result[N] {
	outline := buildOutline(path, opts)
	if len(outline) < 3 {
		return Result[N]{Vertices: outline}
	}
	tri := triangulate.EarClip(outline, wantBoundary)
	return Result[N]{Vertices: outline, Triangles: tri}
}

// gravityOffsets returns the (positive-normal-side, negative-normal-side)
// offset distances for the given width and gravity.
func gravityOffsets[N geom2d.Number[N]](width N, g Gravity) (dPos, dNeg N) {
	half := width.Div(width.FromInt(2))
	switch g {
	case Inward:
		return width.FromInt(0), width
	case Outward:
		return width, width.FromInt(0)
	default:
		return half, half
	}
}
