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

package planar

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/planar/chunker"
	"seehuhn.de/go/planar/geom2d"
	"seehuhn.de/go/planar/planarize"
	"seehuhn.de/go/planar/simplify"
	"seehuhn.de/go/planar/stroke"
	"seehuhn.de/go/planar/triangulate"
)

// toGeom converts a geom.vec.Vec2 to the engine's own float64-backed
// vector type.
func toGeom(v vec.Vec2) geom2d.Vec2[geom2d.Float64] {
	return geom2d.Vec2[geom2d.Float64]{X: geom2d.Float64(v.X), Y: geom2d.Float64(v.Y)}
}

// toVec converts back to geom.vec.Vec2.
func toVec(v geom2d.Vec2[geom2d.Float64]) vec.Vec2 {
	return vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
}

func toVecSlice(vs []geom2d.Vec2[geom2d.Float64]) []vec.Vec2 {
	out := make([]vec.Vec2, len(vs))
	for i, v := range vs {
		out[i] = toVec(v)
	}
	return out
}

// ChunkerFromVec builds a Chunker of float64 vectors from a slice of
// contours, each given as an ordered vertex ring.
func ChunkerFromVec(contours [][]vec.Vec2) *chunker.Chunker[geom2d.Vec2[geom2d.Float64]] {
	c := chunker.New[geom2d.Vec2[geom2d.Float64]]()
	for _, contour := range contours {
		pts := make([]geom2d.Vec2[geom2d.Float64], len(contour))
		for i, v := range contour {
			pts[i] = toGeom(v)
		}
		c.AddContour(pts...)
	}
	return c
}

// Face is the float64 convenience form of planarize.Face.
type Face struct {
	Ring    []vec.Vec2
	Winding int
	Filled  bool
}

// PlanarizeVec runs Planarize over float64 vec.Vec2 contours.
func PlanarizeVec(contours [][]vec.Vec2, rule WindingRule, seed uint64) ([]Face, error) {
	result, err := planarize.Planarize(ChunkerFromVec(contours), rule, seed)
	if err != nil {
		return nil, err
	}
	out := make([]Face, len(result.Faces))
	for i, f := range result.Faces {
		out[i] = Face{Ring: toVecSlice(f.Ring), Winding: f.Winding, Filled: f.Filled}
	}
	return out, nil
}

// Contour is the float64 convenience form of simplify.Contour.
type Contour struct {
	Vertices  []vec.Vec2
	Direction simplify.Direction
	Winding   int
}

// SimplifyVec runs Simplify over float64 vec.Vec2 contours.
func SimplifyVec(contours [][]vec.Vec2, seed uint64) ([]Contour, error) {
	pieces, err := simplify.Simplify(ChunkerFromVec(contours), seed)
	if err != nil {
		return nil, err
	}
	out := make([]Contour, len(pieces))
	for i, p := range pieces {
		out[i] = Contour{Vertices: toVecSlice(p.Vertices), Direction: p.Direction, Winding: p.Winding}
	}
	return out, nil
}

// TriangulateEarClipVec triangulates a float64 vec.Vec2 polygon.
func TriangulateEarClipVec(polygon []vec.Vec2, wantBoundary bool) triangulate.Result {
	pts := make([]geom2d.Vec2[geom2d.Float64], len(polygon))
	for i, v := range polygon {
		pts[i] = toGeom(v)
	}
	return triangulate.EarClip(pts, wantBoundary)
}

// StrokeOptions is the float64 convenience form of stroke.Options.
type StrokeOptions struct {
	Width      float64
	Gravity    stroke.Gravity
	Closed     bool
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Precision  int
}

// TessellateStrokeVec tessellates a stroke over a float64 vec.Vec2
// polyline.
func TessellateStrokeVec(path []vec.Vec2, opts StrokeOptions, wantBoundary bool) ([]vec.Vec2, triangulate.Result) {
	pts := make([]geom2d.Vec2[geom2d.Float64], len(path))
	for i, v := range path {
		pts[i] = toGeom(v)
	}
	res := stroke.Tessellate(pts, stroke.Options[geom2d.Float64]{
		Width:      geom2d.Float64(opts.Width),
		Gravity:    opts.Gravity,
		Closed:     opts.Closed,
		Cap:        opts.Cap,
		Join:       opts.Join,
		MiterLimit: geom2d.Float64(opts.MiterLimit),
		Precision:  opts.Precision,
	}, wantBoundary)
	return toVecSlice(res.Vertices), res.Triangles
}
