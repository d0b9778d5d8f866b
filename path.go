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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/planar/chunker"
	"seehuhn.de/go/planar/geom2d"
)

// FromPath flattens a path.Path's curves into polylines under ctm and
// collects its subpaths into a Chunker ready for Planarize or Simplify.
// Curve subdivision (Wang's-formula segment counts for cubics, the
// analogous error-vector bound for quadratics) is adapted from the
// teacher rasterizer's own flattenCubic/flattenQuadratic, with flatness
// measured in the same CTM-transformed, device-space sense.
func FromPath(p path.Path, ctm matrix.Matrix, flatness float64) *chunker.Chunker[geom2d.Vec2[geom2d.Float64]] {
	c := chunker.New[geom2d.Vec2[geom2d.Float64]]()

	transformLinear := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: ctm[0]*v.X + ctm[2]*v.Y, Y: ctm[1]*v.X + ctm[3]*v.Y}
	}

	var cur, start vec.Vec2
	var ring []geom2d.Vec2[geom2d.Float64]
	inSubpath := false

	flushSubpath := func() {
		if inSubpath && len(ring) >= 1 {
			c.AddContour(ring...)
		}
		ring = ring[:0]
		inSubpath = false
	}

	emit := func(from, to vec.Vec2) {
		if len(ring) == 0 {
			ring = append(ring, toGeom(from))
		}
		ring = append(ring, toGeom(to))
	}

	flattenQuadratic := func(p0, p1, p2 vec.Vec2) {
		e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
		eDev := transformLinear(e)
		n := 1
		if errDev := eDev.Length(); errDev > flatness {
			n = int(math.Ceil(math.Sqrt(errDev / flatness)))
		}
		prev := p0
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			omt := 1 - t
			pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
			emit(prev, pt)
			prev = pt
		}
	}

	flattenCubic := func(p0, p1, p2, p3 vec.Vec2) {
		d1 := p0.Sub(p1.Mul(2)).Add(p2)
		d2 := p1.Sub(p2.Mul(2)).Add(p3)
		d1Dev, d2Dev := transformLinear(d1), transformLinear(d2)
		mDev := max(d1Dev.Length(), d2Dev.Length())
		n := 1
		if mDev > 0 {
			if nFloat := math.Sqrt(3 * mDev / (4 * flatness)); nFloat > 1 {
				n = int(math.Ceil(nFloat))
			}
		}
		prev := p0
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			omt := 1 - t
			omt2, t2 := omt*omt, t*t
			pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
			emit(prev, pt)
			prev = pt
		}
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flushSubpath()
			cur = pts[0]
			start = cur
			inSubpath = true
		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			emit(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			flattenQuadratic(cur, pts[0], pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			flattenCubic(cur, pts[0], pts[1], pts[2])
			cur = pts[2]
		case path.CmdClose:
			if inSubpath {
				if cur != start {
					emit(cur, start)
				}
				cur = start
			}
		}
	}
	flushSubpath()

	return c
}
