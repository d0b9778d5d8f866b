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

package stroke

import (
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/planar/geom2d"
)

type segment[N geom2d.Number[N]] struct {
	A, B geom2d.Vec2[N]
	T    geom2d.Vec2[N] // unit tangent, A -> B
}

// buildSegments computes unit tangents for each polyline edge,
// dropping zero-length edges (the "distinct neighbour" skip rule also
// used by the simplifier's direction inference).
func buildSegments[N geom2d.Number[N]](path []geom2d.Vec2[N], closed bool) []segment[N] {
	n := len(path)
	limit := n - 1
	if closed {
		limit = n
	}
	segs := make([]segment[N], 0, limit)
	for i := 0; i < limit; i++ {
		a := path[i]
		b := path[(i+1)%n]
		d := b.Sub(a)
		if d.Dot(d).IsZero() {
			continue
		}
		segs = append(segs, segment[N]{A: a, B: b, T: normalize(d)})
	}
	return segs
}

func normalOf[N geom2d.Number[N]](t geom2d.Vec2[N]) geom2d.Vec2[N] {
	return geom2d.Vec2[N]{X: t.Y.Neg(), Y: t.X}
}

func negateVec[N geom2d.Number[N]](v geom2d.Vec2[N]) geom2d.Vec2[N] {
	return geom2d.Vec2[N]{X: v.X.Neg(), Y: v.Y.Neg()}
}

func offsetFromDir[N geom2d.Number[N]](p, dir geom2d.Vec2[N], d N) geom2d.Vec2[N] {
	return geom2d.Vec2[N]{X: p.X.Add(dir.X.Mul(d)), Y: p.Y.Add(dir.Y.Mul(d))}
}

// cornerApex computes the single point where the offset lines of two
// adjacent unit tangents t1, t2 at corner P meet, offset by distance d
// on the side given by side (+1 or -1), via the half-angle bisector
// construction: for tangents separated by angle theta, the apex lies
// along normalize(n1+n2) at distance d/cos(theta/2) from P, and
// cos(theta/2) = sqrt((1+cos theta)/2). Reports ok=false for an
// exactly collinear or cusp corner, where no finite apex exists.
func cornerApex[N geom2d.Number[N]](p, t1, t2 geom2d.Vec2[N], d N, side int) (geom2d.Vec2[N], bool) {
	var zero geom2d.Vec2[N]
	if t1.Cross(t2).IsZero() {
		return zero, false
	}
	cosTheta := t1.Dot(t2)
	sum := cosTheta.Add(cosTheta.One())
	if sum.Sign() <= 0 {
		return zero, false
	}
	halfAngle := sum.Div(sum.FromInt(2)).Sqrt()
	if halfAngle.IsZero() {
		return zero, false
	}
	n1, n2 := normalOf(t1), normalOf(t2)
	bis := geom2d.Vec2[N]{X: n1.X.Add(n2.X), Y: n1.Y.Add(n2.Y)}
	if side < 0 {
		bis = negateVec(bis)
	}
	bis = normalize(bis)
	dist := d.Div(halfAngle)
	return offsetFromDir(p, bis, dist), true
}

// innerOffset returns the point(s) to use on the concave side of a
// corner: the single apex point when one exists, or both straight
// offset points as a fallback (spec's numeric-robustness style:
// degrade gracefully rather than divide by a near-zero denominator).
func innerOffset[N geom2d.Number[N]](p, t1, t2 geom2d.Vec2[N], d N, side int) []geom2d.Vec2[N] {
	if apex, ok := cornerApex(p, t1, t2, d, side); ok {
		return []geom2d.Vec2[N]{apex}
	}
	n1, n2 := normalOf(t1), normalOf(t2)
	if side < 0 {
		n1, n2 = negateVec(n1), negateVec(n2)
	}
	return []geom2d.Vec2[N]{offsetFromDir(p, n1, d), offsetFromDir(p, n2, d)}
}

// outerJoin returns the extra points (if any) to insert between the
// two already-emitted straight offset points on the convex side of a
// corner, per opts.Join.
func outerJoin[N geom2d.Number[N]](p, t1, t2 geom2d.Vec2[N], d N, side int, opts Options[N]) []geom2d.Vec2[N] {
	switch opts.Join {
	case graphics.LineJoinRound:
		n1, n2 := normalOf(t1), normalOf(t2)
		if side < 0 {
			n1, n2 = negateVec(n1), negateVec(n2)
		}
		dirs := bisectArc(n1, n2, opts.Precision)
		pts := make([]geom2d.Vec2[N], len(dirs))
		for i, dir := range dirs {
			pts[i] = offsetFromDir(p, dir, d)
		}
		return pts
	case graphics.LineJoinMiter:
		apex, ok := cornerApex(p, t1, t2, d, side)
		if !ok {
			return nil
		}
		ratio := apex.Sub(p)
		ratioLen := ratio.Dot(ratio).Sqrt().Div(d)
		if ratioLen.Cmp(opts.MiterLimit) <= 0 {
			return []geom2d.Vec2[N]{apex}
		}
		return nil
	default: // LineJoinBevel
		return nil
	}
}

// capPoints returns the bridging points for an open path's end,
// ordered from the offset point on the segNormal side (at distance
// dPos) to the offset point on the opposite side (at distance dNeg),
// given the outward unit tangent. The straight
// offset points themselves are appended by the caller; capPoints
// returns only what goes strictly between them. The bulge radius for
// square/round caps uses the average of dPos and dNeg, a documented
// simplification for gravity-asymmetric strokes (an exact per-side
// radius would need two independent arcs meeting off-center).
func capPoints[N geom2d.Number[N]](p, outward geom2d.Vec2[N], segNormal geom2d.Vec2[N], dPos, dNeg N, opts Options[N]) []geom2d.Vec2[N] {
	avg := dPos.Add(dNeg).Div(dPos.FromInt(2))
	switch opts.Cap {
	case graphics.LineCapSquare:
		ext := offsetFromDir(p, outward, avg)
		return []geom2d.Vec2[N]{
			offsetFromDir(ext, segNormal, dPos),
			offsetFromDir(ext, negateVec(segNormal), dNeg),
		}
	case graphics.LineCapRound:
		posDir := segNormal
		negDir := negateVec(segNormal)
		first := bisectArc(posDir, outward, opts.Precision)
		second := bisectArc(outward, negDir, opts.Precision)
		pts := make([]geom2d.Vec2[N], 0, len(first)+1+len(second))
		for _, dir := range first {
			pts = append(pts, offsetFromDir(p, dir, avg))
		}
		pts = append(pts, offsetFromDir(p, outward, avg))
		for _, dir := range second {
			pts = append(pts, offsetFromDir(p, dir, avg))
		}
		return pts
	default: // LineCapButt
		return nil
	}
}

// buildOutline constructs the closed offset polygon for path per opts
// (spec §4.6): a forward pass along the +N side and a backward pass
// along the -N side, with join geometry at interior corners and cap
// geometry (open paths only) bridging the two passes at each end.
func buildOutline[N geom2d.Number[N]](path []geom2d.Vec2[N], opts Options[N]) []geom2d.Vec2[N] {
	segs := buildSegments(path, opts.Closed)
	if len(segs) == 0 {
		return nil
	}
	dPos, dNeg := gravityOffsets(opts.Width, opts.Gravity)

	var out []geom2d.Vec2[N]
	n := len(segs)

	corner := func(p geom2d.Vec2[N], t1, t2 geom2d.Vec2[N], side int, d N) []geom2d.Vec2[N] {
		cross := t1.Cross(t2)
		switch {
		case cross.IsZero():
			n1 := normalOf(t1)
			if side < 0 {
				n1 = negateVec(n1)
			}
			return []geom2d.Vec2[N]{offsetFromDir(p, n1, d)}
		case (cross.Sign() > 0) == (side > 0):
			// inner side of a turn toward this side's normal
			return innerOffset(p, t1, t2, d, side)
		default:
			n1 := normalOf(t1)
			if side < 0 {
				n1 = negateVec(n1)
			}
			pts := []geom2d.Vec2[N]{offsetFromDir(p, n1, d)}
			pts = append(pts, outerJoin(p, t1, t2, d, side, opts)...)
			n2 := normalOf(t2)
			if side < 0 {
				n2 = negateVec(n2)
			}
			pts = append(pts, offsetFromDir(p, n2, d))
			return pts
		}
	}

	if opts.Closed {
		for i := 0; i < n; i++ {
			prev := segs[(i-1+n)%n]
			out = append(out, corner(segs[i].A, prev.T, segs[i].T, +1, dPos)...)
		}
		for i := n - 1; i >= 0; i-- {
			next := segs[(i+1)%n]
			out = append(out, corner(segs[i].B, negateVec(next.T), negateVec(segs[i].T), +1, dNeg)...)
		}
		return out
	}

	out = append(out, offsetFromDir(segs[0].A, normalOf(segs[0].T), dPos))
	for i := 0; i < n-1; i++ {
		out = append(out, corner(segs[i].B, segs[i].T, segs[i+1].T, +1, dPos)...)
	}
	out = append(out, offsetFromDir(segs[n-1].B, normalOf(segs[n-1].T), dPos))

	out = append(out, capPoints(segs[n-1].B, segs[n-1].T, normalOf(segs[n-1].T), dPos, dNeg, opts)...)

	out = append(out, offsetFromDir(segs[n-1].B, negateVec(normalOf(segs[n-1].T)), dNeg))
	for i := n - 1; i > 0; i-- {
		out = append(out, corner(segs[i].A, negateVec(segs[i].T), negateVec(segs[i-1].T), +1, dNeg)...)
	}
	out = append(out, offsetFromDir(segs[0].A, negateVec(normalOf(segs[0].T)), dNeg))

	out = append(out, capPoints(segs[0].A, negateVec(segs[0].T), negateVec(normalOf(segs[0].T)), dNeg, dPos, opts)...)

	return out
}
