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

package geom2d

// IntersectionKind classifies the outcome of SegmentIntersection.
type IntersectionKind int

const (
	// NoIntersection means the two segments, extended as lines, meet
	// outside at least one of the two parameter ranges [0,1].
	NoIntersection IntersectionKind = iota
	// Parallel means the two segments are collinear or parallel and
	// the standard two-line solve is degenerate.
	Parallel
	// Proper means the segments cross at a single point with both
	// parameters strictly inside (0,1).
	Proper
	// Improper means the segments meet at an endpoint of at least one
	// of them (a parameter equal to 0 or 1).
	Improper
)

// SegmentIntersection finds where the infinite line through (a,b) meets
// the infinite line through (c,d), expressed as the parameter Alpha
// such that the intersection point is a + Alpha*(b-a). Kind reports
// whether that point also lies within both segments' [0,1] ranges.
//
// This is the parametric intersection test the planarizer's inner walk
// uses against each of a trapeze's four walls (spec §4.1 step 2): the
// caller picks, among the walls a segment can cross, the intersection
// with the largest Alpha, then clamps the resulting point to the
// wall's own endpoint range for numeric robustness.
func SegmentIntersection[N Number[N]](a, b, c, d Vec2[N]) (alpha N, kind IntersectionKind) {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := r.Cross(s)
	if denom.IsZero() {
		var zero N
		return zero, Parallel
	}

	diff := c.Sub(a)
	t := diff.Cross(s).Div(denom)
	u := diff.Cross(r).Div(denom)

	if inUnitRange(t) && inUnitRange(u) {
		if t.IsZero() || u.IsZero() || t.Cmp(t.One()) == 0 || u.Cmp(u.One()) == 0 {
			return t, Improper
		}
		return t, Proper
	}
	return t, NoIntersection
}

func inUnitRange[N Number[N]](v N) bool {
	return v.Sign() >= 0 && v.Cmp(v.One()) <= 0
}
