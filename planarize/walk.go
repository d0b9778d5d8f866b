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

package planarize

import (
	"seehuhn.de/go/planar/dcel"
	"seehuhn.de/go/planar/geom2d"
)

// insertEdge processes one staged input edge through the inner walk of
// spec §4.1 step 4, clipping it through every trapeze it crosses until
// its full length has been represented in the mesh.
func insertEdge[N geom2d.Number[N]](m *dcel.Mesh[N], se stagedEdge) {
	e := se.fwd
	bTarget := m.Dest(e)
	windingSign := windingSignOf(m.Origin(e), bTarget)

	curOrigin := e
	for {
		face := m.HalfEdges.Get(curOrigin).ConflictFace
		if face == dcel.Nil {
			return
		}
		trap := dcel.DeriveTrapeze(m, face)
		a := m.Origin(curOrigin)

		bClass := dcel.Classify(m, trap, bTarget)
		var bPrime geom2d.Vec2[N]
		reached := false
		if bClass == dcel.StrictlyInside || bClass == dcel.BoundaryVertex {
			bPrime = bTarget
			reached = true
		} else {
			bPrime = clipToTrapeze(m, trap, a, bTarget)
		}

		aClass := dcel.Classify(m, trap, a)
		bPrimeClass := dcel.Classify(m, trap, bPrime)

		sameWall := aClass != dcel.StrictlyInside && aClass != dcel.Outside &&
			bPrimeClass != dcel.StrictlyInside && bPrimeClass != dcel.Outside &&
			wallOf(aClass) == wallOf(bPrimeClass) && wallOf(aClass) != notAWall

		var atBPrime int
		if sameWall {
			atBPrime = handleColinear(m, trap, wallOf(aClass), a, bPrime, windingSign)
		} else {
			atBPrime = handleFaceSplit(m, face, trap, a, bPrime, windingSign)
		}

		if reached || atBPrime == dcel.Nil {
			return
		}
		nextEdge := locateNextConflictEdge(m, atBPrime, bTarget)
		if nextEdge == dcel.Nil {
			return
		}
		curOrigin = nextEdge
		m.HalfEdges.Get(curOrigin).ConflictFace = m.HalfEdges.Get(nextEdge).Face
	}
}

// windingSignOf implements spec §4.1 step 3's colinear winding-sign
// rule: +1 if b.y < a.y, -1 if b.y > a.y, 0 if horizontal.
func windingSignOf[N geom2d.Number[N]](a, b geom2d.Vec2[N]) int {
	switch b.Y.Cmp(a.Y) {
	case -1:
		return 1
	case 1:
		return -1
	default:
		return 0
	}
}

type wallKind int

const (
	notAWall wallKind = iota
	wallLeft
	wallRight
	wallTop
	wallBottom
)

func wallOf(c dcel.PointClass) wallKind {
	switch c {
	case dcel.LeftWall:
		return wallLeft
	case dcel.RightWall:
		return wallRight
	case dcel.TopWall:
		return wallTop
	case dcel.BottomWall:
		return wallBottom
	default:
		return notAWall
	}
}

// clipToTrapeze intersects segment (a,b) against the trapeze's four
// walls and returns the clipped point with the largest parametric
// alpha along (a,b), its coordinates clamped to the crossed wall's own
// endpoint range (spec's numeric-robustness compensation).
func clipToTrapeze[N geom2d.Number[N]](m *dcel.Mesh[N], t dcel.Trapeze, a, b geom2d.Vec2[N]) geom2d.Vec2[N] {
	type candidate struct {
		alpha N
		pt    geom2d.Vec2[N]
		valid bool
	}
	var best candidate

	consider := func(wallA, wallB geom2d.Vec2[N]) {
		alpha, kind := geom2d.SegmentIntersection(a, b, wallA, wallB)
		if kind == geom2d.Parallel || kind == geom2d.NoIntersection {
			return
		}
		if best.valid && best.alpha.Cmp(alpha) >= 0 {
			return
		}
		pt := geom2d.Vec2[N]{X: a.X.Add(alpha.Mul(b.X.Sub(a.X))), Y: a.Y.Add(alpha.Mul(b.Y.Sub(a.Y)))}
		pt = clampToWall(wallA, wallB, pt)
		best = candidate{alpha: alpha, pt: pt, valid: true}
	}

	consider(m.Origin(t.LeftBottom), m.Origin(t.LeftTop))
	consider(m.Origin(t.RightBottom), m.Origin(t.RightTop))
	consider(m.Origin(t.LeftTop), m.Origin(t.RightTop))
	consider(m.Origin(t.LeftBottom), m.Origin(t.RightBottom))

	if !best.valid {
		return b
	}
	return best.pt
}

// clampToWall clamps p's coordinates to wallA/wallB's own endpoint
// range: x clamped to the vertical wall's x, y clamped to the
// endpoint y-range for a horizontal-ish wall.
func clampToWall[N geom2d.Number[N]](wallA, wallB, p geom2d.Vec2[N]) geom2d.Vec2[N] {
	if wallA.X.Cmp(wallB.X) == 0 {
		p.X = wallA.X
		lo, hi := wallA.Y, wallB.Y
		if hi.Cmp(lo) < 0 {
			lo, hi = hi, lo
		}
		if p.Y.Cmp(lo) < 0 {
			p.Y = lo
		} else if p.Y.Cmp(hi) > 0 {
			p.Y = hi
		}
		return p
	}
	lo, hi := wallA.X, wallB.X
	if hi.Cmp(lo) < 0 {
		lo, hi = hi, lo
	}
	if p.X.Cmp(lo) < 0 {
		p.X = lo
	} else if p.X.Cmp(hi) > 0 {
		p.X = hi
	}
	return p
}

// trySplitEdgeAt implements the contract of the same name in spec
// §4.1: returns the half-edge whose origin is p, splitting e (and its
// twin, if any) if p is strictly interior to the segment.
func trySplitEdgeAt[N geom2d.Number[N]](m *dcel.Mesh[N], e int, p geom2d.Vec2[N]) int {
	he := m.HalfEdges.Get(e)
	if p.Equal(m.Origin(e)) {
		return e
	}
	if he.Twin != dcel.Nil && p.Equal(m.Origin(he.Twin)) {
		return he.Twin
	}

	newVertex := m.AddVertex(p)
	newFwd := m.HalfEdges.Alloc()
	nf := m.HalfEdges.Get(newFwd)
	he = m.HalfEdges.Get(e)
	nf.Origin = newVertex
	nf.Face = he.Face
	nf.Winding = he.Winding
	nf.Kind = he.Kind
	nf.Next = he.Next
	nf.Prev = e
	m.HalfEdges.Get(he.Next).Prev = newFwd
	he.Next = newFwd
	m.Vertices.Get(newVertex).Edge = newFwd

	if he.Twin == dcel.Nil {
		nf.Twin = dcel.Nil
		return newFwd
	}

	// Twin side: "to" runs dest(D) -> origin(O) along the same physical
	// segment in reverse. The new piece continuing from the split point
	// P to O is spliced in *after* to, mirroring how newFwd (P->D) was
	// spliced in after he (O->P).
	twinOld := he.Twin
	to := m.HalfEdges.Get(twinOld)
	oldNext := to.Next
	newBack := m.HalfEdges.Alloc()
	to = m.HalfEdges.Get(twinOld)
	nb := m.HalfEdges.Get(newBack)
	nb.Origin = newVertex
	nb.Face = to.Face
	nb.Winding = to.Winding
	nb.Kind = to.Kind
	nb.Next = oldNext
	nb.Prev = twinOld
	m.HalfEdges.Get(oldNext).Prev = newBack
	to.Next = newBack
	m.Vertices.Get(newVertex).Edge = newFwd

	nf = m.HalfEdges.Get(newFwd)
	nf.Twin = twinOld
	to = m.HalfEdges.Get(twinOld)
	to.Twin = newFwd
	nb.Twin = e
	m.HalfEdges.Get(e).Twin = newBack

	return newFwd
}

// locateHalfEdgeOnFace walks face's boundary looking for a half-edge
// whose Origin is vertex, returning dcel.Nil if none is found.
func locateHalfEdgeOnFace[N geom2d.Number[N]](m *dcel.Mesh[N], face, vertex int) int {
	start := m.Faces.Get(face).Edge
	cur := start
	for {
		if m.HalfEdges.Get(cur).Origin == vertex {
			return cur
		}
		cur = m.HalfEdges.Get(cur).Next
		if cur == start {
			return dcel.Nil
		}
	}
}

// insertEdgeBetweenNonCoLinearVertices implements the contract of the
// same name in spec §4.1: splits face into two by inserting a new
// half-edge pair between the vertices that outA and outB originate
// from, redistributing face's conflict list across the two results.
func insertEdgeBetweenNonCoLinearVertices[N geom2d.Number[N]](m *dcel.Mesh[N], face, outA, outB int, winding int) (newFwd, newBack, faceA, faceB int) {
	inPrevA := m.HalfEdges.Get(outA).Prev
	inPrevB := m.HalfEdges.Get(outB).Prev

	newFwd, newBack = m.AddEdgePair(m.HalfEdges.Get(outA).Origin, m.HalfEdges.Get(outB).Origin)
	nf := m.HalfEdges.Get(newFwd)
	nb := m.HalfEdges.Get(newBack)
	nf.Winding, nb.Winding = winding, -winding
	nf.Kind, nb.Kind = dcel.Ignore, dcel.Ignore

	m.Splice(inPrevA, newFwd)
	m.Splice(newFwd, outB)
	m.Splice(inPrevB, newBack)
	m.Splice(newBack, outA)

	faceA = face
	faceB = m.AddFace(newBack)
	m.Faces.Get(faceA).Edge = newFwd
	m.SetFaceOfCycle(newFwd, faceA)
	m.SetFaceOfCycle(newBack, faceB)

	redistributeConflicts(m, face, faceA, faceB, m.Origin(newFwd), m.Origin(newBack))
	return newFwd, newBack, faceA, faceB
}

// redistributeConflicts implements spec §4.1's conflict-redistribution
// contract: classify each unprocessed edge's endpoints against the new
// separator (sepA -> sepB) and reinsert into the chosen face.
func redistributeConflicts[N geom2d.Number[N]](m *dcel.Mesh[N], oldFace, faceA, faceB int, sepA, sepB geom2d.Vec2[N]) {
	pending := m.ConflictEdges(oldFace)
	m.ClearConflicts(oldFace)
	if oldFace != faceA {
		m.ClearConflicts(faceA)
	}
	if oldFace != faceB {
		m.ClearConflicts(faceB)
	}

	for _, u := range pending {
		a := m.Origin(u)
		b := m.Dest(u)
		ca := geom2d.ClassifyPoint(sepA, sepB, a)
		var target int
		switch ca {
		case geom2d.CCW:
			target = faceA
		case geom2d.CW:
			target = faceB
		default:
			cb := geom2d.ClassifyPoint(sepA, sepB, b)
			switch cb {
			case geom2d.CCW:
				target = faceA
			case geom2d.CW:
				target = faceB
			default:
				target = faceA
			}
		}
		m.PushConflict(target, u)
	}
}

// handleFaceSplit implements spec §4.1 step 4's face-split branch:
// vertically cut the trapeze through a, then through b, then connect
// the two resulting wall vertices with a new half-edge pair.
func handleFaceSplit[N geom2d.Number[N]](m *dcel.Mesh[N], face int, trap dcel.Trapeze, a, b geom2d.Vec2[N], winding int) int {
	outA := verticalCutAt(m, face, trap, a)
	faceOfA := m.HalfEdges.Get(outA).Face
	outB := verticalCutAt(m, faceOfA, dcel.DeriveTrapeze(m, faceOfA), b)
	faceOfB := m.HalfEdges.Get(outB).Face

	if faceOfA != faceOfB {
		// b ended up split into the neighbouring half; look for a's
		// vertex on that face instead.
		if alt := locateHalfEdgeOnFace(m, faceOfB, m.HalfEdges.Get(outA).Origin); alt != dcel.Nil {
			outA = alt
			faceOfA = faceOfB
		}
	}
	_, newBack, _, _ := insertEdgeBetweenNonCoLinearVertices(m, faceOfA, outA, outB, winding)
	return newBack
}

// verticalCutAt vertically cuts trap through p's x-coordinate if p is
// not already a wall vertex, and returns the half-edge whose origin is
// the (possibly pre-existing) vertex at p.
func verticalCutAt[N geom2d.Number[N]](m *dcel.Mesh[N], face int, trap dcel.Trapeze, p geom2d.Vec2[N]) int {
	class := dcel.Classify(m, trap, p)
	switch class {
	case dcel.LeftWall:
		return verticesOnWall(m, trap, p, true)
	case dcel.RightWall:
		return verticesOnWall(m, trap, p, false)
	case dcel.BoundaryVertex:
		return locateHalfEdgeOnFace(m, face, vertexAt(m, trap, p))
	}

	topEdge := findChainSegment(m, trap.LeftTop, trap.RightTop, p.X)
	botEdge := findChainSegment(m, trap.RightBottom, trap.LeftBottom, p.X)
	topV := trySplitEdgeAt(m, topEdge, geom2d.Vec2[N]{X: p.X, Y: evalChainY(m, topEdge, p.X)})
	botV := trySplitEdgeAt(m, botEdge, geom2d.Vec2[N]{X: p.X, Y: evalChainY(m, botEdge, p.X)})

	topOnFace := locateHalfEdgeOnFace(m, face, m.HalfEdges.Get(topV).Origin)
	botOnFace := locateHalfEdgeOnFace(m, face, m.HalfEdges.Get(botV).Origin)
	if topOnFace == dcel.Nil || botOnFace == dcel.Nil {
		// Degenerate: fall back to returning whichever split vertex
		// exists; caller tolerates a degenerate trapeze per spec.
		if topOnFace != dcel.Nil {
			return topOnFace
		}
		return botOnFace
	}

	_, _, faceA, _ := insertEdgeBetweenNonCoLinearVertices(m, face, topOnFace, botOnFace, 0)
	return locateHalfEdgeOnFace(m, faceA, m.HalfEdges.Get(topV).Origin)
}

func vertexAt[N geom2d.Number[N]](m *dcel.Mesh[N], trap dcel.Trapeze, p geom2d.Vec2[N]) int {
	for _, e := range []int{trap.LeftTop, trap.LeftBottom, trap.RightTop, trap.RightBottom} {
		if m.Origin(e).Equal(p) {
			return m.HalfEdges.Get(e).Origin
		}
	}
	return dcel.Nil
}

func verticesOnWall[N geom2d.Number[N]](m *dcel.Mesh[N], trap dcel.Trapeze, p geom2d.Vec2[N], left bool) int {
	top, bot := trap.RightTop, trap.RightBottom
	if left {
		top, bot = trap.LeftTop, trap.LeftBottom
	}
	wallEdge := findChainSegment(m, bot, top, p.Y)
	return trySplitEdgeAt(m, wallEdge, p)
}

func findChainSegment[N geom2d.Number[N]](m *dcel.Mesh[N], from, to int, coord N) int {
	cur := from
	for {
		a, b := m.Origin(cur), m.Dest(cur)
		if withinRange(a.X, b.X, coord) || withinRange(a.Y, b.Y, coord) {
			return cur
		}
		if cur == to {
			return from
		}
		cur = m.HalfEdges.Get(cur).Next
	}
}

func withinRange[N geom2d.Number[N]](a, b, v N) bool {
	lo, hi := a, b
	if hi.Cmp(lo) < 0 {
		lo, hi = hi, lo
	}
	return v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0
}

func evalChainY[N geom2d.Number[N]](m *dcel.Mesh[N], edge int, x N) N {
	a, b := m.Origin(edge), m.Dest(edge)
	if a.X.Cmp(b.X) == 0 {
		return a.Y
	}
	t := x.Sub(a.X).Div(b.X.Sub(a.X))
	return a.Y.Add(t.Mul(b.Y.Sub(a.Y)))
}

// handleColinear implements spec §4.1 step 3: insert a and b as
// vertices on the shared wall (splitting as needed), adding winding to
// every half-edge of the inserted chain between them. The twin of each
// chain half-edge gets the opposite adjustment, preserving the
// invariant (spec §8 invariant 4) that a twinned pair's winding always
// sums to zero.
func handleColinear[N geom2d.Number[N]](m *dcel.Mesh[N], trap dcel.Trapeze, wall wallKind, a, b geom2d.Vec2[N], winding int) int {
	var from, to int
	switch wall {
	case wallLeft:
		from, to = trap.LeftBottom, trap.LeftTop
	case wallRight:
		from, to = trap.RightBottom, trap.RightTop
	case wallTop:
		from, to = trap.LeftTop, trap.RightTop
	case wallBottom:
		from, to = trap.RightBottom, trap.LeftBottom
	default:
		return dcel.Nil
	}

	eAt := findChainSegment(m, from, to, a.X)
	eA := trySplitEdgeAt(m, eAt, a)
	eBt := findChainSegment(m, from, to, b.X)
	eB := trySplitEdgeAt(m, eBt, b)

	cur := eA
	for i := 0; i < m.HalfEdges.Len(); i++ {
		he := m.HalfEdges.Get(cur)
		he.Winding += winding
		if he.Twin != dcel.Nil {
			m.HalfEdges.Get(he.Twin).Winding -= winding
		}
		if cur == eB {
			break
		}
		cur = he.Next
	}
	return eB
}

// locateNextConflictEdge implements spec §4.1 step 6: starting from
// any outgoing half-edge at the just-inserted vertex b', rotate around
// b' (via Twin.Next) and pick the outgoing half-edge e such that target
// is weakly left of e and strictly right of the next edge in rotation
// order — the face between them is where the remainder of the segment
// continues.
func locateNextConflictEdge[N geom2d.Number[N]](m *dcel.Mesh[N], atBPrime int, target geom2d.Vec2[N]) int {
	v := m.Origin(atBPrime)
	start := atBPrime
	cur := start
	for i := 0; i < m.HalfEdges.Len()+4; i++ {
		he := m.HalfEdges.Get(cur)
		if he.Twin == dcel.Nil {
			break
		}
		next := m.HalfEdges.Get(he.Twin).Next
		if next == dcel.Nil {
			break
		}
		leftOfCur := geom2d.ClassifyPoint(v, m.Dest(cur), target) != geom2d.CW
		rightOfNext := geom2d.ClassifyPoint(v, m.Dest(next), target) == geom2d.CW
		if leftOfCur && rightOfNext {
			return cur
		}
		cur = next
		if cur == start {
			break
		}
	}
	return dcel.Nil
}
