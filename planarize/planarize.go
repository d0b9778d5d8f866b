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

// Package planarize implements the randomized incremental trapezoidal
// decomposition (the "planarize_division" algorithm): given a chunker
// of (possibly self-intersecting) contours, it builds a doubly
// connected edge list whose faces are all trapezes, with every input
// segment represented as a union of half-edges and every half-edge
// carrying an accumulated signed winding contribution.
package planarize

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"seehuhn.de/go/planar/chunker"
	"seehuhn.de/go/planar/dcel"
	"seehuhn.de/go/planar/geom2d"
)

// WindingRule selects how accumulated winding numbers are turned into
// an inside/outside fill flag.
type WindingRule int

const (
	NonZero WindingRule = iota
	EvenOdd
)

// ErrInvalidInput is returned when a contour has fewer than 3 vertices.
var ErrInvalidInput = errors.New("planarize: contour must have at least 3 vertices")

// Face is one output face: its boundary ring of vertices in mesh
// traversal order, and whether the chosen winding rule marks it filled.
type Face[N geom2d.Number[N]] struct {
	Ring    []geom2d.Vec2[N]
	Winding int
	Filled  bool

	// FaceID and Edge let callers (notably the simplify package) keep
	// walking the mesh directly instead of only consuming the
	// flattened Ring.
	FaceID int
	Edge   int
}

// Result is the output of Planarize: the mesh itself (frozen once
// Planarize returns; spec's "mutation discipline") plus the list of
// interior faces (the frame/universe face is never included).
type Result[N geom2d.Number[N]] struct {
	Mesh  *dcel.Mesh[N]
	Faces []Face[N]
}

// frameInflation is the constant margin spec's frame construction step
// inflates the input bounding box by.
const frameInflation = 10

// Planarize runs the algorithm of spec §4.1 over contours, using rule
// to decide each face's fill flag, and seed to derive the
// reproducible random permutation of staged edges (spec §5: "the
// permutation MUST be derivable from a caller-supplied seed").
func Planarize[N geom2d.Number[N]](contours *chunker.Chunker[geom2d.Vec2[N]], rule WindingRule, seed uint64) (*Result[N], error) {
	if err := contours.Validate(3); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m := dcel.New[N]()
	frame, err := buildFrame(m, contours)
	if err != nil {
		return nil, err
	}

	staged := stageEdges(m, contours, frame)
	permute(staged, seed)

	for _, e := range staged {
		insertEdge(m, e)
	}

	faces := extractFaces(m, frame, rule)
	return &Result[N]{Mesh: m, Faces: faces}, nil
}

// buildFrame computes the bounding box of every input vertex, inflates
// it by frameInflation, and builds the quadrilateral universe face
// (spec §4.1 step 1: CCW, no twins).
func buildFrame[N geom2d.Number[N]](m *dcel.Mesh[N], contours *chunker.Chunker[geom2d.Vec2[N]]) (int, error) {
	var minP, maxP geom2d.Vec2[N]
	first := true
	for i := 0; i < contours.NumContours(); i++ {
		for _, p := range contours.Contour(i) {
			if first {
				minP, maxP = p, p
				first = false
				continue
			}
			minP = geom2d.Vec2[N]{X: minOf(minP.X, p.X), Y: minOf(minP.Y, p.Y)}
			maxP = geom2d.Vec2[N]{X: maxOf(maxP.X, p.X), Y: maxOf(maxP.Y, p.Y)}
		}
	}
	if first {
		return 0, ErrInvalidInput
	}

	margin := minP.X.FromInt(frameInflation)
	lo := geom2d.Vec2[N]{X: minP.X.Sub(margin), Y: minP.Y.Sub(margin)}
	hi := geom2d.Vec2[N]{X: maxP.X.Add(margin), Y: maxP.Y.Add(margin)}

	// CCW quad: bottom-left, bottom-right, top-right, top-left.
	corners := [4]geom2d.Vec2[N]{
		{X: lo.X, Y: lo.Y},
		{X: hi.X, Y: lo.Y},
		{X: hi.X, Y: hi.Y},
		{X: lo.X, Y: hi.Y},
	}

	vids := make([]int, 4)
	for i, c := range corners {
		vids[i] = m.AddVertex(c)
	}

	edges := make([]int, 4)
	for i := 0; i < 4; i++ {
		e := m.HalfEdges.Alloc()
		edges[i] = e
	}
	for i := 0; i < 4; i++ {
		he := m.HalfEdges.Get(edges[i])
		he.Origin = vids[i]
		he.Twin = dcel.Nil
		he.Kind = dcel.Ignore
		he.Next = edges[(i+1)%4]
		he.Prev = edges[(i+3)%4]
		m.Vertices.Get(vids[i]).Edge = edges[i]
	}
	face := m.AddFace(edges[0])
	m.SetFaceOfCycle(edges[0], face)
	return face, nil
}

func minOf[N geom2d.Number[N]](a, b N) N {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

func maxOf[N geom2d.Number[N]](a, b N) N {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

// stagedEdge is one input segment waiting to be inserted.
type stagedEdge struct {
	fwd int // half-edge index, a -> b; its Twin is b -> a
}

// stageEdges allocates a vertex and a twinned half-edge pair for every
// consecutive pair of vertices of every input contour (spec §4.1 step
// 2), enrolling each on the frame's conflict list.
func stageEdges[N geom2d.Number[N]](m *dcel.Mesh[N], contours *chunker.Chunker[geom2d.Vec2[N]], frame int) []stagedEdge {
	seen := make(map[geom2d.Vec2[N]]int)

	vertexFor := func(p geom2d.Vec2[N]) int {
		if id, ok := seen[p]; ok {
			return id
		}
		id := m.AddVertex(p)
		seen[p] = id
		return id
	}

	var staged []stagedEdge
	for c := 0; c < contours.NumContours(); c++ {
		pts := contours.Contour(c)
		n := len(pts)
		for i := 0; i < n; i++ {
			a := vertexFor(pts[i])
			b := vertexFor(pts[(i+1)%n])
			if a == b {
				continue
			}
			fwd, back := m.AddEdgePair(a, b)
			fe := m.HalfEdges.Get(fwd)
			be := m.HalfEdges.Get(back)
			fe.Kind, be.Kind = dcel.Input, dcel.Input
			fe.ConflictFace, be.ConflictFace = frame, frame
			m.PushConflict(frame, fwd)
			staged = append(staged, stagedEdge{fwd: fwd})
		}
	}
	return staged
}

// permute applies a seeded Fisher-Yates shuffle (spec §4.1 step 3,
// §5's seeded-permutation requirement).
func permute(edges []stagedEdge, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := len(edges) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// extractFaces walks every face reachable from the frame's interior
// neighbours and reports its boundary ring and fill flag, excluding the
// frame/universe face itself.
func extractFaces[N geom2d.Number[N]](m *dcel.Mesh[N], frame int, rule WindingRule) []Face[N] {
	visited := make(map[int]bool)
	var faces []Face[N]

	var visit func(faceID int)
	visit = func(faceID int) {
		if faceID == dcel.Nil || faceID == frame || visited[faceID] {
			return
		}
		visited[faceID] = true

		edgeID := m.Faces.Get(faceID).Edge
		ring, edges := m.Walk(edgeID)
		winding := 0
		cur := edgeID
		for {
			winding += m.HalfEdges.Get(cur).Winding
			cur = m.HalfEdges.Get(cur).Next
			if cur == edgeID {
				break
			}
		}
		filled := winding != 0
		if rule == EvenOdd {
			filled = winding%2 != 0
		}
		faces = append(faces, Face[N]{Ring: ring, Winding: winding, Filled: filled, FaceID: faceID, Edge: edgeID})

		for _, e := range edges {
			he := m.HalfEdges.Get(e)
			if he.Twin != dcel.Nil {
				visit(m.HalfEdges.Get(he.Twin).Face)
			}
		}
	}
	visit(m.HalfEdges.Get(m.Faces.Get(frame).Edge).Face)
	// Seed the walk from every face touching the frame too, in case the
	// frame interior isn't reachable from a single arbitrary start
	// (multiple disjoint input contours).
	frameEdge := m.Faces.Get(frame).Edge
	first := frameEdge
	for {
		he := m.HalfEdges.Get(frameEdge)
		if he.Twin != dcel.Nil {
			visit(m.HalfEdges.Get(he.Twin).Face)
		}
		frameEdge = he.Next
		if frameEdge == first {
			break
		}
	}
	return faces
}
