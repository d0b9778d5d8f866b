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

// Package dcel implements a doubly connected edge list as an
// arena-and-index structure: vertices, half-edges and faces each live
// in their own Pool, and every cross-reference between records is a
// plain integer index rather than a pointer. This is the representation
// the design notes require for a cyclic graph that arenas, not a tree
// of owned references, must hold.
package dcel

import "seehuhn.de/go/planar/geom2d"

// Nil is the sentinel index meaning "no such record".
const Nil = -1

// EdgeKind tags whether a half-edge originates from the caller's input
// or was introduced by the planarizer itself (frame, splits).
type EdgeKind int

const (
	Unknown EdgeKind = iota
	Input
	Ignore
)

// Vertex is record V: coordinates plus one arbitrary outgoing
// half-edge. Invariant: Mesh.HalfEdge(v.Edge).Origin == the vertex's
// own index.
type Vertex[N geom2d.Number[N]] struct {
	Coords geom2d.Vec2[N]
	Edge   int
}

// HalfEdge is record E.
type HalfEdge struct {
	Origin       int
	Twin         int
	Next, Prev   int
	Face         int
	Winding      int
	Kind         EdgeKind
	ConflictFace int // back-reference while the edge is unprocessed
}

// Face is record F: one boundary half-edge plus the head of its
// conflict list.
type Face struct {
	Edge         int
	ConflictHead int
}

// Conflict is one node of a face's conflict list: an intrusive,
// singly linked list of unprocessed input edges known to lie in (or be
// incident to) that face.
type Conflict struct {
	Edge int // half-edge index of the unprocessed input edge
	Next int
}

// Mesh is the DCEL itself: four arenas plus nothing else. All mutation
// goes through its methods; there is no other valid way to build a
// consistent mesh.
type Mesh[N geom2d.Number[N]] struct {
	Vertices  Pool[Vertex[N]]
	HalfEdges Pool[HalfEdge]
	Faces     Pool[Face]
	Conflicts Pool[Conflict]
}

// New returns an empty Mesh.
func New[N geom2d.Number[N]]() *Mesh[N] {
	return &Mesh[N]{}
}

// Reset empties every arena, releasing the mesh for reuse. Nothing in
// this module calls it: Planarize returns the mesh it builds in its
// Result, so the arenas stay alive until the caller resets or drops it.
func (m *Mesh[N]) Reset() {
	m.Vertices.Reset()
	m.HalfEdges.Reset()
	m.Faces.Reset()
	m.Conflicts.Reset()
}

// AddVertex allocates a new vertex at coords with no outgoing edge set
// yet and returns its index.
func (m *Mesh[N]) AddVertex(coords geom2d.Vec2[N]) int {
	i := m.Vertices.Alloc()
	v := m.Vertices.Get(i)
	v.Coords = coords
	v.Edge = Nil
	return i
}

// AddEdgePair allocates two twinned half-edges, one from origin's
// vertex to dest's vertex and one the reverse, and returns (forward,
// backward) indices. Next/Prev are left as Nil; the caller splices
// them into the mesh topology separately.
func (m *Mesh[N]) AddEdgePair(origin, dest int) (fwd, back int) {
	fwd = m.HalfEdges.Alloc()
	back = m.HalfEdges.Alloc()
	ef := m.HalfEdges.Get(fwd)
	eb := m.HalfEdges.Get(back)
	ef.Origin, ef.Twin, ef.Next, ef.Prev, ef.Face, ef.ConflictFace = origin, back, Nil, Nil, Nil, Nil
	eb.Origin, eb.Twin, eb.Next, eb.Prev, eb.Face, eb.ConflictFace = dest, fwd, Nil, Nil, Nil, Nil
	if origin != Nil {
		m.Vertices.Get(origin).Edge = fwd
	}
	if dest != Nil {
		m.Vertices.Get(dest).Edge = back
	}
	return fwd, back
}

// Splice sets a.Next = b and b.Prev = a.
func (m *Mesh[N]) Splice(a, b int) {
	m.HalfEdges.Get(a).Next = b
	m.HalfEdges.Get(b).Prev = a
}

// AddFace allocates a face whose boundary is reached via edge e, with
// an empty conflict list.
func (m *Mesh[N]) AddFace(e int) int {
	i := m.Faces.Alloc()
	f := m.Faces.Get(i)
	f.Edge = e
	f.ConflictHead = Nil
	return i
}

// SetFaceOfCycle walks the half-edge cycle starting at e (following
// Next) and sets Face = face on every half-edge in the cycle, stopping
// when it returns to e. Used after a face split or merge to keep the
// Face pointers consistent with the new boundary.
func (m *Mesh[N]) SetFaceOfCycle(e, face int) {
	cur := e
	for {
		m.HalfEdges.Get(cur).Face = face
		cur = m.HalfEdges.Get(cur).Next
		if cur == e {
			break
		}
	}
}

// Walk returns the vertex coordinates around the boundary starting at
// e, following Next, stopping when it returns to e. It also returns
// the half-edges visited, in order.
func (m *Mesh[N]) Walk(e int) (verts []geom2d.Vec2[N], edges []int) {
	cur := e
	for {
		edges = append(edges, cur)
		verts = append(verts, m.Vertices.Get(m.HalfEdges.Get(cur).Origin).Coords)
		cur = m.HalfEdges.Get(cur).Next
		if cur == e {
			break
		}
	}
	return verts, edges
}

// PushConflict prepends edge u to face f's conflict list (LIFO, per
// the conflict-redistribution contract) and sets u's ConflictFace.
func (m *Mesh[N]) PushConflict(f, u int) {
	n := m.Conflicts.Alloc()
	face := m.Faces.Get(f)
	c := m.Conflicts.Get(n)
	c.Edge = u
	c.Next = face.ConflictHead
	face.ConflictHead = n
	m.HalfEdges.Get(u).ConflictFace = f
}

// PopConflict removes and returns the head conflict edge of face f, or
// Nil if the list is empty.
func (m *Mesh[N]) PopConflict(f int) int {
	face := m.Faces.Get(f)
	if face.ConflictHead == Nil {
		return Nil
	}
	c := m.Conflicts.Get(face.ConflictHead)
	edge := c.Edge
	face.ConflictHead = c.Next
	return edge
}

// ConflictEdges returns every unprocessed edge currently queued on
// face f's conflict list, head first.
func (m *Mesh[N]) ConflictEdges(f int) []int {
	var out []int
	for n := m.Faces.Get(f).ConflictHead; n != Nil; n = m.Conflicts.Get(n).Next {
		out = append(out, m.Conflicts.Get(n).Edge)
	}
	return out
}

// ClearConflicts empties face f's conflict list without visiting it.
func (m *Mesh[N]) ClearConflicts(f int) {
	m.Faces.Get(f).ConflictHead = Nil
}

// Origin returns the coordinates of half-edge e's origin vertex.
func (m *Mesh[N]) Origin(e int) geom2d.Vec2[N] {
	return m.Vertices.Get(m.HalfEdges.Get(e).Origin).Coords
}

// Dest returns the coordinates of half-edge e's destination vertex
// (the origin of its twin).
func (m *Mesh[N]) Dest(e int) geom2d.Vec2[N] {
	he := m.HalfEdges.Get(e)
	if he.Twin == Nil {
		return m.Vertices.Get(m.HalfEdges.Get(he.Next).Origin).Coords
	}
	return m.Vertices.Get(m.HalfEdges.Get(he.Twin).Origin).Coords
}
