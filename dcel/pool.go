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

package dcel

// Pool is a bump-allocated arena of T, indexed by position. It backs
// every record array in a Mesh (vertices, half-edges, faces, conflict
// nodes).
//
// The design notes call for two pool kinds, static (sized once from
// input counts, bump-only) and dynamic (unbounded growth from
// incremental splits), both with the same bulk-teardown contract. In
// Go a slice already amortizes growth past its initial capacity, so a
// single Pool type serves both roles: Reserve gives the "static"
// up-front sizing, and further Alloc calls past that capacity are the
// "dynamic" growth — there is no behavioral difference to a caller
// holding indices into the pool, and splitting the backing array in
// two would only complicate the index space.
type Pool[T any] struct {
	items []T
}

// Reserve grows the pool's capacity to at least n without changing its
// length, for the static, input-count-derived sizing pass.
func (p *Pool[T]) Reserve(n int) {
	if cap(p.items) < n {
		grown := make([]T, len(p.items), n)
		copy(grown, p.items)
		p.items = grown
	}
}

// Alloc appends a new zero-valued T and returns its index.
func (p *Pool[T]) Alloc() int {
	var zero T
	p.items = append(p.items, zero)
	return len(p.items) - 1
}

// Get returns a pointer to the record at index i, valid until the next
// Alloc that reallocates the backing array.
func (p *Pool[T]) Get(i int) *T {
	return &p.items[i]
}

// Len returns the number of records allocated.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Reset empties the pool but keeps its backing storage, implementing
// the bulk-teardown-at-destruction contract: all records become
// invalid at once, and the next pipeline invocation reuses the
// allocation.
func (p *Pool[T]) Reset() {
	p.items = p.items[:0]
}
