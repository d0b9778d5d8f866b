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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocAndGet(t *testing.T) {
	var p Pool[int]
	i0 := p.Alloc()
	i1 := p.Alloc()
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	*p.Get(i0) = 42
	assert.Equal(t, 42, *p.Get(i0))
	assert.Equal(t, 2, p.Len())
}

func TestReserveDoesNotChangeLen(t *testing.T) {
	var p Pool[int]
	p.Reserve(16)
	assert.Equal(t, 0, p.Len())
	assert.GreaterOrEqual(t, cap(p.items), 16)
}

func TestResetClearsButKeepsCapacity(t *testing.T) {
	var p Pool[int]
	p.Reserve(8)
	p.Alloc()
	p.Alloc()
	oldCap := cap(p.items)
	p.Reset()
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, oldCap, cap(p.items))
}
