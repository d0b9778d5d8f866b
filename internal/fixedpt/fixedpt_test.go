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

package fixedpt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	q := ToFixed(3.25, 8)
	assert.InDelta(t, 3.25, q.Float64(), 1.0/256)
}

func TestArithmetic(t *testing.T) {
	a := ToFixed(1.5, 16)
	b := ToFixed(2.25, 16)
	assert.InDelta(t, 3.75, a.Add(b).Float64(), 1e-4)
	assert.InDelta(t, -0.75, a.Sub(b).Float64(), 1e-4)
	assert.InDelta(t, 3.375, a.Mul(b).Float64(), 1e-3)
	assert.InDelta(t, 1.5/2.25, a.Div(b).Float64(), 1e-3)
}

func TestCmpSign(t *testing.T) {
	a := ToFixed(1, 16)
	b := ToFixed(2, 16)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, 1, a.Sign())
	assert.Equal(t, -1, a.Neg().Sign())
	assert.True(t, ToFixed(0, 16).IsZero())
}

func TestOneAndFromInt(t *testing.T) {
	zero := ToFixed(0, 16)
	assert.InDelta(t, 1.0, zero.One().Float64(), 1e-9)
	assert.InDelta(t, 5.0, zero.FromInt(5).Float64(), 1e-9)
}

func TestSqrt(t *testing.T) {
	q := ToFixed(9, 16)
	assert.InDelta(t, 3.0, q.Sqrt().Float64(), 1e-3)
}

func TestMismatchedBitsPanics(t *testing.T) {
	a := ToFixed(1, 8)
	b := ToFixed(1, 16)
	assert.Panics(t, func() { a.Add(b) })
}
