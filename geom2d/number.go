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

// Package geom2d provides a 2D vector type and the orientation and
// segment-intersection predicates the core algorithms are built from.
//
// The geometry is parameterized over any numeric type satisfying
// Number, so the same code paths serve both IEEE float64 and a
// fixed-point rational (see seehuhn.de/go/planar/internal/fixedpt).
// Comparisons go through Cmp/Sign/IsZero rather than operators, never
// an epsilon, matching the exact-equality contract the planarizer
// depends on.
package geom2d

import "math"

// Number is the algebraic contract the engine requires of its
// coordinate type: the four arithmetic operations, negation, and exact
// ordering/equality. Implementations must never introduce tolerance
// into Cmp, Sign, or IsZero.
type Number[T any] interface {
	comparable
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Cmp(T) int
	Sign() int
	IsZero() bool
	// One returns the multiplicative identity of the same concrete
	// representation as the receiver (for fixed-point types this
	// depends on the receiver's fractional-bit count, hence a method
	// rather than a free function).
	One() T
	// FromInt returns the integer k represented in the same concrete
	// representation as the receiver (again receiver-scoped so a
	// fixed-point type can pick up the right fractional-bit count).
	FromInt(k int) T
	// Sqrt returns the non-negative square root, used only by the
	// stroke tessellator to normalize offset directions. The result is
	// undefined for negative receivers.
	Sqrt() T
}

// Float64 adapts the built-in float64 to the Number interface.
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Div(b Float64) Float64 { return a / b }
func (a Float64) Neg() Float64          { return -a }

func (a Float64) Cmp(b Float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (a Float64) Sign() int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	default:
		return 0
	}
}

func (a Float64) IsZero() bool { return a == 0 }

func (a Float64) One() Float64 { return 1 }

func (a Float64) FromInt(k int) Float64 { return Float64(k) }

func (a Float64) Sqrt() Float64 { return Float64(math.Sqrt(float64(a))) }
