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

// Package planar is a thin facade over the engine's four pipeline
// stages: planarize, simplify, triangulate and stroke. Each stage is a
// pure function over caller-owned buffers, generic over any numeric
// type satisfying geom2d.Number; this package additionally exposes a
// float64 convenience layer for callers already working with
// seehuhn.de/go/geom's vec.Vec2 and path.Path types.
//
// Callers who want the full generality (fixed-point coordinates,
// custom arena reuse across calls) should use the subpackages
// (planarize, simplify, triangulate, stroke, geom2d, chunker) directly;
// this package exists for the common case.
package planar
