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

// Package simplify resolves self-intersections, infers direction and
// nesting, and collapses holes, turning a chunker of arbitrary
// contours into a slice of simple, non-intersecting, hole-merged
// contours (spec §4.2).
package simplify

import (
	"seehuhn.de/go/planar/chunker"
	"seehuhn.de/go/planar/geom2d"
	"seehuhn.de/go/planar/planarize"
)

// Direction is a contour's inferred winding direction.
type Direction int

const (
	DirectionUnknown Direction = iota
	CW
	CCW
)

// Contour is one output ring plus its direction tag and accumulated
// winding depth (spec's "Contour (for simplifier output)" data model
// entry).
type Contour[N geom2d.Number[N]] struct {
	Vertices []geom2d.Vec2[N]
	Direction Direction
	Winding   int
}

// Simplify runs the full pipeline of spec §4.2: self-intersection
// resolution (delegated to the planarizer, see SPEC_FULL.md's
// "Supplemented features"), direction inference, inclusion-tree
// nesting, tag-and-merge, and hole bridging.
func Simplify[N geom2d.Number[N]](contours *chunker.Chunker[geom2d.Vec2[N]], seed uint64) ([]Contour[N], error) {
	pieces, err := simplifyComponents(contours, seed)
	if err != nil {
		return nil, err
	}

	for i := range pieces {
		pieces[i].Direction = inferDirection(pieces[i].Vertices)
	}

	root := buildInclusionTree(pieces)
	tagAndMerge(root, 0)

	merged := flattenWithBridges(root)
	return merged, nil
}

// simplifyComponents is the "collaborator producing simple pieces with
// per-piece direction" spec §4.2 step 1 names as out of scope: this
// module satisfies it by running the planarizer with the NonZero rule
// and reading off one simple contour per filled face (each face
// boundary is, by DCEL invariant 2, a simple closed walk).
func simplifyComponents[N geom2d.Number[N]](contours *chunker.Chunker[geom2d.Vec2[N]], seed uint64) ([]Contour[N], error) {
	result, err := planarize.Planarize(contours, planarize.NonZero, seed)
	if err != nil {
		return nil, err
	}
	var out []Contour[N]
	for _, f := range result.Faces {
		if !f.Filled {
			continue
		}
		out = append(out, Contour[N]{Vertices: f.Ring, Winding: f.Winding})
	}
	return out, nil
}
