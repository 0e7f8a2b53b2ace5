// 2D-objects-language - a small language of planar geometric objects
// Copyright (C) 2026  The 2D-objects-language authors
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

// Package testcases provides the shared test corpus for the
// interpreter: intersection cases covering every ordered pair of
// value kinds, segment normalization cases, and complete programs.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	geomlang "github.com/rokobo/2D-objects-language"
)

// Case is one intersection test: A intersected with B must equal
// Want. Drivers run both operand orders.
type Case struct {
	Name string
	A, B geomlang.Value
	Want geomlang.Value
}

// SegmentCase is one normalization test for a segment literal
// written in arbitrary order.
type SegmentCase struct {
	Name string
	In   geomlang.Segment
	Want geomlang.Value
}

// ProgramCase is one end-to-end test: source text and either the
// value it evaluates to or the name of the variable it fails on.
type ProgramCase struct {
	Name    string
	Src     string
	Want    geomlang.Value
	Unbound string // non-empty if evaluation must fail
}

// Constructors shared by the case tables.

func pt(x, y float64) geomlang.Point { return geomlang.Pt(x, y) }

func ln(m, b float64) geomlang.Line { return geomlang.Line{M: m, B: b} }

func vert(x float64) geomlang.VerticalLine { return geomlang.VerticalLine{X: x} }

// seg builds a canonical segment (or point, if degenerate).
func seg(x1, y1, x2, y2 float64) geomlang.Value {
	return geomlang.Seg(x1, y1, x2, y2)
}

// rawseg builds a segment exactly as written, bypassing
// canonicalization.
func rawseg(x1, y1, x2, y2 float64) geomlang.Segment {
	return geomlang.Segment{
		A: vec.Vec2{X: x1, Y: y1},
		B: vec.Vec2{X: x2, Y: y2},
	}
}

var empty = geomlang.Empty{}
