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

package testcases

// Programs contains complete programs in source syntax together with
// their expected results.
var Programs = []ProgramCase{
	{
		Name: "point_literal",
		Src:  "(point 1 2)",
		Want: pt(1, 2),
	},
	{
		Name: "empty_literal",
		Src:  "(empty)",
		Want: empty,
	},
	{
		Name: "shift_line",
		Src:  "(shift 1 1 (line 2 3))",
		Want: ln(2, 2),
	},
	{
		Name: "shift_point",
		Src:  "(shift -2 3 (point 5 5))",
		Want: pt(3, 8),
	},
	{
		Name: "vline_cross",
		Src:  "(intersect (vline 2) (line 1 0))",
		Want: pt(2, 2),
	},
	{
		Name: "let_binding",
		Src: `(let p (point 1 1)
  (intersect p (shift 1 1 (point 0 0))))`,
		Want: pt(1, 1),
	},
	{
		Name: "let_shadowing",
		Src: `(let p (point 1 1)
  (let p (point 2 2)
    p))`,
		Want: pt(2, 2),
	},
	{
		// the outer binding is visible again after the inner scope
		Name: "shadow_restore",
		Src: `(let a (point 1 1)
  (intersect (let a (point 5 5) a) a))`,
		Want: empty,
	},
	{
		// segment literals are canonicalized before evaluation
		Name: "raw_segments",
		Src:  "(intersect (segment 15 0 5 0) (segment 0 0 10 0))",
		Want: seg(5, 0, 10, 0),
	},
	{
		Name: "segment_collapse",
		Src:  "(intersect (segment 1 1 1.0000001 1.0000001) (point 1 1))",
		Want: pt(1, 1),
	},
	{
		Name: "empty_absorbs",
		Src:  "(intersect (empty) (line 1 0))",
		Want: empty,
	},
	{
		Name: "nested_shift",
		Src:  "(shift 1 0 (shift 0 1 (segment 0 0 2 0)))",
		Want: seg(1, 1, 3, 1),
	},
	{
		Name: "comments",
		Src: `; a crossing
(intersect (line 1 0) (line -1 4)) ; meets at (2, 2)`,
		Want: pt(2, 2),
	},
	{
		Name:    "unbound",
		Src:     "(intersect (point 0 0) q)",
		Unbound: "q",
	},
	{
		// a let binding does not leak out of its body
		Name:    "unbound_after_scope",
		Src:     "(intersect (let a (point 1 1) a) a)",
		Unbound: "a",
	},
}
