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

var verticalCases = []Case{
	{
		Name: "same",
		A:    vert(2),
		B:    vert(2),
		Want: vert(2),
	},
	{
		Name: "close",
		A:    vert(2),
		B:    vert(2.000001),
		Want: vert(2),
	},
	{
		Name: "distinct",
		A:    vert(2),
		B:    vert(5),
		Want: empty,
	},
	{
		Name: "line_cross",
		A:    vert(2),
		B:    ln(1, 0),
		Want: pt(2, 2),
	},
	{
		Name: "line_cross_negative",
		A:    vert(-3),
		B:    ln(2, 1),
		Want: pt(-3, -5),
	},
	{
		Name: "segment_cross",
		A:    vert(5),
		B:    seg(0, 0, 10, 0),
		Want: pt(5, 0),
	},
	{
		Name: "segment_endpoint",
		A:    vert(10),
		B:    seg(0, 0, 10, 0),
		Want: pt(10, 0),
	},
	{
		Name: "segment_miss",
		A:    vert(20),
		B:    seg(0, 0, 10, 0),
		Want: empty,
	},
	{
		// the segment lies on the vertical line
		Name: "segment_colinear",
		A:    vert(3),
		B:    seg(3, 1, 3, 9),
		Want: seg(3, 1, 3, 9),
	},
}
