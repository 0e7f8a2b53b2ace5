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

var lineCases = []Case{
	{
		Name: "coincident",
		A:    ln(1, 0),
		B:    ln(1, 0),
		Want: ln(1, 0),
	},
	{
		Name: "coincident_close",
		A:    ln(2, 3),
		B:    ln(2.000001, 3.000001),
		Want: ln(2, 3),
	},
	{
		Name: "parallel",
		A:    ln(1, 0),
		B:    ln(1, 5),
		Want: empty,
	},
	{
		Name: "crossing",
		A:    ln(1, 0),
		B:    ln(-1, 4),
		Want: pt(2, 2),
	},
	{
		Name: "crossing_steep",
		A:    ln(10, 0),
		B:    ln(-10, 20),
		Want: pt(1, 10),
	},
	{
		Name: "segment_cross",
		A:    ln(1, 0),
		B:    seg(0, 2, 4, 2),
		Want: pt(2, 2),
	},
	{
		// the crossing point lies outside the segment
		Name: "segment_miss",
		A:    ln(1, 0),
		B:    seg(5, 2, 9, 2),
		Want: empty,
	},
	{
		Name: "segment_parallel",
		A:    ln(0, 0),
		B:    seg(0, 1, 10, 1),
		Want: empty,
	},
	{
		// the segment lies on the line
		Name: "segment_colinear",
		A:    ln(0.5, 1),
		B:    seg(2, 2, 6, 4),
		Want: seg(2, 2, 6, 4),
	},
	{
		Name: "segment_colinear_negative",
		A:    ln(-1, 0),
		B:    seg(-3, 3, 4, -4),
		Want: seg(-3, 3, 4, -4),
	},
}
