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

// Colinear segment pairs, exercising all four overlap outcomes on
// both comparison axes.
var colinearCases = []Case{
	{
		Name: "overlap",
		A:    seg(0, 0, 10, 0),
		B:    seg(5, 0, 15, 0),
		Want: seg(5, 0, 10, 0),
	},
	{
		Name: "disjoint",
		A:    seg(0, 0, 2, 0),
		B:    seg(3, 0, 5, 0),
		Want: empty,
	},
	{
		// end meets start, the overlap is a single point
		Name: "touching",
		A:    seg(0, 0, 5, 0),
		B:    seg(5, 0, 9, 0),
		Want: pt(5, 0),
	},
	{
		Name: "containment",
		A:    seg(0, 0, 10, 0),
		B:    seg(2, 0, 6, 0),
		Want: seg(2, 0, 6, 0),
	},
	{
		Name: "identical",
		A:    seg(1, 2, 7, 5),
		B:    seg(1, 2, 7, 5),
		Want: seg(1, 2, 7, 5),
	},
	{
		Name: "shared_end",
		A:    seg(0, 0, 10, 0),
		B:    seg(4, 0, 10, 0),
		Want: seg(4, 0, 10, 0),
	},
	{
		Name: "diagonal_overlap",
		A:    seg(0, 0, 4, 4),
		B:    seg(2, 2, 6, 6),
		Want: seg(2, 2, 4, 4),
	},
	{
		Name: "negative_overlap",
		A:    seg(-10, -10, -2, -2),
		B:    seg(-6, -6, 0, 0),
		Want: seg(-6, -6, -2, -2),
	},
	{
		// a gap smaller than epsilon counts as touching
		Name: "sub_epsilon_gap",
		A:    seg(0, 0, 5, 0),
		B:    seg(5.000001, 0, 9, 0),
		Want: pt(5, 0),
	},
	{
		Name: "vertical_overlap",
		A:    seg(0, 0, 0, 10),
		B:    seg(0, 5, 0, 15),
		Want: seg(0, 5, 0, 10),
	},
	{
		Name: "vertical_touch",
		A:    seg(2, 0, 2, 4),
		B:    seg(2, 4, 2, 8),
		Want: pt(2, 4),
	},
	{
		Name: "vertical_disjoint",
		A:    seg(1, 0, 1, 2),
		B:    seg(1, 3, 1, 5),
		Want: empty,
	},
	{
		Name: "vertical_containment",
		A:    seg(4, -8, 4, 8),
		B:    seg(4, -1, 4, 1),
		Want: seg(4, -1, 4, 1),
	},
}
