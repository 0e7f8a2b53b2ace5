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

// Segment pairs whose carriers differ. Colinear pairs are in
// colinear.go.
var segmentCases = []Case{
	{
		Name: "crossing",
		A:    seg(0, 0, 4, 4),
		B:    seg(0, 4, 4, 0),
		Want: pt(2, 2),
	},
	{
		// one endpoint lies in the interior of the other segment
		Name: "t_junction",
		A:    seg(0, 0, 10, 0),
		B:    seg(5, 0, 5, 5),
		Want: pt(5, 0),
	},
	{
		Name: "corner_touch",
		A:    seg(0, 0, 5, 5),
		B:    seg(5, 5, 10, 0),
		Want: pt(5, 5),
	},
	{
		Name: "parallel",
		A:    seg(0, 0, 4, 0),
		B:    seg(0, 1, 4, 1),
		Want: empty,
	},
	{
		// carriers cross outside both segments
		Name: "skew_miss",
		A:    seg(0, 0, 2, 2),
		B:    seg(3, 0, 5, -2),
		Want: empty,
	},
	{
		Name: "vertical_crossing",
		A:    seg(2, -2, 2, 2),
		B:    seg(0, 0, 4, 0),
		Want: pt(2, 0),
	},
	{
		Name: "near_vertical_cross",
		A:    seg(0, 0, 0.000001, 10),
		B:    seg(-5, 5, 5, 5),
		Want: pt(0, 5),
	},
}
