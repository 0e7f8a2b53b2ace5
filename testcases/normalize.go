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

// Segments contains canonicalization cases for segment literals.
var Segments = []SegmentCase{
	{
		Name: "already_canonical",
		In:   rawseg(1, 0, 5, 0),
		Want: seg(1, 0, 5, 0),
	},
	{
		Name: "reorder_x",
		In:   rawseg(5, 0, 1, 0),
		Want: seg(1, 0, 5, 0),
	},
	{
		Name: "reorder_y_tie",
		In:   rawseg(0, 5, 0, 1),
		Want: seg(0, 1, 0, 5),
	},
	{
		// x coordinates within epsilon count as tied, so the segment
		// is ordered by y, matching the axis the intersection engine
		// will compare on
		Name: "near_vertical_tie",
		In:   rawseg(0, 5, 0.000001, 1),
		Want: rawseg(0.000001, 1, 0, 5),
	},
	{
		Name: "collapse",
		In:   rawseg(1, 1, 1.0000001, 1.0000001),
		Want: pt(1, 1),
	},
	{
		// the collapsed point sits at the first endpoint as written
		Name: "collapse_first_endpoint",
		In:   rawseg(2, 3, 2.000001, 3.000004),
		Want: pt(2, 3),
	},
	{
		Name: "diagonal_reversed",
		In:   rawseg(4, 4, 0, 0),
		Want: seg(0, 0, 4, 4),
	},
	{
		// descending to the right is already canonical
		Name: "descending_kept",
		In:   rawseg(0, 4, 4, 0),
		Want: seg(0, 4, 4, 0),
	},
}
