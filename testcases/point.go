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

var pointCases = []Case{
	{
		Name: "same",
		A:    pt(1, 1),
		B:    pt(1, 1),
		Want: pt(1, 1),
	},
	{
		Name: "close",
		A:    pt(1, 1),
		B:    pt(1.000001, 0.999995),
		Want: pt(1, 1),
	},
	{
		Name: "distinct",
		A:    pt(1, 1),
		B:    pt(2, 2),
		Want: empty,
	},
	{
		// exactly epsilon apart is not close
		Name: "epsilon_apart",
		A:    pt(0, 0),
		B:    pt(0.00001, 0),
		Want: empty,
	},
	{
		Name: "on_line",
		A:    pt(2, 5),
		B:    ln(2, 1),
		Want: pt(2, 5),
	},
	{
		Name: "off_line",
		A:    pt(2, 6),
		B:    ln(2, 1),
		Want: empty,
	},
	{
		Name: "on_vline",
		A:    pt(3, 7),
		B:    vert(3),
		Want: pt(3, 7),
	},
	{
		Name: "off_vline",
		A:    pt(3.1, 7),
		B:    vert(3),
		Want: empty,
	},
	{
		Name: "on_segment",
		A:    pt(5, 0),
		B:    seg(0, 0, 10, 0),
		Want: pt(5, 0),
	},
	{
		Name: "segment_endpoint",
		A:    pt(10, 0),
		B:    seg(0, 0, 10, 0),
		Want: pt(10, 0),
	},
	{
		// on the carrier line but past the end
		Name: "beyond_segment",
		A:    pt(11, 0),
		B:    seg(0, 0, 10, 0),
		Want: empty,
	},
	{
		Name: "off_segment",
		A:    pt(5, 1),
		B:    seg(0, 0, 10, 0),
		Want: empty,
	},
	{
		// the segment is vertical within tolerance
		Name: "near_vertical",
		A:    pt(0, 2),
		B:    seg(0, 0, 0.000001, 4),
		Want: pt(0, 2),
	},
}
