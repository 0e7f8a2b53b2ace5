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

// The empty set absorbs every kind.
var emptyCases = []Case{
	{
		Name: "empty",
		A:    empty,
		B:    empty,
		Want: empty,
	},
	{
		Name: "point",
		A:    empty,
		B:    pt(1, 2),
		Want: empty,
	},
	{
		Name: "line",
		A:    empty,
		B:    ln(1, 0),
		Want: empty,
	},
	{
		Name: "vline",
		A:    empty,
		B:    vert(3),
		Want: empty,
	},
	{
		Name: "segment",
		A:    empty,
		B:    seg(0, 0, 1, 1),
		Want: empty,
	},
}
