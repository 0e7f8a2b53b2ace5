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

package geomlang

// Normalize rewrites every segment literal in e into canonical form:
// degenerate segments become points, and endpoints are ordered
// leftmost first with x ties broken by the lower y coordinate.
// All other nodes are rebuilt unchanged around their normalized
// children. Normalize is idempotent and never modifies its input.
//
// Evaluate normalizes on its own; callers only need Normalize when
// they want to inspect or print the canonical tree.
func Normalize(e Expr) Expr {
	return e.normalize()
}

func (l Lit) normalize() Expr {
	return Lit{Val: l.Val.preprocess()}
}

func (v Var) normalize() Expr { return v }

func (l Let) normalize() Expr {
	return Let{Name: l.Name, Bind: l.Bind.normalize(), Body: l.Body.normalize()}
}

func (i Intersect) normalize() Expr {
	return Intersect{A: i.A.normalize(), B: i.B.normalize()}
}

func (s Shift) normalize() Expr {
	return Shift{Dx: s.Dx, Dy: s.Dy, Inner: s.Inner.normalize()}
}
