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

import "fmt"

// Expr is a node of an expression tree. The five node kinds are
// [Lit], [Var], [Let], [Intersect] and [Shift]; the interface is
// sealed, no other implementations exist.
//
// Trees are immutable: Normalize returns a rebuilt tree, and
// evaluation never modifies its input.
type Expr interface {
	// String returns the expression in source syntax.
	String() string

	normalize() Expr
	eval(env *environment) (Value, error)
}

// Lit is a literal geometric value.
type Lit struct {
	Val Value
}

// Var references the value bound to a name by an enclosing Let.
type Var struct {
	Name string
}

// Let binds Name to the value of Bind while evaluating Body.
type Let struct {
	Name string
	Bind Expr
	Body Expr
}

// Intersect evaluates both operands and intersects the results.
type Intersect struct {
	A, B Expr
}

// Shift translates the value of Inner by (Dx, Dy).
type Shift struct {
	Dx, Dy float64
	Inner  Expr
}

func (l Lit) String() string { return l.Val.String() }

func (v Var) String() string { return v.Name }

func (l Let) String() string {
	return fmt.Sprintf("(let %s %s %s)", l.Name, l.Bind, l.Body)
}

func (i Intersect) String() string {
	return fmt.Sprintf("(intersect %s %s)", i.A, i.B)
}

func (s Shift) String() string {
	return fmt.Sprintf("(shift %g %g %s)", s.Dx, s.Dy, s.Inner)
}
