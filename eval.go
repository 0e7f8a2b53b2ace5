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

// environment is an immutable association list from variable names to
// values. nil is the empty environment. A binding is added by
// prepending, so the most recent binding for a name shadows earlier
// ones, and the earlier ones become visible again once the extended
// environment goes out of scope.
type environment struct {
	name string
	val  Value
	next *environment
}

// bind returns a new environment with name bound to val. The
// receiver is unchanged.
func (e *environment) bind(name string, val Value) *environment {
	return &environment{name: name, val: val, next: e}
}

// lookup returns the most recent binding for name.
func (e *environment) lookup(name string) (Value, bool) {
	for ; e != nil; e = e.next {
		if e.name == name {
			return e.val, true
		}
	}
	return nil, false
}

// UnboundVariableError is returned when evaluation reaches a variable
// with no binding in scope.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// Evaluate normalizes e and evaluates it in the empty environment.
// The only possible failure is an [UnboundVariableError] for a Var
// with no enclosing Let binding.
func Evaluate(e Expr) (Value, error) {
	return Normalize(e).eval(nil)
}

func (l Lit) eval(*environment) (Value, error) {
	return l.Val, nil
}

func (v Var) eval(env *environment) (Value, error) {
	val, ok := env.lookup(v.Name)
	if !ok {
		return nil, &UnboundVariableError{Name: v.Name}
	}
	return val, nil
}

func (l Let) eval(env *environment) (Value, error) {
	bound, err := l.Bind.eval(env)
	if err != nil {
		return nil, err
	}
	return l.Body.eval(env.bind(l.Name, bound))
}

func (i Intersect) eval(env *environment) (Value, error) {
	a, err := i.A.eval(env)
	if err != nil {
		return nil, err
	}
	b, err := i.B.eval(env)
	if err != nil {
		return nil, err
	}
	return a.Intersect(b), nil
}

func (s Shift) eval(env *environment) (Value, error) {
	v, err := s.Inner.eval(env)
	if err != nil {
		return nil, err
	}
	return v.Shift(s.Dx, s.Dy), nil
}
