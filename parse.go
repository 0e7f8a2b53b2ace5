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

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"seehuhn.de/go/geom/vec"
)

// Programs are written as s-expressions:
//
//	(empty)
//	(point X Y)
//	(line M B)
//	(vline X)
//	(segment X1 Y1 X2 Y2)
//	(intersect E1 E2)
//	(let NAME E1 E2)
//	(shift DX DY E)
//	NAME
//
// Coordinates are Go float literals. A semicolon starts a comment
// running to the end of the line. Segment literals are read as
// written; Normalize establishes canonical form.

// SyntaxError describes a failure to parse program text.
type SyntaxError struct {
	Line int // 1-based line number
	Msg  string

	incomplete bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// IsIncomplete reports whether err was caused by input that ended in
// the middle of a form. Interactive front-ends use this to read more
// input instead of reporting the error.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.incomplete
}

// Parse reads a single expression from src. Text after the
// expression is an error.
func Parse(src string) (Expr, error) {
	p := &parser{src: src, line: 1}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, &SyntaxError{Line: p.line, Msg: "empty input"}
	}
	e, err := p.form()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.fail("unexpected text after expression")
	}
	return e, nil
}

// ParseAll reads a whole program: a sequence of zero or more
// expressions.
func ParseAll(src string) ([]Expr, error) {
	p := &parser{src: src, line: 1}
	var exprs []Expr
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return exprs, nil
		}
		e, err := p.form()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
}

type parser struct {
	src  string
	pos  int
	line int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ';':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case '\n':
			p.line++
			p.pos++
		case ' ', '\t', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) fail(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) failIncomplete(format string, args ...any) error {
	return &SyntaxError{Line: p.line, Msg: fmt.Sprintf(format, args...), incomplete: true}
}

// form parses one expression. The caller has skipped leading space.
func (p *parser) form() (Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, p.failIncomplete("unexpected end of input")
	}
	switch p.src[p.pos] {
	case '(':
		return p.list()
	case ')':
		return nil, p.fail(`unexpected ")"`)
	}
	tok := p.atom()
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return nil, p.fail("a number is not an expression: %q", tok)
	}
	if !validName(tok) {
		return nil, p.fail("invalid name %q", tok)
	}
	return Var{Name: tok}, nil
}

func (p *parser) list() (Expr, error) {
	p.pos++ // consume "("
	op, err := p.name("operator")
	if err != nil {
		return nil, err
	}

	var e Expr
	switch op {
	case "empty":
		e = Lit{Val: Empty{}}
	case "point":
		args, err := p.numbers(op, 2)
		if err != nil {
			return nil, err
		}
		e = Lit{Val: Pt(args[0], args[1])}
	case "line":
		args, err := p.numbers(op, 2)
		if err != nil {
			return nil, err
		}
		e = Lit{Val: Line{M: args[0], B: args[1]}}
	case "vline":
		args, err := p.numbers(op, 1)
		if err != nil {
			return nil, err
		}
		e = Lit{Val: VerticalLine{X: args[0]}}
	case "segment":
		args, err := p.numbers(op, 4)
		if err != nil {
			return nil, err
		}
		e = Lit{Val: Segment{
			A: vec.Vec2{X: args[0], Y: args[1]},
			B: vec.Vec2{X: args[2], Y: args[3]},
		}}
	case "intersect":
		a, err := p.form()
		if err != nil {
			return nil, err
		}
		b, err := p.form()
		if err != nil {
			return nil, err
		}
		e = Intersect{A: a, B: b}
	case "let":
		name, err := p.name("variable name")
		if err != nil {
			return nil, err
		}
		bind, err := p.form()
		if err != nil {
			return nil, err
		}
		body, err := p.form()
		if err != nil {
			return nil, err
		}
		e = Let{Name: name, Bind: bind, Body: body}
	case "shift":
		args, err := p.numbers(op, 2)
		if err != nil {
			return nil, err
		}
		inner, err := p.form()
		if err != nil {
			return nil, err
		}
		e = Shift{Dx: args[0], Dy: args[1], Inner: inner}
	default:
		return nil, p.fail("unknown form (%s ...)", op)
	}

	if err := p.expectClose(op); err != nil {
		return nil, err
	}
	return e, nil
}

// name parses an identifier, used for operators and variable names.
func (p *parser) name(what string) (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return "", p.failIncomplete("unexpected end of input, expected %s", what)
	}
	switch p.src[p.pos] {
	case '(', ')':
		return "", p.fail("expected %s, found %q", what, p.src[p.pos])
	}
	tok := p.atom()
	if !validName(tok) {
		return "", p.fail("invalid %s %q", what, tok)
	}
	return tok, nil
}

// numbers parses n numeric arguments of the form (op ...).
func (p *parser) numbers(op string, n int) ([]float64, error) {
	args := make([]float64, n)
	for i := range args {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, p.failIncomplete("unexpected end of input in (%s ...)", op)
		}
		switch p.src[p.pos] {
		case ')':
			return nil, p.fail("not enough arguments to (%s ...)", op)
		case '(':
			return nil, p.fail("expected a number in (%s ...)", op)
		}
		tok := p.atom()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, p.fail("expected a number in (%s ...), found %q", op, tok)
		}
		args[i] = v
	}
	return args, nil
}

func (p *parser) expectClose(op string) error {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return p.failIncomplete("missing close paren for (%s ...)", op)
	}
	if p.src[p.pos] != ')' {
		return p.fail("too many arguments to (%s ...)", op)
	}
	p.pos++
	return nil
}

// atom returns the maximal run of non-delimiter characters at the
// current position.
func (p *parser) atom() string {
	start := p.pos
	for p.pos < len(p.src) && !isDelim(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', ';':
		return true
	}
	return false
}

// validName reports whether s is a usable identifier: a letter or
// underscore followed by letters, digits, underscores or dashes.
func validName(s string) bool {
	for i, r := range s {
		ok := unicode.IsLetter(r) || r == '_' ||
			i > 0 && (unicode.IsDigit(r) || r == '-')
		if !ok {
			return false
		}
	}
	return s != ""
}
