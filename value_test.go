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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestCloseTo(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{0, 0.0000099, true},
		{0, 0.00001, false}, // exactly epsilon apart is not close
		{0, 0.1, false},
		{-1, -1.000004, true},
		{1e6, 1e6 + 0.000005, true},
		{5, 4.5, false},
	}
	for _, c := range cases {
		if got := closeTo(c.a, c.b); got != c.want {
			t.Errorf("closeTo(%g, %g) = %t, want %t", c.a, c.b, got, c.want)
		}
		if got := closeTo(c.b, c.a); got != c.want {
			t.Errorf("closeTo(%g, %g) = %t, want %t", c.b, c.a, got, c.want)
		}
	}
}

// Tolerant comparison is not transitive: each step of a chain can be
// within epsilon while the ends of the chain are not.
func TestCloseToNotTransitive(t *testing.T) {
	a, b, c := 0.0, 0.000008, 0.000016
	if !closeTo(a, b) || !closeTo(b, c) {
		t.Fatal("adjacent values must be close")
	}
	if closeTo(a, c) {
		t.Error("closeTo(a, c) = true, want false")
	}
}

func TestBetween(t *testing.T) {
	cases := []struct {
		x, lo, hi float64
		want      bool
	}{
		{5, 0, 10, true},
		{0, 0, 10, true},
		{10, 0, 10, true},
		{10.000001, 0, 10, true}, // within tolerance past the end
		{10.1, 0, 10, false},
		{-0.1, 0, 10, false},
		{5, 10, 0, true}, // bounds may come in either order
		{11, 10, 0, false},
	}
	for _, c := range cases {
		if got := between(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("between(%g, %g, %g) = %t, want %t",
				c.x, c.lo, c.hi, got, c.want)
		}
	}
}

func TestShift(t *testing.T) {
	cases := []struct {
		in     Value
		dx, dy float64
		want   Value
	}{
		{Empty{}, 3, 4, Empty{}},
		{Pt(1, 2), 3, 4, Pt(4, 6)},
		{Pt(1, 2), -1, -2, Pt(0, 0)},
		{Line{M: 2, B: 3}, 1, 1, Line{M: 2, B: 2}},
		{Line{M: 0, B: 0}, 5, 2, Line{M: 0, B: 2}},
		{VerticalLine{X: 2}, 3, -7, VerticalLine{X: 5}},
		{Seg(0, 0, 2, 0), 1, 1, Seg(1, 1, 3, 1)},
	}
	for _, c := range cases {
		got := c.in.Shift(c.dx, c.dy)
		if got != c.want {
			t.Errorf("%v.Shift(%g, %g) = %v, want %v",
				c.in, c.dx, c.dy, got, c.want)
		}
	}
}

func TestShiftLeavesOperand(t *testing.T) {
	p := Pt(1, 2)
	_ = p.Shift(5, 5)
	if p != Pt(1, 2) {
		t.Error("Shift modified its receiver")
	}
}

func TestSegCanonical(t *testing.T) {
	cases := []struct {
		name string
		got  Value
		want Value
	}{
		{
			"ordered",
			Seg(1, 0, 5, 0),
			Segment{A: vec.Vec2{X: 1, Y: 0}, B: vec.Vec2{X: 5, Y: 0}},
		},
		{
			"reordered_by_x",
			Seg(5, 0, 1, 0),
			Segment{A: vec.Vec2{X: 1, Y: 0}, B: vec.Vec2{X: 5, Y: 0}},
		},
		{
			"x_tie_reordered_by_y",
			Seg(0, 5, 0, 1),
			Segment{A: vec.Vec2{X: 0, Y: 1}, B: vec.Vec2{X: 0, Y: 5}},
		},
		{
			"collapses_to_first_endpoint",
			Seg(1, 1, 1.000001, 1.000002),
			Pt(1, 1),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Errorf("got %#v, want %#v", c.got, c.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{Empty{}, Empty{}, true},
		{Empty{}, Pt(0, 0), false},
		{Pt(1, 1), Pt(1.000001, 1), true},
		{Pt(1, 1), Pt(1.1, 1), false},
		{Line{M: 1, B: 2}, Line{M: 1.000001, B: 2}, true},
		{Line{M: 1, B: 2}, Line{M: 1, B: 3}, false},
		{Line{M: 0, B: 2}, VerticalLine{X: 2}, false},
		{VerticalLine{X: 2}, VerticalLine{X: 2.000001}, true},
		{VerticalLine{X: 2}, VerticalLine{X: 3}, false},
		{Seg(0, 0, 1, 1), Seg(0, 0, 1, 1.000001), true},
		{Seg(0, 0, 1, 1), Seg(0, 0, 2, 2), false},
		{Seg(0, 0, 1, 1), Pt(0, 0), false},
	}
	for _, c := range cases {
		if got := c.a.Equal(c.b); got != c.want {
			t.Errorf("%v.Equal(%v) = %t, want %t", c.a, c.b, got, c.want)
		}
		if got := c.b.Equal(c.a); got != c.want {
			t.Errorf("%v.Equal(%v) = %t, want %t", c.b, c.a, got, c.want)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Empty{}, "(empty)"},
		{Pt(1, 2.5), "(point 1 2.5)"},
		{Line{M: -1, B: 4}, "(line -1 4)"},
		{VerticalLine{X: 3}, "(vline 3)"},
		{Seg(0, 0, 10, 0), "(segment 0 0 10 0)"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestCarrier(t *testing.T) {
	if got := Seg(0, 0, 4, 2).(Segment).carrier(); got != (Line{M: 0.5, B: 0}) {
		t.Errorf("carrier = %v, want (line 0.5 0)", got)
	}
	if got := Seg(3, 1, 3, 9).(Segment).carrier(); got != (VerticalLine{X: 3}) {
		t.Errorf("carrier = %v, want (vline 3)", got)
	}

	// A nearly vertical segment uses the first endpoint's x
	// coordinate, matching how normalization orders the endpoints.
	s := Segment{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 0.000001, Y: 4}}
	if got := s.carrier(); got != (VerticalLine{X: 0}) {
		t.Errorf("carrier = %v, want (vline 0)", got)
	}
}
