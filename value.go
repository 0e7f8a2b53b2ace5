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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Numerical tolerance for geometric comparisons.
const (
	// epsilon is the absolute tolerance used by every coordinate and
	// coefficient comparison. Two floats less than epsilon apart are
	// treated as equal.
	epsilon = 1e-5
)

// closeTo reports whether a and b are within epsilon of each other.
// The bound is strict: |a-b| must be less than epsilon, so values
// exactly epsilon apart are distinct. The relation is not transitive.
func closeTo(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// pointsClose reports whether two coordinate pairs are closeTo-equal
// in both components.
func pointsClose(a, b vec.Vec2) bool {
	return closeTo(a.X, b.X) && closeTo(a.Y, b.Y)
}

// between reports whether x lies between the bounds lo and hi, which
// need not be ordered, inclusive within epsilon on both ends.
func between(x, lo, hi float64) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return x > lo-epsilon && x < hi+epsilon
}

// Value is a geometric object in the plane. The five kinds are
// [Empty], [Point], [Line], [VerticalLine] and [Segment]; the
// interface is sealed, no other implementations exist.
//
// Values are immutable. Every operation returns a new Value and
// leaves its operands unchanged, so values can be shared freely.
type Value interface {
	// Intersect returns the set of points common to the receiver and
	// other. The operation is commutative: a.Intersect(b) and
	// b.Intersect(a) are Equal for all well-formed operands. Segment
	// operands must be in canonical form (see Seg and Normalize).
	Intersect(other Value) Value

	// Shift returns the value translated by (dx, dy).
	Shift(dx, dy float64) Value

	// Equal reports whether other has the same kind as the receiver
	// and all defining fields are closeTo-equal.
	Equal(other Value) bool

	// String returns the value in source syntax, e.g. "(point 1 2)".
	String() string

	// Double dispatch handlers. The receiver is intersected with the
	// argument, whose kind has already been resolved by Intersect.
	intersectEmpty(e Empty) Value
	intersectPoint(p Point) Value
	intersectLine(l Line) Value
	intersectVertical(v VerticalLine) Value
	intersectSegment(s Segment) Value

	// clipTo restricts the receiver to the extent of s. The receiver
	// must lie on the carrier line of s.
	clipTo(s Segment) Value

	// preprocess rewrites the value into canonical form. Identity for
	// every kind except Segment.
	preprocess() Value
}

// Empty is the value containing no points.
type Empty struct{}

// Point is a single location in the plane.
type Point struct {
	vec.Vec2
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{vec.Vec2{X: x, Y: y}}
}

// Line is a non-vertical infinite line y = M*x + B.
type Line struct {
	M float64 // slope
	B float64 // y-intercept
}

// VerticalLine is the infinite line x = X.
type VerticalLine struct {
	X float64
}

// Segment is a finite line segment between two distinct endpoints.
//
// In canonical form A is the leftmost endpoint; when the x
// coordinates are within epsilon of each other, A is the lower one.
// Seg and Normalize establish canonical form, Intersect requires it.
type Segment struct {
	A, B vec.Vec2
}

// Seg returns the segment from (x1, y1) to (x2, y2) in canonical
// form. Endpoints within epsilon of each other collapse the segment
// to a Point.
func Seg(x1, y1, x2, y2 float64) Value {
	return Segment{
		A: vec.Vec2{X: x1, Y: y1},
		B: vec.Vec2{X: x2, Y: y2},
	}.preprocess()
}

// Shift returns the receiver: the empty set is invariant under
// translation.
func (e Empty) Shift(dx, dy float64) Value { return e }

// Shift returns the point translated by (dx, dy).
func (p Point) Shift(dx, dy float64) Value {
	return Point{p.Add(vec.Vec2{X: dx, Y: dy})}
}

// Shift returns the translated line. The slope is unchanged; the
// intercept moves so that every point (x, y) on the line maps to
// (x+dx, y+dy).
func (l Line) Shift(dx, dy float64) Value {
	return Line{M: l.M, B: l.B + dy - l.M*dx}
}

// Shift returns the line moved horizontally by dx. Vertical lines
// are invariant under vertical translation.
func (v VerticalLine) Shift(dx, dy float64) Value {
	return VerticalLine{X: v.X + dx}
}

// Shift returns the segment with both endpoints translated.
func (s Segment) Shift(dx, dy float64) Value {
	d := vec.Vec2{X: dx, Y: dy}
	return Segment{A: s.A.Add(d), B: s.B.Add(d)}
}

func (e Empty) preprocess() Value        { return e }
func (p Point) preprocess() Value        { return p }
func (l Line) preprocess() Value         { return l }
func (v VerticalLine) preprocess() Value { return v }

// preprocess returns the canonical form of the segment. Endpoints
// within epsilon of each other collapse to a Point at the first
// endpoint. Otherwise the endpoints are ordered leftmost first;
// x coordinates within epsilon count as a tie, broken by the lower y.
// The tie test must match the one used by carrier, so that a
// nearly-vertical segment is ordered along the axis the intersection
// engine will compare on.
func (s Segment) preprocess() Value {
	if pointsClose(s.A, s.B) {
		return Point{s.A}
	}
	var swap bool
	if closeTo(s.A.X, s.B.X) {
		swap = s.B.Y < s.A.Y
	} else {
		swap = s.B.X < s.A.X
	}
	if swap {
		return Segment{A: s.B, B: s.A}
	}
	return s
}

// Equal reports whether other is also Empty.
func (e Empty) Equal(other Value) bool {
	_, ok := other.(Empty)
	return ok
}

// Equal reports whether other is a Point within epsilon of p.
func (p Point) Equal(other Value) bool {
	o, ok := other.(Point)
	return ok && pointsClose(p.Vec2, o.Vec2)
}

// Equal reports whether other is a Line with closeTo-equal slope and
// intercept.
func (l Line) Equal(other Value) bool {
	o, ok := other.(Line)
	return ok && closeTo(l.M, o.M) && closeTo(l.B, o.B)
}

// Equal reports whether other is a VerticalLine at closeTo the same x.
func (v VerticalLine) Equal(other Value) bool {
	o, ok := other.(VerticalLine)
	return ok && closeTo(v.X, o.X)
}

// Equal reports whether other is a Segment with closeTo-equal
// endpoints, compared in canonical order.
func (s Segment) Equal(other Value) bool {
	o, ok := other.(Segment)
	return ok && pointsClose(s.A, o.A) && pointsClose(s.B, o.B)
}

func (e Empty) String() string { return "(empty)" }

func (p Point) String() string {
	return fmt.Sprintf("(point %g %g)", p.X, p.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("(line %g %g)", l.M, l.B)
}

func (v VerticalLine) String() string {
	return fmt.Sprintf("(vline %g)", v.X)
}

func (s Segment) String() string {
	return fmt.Sprintf("(segment %g %g %g %g)", s.A.X, s.A.Y, s.B.X, s.B.Y)
}
