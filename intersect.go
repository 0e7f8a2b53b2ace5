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

// Intersection uses double dispatch: Intersect resolves the kind of
// its argument by calling one of the intersect* handlers on it,
// passing the receiver along. Each kind implements all five
// handlers, giving exhaustive coverage of the 25 ordered kind pairs
// without inspecting any value's type at run time.

func (e Empty) Intersect(other Value) Value        { return other.intersectEmpty(e) }
func (p Point) Intersect(other Value) Value        { return other.intersectPoint(p) }
func (l Line) Intersect(other Value) Value         { return other.intersectLine(l) }
func (v VerticalLine) Intersect(other Value) Value { return other.intersectVertical(v) }
func (s Segment) Intersect(other Value) Value      { return other.intersectSegment(s) }

// The empty set absorbs every intersection.

func (e Empty) intersectEmpty(Empty) Value          { return e }
func (e Empty) intersectPoint(Point) Value          { return e }
func (e Empty) intersectLine(Line) Value            { return e }
func (e Empty) intersectVertical(VerticalLine) Value { return e }
func (e Empty) intersectSegment(Segment) Value      { return e }

func (p Point) intersectEmpty(e Empty) Value           { return e }
func (p Point) intersectPoint(o Point) Value           { return pointPoint(o, p) }
func (p Point) intersectLine(l Line) Value             { return pointLine(p, l) }
func (p Point) intersectVertical(v VerticalLine) Value { return pointVertical(p, v) }
func (p Point) intersectSegment(s Segment) Value       { return reduceToCarrier(p, s) }

func (l Line) intersectEmpty(e Empty) Value           { return e }
func (l Line) intersectPoint(p Point) Value           { return pointLine(p, l) }
func (l Line) intersectLine(o Line) Value             { return lineLine(o, l) }
func (l Line) intersectVertical(v VerticalLine) Value { return lineVertical(l, v) }
func (l Line) intersectSegment(s Segment) Value       { return reduceToCarrier(l, s) }

func (v VerticalLine) intersectEmpty(e Empty) Value           { return e }
func (v VerticalLine) intersectPoint(p Point) Value           { return pointVertical(p, v) }
func (v VerticalLine) intersectLine(l Line) Value             { return lineVertical(l, v) }
func (v VerticalLine) intersectVertical(o VerticalLine) Value { return verticalVertical(o, v) }
func (v VerticalLine) intersectSegment(s Segment) Value       { return reduceToCarrier(v, s) }

func (s Segment) intersectEmpty(e Empty) Value           { return e }
func (s Segment) intersectPoint(p Point) Value           { return reduceToCarrier(p, s) }
func (s Segment) intersectLine(l Line) Value             { return reduceToCarrier(l, s) }
func (s Segment) intersectVertical(v VerticalLine) Value { return reduceToCarrier(v, s) }
func (s Segment) intersectSegment(o Segment) Value       { return reduceToCarrier(o, s) }

// pointPoint returns the point common to a and b, or Empty. When the
// points coincide within tolerance the result carries the coordinates
// of a.
func pointPoint(a, b Point) Value {
	if pointsClose(a.Vec2, b.Vec2) {
		return a
	}
	return Empty{}
}

// pointLine returns p if it lies on l, and Empty otherwise.
func pointLine(p Point, l Line) Value {
	if closeTo(p.Y, l.M*p.X+l.B) {
		return p
	}
	return Empty{}
}

// pointVertical returns p if it lies on v, and Empty otherwise.
func pointVertical(p Point, v VerticalLine) Value {
	if closeTo(p.X, v.X) {
		return p
	}
	return Empty{}
}

// lineLine intersects two non-vertical lines. Coincident lines yield
// a, parallel distinct lines yield Empty, and lines with different
// slopes yield their unique crossing point.
func lineLine(a, b Line) Value {
	if closeTo(a.M, b.M) {
		if closeTo(a.B, b.B) {
			return a
		}
		return Empty{}
	}
	x := (b.B - a.B) / (a.M - b.M)
	return Pt(x, a.M*x+a.B)
}

// lineVertical returns the point where l crosses the vertical line v.
// A non-vertical line always crosses a vertical one exactly once.
func lineVertical(l Line, v VerticalLine) Value {
	return Pt(v.X, l.M*v.X+l.B)
}

// verticalVertical intersects two vertical lines: the line itself if
// the x coordinates agree within tolerance, Empty otherwise.
func verticalVertical(a, b VerticalLine) Value {
	if closeTo(a.X, b.X) {
		return a
	}
	return Empty{}
}

// reduceToCarrier intersects a non-empty value k with the segment s:
// first k is intersected with the infinite carrier line of s, then
// the result is clipped to the extent of s.
func reduceToCarrier(k Value, s Segment) Value {
	return k.Intersect(s.carrier()).clipTo(s)
}

// carrier returns the infinite line through the segment's endpoints:
// a VerticalLine when the endpoints share their x coordinate within
// tolerance, a Line otherwise.
func (s Segment) carrier() Value {
	if closeTo(s.A.X, s.B.X) {
		return VerticalLine{X: s.A.X}
	}
	m := (s.B.Y - s.A.Y) / (s.B.X - s.A.X)
	return Line{M: m, B: s.A.Y - m*s.A.X}
}

func (e Empty) clipTo(Segment) Value { return e }

// clipTo keeps the point if it lies within the segment's coordinate
// ranges on both axes, inclusive within epsilon at each end.
func (p Point) clipTo(s Segment) Value {
	if between(p.X, s.A.X, s.B.X) && between(p.Y, s.A.Y, s.B.Y) {
		return p
	}
	return Empty{}
}

// An infinite line containing a segment clips to the segment itself.

func (l Line) clipTo(s Segment) Value         { return s }
func (v VerticalLine) clipTo(s Segment) Value { return s }

// clipTo computes the overlap of two colinear segments. Comparison
// runs along the y axis for vertical segments and along the x axis
// otherwise; canonical ordering guarantees start <= end on the chosen
// axis for both operands.
func (r Segment) clipTo(s Segment) Value {
	rA, rB, sA, sB := r.A.X, r.B.X, s.A.X, s.B.X
	if closeTo(r.A.X, r.B.X) {
		rA, rB, sA, sB = r.A.Y, r.B.Y, s.A.Y, s.B.Y
	}

	// lo is the segment that starts first on the chosen axis.
	lo, hi := r, s
	loEnd, hiStart, hiEnd := rB, sA, sB
	if sA < rA {
		lo, hi = s, r
		loEnd, hiStart, hiEnd = sB, rA, rB
	}

	switch {
	case closeTo(loEnd, hiStart):
		// the segments meet end to start
		return Point{lo.B}
	case loEnd < hiStart:
		return Empty{} // disjoint
	case loEnd > hiEnd:
		return hi // hi contained in lo
	default:
		return Segment{A: hi.A, B: lo.B}
	}
}
