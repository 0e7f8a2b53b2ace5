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

package geomlang_test

import (
	"maps"
	"slices"
	"testing"

	geomlang "github.com/rokobo/2D-objects-language"
	"github.com/rokobo/2D-objects-language/testcases"
)

// TestIntersectCorpus checks every corpus case in both operand orders
// and then verifies that the corpus exercises all 25 ordered pairs of
// value kinds.
func TestIntersectCorpus(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			seen[kindOf(tc.A)+"_"+kindOf(tc.B)] = true
			seen[kindOf(tc.B)+"_"+kindOf(tc.A)] = true

			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				got := tc.A.Intersect(tc.B)
				if !got.Equal(tc.Want) {
					t.Errorf("A.Intersect(B) = %v, want %v", got, tc.Want)
				}
				rev := tc.B.Intersect(tc.A)
				if !rev.Equal(tc.Want) {
					t.Errorf("B.Intersect(A) = %v, want %v", rev, tc.Want)
				}
				if !got.Equal(rev) {
					t.Errorf("operand order changes the result: %v vs %v", got, rev)
				}
			})
		}
	}

	kinds := []string{"empty", "point", "line", "vline", "segment"}
	for _, a := range kinds {
		for _, b := range kinds {
			if !seen[a+"_"+b] {
				t.Errorf("no corpus case covers %s with %s", a, b)
			}
		}
	}
}

func kindOf(v geomlang.Value) string {
	switch v.(type) {
	case geomlang.Empty:
		return "empty"
	case geomlang.Point:
		return "point"
	case geomlang.Line:
		return "line"
	case geomlang.VerticalLine:
		return "vline"
	case geomlang.Segment:
		return "segment"
	}
	return "unknown"
}

// A segment intersected with itself is the whole segment.
func TestIntersectIdenticalSegments(t *testing.T) {
	s := geomlang.Seg(1, 2, 7, 5)
	got := s.Intersect(s)
	if !got.Equal(s) {
		t.Errorf("s.Intersect(s) = %v, want %v", got, s)
	}
}

func TestIntersectLeavesOperands(t *testing.T) {
	a := geomlang.Seg(0, 0, 10, 0)
	b := geomlang.Seg(5, 0, 15, 0)
	aBefore, bBefore := a, b
	_ = a.Intersect(b)
	if a != aBefore || b != bBefore {
		t.Error("Intersect modified an operand")
	}
}
