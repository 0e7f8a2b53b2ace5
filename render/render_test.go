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

package render

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	geomlang "github.com/rokobo/2D-objects-language"
)

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestMatrix(t *testing.T) {
	s := DefaultScene()
	m := s.matrix()

	cases := []struct {
		world, device vec.Vec2
	}{
		{vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 256, Y: 256}},
		{vec.Vec2{X: -10, Y: -10}, vec.Vec2{X: 0, Y: 512}},
		{vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 512, Y: 0}},
		{vec.Vec2{X: -10, Y: 10}, vec.Vec2{X: 0, Y: 0}},
	}
	for _, c := range cases {
		if got := apply(m, c.world); !near(got, c.device) {
			t.Errorf("apply(m, %v) = %v, want %v", c.world, got, c.device)
		}
	}
}

func TestChord(t *testing.T) {
	s := DefaultScene()

	a, b := s.chord(geomlang.Line{M: 1, B: 0})
	if a != (vec.Vec2{X: -10, Y: -10}) || b != (vec.Vec2{X: 10, Y: 10}) {
		t.Errorf("line chord = %v, %v", a, b)
	}

	a, b = s.chord(geomlang.VerticalLine{X: 3})
	if a != (vec.Vec2{X: 3, Y: -10}) || b != (vec.Vec2{X: 3, Y: 10}) {
		t.Errorf("vline chord = %v, %v", a, b)
	}
}

func TestImageSegment(t *testing.T) {
	s := DefaultScene()
	img := s.Image(geomlang.Seg(-5, 0, 5, 0))

	// the segment runs through the middle of the raster
	if a := img.AlphaAt(256, 256).A; a == 0 {
		t.Error("no coverage at the segment midpoint")
	}
	if a := img.AlphaAt(128, 256).A; a == 0 {
		t.Error("no coverage at the segment start")
	}
	// far away from the segment the raster stays clear
	if a := img.AlphaAt(256, 50).A; a != 0 {
		t.Errorf("unexpected coverage %d far from the segment", a)
	}
	if a := img.AlphaAt(20, 256).A; a != 0 {
		t.Errorf("unexpected coverage %d beyond the segment end", a)
	}
}

func TestImagePoint(t *testing.T) {
	s := DefaultScene()
	img := s.Image(geomlang.Pt(0, 0))

	if a := img.AlphaAt(256, 256).A; a == 0 {
		t.Error("no coverage at the point")
	}
	if a := img.AlphaAt(300, 256).A; a != 0 {
		t.Errorf("unexpected coverage %d away from the point", a)
	}
}

func TestImageLines(t *testing.T) {
	s := DefaultScene()

	// a horizontal line spans the whole raster width
	img := s.Image(geomlang.Line{M: 0, B: 5})
	row := (10 - 5) * 512 / 20
	for _, x := range []int{10, 256, 500} {
		if a := img.AlphaAt(x, row).A; a == 0 {
			t.Errorf("no coverage at (%d, %d)", x, row)
		}
	}

	// a vertical line spans the whole raster height
	img = s.Image(geomlang.VerticalLine{X: 0})
	for _, y := range []int{10, 256, 500} {
		if a := img.AlphaAt(256, y).A; a == 0 {
			t.Errorf("no coverage at (256, %d)", y)
		}
	}
}

func TestImageEmpty(t *testing.T) {
	s := DefaultScene()
	img := s.Image(geomlang.Empty{})
	for i, a := range img.Pix {
		if a != 0 {
			t.Fatalf("pixel %d has coverage %d, want a blank image", i, a)
		}
	}
}

func TestWritePNG(t *testing.T) {
	s := DefaultScene()

	var buf bytes.Buffer
	err := s.WritePNG(&buf, geomlang.Pt(0, 0), geomlang.Seg(-5, 0, 5, 0))
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 512 || b.Dy() != 512 {
		t.Errorf("decoded size %dx%d, want 512x512", b.Dx(), b.Dy())
	}
}

func TestWritePDF(t *testing.T) {
	s := DefaultScene()
	path := filepath.Join(t.TempDir(), "scene.pdf")

	err := s.WritePDF(path,
		geomlang.Pt(0, 0),
		geomlang.Seg(-5, 0, 5, 0),
		geomlang.Line{M: 1, B: 0},
		geomlang.VerticalLine{X: 3},
		geomlang.Empty{})
	if err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PDF file")
	}
}
