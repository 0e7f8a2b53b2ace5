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

// Package render draws geometric values onto raster images and PDF
// pages.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	geomlang "github.com/rokobo/2D-objects-language"
)

// A Scene maps geometric values onto a raster. Bounds is the window
// of the plane that is shown; Width and Height give the raster size
// in pixels. LineWidth and PointRadius are in device pixels.
type Scene struct {
	Bounds rect.Rect
	Width  int
	Height int

	LineWidth   float64
	PointRadius float64
}

// DefaultScene shows the window from (-10, -10) to (10, 10) on a
// 512x512 pixel raster.
func DefaultScene() *Scene {
	return &Scene{
		Bounds:      rect.Rect{LLx: -10, LLy: -10, URx: 10, URy: 10},
		Width:       512,
		Height:      512,
		LineWidth:   2,
		PointRadius: 3,
	}
}

// matrix returns the world-to-device transformation. Device y grows
// downward, so the vertical axis is flipped.
func (s *Scene) matrix() matrix.Matrix {
	sx := float64(s.Width) / (s.Bounds.URx - s.Bounds.LLx)
	sy := float64(s.Height) / (s.Bounds.URy - s.Bounds.LLy)
	return matrix.Matrix{sx, 0, 0, -sy, -s.Bounds.LLx * sx, s.Bounds.URy * sy}
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Image renders the values onto a fresh alpha image. Points become
// filled dots, segments and lines become strokes of LineWidth, and
// the empty object draws nothing.
func (s *Scene) Image(values ...geomlang.Value) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, s.Width, s.Height))
	src := image.NewUniform(color.Alpha{A: 255})
	m := s.matrix()
	ras := vector.NewRasterizer(s.Width, s.Height)

	for _, v := range values {
		ras.Reset(s.Width, s.Height)
		switch v := v.(type) {
		case geomlang.Point:
			s.addDot(ras, apply(m, v.Vec2))
		case geomlang.Segment:
			s.addStroke(ras, apply(m, v.A), apply(m, v.B))
		case geomlang.Line, geomlang.VerticalLine:
			a, b := s.chord(v)
			s.addStroke(ras, apply(m, a), apply(m, b))
		default:
			continue
		}
		ras.Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst
}

// WritePNG renders the values and writes them to w as a PNG image.
func (s *Scene) WritePNG(w io.Writer, values ...geomlang.Value) error {
	return png.Encode(w, s.Image(values...))
}

// chord returns world endpoints for the visible part of an infinite
// line. The rasterizer clips to the raster, so the chord only needs
// to span the window.
func (s *Scene) chord(v geomlang.Value) (vec.Vec2, vec.Vec2) {
	switch v := v.(type) {
	case geomlang.Line:
		return vec.Vec2{X: s.Bounds.LLx, Y: v.M*s.Bounds.LLx + v.B},
			vec.Vec2{X: s.Bounds.URx, Y: v.M*s.Bounds.URx + v.B}
	case geomlang.VerticalLine:
		return vec.Vec2{X: v.X, Y: s.Bounds.LLy},
			vec.Vec2{X: v.X, Y: s.Bounds.URy}
	}
	return vec.Vec2{}, vec.Vec2{}
}

// addStroke adds a quad of width LineWidth along the device-space
// segment from a to b.
func (s *Scene) addStroke(ras *vector.Rasterizer, a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		s.addDot(ras, a)
		return
	}
	t := d.Mul(1 / length)         // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal
	h := n.Mul(s.LineWidth / 2)

	ras.MoveTo(float32(a.X+h.X), float32(a.Y+h.Y))
	ras.LineTo(float32(b.X+h.X), float32(b.Y+h.Y))
	ras.LineTo(float32(b.X-h.X), float32(b.Y-h.Y))
	ras.LineTo(float32(a.X-h.X), float32(a.Y-h.Y))
	ras.ClosePath()
}

// addDot adds a square of half-width PointRadius around the device
// point c.
func (s *Scene) addDot(ras *vector.Rasterizer, c vec.Vec2) {
	r := s.PointRadius
	ras.MoveTo(float32(c.X-r), float32(c.Y-r))
	ras.LineTo(float32(c.X+r), float32(c.Y-r))
	ras.LineTo(float32(c.X+r), float32(c.Y+r))
	ras.LineTo(float32(c.X-r), float32(c.Y+r))
	ras.ClosePath()
}
