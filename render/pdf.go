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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	geomlang "github.com/rokobo/2D-objects-language"
)

// WritePDF renders the values into a single-page PDF file. The page
// is Width x Height points and shows the same window as Image, with
// black shapes on the default white background.
func (s *Scene) WritePDF(path string, values ...geomlang.Value) error {
	paper := &pdf.Rectangle{
		URx: float64(s.Width),
		URy: float64(s.Height),
	}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF pages have their origin at the bottom left, the device
	// raster at the top left. Flip the y axis so both renderers
	// share one transformation.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(s.Height)})

	page.SetFillColor(color.DeviceGray(0))
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(s.LineWidth)

	m := s.matrix()
	for _, v := range values {
		switch v := v.(type) {
		case geomlang.Point:
			c := apply(m, v.Vec2)
			r := s.PointRadius
			page.Rectangle(c.X-r, c.Y-r, 2*r, 2*r)
			page.Fill()
		case geomlang.Segment:
			a, b := apply(m, v.A), apply(m, v.B)
			page.MoveTo(a.X, a.Y)
			page.LineTo(b.X, b.Y)
			page.Stroke()
		case geomlang.Line, geomlang.VerticalLine:
			wa, wb := s.chord(v)
			a, b := apply(m, wa), apply(m, wb)
			page.MoveTo(a.X, a.Y)
			page.LineTo(b.X, b.Y)
			page.Stroke()
		}
	}

	return page.Close()
}
