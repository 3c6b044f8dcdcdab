// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package graphics

import (
	"fmt"

	"seehuhn.de/go/pdfgen"
)

// This file implements the path construction and path-painting operators.

// MoveTo starts a new subpath at the given coordinates.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current path.  The curve
// runs from the current point to (x3, y3), with (x1, y1) and (x2, y2) as
// control points.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x1), w.coord(y1), w.coord(x2), w.coord(y2), w.coord(x3), w.coord(y3), "c")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
// (x, y) is the lower left corner.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), w.coord(width), w.coord(height), "re")
}

// ClosePath closes the current subpath.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// EndPath ends the path without filling or stroking it.  This is for use
// after a clipping path operation.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "n")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "S")
}

// CloseAndStroke closes and strokes the current path.
//
// This implements the PDF graphics operator "s".
func (w *Writer) CloseAndStroke() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "s")
}

// Fill fills the current path, using the nonzero winding number rule.  Any
// subpaths that are open are implicitly closed before being filled.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "f")
}

// FillEvenOdd fills the current path, using the even-odd rule.  Any
// subpaths that are open are implicitly closed before being filled.
//
// This implements the PDF graphics operator "f*".
func (w *Writer) FillEvenOdd() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "f*")
}

// Line draws a straight line segment between two points and strokes it.
func (w *Writer) Line(x1, y1, x2, y2 float64) {
	w.MoveTo(x1, y1)
	w.LineTo(x2, y2)
	w.Stroke()
}

// SetLineWidth sets the line width for stroking.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if w.Err != nil {
		return
	}
	if width < 0 {
		w.Err = &pdfgen.InvalidValueError{Field: "line width", Value: width}
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(width), "w")
}
