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

	"seehuhn.de/go/geom/matrix"
)

// This file implements the graphics state operators.

// PushGraphicsState saves the current graphics state on the graphics state
// stack.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the graphics state most recently saved with
// [Writer.PushGraphicsState].
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "Q")
}

// Transform concatenates m with the current transformation matrix.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(m matrix.Matrix) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(m[0]), w.coord(m[1]), w.coord(m[2]), w.coord(m[3]), w.coord(m[4]), w.coord(m[5]), "cm")
}
