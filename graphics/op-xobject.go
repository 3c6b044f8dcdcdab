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

// DrawXObject paints the given external object, normally an image.  The
// object is recorded in the resource collection under its resource name.
//
// This implements the PDF graphics operator "Do".
func (w *Writer) DrawXObject(res pdfgen.Resource) {
	if w.Err != nil {
		return
	}
	w.Resources.AddXObject(res)
	_, w.Err = fmt.Fprintln(w.Content, "/"+string(res.ResourceName()), "Do")
}
