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
)

// This file implements the colour operators.  Colour components are
// intensities in the range from 0 (dark) to 1 (bright).

// SetFillGray sets the fill colour in the DeviceGray colour space.
//
// This implements the PDF graphics operator "g".
func (w *Writer) SetFillGray(gray float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(gray), "g")
}

// SetStrokeGray sets the stroke colour in the DeviceGray colour space.
//
// This implements the PDF graphics operator "G".
func (w *Writer) SetStrokeGray(gray float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(gray), "G")
}

// SetFillRGB sets the fill colour in the DeviceRGB colour space.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillRGB(r, g, b float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(r), w.coord(g), w.coord(b), "rg")
}

// SetStrokeRGB sets the stroke colour in the DeviceRGB colour space.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeRGB(r, g, b float64) {
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(r), w.coord(g), w.coord(b), "RG")
}

// SetFillColor sets the fill colour.  A single component selects the
// DeviceGray colour space, three components select DeviceRGB.  Any other
// number of components is an error.
func (w *Writer) SetFillColor(components ...float64) {
	if w.Err != nil {
		return
	}
	switch len(components) {
	case 1:
		w.SetFillGray(components[0])
	case 3:
		w.SetFillRGB(components[0], components[1], components[2])
	default:
		w.Err = fmt.Errorf("SetFillColor: got %d colour components, want 1 or 3",
			len(components))
	}
}

// SetStrokeColor sets the stroke colour.  A single component selects the
// DeviceGray colour space, three components select DeviceRGB.  Any other
// number of components is an error.
func (w *Writer) SetStrokeColor(components ...float64) {
	if w.Err != nil {
		return
	}
	switch len(components) {
	case 1:
		w.SetStrokeGray(components[0])
	case 3:
		w.SetStrokeRGB(components[0], components[1], components[2])
	default:
		w.Err = fmt.Errorf("SetStrokeColor: got %d colour components, want 1 or 3",
			len(components))
	}
}
