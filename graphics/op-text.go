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
	"bytes"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
)

// This file implements the text object and text state operators.

// Text accumulates the operators of a single text object.  The operators
// are buffered and appended to the content stream as one block when
// [Text.End] is called, so several text objects can be under construction
// at the same time without their operators interleaving in the stream.
type Text struct {
	w      *Writer
	buf    bytes.Buffer
	err    error
	closed bool
}

// TextBegin starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextBegin() *Text {
	t := &Text{w: w}
	fmt.Fprintln(&t.buf, "BT")
	return t
}

func (t *Text) valid() bool {
	if t.err != nil {
		return false
	}
	if t.closed {
		t.err = pdfgen.ErrClosed
		return false
	}
	return true
}

// SetFont selects the font for the following show operations and records
// it in the writer's resource collection.
//
// This implements the PDF graphics operator "Tf".
func (t *Text) SetFont(res pdfgen.Resource) {
	if !t.valid() {
		return
	}
	t.w.Resources.AddFont(res)
	fmt.Fprintln(&t.buf, "/"+string(res.ResourceName()), "Tf")
}

// SetCharSpacing sets the additional spacing between glyphs.
//
// This implements the PDF graphics operator "Tc".
func (t *Text) SetCharSpacing(spacing float64) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, t.w.coord(spacing), "Tc")
}

// SetWordSpacing sets the additional spacing for space characters.
//
// This implements the PDF graphics operator "Tw".
func (t *Text) SetWordSpacing(spacing float64) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, t.w.coord(spacing), "Tw")
}

// SetHorizontalScaling sets the horizontal scaling, in percent of the
// normal glyph width.
//
// This implements the PDF graphics operator "Tz".
func (t *Text) SetHorizontalScaling(percent float64) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, t.w.coord(percent), "Tz")
}

// SetLeading sets the distance between the baselines of adjacent lines of
// text, used by [Text.NextLine].
//
// This implements the PDF graphics operator "TL".
func (t *Text) SetLeading(leading float64) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, t.w.coord(leading), "TL")
}

// SetRise moves the baseline up (positive values) or down (negative
// values) from its default location.
//
// This implements the PDF graphics operator "Ts".
func (t *Text) SetRise(rise float64) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, t.w.coord(rise), "Ts")
}

// SetRenderMode sets the text rendering mode.
//
// This implements the PDF graphics operator "Tr".
func (t *Text) SetRenderMode(mode int) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, mode, "Tr")
}

// MoveTo sets the text position in page coordinates, replacing the text
// line matrix.
//
// This implements the PDF graphics operator "Tm".
func (t *Text) MoveTo(x, y float64) {
	t.SetMatrix(matrix.Translate(x, y))
}

// Rotate sets the text line matrix to a rotation by the given angle, in
// degrees, about the point (x, y).
//
// This implements the PDF graphics operator "Tm".
func (t *Text) Rotate(angle, x, y float64) {
	t.SetMatrix(matrix.RotateDeg(angle).Translate(x, y))
}

// SetMatrix replaces the text matrix and the text line matrix with m.
//
// This implements the PDF graphics operator "Tm".
func (t *Text) SetMatrix(m matrix.Matrix) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf,
		t.w.coord(m[0]), t.w.coord(m[1]), t.w.coord(m[2]), t.w.coord(m[3]), t.w.coord(m[4]), t.w.coord(m[5]), "Tm")
}

// Move moves the text position by (dx, dy), relative to the start of the
// current line.
//
// This implements the PDF graphics operator "Td".
func (t *Text) Move(dx, dy float64) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, t.w.coord(dx), t.w.coord(dy), "Td")
}

// NextLine moves the text position to the start of the next line, using
// the leading set with [Text.SetLeading].
//
// This implements the PDF graphics operator "T*".
func (t *Text) NextLine() {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, "T*")
}

// Show shows a string of text at the current text position.
//
// This implements the PDF graphics operator "Tj".
func (t *Text) Show(s string) {
	if !t.valid() {
		return
	}
	fmt.Fprintln(&t.buf, "("+quoteText(s)+") Tj")
}

// End terminates the text object and appends the buffered operators to the
// content stream.  After End has been called, the text object can no
// longer be used.
//
// This implements the PDF graphics operator "ET".
func (t *Text) End() {
	if !t.valid() {
		return
	}
	t.closed = true
	fmt.Fprintln(&t.buf, "ET")

	if t.w.Err != nil {
		return
	}
	_, t.w.Err = t.w.Content.Write(t.buf.Bytes())
}

// quoteText escapes the characters which would terminate or confuse a PDF
// string literal.  Backslashes and both kinds of parentheses are always
// escaped, so that the result does not depend on whether the parentheses
// in the input are balanced.
func quoteText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`(`, `\(`,
		`)`, `\)`,
		"\r", `\r`,
	)
	return r.Replace(s)
}
