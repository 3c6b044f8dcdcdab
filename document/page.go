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

package document

import (
	"bytes"
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/graphics"
	"seehuhn.de/go/pdfgen/image"
	"seehuhn.de/go/pdfgen/internal/float"
	"seehuhn.de/go/pdfgen/pagetree"
)

// Page is one page of a document.  The embedded [graphics.Writer] provides
// the low-level drawing operators; the methods on Page itself place text
// and images in single calls.
type Page struct {
	*graphics.Writer

	doc  *Document
	node *pagetree.Node
	buf  bytes.Buffer

	// state for Println
	printFont *font.Font
	printSize float64
	printX    float64
	printY    float64
	haveX     bool
	haveY     bool
}

func newPage(doc *Document, node *pagetree.Node) *Page {
	p := &Page{
		doc:  doc,
		node: node,
	}
	p.Writer = graphics.NewWriter(&p.buf)
	return p
}

// Node returns the page tree node of the page.
func (p *Page) Node() *pagetree.Node {
	return p.node
}

// finish registers the content stream and the resource dictionary.
func (p *Page) finish() error {
	if p.Err != nil {
		return p.Err
	}
	contents := p.doc.reg.Register(pdfgen.NewStream(pdfgen.Dict{}, p.buf.Bytes()))
	p.node.SetContents(contents)
	if res := p.Resources.AsDict(); res != nil {
		p.node.SetResources(res)
	}
	return nil
}

// Alignment selects how coordinates anchor the placed object.
type Alignment int

// Allowed alignment values.  For vertical alignment, read "Left" as
// "bottom" and "Right" as "top".
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// IsValid reports whether the alignment is one of the allowed values.
func (a Alignment) IsValid() bool {
	return a >= AlignLeft && a <= AlignRight
}

// TextOptions gives optional parameters for [Page.Text].  Zero values
// leave the corresponding text state untouched.
type TextOptions struct {
	CharSpacing float64
	WordSpacing float64
}

// Text shows a string of text in the given font and size, with the
// baseline starting at (x, y).  For right and center alignment the start
// position is moved left by the full or half width of the text.  The font
// is recorded in the page's resources.
func (p *Page) Text(F *font.Font, size, x, y float64, s string, align Alignment, opt *TextOptions) error {
	if p.Err != nil {
		return p.Err
	}
	if !align.IsValid() {
		return &pdfgen.InvalidValueError{Field: "alignment", Value: int(align)}
	}

	x, err := alignText(F, size, x, s, align)
	if err != nil {
		return err
	}
	p.Resources.AddFont(F)

	buf := &bytes.Buffer{}
	buf.WriteString("BT\n")
	buf.WriteString("/" + string(F.ResourceName()) + " " + float.Format(size, 3) + " Tf\n")
	if opt != nil && opt.CharSpacing != 0 {
		buf.WriteString(float.Format(opt.CharSpacing, 3) + " Tc\n")
	}
	if opt != nil && opt.WordSpacing != 0 {
		buf.WriteString(float.Format(opt.WordSpacing, 3) + " Tw\n")
	}
	buf.WriteString(float.Format(x, 3) + " " + float.Format(y, 3) + " Td\n")
	err = pdfgen.String(s).PDF(buf)
	if err != nil {
		return err
	}
	buf.WriteString(" Tj\nET\n")

	_, p.Err = p.Content.Write(buf.Bytes())
	return p.Err
}

// TextLeft is [Page.Text] with left alignment and no optional parameters.
func (p *Page) TextLeft(F *font.Font, size, x, y float64, s string) error {
	return p.Text(F, size, x, y, s, AlignLeft, nil)
}

// TextRight is [Page.Text] with right alignment and no optional
// parameters.
func (p *Page) TextRight(F *font.Font, size, x, y float64, s string) error {
	return p.Text(F, size, x, y, s, AlignRight, nil)
}

// TextCenter is [Page.Text] with center alignment and no optional
// parameters.
func (p *Page) TextCenter(F *font.Font, size, x, y float64, s string) error {
	return p.Text(F, size, x, y, s, AlignCenter, nil)
}

// Underline draws a horizontal line one unit below the baseline of the
// text, spanning the width the text would have if shown with [Page.Text]
// using the same arguments.  The text itself is not drawn.  The returned
// value is the length of the line.
func (p *Page) Underline(F *font.Font, size, x, y float64, s string, align Alignment) (float64, error) {
	if p.Err != nil {
		return 0, p.Err
	}
	if !align.IsValid() {
		return 0, &pdfgen.InvalidValueError{Field: "alignment", Value: int(align)}
	}

	w, err := F.StringWidth(s)
	if err != nil {
		return 0, err
	}
	width := size * w
	switch align {
	case AlignRight:
		x -= width
	case AlignCenter:
		x -= width / 2
	}

	p.Line(x, y-1, x+width, y-1)
	return width, p.Err
}

// alignText returns the start position for the text baseline.
func alignText(F *font.Font, size, x float64, s string, align Alignment) (float64, error) {
	if align == AlignLeft {
		return x, nil
	}
	w, err := F.StringWidth(s)
	if err != nil {
		return 0, err
	}
	switch align {
	case AlignRight:
		x -= size * w
	case AlignCenter:
		x -= size * w / 2
	}
	return x, nil
}

// PrintlnOptions overrides the state [Page.Println] carries from call to
// call.  Zero values keep the previous state.
type PrintlnOptions struct {
	Font *font.Font
	Size float64
	X, Y float64
}

// Println shows text line by line, left aligned, keeping track of the
// current position across calls.  The text is split on newline characters
// and the vertical position moves down by the font size after each line.
// The number of lines shown is returned.
//
// On the first call, a missing font is an error.  A missing size defaults
// to 12 and a missing x position to 20.  A missing y position defaults to
// 800 and records a warning on the document, since the default is only
// sensible for tall pages.
//
// No check against the page boundaries is made; text placed outside the
// page's box is simply not visible.
func (p *Page) Println(s string, opt *PrintlnOptions) (int, error) {
	if p.Err != nil {
		return 0, p.Err
	}
	if opt != nil {
		if opt.Font != nil {
			p.printFont = opt.Font
		}
		if opt.Size != 0 {
			p.printSize = opt.Size
		}
		if opt.X != 0 {
			p.printX = opt.X
			p.haveX = true
		}
		if opt.Y != 0 {
			p.printY = opt.Y
			p.haveY = true
		}
	}
	if p.printFont == nil {
		return 0, &pdfgen.InvalidValueError{Field: "font", Value: nil}
	}
	if p.printSize == 0 {
		p.printSize = 12
	}
	if !p.haveX {
		p.printX = 20
		p.haveX = true
	}
	if !p.haveY {
		p.doc.warn("Println: no y position given, starting at y=800")
		p.printY = 800
		p.haveY = true
	}

	lines := strings.Split(s, "\n")
	for _, line := range lines {
		err := p.Text(p.printFont, p.printSize, p.printX, p.printY, line, AlignLeft, nil)
		if err != nil {
			return 0, err
		}
		p.printY -= p.printSize
	}
	return len(lines), nil
}

// ImageOptions controls the placement of an image on the page.  All
// fields default to zero.
type ImageOptions struct {
	// X, Y is the anchor position on the page.
	X, Y float64

	// XAlign and YAlign select which part of the image the anchor
	// refers to: left/bottom, center, or right/top edge.
	XAlign, YAlign Alignment

	// XScale and YScale are multiplied with the image's pixel dimensions
	// to get the placed size.
	XScale, YScale float64

	// Rotate is the rotation angle, in radians.
	Rotate float64

	// XSkew and YSkew are skew angles, in radians.
	XSkew, YSkew float64
}

// PlaceImage paints an image on the page.  The image is recorded in the
// page's resources.  The placement transformations are applied inside a
// saved graphics state, so the surrounding state is not disturbed.
func (p *Page) PlaceImage(im *image.Embedded, opt *ImageOptions) error {
	if p.Err != nil {
		return p.Err
	}
	if opt == nil {
		opt = &ImageOptions{}
	}
	if !opt.XAlign.IsValid() {
		return &pdfgen.InvalidValueError{Field: "x alignment", Value: int(opt.XAlign)}
	}
	if !opt.YAlign.IsValid() {
		return &pdfgen.InvalidValueError{Field: "y alignment", Value: int(opt.YAlign)}
	}

	placedW := opt.XScale * float64(im.Width)
	placedH := opt.YScale * float64(im.Height)

	x := opt.X
	switch opt.XAlign {
	case AlignCenter:
		x -= placedW / 2
	case AlignRight:
		x -= placedW
	}
	y := opt.Y
	switch opt.YAlign {
	case AlignCenter:
		y -= placedH / 2
	case AlignRight:
		y -= placedH
	}

	p.PushGraphicsState()
	if x != 0 || y != 0 {
		p.Transform(matrix.Translate(x, y))
	}
	if opt.Rotate != 0 {
		p.Transform(matrix.Rotate(opt.Rotate))
	}
	if opt.XScale != 0 || opt.YScale != 0 {
		p.Transform(matrix.Matrix{placedW, 0, 0, placedH, 0, 0})
	}
	if opt.XSkew != 0 || opt.YSkew != 0 {
		p.Transform(matrix.Matrix{1, math.Tan(opt.YSkew), math.Tan(opt.XSkew), 1, 0, 0})
	}
	p.DrawXObject(im)
	p.PopGraphicsState()

	return p.Err
}
