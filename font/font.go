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

// Package font describes the standard text fonts.
//
// Only the built-in PDF fonts are supported; no font programs are embedded
// in the output file.  Character widths come from the fixed tables in the
// stdmtx package.
package font

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/internal/stdmtx"
)

// Subtype identifies the font technology.
type Subtype string

// Allowed font subtypes.
const (
	Type1    Subtype = "Type1"
	TrueType Subtype = "TrueType"
	Type3    Subtype = "Type3"
)

// Encoding identifies the character encoding of a font.
type Encoding string

// Allowed font encodings.
const (
	StandardEncoding  Encoding = "StandardEncoding"
	WinAnsiEncoding   Encoding = "WinAnsiEncoding"
	MacRomanEncoding  Encoding = "MacRomanEncoding"
	MacExpertEncoding Encoding = "MacExpertEncoding"
)

// BaseFont is the PostScript name of one of the standard fonts.
type BaseFont string

// The standard fonts.
const (
	Courier              BaseFont = "Courier"
	CourierBold          BaseFont = "Courier-Bold"
	CourierBoldOblique   BaseFont = "Courier-BoldOblique"
	CourierOblique       BaseFont = "Courier-Oblique"
	Helvetica            BaseFont = "Helvetica"
	HelveticaBold        BaseFont = "Helvetica-Bold"
	HelveticaBoldOblique BaseFont = "Helvetica-BoldOblique"
	HelveticaOblique     BaseFont = "Helvetica-Oblique"
	TimesRoman           BaseFont = "Times-Roman"
	TimesBold            BaseFont = "Times-Bold"
	TimesBoldItalic      BaseFont = "Times-BoldItalic"
	TimesItalic          BaseFont = "Times-Italic"
	Symbol               BaseFont = "Symbol"
	ZapfDingbats         BaseFont = "ZapfDingbats"
)

// All lists the standard fonts.
var All = []BaseFont{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

// Font represents one font of the document.  Use [New] to create fonts.
type Font struct {
	Subtype  Subtype
	Encoding Encoding
	BaseFont BaseFont

	ref pdfgen.Reference
}

// New validates the font description, registers the font dictionary with
// the registry and returns the new font.  Values outside the allowed sets
// are rejected with an [pdfgen.InvalidValueError].
func New(reg *pdfgen.Registry, subtype Subtype, encoding Encoding, baseFont BaseFont) (*Font, error) {
	switch subtype {
	case Type1, TrueType, Type3:
		// ok
	default:
		return nil, &pdfgen.InvalidValueError{Field: "font subtype", Value: string(subtype)}
	}
	switch encoding {
	case StandardEncoding, WinAnsiEncoding, MacRomanEncoding, MacExpertEncoding:
		// ok
	default:
		return nil, &pdfgen.InvalidValueError{Field: "font encoding", Value: string(encoding)}
	}
	if _, ok := stdmtx.Metrics[string(baseFont)]; !ok {
		return nil, &pdfgen.InvalidValueError{Field: "base font", Value: string(baseFont)}
	}

	f := &Font{
		Subtype:  subtype,
		Encoding: encoding,
		BaseFont: baseFont,
	}
	f.ref = reg.Register(f.AsDict())
	return f, nil
}

// AsDict returns the font dictionary.
func (f *Font) AsDict() pdfgen.Dict {
	return pdfgen.Dict{
		"Type":     pdfgen.Name("Font"),
		"Subtype":  pdfgen.Name(f.Subtype),
		"BaseFont": pdfgen.Name(f.BaseFont),
		"Encoding": pdfgen.Name(f.Encoding),
	}
}

// ResourceName implements the [pdfgen.Resource] interface.
func (f *Font) ResourceName() pdfgen.Name {
	return pdfgen.Name("F" + strconv.Itoa(int(f.ref)))
}

// Reference implements the [pdfgen.Resource] interface.
func (f *Font) Reference() pdfgen.Reference {
	return f.ref
}

// StringWidth returns the width of s, in multiples of the font size.
//
// Widths are only defined for the characters in the font's 256-entry width
// table; a rune outside the range 0-255 or a base font without metrics is a
// lookup error.
func (f *Font) StringWidth(s string) (float64, error) {
	mtx, ok := stdmtx.Metrics[string(f.BaseFont)]
	if !ok {
		return 0, fmt.Errorf("no metrics for font %q", f.BaseFont)
	}

	total := 0
	for _, r := range s {
		if r < 0 || r > 255 {
			return 0, fmt.Errorf("character %q outside the width table of %s",
				r, f.BaseFont)
		}
		total += int(mtx.Widths[r])
	}
	return float64(total) / 1000, nil
}
