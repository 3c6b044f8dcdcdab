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

package font

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/pdfgen"
)

func TestNew(t *testing.T) {
	cases := []struct {
		subtype  Subtype
		encoding Encoding
		baseFont BaseFont
		ok       bool
	}{
		{Type1, WinAnsiEncoding, Helvetica, true},
		{TrueType, MacRomanEncoding, TimesBoldItalic, true},
		{Type3, StandardEncoding, ZapfDingbats, true},
		{"Type6", WinAnsiEncoding, Helvetica, false},
		{Type1, "PDFDocEncoding", Helvetica, false},
		{Type1, WinAnsiEncoding, "Comic-Sans", false},
		{"", "", "", false},
	}
	for _, test := range cases {
		reg := pdfgen.NewRegistry()
		F, err := New(reg, test.subtype, test.encoding, test.baseFont)
		if test.ok {
			if err != nil {
				t.Errorf("New(%q, %q, %q) failed: %s",
					test.subtype, test.encoding, test.baseFont, err)
				continue
			}
			if F.Reference().IsZero() {
				t.Error("no object number assigned")
			}
		} else {
			if err == nil {
				t.Errorf("New(%q, %q, %q) unexpectedly succeeded",
					test.subtype, test.encoding, test.baseFont)
				continue
			}
			var vErr *pdfgen.InvalidValueError
			if !errors.As(err, &vErr) {
				t.Errorf("wrong error type %T", err)
			}
		}
	}
}

func TestFontDict(t *testing.T) {
	reg := pdfgen.NewRegistry()
	F, err := New(reg, Type1, WinAnsiEncoding, Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = reg.Get(F.Reference()).PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	expected := "<<\n/BaseFont /Helvetica\n/Encoding /WinAnsiEncoding\n/Subtype /Type1\n/Type /Font\n>>"
	if buf.String() != expected {
		t.Errorf("font dict %q, want %q", buf.String(), expected)
	}
}

func TestStringWidthAdditive(t *testing.T) {
	reg := pdfgen.NewRegistry()
	F, err := New(reg, Type1, WinAnsiEncoding, Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	w1, err := F.StringWidth("M")
	if err != nil {
		t.Fatal(err)
	}
	w2, err := F.StringWidth("MM")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(w2-2*w1) > 1e-9 {
		t.Errorf("width of MM is %g, want %g", w2, 2*w1)
	}

	w0, err := F.StringWidth("")
	if err != nil {
		t.Fatal(err)
	}
	if w0 != 0 {
		t.Errorf("width of empty string is %g, want 0", w0)
	}
}

func TestStringWidthRange(t *testing.T) {
	reg := pdfgen.NewRegistry()
	F, err := New(reg, Type1, WinAnsiEncoding, Helvetica)
	if err != nil {
		t.Fatal(err)
	}

	_, err = F.StringWidth("héllo")
	if err != nil {
		t.Errorf("é is inside the width table: %s", err)
	}
	_, err = F.StringWidth("day € rate")
	if err == nil {
		t.Error("no error for a rune outside the width table")
	}
}

func TestResourceNames(t *testing.T) {
	reg := pdfgen.NewRegistry()
	f1, err := New(reg, Type1, WinAnsiEncoding, Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	f2, err := New(reg, Type1, WinAnsiEncoding, TimesRoman)
	if err != nil {
		t.Fatal(err)
	}
	if f1.ResourceName() == f2.ResourceName() {
		t.Errorf("duplicate resource name %q", f1.ResourceName())
	}
}
