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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
)

// testResource implements [pdfgen.Resource] for use in tests.
type testResource struct {
	name pdfgen.Name
	ref  pdfgen.Reference
}

func (r *testResource) ResourceName() pdfgen.Name   { return r.name }
func (r *testResource) Reference() pdfgen.Reference { return r.ref }

func TestPathOperators(t *testing.T) {
	cases := []struct {
		name string
		draw func(w *Writer)
		want string
	}{
		{"MoveTo", func(w *Writer) { w.MoveTo(10, 20) }, "10 20 m\n"},
		{"LineTo", func(w *Writer) { w.LineTo(0.5, -0.5) }, ".5 -.5 l\n"},
		{"CurveTo", func(w *Writer) { w.CurveTo(1, 2, 3, 4, 5, 6) }, "1 2 3 4 5 6 c\n"},
		{"Rectangle", func(w *Writer) { w.Rectangle(0, 0, 100, 50) }, "0 0 100 50 re\n"},
		{"ClosePath", func(w *Writer) { w.ClosePath() }, "h\n"},
		{"EndPath", func(w *Writer) { w.EndPath() }, "n\n"},
		{"Stroke", func(w *Writer) { w.Stroke() }, "S\n"},
		{"CloseAndStroke", func(w *Writer) { w.CloseAndStroke() }, "s\n"},
		{"Fill", func(w *Writer) { w.Fill() }, "f\n"},
		{"FillEvenOdd", func(w *Writer) { w.FillEvenOdd() }, "f*\n"},
		{"Line", func(w *Writer) { w.Line(1, 1, 2, 2) }, "1 1 m\n2 2 l\nS\n"},
		{"SetLineWidth", func(w *Writer) { w.SetLineWidth(0.25) }, ".25 w\n"},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		w := NewWriter(buf)
		c.draw(w)
		if w.Err != nil {
			t.Errorf("%s: unexpected error %v", c.name, w.Err)
			continue
		}
		if buf.String() != c.want {
			t.Errorf("%s: got %q, want %q", c.name, buf.String(), c.want)
		}
	}
}

func TestNegativeLineWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineWidth(-1)
	var invalid *pdfgen.InvalidValueError
	if !errors.As(w.Err, &invalid) {
		t.Errorf("got error %v, want an invalid value error", w.Err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestColorOperators(t *testing.T) {
	cases := []struct {
		name string
		draw func(w *Writer)
		want string
	}{
		{"SetFillGray", func(w *Writer) { w.SetFillGray(0.5) }, ".5 g\n"},
		{"SetStrokeGray", func(w *Writer) { w.SetStrokeGray(1) }, "1 G\n"},
		{"SetFillRGB", func(w *Writer) { w.SetFillRGB(1, 0, 0.25) }, "1 0 .25 rg\n"},
		{"SetStrokeRGB", func(w *Writer) { w.SetStrokeRGB(0, 1, 0) }, "0 1 0 RG\n"},
		{"SetFillColor1", func(w *Writer) { w.SetFillColor(0.75) }, ".75 g\n"},
		{"SetFillColor3", func(w *Writer) { w.SetFillColor(0, 0, 1) }, "0 0 1 rg\n"},
		{"SetStrokeColor1", func(w *Writer) { w.SetStrokeColor(0) }, "0 G\n"},
		{"SetStrokeColor3", func(w *Writer) { w.SetStrokeColor(1, 1, 0) }, "1 1 0 RG\n"},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		w := NewWriter(buf)
		c.draw(w)
		if w.Err != nil {
			t.Errorf("%s: unexpected error %v", c.name, w.Err)
			continue
		}
		if buf.String() != c.want {
			t.Errorf("%s: got %q, want %q", c.name, buf.String(), c.want)
		}
	}
}

func TestColorComponentCount(t *testing.T) {
	for _, n := range []int{0, 2, 4} {
		buf := &bytes.Buffer{}
		w := NewWriter(buf)
		w.SetFillColor(make([]float64, n)...)
		if w.Err == nil {
			t.Errorf("%d components: expected an error", n)
		}
		if buf.Len() != 0 {
			t.Errorf("%d components: unexpected output %q", n, buf.String())
		}

		w = NewWriter(&bytes.Buffer{})
		w.SetStrokeColor(make([]float64, n)...)
		if w.Err == nil {
			t.Errorf("%d components: expected an error", n)
		}
	}
}

func TestStickyError(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetFillColor(0, 1) // error: bad component count
	firstErr := w.Err
	if firstErr == nil {
		t.Fatal("expected an error")
	}

	w.MoveTo(0, 0)
	w.LineTo(1, 1)
	w.Stroke()
	if w.Err != firstErr {
		t.Errorf("error was replaced: got %v, want %v", w.Err, firstErr)
	}
	if buf.Len() != 0 {
		t.Errorf("operators after the error wrote output %q", buf.String())
	}
}

func TestGraphicsState(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.PushGraphicsState()
	w.Transform(matrix.Matrix{2, 0, 0, 2, 10, 20})
	w.PopGraphicsState()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	want := "q\n2 0 0 2 10 20 cm\nQ\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestDrawXObject(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	img := &testResource{name: "Im7", ref: 7}
	w.DrawXObject(img)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if buf.String() != "/Im7 Do\n" {
		t.Errorf("got %q, want %q", buf.String(), "/Im7 Do\n")
	}
	if w.Resources.XObject["Im7"] != 7 {
		t.Error("the image was not recorded in the resources")
	}
}

func TestTextObject(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	font := &testResource{name: "F1", ref: 1}

	text := w.TextBegin()
	text.SetFont(font)
	text.MoveTo(72, 720)
	text.Show("Hello, world!")
	text.End()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "BT\n/F1 Tf\n1 0 0 1 72 720 Tm\n(Hello, world!) Tj\nET\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if w.Resources.Font["F1"] != 1 {
		t.Error("the font was not recorded in the resources")
	}
}

// The font select operator takes no size operand.  Some viewers default to
// a usable size, others show nothing; this documents the current output.
func TestFontSelectHasNoSize(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	text := w.TextBegin()
	text.SetFont(&testResource{name: "F2", ref: 2})
	text.End()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if !strings.Contains(buf.String(), "/F2 Tf\n") {
		t.Errorf("got %q, want a bare /F2 Tf line", buf.String())
	}
}

func TestTextStateOperators(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	text := w.TextBegin()
	text.SetCharSpacing(0.2)
	text.SetWordSpacing(1.5)
	text.SetHorizontalScaling(110)
	text.SetLeading(14.4)
	text.SetRise(-2)
	text.SetRenderMode(1)
	text.Move(10, -14.4)
	text.NextLine()
	text.End()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := strings.Join([]string{
		"BT",
		".2 Tc",
		"1.5 Tw",
		"110 Tz",
		"14.4 TL",
		"-2 Ts",
		"1 Tr",
		"10 -14.4 Td",
		"T*",
		"ET",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextRotate(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	// The angle is measured in degrees.  A 90 degree rotation about the
	// origin gives an exact matrix.
	text := w.TextBegin()
	text.Rotate(90, 0, 0)
	text.End()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	want := "BT\n0 1 -1 0 0 0 Tm\nET\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestShowEscaping(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "(plain) Tj\n"},
		{"a(b)c", `(a\(b\)c) Tj` + "\n"},
		{`back\slash`, `(back\\slash) Tj` + "\n"},
		{"(((", `(\(\(\() Tj` + "\n"},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		w := NewWriter(buf)
		text := w.TextBegin()
		text.Show(c.in)
		text.End()
		if w.Err != nil {
			t.Fatal(w.Err)
		}
		got := strings.TrimPrefix(buf.String(), "BT\n")
		got = strings.TrimSuffix(got, "ET\n")
		if got != c.want {
			t.Errorf("%q: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTextObjectsDoNotInterleave(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	first := w.TextBegin()
	second := w.TextBegin()
	first.Show("one")
	second.Show("two")
	second.End()
	first.End()
	if w.Err != nil {
		t.Fatal(w.Err)
	}

	want := "BT\n(two) Tj\nET\nBT\n(one) Tj\nET\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextAfterEnd(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	text := w.TextBegin()
	text.End()
	text.Show("late")
	if !errors.Is(text.err, pdfgen.ErrClosed) {
		t.Errorf("got error %v, want ErrClosed", text.err)
	}
	if w.Err != nil {
		t.Errorf("the writer must not inherit the error: %v", w.Err)
	}
}

func TestResourcesDict(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if w.Resources.AsDict() != nil {
		t.Error("empty resources must give a nil dictionary")
	}

	w.Resources.AddFont(&testResource{name: "F1", ref: 1})
	w.Resources.AddXObject(&testResource{name: "Im2", ref: 2})

	dict := w.Resources.AsDict()
	fonts, ok := dict["Font"].(pdfgen.Dict)
	if !ok || fonts["F1"] != pdfgen.Reference(1) {
		t.Errorf("bad /Font entry: %v", dict["Font"])
	}
	xobjects, ok := dict["XObject"].(pdfgen.Dict)
	if !ok || xobjects["Im2"] != pdfgen.Reference(2) {
		t.Errorf("bad /XObject entry: %v", dict["XObject"])
	}

	want := []pdfgen.Name{"F1", "Im2"}
	if d := cmp.Diff(w.Resources.Names(), want); d != "" {
		t.Errorf("resource names mismatch (-got +want):\n%s", d)
	}
}
