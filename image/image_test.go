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

package image

import (
	"bytes"
	"errors"
	goimage "image"
	"image/color"
	"strings"
	"testing"

	"seehuhn.de/go/pdfgen"
)

func TestValidate(t *testing.T) {
	good := func() *Descriptor {
		return &Descriptor{
			Width:            2,
			Height:           2,
			ColorSpace:       DeviceGray,
			BitsPerComponent: 8,
			Data:             []byte{0, 64, 128, 255},
		}
	}

	cases := []struct {
		name   string
		modify func(*Descriptor)
		ok     bool
	}{
		{"valid", func(*Descriptor) {}, true},
		{"zero width", func(d *Descriptor) { d.Width = 0 }, false},
		{"negative height", func(d *Descriptor) { d.Height = -1 }, false},
		{"bad color space", func(d *Descriptor) { d.ColorSpace = "CalRGB" }, false},
		{"bad bit depth", func(d *Descriptor) { d.BitsPerComponent = 16 }, false},
		{"depth 1", func(d *Descriptor) { d.BitsPerComponent = 1 }, true},
	}
	for _, c := range cases {
		reg := pdfgen.NewRegistry()
		d := good()
		c.modify(d)
		_, err := Embed(reg, d)
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		} else if !c.ok {
			var invalid *pdfgen.InvalidValueError
			if !errors.As(err, &invalid) {
				t.Errorf("%s: got error %v, want an invalid value error",
					c.name, err)
			}
		}
	}
}

func TestImageStream(t *testing.T) {
	d := &Descriptor{
		Width:            3,
		Height:           1,
		ColorSpace:       DeviceRGB,
		BitsPerComponent: 8,
		Data:             []byte("\xff\x00\x00\x00\xff\x00\x00\x00\xff"),
	}
	buf := &bytes.Buffer{}
	err := d.AsStream().PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, frag := range []string{
		"/Type /XObject",
		"/Subtype /Image",
		"/Width 3",
		"/Height 1",
		"/ColorSpace /DeviceRGB",
		"/BitsPerComponent 8",
		"/Length 9",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("stream dictionary is missing %q:\n%s", frag, out)
		}
	}
	if strings.Contains(out, "/Filter") {
		t.Errorf("unexpected /Filter entry for raw samples:\n%s", out)
	}
	if !strings.Contains(out, "stream\n"+string(d.Data)+"\nendstream") {
		t.Errorf("sample data not embedded verbatim:\n%s", out)
	}
}

func TestFromJPEG(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff, 0xe0} // JPEG magic, enough for wrapping
	d := FromJPEG(data, 640, 480, DeviceRGB)

	if d.Filter != pdfgen.Name("DCTDecode") {
		t.Errorf("got filter %q, want DCTDecode", d.Filter)
	}
	if !bytes.Equal(d.Data, data) {
		t.Error("JPEG data must be passed through unchanged")
	}

	buf := &bytes.Buffer{}
	err := d.AsStream().PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "/Filter /DCTDecode") {
		t.Errorf("missing /Filter entry:\n%s", buf.String())
	}
}

func TestFromGoImage(t *testing.T) {
	src := goimage.NewNRGBA(goimage.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{A: 0}) // fully transparent

	d := FromGoImage(src)
	if d.Width != 2 || d.Height != 1 {
		t.Fatalf("got %dx%d, want 2x1", d.Width, d.Height)
	}
	if d.ColorSpace != DeviceRGB || d.BitsPerComponent != 8 {
		t.Fatalf("got %s/%d, want DeviceRGB/8", d.ColorSpace, d.BitsPerComponent)
	}
	want := []byte{255, 0, 0, 255, 255, 255} // transparent composites to white
	if !bytes.Equal(d.Data, want) {
		t.Errorf("got samples % x, want % x", d.Data, want)
	}
}

func TestFromGoImageOffsetBounds(t *testing.T) {
	src := goimage.NewGray(goimage.Rect(10, 10, 12, 12))
	for y := 10; y < 12; y++ {
		for x := 10; x < 12; x++ {
			src.SetGray(x, y, color.Gray{Y: 100})
		}
	}

	d := FromGoImage(src)
	if d.Width != 2 || d.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", d.Width, d.Height)
	}
	if len(d.Data) != 3*2*2 {
		t.Fatalf("got %d bytes, want 12", len(d.Data))
	}
	for i, b := range d.Data {
		if b != 100 {
			t.Errorf("sample %d: got %d, want 100", i, b)
		}
	}
}

func TestResourceNames(t *testing.T) {
	reg := pdfgen.NewRegistry()
	d := &Descriptor{
		Width: 1, Height: 1,
		ColorSpace:       DeviceGray,
		BitsPerComponent: 8,
		Data:             []byte{0},
	}
	im1, err := Embed(reg, d)
	if err != nil {
		t.Fatal(err)
	}
	im2, err := Embed(reg, d)
	if err != nil {
		t.Fatal(err)
	}
	if im1.ResourceName() == im2.ResourceName() {
		t.Errorf("images share the resource name %q", im1.ResourceName())
	}
	if im1.Reference() == im2.Reference() {
		t.Error("images share an object number")
	}
}
