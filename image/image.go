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

// Package image describes images embedded into a document.
//
// The package does not decode compressed image formats.  Callers either
// supply sample data which is already in the form the PDF file needs, or
// use [FromGoImage] to convert a decoded image.Image.
package image

import (
	goimage "image"
	"strconv"

	"golang.org/x/image/draw"

	"seehuhn.de/go/pdfgen"
)

// ColorSpace identifies the color space of the image samples.
type ColorSpace string

// Allowed color spaces.
const (
	DeviceGray ColorSpace = "DeviceGray"
	DeviceRGB  ColorSpace = "DeviceRGB"
)

// Descriptor describes a prepared image: dimensions, sample format and the
// encoded data.  The data is copied into the output file unchanged.
type Descriptor struct {
	Width, Height    int
	ColorSpace       ColorSpace
	BitsPerComponent int

	// Filter names the compression filter the data is encoded with,
	// e.g. "DCTDecode" for JPEG data.  Empty means uncompressed samples.
	Filter pdfgen.Name

	Data []byte
}

func (d *Descriptor) validate() error {
	if d.Width <= 0 {
		return &pdfgen.InvalidValueError{Field: "image width", Value: d.Width}
	}
	if d.Height <= 0 {
		return &pdfgen.InvalidValueError{Field: "image height", Value: d.Height}
	}
	switch d.ColorSpace {
	case DeviceGray, DeviceRGB:
		// ok
	default:
		return &pdfgen.InvalidValueError{Field: "image color space", Value: string(d.ColorSpace)}
	}
	switch d.BitsPerComponent {
	case 1, 2, 4, 8:
		// ok
	default:
		return &pdfgen.InvalidValueError{Field: "image bits per component", Value: d.BitsPerComponent}
	}
	return nil
}

// AsStream returns the image XObject stream.
func (d *Descriptor) AsStream() *pdfgen.Stream {
	dict := pdfgen.Dict{
		"Type":             pdfgen.Name("XObject"),
		"Subtype":          pdfgen.Name("Image"),
		"Width":            pdfgen.Integer(d.Width),
		"Height":           pdfgen.Integer(d.Height),
		"ColorSpace":       pdfgen.Name(d.ColorSpace),
		"BitsPerComponent": pdfgen.Integer(d.BitsPerComponent),
	}
	if d.Filter != "" {
		dict["Filter"] = d.Filter
	}
	return pdfgen.NewStream(dict, d.Data)
}

// FromJPEG wraps pre-encoded JPEG data as an image descriptor.  The pixel
// data is not inspected; width, height and color space must describe the
// encoded image.
func FromJPEG(data []byte, width, height int, cs ColorSpace) *Descriptor {
	return &Descriptor{
		Width:            width,
		Height:           height,
		ColorSpace:       cs,
		BitsPerComponent: 8,
		Filter:           pdfgen.Name("DCTDecode"),
		Data:             data,
	}
}

// FromGoImage converts a decoded image into an uncompressed 8-bit RGB
// descriptor.  Alpha is discarded by compositing onto white.
func FromGoImage(src goimage.Image) *Descriptor {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	tmp := goimage.NewNRGBA(goimage.Rect(0, 0, w, h))
	for i := range tmp.Pix {
		tmp.Pix[i] = 0xff
	}
	draw.Draw(tmp, tmp.Bounds(), src, b.Min, draw.Over)

	data := make([]byte, 0, 3*w*h)
	for y := 0; y < h; y++ {
		row := tmp.Pix[y*tmp.Stride : y*tmp.Stride+4*w]
		for x := 0; x < w; x++ {
			data = append(data, row[4*x], row[4*x+1], row[4*x+2])
		}
	}

	return &Descriptor{
		Width:            w,
		Height:           h,
		ColorSpace:       DeviceRGB,
		BitsPerComponent: 8,
		Data:             data,
	}
}

// Embedded is an image which has been registered with a document.
type Embedded struct {
	*Descriptor
	ref pdfgen.Reference
}

// Embed validates the descriptor and registers the image XObject with the
// registry.
func Embed(reg *pdfgen.Registry, d *Descriptor) (*Embedded, error) {
	err := d.validate()
	if err != nil {
		return nil, err
	}
	ref := reg.Register(d.AsStream())
	return &Embedded{Descriptor: d, ref: ref}, nil
}

// ResourceName implements the [pdfgen.Resource] interface.
func (im *Embedded) ResourceName() pdfgen.Name {
	return pdfgen.Name("Im" + strconv.Itoa(int(im.ref)))
}

// Reference implements the [pdfgen.Resource] interface.
func (im *Embedded) Reference() pdfgen.Reference {
	return im.ref
}
