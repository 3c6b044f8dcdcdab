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

// Package graphics generates PDF content streams.
//
// A [Writer] appends graphics operators to a content stream and collects
// the fonts and external objects the operators refer to.  Errors are
// sticky: once an operator has failed, all following operators are
// ignored and the first error is reported via the Err field.
package graphics

import (
	"io"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/internal/float"
)

// Writer writes a content stream.
type Writer struct {
	Content   io.Writer
	Resources *Resources

	// Err is the first error that occurred while writing the stream.
	Err error
}

// NewWriter allocates a new content stream writer.
func NewWriter(content io.Writer) *Writer {
	return &Writer{
		Content:   content,
		Resources: NewResources(),
	}
}

// coord formats a coordinate value for use in the content stream.  Three
// decimal digits give a resolution of well below one micrometer at typical
// page sizes.
func (w *Writer) coord(x float64) string {
	return float.Format(x, 3)
}

// Resources collects the resources used by a content stream, keyed by the
// name under which the content stream refers to them.
type Resources struct {
	Font    map[pdfgen.Name]pdfgen.Reference
	XObject map[pdfgen.Name]pdfgen.Reference
}

// NewResources allocates an empty resource collection.
func NewResources() *Resources {
	return &Resources{
		Font:    map[pdfgen.Name]pdfgen.Reference{},
		XObject: map[pdfgen.Name]pdfgen.Reference{},
	}
}

// AddFont records that the content stream uses the given font.
func (r *Resources) AddFont(res pdfgen.Resource) {
	r.Font[res.ResourceName()] = res.Reference()
}

// AddXObject records that the content stream uses the given external
// object.
func (r *Resources) AddXObject(res pdfgen.Resource) {
	r.XObject[res.ResourceName()] = res.Reference()
}

// IsEmpty reports whether no resources have been recorded.
func (r *Resources) IsEmpty() bool {
	return len(r.Font) == 0 && len(r.XObject) == 0
}

// AsDict returns the PDF resource dictionary, or nil if no resources have
// been recorded.
func (r *Resources) AsDict() pdfgen.Dict {
	if r.IsEmpty() {
		return nil
	}
	dict := pdfgen.Dict{}
	if len(r.Font) > 0 {
		dict["Font"] = refDict(r.Font)
	}
	if len(r.XObject) > 0 {
		dict["XObject"] = refDict(r.XObject)
	}
	return dict
}

func refDict(m map[pdfgen.Name]pdfgen.Reference) pdfgen.Dict {
	dict := pdfgen.Dict{}
	for name, ref := range m {
		dict[name] = ref
	}
	return dict
}

// Names returns the resource names recorded for fonts and external
// objects, sorted, mostly for use in tests and diagnostics.
func (r *Resources) Names() []pdfgen.Name {
	names := maps.Keys(r.Font)
	names = append(names, maps.Keys(r.XObject)...)
	slices.Sort(names)
	return names
}
