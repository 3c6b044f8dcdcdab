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

// Package pdfgen provides the document object model and the serialization
// engine for writing PDF files.
//
// The package contains the native PDF object types (booleans, numbers,
// strings, names, arrays, dictionaries, streams and references), a registry
// which assigns object numbers and tracks byte offsets, and a writer which
// emits the file header, the object bodies, the cross-reference table and
// the trailer.
//
// Higher-level functionality is provided by the subpackages:
//
//   - [seehuhn.de/go/pdfgen/document] is the main entry point for building
//     documents.
//   - [seehuhn.de/go/pdfgen/pagetree] implements the page tree.
//   - [seehuhn.de/go/pdfgen/graphics] builds page content streams.
//   - [seehuhn.de/go/pdfgen/font] describes the standard text fonts.
//   - [seehuhn.de/go/pdfgen/image] describes embedded images.
package pdfgen

// Resource is an object which can be referenced by name from within a
// content stream, i.e. a font or an external object.
type Resource interface {
	// ResourceName returns the name under which the resource appears in
	// the resource dictionaries of the pages using it.
	ResourceName() Name

	// Reference returns the indirect reference of the resource.
	Reference() Reference
}
