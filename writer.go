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

package pdfgen

import (
	"fmt"
	"io"
)

// Writer serializes a complete set of indirect objects into a PDF file.
//
// The writer tracks the number of bytes written, so that the offsets in the
// cross-reference table point at the literal start of each object's
// "N 0 obj" marker.
type Writer struct {
	w   *posWriter
	ver Version
	reg *Registry

	objectsDone bool
}

// NewWriter prepares a PDF file for writing and emits the file header.
func NewWriter(w io.Writer, ver Version, reg *Registry) (*Writer, error) {
	verString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		w:   &posWriter{w: w},
		ver: ver,
		reg: reg,
	}

	// The second line is a comment containing bytes with the high bit set,
	// so that file-transfer programs treat the file as binary.
	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", verString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// WriteObjects emits the bodies of all registered objects in ascending
// object-number order, recording the byte offset of each object in the
// registry.
//
// It is a structural error if an allocated object number has no body.
func (pdf *Writer) WriteObjects() error {
	err := pdf.reg.checkComplete()
	if err != nil {
		return err
	}

	for i := 0; i < pdf.reg.Len(); i++ {
		ref := Reference(i + 1)
		obj := pdf.reg.Get(ref)

		pdf.reg.setOffset(ref, pdf.w.pos)
		_, err = fmt.Fprintf(pdf.w, "%d 0 obj\n", int(ref))
		if err != nil {
			return err
		}
		err = obj.PDF(pdf.w)
		if err != nil {
			return err
		}
		_, err = pdf.w.Write([]byte("\nendobj\n"))
		if err != nil {
			return err
		}
	}

	pdf.objectsDone = true
	return nil
}

// Close writes the cross-reference table and the file trailer.  If the
// underlying io.Writer has a Close method, it is closed, too.
//
// The root reference is required; info may be zero.
func (pdf *Writer) Close(root, info Reference) error {
	if root.IsZero() {
		return structuralErrorf("missing /Root object")
	}
	if !pdf.objectsDone {
		err := pdf.WriteObjects()
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(pdf.reg.Len() + 1),
		"Root": root,
	}
	if !info.IsZero() {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	closer, _ := pdf.w.w.(io.Closer)

	// Make sure we don't accidentally write beyond the end of file.
	pdf.w = nil

	if closer != nil {
		return closer.Close()
	}
	return nil
}

func (pdf *Writer) writeXRefTable(trailer Dict) error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.reg.Len()+1)
	if err != nil {
		return err
	}

	// entry for object number 0, the head of the free list
	_, err = pdf.w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for i := 0; i < pdf.reg.Len(); i++ {
		pos, err := pdf.reg.Resolve(Reference(i + 1))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n", pos, 0)
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
