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

// Package document provides a high-level interface for creating PDF
// documents.
//
// A [Document] collects pages, fonts and images and serializes everything
// into a PDF file when [Document.Close] is called.  All methods must be
// called from a single goroutine; the package performs no locking.
package document

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/image"
	"seehuhn.de/go/pdfgen/pagetree"
)

// Options controls document creation.  The zero value is a valid
// configuration.
type Options struct {
	// Version is the PDF version of the generated file.
	// The zero value selects PDF 1.7.
	Version pdfgen.Version

	// Document information, stored in the information dictionary.
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string

	// PageMode specifies how the document shall be displayed when opened.
	PageMode pdfgen.PageMode

	// Language is the natural language of the document text.
	Language language.Tag

	// CreationDate is the time the document was created.  The zero value
	// leaves the creation date unset, which also keeps the output
	// independent of the clock.
	CreationDate time.Time

	// XMPMetadata embeds the document information as an XMP metadata
	// stream, in addition to the information dictionary.
	XMPMetadata bool
}

// Document represents a PDF document which is being constructed.
type Document struct {
	out io.Writer
	opt Options

	reg  *pdfgen.Registry
	tree *pagetree.Tree

	pages    []*Page
	warnings []string
	closed   bool
}

// New prepares a new document which will be written to w.  The page tree
// root carries the given attributes; pages which do not override them
// inherit these values.
func New(w io.Writer, attr *pagetree.InheritableAttributes, opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Version == 0 {
		opt.Version = pdfgen.V1_7
	}
	if _, err := opt.Version.ToString(); err != nil {
		return nil, &pdfgen.InvalidValueError{Field: "version", Value: opt.Version}
	}
	if !opt.PageMode.IsValid() {
		return nil, &pdfgen.InvalidValueError{Field: "page mode", Value: string(opt.PageMode)}
	}

	reg := pdfgen.NewRegistry()
	doc := &Document{
		out:  w,
		opt:  *opt,
		reg:  reg,
		tree: pagetree.NewTree(reg, attr),
	}
	return doc, nil
}

// Create creates the named file and prepares a new document which will be
// written to it.  The file is closed by [Document.Close].
func Create(name string, attr *pagetree.InheritableAttributes, opt *Options) (*Document, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	doc, err := New(fd, attr, opt)
	if err != nil {
		fd.Close()
		return nil, err
	}
	return doc, nil
}

// NewPage adds a new page to the document.  The page is added below parent;
// a nil parent adds the page directly below the page tree root.
func (d *Document) NewPage(parent *pagetree.Node, attr *pagetree.InheritableAttributes) (*Page, error) {
	if d.closed {
		return nil, pdfgen.ErrClosed
	}
	if parent == nil {
		parent = d.tree.Root()
	}
	page := newPage(d, parent.NewChild(attr))
	d.pages = append(d.pages, page)
	return page, nil
}

// NewFont registers a font for use in the document.
func (d *Document) NewFont(subtype font.Subtype, encoding font.Encoding, baseFont font.BaseFont) (*font.Font, error) {
	if d.closed {
		return nil, pdfgen.ErrClosed
	}
	return font.New(d.reg, subtype, encoding, baseFont)
}

// NewImage registers an image for use in the document.
func (d *Document) NewImage(desc *image.Descriptor) (*image.Embedded, error) {
	if d.closed {
		return nil, pdfgen.ErrClosed
	}
	return image.Embed(d.reg, desc)
}

// Warnings returns the non-fatal problems encountered so far, in the order
// they occurred.
func (d *Document) Warnings() []string {
	return d.warnings
}

func (d *Document) warn(format string, a ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, a...))
}

// Close finalizes the document and writes the PDF file.  No other method
// may be called after Close.  If the document was opened with [Create],
// the file is closed, too.
func (d *Document) Close() error {
	if d.closed {
		return pdfgen.ErrClosed
	}
	d.closed = true

	// Content streams and resource dictionaries for all pages.
	for _, page := range d.pages {
		err := page.finish()
		if err != nil {
			return err
		}
	}

	err := d.tree.Write()
	if err != nil {
		return err
	}

	var metaRef pdfgen.Reference
	if d.opt.XMPMetadata {
		metaRef, err = d.writeMetadata()
		if err != nil {
			return err
		}
	}

	catalog := &pdfgen.Catalog{
		Pages:    d.tree.Root().Ref(),
		PageMode: d.opt.PageMode,
		Metadata: metaRef,
	}
	if d.opt.Language != (language.Tag{}) {
		catalog.Lang = d.opt.Language.String()
	}
	root := d.reg.Register(catalog.AsDict())

	var info pdfgen.Reference
	docInfo := &pdfgen.Info{
		Title:        d.opt.Title,
		Author:       d.opt.Author,
		Subject:      d.opt.Subject,
		Keywords:     d.opt.Keywords,
		Creator:      d.opt.Creator,
		CreationDate: d.opt.CreationDate,
	}
	if !docInfo.IsZero() {
		info = d.reg.Register(docInfo.AsDict())
	}

	pdf, err := pdfgen.NewWriter(d.out, d.opt.Version, d.reg)
	if err != nil {
		return err
	}
	return pdf.Close(root, info)
}
