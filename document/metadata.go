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

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen"
)

// pdfSchema is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfSchema struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// writeMetadata registers an XMP metadata stream mirroring the document
// information dictionary.
func (d *Document) writeMetadata() (pdfgen.Reference, error) {
	defaultLang := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if d.opt.Title != "" {
		dc.Title.Set(defaultLang, d.opt.Title)
	}
	if d.opt.Author != "" {
		dc.Creator.Append(xmp.NewProperName(d.opt.Author))
	}
	if d.opt.Subject != "" {
		dc.Description.Set(defaultLang, d.opt.Subject)
	}

	basic := &xmp.Basic{}
	if !d.opt.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(d.opt.CreationDate)
	}

	pdfInfo := &pdfSchema{}
	if d.opt.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(d.opt.Keywords)
	}
	if d.opt.Creator != "" {
		pdfInfo.Producer = xmp.NewAgentName(d.opt.Creator)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	buf := &bytes.Buffer{}
	err := packet.Write(buf, &xmp.PacketOptions{})
	if err != nil {
		return 0, err
	}

	dict := pdfgen.Dict{
		"Type":    pdfgen.Name("Metadata"),
		"Subtype": pdfgen.Name("XML"),
	}
	return d.reg.Register(pdfgen.NewStream(dict, buf.Bytes())), nil
}
