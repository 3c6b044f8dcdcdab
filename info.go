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

import "time"

// Info represents a PDF Document Information Dictionary.
// All fields in this structure are optional.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the
	// document to PDF.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time
}

// IsZero reports whether all fields of the Info dictionary are unset.
func (info *Info) IsZero() bool {
	return info == nil || *info == Info{}
}

// AsDict returns the dictionary representation of the Info structure.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	if info.Title != "" {
		dict["Title"] = String(info.Title)
	}
	if info.Author != "" {
		dict["Author"] = String(info.Author)
	}
	if info.Subject != "" {
		dict["Subject"] = String(info.Subject)
	}
	if info.Keywords != "" {
		dict["Keywords"] = String(info.Keywords)
	}
	if info.Creator != "" {
		dict["Creator"] = String(info.Creator)
	}
	if info.Producer != "" {
		dict["Producer"] = String(info.Producer)
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	return dict
}

// PageMode specifies how the document shall be displayed when opened.
type PageMode Name

// Allowed values for PageMode.
const (
	PageModeDefault     PageMode = ""
	PageModeUseNone     PageMode = "UseNone"
	PageModeUseOutlines PageMode = "UseOutlines"
	PageModeUseThumbs   PageMode = "UseThumbs"
	PageModeFullScreen  PageMode = "FullScreen"
)

// IsValid reports whether the page mode is one of the allowed values.
func (m PageMode) IsValid() bool {
	switch m {
	case PageModeDefault, PageModeUseNone, PageModeUseOutlines,
		PageModeUseThumbs, PageModeFullScreen:
		return true
	}
	return false
}

// Catalog represents the document catalog, the root object of the document.
type Catalog struct {
	Pages    Reference
	PageMode PageMode
	Lang     string
	Metadata Reference
}

// AsDict returns the dictionary representation of the catalog.
func (cat *Catalog) AsDict() Dict {
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": cat.Pages,
	}
	if cat.PageMode != PageModeDefault {
		dict["PageMode"] = Name(cat.PageMode)
	}
	if cat.Lang != "" {
		dict["Lang"] = String(cat.Lang)
	}
	if !cat.Metadata.IsZero() {
		dict["Metadata"] = cat.Metadata
	}
	return dict
}
