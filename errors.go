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
	"errors"
	"fmt"
)

// InvalidValueError indicates that a configuration field was set to a value
// outside its enumerated set of allowed values.
type InvalidValueError struct {
	Field string
	Value any
}

func (err *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", fmt.Sprint(err.Value), err.Field)
}

// StructuralError indicates that the document cannot be serialized into a
// valid PDF file, for example because a referenced object was never
// registered or a mandatory inherited attribute is missing.
type StructuralError struct {
	Err error
}

func (err *StructuralError) Error() string {
	return "cannot write PDF file: " + err.Err.Error()
}

func (err *StructuralError) Unwrap() error {
	return err.Err
}

func structuralErrorf(format string, a ...any) error {
	return &StructuralError{Err: fmt.Errorf(format, a...)}
}

var (
	// ErrClosed is returned when a document is used after Close.
	ErrClosed = errors.New("document is closed")

	errVersion = errors.New("unsupported PDF version")
)
