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

// Registry assigns object numbers to indirect objects and, after the
// document has been serialized, maps each object number to the byte offset
// of the object in the file.
//
// Object numbers are assigned in strictly increasing order, starting at 1.
// Object number 0 is reserved for the head of the cross-reference free list.
type Registry struct {
	entries []*regEntry
}

type regEntry struct {
	obj    Object
	pos    int64
	filled bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Alloc reserves the next object number.  The object body must be supplied
// via [Registry.Put] before the document is serialized.
func (r *Registry) Alloc() Reference {
	r.entries = append(r.entries, &regEntry{pos: -1})
	return Reference(len(r.entries))
}

// Register allocates the next object number and stores the object body.
func (r *Registry) Register(obj Object) Reference {
	ref := r.Alloc()
	r.entries[int(ref)-1].obj = obj
	r.entries[int(ref)-1].filled = true
	return ref
}

// Put stores the body for a previously allocated object number.  It is an
// error to store a body twice, or to use a reference which was not
// allocated by this registry.
func (r *Registry) Put(ref Reference, obj Object) error {
	idx := int(ref) - 1
	if idx < 0 || idx >= len(r.entries) {
		return fmt.Errorf("object %d not allocated", int(ref))
	}
	e := r.entries[idx]
	if e.filled {
		return fmt.Errorf("object %d already has a body", int(ref))
	}
	e.obj = obj
	e.filled = true
	return nil
}

// Get returns the stored body for ref, or nil if no body has been stored.
func (r *Registry) Get(ref Reference) Object {
	idx := int(ref) - 1
	if idx < 0 || idx >= len(r.entries) {
		return nil
	}
	return r.entries[idx].obj
}

// Len returns the number of allocated object numbers.  The /Size entry of
// the file trailer is Len()+1.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Resolve returns the byte offset at which the object was written.  The
// offset is only available after the document has been serialized.
func (r *Registry) Resolve(ref Reference) (int64, error) {
	idx := int(ref) - 1
	if idx < 0 || idx >= len(r.entries) {
		return 0, fmt.Errorf("object %d not allocated", int(ref))
	}
	e := r.entries[idx]
	if e.pos < 0 {
		return 0, errors.New("object offsets are only known after serialization")
	}
	return e.pos, nil
}

func (r *Registry) setOffset(ref Reference, pos int64) {
	r.entries[int(ref)-1].pos = pos
}

// checkComplete returns a structural error if any allocated object number
// has no body.
func (r *Registry) checkComplete() error {
	for i, e := range r.entries {
		if !e.filled {
			return structuralErrorf("object %d was referenced but never registered", i+1)
		}
	}
	return nil
}
