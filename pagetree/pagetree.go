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

// Package pagetree implements PDF page trees.
//
// A page tree is a rooted, ordered tree.  Every node owns its children; the
// back-reference from a child to its parent is used for attribute lookups
// only and never implies ownership.  Attributes which are not set on a node
// are inherited from the nearest ancestor which sets them.
package pagetree

import (
	"fmt"

	"seehuhn.de/go/pdfgen"
)

// PageRotation describes how a page shall be rotated when displayed or
// printed.
type PageRotation int

// Valid values for PageRotation.
const (
	RotateInherit PageRotation = iota // use the inherited value

	Rotate0   // don't rotate
	Rotate90  // rotate 90 degrees clockwise
	Rotate180 // rotate 180 degrees clockwise
	Rotate270 // rotate 270 degrees clockwise
)

// InheritableAttributes specifies the page attributes which children
// inherit from their ancestors.
type InheritableAttributes struct {
	// MediaBox defines the boundaries of the physical medium on which the
	// page shall be displayed or printed.  Somewhere on the path from a
	// leaf page to the root, a MediaBox must be set.
	MediaBox *pdfgen.Rectangle

	// CropBox defines the visible region of default user space.
	// Default value: the value of MediaBox.
	CropBox *pdfgen.Rectangle

	// Rotate describes how the page shall be rotated when displayed or
	// printed.  Default value: RotateInherit.
	Rotate PageRotation

	// Resources maps resource names to the fonts and external objects
	// used by the page's content stream.
	Resources pdfgen.Dict
}

// Default paper sizes as PDF rectangles.
var (
	A4     = &pdfgen.Rectangle{URx: 595.275, URy: 841.889}
	A5     = &pdfgen.Rectangle{URx: 419.527, URy: 595.275}
	Letter = &pdfgen.Rectangle{URx: 612, URy: 792}
	Legal  = &pdfgen.Rectangle{URx: 612, URy: 1008}
)

// Tree represents a page tree.  The root node is created together with the
// tree; pages and intermediate nodes are added using [Node.NewChild].
type Tree struct {
	reg  *pdfgen.Registry
	root *Node
}

// NewTree creates a new page tree and registers the root node with the
// registry.  The attributes set on the root apply to all pages which do
// not override them.
func NewTree(reg *pdfgen.Registry, attr *InheritableAttributes) *Tree {
	t := &Tree{reg: reg}
	t.root = &Node{
		tree: t,
		ref:  reg.Alloc(),
	}
	if attr != nil {
		t.root.attr = *attr
	}
	return t
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Node is one node of a page tree.  A node without children represents a
// leaf page; a node with children is an intermediate node.
type Node struct {
	tree     *Tree
	parent   *Node // for attribute lookups only
	children []*Node
	attr     InheritableAttributes
	ref      pdfgen.Reference

	// contents refers to the content stream, for leaf pages.
	contents pdfgen.Reference
}

// NewChild creates a new node below n, registers it with the registry, and
// appends it to n's children.  No attributes are copied; inheritance is
// resolved lazily when attributes are looked up.
func (n *Node) NewChild(attr *InheritableAttributes) *Node {
	child := &Node{
		tree:   n.tree,
		parent: n,
		ref:    n.tree.reg.Alloc(),
	}
	if attr != nil {
		child.attr = *attr
	}
	n.children = append(n.children, child)
	return child
}

// Ref returns the indirect reference of the node.
func (n *Node) Ref() pdfgen.Reference {
	return n.ref
}

// Parent returns the parent of n, or nil for the root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetContents sets the reference of the page's content stream.
func (n *Node) SetContents(ref pdfgen.Reference) {
	n.contents = ref
}

// SetResources sets the page's resource dictionary.
func (n *Node) SetResources(res pdfgen.Dict) {
	n.attr.Resources = res
}

// Count returns the number of leaf pages below n.
//
// A node without children counts as one leaf page (itself).  A node with
// children contributes nothing for itself and returns the sum over its
// children.
func (n *Node) Count() int {
	if len(n.children) == 0 {
		return 1
	}
	total := 0
	for _, child := range n.children {
		total += child.Count()
	}
	return total
}

// Kids returns the references of the immediate children of n, in order.
func (n *Node) Kids() []pdfgen.Reference {
	kids := make([]pdfgen.Reference, len(n.children))
	for i, child := range n.children {
		kids[i] = child.ref
	}
	return kids
}

// List returns all descendants of n in depth-first pre-order.  The node
// itself is not included: for each child, the child is emitted before the
// child's own descendants.
func (n *Node) List() []*Node {
	var nodes []*Node
	for _, child := range n.children {
		nodes = append(nodes, child)
		nodes = append(nodes, child.List()...)
	}
	return nodes
}

// MediaBox returns the node's media box, inherited from an ancestor if the
// node does not set one.  The result is nil if no node on the path to the
// root defines a media box.
func (n *Node) MediaBox() *pdfgen.Rectangle {
	for ; n != nil; n = n.parent {
		if n.attr.MediaBox != nil {
			return n.attr.MediaBox
		}
	}
	return nil
}

// CropBox returns the node's crop box, inherited from an ancestor if the
// node does not set one.
func (n *Node) CropBox() *pdfgen.Rectangle {
	for ; n != nil; n = n.parent {
		if n.attr.CropBox != nil {
			return n.attr.CropBox
		}
	}
	return nil
}

// Rotation returns the node's rotation, inherited from an ancestor if the
// node does not set one.
func (n *Node) Rotation() PageRotation {
	for ; n != nil; n = n.parent {
		if n.attr.Rotate != RotateInherit {
			return n.attr.Rotate
		}
	}
	return RotateInherit
}

// Write fills in the registry bodies for all nodes of the tree.
//
// Inherited attributes are not flattened into the leaf pages; each node
// records only the attributes set on the node itself.  It is a structural
// error if a leaf page cannot resolve a media box.
func (t *Tree) Write() error {
	return t.root.write(true)
}

func (n *Node) write(isRoot bool) error {
	if len(n.children) == 0 && !isRoot {
		return n.writeLeaf()
	}

	count := 0
	for _, child := range n.children {
		count += child.Count()
		err := child.write(false)
		if err != nil {
			return err
		}
	}
	if len(n.children) == 0 {
		count = 0
	}

	kids := pdfgen.Array{}
	for _, ref := range n.Kids() {
		kids = append(kids, ref)
	}
	dict := pdfgen.Dict{
		"Type":  pdfgen.Name("Pages"),
		"Kids":  kids,
		"Count": pdfgen.Integer(count),
	}
	if !isRoot {
		dict["Parent"] = n.parent.ref
	}
	n.attr.mergeInto(dict)

	return n.tree.reg.Put(n.ref, dict)
}

func (n *Node) writeLeaf() error {
	if n.MediaBox() == nil {
		return &pdfgen.StructuralError{
			Err: errNoMediaBox{n.ref},
		}
	}

	dict := pdfgen.Dict{
		"Type":   pdfgen.Name("Page"),
		"Parent": n.parent.ref,
	}
	if !n.contents.IsZero() {
		dict["Contents"] = n.contents
	}
	n.attr.mergeInto(dict)

	return n.tree.reg.Put(n.ref, dict)
}

func (attr *InheritableAttributes) mergeInto(dict pdfgen.Dict) {
	if attr.MediaBox != nil {
		dict["MediaBox"] = attr.MediaBox
	}
	if attr.CropBox != nil {
		dict["CropBox"] = attr.CropBox
	}
	if attr.Rotate != RotateInherit {
		dict["Rotate"] = pdfgen.Integer(90 * (attr.Rotate - Rotate0))
	}
	if attr.Resources != nil {
		dict["Resources"] = attr.Resources
	}
}

type errNoMediaBox struct {
	ref pdfgen.Reference
}

func (err errNoMediaBox) Error() string {
	return fmt.Sprintf("page object %d: no MediaBox set on the path to the root",
		err.ref)
}
