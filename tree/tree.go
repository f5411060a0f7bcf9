// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree provides an in-memory phylogenetic tree
// read from a Newick (parenthetical) file
// or from the TREES block of a Nexus file.
package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// A Node is a node of a phylogenetic tree.
type Node struct {
	// Label is the name of the node.
	// In a terminal it is the taxon name;
	// in an internal node it usually stores
	// the support value of the split.
	Label string

	// Comment is the content of a bracketed annotation
	// attached to the node,
	// without the enclosing brackets.
	Comment string

	// Length is the length of the branch
	// that connects the node with its parent.
	// A nil value means that the branch
	// has no defined length.
	Length *float64

	// Children is the list of descendants of the node,
	// in the order in which they were read.
	Children []*Node
}

// IsTerm returns true if the node is a terminal,
// that is,
// a node without descendants.
func (n *Node) IsTerm() bool {
	return len(n.Children) == 0
}

// A Format is the file format of a tree file.
type Format int

// Accepted tree file formats.
const (
	Newick Format = iota
	Nexus
)

// ParseFormat returns a format from a string.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "newick":
		return Newick, nil
	case "nexus":
		return Nexus, nil
	}
	return 0, fmt.Errorf("unknown tree format %q", s)
}

// String returns the name of a format.
func (f Format) String() string {
	switch f {
	case Newick:
		return "newick"
	case Nexus:
		return "nexus"
	}
	return "unknown"
}

// A Tree is a phylogenetic tree
// associated with the file format
// in which it is stored.
type Tree struct {
	// Root is the root node of the tree.
	Root *Node

	// Format is the format of the source file.
	// It is also the format used
	// when the tree is written.
	Format Format

	// Translate is the taxon translation table
	// found in the TREES block of a Nexus file.
	// The identifiers are already substituted
	// by the taxon names in the tree,
	// the table is kept only for reference.
	Translate map[string]string

	prec int
}

// SetPrecision sets the number of digits
// after the decimal point
// used to write branch lengths.
// A value of zero or less
// restores the default output,
// in which each length is written
// with the smallest number of digits
// needed to retrieve its value.
func (t *Tree) SetPrecision(d int) {
	if d < 0 {
		d = 0
	}
	t.prec = d
}

// Terms returns the labels of the terminals of the tree,
// in the order in which they were read.
func (t *Tree) Terms() []string {
	return termLabels(t.Root, nil)
}

func termLabels(n *Node, terms []string) []string {
	if n.IsTerm() {
		return append(terms, n.Label)
	}
	for _, c := range n.Children {
		terms = termLabels(c, terms)
	}
	return terms
}

// Supports returns the support values
// stored in the internal nodes of the tree,
// that is,
// any internal node label that can be read as a number.
// Values are given in the order
// in which the nodes were read.
func (t *Tree) Supports() []float64 {
	return supportValues(t.Root, nil)
}

func supportValues(n *Node, vals []float64) []float64 {
	if n.IsTerm() {
		return vals
	}
	if v, err := strconv.ParseFloat(n.Label, 64); err == nil {
		vals = append(vals, v)
	}
	for _, c := range n.Children {
		vals = supportValues(c, vals)
	}
	return vals
}
