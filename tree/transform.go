// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Convert changes the format
// used to write the tree.
// When a Nexus tree is converted to Newick,
// all bracketed annotations are removed.
func (t *Tree) Convert(f Format) {
	if f == t.Format {
		return
	}
	if t.Format == Nexus && f == Newick {
		dropComments(t.Root)
	}
	t.Format = f
}

// Scale multiplies all branch lengths of the tree
// by a given factor.
// The factor must be a number
// distinct from zero,
// but it can be negative.
func (t *Tree) Scale(f float64) error {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid scale factor %v", f)
	}
	scale(t.Root, f)
	return nil
}

func scale(n *Node, f float64) {
	if n.Length != nil {
		l := *n.Length * f
		n.Length = &l
	}
	for _, c := range n.Children {
		scale(c, f)
	}
}

// DropLengths removes all branch lengths of the tree,
// leaving only the topology and the labels.
func (t *Tree) DropLengths() {
	dropLengths(t.Root)
}

func dropLengths(n *Node) {
	n.Length = nil
	for _, c := range n.Children {
		dropLengths(c)
	}
}

// DropLabels removes all bracketed annotations of the tree,
// as well as the support labels of the internal nodes.
// A support label is an internal node label
// made only of a number
// and not followed by a branch length.
func (t *Tree) DropLabels() {
	dropLabels(t.Root)
}

func dropLabels(n *Node) {
	n.Comment = ""
	if !n.IsTerm() && n.Length == nil {
		if _, err := strconv.ParseFloat(n.Label, 64); err == nil {
			n.Label = ""
		}
	}
	for _, c := range n.Children {
		dropLabels(c)
	}
}

func dropComments(n *Node) {
	n.Comment = ""
	for _, c := range n.Children {
		dropComments(c)
	}
}

var (
	probRx      = regexp.MustCompile(`prob\(percent\)="(\d+)"`)
	posteriorRx = regexp.MustCompile(`posterior=([0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?)`)
)

// ExtractConfidence replaces the bracketed annotation
// of each internal node
// with a numeric confidence label.
// The confidence is searched
// in the prob(percent) field
// of a MrBayes consensus tree,
// or in the posterior field
// of a BEAST maximum credibility tree,
// scaled to a percentage.
// An annotation without a recognized field
// is just removed.
// Annotations of the terminals are kept untouched.
func (t *Tree) ExtractConfidence() {
	extractConfidence(t.Root)
}

func extractConfidence(n *Node) {
	if n.IsTerm() {
		return
	}
	for _, c := range n.Children {
		extractConfidence(c)
	}
	if n.Comment == "" {
		return
	}
	if m := probRx.FindStringSubmatch(n.Comment); m != nil {
		n.Label = m[1]
	} else if m := posteriorRx.FindStringSubmatch(n.Comment); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		n.Label = strconv.Itoa(int(math.Round(v * 100)))
	}
	n.Comment = ""
}

// Annotate renames the terminals of the tree
// using a table of taxon names
// keyed by the current terminal labels.
// By default the name is appended to the label;
// if replace is true,
// the name takes the place of the label.
// Terminals without an entry in the table
// are left untouched.
func (t *Tree) Annotate(names map[string]string, replace bool) {
	annotate(t.Root, names, replace)
}

func annotate(n *Node, names map[string]string, replace bool) {
	if n.IsTerm() {
		nm, ok := names[n.Label]
		if !ok {
			return
		}
		if replace {
			n.Label = nm
			return
		}
		n.Label = n.Label + " " + nm
		return
	}
	for _, c := range n.Children {
		annotate(c, names, replace)
	}
}
