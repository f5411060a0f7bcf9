// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"math"
	"strconv"
)

// Collapse removes every internal node
// with a support value below a given threshold,
// moving its descendants
// to the parent of the removed node,
// in the place where the node was.
// The support value of a node
// is its label read as a number;
// nodes with an empty,
// non numeric,
// or NaN label
// are always kept,
// as well as the root and the terminals.
//
// If the tree has branch lengths,
// the length of a removed branch
// is added to the branches of its descendants,
// so the length of the path
// from any terminal to the root
// is never changed.
// A tree in which only some branches
// have a defined length
// cannot be collapsed
// and results in an error.
func (t *Tree) Collapse(min float64) error {
	var with, without int
	countLengths(t.Root, &with, &without)
	if with > 0 && without > 0 {
		return errors.New("tree with a mix of defined and undefined branch lengths")
	}
	collapse(t.Root, min, with > 0)
	return nil
}

// countLengths counts the branches of a tree
// with and without a defined length.
// The root is not counted
// as it has no branch.
func countLengths(n *Node, with, without *int) {
	for _, c := range n.Children {
		if c.Length != nil {
			*with++
		} else {
			*without++
		}
		countLengths(c, with, without)
	}
}

// collapse resolves the descendants of a node
// before removing its low support children,
// so a node moved into its grandparent
// is never evaluated twice.
func collapse(n *Node, min float64, lengths bool) {
	for _, c := range n.Children {
		collapse(c, min, lengths)
	}

	children := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.IsTerm() {
			children = append(children, c)
			continue
		}
		v, err := strconv.ParseFloat(c.Label, 64)
		if err != nil || math.IsNaN(v) || v >= min {
			children = append(children, c)
			continue
		}
		if lengths {
			for _, gc := range c.Children {
				l := *gc.Length + *c.Length
				gc.Length = &l
			}
		}
		children = append(children, c.Children...)
	}
	n.Children = children
}
