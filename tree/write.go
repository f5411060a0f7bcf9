// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write writes a tree into w,
// in the format assigned to the tree.
//
// A Newick tree is written
// as a single line
// ended by a semicolon.
// A Nexus tree is written
// inside a TREES block:
//
//	#NEXUS
//	BEGIN TREES;
//		TREE 1 = (a,(b,c));
//	END;
//
// In a Nexus tree,
// names that contain blank spaces or periods
// are quoted.
func (t *Tree) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	switch t.Format {
	case Nexus:
		fmt.Fprintf(bw, "#NEXUS\nBEGIN TREES;\n\tTREE 1 = ")
		t.writeNode(bw, t.Root, true)
		fmt.Fprintf(bw, ";\nEND;\n")
	default:
		t.writeNode(bw, t.Root, false)
		fmt.Fprintf(bw, ";\n")
	}
	return bw.Flush()
}

func (t *Tree) writeNode(w *bufio.Writer, n *Node, quote bool) {
	if !n.IsTerm() {
		w.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				w.WriteByte(',')
			}
			t.writeNode(w, c, quote)
		}
		w.WriteByte(')')
	}
	if n.Label != "" {
		lb := n.Label
		if quote {
			lb = quoteLabel(lb)
		}
		w.WriteString(lb)
	}
	if n.Comment != "" {
		w.WriteByte('[')
		w.WriteString(n.Comment)
		w.WriteByte(']')
	}
	if n.Length != nil {
		w.WriteByte(':')
		w.WriteString(t.formatLength(*n.Length))
	}
}

// formatLength returns the text form of a branch length.
// If the tree has a defined precision,
// the length is written with a fixed number
// of digits after the decimal point.
func (t *Tree) formatLength(l float64) string {
	if t.prec > 0 {
		return strconv.FormatFloat(l, 'f', t.prec, 64)
	}
	return strconv.FormatFloat(l, 'g', -1, 64)
}

// quoteLabel returns a label quoted
// as expected by a Nexus file.
// Numeric labels,
// such as support values,
// are never quoted.
func quoteLabel(s string) string {
	if !strings.ContainsAny(s, " \t.():,;[]'") {
		return s
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
