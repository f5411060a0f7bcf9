// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"io"
	"strings"
)

// ErrFormat indicates that the data
// is not in a recognizable tree file format.
var ErrFormat = errors.New("unrecognized tree format")

// Read reads a phylogenetic tree from r.
//
// The format of the data is detected
// from the first significant line:
// a line that starts with an opening parenthesis
// begins a Newick tree,
// maybe split across several lines;
// the "#NEXUS" header begins a Nexus file
// with a TREES block.
// Blank lines are ignored,
// and any other line starting with '#'
// is taken as a comment.
// If the data contains multiple trees,
// only the first one is read.
func Read(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")

	for _, ln := range lines {
		s := strings.TrimSpace(ln)
		if s == "" {
			continue
		}
		if strings.HasPrefix(s, "(") {
			return readNewick(lines)
		}
		if strings.HasPrefix(strings.ToLower(s), "#nexus") {
			return readNexus(lines)
		}
		if strings.HasPrefix(s, "#") {
			continue
		}
		break
	}
	return nil, ErrFormat
}

// readNewick reads a tree in Newick format,
// joining all the lines of the data
// up to the semicolon
// that ends the first tree.
// Lines starting with '#' are ignored.
func readNewick(lines []string) (*Tree, error) {
	var sb strings.Builder
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		sb.WriteString(ln)
	}
	s := sb.String()
	if i := endOfTree(s); i >= 0 {
		s = s[:i+1]
	}
	root, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &Tree{
		Root:   root,
		Format: Newick,
	}, nil
}

// endOfTree returns the position of the semicolon
// that ends the first tree of s,
// ignoring any semicolon
// inside a quotation or an annotation.
// It returns -1 if there is no tree end.
func endOfTree(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ';':
			return i
		case '[':
			for i++; i < len(s); i++ {
				if s[i] == ']' {
					break
				}
			}
		case '\'':
			for i++; i < len(s); i++ {
				if s[i] != '\'' {
					continue
				}
				if i+1 < len(s) && s[i+1] == '\'' {
					i++
					continue
				}
				break
			}
		}
	}
	return -1
}
