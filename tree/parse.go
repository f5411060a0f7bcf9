// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a tree in parenthetical notation
// (i.e., a Newick tree)
// and returns its root node.
//
// In the tree,
// each terminal must have a name,
// and any node can be followed
// by a bracketed annotation,
// and by a colon
// with the length of the branch
// that connects the node with its parent:
//
//	(eutheria,(cetacea,(monotremata,marsupialia)wrong[see amrine-madsen 2003]:6.5)93:3.1);
//
// Names and labels can be quoted
// with single quotation marks,
// and can contain unquoted blank spaces,
// but not parentheses,
// commas,
// colons,
// brackets,
// or semicolons.
// The content of an annotation is kept verbatim,
// so it can contain any character
// except the closing bracket.
func Parse(s string) (*Node, error) {
	p := &parser{s: s}
	n, err := p.subtree()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	p.next(';')
	p.skipSpaces()
	if p.pos < len(p.s) {
		return nil, fmt.Errorf("at position %d: unexpected text after the tree", p.pos+1)
	}
	return n, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) next(c byte) bool {
	if p.peek() != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.s) && unicode.IsSpace(rune(p.s[p.pos])) {
		p.pos++
	}
}

func (p *parser) subtree() (*Node, error) {
	p.skipSpaces()
	if p.peek() == '(' {
		return p.internal()
	}
	return p.leaf()
}

func (p *parser) internal() (*Node, error) {
	p.pos++
	n := &Node{}
	for {
		c, err := p.subtree()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, c)
		p.skipSpaces()
		if p.next(',') {
			continue
		}
		break
	}
	if !p.next(')') {
		return nil, fmt.Errorf("at position %d: expecting %q", p.pos+1, ')')
	}
	nm, err := p.name()
	if err != nil {
		return nil, err
	}
	n.Label = nm
	if err := p.attributes(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) leaf() (*Node, error) {
	p.skipSpaces()
	nm, err := p.name()
	if err != nil {
		return nil, err
	}
	if nm == "" {
		return nil, fmt.Errorf("at position %d: expecting a taxon name", p.pos+1)
	}
	n := &Node{Label: nm}
	if err := p.attributes(n); err != nil {
		return nil, err
	}
	return n, nil
}

// attributes reads the bracketed annotation
// and the branch length of a node.
func (p *parser) attributes(n *Node) error {
	p.skipSpaces()
	if p.peek() == '[' {
		c, err := p.comment()
		if err != nil {
			return err
		}
		n.Comment = c
	}
	p.skipSpaces()
	if p.next(':') {
		l, err := p.length()
		if err != nil {
			return err
		}
		n.Length = &l
	}
	p.skipSpaces()
	switch p.peek() {
	case ',', ')', ';', 0:
		return nil
	}
	return fmt.Errorf("at position %d: unexpected character %q", p.pos+1, rune(p.peek()))
}

func (p *parser) name() (string, error) {
	p.skipSpaces()
	if p.peek() == '\'' {
		return p.quoted()
	}
	start := p.pos
	for p.pos < len(p.s) {
		if strings.IndexByte("():,;[]", p.s[p.pos]) >= 0 {
			break
		}
		p.pos++
	}
	return strings.TrimSpace(p.s[start:p.pos]), nil
}

func (p *parser) quoted() (string, error) {
	start := p.pos
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c != '\'' {
			sb.WriteByte(c)
			p.pos++
			continue
		}
		p.pos++

		// a pair of quotation marks
		// is an escaped quotation
		if p.peek() == '\'' {
			sb.WriteByte('\'')
			p.pos++
			continue
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("at position %d: unclosed quotation", start+1)
}

func (p *parser) comment() (string, error) {
	start := p.pos
	p.pos++
	for i := p.pos; i < len(p.s); i++ {
		if p.s[i] == ']' {
			c := p.s[p.pos:i]
			p.pos = i + 1
			return c, nil
		}
	}
	return "", fmt.Errorf("at position %d: unclosed annotation", start+1)
}

func (p *parser) length() (float64, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if strings.IndexByte("():,;[]", c) >= 0 || unicode.IsSpace(rune(c)) {
			break
		}
		p.pos++
	}
	v := p.s[start:p.pos]
	l, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("at position %d: invalid branch length %q", start+1, v)
	}
	if math.IsInf(l, 0) || math.IsNaN(l) {
		return 0, fmt.Errorf("at position %d: invalid branch length %q", start+1, v)
	}
	return l, nil
}
