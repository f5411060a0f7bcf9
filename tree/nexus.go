// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
	"strings"
)

// readNexus reads the first tree statement
// of the TREES block of a Nexus file.
// If the block has a translation table,
// the identifiers in the tree
// are replaced by the taxon names of the table.
func readNexus(lines []string) (*Tree, error) {
	i := 0
	for ; i < len(lines); i++ {
		ln := strings.ToLower(strings.TrimSpace(lines[i]))
		if strings.HasPrefix(ln, "begin trees") {
			break
		}
	}
	if i >= len(lines) {
		return nil, errors.New("nexus: expecting a TREES block")
	}

	names := make(map[string]string)
	var stmt string
loop:
	for i++; i < len(lines); i++ {
		ln := strings.TrimSpace(lines[i])
		if ln == "" {
			continue
		}
		f := strings.Fields(ln)
		switch strings.ToLower(strings.TrimSuffix(f[0], ";")) {
		case "translate":
			var err error
			i, err = readTranslate(lines, i, names)
			if err != nil {
				return nil, err
			}
		case "tree", "utree":
			stmt, i = readStatement(lines, i)
			break loop
		case "end", "endblock":
			break loop
		}
	}
	if stmt == "" {
		return nil, errors.New("nexus: expecting a tree statement")
	}

	eq := strings.IndexByte(stmt, '=')
	if eq < 0 {
		return nil, fmt.Errorf("nexus: invalid tree statement: %q", stmt)
	}
	s := strings.TrimSpace(stmt[eq+1:])
	s = dropRooting(s)
	if j := endOfTree(s); j >= 0 {
		s = s[:j+1]
	}
	root, err := Parse(substitute(s, names))
	if err != nil {
		return nil, err
	}
	t := &Tree{
		Root:   root,
		Format: Nexus,
	}
	if len(names) > 0 {
		t.Translate = names
	}
	return t, nil
}

// readTranslate reads the translation table
// of a TREES block,
// a list of comma separated pairs
// of an identifier and a taxon name,
// ended by a semicolon.
// An entry without a name
// uses the identifier as the taxon name.
func readTranslate(lines []string, i int, names map[string]string) (int, error) {
	ln := strings.TrimSpace(lines[i])
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(ln[len("translate"):]))
	for !strings.Contains(sb.String(), ";") {
		i++
		if i >= len(lines) {
			return i, errors.New("nexus: translation table without end")
		}
		sb.WriteString("\n")
		sb.WriteString(strings.TrimSpace(lines[i]))
	}
	text := sb.String()
	if j := strings.IndexByte(text, ';'); j >= 0 {
		text = text[:j]
	}

	for _, e := range strings.Split(text, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		id, nm := e, e
		if j := strings.IndexAny(e, " \t\n"); j > 0 {
			id = e[:j]
			nm = strings.TrimSpace(e[j+1:])
		}
		names[id] = unquote(nm)
	}
	return i, nil
}

// readStatement joins the lines of a tree statement
// up to the semicolon
// that ends the tree.
func readStatement(lines []string, i int) (string, int) {
	var sb strings.Builder
	for ; i < len(lines); i++ {
		sb.WriteString(strings.TrimSpace(lines[i]))
		if endOfTree(sb.String()) >= 0 {
			break
		}
	}
	return sb.String(), i
}

// dropRooting removes the rooting annotation,
// such as "[&U]" or "[&R]",
// at the beginning of a tree statement.
func dropRooting(s string) string {
	if len(s) < 4 || s[0] != '[' || s[1] != '&' {
		return s
	}
	switch s[2] {
	case 'R', 'U', 'r', 'u':
	default:
		return s
	}
	if s[3] != ']' {
		return s
	}
	return strings.TrimSpace(s[4:])
}

// unquote removes the quotation marks of a name.
func unquote(s string) string {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return s
	}
	s = s[1 : len(s)-1]
	return strings.ReplaceAll(s, "''", "'")
}

// substitute replaces the identifiers of a tree
// with the taxon names of a translation table.
// An identifier is the whole token
// found just after an opening parenthesis
// or a comma.
// Identifiers without a translation
// are kept as read.
func substitute(s string, names map[string]string) string {
	if len(names) == 0 {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		sb.WriteByte(c)
		i++
		switch c {
		case '[':
			for i < len(s) {
				c = s[i]
				sb.WriteByte(c)
				i++
				if c == ']' {
					break
				}
			}
		case '(', ',':
			j := i
			for j < len(s) && strings.IndexByte("():,;[]", s[j]) < 0 {
				j++
			}
			tok := s[i:j]
			nm, ok := names[strings.TrimSpace(tok)]
			if !ok {
				sb.WriteString(tok)
				i = j
				continue
			}
			if strings.ContainsAny(nm, "():,;[]'") {
				nm = "'" + strings.ReplaceAll(nm, "'", "''") + "'"
			}
			sb.WriteString(nm)
			i = j
		}
	}
	return sb.String()
}
