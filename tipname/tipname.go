// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tipname implements a table
// that relates tip identifiers
// with taxon names.
package tipname

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// A Table is a set of taxon names
// keyed by tip identifiers.
type Table struct {
	names map[string]string
	dups  []string
}

// Read reads a table of tip identifiers
// and taxon names from r.
//
// The table must be a tab-delimited file
// in which the first column is the identifier
// and the second column is the taxon name.
// Any additional column is ignored.
// Lines starting with '#' are taken as comments.
// For example:
//
//	# tip identifiers and taxon names
//	K12	Escherichia coli K-12
//	O157	Escherichia coli O157:H7
//
// A row without a name column
// uses the identifier as the name.
// If an identifier is repeated,
// the last read name is kept.
func Read(r io.Reader) (*Table, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'
	tab.FieldsPerRecord = -1

	tb := &Table{names: make(map[string]string)}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("when reading names: %v", err)
		}

		id := strings.TrimSpace(row[0])
		if id == "" {
			continue
		}
		name := id
		if len(row) > 1 {
			if n := strings.TrimSpace(row[1]); n != "" {
				name = n
			}
		}
		if _, dup := tb.names[id]; dup {
			tb.dups = append(tb.dups, id)
		}
		tb.names[id] = name
	}
	return tb, nil
}

// Name returns the taxon name
// for a given tip identifier.
// It returns an empty string
// if the identifier is not in the table.
func (tb *Table) Name(id string) string {
	return tb.names[strings.TrimSpace(id)]
}

// Names returns the table
// as a map of tip identifiers
// to taxon names.
func (tb *Table) Names() map[string]string {
	names := make(map[string]string, len(tb.names))
	for id, n := range tb.names {
		names[id] = n
	}
	return names
}

// IDs returns the identifiers of the table,
// sorted.
func (tb *Table) IDs() []string {
	ids := make([]string, 0, len(tb.names))
	for id := range tb.names {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Duplicates returns the identifiers
// that were defined more than once
// when the table was read,
// in reading order.
func (tb *Table) Duplicates() []string {
	return tb.dups
}
