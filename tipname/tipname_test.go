// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tipname_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gamcil/AfterPhylo/tipname"
)

var namesFile = `# tip identifiers and taxon names
K12	Escherichia coli K-12
O157	Escherichia coli O157:H7
SF301
DH10B	Escherichia coli DH10B	extra column
K12	Escherichia coli str. K-12
`

func TestRead(t *testing.T) {
	tb, err := tipname.Read(strings.NewReader(namesFile))
	if err != nil {
		t.Fatalf("unable to read names: %v", err)
	}

	want := map[string]string{
		"K12":   "Escherichia coli str. K-12",
		"O157":  "Escherichia coli O157:H7",
		"SF301": "SF301",
		"DH10B": "Escherichia coli DH10B",
	}
	if got := tb.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names: got %v, want %v", got, want)
	}

	ids := []string{"DH10B", "K12", "O157", "SF301"}
	if got := tb.IDs(); !reflect.DeepEqual(got, ids) {
		t.Errorf("identifiers: got %v, want %v", got, ids)
	}

	if got, w := tb.Name("K12"), "Escherichia coli str. K-12"; got != w {
		t.Errorf("name: got %q, want %q", got, w)
	}
	if got := tb.Name("unknown"); got != "" {
		t.Errorf("name: got %q for an unknown identifier", got)
	}

	dups := []string{"K12"}
	if got := tb.Duplicates(); !reflect.DeepEqual(got, dups) {
		t.Errorf("duplicates: got %v, want %v", got, dups)
	}
}

func TestReadError(t *testing.T) {
	if _, err := tipname.Read(strings.NewReader("K12\t\"unclosed\n")); err == nil {
		t.Errorf("expecting error for a malformed file")
	}
}
