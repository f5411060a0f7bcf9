// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package export

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/gamcil/AfterPhylo/tree"
)

var nexusData = `#NEXUS
begin trees;
	translate
		1	'Homo sapiens',
		2	'Pan troglodytes',
		3	Gorilla;
	tree first = (1:1,(2:2,3:3)90:4);
end;
`

func TestImportTree(t *testing.T) {
	tr, err := tree.Read(strings.NewReader(nexusData))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	nc, err := importTree(tr, "hominids")
	if err != nil {
		t.Fatalf("unable to import tree: %v", err)
	}
	tt := nc.Tree("hominids")
	if tt == nil {
		t.Fatalf("tree %q not found", "hominids")
	}

	terms := tt.Terms()
	slices.Sort(terms)
	want := []string{"Gorilla", "Homo sapiens", "Pan troglodytes"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("terminals: got %v, want %v", terms, want)
	}
}
