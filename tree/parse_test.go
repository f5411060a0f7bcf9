// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"reflect"
	"testing"

	"github.com/gamcil/AfterPhylo/tree"
)

func fl(v float64) *float64 { return &v }

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in   string
		want *tree.Node
	}{
		"topology": {
			in: "(A,(B,C));",
			want: &tree.Node{Children: []*tree.Node{
				{Label: "A"},
				{Children: []*tree.Node{
					{Label: "B"},
					{Label: "C"},
				}},
			}},
		},
		"lengths and supports": {
			in: "(A:1,(B:1,C:1)90:1)100;",
			want: &tree.Node{Label: "100", Children: []*tree.Node{
				{Label: "A", Length: fl(1)},
				{Label: "90", Length: fl(1), Children: []*tree.Node{
					{Label: "B", Length: fl(1)},
					{Label: "C", Length: fl(1)},
				}},
			}},
		},
		"annotations": {
			in: `(A[&prob=1.0]:0.5,B[&prob=0.5]:0.25)[&prob(percent)="95"]:0.0;`,
			want: &tree.Node{Comment: `&prob(percent)="95"`, Length: fl(0), Children: []*tree.Node{
				{Label: "A", Comment: "&prob=1.0", Length: fl(0.5)},
				{Label: "B", Comment: "&prob=0.5", Length: fl(0.25)},
			}},
		},
		"quoted names": {
			in: "('Homo sapiens':1,'Pan ''troglodytes''':2)'root node';",
			want: &tree.Node{Label: "root node", Children: []*tree.Node{
				{Label: "Homo sapiens", Length: fl(1)},
				{Label: "Pan 'troglodytes'", Length: fl(2)},
			}},
		},
		"unquoted spaces": {
			in: "(A Alpha:1,B Beta:1);",
			want: &tree.Node{Children: []*tree.Node{
				{Label: "A Alpha", Length: fl(1)},
				{Label: "B Beta", Length: fl(1)},
			}},
		},
		"blank spaces": {
			in: "( A : 1 , ( B : 2 , C : 3 ) 90 : 1.5 ) ;",
			want: &tree.Node{Children: []*tree.Node{
				{Label: "A", Length: fl(1)},
				{Label: "90", Length: fl(1.5), Children: []*tree.Node{
					{Label: "B", Length: fl(2)},
					{Label: "C", Length: fl(3)},
				}},
			}},
		},
		"no semicolon": {
			in: "(A,B)",
			want: &tree.Node{Children: []*tree.Node{
				{Label: "A"},
				{Label: "B"},
			}},
		},
		"signs and exponents": {
			in: "(A:-1.5,B:1e-3);",
			want: &tree.Node{Children: []*tree.Node{
				{Label: "A", Length: fl(-1.5)},
				{Label: "B", Length: fl(0.001)},
			}},
		},
	}

	for name, tc := range tests {
		got, err := tree.Parse(tc.in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", name, got, tc.want)
		}
	}
}

func TestParseError(t *testing.T) {
	tests := map[string]string{
		"empty":                   "",
		"unclosed tree":           "(A,(B,C);",
		"text after tree":         "(A,B); junk",
		"two trees":               "(A,B);(C,D);",
		"missing taxon":           "(A,,B);",
		"empty group":             "();",
		"unclosed quotation":      "('A,B);",
		"unclosed annotation":     "(A[x,B);",
		"annotation after length": "(A:1[x],B);",
		"invalid length":          "(A:x,B);",
		"infinite length":         "(A:inf,B);",
	}

	for name, in := range tests {
		if _, err := tree.Parse(in); err == nil {
			t.Errorf("%s: expecting error when parsing %q", name, in)
		}
	}
}
