// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"testing"
)

func TestCollapse(t *testing.T) {
	tests := map[string]struct {
		in   string
		min  float64
		want string
	}{
		"low support": {
			in:   "(A:1,(B:1,C:1)90:1)100;",
			min:  95,
			want: "(A:1,B:2,C:2)100;\n",
		},
		"support at the threshold": {
			in:   "(A:1,(B:1,C:1)90:1)100;",
			min:  90,
			want: "(A:1,(B:1,C:1)90:1)100;\n",
		},
		"nested": {
			in:   "((A:1,B:2)50:3,(C:4,(D:5,E:6)40:7)60:8)90;",
			min:  70,
			want: "(A:4,B:5,C:12,D:20,E:21)90;\n",
		},
		"root": {
			in:   "(A:1,B:1)10;",
			min:  95,
			want: "(A:1,B:1)10;\n",
		},
		"topology": {
			in:   "(A,(B,C)50,(D,E)90)100;",
			min:  70,
			want: "(A,B,C,(D,E)90)100;\n",
		},
		"length at the root": {
			in:   "(A,(B,C)50):0;",
			min:  70,
			want: "(A,B,C):0;\n",
		},
		"unlabeled nodes": {
			in:   "(A:1,(B:1,C:1):1)100;",
			min:  95,
			want: "(A:1,(B:1,C:1):1)100;\n",
		},
		"named clades": {
			in:   "(A:1,(B:1,C:1)primates:1)100;",
			min:  95,
			want: "(A:1,(B:1,C:1)primates:1)100;\n",
		},
		"NaN label": {
			in:   "(A:1,(B:1,C:1)NaN:1)100;",
			min:  95,
			want: "(A:1,(B:1,C:1)NaN:1)100;\n",
		},
		"order preserved": {
			in:   "(A:1,(B:1,C:1)10:1,D:1)100;",
			min:  95,
			want: "(A:1,B:2,C:2,D:1)100;\n",
		},
	}

	for name, tc := range tests {
		tr := readTree(t, tc.in)
		if err := tr.Collapse(tc.min); err != nil {
			t.Errorf("%s: unable to collapse tree: %v", name, err)
			continue
		}
		if got := writeTree(t, tr); got != tc.want {
			t.Errorf("%s: got %q, want %q", name, got, tc.want)
		}
	}
}

func TestCollapseIdempotent(t *testing.T) {
	tr := readTree(t, "((A:1,B:2)50:3,(C:4,(D:5,E:6)40:7)60:8)90;")
	if err := tr.Collapse(70); err != nil {
		t.Fatalf("unable to collapse tree: %v", err)
	}
	first := writeTree(t, tr)

	if err := tr.Collapse(70); err != nil {
		t.Fatalf("unable to collapse tree: %v", err)
	}
	if second := writeTree(t, tr); second != first {
		t.Errorf("second collapse: got %q, want %q", second, first)
	}
}

func TestCollapseMixedLengths(t *testing.T) {
	tr := readTree(t, "(A:1,(B,C)50:1)90;")
	if err := tr.Collapse(70); err == nil {
		t.Errorf("expecting error for a tree with a mix of branch lengths")
	}
}
