// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/gamcil/AfterPhylo/tree"
)

func TestWrite(t *testing.T) {
	tests := map[string]struct {
		in   string
		prec int
		want string
	}{
		"simple": {
			in:   "(A:1,(B:1,C:1)90:1)100;",
			want: "(A:1,(B:1,C:1)90:1)100;\n",
		},
		"full precision": {
			in:   "(A:0.12345678901,B:2);",
			want: "(A:0.12345678901,B:2);\n",
		},
		"fixed precision": {
			in:   "(A:1.23456789,(B:1,C:0.0000001)90:2)100;",
			prec: 6,
			want: "(A:1.234568,(B:1.000000,C:0.000000)90:2.000000)100;\n",
		},
		"annotations": {
			in:   `(A[&prob=1.0]:0.5,B:0.25)[&prob(percent)="95"];`,
			want: `(A[&prob=1.0]:0.5,B:0.25)[&prob(percent)="95"];` + "\n",
		},
	}

	for name, tc := range tests {
		tr, err := tree.Read(strings.NewReader(tc.in))
		if err != nil {
			t.Fatalf("%s: unable to read tree: %v", name, err)
		}
		tr.SetPrecision(tc.prec)

		var w bytes.Buffer
		if err := tr.Write(&w); err != nil {
			t.Fatalf("%s: unable to write tree: %v", name, err)
		}
		if got := w.String(); got != tc.want {
			t.Errorf("%s: got %q, want %q", name, got, tc.want)
		}
	}
}

func TestWriteNexus(t *testing.T) {
	in := "(Homo sapiens:1,(Pan troglodytes:2,Gorilla gorilla:3)90.5:4)root.node;"
	want := "#NEXUS\nBEGIN TREES;\n\tTREE 1 = ('Homo sapiens':1,('Pan troglodytes':2,'Gorilla gorilla':3)90.5:4)'root.node';\nEND;\n"

	tr, err := tree.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}
	tr.Convert(tree.Nexus)

	var w bytes.Buffer
	if err := tr.Write(&w); err != nil {
		t.Fatalf("unable to write tree: %v", err)
	}
	if got := w.String(); got != want {
		t.Errorf("nexus: got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	files := map[string]string{
		"newick": newickFile,
		"nexus":  "#NEXUS\nBEGIN TREES;\n\tTREE 1 = ('Homo sapiens':0.1,(Pan:0.2,Gorilla:0.3)90:0.4);\nEND;\n",
	}

	for name, data := range files {
		t1, err := tree.Read(strings.NewReader(data))
		if err != nil {
			t.Fatalf("%s: unable to read tree: %v", name, err)
		}

		var w bytes.Buffer
		if err := t1.Write(&w); err != nil {
			t.Fatalf("%s: unable to write tree: %v", name, err)
		}

		t2, err := tree.Read(strings.NewReader(w.String()))
		if err != nil {
			t.Fatalf("%s: unable to reread tree: %v", name, err)
		}
		if !reflect.DeepEqual(t2, t1) {
			t.Errorf("%s: got %v, want %v", name, t2, t1)
		}
	}
}
