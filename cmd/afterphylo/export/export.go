// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export trees
// to a tab-delimited tree file.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gamcil/AfterPhylo/tree"
	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
)

const millionYears = 1_000_000

var Command = &command.Command{
	Usage: `export [-f|--file <tree-file>]
	[--name <name>] [--age <value>]
	[<tree-file>...]`,
	Short: "export trees to a tab-delimited file",
	Long: `
Command export reads one or more trees, in Newick or Nexus format, and writes
them into a single tab-delimited tree file, as used by tools such as PhyGeo.
The trees must be time calibrated, with branch lengths given in million
years.

One or more tree files can be given as arguments. If no file is given, the
tree will be read from the standard input.

By default, each tree is named after its file. The flag --name sets the name
of the trees; if multiple files are read, an index number will be added to
the name. By default, the age of the root will be calculated from the largest
branch length between any terminal and the root. To set a different root age,
use the flag --age, with a value in million years.

By default, the trees will be written to the file 'trees.tab'. A different
file name can be set with the flag --file, or -f.

Support labels and annotations are removed before the export, as the
tab-delimited format only stores the topology, the node ages, and the names
of the terminals.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var treeName string
var rootAge float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().Float64Var(&rootAge, "age", 0, "")
}

func run(c *command.Command, args []string) error {
	tc := timetree.NewCollection()

	if len(args) == 0 {
		args = append(args, "-")
	}
	for i, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		t, err := readTree(c.Stdin(), fn)
		if err != nil {
			return err
		}

		tn := treeName
		if tn == "" {
			tn = baseName(a)
		} else if i > 0 {
			tn = fmt.Sprintf("%s.%d", treeName, i)
		}

		nc, err := importTree(t, tn)
		if err != nil {
			return fmt.Errorf("on file %q: %v", a, err)
		}
		for _, nm := range nc.Names() {
			if err := tc.Add(nc.Tree(nm)); err != nil {
				return fmt.Errorf("when adding trees from %q: %v", a, err)
			}
		}
	}

	if treeFile == "" {
		treeFile = "trees.tab"
	}
	return writeTrees(tc)
}

func readTree(r io.Reader, name string) (*tree.Tree, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	t, err := tree.Read(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}

// importTree makes a time tree
// from a tree read from a tree file.
// Support labels and annotations are removed,
// as the time tree only stores
// the topology and the node ages.
func importTree(t *tree.Tree, name string) (*timetree.Collection, error) {
	t.Convert(tree.Newick)
	cleanNodes(t.Root)

	var b bytes.Buffer
	if err := t.Write(&b); err != nil {
		return nil, err
	}
	return timetree.Newick(&b, name, int64(rootAge*millionYears))
}

// cleanNodes removes the internal labels
// and the annotations of a tree,
// keeping only the names of the terminals.
// Terminal names with blank spaces
// or quotation marks
// are quoted,
// so they will be read back as a single name.
func cleanNodes(n *tree.Node) {
	n.Comment = ""
	if !n.IsTerm() {
		n.Label = ""
	} else if strings.ContainsAny(n.Label, " \t'") {
		n.Label = "'" + strings.ReplaceAll(n.Label, "'", "''") + "'"
	}
	for _, c := range n.Children {
		cleanNodes(c)
	}
}

// baseName returns the name of a file
// without the directory and the extension.
func baseName(name string) string {
	name = filepath.Base(name)
	if ext := filepath.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

func writeTrees(tc *timetree.Collection) (err error) {
	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}
	return nil
}
