// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package terms implements a command to print
// the list of the terminals of tree files.
package terms

import (
	"fmt"
	"os"

	"github.com/gamcil/AfterPhylo/tree"
	"github.com/js-arias/command"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "terms [--count] <tree-file>...",
	Short: "print a list of tree terminals",
	Long: `
Command terms reads one or more tree files, in Newick or Nexus format, and
prints the name of the terminals in the standard output. The names are
sorted, and each terminal is printed a single time, even if it is present in
several files.

One or more tree files must be given as arguments of the command. A file that
cannot be parsed will be reported as a warning and skipped.

If the flag --count is set, the number of terminals will be printed at the
end of the list.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var count bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&count, "count", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting one or more tree files")
	}

	terms := make(map[string]bool)
	for _, a := range args {
		t, err := readTree(a)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "WARNING: on file %q: %v: skipped\n", a, err)
			continue
		}
		for _, term := range t.Terms() {
			terms[term] = true
		}
	}

	ls := make([]string, 0, len(terms))
	for term := range terms {
		ls = append(ls, term)
	}
	slices.Sort(ls)

	for _, term := range ls {
		fmt.Fprintf(c.Stdout(), "%s\n", term)
	}
	if count {
		fmt.Fprintf(c.Stdout(), "%d terminals\n", len(ls))
	}
	return nil
}

func readTree(name string) (*tree.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := tree.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return t, nil
}
