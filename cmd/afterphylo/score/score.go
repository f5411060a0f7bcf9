// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package score implements a command to report
// the support values of the nodes of a tree.
package score

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gamcil/AfterPhylo/tree"
	"github.com/js-arias/command"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `score [--confonly]
	[--plot <file-prefix>] [--bins <number>]
	[<tree-file>...]`,
	Short: "report the support of the nodes of a tree",
	Long: `
Command score reads one or more tree files, in Newick or Nexus format, and
prints the number of internal nodes with a numeric support label, the sum of
the supports, and the average support of each tree.

One or more tree files can be given as arguments. If no file is given, the
tree will be read from the standard input.

If a tree stores its supports as clade credibility annotations, as written by
MrBayes or BEAST, set the flag --confonly to read the annotations as support
labels.

If the flag --plot is set, with a file prefix, a histogram of the support
values of each tree will be saved as a PNG file, named with the prefix and
the name of the tree file. The number of bins of the histogram can be set
with the flag --bins; the default is 10.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var confOnly bool
var plotPrefix string
var numBins int

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&confOnly, "confonly", false, "")
	c.Flags().StringVar(&plotPrefix, "plot", "", "")
	c.Flags().IntVar(&numBins, "bins", 10, "")
}

func run(c *command.Command, args []string) error {
	if numBins <= 0 {
		return c.UsageError("invalid --bins value")
	}

	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		if err := scoreFile(c, a); err != nil {
			return err
		}
	}
	return nil
}

func scoreFile(c *command.Command, name string) error {
	r := c.Stdin()
	if name == "-" {
		name = "stdin"
	} else {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(c.Stderr(), "WARNING: %v: skipped\n", err)
			return nil
		}
		defer f.Close()
		r = f
	}

	t, err := tree.Read(r)
	if err != nil {
		fmt.Fprintf(c.Stderr(), "WARNING: on file %q: %v: skipped\n", name, err)
		return nil
	}
	if confOnly {
		t.ExtractConfidence()
	}

	sp := t.Supports()
	printScores(c.Stdout(), name, sp)
	if plotPrefix == "" || len(sp) == 0 {
		return nil
	}

	pf := fmt.Sprintf("%s-%s.png", plotPrefix, baseName(name))
	if err := plotScores(pf, sp); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}

// printScores prints the number of internal nodes
// with a numeric support,
// the sum of the supports,
// and the average support of a tree.
func printScores(w io.Writer, name string, sp []float64) {
	if len(sp) == 0 {
		fmt.Fprintf(w, "%s: no scored nodes\n", name)
		return
	}
	fmt.Fprintf(w, "%s: %d scored nodes, sum %.3f, mean %.3f\n", name, len(sp), floats.Sum(sp), stat.Mean(sp, nil))
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
