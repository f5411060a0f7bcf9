// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package transform implements a command to apply
// one or more transformations
// to phylogenetic tree files.
package transform

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gamcil/AfterPhylo/tipname"
	"github.com/gamcil/AfterPhylo/tree"
	"github.com/js-arias/command"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `transform [--format <format>]
	[--annotate <name-file>] [--replace]
	[--confonly] [--collapse <value>] [--average]
	[--scale <factor>] [--simplify]
	[--topology] [--unlabeled]
	<tree-file>...`,
	Short: "apply transformations to tree files",
	Long: `
Command transform reads one or more tree files, in Newick or Nexus format,
applies the indicated transformations, and writes each result to a new file.
For an input file called 'my-tree.nex', the output file will be called
'my-tree.out.nex'. To learn more about the accepted file formats, consult
'afterphylo help tree-formats'.

One or more tree files must be given as arguments of the command. A file that
cannot be parsed will be reported as a warning and skipped, without stopping
the processing of the remaining files.

Any combination of transformations can be requested; they are applied in a
fixed order, no matter the order of the flags.

The flag --confonly replaces the clade credibility annotations, as written by
MrBayes or BEAST, with plain numeric support labels. The posterior
probabilities of a BEAST tree are scaled as percentages.

If the flag --collapse is set, with a support value, every internal node with
a support below the given value will be collapsed into its parent node. In a
tree with branch lengths, the length of a collapsed branch is added to the
branches of its descendants, so the length of the path from any terminal to
the root is preserved. The support labels must be readable as numbers before
collapsing; in a tree with credibility annotations, set also the flag
--confonly.

The flag --scale, with a factor, multiplies all branch lengths by the factor.
The factor must be distinct from zero.

If the flag --simplify is set, branch lengths will be written with six digits
after the decimal point.

If the flag --topology is set, all branch lengths will be removed. If the
flag --unlabeled is set, all annotations, as well as the support labels, will
be removed.

The flag --annotate, with a tab-delimited file of tip identifiers and taxon
names, renames the terminals of the tree. By default, the name is appended to
the identifier; if the flag --replace is set, the name takes the place of the
identifier. To learn more about the name file, consult 'afterphylo help
name-files'.

By default, each tree is written in the format in which it was read. The flag
--format, with the name of a format ("newick" or "nexus"), sets the output
format of all the trees. When a Nexus tree is written as Newick, all
bracketed annotations are removed.

If the flag --average is set, no output file will be written; instead, the
number of supported nodes, the sum of the supports, and the average support
of each tree, after the transformations, will be printed in the standard
output.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFlag string
var nameFile string
var replace bool
var confOnly bool
var average bool
var simplify bool
var topology bool
var unlabeled bool
var scaleFactor float64
var minSupport float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&formatFlag, "format", "", "")
	c.Flags().StringVar(&nameFile, "annotate", "", "")
	c.Flags().BoolVar(&replace, "replace", false, "")
	c.Flags().BoolVar(&confOnly, "confonly", false, "")
	c.Flags().BoolVar(&average, "average", false, "")
	c.Flags().BoolVar(&simplify, "simplify", false, "")
	c.Flags().BoolVar(&topology, "topology", false, "")
	c.Flags().BoolVar(&unlabeled, "unlabeled", false, "")
	c.Flags().Float64Var(&scaleFactor, "scale", 1, "")
	c.Flags().Float64Var(&minSupport, "collapse", 0, "")
}

// An options value holds the set of transformations
// to be applied to each tree.
type options struct {
	format    tree.Format
	convert   bool
	names     map[string]string
	replace   bool
	confOnly  bool
	average   bool
	simplify  bool
	topology  bool
	unlabeled bool
	scale     float64
	min       float64
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting one or more tree files")
	}

	opt, err := makeOptions(c)
	if err != nil {
		return err
	}

	for _, a := range args {
		f, err := os.Open(a)
		if err != nil {
			return err
		}
		t, err := tree.Read(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(c.Stderr(), "WARNING: on file %q: %v: skipped\n", a, err)
			continue
		}

		if err := processTree(c, t, a, opt); err != nil {
			fmt.Fprintf(c.Stderr(), "WARNING: on file %q: %v: skipped\n", a, err)
			continue
		}
	}
	return nil
}

func makeOptions(c *command.Command) (*options, error) {
	opt := &options{
		replace:   replace,
		confOnly:  confOnly,
		average:   average,
		simplify:  simplify,
		topology:  topology,
		unlabeled: unlabeled,
		scale:     scaleFactor,
		min:       minSupport,
	}

	if formatFlag != "" {
		f, err := tree.ParseFormat(formatFlag)
		if err != nil {
			return nil, c.UsageError(fmt.Sprintf("invalid --format value %q", formatFlag))
		}
		opt.format = f
		opt.convert = true
	}
	if scaleFactor == 0 || math.IsNaN(scaleFactor) || math.IsInf(scaleFactor, 0) {
		return nil, c.UsageError(fmt.Sprintf("invalid --scale value %v", scaleFactor))
	}

	if nameFile != "" {
		tb, err := readNames(nameFile)
		if err != nil {
			return nil, err
		}
		for _, id := range tb.Duplicates() {
			fmt.Fprintf(c.Stderr(), "WARNING: name file %q: repeated identifier %q\n", nameFile, id)
		}
		opt.names = tb.Names()
	}
	return opt, nil
}

func readNames(name string) (*tipname.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tb, err := tipname.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return tb, nil
}

// processTree applies the transformations
// in a fixed order:
// credibility annotations are read as supports,
// low support nodes are collapsed,
// branch lengths are scaled,
// formatted,
// or removed,
// labels are removed,
// terminals are renamed,
// and the format of the tree is changed.
func processTree(c *command.Command, t *tree.Tree, name string, opt *options) error {
	if opt.confOnly {
		t.ExtractConfidence()
	}
	if opt.min > 0 {
		if err := t.Collapse(opt.min); err != nil {
			return err
		}
	}
	if opt.scale != 1 {
		if err := t.Scale(opt.scale); err != nil {
			return err
		}
	}
	if opt.simplify {
		t.SetPrecision(6)
	}
	if opt.topology {
		t.DropLengths()
	}
	if opt.unlabeled {
		t.DropLabels()
	}
	if opt.names != nil {
		t.Annotate(opt.names, opt.replace)
	}
	if opt.convert {
		t.Convert(opt.format)
	}

	if opt.average {
		printAverage(c.Stdout(), name, t)
		return nil
	}
	return writeTree(t, outName(name))
}

// printAverage prints the number of internal nodes
// with a numeric support,
// the sum of the supports,
// and the average support of a tree.
func printAverage(w io.Writer, name string, t *tree.Tree) {
	sp := t.Supports()
	if len(sp) == 0 {
		fmt.Fprintf(w, "%s: no scored nodes\n", name)
		return
	}
	fmt.Fprintf(w, "%s: %d scored nodes, sum %.3f, mean %.3f\n", name, len(sp), floats.Sum(sp), stat.Mean(sp, nil))
}

// outName returns the name of the output file,
// adding "out" before the extension
// of the input file name.
func outName(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name + ".out"
	}
	return strings.TrimSuffix(name, ext) + ".out" + ext
}

func writeTree(t *tree.Tree, name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := t.Write(f); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
