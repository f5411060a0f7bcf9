// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(nameFilesGuide)
	app.Add(treeFormatsGuide)
}

var treeFormatsGuide = &command.Command{
	Usage: "tree-formats",
	Short: "about tree file formats",
	Long: `
AfterPhylo reads phylogenetic trees in two text formats: Newick and Nexus.
The format of a file is detected from its first significant line: a line
that starts with an opening parenthesis begins a Newick tree; the "#NEXUS"
header begins a Nexus file. Blank lines are ignored, and any other line
starting with '#' is taken as a comment. Files in any other format will be
rejected. If a file contains several trees, only the first tree will be
used.

A Newick tree is a tree in parenthetical notation, maybe split across several
lines, and usually ended with a semicolon:

	(eutheria,(cetacea,(monotremata,marsupialia)93:3.1):6.5);

Each terminal must have a name. Any node can be followed by a bracketed
annotation (for example, the clade credibility blocks written by MrBayes or
BEAST), and by a colon with the length of the branch that connects the node
with its parent. Internal nodes can also have a label, which usually stores
the support value of the group. Names can be quoted with single quotation
marks, and unquoted names can contain blank spaces.

A Nexus file is a collection of commands organized in blocks. AfterPhylo only
reads the TREES block, which contains one or more tree statements, each one
with a tree in parenthetical notation:

	#NEXUS
	BEGIN TREES;
		TRANSLATE
			1	'Homo sapiens',
			2	'Pan troglodytes',
			3	Gorilla;
		TREE 1 = [&U] (1:0.1,(2:0.2,3:0.3)90:0.4);
	END;

If the block has a translation table, the identifiers in the tree will be
replaced by the taxon names of the table.

Output files are written in the format in which the input file was read,
except if a format conversion is requested. In a Nexus output, only a TREES
block with a single tree statement is written; any other block of the input
file is discarded.
	`,
}

var nameFilesGuide = &command.Command{
	Usage: "name-files",
	Short: "about taxon name files",
	Long: `
Several sequence alignment pipelines use short identifiers for the terminals,
as many alignment and inference programs truncate or reject long taxon names.
A name file relates those identifiers with the full taxon names, so the tips
of a final tree can be renamed with the command 'afterphylo transform
--annotate'.

A name file is a tab-delimited file in which the first column is the tip
identifier and the second column is the taxon name. Any additional column
will be ignored. Lines starting with '#' are taken as comments. Here is an
example file:

	# tip identifiers and taxon names
	K12	Escherichia coli K-12
	O157	Escherichia coli O157:H7
	DH10B	Escherichia coli DH10B

A row without a name column uses the identifier as the taxon name. If an
identifier is defined multiple times, the last read name will be used, and a
warning will be printed for each repeated definition.
	`,
}
