// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// AfterPhylo is a tool to post-process phylogenetic trees.
package main

import (
	"github.com/gamcil/AfterPhylo/cmd/afterphylo/export"
	"github.com/gamcil/AfterPhylo/cmd/afterphylo/score"
	"github.com/gamcil/AfterPhylo/cmd/afterphylo/terms"
	"github.com/gamcil/AfterPhylo/cmd/afterphylo/transform"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "afterphylo <command> [<argument>...]",
	Short: "a tool to post-process phylogenetic trees",
}

func init() {
	app.Add(export.Command)
	app.Add(score.Command)
	app.Add(terms.Command)
	app.Add(transform.Command)
}

func main() {
	app.Main()
}
