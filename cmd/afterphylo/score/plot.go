// Copyright © 2026 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package score

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// plotScores saves a histogram
// of the support values of a tree
// as a PNG file.
func plotScores(name string, sp []float64) error {
	p := plot.New()
	p.X.Label.Text = "support"
	p.Y.Label.Text = "nodes"

	vals := make(plotter.Values, len(sp))
	copy(vals, sp)
	h, err := plotter.NewHist(vals, numBins)
	if err != nil {
		return err
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}
