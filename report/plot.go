/*
 * plot.go, part of gopack.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package report

import (
	"fmt"

	pack "github.com/rmera/gopack"
	"github.com/rmera/gopack/ig"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func energyPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"
	p.Add(plotter.NewGrid())
	return p
}

//PlotEnergies saves a histogram of data with the given number of bins to filename. The format
//is taken from the extension of filename (png, svg, pdf, eps...).
func PlotEnergies(data []float64, bins int, title, filename string) error {
	if len(data) == 0 {
		return pack.NewError("No energies to plot", filename, "PlotEnergies")
	}
	p := energyPlot(title, "Energy")
	h, err := plotter.NewHist(plotter.Values(data), bins)
	if err != nil {
		return pack.NewError(fmt.Sprintf("Can't build histogram: %s", err.Error()), filename, "PlotEnergies")
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return pack.NewError(err.Error(), filename, "PlotEnergies")
	}
	return nil
}

//PlotOneBody saves a histogram of the one-body energies of g to filename.
func PlotOneBody(g ig.Graph, bins int, filename string) error {
	err := PlotEnergies(OneBodyEnergies(g), bins, fmt.Sprintf("One-body energies (%s graph)", g.Kind()), filename)
	return pack.ErrDecorate(err, "PlotOneBody")
}
