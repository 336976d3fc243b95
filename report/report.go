/*
 * report.go, part of gopack.
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

//Package report summarizes filled interaction graphs, for checking a packing run before
//handing the graph to an optimizer.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	pack "github.com/rmera/gopack"
	"github.com/rmera/gopack/ig"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Stats are simple statistics over a set of energies.
type Stats struct {
	N    int     `json:"n"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

//NewStats returns the statistics of data. All values are 0 for empty data,
//and Std is 0 for a single value.
func NewStats(data []float64) Stats {
	var S Stats
	S.N = len(data)
	if S.N == 0 {
		return S
	}
	S.Min = floats.Min(data)
	S.Max = floats.Max(data)
	if S.N == 1 {
		S.Mean = data[0]
		return S
	}
	S.Mean, S.Std = stat.MeanStdDev(data, nil)
	return S
}

func (S Stats) String() string {
	return fmt.Sprintf("n=%d mean=%.3f std=%.3f min=%.3f max=%.3f", S.N, S.Mean, S.Std, S.Min, S.Max)
}

//Summary describes an interaction graph.
type Summary struct {
	Kind      string `json:"kind"`
	Nodes     int    `json:"nodes"`
	Edges     int    `json:"edges"`
	States    int    `json:"states"` //total over all nodes
	MaxStates int    `json:"max_states"`
	OneBody   Stats  `json:"one_body"`
	TwoBody   Stats  `json:"two_body"`
	//histogram of the one-body energies, with SummaryBins bins.
	OneBodyDividers []float64 `json:"one_body_dividers"`
	OneBodyCounts   []float64 `json:"one_body_counts"`
}

//SummaryBins is the number of bins of the one-body histogram in a Summary.
const SummaryBins = 10

//OneBodyEnergies returns the one-body energies of all the states of g, node after node.
func OneBodyEnergies(g ig.Graph) []float64 {
	var ret []float64
	for n := 1; n <= g.NumNodes(); n++ {
		for s := 1; s <= g.NumStates(n); s++ {
			ret = append(ret, g.OneBodyEnergy(n, s))
		}
	}
	return ret
}

//TwoBodyEnergies returns the energies of all pairs of states of all the edges of g.
//For an on-the-fly graph, this computes every pair energy.
func TwoBodyEnergies(g ig.Graph) []float64 {
	var ret []float64
	for _, k := range g.Edges() {
		for si := 1; si <= g.NumStates(k.First); si++ {
			for sj := 1; sj <= g.NumStates(k.Second); sj++ {
				ret = append(ret, g.TwoBodyEnergy(k.First, si, k.Second, sj))
			}
		}
	}
	return ret
}

//Summarize returns a summary of g.
func Summarize(g ig.Graph) *Summary {
	S := &Summary{Kind: g.Kind().String(), Nodes: g.NumNodes(), Edges: g.NumEdges()}
	for n := 1; n <= g.NumNodes(); n++ {
		ns := g.NumStates(n)
		S.States += ns
		if ns > S.MaxStates {
			S.MaxStates = ns
		}
	}
	one := OneBodyEnergies(g)
	S.OneBody = NewStats(one)
	H := NewHistogram(Dividers(one, SummaryBins), one)
	S.OneBodyDividers, S.OneBodyCounts = H.Dividers(), H.Counts()
	S.TwoBody = NewStats(TwoBodyEnergies(g))
	return S
}

func (S *Summary) String() string {
	lines := []string{
		fmt.Sprintf("%s graph: %d nodes, %d edges, %d states (max %d per node)", S.Kind, S.Nodes, S.Edges, S.States, S.MaxStates),
		"one-body: " + S.OneBody.String(),
		"two-body: " + S.TwoBody.String(),
		fmt.Sprintf("one-body histogram: %v", S.OneBodyCounts),
	}
	return strings.Join(lines, "\n")
}

//WriteJSON writes the summary to out as JSON.
func (S *Summary) WriteJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(S); err != nil {
		return pack.NewError(err.Error(), "", "WriteJSON")
	}
	return nil
}
