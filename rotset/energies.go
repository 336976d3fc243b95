/*
 * energies.go, part of gopack.
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

package rotset

import (
	"fmt"

	pack "github.com/rmera/gopack"
	"github.com/rmera/gopack/ig"
	"gonum.org/v1/gonum/mat"
)

//ComputeEnergies fills g with the one-body energies of all the rotamers and, depending
//on the kind of graph, with the two-body energies (precomputed graphs) or the residue-type
//connectivity and backbone corrections (on-the-fly graphs). It panics if the graph is
//of an unknown kind. It does not modify R.
func (R *RotamerSets) ComputeEnergies(pose *pack.Pose, sf pack.ScoreFunction, ng pack.NeighborGraph, g ig.Graph) {
	R.mustHaveTask()
	kind := g.Kind()
	g.Initialize(R)
	R.computeOneBodyEnergies(pose, sf, ng, g)
	switch kind {
	case ig.KindPrecomputed:
		pdg, ok := g.(ig.PrecomputedGraph)
		if !ok {
			panic(fmt.Sprintf("%s: %T claims to be %s", pack.ErrUnknownGraph, g, kind))
		}
		R.PrecomputeTwoBodyEnergies(pose, sf, ng, pdg)
	case ig.KindOnTheFly:
		otf, ok := g.(ig.OnTheFlyGraph)
		if !ok {
			panic(fmt.Sprintf("%s: %T claims to be %s", pack.ErrUnknownGraph, g, kind))
		}
		R.PrepareOTFGraph(pose, sf, ng, otf)
		R.ComputeProlineCorrectEnergiesForOTFGraph(pose, sf, ng, otf)
		otf.SetPairEvaluator(R.NewPairEvaluator(pose, sf))
	default:
		panic(fmt.Sprintf("%s: %T (%s)", pack.ErrUnknownGraph, g, kind))
	}
	R.logf("energies computed, %d edges in the %s graph", g.NumEdges(), kind)
}

func (R *RotamerSets) computeOneBodyEnergies(pose *pack.Pose, sf pack.ScoreFunction, ng pack.NeighborGraph, g ig.Graph) {
	for m, set := range R.sets {
		g.AddToNodesOneBodyEnergy(m+1, set.ComputeOneBodyEnergies(pose, sf, R.task, ng))
	}
}

//pairTable returns a zero table for the molten residues ii and jj, or nil if one of them
//has no rotamers.
func (R *RotamerSets) pairTable(ii, jj int) *mat.Dense {
	ni, nj := R.nrotForMolten[ii-1], R.nrotForMolten[jj-1]
	if ni == 0 || nj == 0 {
		return nil
	}
	return mat.NewDense(nj, ni, nil)
}

//PrecomputeTwoBodyEnergies adds an edge to g for every pair of molten neighbors in ng, and
//for every pair of molten residues connected by a long-range term, and stores the energies
//between all their rotamers.
func (R *RotamerSets) PrecomputeTwoBodyEnergies(pose *pack.Pose, sf pack.ScoreFunction, ng pack.NeighborGraph, g ig.PrecomputedGraph) {
	finalize := R.opts.FinalizeEdges()
	for ii, iiresid := range R.moltenToResid {
		ii++
		for _, jjresid := range ng.UpperNeighbors(iiresid) {
			jj, ok := R.MoltenResForResid(jjresid)
			if !ok {
				continue
			}
			g.AddEdge(ii, jj)
			table := R.pairTable(ii, jj)
			if table == nil {
				continue
			}
			sf.EvaluateRotamerPairEnergies(pose, R.sets[ii-1], R.sets[jj-1], table)
			g.AddToTwoBodyEnergiesForEdge(ii, jj, table)
			if finalize && !sf.AnyLRResiduePairEnergy(pose, iiresid, jjresid) {
				g.DeclareEdgeEnergiesFinal(ii, jj)
			}
		}
	}
	var lrEdges []ig.EdgeKey
	for _, lr := range sf.LongRangeMethods() {
		c := lr.Container(pose)
		if c == nil || c.Empty() {
			continue
		}
		for ii, iiresid := range R.moltenToResid {
			ii++
			for _, jjresid := range c.UpperNeighbors(iiresid) {
				jj, ok := R.MoltenResForResid(jjresid)
				if !ok {
					continue
				}
				if !g.EdgeExists(ii, jj) {
					g.AddEdge(ii, jj)
				}
				table := R.pairTable(ii, jj)
				if table == nil {
					continue
				}
				lr.EvaluateRotamerPairEnergies(pose, sf, R.sets[ii-1], R.sets[jj-1], table)
				g.AddToTwoBodyEnergiesForEdge(ii, jj, table)
				lrEdges = append(lrEdges, ig.EdgeKey{First: ii, Second: jj})
			}
		}
	}
	//several long-range terms can write to the same edge.
	if finalize {
		for _, k := range lrEdges {
			g.DeclareEdgeEnergiesFinal(k.First, k.Second)
		}
	}
}
