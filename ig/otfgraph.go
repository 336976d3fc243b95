/*
 * otfgraph.go, part of gopack.
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

package ig

import (
	"fmt"

	pack "github.com/rmera/gopack"
)

type otfNode struct {
	groupOf     []int //residue-type group (1-based) of each state
	ngroups     int
	proline     []bool
	distinguish bool
}

//proCorrection keeps, for each state of one node of an edge, its backbone energies
//against a glycine-like and a proline version of the other node.
type proCorrection struct {
	bbNonPro, bbPro, scNonPro, scPro []float64
}

func newProCorrection(n int) *proCorrection {
	return &proCorrection{
		bbNonPro: make([]float64, n),
		bbPro:    make([]float64, n),
		scNonPro: make([]float64, n),
		scPro:    make([]float64, n),
	}
}

//correction returns what needs to be added to the energy of state s, which
//already contains the glycine-like values, when the other node is a proline.
func (P *proCorrection) correction(s int) float64 {
	return (P.scPro[s-1] - P.scNonPro[s-1]) + 0.5*(P.bbPro[s-1]-P.bbNonPro[s-1])
}

type otfEdge struct {
	sparse     *Connectivity //nil means every pair of groups interacts
	shortRange bool
	longRange  bool
	pro        [2]*proCorrection //for First and Second
}

//OTFGraph is an OnTheFlyGraph. It stores, for each edge, which residue-type groups
//interact and the proline corrections, and computes the rotamer pair energies with
//its PairEvaluator when they are requested.
type OTFGraph struct {
	nodes
	otf   []otfNode
	edges map[EdgeKey]*otfEdge
	eval  PairEvaluator
}

//NewOTFGraph returns an empty on-the-fly graph. Initialize needs to be called before use.
func NewOTFGraph() *OTFGraph {
	return &OTFGraph{edges: make(map[EdgeKey]*otfEdge)}
}

func (G *OTFGraph) Kind() Kind { return KindOnTheFly }

func (G *OTFGraph) Initialize(src Source) {
	G.nodes.init(src)
	G.edges = make(map[EdgeKey]*otfEdge)
	G.otf = make([]otfNode, src.NMoltenRes())
	for m := 1; m <= src.NMoltenRes(); m++ {
		n := G.states[m-1]
		N := &G.otf[m-1]
		N.groupOf = make([]int, n)
		N.proline = make([]bool, n)
		begins := src.ResidueTypeBegins(m)
		N.ngroups = len(begins)
		g := 0
		for s := 1; s <= n; s++ {
			for g < len(begins) && begins[g] <= s {
				g++
			}
			N.groupOf[s-1] = g
			N.proline[s-1] = src.RotamerForMoltenRes(m, s).AA == pack.Pro
		}
	}
}

//NumResidueTypes returns the number of residue-type groups of node.
func (G *OTFGraph) NumResidueTypes(node int) int {
	G.check(node)
	return G.otf[node-1].ngroups
}

func (G *OTFGraph) AddEdge(i, j int) {
	G.check(i)
	G.check(j)
	k, _ := Key(i, j)
	if _, ok := G.edges[k]; ok {
		return
	}
	G.edges[k] = new(otfEdge)
}

func (G *OTFGraph) EdgeExists(i, j int) bool {
	k, _ := Key(i, j)
	_, ok := G.edges[k]
	return ok
}

func (G *OTFGraph) NumEdges() int {
	return len(G.edges)
}

func (G *OTFGraph) Edges() []EdgeKey {
	return sortedKeys(G.edges)
}

func (G *OTFGraph) edge(i, j int) (*otfEdge, bool) {
	k, swapped := Key(i, j)
	e, ok := G.edges[k]
	if !ok {
		panic(fmt.Sprintf("%s: %d-%d", ErrNoEdge, i, j))
	}
	return e, swapped
}

func (G *OTFGraph) DistinguishBackboneAndSidechainForNode(node int, distinguish bool) {
	G.check(node)
	G.otf[node-1].distinguish = distinguish
}

func (G *OTFGraph) DistinguishesBackboneAndSidechain(node int) bool {
	G.check(node)
	return G.otf[node-1].distinguish
}

func (G *OTFGraph) NoteLongRangeInteractionsExistForEdge(i, j int) {
	e, _ := G.edge(i, j)
	e.longRange = true
}

func (G *OTFGraph) NoteShortRangeInteractionsExistForEdge(i, j int) {
	e, _ := G.edge(i, j)
	e.shortRange = true
}

//LongRangeInteractionsExist returns true if long-range interactions were noted for the edge.
func (G *OTFGraph) LongRangeInteractionsExist(i, j int) bool {
	e, _ := G.edge(i, j)
	return e.longRange
}

//ShortRangeInteractionsExist returns true if short-range interactions were noted for the edge.
func (G *OTFGraph) ShortRangeInteractionsExist(i, j int) bool {
	e, _ := G.edge(i, j)
	return e.shortRange
}

//SetSparseAAInfoForEdge stores a copy of c, which has NumResidueTypes(j) rows and NumResidueTypes(i) columns.
func (G *OTFGraph) SetSparseAAInfoForEdge(i, j int, c *Connectivity) {
	e, swapped := G.edge(i, j)
	r, col := c.Dims()
	if r != G.otf[j-1].ngroups || col != G.otf[i-1].ngroups {
		panic(fmt.Sprintf("%s: connectivity is %dx%d, want %dx%d", ErrShape, r, col, G.otf[j-1].ngroups, G.otf[i-1].ngroups))
	}
	if !swapped {
		e.sparse = c.Clone()
		return
	}
	t := NewConnectivity(col, r)
	for a := 0; a < r; a++ {
		for b := 0; b < col; b++ {
			t.Set(b, a, c.At(a, b))
		}
	}
	e.sparse = t
}

//SparseAAInfo returns a copy of the connectivity of the edge, with NumResidueTypes(j) rows
//and NumResidueTypes(i) columns. The second value is false if no connectivity was set.
func (G *OTFGraph) SparseAAInfo(i, j int) (*Connectivity, bool) {
	e, swapped := G.edge(i, j)
	if e.sparse == nil {
		return nil, false
	}
	if !swapped {
		return e.sparse.Clone(), true
	}
	r, c := e.sparse.Dims()
	t := NewConnectivity(c, r)
	for a := 0; a < r; a++ {
		for b := 0; b < c; b++ {
			t.Set(b, a, e.sparse.At(a, b))
		}
	}
	return t, true
}

func (G *OTFGraph) AddToOneBodyEnergyForNodeState(node, state int, e float64) {
	G.addToState(node, state, e)
}

func (G *OTFGraph) SetProCorrectionValuesForEdge(i, j, node, state int, bbNonPro, bbPro, scNonPro, scPro float64) {
	e, _ := G.edge(i, j)
	k, _ := Key(i, j)
	side := 0
	switch node {
	case k.First:
	case k.Second:
		side = 1
	default:
		panic(fmt.Sprintf("gopack/ig: node %d is not part of the edge %d-%d", node, i, j))
	}
	G.checkState(node, state)
	if e.pro[side] == nil {
		e.pro[side] = newProCorrection(G.states[node-1])
	}
	P := e.pro[side]
	P.bbNonPro[state-1] = bbNonPro
	P.bbPro[state-1] = bbPro
	P.scNonPro[state-1] = scNonPro
	P.scPro[state-1] = scPro
}

func (G *OTFGraph) SetPairEvaluator(e PairEvaluator) {
	G.eval = e
}

//TwoBodyEnergy computes the energy between state si of i and state sj of j. If both nodes
//distinguish backbone and side chain, only the side chain-side chain energy is computed,
//plus the proline corrections, since the rest is already part of the one-body energies.
func (G *OTFGraph) TwoBodyEnergy(i, si, j, sj int) float64 {
	G.checkState(i, si)
	G.checkState(j, sj)
	k, swapped := Key(i, j)
	e, ok := G.edges[k]
	if !ok {
		return 0
	}
	if swapped {
		si, sj = sj, si
	}
	first, second := k.First, k.Second
	if (e.shortRange || e.longRange) && G.eval == nil {
		panic(ErrNoEvaluator)
	}
	var ret float64
	if e.shortRange {
		nf, ns := &G.otf[first-1], &G.otf[second-1]
		distinguish := nf.distinguish && ns.distinguish
		gf, gs := nf.groupOf[si-1], ns.groupOf[sj-1]
		if e.sparse == nil || e.sparse.At(gs-1, gf-1) {
			ret += G.eval.ShortRangeEnergy(first, si, second, sj, distinguish)
		}
		if distinguish {
			if P := e.pro[0]; P != nil && ns.proline[sj-1] {
				ret += P.correction(si)
			}
			if P := e.pro[1]; P != nil && nf.proline[si-1] {
				ret += P.correction(sj)
			}
		}
	}
	if e.longRange {
		ret += G.eval.LongRangeEnergy(first, si, second, sj)
	}
	return ret
}
