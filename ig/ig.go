/*
 * ig.go, part of gopack.
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

/*
Package ig implements the interaction graphs filled by the packer and read by a
combinatorial optimizer. Nodes are the molten residues (1..M) and the states of a node
are its rotamers (1..n). Edges join pairs of molten residues that can interact.

Two backends are provided. PDGraph stores, for every edge, a dense table with the
energies of every pair of rotamers. OTFGraph stores, for every edge, which pairs of
residue types can interact at all, and computes the actual rotamer pair energies only
when asked, through a PairEvaluator.

The packer resolves the backend once, through Graph.Kind, and then uses the
capability interface for that kind (PrecomputedGraph or OnTheFlyGraph).
*/
package ig

import (
	"sort"

	pack "github.com/rmera/gopack"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Kind identifies the backend of an interaction graph.
type Kind int

const (
	KindUnknown Kind = iota
	KindPrecomputed
	KindOnTheFly
)

func (k Kind) String() string {
	switch k {
	case KindPrecomputed:
		return "precomputed"
	case KindOnTheFly:
		return "on-the-fly"
	default:
		return "unknown"
	}
}

const (
	ErrEdgeFinal       = pack.PanicMsg("gopack/ig: energies of the edge were declared final")
	ErrNoEdge          = pack.PanicMsg("gopack/ig: the edge does not exist")
	ErrNodeOutOfRange  = pack.PanicMsg("gopack/ig: node index out of range")
	ErrStateOutOfRange = pack.PanicMsg("gopack/ig: state index out of range")
	ErrSelfEdge        = pack.PanicMsg("gopack/ig: edges between a node and itself are not allowed")
	ErrShape           = pack.PanicMsg("gopack/ig: the energy table does not match the states of the edge")
	ErrNoEvaluator     = pack.PanicMsg("gopack/ig: on-the-fly graph has no pair evaluator")
)

//Source is what a graph needs to know to set up its nodes. It is implemented
//by rotset.RotamerSets.
type Source interface {
	NMoltenRes() int
	NRotamersForMoltenRes(m int) int

	//ResidueTypeBegins returns, in ascending order, the first rotamer of each
	//residue-type group of the molten residue m.
	ResidueTypeBegins(m int) []int

	RotamerForMoltenRes(m, rot int) *pack.Residue
}

//Graph is the part of an interaction graph that does not depend on the backend.
type Graph interface {
	Kind() Kind

	//Initialize discards any previous content and creates one node per molten residue of src.
	Initialize(src Source)

	NumNodes() int
	NumStates(node int) int

	//AddToNodesOneBodyEnergy adds e[s-1] to the one-body energy of each state s of node.
	AddToNodesOneBodyEnergy(node int, e []float64)
	OneBodyEnergy(node, state int) float64

	AddEdge(i, j int)
	EdgeExists(i, j int) bool
	NumEdges() int

	//Edges returns all the edges, sorted.
	Edges() []EdgeKey

	//TwoBodyEnergy returns the energy between state si of node i and state sj of node j.
	//It is 0 if there is no edge between i and j.
	TwoBodyEnergy(i, si, j, sj int) float64
}

//PrecomputedGraph is a Graph that stores dense two-body tables.
type PrecomputedGraph interface {
	Graph

	//AddToTwoBodyEnergiesForEdge adds table to the energies of the edge (i,j). table must have
	//NumStates(j) rows and NumStates(i) columns.
	AddToTwoBodyEnergiesForEdge(i, j int, table *mat.Dense)

	//DeclareEdgeEnergiesFinal tells the graph that the energies of the edge will not change anymore.
	DeclareEdgeEnergiesFinal(i, j int)
}

//OnTheFlyGraph is a Graph that stores residue-type connectivity and computes the energies
//when needed.
type OnTheFlyGraph interface {
	Graph

	DistinguishBackboneAndSidechainForNode(node int, distinguish bool)
	DistinguishesBackboneAndSidechain(node int) bool
	NoteLongRangeInteractionsExistForEdge(i, j int)
	NoteShortRangeInteractionsExistForEdge(i, j int)

	//SetSparseAAInfoForEdge sets which residue-type groups of i and j can interact.
	//c has as many rows as j has groups, and as many columns as i has groups.
	SetSparseAAInfoForEdge(i, j int, c *Connectivity)
	AddToOneBodyEnergyForNodeState(node, state int, e float64)

	//SetProCorrectionValuesForEdge stores the backbone corrections for state of node (which
	//must be i or j), computed against glycine-like and proline backbones of the other node.
	SetProCorrectionValuesForEdge(i, j, node, state int, bbNonPro, bbPro, scNonPro, scPro float64)

	SetPairEvaluator(e PairEvaluator)
}

//PairEvaluator computes rotamer pair energies for an OnTheFlyGraph.
type PairEvaluator interface {
	//ShortRangeEnergy returns the short-range energy between state si of node i and state sj of node j.
	//If scOnly is true, only the side chain-side chain part is returned.
	ShortRangeEnergy(i, si, j, sj int, scOnly bool) float64

	//LongRangeEnergy returns the long-range energy between the two states.
	LongRangeEnergy(i, si, j, sj int) float64
}

//EdgeKey identifies an edge. First is always smaller than Second.
type EdgeKey struct {
	First, Second int
}

//Key returns the EdgeKey for the nodes i and j, and true if i and j were swapped.
func Key(i, j int) (EdgeKey, bool) {
	if i == j {
		panic(ErrSelfEdge)
	}
	if i < j {
		return EdgeKey{i, j}, false
	}
	return EdgeKey{j, i}, true
}

func sortedKeys[T any](m map[EdgeKey]T) []EdgeKey {
	ret := make([]EdgeKey, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(a, b int) bool {
		if ret[a].First != ret[b].First {
			return ret[a].First < ret[b].First
		}
		return ret[a].Second < ret[b].Second
	})
	return ret
}

//AssignmentEnergy returns the total energy of the graph when each node i is in
//state states[i-1].
func AssignmentEnergy(g Graph, states []int) float64 {
	if len(states) != g.NumNodes() {
		panic(ErrNodeOutOfRange)
	}
	var e float64
	for i, s := range states {
		e += g.OneBodyEnergy(i+1, s)
	}
	for _, k := range g.Edges() {
		e += g.TwoBodyEnergy(k.First, states[k.First-1], k.Second, states[k.Second-1])
	}
	return e
}

//nodes keeps the one-body part, shared by both backends.
type nodes struct {
	states  []int
	onebody [][]float64
}

func (N *nodes) init(src Source) {
	n := src.NMoltenRes()
	N.states = make([]int, n)
	N.onebody = make([][]float64, n)
	for i := 0; i < n; i++ {
		N.states[i] = src.NRotamersForMoltenRes(i + 1)
		N.onebody[i] = make([]float64, N.states[i])
	}
}

func (N *nodes) check(node int) {
	if node < 1 || node > len(N.states) {
		panic(ErrNodeOutOfRange)
	}
}

func (N *nodes) checkState(node, state int) {
	N.check(node)
	if state < 1 || state > N.states[node-1] {
		panic(ErrStateOutOfRange)
	}
}

func (N *nodes) NumNodes() int {
	return len(N.states)
}

func (N *nodes) NumStates(node int) int {
	N.check(node)
	return N.states[node-1]
}

func (N *nodes) AddToNodesOneBodyEnergy(node int, e []float64) {
	N.check(node)
	if len(e) != N.states[node-1] {
		panic(ErrShape)
	}
	floats.Add(N.onebody[node-1], e)
}

func (N *nodes) OneBodyEnergy(node, state int) float64 {
	N.checkState(node, state)
	return N.onebody[node-1][state-1]
}

func (N *nodes) addToState(node, state int, e float64) {
	N.checkState(node, state)
	N.onebody[node-1][state-1] += e
}
