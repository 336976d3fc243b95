/*
 * pdgraph.go, part of gopack.
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

	"gonum.org/v1/gonum/mat"
)

type pdEdge struct {
	energies *mat.Dense //rows: states of Second, cols: states of First.
	final    bool
}

//PDGraph is a PrecomputedGraph that keeps the full table of energies for each edge.
type PDGraph struct {
	nodes
	edges map[EdgeKey]*pdEdge
}

//NewPDGraph returns an empty precomputed graph. Initialize needs to be called before use.
func NewPDGraph() *PDGraph {
	return &PDGraph{edges: make(map[EdgeKey]*pdEdge)}
}

func (G *PDGraph) Kind() Kind { return KindPrecomputed }

func (G *PDGraph) Initialize(src Source) {
	G.nodes.init(src)
	G.edges = make(map[EdgeKey]*pdEdge)
}

//AddEdge adds an edge with all energies set to zero. Adding an existing edge does nothing.
func (G *PDGraph) AddEdge(i, j int) {
	G.check(i)
	G.check(j)
	k, _ := Key(i, j)
	if _, ok := G.edges[k]; ok {
		return
	}
	e := new(pdEdge)
	//gonum does not allow empty matrices, so edges to nodes without states keep no table.
	if G.states[k.Second-1] > 0 && G.states[k.First-1] > 0 {
		e.energies = mat.NewDense(G.states[k.Second-1], G.states[k.First-1], nil)
	}
	G.edges[k] = e
}

func (G *PDGraph) EdgeExists(i, j int) bool {
	k, _ := Key(i, j)
	_, ok := G.edges[k]
	return ok
}

func (G *PDGraph) NumEdges() int {
	return len(G.edges)
}

func (G *PDGraph) Edges() []EdgeKey {
	return sortedKeys(G.edges)
}

func (G *PDGraph) edge(i, j int) (*pdEdge, bool) {
	k, swapped := Key(i, j)
	e, ok := G.edges[k]
	if !ok {
		panic(fmt.Sprintf("%s: %d-%d", ErrNoEdge, i, j))
	}
	return e, swapped
}

//AddToTwoBodyEnergiesForEdge adds table, with NumStates(j) rows and NumStates(i) columns,
//to the energies of the edge. It panics if the edge does not exist or was declared final.
func (G *PDGraph) AddToTwoBodyEnergiesForEdge(i, j int, table *mat.Dense) {
	e, swapped := G.edge(i, j)
	if e.final {
		panic(ErrEdgeFinal)
	}
	if e.energies == nil {
		panic(fmt.Sprintf("%s: edge %d-%d has a node without states", ErrShape, i, j))
	}
	r, c := table.Dims()
	if swapped {
		r, c = c, r
	}
	er, ec := e.energies.Dims()
	if r != er || c != ec {
		panic(fmt.Sprintf("%s: %dx%d, want %dx%d", ErrShape, r, c, er, ec))
	}
	if swapped {
		e.energies.Add(e.energies, table.T())
		return
	}
	e.energies.Add(e.energies, table)
}

//DeclareEdgeEnergiesFinal marks the edge as final. Further additions to it panic.
func (G *PDGraph) DeclareEdgeEnergiesFinal(i, j int) {
	e, _ := G.edge(i, j)
	e.final = true
}

//EdgeEnergiesFinal returns true if the energies of the edge were declared final.
func (G *PDGraph) EdgeEnergiesFinal(i, j int) bool {
	e, _ := G.edge(i, j)
	return e.final
}

func (G *PDGraph) TwoBodyEnergy(i, si, j, sj int) float64 {
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
	return e.energies.At(sj-1, si-1)
}

//EdgeEnergies returns a copy of the table of the edge, with NumStates(j) rows
//and NumStates(i) columns, or nil if one of the nodes has no states.
func (G *PDGraph) EdgeEnergies(i, j int) *mat.Dense {
	e, swapped := G.edge(i, j)
	if e.energies == nil {
		return nil
	}
	ret := mat.DenseCopyOf(e.energies)
	if swapped {
		return mat.DenseCopyOf(ret.T())
	}
	return ret
}
