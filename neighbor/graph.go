/*
 * graph.go, part of gopack.
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

//Package neighbor implements the packer neighbor graph: an undirected graph over the
//residues of a pose, with an edge between every pair of residues that are close enough
//to interact. It is built on gonum's simple.UndirectedGraph, and node IDs are the
//(1-based) residue indexes.
package neighbor

import (
	"fmt"
	"sort"

	pack "github.com/rmera/gopack"
	v3 "github.com/rmera/gopack/v3"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

//Graph implements pack.NeighborGraph
type Graph struct {
	g *simple.UndirectedGraph
	n int
}

//New returns a graph with n nodes and no edges.
func New(n int) *Graph {
	G := &Graph{g: simple.NewUndirectedGraph(), n: n}
	for i := 1; i <= n; i++ {
		G.g.AddNode(simple.Node(i))
	}
	return G
}

func (G *Graph) check(i int) {
	if i < 1 || i > G.n {
		panic(fmt.Sprintf("%s: %d (total %d)", pack.ErrResidOutOfRange, i, G.n))
	}
}

//AddEdge connects the residues i and j. Adding an existing edge does nothing.
//Self-edges are not allowed.
func (G *Graph) AddEdge(i, j int) {
	G.check(i)
	G.check(j)
	if i == j {
		panic(fmt.Sprintf("gopack/neighbor: self-edge requested for residue %d", i))
	}
	G.g.SetEdge(G.g.NewEdge(simple.Node(i), simple.Node(j)))
}

//HasEdge returns true if i and j are neighbors.
func (G *Graph) HasEdge(i, j int) bool {
	return G.g.HasEdgeBetween(int64(i), int64(j))
}

func (G *Graph) NumNodes() int {
	return G.n
}

//NumEdges returns the number of edges in the graph
func (G *Graph) NumEdges() int {
	return G.g.Edges().Len()
}

//Neighbors returns, in ascending order, all the neighbors of resid.
func (G *Graph) Neighbors(resid int) []int {
	G.check(resid)
	nodes := graph.NodesOf(G.g.From(int64(resid)))
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	sort.Ints(ret)
	return ret
}

//UpperNeighbors returns, in ascending order, the neighbors of resid with a larger index.
func (G *Graph) UpperNeighbors(resid int) []int {
	all := G.Neighbors(resid)
	i := sort.SearchInts(all, resid+1)
	return all[i:]
}

//Gonum returns the underlying gonum graph, so gonum's algorithms can be used on it.
//It should not be modified.
func (G *Graph) Gonum() graph.Undirected {
	return G.g
}

//Build returns the neighbor graph of pose: residues i and j are neighbors if the distance
//between their neighbor atoms is not larger than reach plus both neighbor radii.
//reach is normally the maximum atomic interaction distance of the score function.
func Build(pose *pack.Pose, reach float64) *Graph {
	n := pose.TotalResidue()
	G := New(n)
	for i := 1; i <= n; i++ {
		ri := pose.Residue(i)
		for j := i + 1; j <= n; j++ {
			rj := pose.Residue(j)
			cut := reach + ri.NbrRadius + rj.NbrRadius
			if v3.DistanceSquared(ri.Coords, ri.NbrAtom, rj.Coords, rj.NbrAtom) <= cut*cut {
				G.AddEdge(i, j)
			}
		}
	}
	return G
}
