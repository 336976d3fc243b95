/*
 * interfaces.go, part of gopack.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package pack

import "gonum.org/v1/gonum/mat"

//All residue indexes (resids) used in these interfaces go from 1 to TotalResidue(),
//as in the sequence numbering of the structure.

// Task tells the packer which residues are flexible and how they are linked.
type Task interface {

	//PackResidue returns true if the residue resid is to be repacked or designed.
	PackResidue(resid int) bool

	//NumToBePacked returns the number of residues for which PackResidue is true.
	NumToBePacked() int

	//TotalResidue returns the number of residues in the structure.
	TotalResidue() int

	//AllowedAAs returns the amino acids that may be placed at resid. A nil
	//slice means "only the residue type currently present".
	AllowedAAs(resid int) []AA

	//RotamerLinksExist returns true if some residues must choose the same rotamer.
	RotamerLinksExist() bool

	//Equiv returns the residues that must have the same rotamer as resid, resid included.
	Equiv(resid int) []int
}

// NeighborGraph is an undirected graph over the residues of a structure. An edge means
// that the two residues are close enough to possibly interact.
type NeighborGraph interface {
	NumNodes() int

	//UpperNeighbors returns, in ascending order, the neighbors of resid with an index larger than resid.
	UpperNeighbors(resid int) []int

	//Neighbors returns, in ascending order, all the neighbors of resid.
	Neighbors(resid int) []int
}

// Rotamers is the read-only view of a set of candidate conformations for one residue
// that a score function needs.
type Rotamers interface {
	//Resid returns the residue to which the rotamers belong.
	Resid() int

	NumRotamers() int

	//Rotamer returns the ith rotamer (1-based). Should panic if out of range.
	Rotamer(i int) *Residue
}

// ScoreFunction evaluates the energies the packer needs.
type ScoreFunction interface {

	//OneBodyEnergy returns the weighted energy of the residue by itself (intra-residue and reference terms).
	OneBodyEnergy(pose *Pose, res *Residue) float64

	//PairEnergy returns the weighted short-range energy between two residues.
	PairEnergy(pose *Pose, res1, res2 *Residue) float64

	//BackboneBackboneEnergy returns the weighted energy between the backbones of both residues.
	BackboneBackboneEnergy(pose *Pose, res1, res2 *Residue) float64

	//SidechainBackboneEnergy returns the weighted energy between the side chain of sc and the backbone of bb.
	SidechainBackboneEnergy(pose *Pose, sc, bb *Residue) float64

	//SidechainSidechainEnergy returns the weighted energy between the side chains of both residues.
	SidechainSidechainEnergy(pose *Pose, res1, res2 *Residue) float64

	//EvaluateRotamerPairEnergies adds, to table, the short-range energies between every pair
	//of rotamers in set1 and set2. table has as many rows as set2 has rotamers, and as many columns
	//as set1 has rotamers.
	EvaluateRotamerPairEnergies(pose *Pose, set1, set2 Rotamers, table *mat.Dense)

	//AnyLRResiduePairEnergy returns true if any long-range term is active between the residues.
	AnyLRResiduePairEnergy(pose *Pose, resid1, resid2 int) bool

	//MaxAtomicInteractionDistance is the largest distance at which two atoms can interact.
	MaxAtomicInteractionDistance() float64

	//LongRangeMethods returns the long-range two-body terms of the score function.
	LongRangeMethods() []LongRangeMethod
}

// RotamerPreparer is an optional interface for score functions that need to
// precompute data on the rotamers before packing.
type RotamerPreparer interface {
	PrepareRotamersForPacking(pose *Pose, set Rotamers)
}

// LongRangeMethod is a two-body term whose interacting pairs are not restricted to
// the neighbor graph.
type LongRangeMethod interface {
	Name() string

	//Container returns the pairs of residues this term connects for pose. It can return nil.
	Container(pose *Pose) LRContainer

	//EvaluateRotamerPairEnergies adds the energies of this term to table, with the same
	//layout as ScoreFunction.EvaluateRotamerPairEnergies.
	EvaluateRotamerPairEnergies(pose *Pose, sf ScoreFunction, set1, set2 Rotamers, table *mat.Dense)

	//EvaluateRotamerBackgroundEnergies adds the energies between every rotamer of set and the
	//fixed residue bg to energies.
	EvaluateRotamerBackgroundEnergies(pose *Pose, sf ScoreFunction, set Rotamers, bg *Residue, energies []float64)
}

// LRContainer holds the residue pairs connected by a long-range term.
type LRContainer interface {
	Empty() bool

	//UpperNeighbors returns, in ascending order, the partners of resid with a larger index.
	UpperNeighbors(resid int) []int

	//Neighbors returns, in ascending order, all the partners of resid.
	Neighbors(resid int) []int
}

//Errors

// Decorator is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Decorator interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}
