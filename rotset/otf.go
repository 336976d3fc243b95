/*
 * otf.go, part of gopack.
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
	pack "github.com/rmera/gopack"
	"github.com/rmera/gopack/ig"
	v3 "github.com/rmera/gopack/v3"
	"gonum.org/v1/gonum/mat"
)

//representative returns the first rotamer of the group of the set.
func representative(s RotamerSet, group int) *pack.Residue {
	return s.Rotamer(s.ResidueTypeBegin(group))
}

//PrepareOTFGraph marks the nodes where all the residue types are canonical amino acids as
//distinguishing backbone and side chain, and adds the edges of g, with their residue-type
//connectivity. Short-range edges come from ng, and only the pairs of residue types whose
//representative rotamers are within interaction distance are connected. Pairs of residues
//connected by a long-range term have all their residue types connected.
func (R *RotamerSets) PrepareOTFGraph(pose *pack.Pose, sf pack.ScoreFunction, ng pack.NeighborGraph, g ig.OnTheFlyGraph) {
	for m, set := range R.sets {
		canonical := true
		for grp := 1; grp <= set.NumResidueTypes(); grp++ {
			if !representative(set, grp).AA.Canonical() {
				canonical = false
			}
		}
		if canonical {
			g.DistinguishBackboneAndSidechainForNode(m+1, true)
		}
	}
	reach := sf.MaxAtomicInteractionDistance()
	for ii, iiresid := range R.moltenToResid {
		ii++
		iiset := R.sets[ii-1]
		for _, jjresid := range ng.UpperNeighbors(iiresid) {
			jj, ok := R.MoltenResForResid(jjresid)
			if !ok {
				continue
			}
			jjset := R.sets[jj-1]
			conn := ig.NewConnectivity(jjset.NumResidueTypes(), iiset.NumResidueTypes())
			anyNeighbors := false
			longRange := sf.AnyLRResiduePairEnergy(pose, iiresid, jjresid)
			if longRange {
				anyNeighbors = true
				conn.Fill(true)
			} else {
				for kk := 1; kk <= iiset.NumResidueTypes(); kk++ {
					kkrot := representative(iiset, kk)
					for ll := 1; ll <= jjset.NumResidueTypes(); ll++ {
						llrot := representative(jjset, ll)
						cut := reach + kkrot.NbrRadius + llrot.NbrRadius
						if v3.DistanceSquared(kkrot.Coords, kkrot.NbrAtom, llrot.Coords, llrot.NbrAtom) <= cut*cut {
							anyNeighbors = true
							conn.Set(ll-1, kk-1, true)
						}
					}
				}
			}
			if !anyNeighbors {
				continue
			}
			g.AddEdge(ii, jj)
			if longRange {
				g.NoteLongRangeInteractionsExistForEdge(ii, jj)
			}
			g.NoteShortRangeInteractionsExistForEdge(ii, jj)
			g.SetSparseAAInfoForEdge(ii, jj, conn)
		}
	}
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
				conn := ig.NewConnectivity(R.sets[jj-1].NumResidueTypes(), R.sets[ii-1].NumResidueTypes())
				conn.Fill(true)
				g.NoteLongRangeInteractionsExistForEdge(ii, jj)
				g.SetSparseAAInfoForEdge(ii, jj, conn)
			}
		}
	}
}

//backboneExamples returns, for each molten residue, a glycine and a proline rotamer, if
//present. If there is no glycine, the last protein residue type that is not a proline is used.
func (R *RotamerSets) backboneExamples() (gly, pro []int) {
	gly = make([]int, len(R.sets))
	pro = make([]int, len(R.sets))
	for m, set := range R.sets {
		standin := 0
		for grp := 1; grp <= set.NumResidueTypes(); grp++ {
			rep := representative(set, grp)
			switch {
			case rep.AA == pack.Gly:
				gly[m] = set.ResidueTypeBegin(grp)
			case rep.AA == pack.Pro:
				pro[m] = set.ResidueTypeBegin(grp)
			case rep.Protein:
				standin = set.ResidueTypeBegin(grp)
			}
		}
		if gly[m] == 0 {
			gly[m] = standin
		}
	}
	return gly, pro
}

//ComputeProlineCorrectEnergiesForOTFGraph adds, to the one-body energy of each rotamer at a node
//that distinguishes backbone and side chain, its side chain-backbone energy and half of its
//backbone-backbone energy with a glycine-like version of each neighbor. The corresponding
//energies with a proline version of the neighbor are stored in the edge, so g can correct
//the energies when the neighbor is actually a proline.
func (R *RotamerSets) ComputeProlineCorrectEnergiesForOTFGraph(pose *pack.Pose, sf pack.ScoreFunction, ng pack.NeighborGraph, g ig.OnTheFlyGraph) {
	gly, pro := R.backboneExamples()
	for ii, iiresid := range R.moltenToResid {
		ii++
		if !g.DistinguishesBackboneAndSidechain(ii) {
			continue
		}
		for _, jjresid := range ng.UpperNeighbors(iiresid) {
			jj, ok := R.MoltenResForResid(jjresid)
			if !ok || !g.DistinguishesBackboneAndSidechain(jj) {
				continue
			}
			R.proCorrections(pose, sf, g, ii, jj, ii, gly[jj-1], pro[jj-1])
			R.proCorrections(pose, sf, g, ii, jj, jj, gly[ii-1], pro[ii-1])
		}
	}
}

//proCorrections computes the corrections for every rotamer of node, in the edge ii-jj,
//against the rotamers gly and pro (0 if absent) of the other node.
func (R *RotamerSets) proCorrections(pose *pack.Pose, sf pack.ScoreFunction, g ig.OnTheFlyGraph, ii, jj, node, gly, pro int) {
	other := ii
	if node == ii {
		other = jj
	}
	set, oset := R.sets[node-1], R.sets[other-1]
	edge := g.EdgeExists(ii, jj)
	for kk := 1; kk <= set.NumRotamers(); kk++ {
		var bbNonPro, bbPro, scNonPro, scPro float64
		rot := set.Rotamer(kk)
		if gly != 0 {
			bbNonPro = BackboneBackboneEnergy(pose, sf, rot, oset.Rotamer(gly))
			scNonPro = SidechainBackboneEnergy(pose, sf, rot, oset.Rotamer(gly))
		}
		if pro != 0 {
			bbPro = BackboneBackboneEnergy(pose, sf, rot, oset.Rotamer(pro))
			scPro = SidechainBackboneEnergy(pose, sf, rot, oset.Rotamer(pro))
		}
		g.AddToOneBodyEnergyForNodeState(node, kk, scNonPro+0.5*bbNonPro)
		//residues too far apart to get an edge have nothing to correct.
		if edge {
			g.SetProCorrectionValuesForEdge(ii, jj, node, kk, bbNonPro, bbPro, scNonPro, scPro)
		}
	}
}

//BackboneBackboneEnergy returns the energy between the backbones of r1 and r2.
func BackboneBackboneEnergy(pose *pack.Pose, sf pack.ScoreFunction, r1, r2 *pack.Residue) float64 {
	return sf.BackboneBackboneEnergy(pose, r1, r2)
}

//SidechainBackboneEnergy returns the energy between the side chain of r1 and the backbone of r2.
func SidechainBackboneEnergy(pose *pack.Pose, sf pack.ScoreFunction, r1, r2 *pack.Residue) float64 {
	return sf.SidechainBackboneEnergy(pose, r1, r2)
}

//PairEvaluator computes rotamer pair energies for an on-the-fly graph filled by a RotamerSets.
type PairEvaluator struct {
	R    *RotamerSets
	pose *pack.Pose
	sf   pack.ScoreFunction
}

//NewPairEvaluator returns an evaluator for the rotamers of R.
func (R *RotamerSets) NewPairEvaluator(pose *pack.Pose, sf pack.ScoreFunction) *PairEvaluator {
	return &PairEvaluator{R: R, pose: pose, sf: sf}
}

func (P *PairEvaluator) ShortRangeEnergy(i, si, j, sj int, scOnly bool) float64 {
	r1 := P.R.RotamerForMoltenRes(i, si)
	r2 := P.R.RotamerForMoltenRes(j, sj)
	if scOnly {
		return P.sf.SidechainSidechainEnergy(P.pose, r1, r2)
	}
	return P.sf.PairEnergy(P.pose, r1, r2)
}

func (P *PairEvaluator) LongRangeEnergy(i, si, j, sj int) float64 {
	iresid, jresid := P.R.ResidForMoltenRes(i), P.R.ResidForMoltenRes(j)
	set1 := &frozen{resid: iresid, rots: []*pack.Residue{P.R.RotamerForMoltenRes(i, si)}}
	set2 := &frozen{resid: jresid, rots: []*pack.Residue{P.R.RotamerForMoltenRes(j, sj)}}
	table := mat.NewDense(1, 1, nil)
	for _, lr := range P.sf.LongRangeMethods() {
		c := lr.Container(P.pose)
		if c == nil || c.Empty() || !contains(c.Neighbors(iresid), jresid) {
			continue
		}
		lr.EvaluateRotamerPairEnergies(P.pose, P.sf, set1, set2, table)
	}
	return table.At(0, 0)
}

func contains(s []int, v int) bool {
	for _, w := range s {
		if w == v {
			return true
		}
	}
	return false
}
