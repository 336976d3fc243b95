/*
 * score.go, part of gopack.
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

//Package score implements a simple reference score function for the packer, with
//a soft-sphere repulsion, a linear attraction well, a backbone hydrogen-bond term,
//per-amino acid reference energies and atom-pair constraints as a long-range term.
//It is meant for testing and as an example of a pack.ScoreFunction, not for production.
package score

import (
	"math"

	pack "github.com/rmera/gopack"
	v3 "github.com/rmera/gopack/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Term identifies one energy term.
type Term int

const (
	Rep Term = iota
	Atr
	HBondBB
	Ref
	Constraint
	NTerms
)

var termNames = [...]string{"rep", "atr", "hbond_bb", "ref", "constraint"}

func (t Term) String() string {
	if t < 0 || t >= NTerms {
		return "unknown"
	}
	return termNames[t]
}

//EnergyMap holds the unweighted value of each term.
type EnergyMap [NTerms]float64

//Weights holds the weight of each term.
type Weights [NTerms]float64

//Dot returns the weighted sum of the terms.
func (E *EnergyMap) Dot(w Weights) float64 {
	return floats.Dot(E[:], w[:])
}

//Add adds the terms of o to E.
func (E *EnergyMap) Add(o *EnergyMap) {
	floats.Add(E[:], o[:])
}

//DefaultWeights returns the default weights.
func DefaultWeights() Weights {
	var w Weights
	w[Rep] = 0.44
	w[Atr] = 0.8
	w[HBondBB] = 1.17
	w[Ref] = 1.0
	w[Constraint] = 1.0
	return w
}

const (
	DefaultReach       = 6.0 //maximum atomic interaction distance
	DefaultRadiusScale = 0.8
	hbondMax           = 3.5
	hbondOpt           = 2.8
)

//Function is a pack.ScoreFunction and a pack.RotamerPreparer.
type Function struct {
	weights     Weights
	refs        map[pack.AA]float64
	reach       float64
	radiusScale float64
	lr          []pack.LongRangeMethod
}

//New returns a score function with the given weights, no reference energies and
//no long-range terms.
func New(w Weights) *Function {
	return &Function{weights: w, refs: make(map[pack.AA]float64), reach: DefaultReach, radiusScale: DefaultRadiusScale}
}

//Weight returns the weight of the term t
func (F *Function) Weight(t Term) float64 {
	return F.weights[t]
}

//SetWeight sets the weight of the term t
func (F *Function) SetWeight(t Term, w float64) {
	F.weights[t] = w
}

//SetReference sets the reference (one-body) energy of the amino acid aa.
func (F *Function) SetReference(aa pack.AA, e float64) {
	F.refs[aa] = e
}

//SetReach sets the maximum atomic interaction distance.
func (F *Function) SetReach(r float64) {
	F.reach = r
}

//AddLongRangeMethod adds a long-range term to the function.
func (F *Function) AddLongRangeMethod(m pack.LongRangeMethod) {
	F.lr = append(F.lr, m)
}

func (F *Function) MaxAtomicInteractionDistance() float64 {
	return F.reach
}

//LongRangeMethods returns a copy of the list of long-range terms.
func (F *Function) LongRangeMethods() []pack.LongRangeMethod {
	return append([]pack.LongRangeMethod(nil), F.lr...)
}

//OneBodyEnergies returns the unweighted one-body terms of res.
func (F *Function) OneBodyEnergies(pose *pack.Pose, res *pack.Residue) EnergyMap {
	var E EnergyMap
	E[Ref] = F.refs[res.AA]
	return E
}

func (F *Function) OneBodyEnergy(pose *pack.Pose, res *pack.Residue) float64 {
	E := F.OneBodyEnergies(pose, res)
	return E.Dot(F.weights)
}

//selectors for the atoms that take part in a residue-pair evaluation.
var (
	all       = func(a *pack.Atom) bool { return true }
	backbone  = func(a *pack.Atom) bool { return a.Backbone }
	sidechain = func(a *pack.Atom) bool { return !a.Backbone }
)

//bonded returns true if both residues are joined by a polymer bond.
func bonded(r1, r2 *pack.Residue) bool {
	for _, c := range []int{pack.LowerConnect, pack.UpperConnect} {
		if p, ok := r1.ConnectionPartner(c); ok && p.Partner == r2.Seqpos() {
			return true
		}
	}
	return false
}

//pairEnergies returns the unweighted short-range terms between the atoms of r1 for
//which sel1 is true and the atoms of r2 for which sel2 is true. Backbone-backbone
//pairs of bonded residues are not counted.
func (F *Function) pairEnergies(r1, r2 *pack.Residue, sel1, sel2 func(*pack.Atom) bool) EnergyMap {
	var E EnergyMap
	skipbb := bonded(r1, r2)
	for i, a := range r1.Atoms {
		if !sel1(a) {
			continue
		}
		for j, b := range r2.Atoms {
			if !sel2(b) || (skipbb && a.Backbone && b.Backbone) {
				continue
			}
			d := v3.Distance(r1.Coords, i, r2.Coords, j)
			if d >= F.reach {
				continue
			}
			r := F.radiusScale * (a.Radius() + b.Radius())
			if d < r {
				E[Rep] += (r - d) * (r - d)
				E[Atr] -= 1
			} else if r < F.reach {
				E[Atr] -= (F.reach - d) / (F.reach - r)
			}
			if a.Backbone && b.Backbone && d < hbondMax && isHBondPair(a, b) {
				E[HBondBB] -= math.Min(1, (hbondMax-d)/(hbondMax-hbondOpt))
			}
		}
	}
	return E
}

func isHBondPair(a, b *pack.Atom) bool {
	return (a.Name == "O" && b.Name == "N") || (a.Name == "N" && b.Name == "O")
}

//PairEnergies returns the unweighted short-range terms between the two residues.
func (F *Function) PairEnergies(pose *pack.Pose, res1, res2 *pack.Residue) EnergyMap {
	return F.pairEnergies(res1, res2, all, all)
}

func (F *Function) PairEnergy(pose *pack.Pose, res1, res2 *pack.Residue) float64 {
	E := F.pairEnergies(res1, res2, all, all)
	return E.Dot(F.weights)
}

func (F *Function) BackboneBackboneEnergy(pose *pack.Pose, res1, res2 *pack.Residue) float64 {
	E := F.pairEnergies(res1, res2, backbone, backbone)
	return E.Dot(F.weights)
}

func (F *Function) SidechainBackboneEnergy(pose *pack.Pose, sc, bb *pack.Residue) float64 {
	E := F.pairEnergies(sc, bb, sidechain, backbone)
	return E.Dot(F.weights)
}

func (F *Function) SidechainSidechainEnergy(pose *pack.Pose, res1, res2 *pack.Residue) float64 {
	E := F.pairEnergies(res1, res2, sidechain, sidechain)
	return E.Dot(F.weights)
}

func (F *Function) EvaluateRotamerPairEnergies(pose *pack.Pose, set1, set2 pack.Rotamers, table *mat.Dense) {
	for i := 1; i <= set1.NumRotamers(); i++ {
		r1 := set1.Rotamer(i)
		for j := 1; j <= set2.NumRotamers(); j++ {
			table.Set(j-1, i-1, table.At(j-1, i-1)+F.PairEnergy(pose, r1, set2.Rotamer(j)))
		}
	}
}

//AnyLRResiduePairEnergy returns true if some long-range term connects resid1 and resid2.
func (F *Function) AnyLRResiduePairEnergy(pose *pack.Pose, resid1, resid2 int) bool {
	for _, m := range F.lr {
		c := m.Container(pose)
		if c == nil || c.Empty() {
			continue
		}
		for _, n := range c.Neighbors(resid1) {
			if n == resid2 {
				return true
			}
		}
	}
	return false
}

//PrepareRotamersForPacking sets the neighbor radius of the rotamers that lack one,
//as the largest distance between the neighbor atom and any other atom.
func (F *Function) PrepareRotamersForPacking(pose *pack.Pose, set pack.Rotamers) {
	for i := 1; i <= set.NumRotamers(); i++ {
		r := set.Rotamer(i)
		if r.NbrRadius > 0 || r.Coords == nil {
			continue
		}
		for j := range r.Atoms {
			if d := v3.Distance(r.Coords, r.NbrAtom, r.Coords, j); d > r.NbrRadius {
				r.NbrRadius = d
			}
		}
	}
}
