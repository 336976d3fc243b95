/*
 * constraint.go, part of gopack.
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

package score

import (
	"fmt"
	"sort"

	pack "github.com/rmera/gopack"
	v3 "github.com/rmera/gopack/v3"
	"gonum.org/v1/gonum/mat"
)

//AtomPairConstraint is a harmonic restraint on the distance between the atom
//named Atom1 of residue Res1 and the atom named Atom2 of residue Res2.
type AtomPairConstraint struct {
	Res1     int
	Atom1    string
	Res2     int
	Atom2    string
	Distance float64
	SD       float64
}

//energy returns the unweighted energy of the constraint when Res1 is r1 and Res2 is r2.
//If one of the atoms is not present in the residue (say, for a glycine), the energy is 0.
func (C AtomPairConstraint) energy(r1, r2 *pack.Residue) float64 {
	i, ok1 := atomIndex(r1, C.Atom1)
	j, ok2 := atomIndex(r2, C.Atom2)
	if !ok1 || !ok2 {
		return 0
	}
	dev := (v3.Distance(r1.Coords, i, r2.Coords, j) - C.Distance) / C.SD
	return dev * dev
}

func atomIndex(r *pack.Residue, name string) (int, bool) {
	for i, a := range r.Atoms {
		if a.Name == name {
			return i, true
		}
	}
	return -1, false
}

//ConstraintMethod is a pack.LongRangeMethod with atom-pair constraints between
//residues that can be arbitrarily far apart.
type ConstraintMethod struct {
	csts []AtomPairConstraint
	cont *pairList
}

//NewConstraintMethod returns a method with the given constraints.
func NewConstraintMethod(csts ...AtomPairConstraint) *ConstraintMethod {
	for _, c := range csts {
		if c.Res1 == c.Res2 {
			panic(fmt.Sprintf("gopack/score: intra-residue constraint on residue %d", c.Res1))
		}
		if c.SD <= 0 {
			panic(fmt.Sprintf("gopack/score: constraint with non-positive SD %f", c.SD))
		}
	}
	M := &ConstraintMethod{csts: append([]AtomPairConstraint(nil), csts...)}
	M.cont = newPairList()
	for _, c := range M.csts {
		M.cont.add(c.Res1, c.Res2)
	}
	return M
}

func (M *ConstraintMethod) Name() string { return "atom_pair_constraint" }

//Container returns the residue pairs with constraints. It does not depend on the pose.
func (M *ConstraintMethod) Container(pose *pack.Pose) pack.LRContainer {
	return M.cont
}

func weight(sf pack.ScoreFunction) float64 {
	if F, ok := sf.(*Function); ok {
		return F.Weight(Constraint)
	}
	return 1
}

//pairEnergy returns the weighted constraint energy between r1, at resid1, and r2, at resid2.
func (M *ConstraintMethod) pairEnergy(w float64, resid1 int, r1 *pack.Residue, resid2 int, r2 *pack.Residue) float64 {
	var e float64
	for _, c := range M.csts {
		switch {
		case c.Res1 == resid1 && c.Res2 == resid2:
			e += c.energy(r1, r2)
		case c.Res1 == resid2 && c.Res2 == resid1:
			e += c.energy(r2, r1)
		}
	}
	return w * e
}

func (M *ConstraintMethod) EvaluateRotamerPairEnergies(pose *pack.Pose, sf pack.ScoreFunction, set1, set2 pack.Rotamers, table *mat.Dense) {
	w := weight(sf)
	resid1, resid2 := set1.Resid(), set2.Resid()
	for i := 1; i <= set1.NumRotamers(); i++ {
		r1 := set1.Rotamer(i)
		for j := 1; j <= set2.NumRotamers(); j++ {
			table.Set(j-1, i-1, table.At(j-1, i-1)+M.pairEnergy(w, resid1, r1, resid2, set2.Rotamer(j)))
		}
	}
}

func (M *ConstraintMethod) EvaluateRotamerBackgroundEnergies(pose *pack.Pose, sf pack.ScoreFunction, set pack.Rotamers, bg *pack.Residue, energies []float64) {
	w := weight(sf)
	resid := set.Resid()
	for i := 1; i <= set.NumRotamers(); i++ {
		energies[i-1] += M.pairEnergy(w, resid, set.Rotamer(i), bg.Seqpos(), bg)
	}
}

//pairList is a pack.LRContainer over an explicit list of residue pairs.
type pairList struct {
	nbrs map[int][]int
}

func newPairList() *pairList {
	return &pairList{nbrs: make(map[int][]int)}
}

func (P *pairList) add(i, j int) {
	P.nbrs[i] = insertSorted(P.nbrs[i], j)
	P.nbrs[j] = insertSorted(P.nbrs[j], i)
}

func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func (P *pairList) Empty() bool {
	return len(P.nbrs) == 0
}

func (P *pairList) Neighbors(resid int) []int {
	return append([]int(nil), P.nbrs[resid]...)
}

func (P *pairList) UpperNeighbors(resid int) []int {
	s := P.nbrs[resid]
	i := sort.SearchInts(s, resid+1)
	return append([]int(nil), s[i:]...)
}
