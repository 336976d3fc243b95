/*
 * packtest.go, part of gopack.
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

//Package packtest builds small toy structures and rotamer libraries, for testing
//code that uses gopack. Residues lie along the x axis, 3.8 A apart, with a
//four-atom backbone (N, CA, C, O), a CB for everything but glycine and, for
//residues with a side chain, one pseudo-atom SC whose position depends on a
//single chi angle.
package packtest

import (
	"fmt"
	"math"

	pack "github.com/rmera/gopack"
	v3 "github.com/rmera/gopack/v3"
)

//Spacing is the distance between consecutive CA atoms.
const Spacing = 3.8

//NbrRadius is the neighbor radius given to every residue.
const NbrRadius = 3.0

func hasSC(aa pack.AA) bool {
	return aa != pack.Gly && aa != pack.Ala && aa != pack.Pro && aa.Canonical()
}

//Residue returns a residue of type name with its CA at (x,0,0). chi sets the position
//of the SC atom, and the pucker of prolines. Non-amino acid names give a one-atom ligand.
func Residue(name string, x, chi float64) *pack.Residue {
	aa := pack.AAFromName(name)
	if !aa.Canonical() {
		atoms := []*pack.Atom{{Name: "X1", Symbol: "C"}}
		coords, _ := v3.NewMatrix([]float64{x, 0, 0})
		R := pack.NewResidue(name, atoms, coords)
		R.NbrRadius = 1.0
		return R
	}
	atoms := []*pack.Atom{
		{Name: "N", Symbol: "N", Backbone: true},
		{Name: "CA", Symbol: "C", Backbone: true},
		{Name: "C", Symbol: "C", Backbone: true},
		{Name: "O", Symbol: "O", Backbone: true},
	}
	c := []float64{
		x - 1.0, 0.5, 0,
		x, 0, 0,
		x + 1.0, 0.5, 0,
		x + 1.0, 1.7, 0,
	}
	if aa != pack.Gly {
		atoms = append(atoms, &pack.Atom{Name: "CB", Symbol: "C"})
		c = append(c, x, -1.5, 0)
	}
	if aa == pack.Pro {
		atoms = append(atoms, &pack.Atom{Name: "CD", Symbol: "C"})
		c = append(c, x-1.0, -1.0, 0.3*math.Cos(chi))
	}
	if hasSC(aa) {
		atoms = append(atoms, &pack.Atom{Name: "SC", Symbol: "C"})
		c = append(c, x+1.5*math.Cos(chi), -2.5, 1.5*math.Sin(chi))
	}
	coords, err := v3.NewMatrix(c)
	if err != nil {
		panic(err.Error())
	}
	R := pack.NewResidue(name, atoms, coords)
	R.NbrAtom = 1
	R.NbrRadius = NbrRadius
	if aa != pack.Gly && aa != pack.Ala {
		R.Chi = []float64{chi}
	}
	return R
}

//Pose returns a pose with residues of the given names, all with chi 0.
func Pose(names ...string) *pack.Pose {
	res := make([]*pack.Residue, 0, len(names))
	for i, n := range names {
		res = append(res, Residue(n, float64(i)*Spacing, 0))
	}
	return pack.NewPose(res)
}

//Library builds rotamers: one for glycine and alanine, two for proline
//and N, evenly spaced in chi, for the rest of the amino acids. Other residue types
//get no rotamers. It fulfills rotset.Library.
type Library struct {
	N int
}

//NumRotamers returns the number of rotamers the library builds for aa.
func (L Library) NumRotamers(aa pack.AA) int {
	switch {
	case aa == pack.Gly || aa == pack.Ala:
		return 1
	case aa == pack.Pro:
		return 2
	case aa.Canonical():
		return L.N
	default:
		return 0
	}
}

//Rotamers returns the rotamers of type aa for the position resid of pose.
func (L Library) Rotamers(pose *pack.Pose, resid int, aa pack.AA) []*pack.Residue {
	n := L.NumRotamers(aa)
	if n == 0 {
		return nil
	}
	x := pose.Residue(resid).Coords.At(1, 0) //CA
	ret := make([]*pack.Residue, 0, n)
	for i := 0; i < n; i++ {
		chi := 2 * math.Pi * float64(i) / float64(n)
		ret = append(ret, Residue(aa.String(), x, chi))
	}
	return ret
}

//Chain returns the names of n residues of type name, for use with Pose.
func Chain(name string, n int) []string {
	if n < 0 {
		panic(fmt.Sprintf("packtest: negative chain length %d", n))
	}
	ret := make([]string, n)
	for i := range ret {
		ret[i] = name
	}
	return ret
}
