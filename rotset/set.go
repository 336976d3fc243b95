/*
 * set.go, part of gopack.
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
)

//Library supplies the candidate conformations of the amino acid aa for the
//position resid of pose. The returned residues belong to the caller.
type Library interface {
	Rotamers(pose *pack.Pose, resid int, aa pack.AA) []*pack.Residue
}

//LibraryFunc allows to use an ordinary function as a Library.
type LibraryFunc func(pose *pack.Pose, resid int, aa pack.AA) []*pack.Residue

func (f LibraryFunc) Rotamers(pose *pack.Pose, resid int, aa pack.AA) []*pack.Residue {
	return f(pose, resid, aa)
}

//DependentBuilder supplies rotamers for resid that depend on the rotamers
//already built for other positions (say, disulfide partners).
type DependentBuilder interface {
	DependentRotamers(view View, pose *pack.Pose, resid int) []*pack.Residue
}

//View gives read-only access to the rotamers built for all molten positions
//in the first building stage.
type View interface {
	NMoltenRes() int
	MoltenResForResid(resid int) (int, bool)
	ResidForMoltenRes(m int) int
	RotamersForMoltenRes(m int) pack.Rotamers
}

//RotamerSet holds the candidate conformations for one molten position. Rotamers with
//the same residue type (name plus variants) are contiguous and form a residue-type group.
//Groups and rotamers are numbered from 1.
type RotamerSet interface {
	pack.Rotamers

	SetResid(resid int)

	//BuildRotamers fills the set. It must not look at other positions' rotamers.
	BuildRotamers(pose *pack.Pose, sf pack.ScoreFunction, task pack.Task, ng pack.NeighborGraph)

	//BuildDependentRotamers adds rotamers that depend on the rotamers of other positions.
	BuildDependentRotamers(view View, pose *pack.Pose, sf pack.ScoreFunction, task pack.Task, ng pack.NeighborGraph)

	AddRotamer(rot *pack.Residue)
	NumResidueTypes() int
	ResidueTypeBegin(group int) int
	ResidueTypeForRotamer(i int) int

	//ComputeOneBodyEnergies returns, for each rotamer, its one-body energy plus its
	//energies with the residues that are not being packed.
	ComputeOneBodyEnergies(pose *pack.Pose, sf pack.ScoreFunction, task pack.Task, ng pack.NeighborGraph) []float64
}

//Set is the RotamerSet used by the default Factory.
type Set struct {
	resid          int
	rotamers       []*pack.Residue
	begins         []int //first rotamer of each group
	groupOf        []int //group of each rotamer
	typeNames      []string
	lib            Library
	dep            DependentBuilder
	includeCurrent bool
}

//NewSet returns an empty set that builds its rotamers with lib, and its dependent
//rotamers with dep. Both can be nil. If includeCurrent is true, the conformation present
//in the pose is added as a rotamer.
func NewSet(lib Library, dep DependentBuilder, includeCurrent bool) *Set {
	return &Set{lib: lib, dep: dep, includeCurrent: includeCurrent}
}

func (S *Set) SetResid(resid int) {
	S.resid = resid
}

func (S *Set) Resid() int {
	return S.resid
}

func (S *Set) NumRotamers() int {
	return len(S.rotamers)
}

func (S *Set) Rotamer(i int) *pack.Residue {
	if i < 1 || i > len(S.rotamers) {
		panic(fmt.Sprintf("%s: %d (residue %d has %d)", pack.ErrRotamerOutOfRange, i, S.resid, len(S.rotamers)))
	}
	return S.rotamers[i-1]
}

//AddRotamer adds rot at the end of the group of its residue type, or at the
//end of the set if no rotamer of that type is present.
func (S *Set) AddRotamer(rot *pack.Residue) {
	tn := rot.TypeName()
	pos := len(S.rotamers)
	for g, name := range S.typeNames {
		if name != tn {
			continue
		}
		if g+1 < len(S.begins) {
			pos = S.begins[g+1] - 1
		}
		break
	}
	S.rotamers = append(S.rotamers, nil)
	copy(S.rotamers[pos+1:], S.rotamers[pos:])
	S.rotamers[pos] = rot
	S.updateGroups()
}

func (S *Set) updateGroups() {
	S.begins = S.begins[:0]
	S.typeNames = S.typeNames[:0]
	S.groupOf = S.groupOf[:0]
	prev := ""
	for i, r := range S.rotamers {
		tn := r.TypeName()
		if i == 0 || tn != prev {
			S.begins = append(S.begins, i+1)
			S.typeNames = append(S.typeNames, tn)
			prev = tn
		}
		S.groupOf = append(S.groupOf, len(S.begins))
	}
}

func (S *Set) NumResidueTypes() int {
	return len(S.begins)
}

//ResidueTypeBegin returns the first rotamer of the group.
func (S *Set) ResidueTypeBegin(group int) int {
	if group < 1 || group > len(S.begins) {
		panic(fmt.Sprintf("gopack/rotset: residue-type group %d out of range (%d groups)", group, len(S.begins)))
	}
	return S.begins[group-1]
}

func (S *Set) ResidueTypeForRotamer(i int) int {
	S.Rotamer(i)
	return S.groupOf[i-1]
}

//addPlaced puts rot on the backbone of the set's position, with the
//sequence position, connections and terminus variants of the pose residue.
func (S *Set) addPlaced(pose *pack.Pose, rot *pack.Residue) {
	current := pose.Residue(S.resid)
	rot.SetSeqpos(S.resid)
	pose.Place(rot, S.resid)
	for _, v := range []pack.Variant{pack.LowerTerminus, pack.UpperTerminus} {
		if current.HasVariant(v) {
			rot.AddVariant(v)
		} else {
			rot.RemoveVariant(v)
		}
	}
	rot.CopyConnections(current)
	S.AddRotamer(rot)
}

//BuildRotamers adds the library rotamers for every amino acid the task allows at the
//position (or for the current one, if the task allows nothing in particular).
//If no rotamer could be built, the current conformation is used.
func (S *Set) BuildRotamers(pose *pack.Pose, sf pack.ScoreFunction, task pack.Task, ng pack.NeighborGraph) {
	current := pose.Residue(S.resid)
	aas := task.AllowedAAs(S.resid)
	if len(aas) == 0 {
		aas = []pack.AA{current.AA}
	}
	if S.lib != nil {
		for _, aa := range aas {
			for _, rot := range S.lib.Rotamers(pose, S.resid, aa) {
				S.addPlaced(pose, rot)
			}
		}
	}
	if S.includeCurrent || len(S.rotamers) == 0 {
		S.AddRotamer(current.Clone())
	}
}

func (S *Set) BuildDependentRotamers(view View, pose *pack.Pose, sf pack.ScoreFunction, task pack.Task, ng pack.NeighborGraph) {
	if S.dep == nil {
		return
	}
	for _, rot := range S.dep.DependentRotamers(view, pose, S.resid) {
		S.addPlaced(pose, rot)
	}
}

func (S *Set) ComputeOneBodyEnergies(pose *pack.Pose, sf pack.ScoreFunction, task pack.Task, ng pack.NeighborGraph) []float64 {
	energies := make([]float64, len(S.rotamers))
	for i, rot := range S.rotamers {
		energies[i] = sf.OneBodyEnergy(pose, rot)
	}
	for _, nb := range ng.Neighbors(S.resid) {
		if task.PackResidue(nb) {
			continue
		}
		bg := pose.Residue(nb)
		for i, rot := range S.rotamers {
			energies[i] += sf.PairEnergy(pose, rot, bg)
		}
	}
	for _, m := range sf.LongRangeMethods() {
		c := m.Container(pose)
		if c == nil || c.Empty() {
			continue
		}
		for _, nb := range c.Neighbors(S.resid) {
			if task.PackResidue(nb) {
				continue
			}
			m.EvaluateRotamerBackgroundEnergies(pose, sf, S, pose.Residue(nb), energies)
		}
	}
	return energies
}

//frozen is a read-only copy of the list of rotamers of a set.
type frozen struct {
	resid int
	rots  []*pack.Residue
}

func freeze(s pack.Rotamers) *frozen {
	F := &frozen{resid: s.Resid(), rots: make([]*pack.Residue, s.NumRotamers())}
	for i := range F.rots {
		F.rots[i] = s.Rotamer(i + 1)
	}
	return F
}

func (F *frozen) Resid() int       { return F.resid }
func (F *frozen) NumRotamers() int { return len(F.rots) }
func (F *frozen) Rotamer(i int) *pack.Residue {
	if i < 1 || i > len(F.rots) {
		panic(fmt.Sprintf("%s: %d (residue %d has %d)", pack.ErrRotamerOutOfRange, i, F.resid, len(F.rots)))
	}
	return F.rots[i-1]
}

//Factory creates the rotamer set for each molten position.
type Factory struct {
	Library        Library
	Dependent      DependentBuilder
	IncludeCurrent bool
}

//NewFactory returns a factory that builds protein rotamers with lib.
func NewFactory(lib Library) *Factory {
	return &Factory{Library: lib}
}

//CreateRotamerSet returns an empty set for a position with the residue res. Protein
//residues get their rotamers from the library, other residues keep only their current conformation.
func (F *Factory) CreateRotamerSet(res *pack.Residue) RotamerSet {
	if !res.Protein {
		return NewSet(nil, nil, true)
	}
	return NewSet(F.Library, F.Dependent, F.IncludeCurrent)
}
