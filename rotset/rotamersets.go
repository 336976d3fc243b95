/*
 * rotamersets.go, part of gopack.
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
	"log"

	"github.com/google/uuid"
	pack "github.com/rmera/gopack"
)

//RotamerSets keeps the rotamer sets of all the molten residues of a packing run, and
//the three index spaces the packer uses: residues (1..TotalResidue), molten residues
//(1..NMoltenRes) and rotamers (1..NRotamers). A RotamerSets must not be shared between
//goroutines, but different RotamerSets can be used concurrently.
type RotamerSets struct {
	id      uuid.UUID
	opts    *Options
	factory *Factory
	task    pack.Task

	totalResidue  int
	residToMolten []int //0 for residues that are not molten. Never exposed.
	moltenToResid []int

	sets             []RotamerSet
	nrotamers        int
	nrotForMolten    []int
	offsets          []int
	moltenForRotamer []int
}

//New returns an empty RotamerSets that will create its sets with F. If O is nil,
//DefaultOptions() is used.
func New(F *Factory, O *Options) *RotamerSets {
	if O == nil {
		O = DefaultOptions()
	}
	if F == nil {
		F = NewFactory(nil)
	}
	return &RotamerSets{id: uuid.New(), opts: O, factory: F}
}

//ID returns the identifier of this packing run.
func (R *RotamerSets) ID() uuid.UUID {
	return R.id
}

//Options returns the options in use. They can be modified.
func (R *RotamerSets) Options() *Options {
	return R.opts
}

func (R *RotamerSets) logf(format string, v ...interface{}) {
	if !R.opts.Verbose() {
		return
	}
	log.Printf("rotset %s: "+format, append([]interface{}{R.id.String()[:8]}, v...)...)
}

//SetTask builds the residue-molten residue tables from task. It panics if the number of
//packable residues found is not task.NumToBePacked().
func (R *RotamerSets) SetTask(task pack.Task) {
	R.task = task
	R.totalResidue = task.TotalResidue()
	R.residToMolten = make([]int, R.totalResidue)
	R.moltenToResid = make([]int, 0, task.NumToBePacked())
	for resid := 1; resid <= R.totalResidue; resid++ {
		if task.PackResidue(resid) {
			R.moltenToResid = append(R.moltenToResid, resid)
			R.residToMolten[resid-1] = len(R.moltenToResid)
		}
	}
	if len(R.moltenToResid) != task.NumToBePacked() {
		panic(fmt.Sprintf("%s: found %d, task says %d", pack.ErrMoltenCount, len(R.moltenToResid), task.NumToBePacked()))
	}
	R.sets = make([]RotamerSet, len(R.moltenToResid))
	R.UpdateOffsetData()
}

//Task returns the task in use.
func (R *RotamerSets) Task() pack.Task {
	return R.task
}

func (R *RotamerSets) mustHaveTask() {
	if R.task == nil {
		panic(pack.ErrNoTask)
	}
}

//BuildRotamers builds the rotamers of every molten residue in two stages: first each set
//is built on its own, then each set can add rotamers that depend on the first-stage
//rotamers of the others. Linked residues are then made to share rotamers.
func (R *RotamerSets) BuildRotamers(pose *pack.Pose, sf pack.ScoreFunction, ng pack.NeighborGraph) {
	R.mustHaveTask()
	for m, resid := range R.moltenToResid {
		set := R.factory.CreateRotamerSet(pose.Residue(resid))
		set.SetResid(resid)
		set.BuildRotamers(pose, sf, R.task, ng)
		R.sets[m] = set
	}
	view := R.stageOneView()
	for _, set := range R.sets {
		set.BuildDependentRotamers(view, pose, sf, R.task, ng)
	}
	R.UpdateOffsetData()
	if R.task.RotamerLinksExist() {
		R.resolveLinks(pose)
		R.UpdateOffsetData()
	}
	R.logf("built %d rotamers for %d molten residues", R.nrotamers, R.NMoltenRes())
}

//UpdateOffsetData recomputes the rotamer numbering. It needs to be called every time the number
//of rotamers of a set changes. Global rotamer ids are not valid until it is called.
func (R *RotamerSets) UpdateOffsetData() {
	n := len(R.sets)
	R.nrotForMolten = make([]int, n)
	R.offsets = make([]int, n)
	R.nrotamers = 0
	for i, s := range R.sets {
		if s != nil {
			R.nrotForMolten[i] = s.NumRotamers()
		}
		R.offsets[i] = R.nrotamers
		R.nrotamers += R.nrotForMolten[i]
	}
	R.moltenForRotamer = make([]int, R.nrotamers)
	m, count := 0, 0
	for g := range R.moltenForRotamer {
		for count == R.nrotForMolten[m] {
			m++
			count = 0
		}
		R.moltenForRotamer[g] = m + 1
		count++
	}
}

func (R *RotamerSets) checkMolten(m int) {
	if m < 1 || m > len(R.moltenToResid) {
		panic(fmt.Sprintf("%s: molten residue %d (total %d)", pack.ErrNotMolten, m, len(R.moltenToResid)))
	}
}

func (R *RotamerSets) checkRotamer(g int) {
	if g < 1 || g > R.nrotamers {
		panic(fmt.Sprintf("%s: %d (total %d)", pack.ErrRotamerOutOfRange, g, R.nrotamers))
	}
}

//NRotamers returns the total number of rotamers
func (R *RotamerSets) NRotamers() int {
	return R.nrotamers
}

//NMoltenRes returns the number of molten residues
func (R *RotamerSets) NMoltenRes() int {
	return len(R.moltenToResid)
}

//TotalResidue returns the number of residues in the structure
func (R *RotamerSets) TotalResidue() int {
	return R.totalResidue
}

//MoltenResForResid returns the molten index of resid, and false if resid is not molten.
func (R *RotamerSets) MoltenResForResid(resid int) (int, bool) {
	if resid < 1 || resid > R.totalResidue {
		panic(fmt.Sprintf("%s: %d (total %d)", pack.ErrResidOutOfRange, resid, R.totalResidue))
	}
	m := R.residToMolten[resid-1]
	return m, m > 0
}

//ResidForMoltenRes returns the residue index of the molten residue m.
func (R *RotamerSets) ResidForMoltenRes(m int) int {
	R.checkMolten(m)
	return R.moltenToResid[m-1]
}

func (R *RotamerSets) NRotamersForMoltenRes(m int) int {
	R.checkMolten(m)
	return R.nrotForMolten[m-1]
}

//RotamerOffset returns the number of rotamers of all the molten residues before m.
func (R *RotamerSets) RotamerOffset(m int) int {
	R.checkMolten(m)
	return R.offsets[m-1]
}

//MoltenResForRotamer returns the molten residue to which the global rotamer g belongs.
func (R *RotamerSets) MoltenResForRotamer(g int) int {
	R.checkRotamer(g)
	return R.moltenForRotamer[g-1]
}

//RotIDOnMoltenRes returns the local index of the global rotamer g in its molten residue.
func (R *RotamerSets) RotIDOnMoltenRes(g int) int {
	return g - R.offsets[R.MoltenResForRotamer(g)-1]
}

//MoltenResRotIDToRotID returns the global index of the local rotamer rot of the molten residue m.
func (R *RotamerSets) MoltenResRotIDToRotID(m, rot int) int {
	R.checkMolten(m)
	if rot < 1 || rot > R.nrotForMolten[m-1] {
		panic(fmt.Sprintf("%s: %d (molten residue %d has %d)", pack.ErrRotamerOutOfRange, rot, m, R.nrotForMolten[m-1]))
	}
	return rot + R.offsets[m-1]
}

//ResForRotamer returns the residue index to which the global rotamer g belongs.
func (R *RotamerSets) ResForRotamer(g int) int {
	return R.moltenToResid[R.MoltenResForRotamer(g)-1]
}

//Rotamer returns the global rotamer g.
func (R *RotamerSets) Rotamer(g int) *pack.Residue {
	m := R.MoltenResForRotamer(g)
	return R.sets[m-1].Rotamer(g - R.offsets[m-1])
}

//RotamerForMoltenRes returns the local rotamer rot of the molten residue m.
func (R *RotamerSets) RotamerForMoltenRes(m, rot int) *pack.Residue {
	return R.RotamerSetForMoltenResidue(m).Rotamer(rot)
}

//RotamerSetForResidue returns the set of resid, and false if resid is not molten.
func (R *RotamerSets) RotamerSetForResidue(resid int) (RotamerSet, bool) {
	m, ok := R.MoltenResForResid(resid)
	if !ok {
		return nil, false
	}
	return R.sets[m-1], true
}

//RotamerSetForMoltenResidue returns the set of the molten residue m.
func (R *RotamerSets) RotamerSetForMoltenResidue(m int) RotamerSet {
	R.checkMolten(m)
	return R.sets[m-1]
}

//ResidueTypeBegins returns the first rotamer of each residue-type group of the molten residue m.
func (R *RotamerSets) ResidueTypeBegins(m int) []int {
	s := R.RotamerSetForMoltenResidue(m)
	ret := make([]int, s.NumResidueTypes())
	for g := range ret {
		ret[g] = s.ResidueTypeBegin(g + 1)
	}
	return ret
}

//stageView is the View given to the second building stage.
type stageView struct {
	R    *RotamerSets
	sets []*frozen
}

func (R *RotamerSets) stageOneView() *stageView {
	V := &stageView{R: R, sets: make([]*frozen, len(R.sets))}
	for i, s := range R.sets {
		V.sets[i] = freeze(s)
	}
	return V
}

func (V *stageView) NMoltenRes() int                         { return V.R.NMoltenRes() }
func (V *stageView) MoltenResForResid(resid int) (int, bool) { return V.R.MoltenResForResid(resid) }
func (V *stageView) ResidForMoltenRes(m int) int             { return V.R.ResidForMoltenRes(m) }
func (V *stageView) RotamersForMoltenRes(m int) pack.Rotamers {
	V.R.checkMolten(m)
	return V.sets[m-1]
}
