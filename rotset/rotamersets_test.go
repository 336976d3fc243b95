/*
 * rotamersets_test.go, part of gopack.
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
	"testing"

	pack "github.com/rmera/gopack"
	"github.com/rmera/gopack/neighbor"
	"github.com/rmera/gopack/packtest"
	"github.com/rmera/gopack/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//countLib builds counts[resid] rotamers at resid, with chi resid/100+k for the k-th one,
//so rotamers built for different residues can be told apart.
func countLib(counts map[int]int) LibraryFunc {
	return func(pose *pack.Pose, resid int, aa pack.AA) []*pack.Residue {
		x := pose.Residue(resid).Coords.At(1, 0)
		var ret []*pack.Residue
		for k := 0; k < counts[resid]; k++ {
			ret = append(ret, packtest.Residue(aa.String(), x, float64(resid)/100+float64(k)))
		}
		return ret
	}
}

//setup returns a pose of n leucines where the residues in molten are packable, and
//its neighbor graph.
func setup(n int, molten ...int) (*pack.Pose, *pack.PackerTask, *neighbor.Graph, *score.Function) {
	pose := packtest.Pose(packtest.Chain("LEU", n)...)
	task := pack.NewPackerTask(n)
	for _, m := range molten {
		task.SetPack(m, true)
	}
	sf := score.New(score.DefaultWeights())
	return pose, task, neighbor.Build(pose, sf.MaxAtomicInteractionDistance()), sf
}

type wrongCountTask struct {
	*pack.PackerTask
}

func (wrongCountTask) NumToBePacked() int { return 1 }

func TestSetTask(Te *testing.T) {
	task := pack.NewPackerTask(10)
	for _, r := range []int{2, 5, 7} {
		task.SetPack(r, true)
	}
	R := New(nil, nil)
	R.SetTask(task)
	require.Equal(Te, 3, R.NMoltenRes())
	assert.Equal(Te, 10, R.TotalResidue())
	want := []int{0, 1, 0, 0, 2, 0, 3, 0, 0, 0}
	for resid := 1; resid <= 10; resid++ {
		m, ok := R.MoltenResForResid(resid)
		assert.Equal(Te, want[resid-1] != 0, ok, "residue %d", resid)
		assert.Equal(Te, want[resid-1], m, "residue %d", resid)
		if ok {
			assert.Equal(Te, resid, R.ResidForMoltenRes(m))
		}
	}
	assert.Equal(Te, []int{2, 5, 7}, []int{R.ResidForMoltenRes(1), R.ResidForMoltenRes(2), R.ResidForMoltenRes(3)})
	assert.Equal(Te, task, R.Task())
	assert.Panics(Te, func() { R.MoltenResForResid(11) })
	assert.Panics(Te, func() { R.ResidForMoltenRes(4) })
	assert.Panics(Te, func() { R.ResidForMoltenRes(0) })
	_, ok := R.RotamerSetForResidue(3)
	assert.False(Te, ok)

	bad := wrongCountTask{pack.NewPackerTask(4)}
	bad.SetPack(1, true)
	bad.SetPack(3, true)
	assert.Panics(Te, func() { New(nil, nil).SetTask(bad) })
	assert.Panics(Te, func() { New(nil, nil).BuildRotamers(nil, nil, nil) })
}

func TestOffsets(Te *testing.T) {
	pose, task, ng, sf := setup(10, 3, 8)
	R := New(NewFactory(countLib(map[int]int{3: 5, 8: 7})), nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	require.Equal(Te, 12, R.NRotamers())
	assert.Equal(Te, 5, R.NRotamersForMoltenRes(1))
	assert.Equal(Te, 7, R.NRotamersForMoltenRes(2))
	assert.Equal(Te, []int{0, 5}, []int{R.RotamerOffset(1), R.RotamerOffset(2)})
	molten := make([]int, 0, 12)
	for g := 1; g <= R.NRotamers(); g++ {
		molten = append(molten, R.MoltenResForRotamer(g))
	}
	assert.Equal(Te, []int{1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2}, molten)
	assert.Equal(Te, 8, R.ResForRotamer(6))
	assert.Equal(Te, 1, R.RotIDOnMoltenRes(6))
	assert.Same(Te, R.RotamerForMoltenRes(2, 1), R.Rotamer(6))
	assert.Panics(Te, func() { R.Rotamer(13) })
	assert.Panics(Te, func() { R.MoltenResRotIDToRotID(1, 6) })

	set, ok := R.RotamerSetForResidue(8)
	require.True(Te, ok)
	assert.Same(Te, set, R.RotamerSetForMoltenResidue(2))
	assert.Equal(Te, 8, set.Resid())
}

func TestRoundTripAndIdempotence(Te *testing.T) {
	pose, task, ng, sf := setup(8, 1, 2, 4, 5, 8)
	R := New(NewFactory(countLib(map[int]int{1: 3, 2: 1, 5: 4, 8: 2})), nil) //4 gets only the current residue
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	sum := 0
	for m := 1; m <= R.NMoltenRes(); m++ {
		sum += R.NRotamersForMoltenRes(m)
		if m > 1 {
			assert.GreaterOrEqual(Te, R.RotamerOffset(m), R.RotamerOffset(m-1))
		}
	}
	assert.Equal(Te, 0, R.RotamerOffset(1))
	assert.Equal(Te, R.NRotamers(), sum)
	assert.Equal(Te, 1, R.NRotamersForMoltenRes(3))
	for g := 1; g <= R.NRotamers(); g++ {
		m, local := R.MoltenResForRotamer(g), R.RotIDOnMoltenRes(g)
		assert.Equal(Te, g, R.MoltenResRotIDToRotID(m, local))
	}
	offsets := append([]int(nil), R.offsets...)
	inverse := append([]int(nil), R.moltenForRotamer...)
	R.UpdateOffsetData()
	R.UpdateOffsetData()
	assert.Equal(Te, offsets, R.offsets)
	assert.Equal(Te, inverse, R.moltenForRotamer)
}

func TestEmptySets(Te *testing.T) {
	R := New(nil, nil)
	R.sets = []RotamerSet{NewSet(nil, nil, false), NewSet(nil, nil, false), NewSet(nil, nil, false)}
	R.sets[1].AddRotamer(packtest.Residue("LEU", 0, 0))
	R.sets[1].AddRotamer(packtest.Residue("LEU", 0, 1))
	R.moltenToResid = []int{1, 2, 3}
	R.UpdateOffsetData()
	assert.Equal(Te, 2, R.NRotamers())
	assert.Equal(Te, []int{0, 0, 2}, R.offsets)
	assert.Equal(Te, []int{2, 2}, R.moltenForRotamer)
}

func TestSetGroups(Te *testing.T) {
	S := NewSet(nil, nil, false)
	S.SetResid(3)
	S.AddRotamer(packtest.Residue("LEU", 0, 0))
	S.AddRotamer(packtest.Residue("GLY", 0, 0))
	S.AddRotamer(packtest.Residue("LEU", 0, 1))
	S.AddRotamer(packtest.Residue("PRO", 0, 0))
	S.AddRotamer(packtest.Residue("GLY", 0, 1))
	require.Equal(Te, 5, S.NumRotamers())
	require.Equal(Te, 3, S.NumResidueTypes())
	names := make([]string, 0, 5)
	for i := 1; i <= S.NumRotamers(); i++ {
		names = append(names, S.Rotamer(i).Name)
	}
	assert.Equal(Te, []string{"LEU", "LEU", "GLY", "GLY", "PRO"}, names)
	assert.Equal(Te, []int{1, 3, 5}, []int{S.ResidueTypeBegin(1), S.ResidueTypeBegin(2), S.ResidueTypeBegin(3)})
	assert.Equal(Te, 2, S.ResidueTypeForRotamer(4))
	assert.Equal(Te, 1.0, S.Rotamer(2).Chi[0])
	assert.Panics(Te, func() { S.Rotamer(6) })
	assert.Panics(Te, func() { S.ResidueTypeBegin(4) })

	//variants make different residue types.
	T := NewSet(nil, nil, false)
	a := packtest.Residue("LEU", 0, 0)
	b := packtest.Residue("LEU", 0, 0)
	b.AddVariant(pack.LowerTerminus)
	T.AddRotamer(a)
	T.AddRotamer(b)
	assert.Equal(Te, 2, T.NumResidueTypes())
}

func TestBuildRotamers(Te *testing.T) {
	pose, task, ng, sf := setup(5, 1, 3, 5)
	task.SetAllowedAAs(3, pack.Leu, pack.Gly, pack.Pro)
	F := NewFactory(packtest.Library{N: 3})
	R := New(F, nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	assert.Equal(Te, []int{3, 6, 3}, []int{R.NRotamersForMoltenRes(1), R.NRotamersForMoltenRes(2), R.NRotamersForMoltenRes(3)})
	set := R.RotamerSetForMoltenResidue(2)
	assert.Equal(Te, 3, set.NumResidueTypes())
	for i := 1; i <= set.NumRotamers(); i++ {
		rot := set.Rotamer(i)
		assert.Equal(Te, 3, rot.Seqpos())
		//placed on the backbone of residue 3
		assert.Equal(Te, pose.Residue(3).Coords.At(1, 0), rot.Coords.At(1, 0))
		p, ok := rot.ConnectionPartner(pack.LowerConnect)
		require.True(Te, ok)
		assert.Equal(Te, 2, p.Partner)
	}
	assert.True(Te, R.Rotamer(1).HasVariant(pack.LowerTerminus))
	assert.True(Te, R.Rotamer(R.NRotamers()).HasVariant(pack.UpperTerminus))
	assert.False(Te, set.Rotamer(1).HasVariant(pack.UpperTerminus))

	//IncludeCurrent adds the pose residue.
	F.IncludeCurrent = true
	R2 := New(F, nil)
	R2.SetTask(task)
	R2.BuildRotamers(pose, sf, ng)
	assert.Equal(Te, 4, R2.NRotamersForMoltenRes(1))

	//non-protein residues only have their current conformation.
	lpose := pack.NewPose([]*pack.Residue{packtest.Residue("LEU", 0, 0), packtest.Residue("HEM", packtest.Spacing, 0)})
	ltask := pack.NewPackerTask(2)
	ltask.SetPack(1, true)
	ltask.SetPack(2, true)
	R3 := New(NewFactory(packtest.Library{N: 3}), nil)
	R3.SetTask(ltask)
	R3.BuildRotamers(lpose, sf, neighbor.Build(lpose, 6))
	assert.Equal(Te, 3, R3.NRotamersForMoltenRes(1))
	assert.Equal(Te, 1, R3.NRotamersForMoltenRes(2))
	assert.Equal(Te, pack.AALigand, R3.RotamerForMoltenRes(2, 1).AA)
}

//mirrorBuilder adds, at each position, one rotamer per stage-one rotamer of the
//other molten residue.
type mirrorBuilder struct{}

func (mirrorBuilder) DependentRotamers(view View, pose *pack.Pose, resid int) []*pack.Residue {
	m, _ := view.MoltenResForResid(resid)
	other := 3 - m
	set := view.RotamersForMoltenRes(other)
	x := pose.Residue(resid).Coords.At(1, 0)
	var ret []*pack.Residue
	for i := 1; i <= set.NumRotamers(); i++ {
		ret = append(ret, packtest.Residue("LEU", x, set.Rotamer(i).Chi[0]+0.5))
	}
	return ret
}

func TestDependentRotamers(Te *testing.T) {
	pose, task, ng, sf := setup(4, 2, 3)
	F := NewFactory(countLib(map[int]int{2: 2, 3: 3}))
	F.Dependent = mirrorBuilder{}
	R := New(F, nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	//each set sees only the first-stage rotamers of the other.
	assert.Equal(Te, 5, R.NRotamersForMoltenRes(1))
	assert.Equal(Te, 5, R.NRotamersForMoltenRes(2))
	assert.Equal(Te, 10, R.NRotamers())
	assert.InDelta(Te, 0.03+0.5, R.RotamerForMoltenRes(1, 3).Chi[0], 1e-12)
	assert.Equal(Te, 2, R.RotamerForMoltenRes(1, 3).Seqpos())
}

func TestPrepareSetsForPacking(Te *testing.T) {
	pose, task, ng, sf := setup(3, 2)
	R := New(NewFactory(packtest.Library{N: 2}), nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	R.RotamerForMoltenRes(1, 1).NbrRadius = 0
	assert.True(Te, R.PrepareSetsForPacking(pose, sf))
	assert.Greater(Te, R.RotamerForMoltenRes(1, 1).NbrRadius, 0.0)
	assert.False(Te, R.PrepareSetsForPacking(pose, plainScore{sf}))
}

//plainScore hides the RotamerPreparer implementation of the wrapped function.
type plainScore struct {
	pack.ScoreFunction
}

func TestOptions(Te *testing.T) {
	O := DefaultOptions()
	assert.False(Te, O.FinalizeEdges())
	assert.True(Te, O.FinalizeEdges(true))
	assert.True(Te, O.FinalizeEdges())
	assert.False(Te, O.Verbose())
	R := New(nil, O)
	assert.Same(Te, O, R.Options())
	assert.NotEqual(Te, New(nil, nil).ID(), R.ID())
}
