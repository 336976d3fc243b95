/*
 * energies_test.go, part of gopack.
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
	"github.com/rmera/gopack/ig"
	"github.com/rmera/gopack/neighbor"
	"github.com/rmera/gopack/packtest"
	"github.com/rmera/gopack/score"
	v3 "github.com/rmera/gopack/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

//built returns a RotamerSets with N rotamers per leucine, for a chain of n leucines
//where the residues in molten are packable.
func built(n, N int, molten ...int) (*RotamerSets, *pack.Pose, *neighbor.Graph, *score.Function) {
	pose, task, ng, sf := setup(n, molten...)
	R := New(NewFactory(packtest.Library{N: N}), nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	return R, pose, ng, sf
}

func scConstraint(r1, r2 int, d float64) score.AtomPairConstraint {
	return score.AtomPairConstraint{Res1: r1, Atom1: "SC", Res2: r2, Atom2: "SC", Distance: d, SD: 1}
}

//constraintEnergy returns the weighted energy of a single SC-SC constraint between both rotamers.
func constraintEnergy(sf *score.Function, c score.AtomPairConstraint, r1, r2 *pack.Residue) float64 {
	d := v3.Distance(r1.Coords, 5, r2.Coords, 5)
	dev := (d - c.Distance) / c.SD
	return sf.Weight(score.Constraint) * dev * dev
}

func TestOneBodyEnergies(Te *testing.T) {
	pose, task, ng, sf := setup(3, 2)
	sf.SetReference(pack.Leu, 0.7)
	cst := scConstraint(2, 3, 4.0)
	sf.AddLongRangeMethod(score.NewConstraintMethod(cst))
	R := New(NewFactory(packtest.Library{N: 3}), nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	g := ig.NewPDGraph()
	R.ComputeEnergies(pose, sf, ng, g)
	require.Equal(Te, 1, g.NumNodes())
	assert.Equal(Te, 0, g.NumEdges())
	for s := 1; s <= 3; s++ {
		rot := R.RotamerForMoltenRes(1, s)
		want := 0.7 + sf.PairEnergy(pose, rot, pose.Residue(1)) + sf.PairEnergy(pose, rot, pose.Residue(3))
		want += constraintEnergy(sf, cst, rot, pose.Residue(3))
		assert.InDelta(Te, want, g.OneBodyEnergy(1, s), tol)
	}
}

func TestPrecomputedEnergies(Te *testing.T) {
	R, pose, ng, sf := built(6, 2, 1, 2, 3, 4, 5, 6)
	g := ig.NewPDGraph()
	R.ComputeEnergies(pose, sf, ng, g)
	require.Equal(Te, 6, g.NumNodes())
	assert.Equal(Te, ng.NumEdges(), g.NumEdges())
	assert.Equal(Te, 12, g.NumEdges())
	assert.False(Te, g.EdgeExists(1, 5))
	for _, k := range g.Edges() {
		assert.True(Te, ng.HasEdge(R.ResidForMoltenRes(k.First), R.ResidForMoltenRes(k.Second)))
		assert.False(Te, g.EdgeEnergiesFinal(k.First, k.Second))
		for si := 1; si <= 2; si++ {
			for sj := 1; sj <= 2; sj++ {
				want := sf.PairEnergy(pose, R.RotamerForMoltenRes(k.First, si), R.RotamerForMoltenRes(k.Second, sj))
				assert.InDelta(Te, want, g.TwoBodyEnergy(k.First, si, k.Second, sj), tol)
				assert.InDelta(Te, want, g.TwoBodyEnergy(k.Second, sj, k.First, si), tol)
			}
		}
	}
}

func TestFinalizeAndLongRange(Te *testing.T) {
	R, pose, ng, sf := built(6, 2, 1, 2, 3, 4, 5, 6)
	far, near := scConstraint(1, 6, 10), scConstraint(2, 3, 4)
	sf.AddLongRangeMethod(score.NewConstraintMethod(far))
	sf.AddLongRangeMethod(score.NewConstraintMethod(near))
	R.Options().FinalizeEdges(true)
	g := ig.NewPDGraph()
	R.ComputeEnergies(pose, sf, ng, g)
	assert.False(Te, ng.HasEdge(1, 6))
	require.True(Te, g.EdgeExists(1, 6))
	assert.Equal(Te, 13, g.NumEdges())
	for _, k := range g.Edges() {
		assert.True(Te, g.EdgeEnergiesFinal(k.First, k.Second), "edge %d-%d", k.First, k.Second)
	}
	for si := 1; si <= 2; si++ {
		for sj := 1; sj <= 2; sj++ {
			r1, r6 := R.RotamerForMoltenRes(1, si), R.RotamerForMoltenRes(6, sj)
			assert.InDelta(Te, constraintEnergy(sf, far, r1, r6), g.TwoBodyEnergy(1, si, 6, sj), tol)
			r2, r3 := R.RotamerForMoltenRes(2, si), R.RotamerForMoltenRes(3, sj)
			want := sf.PairEnergy(pose, r2, r3) + constraintEnergy(sf, near, r2, r3)
			assert.InDelta(Te, want, g.TwoBodyEnergy(2, si, 3, sj), tol)
		}
	}
	assert.Panics(Te, func() { g.AddToTwoBodyEnergiesForEdge(1, 2, mat.NewDense(2, 2, nil)) })
}

type unknownGraph struct {
	*ig.PDGraph
}

func (unknownGraph) Kind() ig.Kind { return ig.KindUnknown }

//lyingGraph claims to be an on-the-fly graph, but it is not.
type lyingGraph struct {
	*ig.PDGraph
}

func (lyingGraph) Kind() ig.Kind { return ig.KindOnTheFly }

func TestUnknownGraph(Te *testing.T) {
	R, pose, ng, sf := built(3, 2, 1, 2)
	assert.Panics(Te, func() { R.ComputeEnergies(pose, sf, ng, unknownGraph{ig.NewPDGraph()}) })
	assert.Panics(Te, func() { R.ComputeEnergies(pose, sf, ng, lyingGraph{ig.NewPDGraph()}) })
}

func TestOTFEdges(Te *testing.T) {
	R, pose, ng, sf := built(6, 2, 1, 2, 3, 4, 5, 6)
	g := ig.NewOTFGraph()
	R.ComputeEnergies(pose, sf, ng, g)
	assert.Equal(Te, ng.NumEdges(), g.NumEdges())
	for m := 1; m <= 6; m++ {
		assert.True(Te, g.DistinguishesBackboneAndSidechain(m))
	}
	for _, k := range g.Edges() {
		assert.True(Te, g.ShortRangeInteractionsExist(k.First, k.Second))
		assert.False(Te, g.LongRangeInteractionsExist(k.First, k.Second))
		C, ok := g.SparseAAInfo(k.First, k.Second)
		require.True(Te, ok)
		assert.Equal(Te, 1, C.Count())
	}

	//residues 1 and 5 are too far apart, even if the neighbor graph says otherwise.
	far := neighbor.New(6)
	far.AddEdge(1, 5)
	g = ig.NewOTFGraph()
	R.ComputeEnergies(pose, sf, far, g)
	assert.Equal(Te, 0, g.NumEdges())
	assert.False(Te, g.EdgeExists(1, 5))

	//unless a long-range term connects them.
	sf.AddLongRangeMethod(score.NewConstraintMethod(scConstraint(1, 5, 10)))
	g = ig.NewOTFGraph()
	R.ComputeEnergies(pose, sf, far, g)
	require.True(Te, g.EdgeExists(1, 5))
	assert.True(Te, g.LongRangeInteractionsExist(1, 5))
	assert.True(Te, g.ShortRangeInteractionsExist(1, 5))
	C, ok := g.SparseAAInfo(5, 1)
	require.True(Te, ok)
	assert.Equal(Te, 1, C.Count())
}

func TestOTFLigand(Te *testing.T) {
	pose := pack.NewPose([]*pack.Residue{
		packtest.Residue("LEU", 0, 0),
		packtest.Residue("LEU", packtest.Spacing, 0),
		packtest.Residue("HEM", 2*packtest.Spacing, 0),
	})
	task := pack.NewPackerTask(3)
	for i := 1; i <= 3; i++ {
		task.SetPack(i, true)
	}
	sf := score.New(score.DefaultWeights())
	ng := neighbor.Build(pose, sf.MaxAtomicInteractionDistance())
	R := New(NewFactory(packtest.Library{N: 2}), nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	g := ig.NewOTFGraph()
	R.ComputeEnergies(pose, sf, ng, g)
	assert.True(Te, g.DistinguishesBackboneAndSidechain(1))
	assert.True(Te, g.DistinguishesBackboneAndSidechain(2))
	assert.False(Te, g.DistinguishesBackboneAndSidechain(3))
	require.True(Te, g.EdgeExists(2, 3))
	lig := R.RotamerForMoltenRes(3, 1)
	for s := 1; s <= 2; s++ {
		want := sf.PairEnergy(pose, R.RotamerForMoltenRes(2, s), lig)
		assert.InDelta(Te, want, g.TwoBodyEnergy(2, s, 3, 1), tol)
	}
}

//recordingGraph keeps the proline corrections it receives.
type recordingGraph struct {
	*ig.OTFGraph
	calls [][4]float64
}

func (G *recordingGraph) SetProCorrectionValuesForEdge(i, j, node, state int, bbNonPro, bbPro, scNonPro, scPro float64) {
	G.calls = append(G.calls, [4]float64{bbNonPro, bbPro, scNonPro, scPro})
	G.OTFGraph.SetProCorrectionValuesForEdge(i, j, node, state, bbNonPro, bbPro, scNonPro, scPro)
}

func TestProCorrectionsWithoutProline(Te *testing.T) {
	R, pose, ng, sf := built(4, 2, 1, 2, 3, 4)
	g := &recordingGraph{OTFGraph: ig.NewOTFGraph()}
	R.ComputeEnergies(pose, sf, ng, g)
	require.Equal(Te, 6, g.NumEdges())
	assert.Len(Te, g.calls, 24)
	for _, c := range g.calls {
		assert.Equal(Te, 0.0, c[1])
		assert.Equal(Te, 0.0, c[3])
	}
	//the glycine stand-in is a leucine on the same backbone.
	bb := sf.BackboneBackboneEnergy(pose, pose.Residue(1), pose.Residue(2))
	assert.InDelta(Te, bb, g.calls[0][0], tol)
}

func TestBackboneExamples(Te *testing.T) {
	pose, task, ng, sf := setup(4, 1, 2, 3)
	task.SetAllowedAAs(2, pack.Leu, pack.Gly, pack.Pro)
	task.SetAllowedAAs(3, pack.Ala, pack.Leu)
	R := New(NewFactory(packtest.Library{N: 3}), nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	gly, pro := R.backboneExamples()
	assert.Equal(Te, []int{1, 4, 2}, gly) //no glycine at 1 and 3, so the last LEU group stands in
	assert.Equal(Te, []int{0, 5, 0}, pro)
}

//TestGraphsAgree checks that, when all the rotamers of a position share its backbone, both
//kinds of graph give the same total energy for every assignment.
func TestGraphsAgree(Te *testing.T) {
	pose, task, ng, sf := setup(6, 1, 2, 3, 5)
	task.SetAllowedAAs(2, pack.Leu, pack.Gly, pack.Pro)
	task.SetAllowedAAs(3, pack.Leu, pack.Gly, pack.Pro)
	sf.SetReference(pack.Pro, 0.3)
	sf.AddLongRangeMethod(score.NewConstraintMethod(scConstraint(1, 5, 9), scConstraint(2, 3, 4)))
	R := New(NewFactory(packtest.Library{N: 3}), nil)
	R.SetTask(task)
	R.BuildRotamers(pose, sf, ng)
	pd, otf := ig.NewPDGraph(), ig.NewOTFGraph()
	R.ComputeEnergies(pose, sf, ng, pd)
	R.ComputeEnergies(pose, sf, ng, otf)
	require.Equal(Te, pd.Edges(), otf.Edges())
	require.Equal(Te, []int{3, 6, 6, 3}, []int{otf.NumStates(1), otf.NumStates(2), otf.NumStates(3), otf.NumStates(4)})
	states := make([]int, 4)
	for states[0] = 1; states[0] <= 3; states[0]++ {
		for states[1] = 1; states[1] <= 6; states[1]++ {
			for states[2] = 1; states[2] <= 6; states[2]++ {
				for states[3] = 1; states[3] <= 3; states[3]++ {
					assert.InDelta(Te, ig.AssignmentEnergy(pd, states), ig.AssignmentEnergy(otf, states), 1e-8, "states %v", states)
				}
			}
		}
	}
}
