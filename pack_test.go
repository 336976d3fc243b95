/*
 * pack_test.go, part of gopack.
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

package pack_test

import (
	"errors"
	"testing"

	pack "github.com/rmera/gopack"
	"github.com/rmera/gopack/packtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAA(Te *testing.T) {
	assert.Equal(Te, pack.His, pack.AAFromName("his"))
	assert.Equal(Te, pack.His, pack.AAFromName("HIE"))
	assert.Equal(Te, pack.AALigand, pack.AAFromName("HOH"))
	assert.True(Te, pack.Tyr.Canonical())
	assert.False(Te, pack.AALigand.Canonical())
	assert.False(Te, pack.AAUnknown.Canonical())
	assert.Equal(Te, "PRO", pack.Pro.String())
	assert.Equal(Te, "AA(99)", pack.AA(99).String())
}

func TestResidue(Te *testing.T) {
	r := packtest.Residue("LEU", 0, 0)
	assert.Equal(Te, pack.Leu, r.AA)
	assert.True(Te, r.Protein)
	assert.Equal(Te, "LEU", r.TypeName())
	r.AddVariant(pack.UpperTerminus)
	r.AddVariant(pack.UpperTerminus)
	r.AddVariant(pack.LowerTerminus)
	assert.Len(Te, r.Variants(), 2)
	assert.Equal(Te, "LEU:LOWER_TERMINUS:UPPER_TERMINUS", r.TypeName())
	r.RemoveVariant(pack.LowerTerminus)
	assert.Equal(Te, "LEU:UPPER_TERMINUS", r.TypeName())

	r.SetConnectionPartner(pack.LowerConnect, 4, pack.UpperConnect)
	r.SetSeqpos(5)
	c := r.Clone()
	assert.Equal(Te, r.TypeName(), c.TypeName())
	assert.Equal(Te, 5, c.Seqpos())
	c.SetConnectionPartner(pack.LowerConnect, 9, pack.UpperConnect)
	c.Coords.Set(0, 0, 100)
	c.Chi[0] = 3
	c.Atoms[0].Name = "X"
	p, ok := r.ConnectionPartner(pack.LowerConnect)
	require.True(Te, ok)
	assert.Equal(Te, 4, p.Partner)
	assert.NotEqual(Te, 100.0, r.Coords.At(0, 0))
	assert.Equal(Te, 0.0, r.Chi[0])
	assert.Equal(Te, "N", r.Atoms[0].Name)
	//terminus variants remove the connection
	c.AddVariant(pack.LowerTerminus)
	_, ok = c.ConnectionPartner(pack.LowerConnect)
	assert.False(Te, ok)
	assert.Panics(Te, func() { r.ConnectionPartner(3) })

	assert.Equal(Te, 1.70, r.Atoms[1].Radius())
	a := &pack.Atom{Name: "X", Symbol: "C", Vdw: 2.5}
	assert.Equal(Te, 2.5, a.Radius())
	rad, ok := pack.VdwRadius("Zn")
	assert.True(Te, ok)
	assert.Equal(Te, 2.02, rad)
	assert.Equal(Te, "LEU:UPPER_TERMINUS5", r.String())
}

func TestPose(Te *testing.T) {
	pose := pack.NewPose([]*pack.Residue{
		packtest.Residue("LEU", 0, 0),
		packtest.Residue("LEU", packtest.Spacing, 0),
		packtest.Residue("HEM", 2*packtest.Spacing, 0),
		packtest.Residue("ALA", 3*packtest.Spacing, 0),
	})
	require.Equal(Te, 4, pose.TotalResidue())
	r1, r2, r4 := pose.Residue(1), pose.Residue(2), pose.Residue(4)
	assert.True(Te, r1.HasVariant(pack.LowerTerminus))
	assert.False(Te, r1.HasVariant(pack.UpperTerminus))
	up, ok := r1.ConnectionPartner(pack.UpperConnect)
	require.True(Te, ok)
	assert.Equal(Te, pack.Connection{Partner: 2, ConnID: pack.LowerConnect}, up)
	assert.True(Te, r2.HasVariant(pack.UpperTerminus))
	assert.True(Te, r4.HasVariant(pack.LowerTerminus))
	assert.True(Te, r4.HasVariant(pack.UpperTerminus))
	assert.Empty(Te, pose.Residue(3).Variants())
	assert.Equal(Te, 3, pose.Residue(3).Seqpos())
	assert.Panics(Te, func() { pose.Residue(0) })
	assert.Panics(Te, func() { pose.Residue(5) })

	rot := packtest.Residue("LEU", 100, 0)
	pose.Place(rot, 2)
	assert.Equal(Te, packtest.Spacing, rot.Coords.At(1, 0))
	assert.Equal(Te, r2.Coords.At(3, 1), rot.Coords.At(3, 1))
	assert.Equal(Te, 101.5, rot.Coords.At(5, 0)) //side chain atoms stay
}

func TestPackerTask(Te *testing.T) {
	T := pack.NewPackerTask(8)
	T.SetPack(2, true)
	T.SetAllowedAAs(5, pack.Gly, pack.Ala)
	T.SetPack(7, true)
	T.SetPack(7, false)
	assert.Equal(Te, 2, T.NumToBePacked())
	assert.Equal(Te, 8, T.TotalResidue())
	assert.True(Te, T.PackResidue(5))
	assert.Equal(Te, []pack.AA{pack.Gly, pack.Ala}, T.AllowedAAs(5))
	assert.Nil(Te, T.AllowedAAs(2))
	assert.False(Te, T.RotamerLinksExist())
	assert.Equal(Te, []int{3}, T.Equiv(3))
	assert.Panics(Te, func() { T.PackResidue(9) })

	L := pack.NewRotamerLinks(8)
	L.Link(7, 2)
	L.Link(5, 7)
	T.SetRotamerLinks(L)
	assert.True(Te, T.RotamerLinksExist())
	assert.Equal(Te, []int{2, 5, 7}, T.Equiv(5))
	assert.Equal(Te, []int{2, 5, 7}, T.Equiv(2))
	assert.Equal(Te, []int{4}, T.Equiv(4))
	assert.Panics(Te, func() { L.Link(1, 9) })
	assert.NotPanics(Te, func() { L.Link() })
	assert.NotPanics(Te, func() { L.Link(4) })
	assert.Equal(Te, []int{4}, T.Equiv(4))
	assert.Panics(Te, func() { L.Link(0) })
	T.SetRotamerLinks(nil)
	assert.False(Te, T.RotamerLinksExist())
}

func TestErrors(Te *testing.T) {
	err := pack.NewError("can't write", "out.pdb", "DumpPDB")
	assert.Equal(Te, "gopack: file out.pdb: can't write (DumpPDB)", err.Error())
	assert.True(Te, err.Critical())
	assert.Equal(Te, "out.pdb", err.FileName())
	dec := pack.ErrDecorate(err, "caller")
	assert.Equal(Te, "gopack: file out.pdb: can't write (DumpPDB<-caller)", dec.Error())
	assert.Nil(Te, pack.ErrDecorate(nil, "caller"))
	wrapped := pack.ErrDecorate(errors.New("plain"), "caller")
	assert.Equal(Te, "gopack: plain (caller)", wrapped.Error())
	assert.Equal(Te, "gopack: residue is not molten", pack.ErrNotMolten.Error())
}
