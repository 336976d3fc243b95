/*
 * links.go, part of gopack.
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

//resolveLinks gives every residue in a class of linked residues a copy of the rotamers
//of the member with the fewest rotamers. Each member gets its own new set.
func (R *RotamerSets) resolveLinks(pose *pack.Pose) {
	visited := make([]bool, R.totalResidue)
	expected := 0
	for _, resid := range R.moltenToResid {
		if visited[resid-1] {
			continue
		}
		copies := R.task.Equiv(resid)
		donor, fewest := 0, -1
		for _, c := range copies {
			m, ok := R.MoltenResForResid(c)
			if !ok {
				panic(fmt.Sprintf("%s: residue %d, linked to %d", pack.ErrLinkInconsistent, c, resid))
			}
			visited[c-1] = true
			n := R.sets[m-1].NumRotamers()
			if fewest < 0 || n <= fewest {
				donor, fewest = c, n
			}
		}
		expected += fewest * len(copies)
		dset, _ := R.RotamerSetForResidue(donor)
		for _, target := range copies {
			if target == donor {
				continue
			}
			R.copyLinkedSet(pose, dset, donor, target)
		}
	}
	R.logf("expected rotamer count after resolving links: %d", expected)
}

//copyLinkedSet replaces the set of target with a new set containing copies of the
//rotamers in dset, which belong to donor.
func (R *RotamerSets) copyLinkedSet(pose *pack.Pose, dset RotamerSet, donor, target int) {
	last := pose.TotalResidue()
	tres := pose.Residue(target)
	nset := R.factory.CreateRotamerSet(tres)
	nset.SetResid(target)
	for i := 1; i <= dset.NumRotamers(); i++ {
		rot := dset.Rotamer(i).Clone()
		rot.SetSeqpos(target)
		switch {
		case donor == 1 && target != 1:
			rot.RemoveVariant(pack.LowerTerminus)
			rot.SetConnectionPartner(pack.LowerConnect, target-1, pack.UpperConnect)
			rot.SetConnectionPartner(pack.UpperConnect, target+1, pack.LowerConnect)
		case donor == 1 && target == 1:
			rot.CopyConnections(tres)
		case donor == last && target != last:
			rot.RemoveVariant(pack.UpperTerminus)
			rot.SetConnectionPartner(pack.LowerConnect, target-1, pack.UpperConnect)
			rot.SetConnectionPartner(pack.UpperConnect, target+1, pack.LowerConnect)
		case donor == last && target == last:
			rot.CopyConnections(tres)
		default:
			rot.CopyConnections(tres)
		}
		if target == 1 {
			rot.AddVariant(pack.LowerTerminus)
		}
		if target == last {
			rot.AddVariant(pack.UpperTerminus)
		}
		pose.Place(rot, target)
		nset.AddRotamer(rot)
	}
	m, _ := R.MoltenResForResid(target)
	R.sets[m-1] = nset
}
