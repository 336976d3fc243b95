/*
 * pose.go, part of gopack.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package pack

import "fmt"

//Pose is the structure being packed: an ordered list of residues. Residue
//indexes go from 1 to TotalResidue(). The packer never modifies a Pose.
type Pose struct {
	residues []*Residue
}

//NewPose builds a pose from the residues, in order. It sets the sequence positions
//and connects consecutive protein residues. The first and last protein residues
//of each polymer segment get terminus variants.
func NewPose(residues []*Residue) *Pose {
	P := &Pose{residues: residues}
	for i, r := range residues {
		r.SetSeqpos(i + 1)
	}
	for i, r := range residues {
		if !r.Protein {
			continue
		}
		resid := i + 1
		if i > 0 && residues[i-1].Protein {
			r.SetConnectionPartner(LowerConnect, resid-1, UpperConnect)
		} else {
			r.AddVariant(LowerTerminus)
		}
		if i < len(residues)-1 && residues[i+1].Protein {
			r.SetConnectionPartner(UpperConnect, resid+1, LowerConnect)
		} else {
			r.AddVariant(UpperTerminus)
		}
	}
	return P
}

//TotalResidue returns the number of residues in the pose
func (P *Pose) TotalResidue() int {
	return len(P.residues)
}

//Residue returns the residue resid (1-based). Panics if out of range.
func (P *Pose) Residue(resid int) *Residue {
	if resid < 1 || resid > len(P.residues) {
		panic(fmt.Sprintf("%s: %d (total %d)", ErrResidOutOfRange, resid, len(P.residues)))
	}
	return P.residues[resid-1]
}

//Place puts rot on the backbone of the residue resid: the coordinates of
//every backbone atom of rot are replaced by those of the atom with the same
//name in the pose residue. Atoms without a counterpart are not moved.
func (P *Pose) Place(rot *Residue, resid int) {
	target := P.Residue(resid)
	names := make(map[string]int, len(target.Atoms))
	for i, a := range target.Atoms {
		if a.Backbone {
			names[a.Name] = i
		}
	}
	for i, a := range rot.Atoms {
		if !a.Backbone {
			continue
		}
		j, ok := names[a.Name]
		if !ok {
			continue
		}
		copy(rot.Coords.RawRowView(i), target.Coords.RawRowView(j))
	}
}
