/*
 * task.go, part of gopack.
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

import (
	"fmt"
	"sort"
)

//PackerTask is a simple implementation of Task.
type PackerTask struct {
	pack    []bool
	allowed [][]AA
	links   *RotamerLinks
}

//NewPackerTask returns a task for a structure with total residues, none of them packable.
func NewPackerTask(total int) *PackerTask {
	T := new(PackerTask)
	T.pack = make([]bool, total)
	T.allowed = make([][]AA, total)
	return T
}

func (T *PackerTask) check(resid int) {
	if resid < 1 || resid > len(T.pack) {
		panic(fmt.Sprintf("%s: %d (total %d)", ErrResidOutOfRange, resid, len(T.pack)))
	}
}

//SetPack marks the residue resid as packable or fixed.
func (T *PackerTask) SetPack(resid int, pack bool) {
	T.check(resid)
	T.pack[resid-1] = pack
}

//SetAllowedAAs sets the amino acids allowed at resid and marks it packable.
func (T *PackerTask) SetAllowedAAs(resid int, aas ...AA) {
	T.SetPack(resid, true)
	T.allowed[resid-1] = append([]AA(nil), aas...)
}

func (T *PackerTask) PackResidue(resid int) bool {
	T.check(resid)
	return T.pack[resid-1]
}

func (T *PackerTask) NumToBePacked() int {
	n := 0
	for _, v := range T.pack {
		if v {
			n++
		}
	}
	return n
}

func (T *PackerTask) TotalResidue() int {
	return len(T.pack)
}

func (T *PackerTask) AllowedAAs(resid int) []AA {
	T.check(resid)
	return T.allowed[resid-1]
}

//SetRotamerLinks sets the links between residues. A nil value removes them.
func (T *PackerTask) SetRotamerLinks(L *RotamerLinks) {
	T.links = L
}

func (T *PackerTask) RotamerLinksExist() bool {
	return T.links != nil
}

func (T *PackerTask) Equiv(resid int) []int {
	T.check(resid)
	if T.links == nil {
		return []int{resid}
	}
	return T.links.Equiv(resid)
}

//RotamerLinks keeps equivalence classes of residues that must choose the same rotamer,
//for instance, the copies of one residue in a symmetric assembly.
type RotamerLinks struct {
	parent []int //union-find forest, 0-based
}

//NewRotamerLinks returns links for total residues, where each residue is only linked to itself.
func NewRotamerLinks(total int) *RotamerLinks {
	L := &RotamerLinks{parent: make([]int, total)}
	for i := range L.parent {
		L.parent[i] = i
	}
	return L
}

func (L *RotamerLinks) find(i int) int {
	for L.parent[i] != i {
		L.parent[i] = L.parent[L.parent[i]]
		i = L.parent[i]
	}
	return i
}

//Link puts all the given residues in the same equivalence class.
func (L *RotamerLinks) Link(resids ...int) {
	for _, r := range resids {
		if r < 1 || r > len(L.parent) {
			panic(fmt.Sprintf("%s: %d (total %d)", ErrResidOutOfRange, r, len(L.parent)))
		}
	}
	if len(resids) < 2 {
		return
	}
	for _, r := range resids[1:] {
		a := L.find(resids[0] - 1)
		b := L.find(r - 1)
		if a != b {
			L.parent[b] = a
		}
	}
}

//Equiv returns, in ascending order, the residues in the class of resid, resid included.
func (L *RotamerLinks) Equiv(resid int) []int {
	root := L.find(resid - 1)
	ret := make([]int, 0, 2)
	for i := range L.parent {
		if L.find(i) == root {
			ret = append(ret, i+1)
		}
	}
	sort.Ints(ret)
	return ret
}
