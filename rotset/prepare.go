/*
 * prepare.go, part of gopack.
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

import pack "github.com/rmera/gopack"

//PrepareSetsForPacking lets the score function precompute what it needs on each
//rotamer set, if it implements pack.RotamerPreparer. It returns false if it does not.
func (R *RotamerSets) PrepareSetsForPacking(pose *pack.Pose, sf pack.ScoreFunction) bool {
	prep, ok := sf.(pack.RotamerPreparer)
	if !ok {
		return false
	}
	for _, set := range R.sets {
		prep.PrepareRotamersForPacking(pose, set)
	}
	return true
}
