/*
 * atomicdata.go, part of gopack.
 *
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

package pack

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70, //the sp3 radius
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

//VdwRadius returns the van der Waals radius for the element symbol, and false
//if the element is not in the table.
func VdwRadius(symbol string) (float64, bool) {
	r, ok := symbolVdwrad[symbol]
	return r, ok
}
