/*
 * connectivity.go, part of gopack.
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

package ig

import (
	"fmt"
	"strings"
)

//Connectivity is a dense boolean matrix. For an edge (i,j) of an OTFGraph,
//element (l,k) is true if the residue-type group l+1 of j can interact with
//the group k+1 of i. Indexes are 0-based, as in gonum matrices.
type Connectivity struct {
	rows, cols int
	d          []bool
}

//NewConnectivity returns an all-false rows x cols matrix.
func NewConnectivity(rows, cols int) *Connectivity {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("gopack/ig: negative connectivity dimensions %dx%d", rows, cols))
	}
	return &Connectivity{rows: rows, cols: cols, d: make([]bool, rows*cols)}
}

func (C *Connectivity) Dims() (int, int) {
	return C.rows, C.cols
}

func (C *Connectivity) index(r, c int) int {
	if r < 0 || r >= C.rows || c < 0 || c >= C.cols {
		panic(fmt.Sprintf("gopack/ig: connectivity index (%d,%d) out of range for %dx%d", r, c, C.rows, C.cols))
	}
	return r*C.cols + c
}

func (C *Connectivity) At(r, c int) bool {
	return C.d[C.index(r, c)]
}

func (C *Connectivity) Set(r, c int, v bool) {
	C.d[C.index(r, c)] = v
}

//Fill sets all the elements to v.
func (C *Connectivity) Fill(v bool) {
	for i := range C.d {
		C.d[i] = v
	}
}

//Count returns the number of true elements.
func (C *Connectivity) Count() int {
	n := 0
	for _, v := range C.d {
		if v {
			n++
		}
	}
	return n
}

//Clone returns a copy of the matrix.
func (C *Connectivity) Clone() *Connectivity {
	ret := NewConnectivity(C.rows, C.cols)
	copy(ret.d, C.d)
	return ret
}

func (C *Connectivity) String() string {
	var b strings.Builder
	for r := 0; r < C.rows; r++ {
		for c := 0; c < C.cols; c++ {
			if C.At(r, c) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
