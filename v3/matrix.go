/*
 * matrix.go, part of gopack.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point
//in 3D space. The name of some functions in the library reflect this.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

//DistanceSquared returns the squared distance between the ith vector of A and
//the jth vector of B. Nothing is allocated.
func DistanceSquared(A *Matrix, i int, B *Matrix, j int) float64 {
	a := A.RawRowView(i)
	b := B.RawRowView(j)
	var d2 float64
	for k := 0; k < cols; k++ {
		d := a[k] - b[k]
		d2 += d * d
	}
	return d2
}

//Distance returns the distance between the ith vector of A and the jth vector of B.
func Distance(A *Matrix, i int, B *Matrix, j int) float64 {
	return math.Sqrt(DistanceSquared(A, i, B, j))
}

func (F *Matrix) String() string {
	r := F.NVecs()
	lines := make([]string, 0, r)
	for i := 0; i < r; i++ {
		v := F.RawRowView(i)
		lines = append(lines, fmt.Sprintf("[%8.3f %8.3f %8.3f]", v[0], v[1], v[2]))
	}
	return strings.Join(lines, "\n")
}
