/*
 * histogram.go, part of gopack.
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

package report

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//Histogram counts energies in bins. Bin i goes from dividers[i] (included)
//to dividers[i+1] (excluded). Values outside the dividers are only counted in Total.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	counts     []float64
}

//Dividers returns n+1 evenly spaced dividers for n bins that cover all of data.
//The last divider is moved slightly up so the maximum falls in the last bin.
func Dividers(data []float64, n int) []float64 {
	if n < 1 {
		panic(fmt.Sprintf("gopack/report: %d bins requested", n))
	}
	lo, hi := 0.0, 1.0
	if len(data) > 0 {
		lo, hi = floats.Min(data), floats.Max(data)
	}
	if hi == lo {
		hi = lo + 1
	}
	d := floats.Span(make([]float64, n+1), lo, hi)
	d[n] = math.Nextafter(hi, math.Inf(1))
	return d
}

//NewHistogram returns a histogram with the given dividers, filled with data (which can be nil).
//The dividers are copied.
func NewHistogram(dividers, data []float64) *Histogram {
	if len(dividers) < 2 {
		panic("gopack/report: a histogram needs at least two dividers")
	}
	H := &Histogram{dividers: append([]float64(nil), dividers...)}
	H.counts = make([]float64, len(dividers)-1)
	H.AddData(data...)
	return H
}

//AddData adds the given points to the histogram.
func (H *Histogram) AddData(points ...float64) {
	norm := H.normalized
	if norm {
		H.UnNormalize()
	}
	for _, v := range points {
		for j := 0; j < len(H.dividers)-1; j++ {
			if H.dividers[j] <= v && v < H.dividers[j+1] {
				H.counts[j]++
				break
			}
		}
	}
	H.total += len(points)
	if norm {
		H.Normalize()
	}
}

//Total returns the number of points added.
func (H *Histogram) Total() int {
	return H.total
}

func (H *Histogram) Normalized() bool {
	return H.normalized
}

//Normalize divides all counts by the number of points added.
func (H *Histogram) Normalize() {
	if H.normalized || H.total == 0 {
		return
	}
	floats.Scale(1/float64(H.total), H.counts)
	H.normalized = true
}

//UnNormalize undoes Normalize.
func (H *Histogram) UnNormalize() {
	if !H.normalized {
		return
	}
	floats.Scale(float64(H.total), H.counts)
	H.normalized = false
}

//Counts returns a copy of the counts.
func (H *Histogram) Counts() []float64 {
	return append([]float64(nil), H.counts...)
}

//Dividers returns a copy of the dividers.
func (H *Histogram) Dividers() []float64 {
	return append([]float64(nil), H.dividers...)
}

//String returns a two-line representation: the bins and their counts.
func (H *Histogram) String() string {
	d := make([]string, 0, len(H.counts))
	c := make([]string, 0, len(H.counts))
	for i, v := range H.counts {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", H.dividers[i], H.dividers[i+1]))
		c = append(c, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("Normalized: %v, Total: %d\n%s\n%s", H.normalized, H.total, strings.Join(d, " "), strings.Join(c, " "))
}
