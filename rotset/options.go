/*
 * options.go, part of gopack.
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

//Options contains the options for a packing run.
type Options struct {
	finalizeEdges bool //declare precomputed edges final when no long-range term connects their residues.
	verbose       bool
}

//DefaultOptions returns options that do not finalize edges and log nothing.
func DefaultOptions() *Options {
	return new(Options)
}

//Returns whether edges of precomputed graphs are declared final
//once their energies are computed, and sets it to a new value, if given.
func (O *Options) FinalizeEdges(b ...bool) bool {
	if len(b) > 0 {
		O.finalizeEdges = b[0]
	}
	return O.finalizeEdges
}

//Returns whether progress is logged,
//and sets it to a new value, if given.
func (O *Options) Verbose(b ...bool) bool {
	if len(b) > 0 {
		O.verbose = b[0]
	}
	return O.verbose
}
