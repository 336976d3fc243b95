/*
 * doc.go, part of gopack.
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

/*
Package pack is the main package of the gopack library. It provides the residue,
pose and task types, and the interfaces for the collaborators of the side-chain
packer: score functions, long-range energy terms and neighbor graphs.

	**gopack Capabilities**

    Builds the candidate rotamers for every flexible ("molten") residue of a
	structure and keeps the three index spaces the packer works with: residues,
	molten residues and rotamers (package rotset).

    Resolves linked residues (e.g. symmetric copies) so that all the residues in a
	class share the smallest of their rotamer sets, taking care of chain termini.

    Computes one-body and two-body energies and stores them in an interaction
	graph, either as dense precomputed tables or as sparse residue-type
	connectivity plus lazily evaluated energies (package ig).

    Precomputes the backbone corrections for glycine and proline neighbors used by
	the on-the-fly interaction graph.

    Builds neighbor graphs from neighbor-atom distances (package neighbor), provides
	a simple reference score function (package score) and summarizes and plots the
	energies stored in an interaction graph (package report).

    Writes all the rotamers built as a multi-model PDB file, optionally compressed.

The combinatorial optimizer that chooses one rotamer per residue is not part of
gopack; it only needs the ig.Graph interfaces.

All residue, molten residue and rotamer indexes in the public API are 1-based.
Lookups that can fail return an extra boolean instead of a 0 value.*/
package pack
