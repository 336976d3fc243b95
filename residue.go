/*
 * residue.go, part of gopack.
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
	"strings"

	v3 "github.com/rmera/gopack/v3"
)

//AA identifies the chemical type of a residue.
type AA int

//The canonical amino acids come first, so anything beyond NumCanonicalAAs
//(or AAUnknown) is not a canonical amino acid.
const (
	AAUnknown AA = iota
	Ala
	Cys
	Asp
	Glu
	Phe
	Gly
	His
	Ile
	Lys
	Leu
	Met
	Asn
	Pro
	Gln
	Arg
	Ser
	Thr
	Val
	Trp
	Tyr
	AALigand
)

const NumCanonicalAAs = 20

var aaNames = [...]string{"UNK", "ALA", "CYS", "ASP", "GLU", "PHE", "GLY", "HIS", "ILE", "LYS", "LEU",
	"MET", "ASN", "PRO", "GLN", "ARG", "SER", "THR", "VAL", "TRP", "TYR", "LIG"}

var aminoMap = map[string]AA{
	"ALA": Ala, "ARG": Arg, "ASN": Asn, "ASP": Asp, "CYS": Cys,
	"GLU": Glu, "GLN": Gln, "GLY": Gly, "HIS": His, "ILE": Ile,
	"LEU": Leu, "LYS": Lys, "MET": Met, "PHE": Phe, "PRO": Pro,
	"SER": Ser, "THR": Thr, "TRP": Trp, "TYR": Tyr, "VAL": Val,
	// protonation states and other names for the same residue.
	"HIE": His, "HID": His, "HIP": His, "CYX": Cys,
}

//AAFromName returns the AA for a three-letter residue name. Names that are
//not amino acids give AALigand.
func AAFromName(name string) AA {
	if aa, ok := aminoMap[strings.ToUpper(name)]; ok {
		return aa
	}
	return AALigand
}

//Canonical returns true if a is one of the 20 canonical amino acids.
func (a AA) Canonical() bool {
	return a > AAUnknown && a <= NumCanonicalAAs
}

func (a AA) String() string {
	if a < 0 || int(a) >= len(aaNames) {
		return fmt.Sprintf("AA(%d)", int(a))
	}
	return aaNames[a]
}

//Variant is a modification of a residue type, such as a chain terminus.
type Variant string

const (
	LowerTerminus Variant = "LOWER_TERMINUS"
	UpperTerminus Variant = "UPPER_TERMINUS"
)

//Connection ids for the polymer bonds of a residue.
const (
	LowerConnect = 1
	UpperConnect = 2
)

//Atom contains the per-atom information needed for packing. The coordinates
//are in the Coords matrix of the residue.
type Atom struct {
	Name     string
	Symbol   string
	Backbone bool
	Vdw      float64 //van der Waals radius in A. If 0, it is taken from the symbol.
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	return &N
}

//Radius returns the van der Waals radius of the atom
func (A *Atom) Radius() float64 {
	if A.Vdw > 0 {
		return A.Vdw
	}
	return symbolVdwrad[A.Symbol]
}

//Connection is the partner of one polymer connection of a residue.
type Connection struct {
	Partner int //resid of the connected residue
	ConnID  int //connection id on the partner
}

//Residue is a residue in a structure, or one of its candidate rotamers.
type Residue struct {
	Name      string //three-letter name
	AA        AA
	Protein   bool
	Atoms     []*Atom
	Coords    *v3.Matrix
	Chi       []float64
	NbrAtom   int     //index of the atom used to decide neighbors
	NbrRadius float64 //distance from the neighbor atom to the farthest atom, in any conformation
	seqpos    int
	variants  []Variant
	conns     [2]*Connection
}

//NewResidue returns a residue with the given name, atoms and coordinates.
//The AA and Protein fields are set from the name.
func NewResidue(name string, atoms []*Atom, coords *v3.Matrix) *Residue {
	if coords != nil && coords.NVecs() != len(atoms) {
		panic(fmt.Sprintf("Wrong number of coordinates (%d) for %d atoms", coords.NVecs(), len(atoms)))
	}
	R := &Residue{Name: strings.ToUpper(name), Atoms: atoms, Coords: coords}
	R.AA = AAFromName(name)
	R.Protein = R.AA.Canonical()
	return R
}

//Seqpos returns the position of the residue in the sequence
func (R *Residue) Seqpos() int {
	return R.seqpos
}

//SetSeqpos sets the position of the residue in the sequence
func (R *Residue) SetSeqpos(i int) {
	R.seqpos = i
}

//TypeName returns the name of the residue type including its variants.
//Rotamers with the same TypeName have the same residue type.
func (R *Residue) TypeName() string {
	if len(R.variants) == 0 {
		return R.Name
	}
	s := make([]string, 0, len(R.variants)+1)
	s = append(s, R.Name)
	for _, v := range R.variants {
		s = append(s, string(v))
	}
	return strings.Join(s, ":")
}

//HasVariant returns true if the residue has the variant v
func (R *Residue) HasVariant(v Variant) bool {
	for _, w := range R.variants {
		if w == v {
			return true
		}
	}
	return false
}

//Variants returns a copy of the variants of the residue
func (R *Residue) Variants() []Variant {
	return append([]Variant(nil), R.variants...)
}

//AddVariant adds the variant v to the residue. Terminus variants remove
//the corresponding polymer connection.
func (R *Residue) AddVariant(v Variant) {
	if R.HasVariant(v) {
		return
	}
	R.variants = append(R.variants, v)
	sort.Slice(R.variants, func(i, j int) bool { return R.variants[i] < R.variants[j] })
	switch v {
	case LowerTerminus:
		R.conns[LowerConnect-1] = nil
	case UpperTerminus:
		R.conns[UpperConnect-1] = nil
	}
}

//RemoveVariant removes the variant v from the residue, if present.
func (R *Residue) RemoveVariant(v Variant) {
	for i, w := range R.variants {
		if w == v {
			R.variants = append(R.variants[:i], R.variants[i+1:]...)
			return
		}
	}
}

//ConnectionPartner returns the partner of the connection conn (LowerConnect or UpperConnect)
//and false if the connection is not made.
func (R *Residue) ConnectionPartner(conn int) (Connection, bool) {
	if conn != LowerConnect && conn != UpperConnect {
		panic(fmt.Sprintf("Invalid connection id %d", conn))
	}
	c := R.conns[conn-1]
	if c == nil {
		return Connection{}, false
	}
	return *c, true
}

//SetConnectionPartner connects the connection conn of the residue to the connection
//partnerConn of the residue partner.
func (R *Residue) SetConnectionPartner(conn, partner, partnerConn int) {
	if conn != LowerConnect && conn != UpperConnect {
		panic(fmt.Sprintf("Invalid connection id %d", conn))
	}
	R.conns[conn-1] = &Connection{Partner: partner, ConnID: partnerConn}
}

//CopyConnections copies the connection records of src into the residue.
func (R *Residue) CopyConnections(src *Residue) {
	for i, c := range src.conns {
		if c == nil {
			R.conns[i] = nil
			continue
		}
		cc := *c
		R.conns[i] = &cc
	}
}

//Clone returns a deep copy of the residue.
func (R *Residue) Clone() *Residue {
	if R == nil {
		panic("Attempted to clone a nil residue")
	}
	N := *R
	N.Atoms = make([]*Atom, len(R.Atoms))
	for i, a := range R.Atoms {
		N.Atoms[i] = a.Copy()
	}
	if R.Coords != nil {
		N.Coords = R.Coords.Clone()
	}
	N.Chi = append([]float64(nil), R.Chi...)
	N.variants = append([]Variant(nil), R.variants...)
	N.conns = [2]*Connection{}
	N.CopyConnections(R)
	return &N
}

func (R *Residue) String() string {
	return fmt.Sprintf("%s%d", R.TypeName(), R.seqpos)
}
