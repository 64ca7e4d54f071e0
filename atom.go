/*
 * atom.go, part of find-pair.
 *
 * Copyright 2026 The find-pair authors
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

package findpair

import (
	"fmt"
	"strings"

	"github.com/jyesselm/find-pair-sub009/geo"
)

//Atom contains the atom metadata. The coordinates are kept apart, in a
//single matrix owned by the Structure, so geometric operations can work on
//whole vector sets.
type Atom struct {
	Name   string
	Symbol string
	Het    bool //from a HETATM record
}

//Classification is the chemical class of a residue. It is fixed at
//construction from the registry lookup and, for registered residues, must
//never be rewritten by geometry fallback logic: that rewrite corrupts
//downstream base typing.
type Classification int

const (
	NotNucleotide Classification = iota
	Purine
	Pyrimidine
)

func (c Classification) String() string {
	switch c {
	case Purine:
		return "purine"
	case Pyrimidine:
		return "pyrimidine"
	}
	return "non-nucleotide"
}

//ReferenceFrame is the local orthonormal coordinate system fit to a base's
//ring atoms: a 3x3 right-handed rotation whose columns are the x, y and z
//axes, plus a 1x3 origin. The z axis is the base-plane normal. A frame is
//computed once per residue and read-only afterward.
type ReferenceFrame struct {
	Rot    *geo.Matrix //3x3
	Origin *geo.Matrix //1x3
}

//Axis returns the ith column of the rotation as a row vector.
func (f *ReferenceFrame) Axis(i int) *geo.Matrix {
	return geo.Vec(f.Rot.At(0, i), f.Rot.At(1, i), f.Rot.At(2, i))
}

//X returns the frame's x axis as a row vector.
func (f *ReferenceFrame) X() *geo.Matrix { return f.Axis(0) }

//Y returns the frame's y axis as a row vector.
func (f *ReferenceFrame) Y() *geo.Matrix { return f.Axis(1) }

//Z returns the base-plane normal as a row vector.
func (f *ReferenceFrame) Z() *geo.Matrix { return f.Axis(2) }

//Copy returns a deep copy of the frame, safe to hand to a BasePair.
func (f *ReferenceFrame) Copy() ReferenceFrame {
	return ReferenceFrame{Rot: f.Rot.CopyAll(), Origin: f.Origin.CopyAll()}
}

//Residue is one residue of the structure: identity metadata, its
//classification, the indexes of its atoms in the Structure, and the
//reference frame once computed. Frame is nil until AssignFrames runs; when
//it stays nil, NoFrame holds the reason.
type Residue struct {
	Name  string //PDB residue name, e.g. "DG" or "1MA"
	ID    int    //sequence number
	Chain string
	ICode string
	Code  byte //one-letter base code, e.g. 'G'; 0 when unknown
	Class Classification
	//Registered is true when Code/Class came from the authoritative
	//registry. Geometry fallback may reclassify only unregistered
	//residues.
	Registered bool
	atoms      []int
	Frame      *ReferenceFrame
	FrameRMS   float64
	NoFrame    string
	//Strategy records which template atoms the frame fit matched. It is
	//deliberately independent from Class: the two-try fallback changes
	//the strategy, not the classification.
	Strategy FitStrategy
}

//FitStrategy says which atom set a residue's frame was fit against.
type FitStrategy int

const (
	FitNone     FitStrategy = iota
	FitFullRing             //all ring atoms of the residue's class
	FitCoreRing             //the 6-atom pyrimidine core (purine fallback)
)

//AddAtom appends the structure-level index of one more atom.
func (R *Residue) AddAtom(i int) {
	R.atoms = append(R.atoms, i)
}

//Atoms returns the structure-level indexes of the residue's atoms.
func (R *Residue) Atoms() []int { return R.atoms }

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int { return len(R.atoms) }

//Tag returns a short residue identifier for logs and reports.
func (R *Residue) Tag() string {
	return fmt.Sprintf("%s.%s%d%s", R.Chain, R.Name, R.ID, strings.TrimSpace(R.ICode))
}

//Structure is an in-memory structure: atom metadata, one Nx3 coordinate
//matrix, and the residues that own the atoms by index.
type Structure struct {
	Atoms    []*Atom
	Coords   *geo.Matrix
	Residues []*Residue
}

//NewStructure builds a Structure and checks that coordinates and atoms
//match. A structure without atoms is a critical error.
func NewStructure(atoms []*Atom, coords *geo.Matrix, residues []*Residue) (*Structure, error) {
	if len(atoms) == 0 {
		return nil, NewError(EmptyStructure, "", true)
	}
	if coords == nil || coords.NVecs() != len(atoms) {
		return nil, NewError(fmt.Sprintf("inconsistent coordinates/atoms: %d atoms", len(atoms)), "", true)
	}
	return &Structure{Atoms: atoms, Coords: coords, Residues: residues}, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int { return len(S.Atoms) }

//Atom returns the ith atom. Panics if out of range, as this would be a
//programming error.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("Structure: requested atom out of bounds")
	}
	return S.Atoms[i]
}

//Coord returns a view of the coordinates of atom i.
func (S *Structure) Coord(i int) *geo.Matrix {
	return S.Coords.VecView(i)
}

//AtomIndex returns the structure-level index of the named atom of R, or -1
//when the residue has no such atom. Names are compared after trimming.
func (S *Structure) AtomIndex(R *Residue, name string) int {
	for _, i := range R.atoms {
		if strings.TrimSpace(S.Atoms[i].Name) == name {
			return i
		}
	}
	return -1
}

//SomeAtomCoords extracts the coordinates of the named atoms of R that are
//actually present, returning the coordinate set and the matching names in
//template order.
func (S *Structure) SomeAtomCoords(R *Residue, names []string) (*geo.Matrix, []string) {
	idx := make([]int, 0, len(names))
	found := make([]string, 0, len(names))
	for _, n := range names {
		if i := S.AtomIndex(R, n); i >= 0 {
			idx = append(idx, i)
			found = append(found, n)
		}
	}
	if len(idx) == 0 {
		return nil, nil
	}
	c := geo.Zeros(len(idx))
	c.SomeVecs(S.Coords, idx)
	return c, found
}

//GlycoIndex returns the index of the residue's glycosidic nitrogen: N9 for
//purines and N1 for pyrimidines. Exotic fused rings name their N9 analog
//differently, so for purines any nitrogen whose name contains a "9" is
//accepted as a stand-in before giving up. Returns -1 when missing.
func (S *Structure) GlycoIndex(R *Residue) int {
	if R.Class == Purine {
		if i := S.AtomIndex(R, "N9"); i >= 0 {
			return i
		}
		for _, i := range R.atoms {
			n := strings.TrimSpace(S.Atoms[i].Name)
			if strings.HasPrefix(n, "N") && strings.Contains(n, "9") {
				return i
			}
		}
		return -1
	}
	return S.AtomIndex(R, "N1")
}
