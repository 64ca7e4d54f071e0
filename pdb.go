/*
 * pdb.go, part of find-pair.
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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jyesselm/find-pair-sub009/geo"
)

//PDBFileRead reads a PDB file into a Structure. Only the first MODEL is
//read, and only the blank/'A' alternate locations. An unreadable or empty
//file is a critical error; anything else is left to the downstream,
//per-residue handling.
func PDBFileRead(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewError(UnableToOpen+": "+err.Error(), path, true)
	}
	defer f.Close()
	mol, err := PDBRead(f, path)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	return mol, nil
}

//PDBRead parses PDB-format text from r. The filename is only used to
//decorate errors.
func PDBRead(r io.Reader, filename string) (*Structure, error) {
	var atoms []*Atom
	var coords []float64
	var residues []*Residue
	var cur *Residue

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break //first model only
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		if len(line) < 54 {
			return nil, NewError(WrongFormat+": line too short", filename, true)
		}
		altLoc := line[16]
		if altLoc != ' ' && altLoc != 'A' {
			continue
		}
		name := strings.TrimSpace(line[12:16])
		resName := strings.TrimSpace(line[17:20])
		chain := string(line[21])
		resSeq, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
		if err != nil {
			return nil, NewError(WrongFormat+": bad residue number", filename, true)
		}
		icode := strings.TrimSpace(string(line[26]))
		x, err1 := strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
		z, err3 := strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, NewError(WrongFormat+": bad coordinates", filename, true)
		}
		symbol := ""
		if len(line) >= 78 {
			symbol = strings.TrimSpace(line[76:78])
		}
		if symbol == "" {
			symbol = guessSymbol(name)
		}

		if cur == nil || cur.Chain != chain || cur.ID != resSeq || cur.ICode != icode || cur.Name != resName {
			cur = newResidue(resName, resSeq, chain, icode)
			residues = append(residues, cur)
		}
		atoms = append(atoms, &Atom{Name: name, Symbol: symbol, Het: strings.HasPrefix(line, "HETATM")})
		coords = append(coords, x, y, z)
		cur.AddAtom(len(atoms) - 1)
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError(err.Error(), filename, true)
	}
	if len(atoms) == 0 {
		return nil, NewError(EmptyStructure, filename, true)
	}
	cm, _ := geo.NewMatrix(coords) //built 3 by 3, always divisible
	mol, err := NewStructure(atoms, cm, residues)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	classifyUnregistered(mol)
	return mol, nil
}

//newResidue builds a residue with its classification fixed from the
//registry. Unregistered residues stay NotNucleotide here and get a
//provisional, geometry-based class in classifyUnregistered once their
//atoms are known.
func newResidue(name string, id int, chain, icode string) *Residue {
	r := &Residue{Name: name, ID: id, Chain: chain, ICode: icode}
	if e, ok := LookupResidue(name); ok {
		r.Code = e.Code
		r.Class = e.Class
		r.Registered = true
	}
	return r
}

//classifyUnregistered gives unregistered residues a provisional class from
//the atoms they contain: a residue with the pyrimidine ring core is a
//nucleotide candidate, and the presence of N9 makes it a purine. The
//two-try frame fit may still flip this class, which is allowed precisely
//because it did not come from the registry.
func classifyUnregistered(mol *Structure) {
	for _, r := range mol.Residues {
		if r.Registered {
			continue
		}
		core := 0
		for _, n := range PyrimidineRing {
			if mol.AtomIndex(r, n) >= 0 {
				core++
			}
		}
		if core < len(PyrimidineRing) {
			r.Class = NotNucleotide
			continue
		}
		if mol.AtomIndex(r, "N9") >= 0 {
			r.Class = Purine
		} else {
			r.Class = Pyrimidine
		}
	}
}

//guessSymbol recovers the element from a PDB atom name when the element
//column is absent.
func guessSymbol(name string) string {
	name = strings.TrimLeft(name, "0123456789")
	if name == "" {
		return ""
	}
	return string(name[0])
}
