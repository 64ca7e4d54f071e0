/*
 * frames.go, part of find-pair.
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
	"log"

	"github.com/jyesselm/find-pair-sub009/fit"
	"github.com/jyesselm/find-pair-sub009/geo"
)

//AssignFrames computes the reference frame of every nucleotide residue of
//mol by least-squares fitting the standard base template onto the ring
//atoms actually present. Residues that cannot be framed are marked with
//the reason and excluded from pairing; that is a normal outcome, not an
//error. Returns the number of residues framed.
//
//The calculation is a pure function of the atom positions and the
//templates: running it twice yields bit-identical frames.
func AssignFrames(mol *Structure, set *Settings) int {
	framed := 0
	for _, r := range mol.Residues {
		if frameResidue(mol, r, set) {
			framed++
		} else if r.Class != NotNucleotide {
			log.Printf("findpair: residue %s left frame-less: %s", r.Tag(), r.NoFrame)
		}
	}
	return framed
}

func frameResidue(mol *Structure, r *Residue, set *Settings) bool {
	r.Frame = nil
	r.Strategy = FitNone
	if r.Class == NotNucleotide {
		r.NoFrame = "not a nucleotide"
		return false
	}
	code := r.Code
	if code == 0 {
		//unregistered: borrow the generic template of its provisional class
		if r.Class == Purine {
			code = 'A'
		} else {
			code = 'C'
		}
	}

	res, matched, err := fitRing(mol, r, code, RingAtoms(r.Class))
	if err != "" {
		r.NoFrame = err
		return false
	}
	strategy := FitFullRing

	//Two-try fallback: a purine whose full-ring fit is poor usually has an
	//exotic ring substitution; refit on the 6-atom pyrimidine core. Only
	//the matched-atom set changes. Registered residues keep their
	//registry classification no matter what; an unregistered one may be
	//reclassified, double-checked against the presence of N9.
	if r.Class == Purine && matched == len(PurineRing) && res.RMS > set.FrameFitRMSDMax {
		if !r.Registered && mol.AtomIndex(r, "N9") < 0 {
			r.Class = Pyrimidine
			code = 'C'
		}
		res2, _, err2 := fitRing(mol, r, code, PyrimidineRing)
		if err2 == "" {
			res = res2
			strategy = FitCoreRing
		}
	}

	r.Frame = &ReferenceFrame{Rot: res.Rot, Origin: res.Trans}
	r.FrameRMS = res.RMS
	r.Strategy = strategy
	r.NoFrame = ""
	return true
}

//fitRing fits the template ring atoms named in ring onto the matching
//experimental atoms. It returns the fit, the number of atoms matched, and
//a failure reason (empty on success).
func fitRing(mol *Structure, r *Residue, code byte, ring []string) (*fit.Result, int, string) {
	exper, found := mol.SomeAtomCoords(r, ring)
	if exper == nil || len(found) < 3 {
		return nil, len(found), "insufficient ring atoms"
	}
	templ, tnames := TemplateCoords(code, found)
	if templ == nil || len(tnames) != len(found) {
		//template lacks some experimental name; refit on the common set
		if templ == nil {
			return nil, 0, "no template for base"
		}
		exper = geo.Zeros(len(tnames))
		idx := make([]int, 0, len(tnames))
		for _, n := range tnames {
			idx = append(idx, mol.AtomIndex(r, n))
		}
		exper.SomeVecs(mol.Coords, idx)
		found = tnames
	}
	res, err := fit.Superpose(exper, templ)
	if err != nil {
		return nil, len(found), "fit failed: " + err.Error()
	}
	return res, len(found), ""
}
