/*
 * hbond.go, part of find-pair.
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

package pair

import (
	"sort"
	"strings"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/geo"
)

//hbondAtoms returns the indexes of the base nitrogen and oxygen atoms of r
//that can donate or accept a hydrogen bond. Sugar atoms (primed names) and
//phosphate oxygens are excluded.
func hbondAtoms(mol *findpair.Structure, r *findpair.Residue) []int {
	var out []int
	for _, i := range r.Atoms() {
		n := strings.TrimSpace(mol.Atom(i).Name)
		if n == "" || strings.Contains(n, "'") || strings.Contains(n, "*") {
			continue
		}
		if n[0] != 'N' && n[0] != 'O' {
			continue
		}
		if strings.HasPrefix(n, "OP") {
			continue
		}
		out = append(out, i)
	}
	return out
}

//hbonds detects the hydrogen bonds between the bases of ri and rj: every
//donor/acceptor name combination whose distance falls inside the settings
//window becomes a candidate bond. When two candidates share an atom the
//shorter one wins and the longer one is kept, flagged as a conflict; only
//conflict-free bonds count as good. The list comes back sorted by
//distance, so it is identical for (i,j) and (j,i).
func hbonds(mol *findpair.Structure, ri, rj *findpair.Residue, set *findpair.Settings) ([]HBond, int) {
	ai := hbondAtoms(mol, ri)
	aj := hbondAtoms(mol, rj)
	type cand struct {
		i, j int
		d    float64
	}
	var cands []cand
	for _, a := range ai {
		for _, b := range aj {
			d := geo.Dist(mol.Coord(a), mol.Coord(b))
			if d >= set.HBDistMin-set.Eps && d <= set.HBDistMax+set.Eps {
				cands = append(cands, cand{a, b, d})
			}
		}
	}
	sort.Slice(cands, func(a, b int) bool { return cands[a].d < cands[b].d })
	usedI := make(map[int]bool)
	usedJ := make(map[int]bool)
	var out []HBond
	good := 0
	for _, c := range cands {
		hb := HBond{
			Donor:    strings.TrimSpace(mol.Atom(c.i).Name),
			Acceptor: strings.TrimSpace(mol.Atom(c.j).Name),
			Dist:     c.d,
		}
		if usedI[c.i] || usedJ[c.j] {
			hb.Conflict = true
		} else {
			usedI[c.i] = true
			usedJ[c.j] = true
			good++
		}
		out = append(out, hb)
	}
	return out, good
}
