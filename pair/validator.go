/*
 * validator.go, part of find-pair.
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
	"math"
	"strings"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/geo"
)

//Oracle scores residue pairs for the selector. Validator is the production
//implementation; tests may substitute synthetic ones.
type Oracle interface {
	//Validate classifies the residue pair (i,j). It must be symmetric in
	//pass/fail and geometric values.
	Validate(i, j int) *Candidate
	//Len returns the number of residues.
	Len() int
}

//Validator computes the geometric checks and the hydrogen-bond list for a
//residue pair, classifies it as valid or invalid and produces its quality
//score. It is read-only over the structure and the settings, so a single
//Validator may be used from concurrent goroutines.
type Validator struct {
	mol *findpair.Structure
	set *findpair.Settings
}

//NewValidator returns a Validator over mol with the given thresholds.
func NewValidator(mol *findpair.Structure, set *findpair.Settings) *Validator {
	return &Validator{mol: mol, set: set}
}

//Len returns the number of residues of the underlying structure.
func (V *Validator) Len() int { return len(V.mol.Residues) }

//Validate runs every geometric and hydrogen-bond check on the residue
//pair (i,j).
//All geometric quantities are filled in even when a check fails, so batch
//tooling can aggregate failure statistics.
func (V *Validator) Validate(i, j int) *Candidate {
	c := &Candidate{I: i, J: j}
	ri := V.mol.Residues[i]
	rj := V.mol.Residues[j]
	if ri.Frame == nil || rj.Frame == nil {
		c.Reason = "missing reference frame"
		return c
	}
	set := V.set
	eps := set.Eps
	fi, fj := ri.Frame, rj.Frame
	var fails []string

	//origin distance
	c.DOrg = geo.Dist(fi.Origin, fj.Origin)
	if c.DOrg < set.DOrgMin-eps || c.DOrg > set.DOrgMax+eps {
		fails = append(fails, "dorg out of range")
	}

	//plane angle between the two base normals, via their dot product.
	//Paired bases have roughly anti-parallel frames, so the magnitude of
	//the dot product is what measures coplanarity.
	zi := fi.Z()
	zj := fj.Z()
	dzz := geo.Dot(zi, zj)
	if dzz < 0 {
		zj.Scale(-1, zj)
		dzz = -dzz
	}
	if dzz > 1 {
		dzz = 1
	}
	c.PlaneAngle = math.Acos(dzz) * 180 / math.Pi
	if c.PlaneAngle < set.PlaneAngleMin-eps || c.PlaneAngle > set.PlaneAngleMax+eps {
		fails = append(fails, "plane angle out of range")
	}

	//vertical displacement along the mean normal
	zm := geo.Zeros(1)
	zm.Add(zi, zj)
	zm.Unit(zm)
	dvec := geo.Zeros(1)
	dvec.Sub(fj.Origin, fi.Origin)
	c.DV = math.Abs(geo.Dot(dvec, zm))
	if c.DV < set.DVMin-eps || c.DV > set.DVMax+eps {
		fails = append(fails, "dv out of range")
	}

	//glycosidic nitrogen distance
	gi := V.mol.GlycoIndex(ri)
	gj := V.mol.GlycoIndex(rj)
	if gi < 0 || gj < 0 {
		fails = append(fails, "missing glycosidic nitrogen")
	} else {
		c.DNN = geo.Dist(V.mol.Coord(gi), V.mol.Coord(gj))
		if c.DNN < set.DNNMin-eps || c.DNN > set.DNNMax+eps {
			fails = append(fails, "dNN out of range")
		}
	}

	//ring overlap: an appreciable projected overlap means the bases are
	//stacked, not paired
	c.Overlap = overlapArea(V.mol, ri, rj, zm)
	if c.Overlap > set.OverlapMax+eps {
		fails = append(fails, "bases stacked")
	}

	c.HBonds, c.Good = hbonds(V.mol, ri, rj, set)
	c.Type = bpType(ri, rj)
	c.Kind = KindOf(c.Type)

	if len(fails) > 0 {
		c.Reason = strings.Join(fails, "; ")
		return c
	}
	c.Valid = true
	c.Score = score(c)
	return c
}

//score is the pair quality score; lower is better.
func score(c *Candidate) float64 {
	s := c.DOrg + 2*c.DV + c.PlaneAngle/20
	if c.Good >= 2 {
		s -= 3
	} else {
		s -= float64(c.Good)
	}
	if c.Kind == "WC" {
		s -= 2
	}
	return s
}

//bpType builds the two-letter base combination; unknown codes become '?'.
func bpType(ri, rj *findpair.Residue) string {
	ci, cj := ri.Code, rj.Code
	if ci == 0 {
		ci = '?'
	}
	if cj == 0 {
		cj = '?'
	}
	return string([]byte{ci, cj})
}

//Promote turns a selected candidate into a permanent BasePair, copying the
//two residue frames by value.
func (V *Validator) Promote(c *Candidate) *BasePair {
	return &BasePair{
		Candidate: *c,
		FrameI:    V.mol.Residues[c.I].Frame.Copy(),
		FrameJ:    V.mol.Residues[c.J].Frame.Copy(),
	}
}
