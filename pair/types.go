/*
 * types.go, part of find-pair.
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

//Package pair validates base-pair candidates from residue reference frames
//and selects the final set of base pairs by greedy mutual best match.
package pair

import (
	findpair "github.com/jyesselm/find-pair-sub009"
)

//HBond is one detected hydrogen bond between two bases. Conflict marks a
//bond that shares an atom with a shorter bond and therefore does not count
//as "good".
type HBond struct {
	Donor    string  `json:"donor"`
	Acceptor string  `json:"acceptor"`
	Dist     float64 `json:"dist"`
	Conflict bool    `json:"conflict,omitempty"`
}

//Candidate is the outcome of validating one residue pair. An invalid
//candidate is a normal, inspectable result carrying the failing checks;
//only valid candidates carry a meaningful Score (lower is better).
type Candidate struct {
	I          int     `json:"i"`
	J          int     `json:"j"`
	Valid      bool    `json:"valid"`
	Reason     string  `json:"reason,omitempty"` //failing checks, "; "-joined
	Type       string  `json:"bp_type"`          //the two one-letter codes, e.g. "GC"
	Kind       string  `json:"kind"`             //"WC", "wobble" or "other"
	Score      float64 `json:"score"`
	DOrg       float64 `json:"dorg"`
	DV         float64 `json:"dv"`
	PlaneAngle float64 `json:"plane_angle"` //degrees
	DNN        float64 `json:"dnn"`
	Overlap    float64 `json:"overlap"`
	HBonds     []HBond `json:"hbonds,omitempty"`
	Good       int     `json:"good_hbonds"`
}

//BasePair is a candidate promoted by the selector, carrying copies of the
//two residue frames so downstream stages never reach back into mutable
//residue state.
type BasePair struct {
	Candidate
	FrameI findpair.ReferenceFrame
	FrameJ findpair.ReferenceFrame
}

//watsonCrick lists the canonical base combinations.
var watsonCrick = map[string]bool{
	"AT": true, "TA": true, "AU": true, "UA": true,
	"GC": true, "CG": true,
}

//wobble lists the wobble combinations, inosine included.
var wobble = map[string]bool{
	"GT": true, "TG": true, "GU": true, "UG": true,
	"IU": true, "UI": true, "IA": true, "AI": true, "IC": true, "CI": true,
}

//KindOf classifies a two-letter base combination.
func KindOf(bptype string) string {
	switch {
	case watsonCrick[bptype]:
		return "WC"
	case wobble[bptype]:
		return "wobble"
	}
	return "other"
}
