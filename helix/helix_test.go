/*
 * helix_test.go, part of find-pair.
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

package helix

import (
	"math"
	"testing"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/geo"
	"github.com/jyesselm/find-pair-sub009/pair"
)

//duplexResidues is a minimal antiparallel duplex: chain A runs 1,2 and
//chain B runs 1,2, with A1-B2 and A2-B1 paired.
func duplexResidues() *findpair.Structure {
	return &findpair.Structure{Residues: []*findpair.Residue{
		{Name: "DG", ID: 1, Chain: "A"},
		{Name: "DA", ID: 2, Chain: "A"},
		{Name: "DT", ID: 1, Chain: "B"},
		{Name: "DC", ID: 2, Chain: "B"},
	}}
}

func upFrame(twistDeg, z float64) findpair.ReferenceFrame {
	rot := geo.Rotator(geo.Vec(0, 0, 1), twistDeg*math.Pi/180)
	return findpair.ReferenceFrame{Rot: rot, Origin: geo.Vec(0, 0, z)}
}

func downFrame(twistDeg, z float64) findpair.ReferenceFrame {
	flip := geo.Rotator(geo.Vec(1, 0, 0), math.Pi)
	rz := geo.Rotator(geo.Vec(0, 0, 1), twistDeg*math.Pi/180)
	rot := geo.Zeros(3)
	rot.Mul(rz, flip)
	return findpair.ReferenceFrame{Rot: rot, Origin: geo.Vec(0, 0, z)}
}

func duplexPairs(z2 float64) []*pair.BasePair {
	return []*pair.BasePair{
		{Candidate: pair.Candidate{I: 0, J: 3, Valid: true},
			FrameI: upFrame(0, 0), FrameJ: downFrame(0, 0)},
		{Candidate: pair.Candidate{I: 1, J: 2, Valid: true},
			FrameI: upFrame(36, z2), FrameJ: downFrame(36, z2)},
	}
}

//Two stacked pairs on continuous strands must come out as one helix, in
//ascending order, nothing flipped.
func TestOrganizeOneHelix(Te *testing.T) {
	mol := duplexResidues()
	bps := duplexPairs(3.4)
	hs := Organize(mol, bps, findpair.DefaultSettings())
	if len(hs) != 1 {
		Te.Fatalf("expected 1 helix, got %d", len(hs))
	}
	h := hs[0]
	if len(h.Pairs) != 2 || h.Circular || h.Broken {
		Te.Fatalf("unexpected helix shape: %+v", h)
	}
	if h.Pairs[0].Index != 0 || h.Pairs[1].Index != 1 {
		Te.Errorf("pairs out of order: %+v", h.Pairs)
	}
	if h.Pairs[0].Flipped || h.Pairs[1].Flipped {
		Te.Error("nothing should be flipped in a consistent duplex")
	}
}

//With the origins descending against the pair normals the run must be
//reversed, so the emitted order still walks 5'→3' along the normals.
func TestOrganizeReverses(Te *testing.T) {
	mol := duplexResidues()
	bps := duplexPairs(-3.4)
	hs := Organize(mol, bps, findpair.DefaultSettings())
	if len(hs) != 1 {
		Te.Fatalf("expected 1 helix, got %d", len(hs))
	}
	h := hs[0]
	if h.Pairs[0].Index != 1 || h.Pairs[1].Index != 0 {
		Te.Errorf("expected the reversed order, got %+v", h.Pairs)
	}
}

//A pair stored with its strands swapped gets its Flipped flag set instead
//of breaking the run.
func TestOrganizeFlips(Te *testing.T) {
	mol := duplexResidues()
	bps := duplexPairs(3.4)
	bps[1].I, bps[1].J = bps[1].J, bps[1].I
	bps[1].FrameI, bps[1].FrameJ = bps[1].FrameJ, bps[1].FrameI
	hs := Organize(mol, bps, findpair.DefaultSettings())
	if len(hs) != 1 || len(hs[0].Pairs) != 2 {
		Te.Fatalf("expected 1 helix of 2 pairs, got %+v", hs)
	}
	var flipped *OrientedPair
	for k := range hs[0].Pairs {
		if hs[0].Pairs[k].Index == 1 {
			flipped = &hs[0].Pairs[k]
		}
	}
	if flipped == nil || !flipped.Flipped {
		Te.Error("the swapped pair should carry the Flipped flag")
	}
}

//Sequence-adjacent pairs with a large origin gap must split into separate
//helices, both marked broken.
func TestOrganizeHelixBreak(Te *testing.T) {
	mol := duplexResidues()
	bps := duplexPairs(10)
	hs := Organize(mol, bps, findpair.DefaultSettings())
	if len(hs) != 2 {
		Te.Fatalf("expected 2 helices across the break, got %d", len(hs))
	}
	for _, h := range hs {
		if !h.Broken {
			Te.Error("both fragments should be marked broken")
		}
		if len(h.Pairs) != 1 {
			Te.Errorf("expected single-pair fragments, got %d", len(h.Pairs))
		}
	}
}

//Residues on different chains, or non-consecutive, are never linked.
func TestOrganizeUnlinked(Te *testing.T) {
	mol := &findpair.Structure{Residues: []*findpair.Residue{
		{Name: "DG", ID: 1, Chain: "A"},
		{Name: "DA", ID: 5, Chain: "A"}, //gap in numbering
		{Name: "DT", ID: 1, Chain: "B"},
		{Name: "DC", ID: 2, Chain: "B"},
	}}
	bps := duplexPairs(3.4)
	hs := Organize(mol, bps, findpair.DefaultSettings())
	if len(hs) != 2 {
		Te.Fatalf("expected 2 separate helices, got %d", len(hs))
	}
}

//An ideal B-like step: 36 degrees of twist and 3.4 Å of rise, nothing
//else.
func TestStepTwistRise(Te *testing.T) {
	p := Step(upFrame(0, 0), upFrame(36, 3.4))
	if math.Abs(p.Twist-36) > 1e-9 {
		Te.Errorf("twist: got %f want 36", p.Twist)
	}
	if math.Abs(p.Rise-3.4) > 1e-9 {
		Te.Errorf("rise: got %f want 3.4", p.Rise)
	}
	for _, v := range []float64{p.Shift, p.Slide, p.Tilt, p.Roll} {
		if math.Abs(v) > 1e-9 {
			Te.Errorf("expected a pure twist/rise step, got %+v", p)
		}
	}
	if math.Abs(p.HTwist-36) > 1e-9 || math.Abs(p.HRise-3.4) > 1e-9 {
		Te.Errorf("helical twist/rise: got %f/%f", p.HTwist, p.HRise)
	}
	for _, v := range []float64{p.XDisp, p.YDisp, p.Incl, p.Tip} {
		if math.Abs(v) > 1e-6 {
			Te.Errorf("expected the helical axis through the origin, got %+v", p)
		}
	}
}

//A rotation about the shared x axis is pure tilt.
func TestStepTilt(Te *testing.T) {
	rot := geo.Rotator(geo.Vec(1, 0, 0), 5*math.Pi/180)
	f2 := findpair.ReferenceFrame{Rot: rot, Origin: geo.Vec(0, 0, 3.4)}
	p := Step(upFrame(0, 0), f2)
	if math.Abs(math.Abs(p.Tilt)-5) > 1e-6 {
		Te.Errorf("tilt: got %f want ±5", p.Tilt)
	}
	if math.Abs(p.Roll) > 1e-6 {
		Te.Errorf("roll should vanish, got %f", p.Roll)
	}
}

//A rotation about the shared y axis is pure roll.
func TestStepRoll(Te *testing.T) {
	rot := geo.Rotator(geo.Vec(0, 1, 0), 5*math.Pi/180)
	f2 := findpair.ReferenceFrame{Rot: rot, Origin: geo.Vec(0, 0, 3.4)}
	p := Step(upFrame(0, 0), f2)
	if math.Abs(math.Abs(p.Roll)-5) > 1e-6 {
		Te.Errorf("roll: got %f want ±5", p.Roll)
	}
	if math.Abs(p.Tilt) > 1e-6 {
		Te.Errorf("tilt should vanish, got %f", p.Tilt)
	}
}

//A coincident frame produces the null step.
func TestStepIdentity(Te *testing.T) {
	p := Step(upFrame(0, 0), upFrame(0, 0))
	for _, v := range []float64{p.Shift, p.Slide, p.Rise, p.Tilt, p.Roll, p.Twist} {
		if math.Abs(v) > 1e-9 {
			Te.Errorf("identity step should be all zero, got %+v", p)
		}
	}
}
