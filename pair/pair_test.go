/*
 * pair_test.go, part of find-pair.
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
	"fmt"
	"math"
	"strings"
	"testing"

	findpair "github.com/jyesselm/find-pair-sub009"
)

//testBase places one standard base in space. Flip mirrors it through the
//xz plane (y and z negated), which is how the complementary strand's base
//sits in an ideal pair.
type testBase struct {
	code       byte
	resName    string
	chain      string
	resSeq     int
	dx, dy, dz float64
	flip       bool
}

func buildStructure(Te *testing.T, bases []testBase) *findpair.Structure {
	var lines []string
	serial := 1
	for _, b := range bases {
		for _, a := range findpair.Template(b.code) {
			y, z := a.Y, a.Z
			if b.flip {
				y, z = -y, -z
			}
			lines = append(lines, fmt.Sprintf("ATOM  %5d %-4s %3s %s%4d    %8.3f%8.3f%8.3f",
				serial, a.Name, b.resName, b.chain, b.resSeq, a.X+b.dx, y+b.dy, z+b.dz))
			serial++
		}
	}
	mol, err := findpair.PDBRead(strings.NewReader(strings.Join(lines, "\n")), "test.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	findpair.AssignFrames(mol, findpair.DefaultSettings())
	return mol
}

//An ideal Watson-Crick G-C pair must pass every check with at least two
//good hydrogen bonds.
func TestCanonicalGC(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'G', "DG", "A", 1, 0, 0, 0, false},
		{'C', "DC", "B", 1, 0, 0, 0, true},
	})
	set := findpair.DefaultSettings()
	c := NewValidator(mol, set).Validate(0, 1)
	if !c.Valid {
		Te.Fatalf("ideal G-C rejected: %s", c.Reason)
	}
	if c.Kind != "WC" || c.Type != "GC" {
		Te.Errorf("expected a GC WC pair, got %s/%s", c.Type, c.Kind)
	}
	if c.Good < 2 {
		Te.Errorf("expected at least 2 good hydrogen bonds, got %d", c.Good)
	}
	if c.DOrg > 0.1 {
		Te.Errorf("ideal pair origins should coincide, dorg %f", c.DOrg)
	}
	if math.Abs(c.DNN-9.09) > 0.1 {
		Te.Errorf("unexpected glycosidic N-N distance %f", c.DNN)
	}
	if c.Score >= 0 {
		Te.Errorf("an ideal WC pair should score below zero, got %f", c.Score)
	}
}

func TestCanonicalAU(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'A', "A", "A", 1, 0, 0, 0, false},
		{'U', "U", "B", 1, 0, 0, 0, true},
	})
	c := NewValidator(mol, findpair.DefaultSettings()).Validate(0, 1)
	if !c.Valid {
		Te.Fatalf("ideal A-U rejected: %s", c.Reason)
	}
	if c.Kind != "WC" {
		Te.Errorf("expected WC, got %s", c.Kind)
	}
}

//Validation must be symmetric in (i,j).
func TestValidateSymmetry(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'G', "DG", "A", 1, 0, 0, 0, false},
		{'C', "DC", "B", 1, 0.4, 0.3, 0.2, true},
	})
	v := NewValidator(mol, findpair.DefaultSettings())
	a := v.Validate(0, 1)
	b := v.Validate(1, 0)
	if a.Valid != b.Valid {
		Te.Error("validity differs between (i,j) and (j,i)")
	}
	if a.DOrg != b.DOrg || a.DNN != b.DNN || a.PlaneAngle != b.PlaneAngle {
		Te.Error("geometric values differ between (i,j) and (j,i)")
	}
	if a.Good != b.Good {
		Te.Error("hydrogen bond counts differ between (i,j) and (j,i)")
	}
}

//A pair pulled 10 Å apart must fail on the origin distance, with the
//geometry still reported.
func TestDistantPairRejected(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'G', "DG", "A", 1, 0, 0, 0, false},
		{'C', "DC", "B", 1, 10, 0, 0, true},
	})
	c := NewValidator(mol, findpair.DefaultSettings()).Validate(0, 1)
	if c.Valid {
		Te.Fatal("a pair 10 Å apart should be rejected")
	}
	if !strings.Contains(c.Reason, "dorg out of range") {
		Te.Errorf("expected a dorg failure, got %q", c.Reason)
	}
	if math.Abs(c.DOrg-10) > 0.1 {
		Te.Errorf("dorg should still be reported, got %f", c.DOrg)
	}
}

//Two stacked bases overlap in projection and must be rejected as stacked,
//not paired.
func TestStackedBasesRejected(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'G', "DG", "A", 1, 0, 0, 0, false},
		{'G', "DG", "A", 2, 0, 0, 3.4, false},
	})
	c := NewValidator(mol, findpair.DefaultSettings()).Validate(0, 1)
	if c.Valid {
		Te.Fatal("stacked bases should be rejected")
	}
	if !strings.Contains(c.Reason, "bases stacked") {
		Te.Errorf("expected a stacking failure, got %q", c.Reason)
	}
	if c.Overlap <= 0 {
		Te.Error("stacked bases should have a positive projected overlap")
	}
}

//The lower bounds of the validation windows must be enforceable without
//code changes, like the upper bounds.
func TestMinimumWindows(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'G', "DG", "A", 1, 0, 0, 0, false},
		{'C', "DC", "B", 1, 0, 0, 0, true},
	})
	set := findpair.DefaultSettings()
	if c := NewValidator(mol, set).Validate(0, 1); !c.Valid {
		Te.Fatalf("ideal pair should pass with default minimums: %s", c.Reason)
	}
	set.DOrgMin = 1.0
	c := NewValidator(mol, set).Validate(0, 1)
	if c.Valid || !strings.Contains(c.Reason, "dorg out of range") {
		Te.Errorf("coincident origins should fail a raised dorg minimum, got %q", c.Reason)
	}
	set = findpair.DefaultSettings()
	set.DVMin = 1.0
	c = NewValidator(mol, set).Validate(0, 1)
	if c.Valid || !strings.Contains(c.Reason, "dv out of range") {
		Te.Errorf("coplanar bases should fail a raised dv minimum, got %q", c.Reason)
	}
	set = findpair.DefaultSettings()
	set.PlaneAngleMin = 10.0
	c = NewValidator(mol, set).Validate(0, 1)
	if c.Valid || !strings.Contains(c.Reason, "plane angle out of range") {
		Te.Errorf("parallel planes should fail a raised angle minimum, got %q", c.Reason)
	}
}

func TestMissingFrame(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'G', "DG", "A", 1, 0, 0, 0, false},
		{'C', "DC", "B", 1, 0, 0, 0, true},
	})
	mol.Residues[1].Frame = nil
	c := NewValidator(mol, findpair.DefaultSettings()).Validate(0, 1)
	if c.Valid || c.Reason != "missing reference frame" {
		Te.Errorf("expected a missing-frame rejection, got %q", c.Reason)
	}
}

//fakeOracle drives the selector with synthetic scores. Absent entries are
//invalid candidates.
type fakeOracle struct {
	n      int
	scores map[[2]int]float64
}

func (f *fakeOracle) Len() int { return f.n }

func (f *fakeOracle) Validate(i, j int) *Candidate {
	key := [2]int{i, j}
	if i > j {
		key = [2]int{j, i}
	}
	s, ok := f.scores[key]
	if !ok {
		return &Candidate{I: i, J: j, Reason: "invalid"}
	}
	return &Candidate{I: i, J: j, Valid: true, Score: s}
}

func sortedPairs(cands []*Candidate) [][2]int {
	out := make([][2]int, 0, len(cands))
	for _, c := range cands {
		out = append(out, [2]int{c.I, c.J})
	}
	return out
}

//A good-looking pair must lose when one member has a better partner
//elsewhere: with A-B worse than B-C, only (B,C) survives and A stays
//unmatched.
func TestMutualBestMatch(Te *testing.T) {
	o := &fakeOracle{n: 3, scores: map[[2]int]float64{
		{0, 1}: 1.0,
		{1, 2}: 0.5,
	}}
	got := sortedPairs(NewSelector(o).Select())
	if len(got) != 1 || got[0] != [2]int{1, 2} {
		Te.Errorf("expected only (1,2), got %v", got)
	}
}

//Committing a pair frees its partners' rivals for the next pass.
func TestSelectIterates(Te *testing.T) {
	o := &fakeOracle{n: 4, scores: map[[2]int]float64{
		{0, 1}: 1.0,
		{1, 2}: 0.5,
		{2, 3}: 1.0,
		{0, 3}: 2.0,
	}}
	got := sortedPairs(NewSelector(o).Select())
	if len(got) != 2 {
		Te.Fatalf("expected 2 pairs, got %v", got)
	}
	if got[0] != [2]int{1, 2} || got[1] != [2]int{0, 3} {
		Te.Errorf("expected (1,2) then (0,3), got %v", got)
	}
}

//A chain of candidates with scores improving toward one end commits
//exactly one pair per pass, from the best end inward: the pool shrinks
//monotonically and the loop ends after at most n passes.
func TestSelectPoolShrinks(Te *testing.T) {
	const n = 8
	scores := make(map[[2]int]float64)
	for i := 0; i < n-1; i++ {
		scores[[2]int{i, i + 1}] = float64(n - 1 - i)
	}
	got := sortedPairs(NewSelector(&fakeOracle{n: n, scores: scores}).Select())
	want := [][2]int{{6, 7}, {4, 5}, {2, 3}, {0, 1}}
	if len(got) != len(want) {
		Te.Fatalf("expected %d pairs, got %v", len(want), got)
	}
	seen := make(map[int]bool)
	for k, p := range got {
		if p != want[k] {
			Te.Fatalf("commit order should walk in from the best end: got %v want %v", got, want)
		}
		if seen[p[0]] || seen[p[1]] {
			Te.Fatalf("residue selected twice: %v", got)
		}
		seen[p[0]] = true
		seen[p[1]] = true
	}
}

//On an exact tie the first partner seen wins, deterministically.
func TestSelectTieBreak(Te *testing.T) {
	o := &fakeOracle{n: 3, scores: map[[2]int]float64{
		{0, 1}: 1.0,
		{0, 2}: 1.0,
	}}
	for run := 0; run < 10; run++ {
		got := sortedPairs(NewSelector(o).Select())
		if len(got) != 1 || got[0] != [2]int{0, 1} {
			Te.Fatalf("tie must resolve to the first-seen partner, got %v", got)
		}
	}
}

//The concurrent score table must agree with direct validation and be
//properly mirrored.
func TestTableSymmetric(Te *testing.T) {
	o := &fakeOracle{n: 5, scores: map[[2]int]float64{
		{0, 4}: 0.25, {1, 3}: 0.75,
	}}
	s := NewSelector(o)
	s.Cpus(3)
	table := s.Table()
	for i := 0; i < 5; i++ {
		if table[i][i] != nil {
			Te.Error("the diagonal should be nil")
		}
		for j := i + 1; j < 5; j++ {
			if table[i][j] != table[j][i] {
				Te.Errorf("cells (%d,%d) and (%d,%d) should share the Candidate", i, j, j, i)
			}
			want := o.Validate(i, j)
			if table[i][j].Valid != want.Valid || table[i][j].Score != want.Score {
				Te.Errorf("table disagrees with direct validation at (%d,%d)", i, j)
			}
		}
	}
}

//End to end over real geometry: two ideal pairs come out selected, and
//frames are copied, not aliased.
func TestSelectPairs(Te *testing.T) {
	mol := buildStructure(Te, []testBase{
		{'G', "DG", "A", 1, 0, 0, 0, false},
		{'C', "DC", "B", 2, 0, 0, 0, true},
		{'A', "DA", "A", 2, 30, 0, 3.4, false},
		{'T', "DT", "B", 1, 30, 0, 3.4, true},
	})
	bps := SelectPairs(NewValidator(mol, findpair.DefaultSettings()))
	if len(bps) != 2 {
		Te.Fatalf("expected 2 base pairs, got %d", len(bps))
	}
	for _, bp := range bps {
		if !bp.Valid {
			Te.Error("selected pair not valid")
		}
		if bp.FrameI.Rot == mol.Residues[bp.I].Frame.Rot {
			Te.Error("promoted frame should be a copy, not an alias")
		}
	}
}
