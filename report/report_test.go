/*
 * report_test.go, part of find-pair.
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

package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/geo"
	"github.com/jyesselm/find-pair-sub009/helix"
	"github.com/jyesselm/find-pair-sub009/pair"
)

func testDoc() (*findpair.Structure, []*pair.BasePair, []*helix.Helix) {
	mol := &findpair.Structure{Residues: []*findpair.Residue{
		{Name: "DG", ID: 1, Chain: "A", Code: 'G'},
		{Name: "DA", ID: 2, Chain: "A", Code: 'A'},
		{Name: "DT", ID: 1, Chain: "B", Code: 'T'},
		{Name: "DC", ID: 2, Chain: "B", Code: 'C'},
	}}
	up := func(deg, z float64) findpair.ReferenceFrame {
		return findpair.ReferenceFrame{
			Rot:    geo.Rotator(geo.Vec(0, 0, 1), deg*math.Pi/180),
			Origin: geo.Vec(0, 0, z),
		}
	}
	for i, r := range mol.Residues {
		f := up(0, float64(i))
		r.Frame = &f
	}
	bps := []*pair.BasePair{
		{Candidate: pair.Candidate{I: 0, J: 3, Valid: true, Type: "GC", Kind: "WC", Score: -4.5,
			HBonds: []pair.HBond{{Donor: "N1", Acceptor: "N3", Dist: 2.9}}, Good: 3},
			FrameI: up(0, 0), FrameJ: up(0, 0)},
		{Candidate: pair.Candidate{I: 1, J: 2, Valid: true, Type: "AT", Kind: "WC", Score: -3.9, Good: 2},
			FrameI: up(36, 3.4), FrameJ: up(36, 3.4)},
	}
	hs := []*helix.Helix{{Pairs: []helix.OrientedPair{{Index: 0}, {Index: 1}}}}
	return mol, bps, hs
}

func TestBuild(Te *testing.T) {
	mol, bps, hs := testDoc()
	doc := Build(mol, bps, hs, findpair.DefaultSettings())
	if doc.Total != 4 || doc.Framed != 4 {
		Te.Errorf("wrong residue counts: %d/%d", doc.Framed, doc.Total)
	}
	if len(doc.Pairs) != 2 || len(doc.Helices) != 1 {
		Te.Fatalf("wrong row counts: %d pairs, %d helices", len(doc.Pairs), len(doc.Helices))
	}
	if doc.Pairs[0].ResI != "A.DG1" || doc.Pairs[0].ResJ != "B.DC2" {
		Te.Errorf("wrong residue tags: %s %s", doc.Pairs[0].ResI, doc.Pairs[0].ResJ)
	}
	h := doc.Helices[0]
	if len(h.Steps) != 1 {
		Te.Fatalf("expected 1 step row, got %d", len(h.Steps))
	}
	if math.Abs(h.Steps[0].P.Twist-36) > 1e-9 || math.Abs(h.Steps[0].P.Rise-3.4) > 1e-9 {
		Te.Errorf("wrong step parameters: %+v", h.Steps[0].P)
	}
}

func TestJSONRoundTrip(Te *testing.T) {
	mol, bps, hs := testDoc()
	doc := Build(mol, bps, hs, findpair.DefaultSettings())
	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		Te.Fatal(err)
	}
	var back Document
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		Te.Fatal(err)
	}
	if len(back.Pairs) != 2 || back.Pairs[0].Type != "GC" || back.Pairs[1].Score != -3.9 {
		Te.Errorf("round trip lost pair data: %+v", back.Pairs)
	}
	if len(back.Helices) != 1 || len(back.Helices[0].Pairs) != 2 {
		Te.Errorf("round trip lost helix data: %+v", back.Helices)
	}
}

func TestJSONL(Te *testing.T) {
	mol, bps, hs := testDoc()
	doc := Build(mol, bps, hs, findpair.DefaultSettings())
	var buf bytes.Buffer
	if err := StreamJSONL(&buf, doc.Pairs); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		Te.Fatalf("expected one line per pair, got %d", len(lines))
	}
	var row PairRow
	if err := json.Unmarshal([]byte(lines[1]), &row); err != nil {
		Te.Fatal(err)
	}
	if row.Type != "AT" {
		Te.Errorf("wrong second row: %+v", row)
	}
}

func TestWriteText(Te *testing.T) {
	mol, bps, hs := testDoc()
	doc := Build(mol, bps, hs, findpair.DefaultSettings())
	var buf bytes.Buffer
	if err := WriteText(&buf, doc); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"A.DG1", "helix 1 (2 bp)", "twist=", doc.Summary()} {
		if !strings.Contains(out, want) {
			Te.Errorf("text report missing %q:\n%s", want, out)
		}
	}
}

func TestFileWriteZstd(Te *testing.T) {
	mol, bps, hs := testDoc()
	doc := Build(mol, bps, hs, findpair.DefaultSettings())
	path := filepath.Join(Te.TempDir(), "out.json.zst")
	if err := FileWrite(path, doc); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		Te.Fatal(err)
	}
	defer zr.Close()
	var back Document
	if err := json.NewDecoder(zr).Decode(&back); err != nil {
		Te.Fatal(err)
	}
	if len(back.Pairs) != 2 {
		Te.Errorf("compressed round trip lost data: %+v", back)
	}
}
