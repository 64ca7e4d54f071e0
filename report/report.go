/*
 * report.go, part of find-pair.
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

//Package report turns the results of a base-pair analysis into flat,
//serializable rows and writes them as text, a JSON document or a JSONL
//stream, optionally zstd-compressed.
package report

import (
	"fmt"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/helix"
	"github.com/jyesselm/find-pair-sub009/pair"
)

//PairRow is one selected base pair, flattened for output.
type PairRow struct {
	Index   int         `json:"index"`
	ResI    string      `json:"res_i"`
	ResJ    string      `json:"res_j"`
	Type    string      `json:"type"`
	Kind    string      `json:"kind,omitempty"`
	Score   float64     `json:"score"`
	DOrg    float64     `json:"dorg"`
	DV      float64     `json:"dv"`
	Angle   float64     `json:"plane_angle"`
	DNN     float64     `json:"dnn"`
	Overlap float64     `json:"overlap"`
	Good    int         `json:"good_hbonds"`
	HBonds  []pair.HBond `json:"hbonds,omitempty"`
}

//StepRow carries the step and helical parameters between two consecutive
//pairs of a helix.
type StepRow struct {
	From int                   `json:"from"`
	To   int                   `json:"to"`
	P    *helix.StepParameters `json:"params"`
}

//HelixRow is one helix, as an ordered list of pair indexes into the
//document's pair table.
type HelixRow struct {
	Number   int       `json:"number"`
	Pairs    []int     `json:"pairs"`
	Flipped  []bool    `json:"flipped"`
	Circular bool      `json:"circular,omitempty"`
	Broken   bool      `json:"broken,omitempty"`
	Steps    []StepRow `json:"steps,omitempty"`
}

//Document is the full result for one structure.
type Document struct {
	File     string             `json:"file,omitempty"`
	Total    int                `json:"total_residues"`
	Framed   int                `json:"framed_residues"`
	Settings *findpair.Settings `json:"settings,omitempty"`
	Pairs    []PairRow          `json:"pairs"`
	Helices  []HelixRow         `json:"helices"`
}

//Build assembles the report rows for one analyzed structure. The pair rows
//come out in selection order; helix rows reference them by index.
func Build(mol *findpair.Structure, bps []*pair.BasePair, helices []*helix.Helix, set *findpair.Settings) *Document {
	doc := &Document{Total: len(mol.Residues), Settings: set}
	for _, r := range mol.Residues {
		if r.Frame != nil {
			doc.Framed++
		}
	}
	for k, bp := range bps {
		ri := mol.Residues[bp.I]
		rj := mol.Residues[bp.J]
		doc.Pairs = append(doc.Pairs, PairRow{
			Index:   k,
			ResI:    ri.Tag(),
			ResJ:    rj.Tag(),
			Type:    bp.Type,
			Kind:    bp.Kind,
			Score:   bp.Score,
			DOrg:    bp.DOrg,
			DV:      bp.DV,
			Angle:   bp.PlaneAngle,
			DNN:     bp.DNN,
			Overlap: bp.Overlap,
			Good:    bp.Good,
			HBonds:  bp.HBonds,
		})
	}
	for hn, h := range helices {
		row := HelixRow{Number: hn + 1, Circular: h.Circular, Broken: h.Broken}
		for _, op := range h.Pairs {
			row.Pairs = append(row.Pairs, op.Index)
			row.Flipped = append(row.Flipped, op.Flipped)
		}
		for k := 1; k < len(h.Pairs); k++ {
			f1 := leadingFrame(bps, h.Pairs[k-1])
			f2 := leadingFrame(bps, h.Pairs[k])
			row.Steps = append(row.Steps, StepRow{
				From: h.Pairs[k-1].Index,
				To:   h.Pairs[k].Index,
				P:    helix.Step(f1, f2),
			})
		}
		doc.Helices = append(doc.Helices, row)
	}
	return doc
}

func leadingFrame(bps []*pair.BasePair, op helix.OrientedPair) findpair.ReferenceFrame {
	if op.Flipped {
		return bps[op.Index].FrameJ
	}
	return bps[op.Index].FrameI
}

//Summary is the one-line human summary printed at the end of a text
//report.
func (D *Document) Summary() string {
	return fmt.Sprintf("%d residues, %d with frames, %d base pairs, %d helices",
		D.Total, D.Framed, len(D.Pairs), len(D.Helices))
}
