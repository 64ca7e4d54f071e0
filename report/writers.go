/*
 * writers.go, part of find-pair.
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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//WriteText prints the pair table, one pair per line, followed by the
//helix runs and the summary line.
func WriteText(w io.Writer, doc *Document) error {
	for _, p := range doc.Pairs {
		_, err := fmt.Fprintf(w, "%4d  %-14s %-14s %-3s %-6s dorg=%5.2f dv=%5.2f angle=%6.2f dnn=%5.2f hb=%d score=%6.2f\n",
			p.Index+1, p.ResI, p.ResJ, p.Type, p.Kind,
			p.DOrg, p.DV, p.Angle, p.DNN, p.Good, p.Score)
		if err != nil {
			return err
		}
	}
	for _, h := range doc.Helices {
		tags := make([]string, 0, len(h.Pairs))
		for k, pi := range h.Pairs {
			p := doc.Pairs[pi]
			if h.Flipped[k] {
				tags = append(tags, p.ResJ+"-"+p.ResI)
			} else {
				tags = append(tags, p.ResI+"-"+p.ResJ)
			}
		}
		mark := ""
		if h.Circular {
			mark = " circular"
		}
		if h.Broken {
			mark += " broken"
		}
		_, err := fmt.Fprintf(w, "helix %d (%d bp)%s: %s\n",
			h.Number, len(h.Pairs), mark, strings.Join(tags, " "))
		if err != nil {
			return err
		}
		for _, s := range h.Steps {
			_, err = fmt.Fprintf(w, "  step %d-%d  shift=%6.2f slide=%6.2f rise=%6.2f tilt=%6.2f roll=%6.2f twist=%7.2f\n",
				s.From+1, s.To+1, s.P.Shift, s.P.Slide, s.P.Rise, s.P.Tilt, s.P.Roll, s.P.Twist)
			if err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, doc.Summary())
	return err
}

//WriteJSON writes the whole document as one indented JSON object.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

//StreamJSONL writes one JSON line per pair row, so very large structures
//can be consumed without holding the document in memory downstream.
func StreamJSONL(w io.Writer, rows []PairRow) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

//FileWrite writes the document to a file, picking the format from the
//name: .json for a JSON document, .jsonl for a pair-row stream, anything
//else gets the text report. A trailing .zst adds zstd compression around
//whichever format the inner extension selects.
func FileWrite(name string, doc *Document) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	var w io.Writer = f
	inner := name
	if strings.HasSuffix(name, ".zst") {
		zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
		defer zw.Close()
		w = zw
		inner = strings.TrimSuffix(name, ".zst")
	}
	switch {
	case strings.HasSuffix(inner, ".jsonl"):
		return StreamJSONL(w, doc.Pairs)
	case strings.HasSuffix(inner, ".json"):
		return WriteJSON(w, doc)
	default:
		return WriteText(w, doc)
	}
}
