/*
 * bpplot.go, part of find-pair.
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

//Package bpplot draws quick diagnostic plots for a base-pair analysis: the
//distribution of pair quality scores and the dorg/dv geometry scatter.
package bpplot

import (
	"fmt"
	"image/color"

	"github.com/jyesselm/find-pair-sub009/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//ScoreHist writes a histogram of the pair quality scores to
//plotname.png.
func ScoreHist(rows []report.PairRow, title, plotname string) error {
	if len(rows) == 0 {
		return fmt.Errorf("bpplot: no pairs to plot")
	}
	vals := make(plotter.Values, 0, len(rows))
	for _, r := range rows {
		vals = append(vals, r.Score)
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Score"
	p.Y.Label.Text = "Pairs"
	h, err := plotter.NewHist(vals, 16)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

//GeometryScatter writes a dorg vs dv scatter of the selected pairs to
//plotname.png. Watson-Crick pairs are drawn apart from the rest.
func GeometryScatter(rows []report.PairRow, title, plotname string) error {
	if len(rows) == 0 {
		return fmt.Errorf("bpplot: no pairs to plot")
	}
	var wc, other plotter.XYs
	for _, r := range rows {
		pt := plotter.XY{X: r.DOrg, Y: r.DV}
		if r.Kind == "WC" {
			wc = append(wc, pt)
		} else {
			other = append(other, pt)
		}
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "dorg (Å)"
	p.Y.Label.Text = "dv (Å)"
	p.Add(plotter.NewGrid())
	if len(wc) > 0 {
		s, err := plotter.NewScatter(wc)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		p.Add(s)
		p.Legend.Add("WC", s)
	}
	if len(other) > 0 {
		s, err := plotter.NewScatter(other)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		s.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(s)
		p.Legend.Add("other", s)
	}
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}
