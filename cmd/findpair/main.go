/*
 * main.go, part of find-pair.
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

//findpair reads one or more PDB files, finds the base pairs in each and
//prints the pair table, the helices and the step parameters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	findpair "github.com/jyesselm/find-pair-sub009"
	"github.com/jyesselm/find-pair-sub009/bpplot"
	"github.com/jyesselm/find-pair-sub009/helix"
	"github.com/jyesselm/find-pair-sub009/pair"
	"github.com/jyesselm/find-pair-sub009/report"
)

var (
	settingsFile = flag.String("settings", "", "JSON file with threshold overrides")
	jsonOut      = flag.String("json", "", "write the full report as JSON to this file (.zst compresses)")
	jsonlOut     = flag.String("jsonl", "", "write the pair rows as JSONL to this file (.zst compresses)")
	plotDir      = flag.String("plot", "", "write score and geometry plots into this directory")
	cpus         = flag.Int("cpus", 0, "goroutines for the pair search (0 means all CPUs)")
	quiet        = flag.Bool("quiet", false, "suppress the text report on stdout")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] file.pdb [file2.pdb ...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	set, err := loadSettings()
	if err != nil {
		log.Fatalf("findpair: %v", err)
	}
	failed := 0
	for _, name := range flag.Args() {
		if err := run(name, set); err != nil {
			log.Printf("findpair: %s: %v", name, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func loadSettings() (*findpair.Settings, error) {
	set := findpair.DefaultSettings()
	if *settingsFile != "" {
		var err error
		set, err = findpair.LoadSettings(*settingsFile)
		if err != nil {
			return nil, err
		}
	}
	if *cpus > 0 {
		set.Cpus = *cpus
	}
	return set, nil
}

func run(name string, set *findpair.Settings) error {
	mol, err := findpair.PDBFileRead(name)
	if err != nil {
		return err
	}
	findpair.AssignFrames(mol, set)
	bps := pair.SelectPairs(pair.NewValidator(mol, set))
	helices := helix.Organize(mol, bps, set)
	doc := report.Build(mol, bps, helices, set)
	doc.File = name

	if !*quiet {
		if err := report.WriteText(os.Stdout, doc); err != nil {
			return err
		}
	}
	if *jsonOut != "" {
		if err := report.FileWrite(*jsonOut, doc); err != nil {
			return err
		}
	}
	if *jsonlOut != "" {
		if err := report.FileWrite(*jsonlOut, doc); err != nil {
			return err
		}
	}
	if *plotDir != "" {
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		prefix := filepath.Join(*plotDir, base)
		if err := bpplot.ScoreHist(doc.Pairs, base+" pair scores", prefix+"_scores"); err != nil {
			log.Printf("findpair: %s: score plot skipped: %v", name, err)
		}
		if err := bpplot.GeometryScatter(doc.Pairs, base+" pair geometry", prefix+"_geometry"); err != nil {
			log.Printf("findpair: %s: geometry plot skipped: %v", name, err)
		}
	}
	return nil
}
