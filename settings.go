/*
 * settings.go, part of find-pair.
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

package findpair

import (
	"encoding/json"
	"os"
	"runtime"
)

//Settings is the immutable threshold configuration consumed by the whole
//pipeline. The defaults were calibrated empirically, so all of them can be
//overridden from a JSON file without code changes. Load it once and share
//it read-only across workers.
type Settings struct {
	//Pair validation windows, all [min,max].
	DOrgMin       float64 `json:"min_dorg"` //origin-origin distance, Å
	DOrgMax       float64 `json:"max_dorg"`
	DVMin         float64 `json:"min_dv"` //vertical displacement, Å
	DVMax         float64 `json:"max_dv"`
	PlaneAngleMin float64 `json:"min_plane_angle"` //between base normals, degrees
	PlaneAngleMax float64 `json:"max_plane_angle"`
	DNNMin        float64 `json:"min_dnn"` //glycosidic N-N distance, Å
	DNNMax        float64 `json:"max_dnn"`
	OverlapMax    float64 `json:"max_overlap"` //projected ring overlap, Å²
	//Hydrogen-bond distance window, Å.
	HBDistMin float64 `json:"hb_dist_min"`
	HBDistMax float64 `json:"hb_dist_max"`
	//Frame fitting.
	FrameFitRMSDMax float64 `json:"frame_fit_rmsd_max"` //purine two-try fallback trigger
	//Helix organization.
	HelixBreak float64 `json:"helix_break"` //origin gap that splits a helix, Å
	//Numerical slack for near-threshold comparisons.
	Eps float64 `json:"eps"`
	//Goroutines for the candidate score table. Not serialized: a batch
	//host decides this per machine, not per calibration file.
	Cpus int `json:"-"`
}

//DefaultSettings returns the calibrated defaults.
func DefaultSettings() *Settings {
	return &Settings{
		DOrgMin:         0,
		DOrgMax:         5.0,
		DVMin:           0,
		DVMax:           2.5,
		PlaneAngleMin:   0,
		PlaneAngleMax:   65.0,
		DNNMin:          4.5,
		DNNMax:          12.0,
		OverlapMax:      0.01,
		HBDistMin:       2.5,
		HBDistMax:       3.5,
		FrameFitRMSDMax: 0.2618,
		HelixBreak:      7.5,
		Eps:             1e-6,
		Cpus:            runtime.NumCPU(),
	}
}

//LoadSettings reads threshold overrides from a JSON file on top of the
//defaults. Fields absent from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewError(UnableToOpen+": "+err.Error(), path, true)
	}
	defer f.Close()
	s := DefaultSettings()
	if err := json.NewDecoder(f).Decode(s); err != nil {
		return nil, NewError("settings: "+err.Error(), path, true)
	}
	return s, nil
}

//Save writes the settings as JSON, mostly so a calibration run can dump
//its starting point.
func (s *Settings) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewError(UnableToOpen+": "+err.Error(), path, true)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
